package console_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/m-mizutani/gt"
	"github.com/spring-petclinic/buildparams/pkg/infra/console"
)

func TestSink(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var buf bytes.Buffer
	sink := console.NewSink(&buf)

	gt.NoError(t, sink.StartGroup("build parameters"))
	gt.NoError(t, sink.Info("Setting outputs:"))
	gt.NoError(t, sink.SetOutput("github_short_sha", "abcd1234"))
	gt.NoError(t, sink.Info("  github_short_sha: abcd1234"))
	gt.NoError(t, sink.Info("  maven_changelist: "))
	gt.NoError(t, sink.EndGroup())

	gt.Equal(t, buf.String(),
		"==> build parameters\n"+
			"Setting outputs:\n"+
			"  github_short_sha: abcd1234\n"+
			"  maven_changelist: \n"+
			"\n")
}

func TestSink_Colored(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = noColor })

	var buf bytes.Buffer
	sink := console.NewSink(&buf)

	gt.NoError(t, sink.Info("  container_name: my-repo"))
	gt.S(t, buf.String()).Contains("container_name")
	gt.S(t, buf.String()).Contains("my-repo")
	gt.S(t, buf.String()).Contains("\x1b[")
}
