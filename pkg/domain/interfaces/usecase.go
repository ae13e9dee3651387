package interfaces

import (
	"context"

	"github.com/spring-petclinic/buildparams/pkg/domain/model"
)

// ExtractorUseCase defines the build parameter extraction
type ExtractorUseCase interface {
	// Extract derives the build parameters from the invocation context and
	// emits each of them through sink as soon as it is computed
	Extract(ctx context.Context, in *model.InvocationContext, sink OutputSink) (*model.BuildParameters, error)
}
