package types

// Version is the buildparams version. Overwritten at release time via
// -ldflags "-X github.com/spring-petclinic/buildparams/pkg/domain/types.Version=..."
var Version = "dev"
