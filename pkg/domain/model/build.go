package model

// Output names emitted by the extractor, in emission order.
const (
	OutputShortSHA         = "github_short_sha"
	OutputRef              = "github_ref"
	OutputBranchName       = "github_ref_branch_name"
	OutputMavenChangelist  = "maven_changelist"
	OutputMavenSHA1        = "maven_sha1"
	OutputOrganizationName = "github_organization_name"
	OutputRepositoryName   = "github_repository_name"
	OutputRepository       = "github_repository"
	OutputContainerName    = "container_name"
	OutputContainerOwner   = "container_owner"
)

// OutputNames returns all output names in emission order.
func OutputNames() []string {
	return []string{
		OutputShortSHA,
		OutputRef,
		OutputBranchName,
		OutputMavenChangelist,
		OutputMavenSHA1,
		OutputOrganizationName,
		OutputRepositoryName,
		OutputRepository,
		OutputContainerName,
		OutputContainerOwner,
	}
}

// InvocationContext holds the CI run information the extractor reads
type InvocationContext struct {
	CommitSHA       string // Full commit hash
	Ref             string // Git ref, e.g. refs/heads/main
	RepositoryOwner string // Repository owner
	RepositoryName  string // Repository name
	Repository      string // Raw GITHUB_REPOSITORY value (owner/name), may be empty
}

// BuildParameters is the derived output set. Field order matches emission order.
type BuildParameters struct {
	ShortSHA         string `json:"github_short_sha" toml:"github_short_sha"`
	Ref              string `json:"github_ref" toml:"github_ref"`
	BranchName       string `json:"github_ref_branch_name" toml:"github_ref_branch_name"`
	MavenChangelist  string `json:"maven_changelist" toml:"maven_changelist"`
	MavenSHA1        string `json:"maven_sha1" toml:"maven_sha1"`
	OrganizationName string `json:"github_organization_name" toml:"github_organization_name"`
	RepositoryName   string `json:"github_repository_name" toml:"github_repository_name"`
	Repository       string `json:"github_repository" toml:"github_repository"`
	ContainerName    string `json:"container_name" toml:"container_name"`
	ContainerOwner   string `json:"container_owner" toml:"container_owner"`
}

// Output is a single named output value
type Output struct {
	Name  string
	Value string
}

// Outputs returns the parameters as name/value pairs in emission order
func (p *BuildParameters) Outputs() []Output {
	return []Output{
		{Name: OutputShortSHA, Value: p.ShortSHA},
		{Name: OutputRef, Value: p.Ref},
		{Name: OutputBranchName, Value: p.BranchName},
		{Name: OutputMavenChangelist, Value: p.MavenChangelist},
		{Name: OutputMavenSHA1, Value: p.MavenSHA1},
		{Name: OutputOrganizationName, Value: p.OrganizationName},
		{Name: OutputRepositoryName, Value: p.RepositoryName},
		{Name: OutputRepository, Value: p.Repository},
		{Name: OutputContainerName, Value: p.ContainerName},
		{Name: OutputContainerOwner, Value: p.ContainerOwner},
	}
}
