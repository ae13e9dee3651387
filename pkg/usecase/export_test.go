package usecase

var (
	ShortSHA          = shortSHA
	BranchFromRef     = branchFromRef
	DependabotSegment = dependabotSegment
	CleanBranchName   = cleanBranchName
	MavenVersion      = mavenVersion
)
