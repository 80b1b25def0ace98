package entities

// ArtifactKind classifies a generated file.
type ArtifactKind string

const (
	ArtifactMasterHeader  ArtifactKind = "master-header"
	ArtifactMasterSource  ArtifactKind = "master-source"
	ArtifactProfileHeader ArtifactKind = "profile-header"
	ArtifactProfileSource ArtifactKind = "profile-source"
)

// Artifact is one generated file, relative to the output root.
type Artifact struct {
	Kind    ArtifactKind
	Path    string
	Profile string
	Content string
}
