package pipeline

import "os"

// Artifact kinds, one per generated file family.
const (
	KindTerraformStage1 = "terraform-stage1"
	KindTerraformStage2 = "terraform-stage2"
	KindVariables       = "terraform-variables"
	KindManifest        = "manifest"
	KindWorkflow        = "workflow"
	KindDockerfile      = "dockerfile"
	KindScript          = "script"
)

// Artifact is a generated file: extracted body plus its destination. Each
// artifact is derived from exactly one model response and is terminal once
// written; the pipeline never reads artifacts back or mutates them.
type Artifact struct {
	// Kind is the artifact family (terraform-stage1, manifest, script, ...).
	Kind string

	// Path is the destination relative to the output directory.
	Path string

	// Content is the extracted artifact body.
	Content string

	// Mode is the file mode to write with. Scripts are executable.
	Mode os.FileMode
}
