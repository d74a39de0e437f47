// Package pipeline sequences artifact generation: build prompt, call the
// generation endpoint, extract the artifact body, write it to disk. Steps run
// strictly sequentially in a fixed order; the first generation failure aborts
// the rest of the run. File writes are not transactional: a failed run leaves
// earlier artifacts updated and later ones untouched.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eksgen/internal/config"
	"eksgen/internal/extract"
	"eksgen/internal/prompt"
)

// Generator is the minimal interface the pipeline needs from the generation
// endpoint. *gemini.Client satisfies it; tests substitute a mock.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Pipeline orchestrates the full artifact-generation sequence.
type Pipeline struct {
	cfg     *config.Config
	gen     Generator
	log     *zap.Logger
	runID   string
	outDir  string
	timeout time.Duration
}

// New creates a Pipeline. The logger must not be nil; pass zap.NewNop() to
// discard output.
func New(cfg *config.Config, gen Generator, log *zap.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		gen:     gen,
		log:     log,
		runID:   uuid.NewString(),
		outDir:  cfg.Output.Dir,
		timeout: cfg.GetGenerationTimeout(),
	}
}

// RunID returns the correlation ID for this run.
func (p *Pipeline) RunID() string {
	return p.runID
}

// Run executes every generation step in order and returns the artifacts
// written. On failure it returns the artifacts written so far together with
// the step error; nothing is rolled back.
func (p *Pipeline) Run(ctx context.Context) ([]Artifact, error) {
	p.log.Info("starting artifact generation",
		zap.String("run_id", p.runID),
		zap.String("cluster", p.cfg.Cluster.Name),
		zap.String("region", p.cfg.Cluster.Region),
		zap.String("output_dir", p.outDir))

	if err := p.EnsureDirectories(); err != nil {
		return nil, err
	}

	var written []Artifact

	steps := []func(context.Context) ([]Artifact, error){
		p.GenerateTerraform,
		p.GenerateVariables,
		p.GenerateManifests,
		p.GenerateWorkflow,
		p.GenerateDockerfile,
		p.GenerateScripts,
	}

	for _, step := range steps {
		arts, err := step(ctx)
		written = append(written, arts...)
		if err != nil {
			return written, err
		}
	}

	p.log.Info("artifact generation completed",
		zap.String("run_id", p.runID),
		zap.Int("artifacts", len(written)))

	return written, nil
}

// EnsureDirectories creates the output tree before the first step runs.
func (p *Pipeline) EnsureDirectories() error {
	dirs := []string{
		"terraform/stage1",
		"terraform/stage2",
		"k8s",
		"scripts",
		".github/workflows",
	}
	for _, dir := range dirs {
		full := filepath.Join(p.outDir, dir)
		if err := os.MkdirAll(full, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", full, err)
		}
		p.log.Debug("directory ready", zap.String("path", full))
	}
	return nil
}

// GenerateTerraform generates the two-stage Terraform infrastructure:
// stage 1 (VPC, EKS, IAM, OIDC, ECR) and stage 2 (ALB controller).
func (p *Pipeline) GenerateTerraform(ctx context.Context) ([]Artifact, error) {
	var arts []Artifact

	resp, err := p.generate(ctx, KindTerraformStage1, prompt.TerraformStage1(p.cfg))
	if err != nil {
		return arts, err
	}
	art := Artifact{
		Kind:    KindTerraformStage1,
		Path:    "terraform/stage1/main.tf",
		Content: extract.Terraform(resp),
		Mode:    0644,
	}
	if err := p.write(art); err != nil {
		return arts, err
	}
	arts = append(arts, art)

	resp, err = p.generate(ctx, KindTerraformStage2, prompt.TerraformStage2())
	if err != nil {
		return arts, err
	}
	art = Artifact{
		Kind:    KindTerraformStage2,
		Path:    "terraform/stage2/main.tf",
		Content: extract.Terraform(resp),
		Mode:    0644,
	}
	if err := p.write(art); err != nil {
		return arts, err
	}
	arts = append(arts, art)

	return arts, nil
}

// GenerateVariables generates the stage-1 variables.tf.
func (p *Pipeline) GenerateVariables(ctx context.Context) ([]Artifact, error) {
	resp, err := p.generate(ctx, KindVariables, prompt.Variables(p.cfg))
	if err != nil {
		return nil, err
	}
	art := Artifact{
		Kind:    KindVariables,
		Path:    "terraform/stage1/variables.tf",
		Content: extract.Terraform(resp),
		Mode:    0644,
	}
	if err := p.write(art); err != nil {
		return nil, err
	}
	return []Artifact{art}, nil
}

// GenerateManifests generates the combined Kubernetes manifests and writes one
// file per recovered kind. Fragments with no recoverable kind are dropped;
// the drop is logged but not treated as a failure.
func (p *Pipeline) GenerateManifests(ctx context.Context) ([]Artifact, error) {
	resp, err := p.generate(ctx, KindManifest, prompt.Manifests(p.cfg))
	if err != nil {
		return nil, err
	}

	manifests, dropped := extract.SplitManifests(resp)
	if dropped > 0 {
		p.log.Warn("dropped manifest fragments with no recognizable kind",
			zap.String("run_id", p.runID),
			zap.Int("dropped", dropped))
	}

	var arts []Artifact
	for kind, body := range manifests {
		art := Artifact{
			Kind:    KindManifest,
			Path:    filepath.Join("k8s", kind+".yaml"),
			Content: body,
			Mode:    0644,
		}
		if err := p.write(art); err != nil {
			return arts, err
		}
		arts = append(arts, art)
	}

	return arts, nil
}

// GenerateWorkflow generates the GitHub Actions deploy workflow.
func (p *Pipeline) GenerateWorkflow(ctx context.Context) ([]Artifact, error) {
	resp, err := p.generate(ctx, KindWorkflow, prompt.Workflow(p.cfg))
	if err != nil {
		return nil, err
	}
	art := Artifact{
		Kind:    KindWorkflow,
		Path:    ".github/workflows/deploy.yml",
		Content: extract.YAML(resp),
		Mode:    0644,
	}
	if err := p.write(art); err != nil {
		return nil, err
	}
	return []Artifact{art}, nil
}

// GenerateDockerfile generates the container build definition.
func (p *Pipeline) GenerateDockerfile(ctx context.Context) ([]Artifact, error) {
	resp, err := p.generate(ctx, KindDockerfile, prompt.Dockerfile(p.cfg))
	if err != nil {
		return nil, err
	}
	art := Artifact{
		Kind:    KindDockerfile,
		Path:    "Dockerfile",
		Content: extract.Dockerfile(resp),
		Mode:    0644,
	}
	if err := p.write(art); err != nil {
		return nil, err
	}
	return []Artifact{art}, nil
}

// GenerateScripts generates the setup and deploy shell scripts, written
// executable.
func (p *Pipeline) GenerateScripts(ctx context.Context) ([]Artifact, error) {
	var arts []Artifact

	scripts := []struct {
		name   string
		prompt string
	}{
		{"setup", prompt.Setup(p.cfg)},
		{"deploy", prompt.Deploy(p.cfg)},
	}

	for _, s := range scripts {
		resp, err := p.generate(ctx, KindScript, s.prompt)
		if err != nil {
			return arts, err
		}
		art := Artifact{
			Kind:    KindScript,
			Path:    filepath.Join("scripts", s.name+".sh"),
			Content: extract.Script(resp),
			Mode:    0755,
		}
		if err := p.write(art); err != nil {
			return arts, err
		}
		arts = append(arts, art)
	}

	return arts, nil
}

// generate issues one bounded generation call and wraps failures with the
// step name.
func (p *Pipeline) generate(ctx context.Context, step, text string) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := p.gen.Generate(ctx, text)
	if err != nil {
		p.log.Error("generation call failed",
			zap.String("run_id", p.runID),
			zap.String("step", step),
			zap.Error(err))
		return "", &StepError{Step: step, Err: err}
	}

	p.log.Debug("generation call completed",
		zap.String("run_id", p.runID),
		zap.String("step", step),
		zap.Int("response_bytes", len(resp)),
		zap.Duration("elapsed", time.Since(start)))

	return resp, nil
}

// write persists one artifact under the output directory.
func (p *Pipeline) write(art Artifact) error {
	full := filepath.Join(p.outDir, art.Path)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", art.Path, err)
	}
	if err := os.WriteFile(full, []byte(art.Content), art.Mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", art.Path, err)
	}
	// WriteFile only applies the mode on creation; reruns overwrite existing
	// files, so enforce it explicitly for executables.
	if art.Mode&0111 != 0 {
		if err := os.Chmod(full, art.Mode); err != nil {
			return fmt.Errorf("failed to chmod %s: %w", art.Path, err)
		}
	}

	p.log.Info("artifact written",
		zap.String("run_id", p.runID),
		zap.String("kind", art.Kind),
		zap.String("path", full),
		zap.Int("bytes", len(art.Content)))

	return nil
}
