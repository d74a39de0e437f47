// This file contains the full-pipeline run command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"eksgen/internal/config"
	"eksgen/internal/gemini"
	"eksgen/internal/pipeline"
)

// runCmd executes the complete generation sequence.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate all deployment artifacts",
	Long: `Runs the full generation sequence, one artifact at a time:

  1. Stage-1 Terraform (VPC, EKS, IAM, OIDC, ECR)
  2. Stage-2 Terraform (ALB Controller)
  3. Terraform variables
  4. Kubernetes manifests (deployment, service, ingress)
  5. GitHub Actions workflow
  6. Dockerfile
  7. Setup and deploy scripts

The first generation failure aborts the remaining steps. Files already
written stay on disk; nothing is rolled back.`,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, client, err := loadAndConnect(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	p := pipeline.New(cfg, client, logger)
	logger.Info("run started", zap.String("run_id", p.RunID()))

	arts, err := p.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	fmt.Println(pipeline.RenderSummary(arts, cfg.Cluster.Name, cfg.Cluster.Region))
	return nil
}

// loadAndConnect loads configuration, applies CLI flag overrides, validates,
// and constructs the generation client.
func loadAndConnect(cmd *cobra.Command) (*config.Config, *gemini.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	client, err := gemini.New(cmd.Context(), cfg.Gemini)
	if err != nil {
		return nil, nil, err
	}

	return cfg, client, nil
}
