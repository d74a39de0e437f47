// This file contains the per-artifact generation subcommands.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"eksgen/internal/pipeline"
)

// generateCmd groups the single-artifact generation verbs.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single artifact family",
}

var generateTerraformCmd = &cobra.Command{
	Use:   "terraform",
	Short: "Generate the two-stage Terraform plus variables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSteps(cmd, func(ctx context.Context, p *pipeline.Pipeline) ([]pipeline.Artifact, error) {
			arts, err := p.GenerateTerraform(ctx)
			if err != nil {
				return arts, err
			}
			more, err := p.GenerateVariables(ctx)
			return append(arts, more...), err
		})
	},
}

var generateManifestsCmd = &cobra.Command{
	Use:   "manifests",
	Short: "Generate the Kubernetes manifests",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSteps(cmd, func(ctx context.Context, p *pipeline.Pipeline) ([]pipeline.Artifact, error) {
			return p.GenerateManifests(ctx)
		})
	},
}

var generateWorkflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Generate the GitHub Actions workflow",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSteps(cmd, func(ctx context.Context, p *pipeline.Pipeline) ([]pipeline.Artifact, error) {
			return p.GenerateWorkflow(ctx)
		})
	},
}

var generateDockerfileCmd = &cobra.Command{
	Use:   "dockerfile",
	Short: "Generate the Dockerfile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSteps(cmd, func(ctx context.Context, p *pipeline.Pipeline) ([]pipeline.Artifact, error) {
			return p.GenerateDockerfile(ctx)
		})
	},
}

var generateScriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "Generate the setup and deploy scripts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSteps(cmd, func(ctx context.Context, p *pipeline.Pipeline) ([]pipeline.Artifact, error) {
			return p.GenerateScripts(ctx)
		})
	},
}

func init() {
	generateCmd.AddCommand(generateTerraformCmd)
	generateCmd.AddCommand(generateManifestsCmd)
	generateCmd.AddCommand(generateWorkflowCmd)
	generateCmd.AddCommand(generateDockerfileCmd)
	generateCmd.AddCommand(generateScriptsCmd)
}

// runSteps wires config, client, and pipeline for a single-step command.
func runSteps(cmd *cobra.Command, step func(context.Context, *pipeline.Pipeline) ([]pipeline.Artifact, error)) error {
	cfg, client, err := loadAndConnect(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	p := pipeline.New(cfg, client, logger)
	if err := p.EnsureDirectories(); err != nil {
		return err
	}

	arts, err := step(cmd.Context(), p)
	if err != nil {
		return err
	}

	for _, a := range arts {
		fmt.Printf("wrote %s\n", a.Path)
	}
	return nil
}
