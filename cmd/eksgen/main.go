// Package main implements the eksgen CLI.
//
// eksgen calls the Google Gemini API to generate the infrastructure-as-code
// artifacts for deploying a sample Node.js application onto AWS EKS:
// two-stage Terraform, Kubernetes manifests, a GitHub Actions workflow, a
// Dockerfile, and setup/deploy shell scripts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.2.0"

var (
	// Global flags
	verbose    bool
	configPath string
	outputDir  string
	apiKey     string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:     "eksgen",
	Short:   "eksgen - Gemini-driven EKS deployment artifact generator",
	Version: version,
	Long: `eksgen generates the full set of deployment artifacts for running a
Node.js application on AWS EKS by prompting the Google Gemini API:

  terraform/stage1/main.tf       Base infrastructure (VPC, EKS, IAM, OIDC, ECR)
  terraform/stage1/variables.tf  Input variables
  terraform/stage2/main.tf       ALB Controller setup
  k8s/*.yaml                     Deployment, Service, Ingress manifests
  .github/workflows/deploy.yml   CI/CD pipeline
  Dockerfile                     Container build
  scripts/{setup,deploy}.sh      Environment setup and deployment

Generated artifacts are best-effort model output; review them before use.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "eksgen.yaml", "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: from config)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (or set GEMINI_API_KEY env)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
