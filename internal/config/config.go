// Package config holds the eksgen configuration: cluster sizing, Gemini
// generation parameters, and output locations. Configuration is loaded once
// at startup (defaults, then an optional YAML file, then environment
// overrides) and is immutable for the lifetime of a run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned by Validate when no Gemini API key is
// configured. This aborts the run before any generation call is made.
var ErrMissingAPIKey = errors.New("gemini API key not configured (set GEMINI_API_KEY or GOOGLE_API_KEY)")

// Config holds all eksgen configuration.
type Config struct {
	// Target cluster and AWS account settings
	Cluster ClusterConfig `yaml:"cluster"`

	// Gemini generation parameters
	Gemini GeminiConfig `yaml:"gemini"`

	// Output locations
	Output OutputConfig `yaml:"output"`
}

// ClusterConfig describes the EKS cluster and the application the generated
// artifacts will deploy.
type ClusterConfig struct {
	Name              string   `yaml:"name"`
	Region            string   `yaml:"region"`
	AccountID         string   `yaml:"account_id"`
	ECRRepository     string   `yaml:"ecr_repository"`
	AppRepo           string   `yaml:"app_repo"`
	AppPort           int      `yaml:"app_port"`
	VPCCIDR           string   `yaml:"vpc_cidr"`
	NodeInstanceTypes []string `yaml:"node_instance_types"`
	DesiredCapacity   int      `yaml:"desired_capacity"`
	MinCapacity       int      `yaml:"min_capacity"`
	MaxCapacity       int      `yaml:"max_capacity"`
}

// GeminiConfig configures the generation client.
type GeminiConfig struct {
	Model           string  `yaml:"model"`
	APIKey          string  `yaml:"api_key"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
	Temperature     float32 `yaml:"temperature"`
	Timeout         string  `yaml:"timeout"`
}

// OutputConfig configures where generated artifacts are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Cluster: ClusterConfig{
			Name:              "eks-cluster",
			Region:            "us-east-1",
			AccountID:         "123456789012",
			ECRRepository:     "node-app",
			AppRepo:           "https://github.com/acemilyalcin/sample-node-project",
			AppPort:           3005,
			VPCCIDR:           "10.0.0.0/16",
			NodeInstanceTypes: []string{"t3.medium"},
			DesiredCapacity:   2,
			MinCapacity:       1,
			MaxCapacity:       4,
		},

		Gemini: GeminiConfig{
			Model:           "gemini-2.5-pro",
			MaxOutputTokens: 1048576,
			Temperature:     0.3,
			Timeout:         "5m",
		},

		Output: OutputConfig{
			Dir: ".",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when the
// file does not exist. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the effective configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// Cluster name in priority order: EKSGEN_CLUSTER_NAME, then EKS_CLUSTER_NAME.
	if name := os.Getenv("EKSGEN_CLUSTER_NAME"); name != "" {
		c.Cluster.Name = name
	} else if name := os.Getenv("EKS_CLUSTER_NAME"); name != "" {
		c.Cluster.Name = name
	}
	if region := os.Getenv("AWS_DEFAULT_REGION"); region != "" {
		c.Cluster.Region = region
	}
	if account := os.Getenv("AWS_ACCOUNT_ID"); account != "" {
		c.Cluster.AccountID = account
	}
	if repo := os.Getenv("ECR_REPOSITORY"); repo != "" {
		c.Cluster.ECRRepository = repo
	}

	// API key in priority order: GEMINI_API_KEY, then GOOGLE_API_KEY.
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Gemini.APIKey = key
	} else if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		c.Gemini.APIKey = key
	}
	if model := os.Getenv("EKSGEN_MODEL"); model != "" {
		c.Gemini.Model = model
	}
}

// Validate validates the configuration. A missing API key is the only fatal
// configuration error; everything else has a usable default.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Cluster.Name == "" {
		return fmt.Errorf("cluster name must not be empty")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("gemini model must not be empty")
	}
	if c.Gemini.Timeout != "" {
		if _, err := time.ParseDuration(c.Gemini.Timeout); err != nil {
			return fmt.Errorf("invalid gemini timeout %q: %w", c.Gemini.Timeout, err)
		}
	}
	return nil
}

// ECRRegistry returns the account-scoped ECR registry host.
func (c *Config) ECRRegistry() string {
	return fmt.Sprintf("%s.dkr.ecr.%s.amazonaws.com", c.Cluster.AccountID, c.Cluster.Region)
}

// ECRImage returns the fully qualified image URL the manifests should pin.
func (c *Config) ECRImage() string {
	return fmt.Sprintf("%s/%s:latest", c.ECRRegistry(), c.Cluster.ECRRepository)
}

// InstanceTypes returns the node instance types as a comma-separated list for
// prompt interpolation.
func (c *Config) InstanceTypes() string {
	return strings.Join(c.Cluster.NodeInstanceTypes, ", ")
}

// GetGenerationTimeout returns the per-call generation timeout as a duration.
// Zero means no timeout. Malformed values are rejected by Validate; for a
// config that skipped validation the default of 5m applies.
func (c *Config) GetGenerationTimeout() time.Duration {
	if c.Gemini.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Gemini.Timeout)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}
