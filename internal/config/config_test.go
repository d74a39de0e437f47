package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("EKSGEN_CLUSTER_NAME", "")
	t.Setenv("EKS_CLUSTER_NAME", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("AWS_ACCOUNT_ID", "")
	t.Setenv("ECR_REPOSITORY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("EKSGEN_MODEL", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Cluster.Name != "eks-cluster" {
		t.Errorf("expected Name=eks-cluster, got %s", cfg.Cluster.Name)
	}
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("expected Model=gemini-2.5-pro, got %s", cfg.Gemini.Model)
	}
	if cfg.Gemini.Temperature != 0.3 {
		t.Errorf("expected Temperature=0.3, got %v", cfg.Gemini.Temperature)
	}
	if cfg.Cluster.DesiredCapacity != 2 || cfg.Cluster.MinCapacity != 1 || cfg.Cluster.MaxCapacity != 4 {
		t.Errorf("unexpected capacity defaults: %d/%d/%d",
			cfg.Cluster.DesiredCapacity, cfg.Cluster.MinCapacity, cfg.Cluster.MaxCapacity)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cluster.Region != "us-east-1" {
		t.Errorf("expected Region=us-east-1, got %s", cfg.Cluster.Region)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "eksgen.yaml")

	cfg := DefaultConfig()
	cfg.Cluster.Name = "prod-cluster"
	cfg.Gemini.APIKey = "test-key"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Cluster.Name != "prod-cluster" {
		t.Errorf("expected Name=prod-cluster, got %s", loaded.Cluster.Name)
	}
	if loaded.Gemini.APIKey != "test-key" {
		t.Errorf("expected APIKey=test-key, got %s", loaded.Gemini.APIKey)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("EKS_CLUSTER_NAME", "env-cluster")
	t.Setenv("AWS_DEFAULT_REGION", "ap-south-1")
	t.Setenv("AWS_ACCOUNT_ID", "999999999999")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Cluster.Name != "env-cluster" {
		t.Errorf("expected Name=env-cluster, got %s", cfg.Cluster.Name)
	}
	if cfg.Cluster.Region != "ap-south-1" {
		t.Errorf("expected Region=ap-south-1, got %s", cfg.Cluster.Region)
	}
	if cfg.Gemini.APIKey != "env-key" {
		t.Errorf("expected APIKey=env-key, got %s", cfg.Gemini.APIKey)
	}
	if cfg.ECRRegistry() != "999999999999.dkr.ecr.ap-south-1.amazonaws.com" {
		t.Errorf("unexpected registry: %s", cfg.ECRRegistry())
	}
}

func TestConfig_ClusterNameOverridePriority(t *testing.T) {
	clearEnv(t)
	t.Setenv("EKSGEN_CLUSTER_NAME", "eksgen-cluster")
	t.Setenv("EKS_CLUSTER_NAME", "legacy-cluster")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cluster.Name != "eksgen-cluster" {
		t.Errorf("expected EKSGEN_CLUSTER_NAME to win, got %s", cfg.Cluster.Name)
	}
}

func TestConfig_LegacyClusterNameFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("EKS_CLUSTER_NAME", "legacy-cluster")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cluster.Name != "legacy-cluster" {
		t.Errorf("expected EKS_CLUSTER_NAME fallback, got %s", cfg.Cluster.Name)
	}
}

func TestConfig_GeminiKeyTakesPriorityOverGoogleKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gemini.APIKey != "gemini-key" {
		t.Errorf("expected GEMINI_API_KEY to win, got %s", cfg.Gemini.APIKey)
	}
}

func TestConfig_GoogleKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gemini.APIKey != "google-key" {
		t.Errorf("expected GOOGLE_API_KEY fallback, got %s", cfg.Gemini.APIKey)
	}
}

func TestValidate_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	cfg := DefaultConfig()
	err := cfg.Validate()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate_BadTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "k"
	cfg.Gemini.Timeout = "five minutes"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unparsable timeout, got nil")
	}
}

func TestValidate_EmptyTimeoutOK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gemini.APIKey = "k"
	cfg.Gemini.Timeout = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected empty timeout to validate, got %v", err)
	}
}

func TestECRImage(t *testing.T) {
	cfg := DefaultConfig()
	want := "123456789012.dkr.ecr.us-east-1.amazonaws.com/node-app:latest"
	if got := cfg.ECRImage(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestGetGenerationTimeout(t *testing.T) {
	cfg := DefaultConfig()
	if d := cfg.GetGenerationTimeout(); d != 5*time.Minute {
		t.Errorf("expected 5m default, got %v", d)
	}

	cfg.Gemini.Timeout = "30s"
	if d := cfg.GetGenerationTimeout(); d != 30*time.Second {
		t.Errorf("expected 30s, got %v", d)
	}

	cfg.Gemini.Timeout = ""
	if d := cfg.GetGenerationTimeout(); d != 0 {
		t.Errorf("expected no timeout, got %v", d)
	}

	cfg.Gemini.Timeout = "garbage"
	if d := cfg.GetGenerationTimeout(); d != 5*time.Minute {
		t.Errorf("expected 5m fallback, got %v", d)
	}
}
