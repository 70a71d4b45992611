package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "culinary.yaml")
	content := `server:
  addr: ":9000"
data:
  dir: /var/lib/culinary
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("expected addr ':9000', got %q", cfg.Server.Addr)
	}
	if cfg.Data.Dir != "/var/lib/culinary" {
		t.Errorf("expected data dir override, got %q", cfg.Data.Dir)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Assistant.Model != "gpt-4o-mini" {
		t.Errorf("expected default model, got %q", cfg.Assistant.Model)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "culinary.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \":9000\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CULINARY_SERVER_ADDR", ":7777")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7777" {
		t.Errorf("expected env to win, got %q", cfg.Server.Addr)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "culinary.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml {"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestWriteDefault_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "culinary.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("writing default config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading written config: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("written defaults differ from DefaultConfig (-want +got):\n%s", diff)
	}
}

func TestAssistantConfig_APIKey(t *testing.T) {
	t.Setenv("CULINARY_TEST_KEY", "secret")

	c := AssistantConfig{APIKeyEnv: "CULINARY_TEST_KEY"}
	if got := c.APIKey(); got != "secret" {
		t.Errorf("expected key from configured env, got %q", got)
	}

	c = AssistantConfig{APIKeyEnv: "CULINARY_TEST_UNSET"}
	if got := c.APIKey(); got != "" {
		t.Errorf("expected empty key for unset env, got %q", got)
	}
}
