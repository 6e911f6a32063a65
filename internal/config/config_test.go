package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	gemini, ok := cfg.GetProvider("gemini")
	if !ok {
		t.Fatal("expected default gemini provider")
	}
	if gemini.APIKey != "${GEMINI_API_KEY}" {
		t.Errorf("gemini api key = %q", gemini.APIKey)
	}
	if !gemini.Enabled {
		t.Error("gemini should be enabled by default")
	}

	openai, ok := cfg.GetProvider("openai")
	if !ok {
		t.Fatal("expected default openai provider")
	}
	if openai.Enabled {
		t.Error("openai should be disabled by default")
	}

	if cfg.Defaults.Provider != "gemini" {
		t.Errorf("default provider = %q", cfg.Defaults.Provider)
	}
	if cfg.Defaults.ServingsPolicy != "last" {
		t.Errorf("servings policy = %q", cfg.Defaults.ServingsPolicy)
	}
}

func TestEnabledProviders(t *testing.T) {
	cfg := DefaultConfig()
	enabled := cfg.EnabledProviders()

	if _, ok := enabled["gemini"]; !ok {
		t.Error("gemini missing from enabled set")
	}
	if _, ok := enabled["openai"]; ok {
		t.Error("disabled openai present in enabled set")
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Run("resolves environment variable", func(t *testing.T) {
		t.Setenv("TEST_API_KEY", "secret123")

		result := ResolveEnvVars("${TEST_API_KEY}")
		if result != "secret123" {
			t.Errorf("expected secret123, got %s", result)
		}
	})

	t.Run("returns empty for missing env var", func(t *testing.T) {
		result := ResolveEnvVars("${DEFINITELY_NOT_SET_12345}")
		if result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})

	t.Run("leaves literal values unchanged", func(t *testing.T) {
		result := ResolveEnvVars("literal-value")
		if result != "literal-value" {
			t.Errorf("expected literal-value, got %s", result)
		}
	})
}

func TestToProviderRegistryConfig(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "resolved-key")

	cfg := &Config{
		Providers: map[string]ProviderCfg{
			"gemini": {Type: "gemini", APIKey: "${TEST_GEMINI_KEY}", Enabled: true},
		},
	}

	reg := cfg.ToProviderRegistryConfig()
	got, ok := reg.Providers["gemini"]
	if !ok {
		t.Fatal("gemini missing from registry config")
	}
	if got.APIKey != "resolved-key" {
		t.Errorf("api key = %q, want resolved value", got.APIKey)
	}
}

func TestNewManager(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
providers:
  custom:
    type: gemini
    api_key: "file-key"
    enabled: true
defaults:
  provider: custom
  units: imperial
`
	if err := os.WriteFile(configFile, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	cfg := mgr.Get()
	custom, ok := cfg.GetProvider("custom")
	if !ok {
		t.Fatal("custom provider not loaded from file")
	}
	if custom.APIKey != "file-key" {
		t.Errorf("api key = %q", custom.APIKey)
	}
	if cfg.Defaults.Provider != "custom" {
		t.Errorf("default provider = %q", cfg.Defaults.Provider)
	}
	if cfg.Defaults.Units != "imperial" {
		t.Errorf("units = %q", cfg.Defaults.Units)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("write default: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	for _, want := range []string{"providers:", "gemini", "${GEMINI_API_KEY}", "servings_policy"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("written config missing %q", want)
		}
	}
}
