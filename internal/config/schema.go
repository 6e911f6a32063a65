package config

// Config holds simmer configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Providers map[string]ProviderCfg `mapstructure:"providers" yaml:"providers"`
	Defaults  DefaultsCfg            `mapstructure:"defaults" yaml:"defaults"`
	Server    ServerCfg              `mapstructure:"server" yaml:"server"`
}

// ProviderCfg configures a generation provider.
type ProviderCfg struct {
	Type    string `mapstructure:"type" yaml:"type"`         // "gemini", "openai"
	Model   string `mapstructure:"model" yaml:"model"`       // Model name (empty uses the provider default)
	APIKey  string `mapstructure:"api_key" yaml:"api_key"`   // API key (supports ${ENV_VAR} syntax)
	BaseURL string `mapstructure:"base_url" yaml:"base_url"` // Override API base URL
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
}

// DefaultsCfg specifies generation defaults.
type DefaultsCfg struct {
	Provider       string   `mapstructure:"provider" yaml:"provider"`               // Default generation provider
	Units          string   `mapstructure:"units" yaml:"units"`                     // "metric" or "imperial"
	Preferences    []string `mapstructure:"preferences" yaml:"preferences"`         // Dietary preferences added to every prompt
	ServingsPolicy string   `mapstructure:"servings_policy" yaml:"servings_policy"` // "last" or "first"
}

// ServerCfg holds HTTP server configuration.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Providers: map[string]ProviderCfg{
			"gemini": {
				Type:    "gemini",
				APIKey:  "${GEMINI_API_KEY}",
				Enabled: true,
			},
			"openai": {
				Type:    "openai",
				APIKey:  "${OPENAI_API_KEY}",
				Enabled: false,
			},
		},
		Defaults: DefaultsCfg{
			Provider:       "gemini",
			Units:          "metric",
			ServingsPolicy: "last",
		},
		Server: ServerCfg{
			Host: "localhost",
			Port: 8780,
		},
	}
}

// GetProvider returns a provider config by name.
func (c *Config) GetProvider(name string) (ProviderCfg, bool) {
	cfg, ok := c.Providers[name]
	return cfg, ok
}

// EnabledProviders returns all enabled providers.
func (c *Config) EnabledProviders() map[string]ProviderCfg {
	result := make(map[string]ProviderCfg)
	for name, cfg := range c.Providers {
		if cfg.Enabled {
			result[name] = cfg
		}
	}
	return result
}
