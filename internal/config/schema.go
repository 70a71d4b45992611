package config

import "os"

// Config represents the full application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Data      DataConfig      `yaml:"data" mapstructure:"data"`
	Assistant AssistantConfig `yaml:"assistant" mapstructure:"assistant"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Addr        string   `yaml:"addr" mapstructure:"addr"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// DataConfig locates the JSON data documents
type DataConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// AssistantConfig configures the Annapurna cooking assistant. The API key is
// never stored in the file; APIKeyEnv names the environment variable holding
// it.
type AssistantConfig struct {
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Model     string `yaml:"model" mapstructure:"model"`
	APIKeyEnv string `yaml:"api_key_env" mapstructure:"api_key_env"`
}

// APIKey resolves the assistant API key from the configured environment
// variable. Empty when the variable is unset.
func (c AssistantConfig) APIKey() string {
	env := c.APIKeyEnv
	if env == "" {
		env = DefaultAPIKeyEnv
	}
	return os.Getenv(env)
}

// LoggingConfig configures log output
type LoggingConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}
