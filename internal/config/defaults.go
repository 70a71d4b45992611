package config

import "os"

// DefaultAPIKeyEnv is the environment variable consulted for the assistant
// API key when the config file does not name one.
const DefaultAPIKeyEnv = "OPENAI_API_KEY"

// FileName is the config file looked up in the working directory when no
// explicit path is given.
const FileName = "culinary.yaml"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":8501",
			CORSOrigins: []string{"*"},
		},
		Data: DataConfig{
			Dir: "data",
		},
		Assistant: AssistantConfig{
			BaseURL:   "https://api.openai.com/v1",
			Model:     "gpt-4o-mini",
			APIKeyEnv: DefaultAPIKeyEnv,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// WriteDefault writes a commented default configuration to a file
func WriteDefault(path string) error {
	content := `# Telugu Culinary configuration

server:
  addr: ":8501"
  # Origins allowed to call the JSON API
  cors_origins:
    - "*"

# Directory holding recipes.json and favorites.json
data:
  dir: data

# Annapurna cooking assistant (OpenAI-compatible endpoint)
assistant:
  base_url: https://api.openai.com/v1
  model: gpt-4o-mini
  # Environment variable that holds the API key; the key itself never
  # lives in this file
  api_key_env: OPENAI_API_KEY

logging:
  level: info  # debug, info, warn, error
`
	return os.WriteFile(path, []byte(content), 0644)
}
