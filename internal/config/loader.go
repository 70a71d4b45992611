package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load builds the configuration from defaults, an optional YAML file and
// CULINARY_* environment variables, in that precedence order. With an empty
// path the loader looks for culinary.yaml in the working directory and
// silently skips it when absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("CULINARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key with viper so environment overrides are
// picked up even when the key is missing from the file.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("server.cors_origins", def.Server.CORSOrigins)
	v.SetDefault("data.dir", def.Data.Dir)
	v.SetDefault("assistant.base_url", def.Assistant.BaseURL)
	v.SetDefault("assistant.model", def.Assistant.Model)
	v.SetDefault("assistant.api_key_env", def.Assistant.APIKeyEnv)
	v.SetDefault("logging.level", def.Logging.Level)
}
