package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main application configuration struct.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Menu     MenuConfig     `mapstructure:"menu"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Addr          string `mapstructure:"addr"`
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

type LLMConfig struct {
	Provider string        `mapstructure:"provider"` // gemini | openai
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	APIURL   string        `mapstructure:"api_url"` // openai-compatible endpoints only
	Timeout  time.Duration `mapstructure:"timeout"`
}

type MenuConfig struct {
	Dir     string `mapstructure:"dir"`
	Backend string `mapstructure:"backend"` // dir | postgres
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional config.yaml, with environment
// variables (and an optional .env file) overriding it. Keys map to env vars
// by replacing dots with underscores, e.g. llm.api_key → LLM_API_KEY.
func Load() (*Config, error) {
	// Best effort; system environment variables still apply without it.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origin", "http://127.0.0.1:5500")
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gemini-1.5-flash")
	v.SetDefault("llm.api_url", "")
	v.SetDefault("llm.timeout", 45*time.Second)
	v.SetDefault("menu.dir", "./menus")
	v.SetDefault("menu.backend", "dir")
	v.SetDefault("database.url", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

func validate(cfg *Config) error {
	switch cfg.LLM.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}

	switch cfg.Menu.Backend {
	case "dir":
	case "postgres":
		if cfg.Database.URL == "" {
			return fmt.Errorf("menu backend is postgres but database.url is empty")
		}
	default:
		return fmt.Errorf("unknown menu backend %q", cfg.Menu.Backend)
	}

	if cfg.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}

	return nil
}
