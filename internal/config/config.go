// Package config loads server settings from the environment, an optional
// .env.local file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bibliomate/internal/agent"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Env            string        `mapstructure:"env"`
	Port           string        `mapstructure:"port" validate:"required,numeric"`
	LogLevel       string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	AnalyzeTimeout time.Duration `mapstructure:"analyze_timeout" validate:"gt=0"`
	SessionTTL     time.Duration `mapstructure:"session_ttl" validate:"gt=0"`
	Gemini         GeminiConfig  `mapstructure:"gemini"`
}

// GeminiConfig contains the model name, credentials and generation settings.
// APIKey is not required here: without it the server starts degraded.
type GeminiConfig struct {
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model" validate:"required"`
	BaseURL         string  `mapstructure:"base_url" validate:"omitempty,url"`
	Temperature     float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`
	TopP            float32 `mapstructure:"top_p" validate:"gte=0,lte=1"`
	TopK            float32 `mapstructure:"top_k" validate:"gte=0"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens" validate:"gt=0"`
}

// IsProduction reports whether ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Defaults returns the built-in configuration. Gemini settings come from the
// analyzer's own defaults.
func Defaults() Config {
	gen := agent.DefaultGenerationConfig()
	return Config{
		Env:            "development",
		Port:           "8080",
		LogLevel:       "info",
		AnalyzeTimeout: 60 * time.Second,
		SessionTTL:     30 * time.Minute,
		Gemini: GeminiConfig{
			Model:           agent.DefaultModel,
			Temperature:     gen.Temperature,
			TopP:            gen.TopP,
			TopK:            gen.TopK,
			MaxOutputTokens: gen.MaxOutputTokens,
		},
	}
}

// Load reads configuration. Precedence: environment, then cfgFile (if set),
// then defaults. dotenvFiles are loaded into the environment first; missing
// files are ignored.
func Load(cfgFile string, dotenvFiles ...string) (*Config, error) {
	for _, f := range dotenvFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	d := Defaults()
	v.SetDefault("env", d.Env)
	v.SetDefault("port", d.Port)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("analyze_timeout", d.AnalyzeTimeout)
	v.SetDefault("session_ttl", d.SessionTTL)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", d.Gemini.Model)
	v.SetDefault("gemini.base_url", "")
	v.SetDefault("gemini.temperature", d.Gemini.Temperature)
	v.SetDefault("gemini.top_p", d.Gemini.TopP)
	v.SetDefault("gemini.top_k", d.Gemini.TopK)
	v.SetDefault("gemini.max_output_tokens", d.Gemini.MaxOutputTokens)

	v.SetEnvPrefix("BIBLIOMATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names shared with the hosting platform
	for key, env := range map[string][]string{
		"gemini.api_key": {"BIBLIOMATE_GEMINI_API_KEY", "GEMINI_API_KEY"},
		"port":           {"BIBLIOMATE_PORT", "PORT"},
		"env":            {"BIBLIOMATE_ENV", "ENV"},
	} {
		if err := v.BindEnv(append([]string{key}, env...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// ALLOWED_ORIGINS arrives as a comma separated string from the environment
	cfg.AllowedOrigins = splitOrigins(cfg.AllowedOrigins)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks field constraints declared in struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, origin := range strings.Split(item, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}
