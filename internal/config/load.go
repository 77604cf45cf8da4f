package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "FLASHGEN"

// Default model identifiers for each generation stage.
const (
	DefaultQuestionModel = "iarfmoose/t5-base-question-generator"
	DefaultRewriteModel  = "google/flan-t5-small"
)

// Load configuration from environment variables and optionally a config.yaml
// in the working directory. A .env file, when present, is loaded into the
// process environment first. Environment variables take precedence over
// values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile behaves like Load but reads the given config file instead of
// searching for config.yaml. An explicit path that does not exist is an error.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks a Config against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("generation.default_max_len", 400)
	v.SetDefault("generation.workers", 1)
	v.SetDefault("generation.model_timeout", 30*time.Second)
	v.SetDefault("generation.excerpt_len", 200)
	v.SetDefault("generation.serialize_inference", true)
	v.SetDefault("generation.rewrite_prompt_path", "")

	v.SetDefault("models.question.provider", "huggingface")
	v.SetDefault("models.question.name", DefaultQuestionModel)
	v.SetDefault("models.question.api_key", "")
	v.SetDefault("models.question.base_url", "")
	v.SetDefault("models.question.max_output_tokens", 64)

	v.SetDefault("models.rewrite.provider", "huggingface")
	v.SetDefault("models.rewrite.name", DefaultRewriteModel)
	v.SetDefault("models.rewrite.api_key", "")
	v.SetDefault("models.rewrite.base_url", "")
	v.SetDefault("models.rewrite.max_output_tokens", 64)

	v.SetDefault("notify.enabled", false)
	v.SetDefault("notify.smtp_host", "smtp.gmail.com")
	v.SetDefault("notify.smtp_port", 465)
	v.SetDefault("notify.sender", "")
	v.SetDefault("notify.receiver", "")
	v.SetDefault("notify.app_password", "")
	v.SetDefault("notify.max_retries", 2)
	v.SetDefault("notify.timeout", 15*time.Second)
}
