package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
	Models     ModelsConfig     `mapstructure:"models"     validate:"required"`
	Notify     NotifyConfig     `mapstructure:"notify"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// GenerationConfig controls how a document is turned into flashcards.
type GenerationConfig struct {
	// DefaultMaxLen is the chunk size bound used when a request omits one.
	DefaultMaxLen int `mapstructure:"default_max_len" validate:"required,gt=0"`

	// Workers is the number of chunks processed concurrently. 1 keeps the
	// pipeline strictly sequential.
	Workers int `mapstructure:"workers" validate:"required,gt=0,lte=64"`

	// ModelTimeout bounds a single model invocation.
	ModelTimeout time.Duration `mapstructure:"model_timeout" validate:"required,gt=0"`

	// ExcerptLen is the number of characters of the input passed to the notifier.
	ExcerptLen int `mapstructure:"excerpt_len" validate:"required,gt=0"`

	// SerializeInference forces calls into each model through a single lock,
	// for backends that are not safe for concurrent use.
	SerializeInference bool `mapstructure:"serialize_inference"`

	// RewritePromptPath optionally points at a text/template file that
	// replaces the built-in rewrite instruction.
	RewritePromptPath string `mapstructure:"rewrite_prompt_path" validate:"omitempty,file"`
}

// ModelsConfig holds one model configuration per generation stage.
type ModelsConfig struct {
	Question ModelConfig `mapstructure:"question" validate:"required"`
	Rewrite  ModelConfig `mapstructure:"rewrite"  validate:"required"`
}

// ModelConfig describes a pretrained text-to-text model and how to reach it.
type ModelConfig struct {
	// Provider selects the inference backend.
	Provider string `mapstructure:"provider" validate:"required,oneof=huggingface gemini ollama"`

	// Name is the model identifier understood by the provider.
	Name string `mapstructure:"name" validate:"required"`

	// APIKey authenticates against hosted providers. Ollama ignores it.
	APIKey string `mapstructure:"api_key" validate:"required_if=Provider gemini"`

	// BaseURL overrides the provider endpoint.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// MaxOutputTokens bounds the length of the generated text.
	MaxOutputTokens int `mapstructure:"max_output_tokens" validate:"required,gt=0"`
}

// NotifyConfig contains the settings of the email notifier.
type NotifyConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	SMTPHost    string        `mapstructure:"smtp_host"    validate:"required_if=Enabled true"`
	SMTPPort    int           `mapstructure:"smtp_port"    validate:"gte=0,lt=65536"`
	Sender      string        `mapstructure:"sender"       validate:"required_if=Enabled true"`
	Receiver    string        `mapstructure:"receiver"     validate:"required_if=Enabled true"`
	AppPassword string        `mapstructure:"app_password" validate:"required_if=Enabled true"`
	MaxRetries  int           `mapstructure:"max_retries"  validate:"gte=0,lte=10"`
	Timeout     time.Duration `mapstructure:"timeout"      validate:"gte=0"`
}
