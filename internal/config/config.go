package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

// ExtractionConfig tunes the remote tier. A nil Temperature means unset; 0 is
// a valid setting.
type ExtractionConfig struct {
	TimeoutSeconds int      `toml:"timeout_seconds"`
	MaxTokens      int      `toml:"max_tokens"`
	Temperature    *float32 `toml:"temperature"`
	SystemPrompt   string   `toml:"system_prompt"`
}

// Timeout returns the remote call bound as a duration.
func (c ExtractionConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type NLPConfig struct {
	// ModelDir points at a prose model on disk; empty uses the built-in model.
	ModelDir   string `toml:"model_dir"`
	DisableNER bool   `toml:"disable_ner"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type LogConfig struct {
	Level    string `toml:"level"`
	Encoding string `toml:"encoding"`
	Output   string `toml:"output"`
}

type ConcurrencyConfig struct {
	BatchScenes int `toml:"batch_scenes"`
}

type Config struct {
	LLM         LLMConfig         `toml:"llm"`
	Extraction  ExtractionConfig  `toml:"extraction"`
	NLP         NLPConfig         `toml:"nlp"`
	Server      ServerConfig      `toml:"server"`
	Log         LogConfig         `toml:"log"`
	Concurrency ConcurrencyConfig `toml:"concurrency"`
}

// Defaults returns a Config with built-in values. The remote tier stays
// disabled until an API key is supplied. Model and BaseURL are left empty so
// the llm factory picks the defaults of whichever provider is selected.
func Defaults() *Config {
	return &Config{
		LLM: LLMConfig{Provider: "deepseek"},
		Extraction: ExtractionConfig{
			TimeoutSeconds: 30,
			MaxTokens:      2000,
		},
		Server:      ServerConfig{Port: "8080"},
		Log:         LogConfig{Level: "info", Encoding: "json"},
		Concurrency: ConcurrencyConfig{BatchScenes: 4},
	}
}

// Load reads a TOML config file over the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides file values with environment variables when present.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("DEEPSEEK_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	// The generic key wins over the provider specific one.
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Extraction.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("NER_MODEL_DIR"); v != "" {
		c.NLP.ModelDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}
