// Package config loads and validates the agent's YAML configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Agent kinds selectable via configuration.
const (
	KindParrot    = "parrot"
	KindAssistant = "assistant"
)

// Config holds the runtime configuration loaded from config.yaml.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Agent   AgentConfig   `yaml:"agent"`
	Model   ModelConfig   `yaml:"model"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ServerConfig controls the HTTP façade. PublicURL is the service URL this
// agent reports in its manifest and matches against event addressing.
type ServerConfig struct {
	Addr      string `yaml:"addr"`
	PublicURL string `yaml:"public_url"`
}

// AgentConfig controls the agent's identity and manifest.
type AgentConfig struct {
	Kind         string   `yaml:"kind"`
	Name         string   `yaml:"name"`
	Organization string   `yaml:"organization"`
	Synopsis     string   `yaml:"synopsis"`
	SpeakerURI   string   `yaml:"speaker_uri"`
	Keyphrases   []string `yaml:"keyphrases"`
	Descriptions []string `yaml:"descriptions"`
}

// ModelConfig selects the language model for the assistant kind.
type ModelConfig struct {
	Provider string `yaml:"provider"`
	Name     string `yaml:"name"`
	APIKey   string `yaml:"api_key"`
}

// LoggingConfig controls log level and format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the optional Prometheus listener. An empty addr
// disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no config file is supplied: a
// parrot agent on :8080.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates configuration from the provided path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.PublicURL == "" {
		c.Server.PublicURL = "http://localhost:8080"
	}
	if c.Agent.Kind == "" {
		c.Agent.Kind = KindParrot
	}
	if c.Agent.Name == "" {
		c.Agent.Name = "Parrot"
	}
	if c.Agent.SpeakerURI == "" {
		c.Agent.SpeakerURI = fmt.Sprintf("tag:openfloor.dev,2025:%s", slug(c.Agent.Name))
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Model.Provider == "" {
		c.Model.Provider = "openai"
	}
}

// Validate checks cross-field consistency after defaults are applied.
func (c *Config) Validate() error {
	switch c.Agent.Kind {
	case KindParrot, KindAssistant:
	default:
		return fmt.Errorf("agent.kind must be %q or %q, got %q", KindParrot, KindAssistant, c.Agent.Kind)
	}

	if c.Agent.Kind == KindAssistant {
		switch c.Model.Provider {
		case "openai", "anthropic":
		default:
			return fmt.Errorf("model.provider must be \"openai\" or \"anthropic\", got %q", c.Model.Provider)
		}
	}

	return nil
}

// slug lowercases a display name into a URI-safe fragment.
func slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(s, " ", "-")
}
