// Package parrot provides a high-level façade wiring configuration, logging,
// an Open Floor agent and the HTTP façade into a runnable service. Most
// applications interact with this package by:
//  1. Loading (or defaulting) a config.Config
//  2. Creating an App via New() (optionally overriding the logger or model)
//  3. Calling Run with a cancellable context
package parrot

import (
	"context"
	"fmt"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	openaisdk "github.com/openai/openai-go"

	"github.com/openfloor-dev/parrot-go/agent"
	"github.com/openfloor-dev/parrot-go/config"
	"github.com/openfloor-dev/parrot-go/logging"
	"github.com/openfloor-dev/parrot-go/metrics"
	"github.com/openfloor-dev/parrot-go/model"
	"github.com/openfloor-dev/parrot-go/model/anthropic"
	"github.com/openfloor-dev/parrot-go/model/openai"
	"github.com/openfloor-dev/parrot-go/server"
)

// Options configures the App beyond what the config file carries.
type Options struct {
	// Logger overrides the config-derived logger.
	Logger logging.Logger
	// Model overrides the config-derived model for the assistant kind.
	// Useful for tests and custom providers.
	Model model.Model
}

// App aggregates the configured agent and its HTTP façade.
type App struct {
	cfg    *config.Config
	logger logging.Logger
	agent  agent.FloorAgent
	server *server.Server
}

// New builds an App from configuration.
func New(cfg *config.Config, optFns ...func(o *Options)) (*App, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewSlogLogger(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
	}

	fa, err := buildAgent(cfg, logger, opts.Model)
	if err != nil {
		return nil, err
	}

	srv := server.New(cfg.Server.Addr, fa, func(o *server.Options) {
		o.Logger = logger
	})

	return &App{cfg: cfg, logger: logger, agent: fa, server: srv}, nil
}

// Agent returns the configured floor agent.
func (a *App) Agent() agent.FloorAgent { return a.agent }

// Run starts the metrics listener (when configured) and serves HTTP until
// the context is canceled.
func (a *App) Run(ctx context.Context) error {
	metrics.Start(ctx, a.cfg.Metrics.Addr, a.logger)
	return a.server.Start(ctx)
}

func buildAgent(cfg *config.Config, logger logging.Logger, override model.Model) (agent.FloorAgent, error) {
	identity := agent.Identity{
		SpeakerUri: cfg.Agent.SpeakerURI,
		ServiceUrl: cfg.Server.PublicURL,
	}

	withManifest := func(o *agent.Options) {
		if cfg.Agent.Name != "" {
			o.Name = cfg.Agent.Name
		}
		if cfg.Agent.Organization != "" {
			o.Organization = cfg.Agent.Organization
		}
		if cfg.Agent.Synopsis != "" {
			o.Synopsis = cfg.Agent.Synopsis
		}
		if len(cfg.Agent.Keyphrases) > 0 {
			o.Keyphrases = cfg.Agent.Keyphrases
		}
		if len(cfg.Agent.Descriptions) > 0 {
			o.Descriptions = cfg.Agent.Descriptions
		}
		o.Logger = logger
	}

	switch cfg.Agent.Kind {
	case config.KindAssistant:
		m := override
		if m == nil {
			var err error
			m, err = buildModel(cfg.Model)
			if err != nil {
				return nil, err
			}
		}
		return agent.NewAssistantAgent(identity, m, func(o *agent.AssistantOptions) {
			withManifest(&o.Options)
		}), nil
	default:
		return agent.NewParrotAgent(identity, withManifest), nil
	}
}

func buildModel(cfg config.ModelConfig) (model.Model, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewModel(func(o *openai.Options) {
			if cfg.Name != "" {
				o.Model = openaisdk.ChatModel(cfg.Name)
			}
			o.APIKey = cfg.APIKey
		}), nil
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cfg.Name != "" {
				o.Model = anthropicsdk.Model(cfg.Name)
			}
			o.APIKey = cfg.APIKey
		}), nil
	default:
		return nil, fmt.Errorf("unsupported model provider %q", cfg.Provider)
	}
}
