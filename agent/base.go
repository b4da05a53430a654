package agent

import (
	"context"

	"github.com/openfloor-dev/parrot-go/logging"
	"github.com/openfloor-dev/parrot-go/openfloor"
)

// Identity is the (speakerUri, serviceUrl) pair that identifies an agent
// instance to its peers. Fixed at construction.
type Identity struct {
	SpeakerUri string
	ServiceUrl string
}

// FloorAgent is the interface every Open Floor agent in this repository
// implements. ProcessEnvelope never returns an error: internal failures are
// converted into response events so protocol processing cannot crash a
// request.
type FloorAgent interface {
	Name() string
	Identity() Identity
	Manifest() openfloor.Manifest
	ProcessEnvelope(ctx context.Context, in openfloor.Envelope) openfloor.Envelope
}

// respondFunc produces the response events for one addressed utterance.
// replyTo targets the inbound envelope's sender.
type respondFunc func(ctx context.Context, replyTo *openfloor.To, ev openfloor.Event) []openfloor.Event

// Options configures agent construction: display name, manifest fields and
// logging.
type Options struct {
	Name         string
	Organization string
	Synopsis     string
	Keyphrases   []string
	Descriptions []string
	Logger       logging.Logger
}

// BaseAgent bundles the identity, manifest and envelope dispatch shared by
// all agent kinds. Embed it in a concrete agent and supply a respond
// function via Dispatch. All fields are immutable after construction, so a
// BaseAgent is safe for concurrent use.
type BaseAgent struct {
	name     string
	identity Identity
	manifest openfloor.Manifest
	logger   logging.Logger
}

// NewBaseAgent constructs a BaseAgent with the given identity. The manifest
// is assembled once here and reused across all requests.
func NewBaseAgent(identity Identity, opts Options) BaseAgent {
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	manifest := openfloor.Manifest{
		Identification: openfloor.Identification{
			SpeakerUri:         identity.SpeakerUri,
			ServiceUrl:         identity.ServiceUrl,
			Organization:       opts.Organization,
			ConversationalName: opts.Name,
			Synopsis:           opts.Synopsis,
		},
		Capabilities: []openfloor.Capability{{
			Keyphrases:   opts.Keyphrases,
			Descriptions: opts.Descriptions,
		}},
	}

	return BaseAgent{
		name:     opts.Name,
		identity: identity,
		manifest: manifest,
		logger:   opts.Logger,
	}
}

// Name returns the agent's conversational name.
func (b *BaseAgent) Name() string { return b.name }

// Identity returns the agent's addressing identity.
func (b *BaseAgent) Identity() Identity { return b.identity }

// Manifest returns the agent's capability manifest.
func (b *BaseAgent) Manifest() openfloor.Manifest { return b.manifest }

// Logger returns the agent's logger.
func (b *BaseAgent) Logger() logging.Logger { return b.logger }

// AddressedToMe implements the Open Floor addressing rule: an event with no
// to block is for everyone; otherwise it is for this agent when either the
// speakerUri or the serviceUrl matches.
func (b *BaseAgent) AddressedToMe(to *openfloor.To) bool {
	if to == nil {
		return true
	}
	if to.SpeakerUri != "" && to.SpeakerUri == b.identity.SpeakerUri {
		return true
	}
	if to.ServiceUrl != "" && to.ServiceUrl == b.identity.ServiceUrl {
		return true
	}
	return false
}

// Dispatch walks the inbound events in order, routes each addressed event by
// kind and assembles the reply envelope: schema and conversation copied from
// the inbound envelope, sender set to this agent, events in input order.
// Utterances are delegated to respond; getManifests yields exactly one
// publishManifests carrying this agent's manifest; every other kind is
// skipped.
func (b *BaseAgent) Dispatch(ctx context.Context, in openfloor.Envelope, respond respondFunc) openfloor.Envelope {
	replyTo := &openfloor.To{SpeakerUri: in.Sender.SpeakerUri}

	var out []openfloor.Event
	for _, ev := range in.Events {
		if !b.AddressedToMe(ev.To) {
			b.logger.Debug("event not addressed to this agent", "agent", b.name, "event_type", ev.EventType)
			continue
		}

		switch ev.EventType {
		case openfloor.EventUtterance:
			out = append(out, respond(ctx, replyTo, ev)...)
		case openfloor.EventGetManifests:
			out = append(out, openfloor.NewPublishManifests([]openfloor.Manifest{b.manifest}, replyTo))
		default:
			// Floor-management and context events carry no reply from this agent.
		}
	}

	b.logger.Debug("envelope dispatched",
		"agent", b.name,
		"conversation", in.Conversation.ID,
		"events_in", len(in.Events),
		"events_out", len(out),
	)

	return openfloor.NewEnvelope(in.Schema, in.Conversation.ID, openfloor.Sender{
		SpeakerUri: b.identity.SpeakerUri,
		ServiceUrl: b.identity.ServiceUrl,
	}, out)
}
