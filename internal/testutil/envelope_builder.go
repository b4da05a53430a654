package testutil

import (
	"github.com/openfloor-dev/parrot-go/openfloor"
)

// EnvelopeBuilder provides a fluent helper for constructing envelopes in tests.
// Example:
//
//	env := NewEnvelopeBuilder().Conversation("conv:1").UtteranceText("hi").Build()
//
// Chain only the parts you need; sensible defaults are applied.
type EnvelopeBuilder struct {
	schemaVersion  string
	conversationID string
	sender         openfloor.Sender
	events         []openfloor.Event
}

// NewEnvelopeBuilder creates a builder with a default sender and conversation.
func NewEnvelopeBuilder() *EnvelopeBuilder {
	return &EnvelopeBuilder{
		schemaVersion:  openfloor.CurrentSchemaVersion,
		conversationID: "conv:test",
		sender:         openfloor.Sender{SpeakerUri: "tag:example.com,2025:test-sender"},
	}
}

// Schema overrides the schema version (chainable).
func (b *EnvelopeBuilder) Schema(version string) *EnvelopeBuilder {
	b.schemaVersion = version
	return b
}

// Conversation sets the conversation id (chainable).
func (b *EnvelopeBuilder) Conversation(id string) *EnvelopeBuilder {
	b.conversationID = id
	return b
}

// Sender sets the envelope sender (chainable).
func (b *EnvelopeBuilder) Sender(speakerUri, serviceUrl string) *EnvelopeBuilder {
	b.sender = openfloor.Sender{SpeakerUri: speakerUri, ServiceUrl: serviceUrl}
	return b
}

// Event appends a prebuilt event (chainable).
func (b *EnvelopeBuilder) Event(ev openfloor.Event) *EnvelopeBuilder {
	b.events = append(b.events, ev)
	return b
}

// UtteranceText appends a broadcast text utterance spoken by the sender (chainable).
func (b *EnvelopeBuilder) UtteranceText(text string) *EnvelopeBuilder {
	return b.Event(openfloor.NewUtterance(b.sender.SpeakerUri, text))
}

// UtteranceTo appends a text utterance addressed to a specific party (chainable).
func (b *EnvelopeBuilder) UtteranceTo(text string, to openfloor.To) *EnvelopeBuilder {
	return b.Event(openfloor.NewUtterance(b.sender.SpeakerUri, text, func(o *openfloor.UtteranceOptions) {
		o.To = &to
	}))
}

// UtteranceTokens appends a text utterance whose text feature holds one token
// per value, preserving order (chainable).
func (b *EnvelopeBuilder) UtteranceTokens(values ...string) *EnvelopeBuilder {
	tokens := make([]openfloor.Token, len(values))
	for i, v := range values {
		tokens[i] = openfloor.Token{Value: v}
	}
	d := openfloor.NewDialogEvent(b.sender.SpeakerUri, openfloor.Feature{
		MimeType: openfloor.MimeTextPlain,
		Tokens:   tokens,
	})
	return b.Event(openfloor.Event{
		EventType:  openfloor.EventUtterance,
		Parameters: map[string]any{openfloor.ParamDialogEvent: d},
	})
}

// GetManifests appends a broadcast capability-discovery request (chainable).
func (b *EnvelopeBuilder) GetManifests() *EnvelopeBuilder {
	return b.Event(openfloor.NewGetManifests(nil))
}

// Build assembles the envelope.
func (b *EnvelopeBuilder) Build() openfloor.Envelope {
	return openfloor.NewEnvelope(
		openfloor.Schema{Version: b.schemaVersion},
		b.conversationID,
		b.sender,
		b.events,
	)
}
