package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfloor-dev/parrot-go/internal/testutil"
	"github.com/openfloor-dev/parrot-go/openfloor"
)

var parrotIdentity = Identity{
	SpeakerUri: "tag:openfloor.dev,2025:parrot",
	ServiceUrl: "http://localhost:8080",
}

func newTestParrot() *ParrotAgent {
	return NewParrotAgent(parrotIdentity)
}

func replyTexts(t *testing.T, env openfloor.Envelope) []string {
	t.Helper()
	var texts []string
	for _, ev := range env.Events {
		require.Equal(t, openfloor.EventUtterance, ev.EventType)
		d, err := openfloor.Utterance(ev)
		require.NoError(t, err)
		text, ok := d.Text()
		require.True(t, ok)
		texts = append(texts, text)
	}
	return texts
}

func TestProcessEnvelopeEmpty(t *testing.T) {
	p := newTestParrot()
	in := testutil.NewEnvelopeBuilder().Conversation("conv:empty").Build()

	out := p.ProcessEnvelope(context.Background(), in)

	assert.Empty(t, out.Events)
	assert.Equal(t, in.Conversation.ID, out.Conversation.ID)
	assert.Equal(t, in.Schema.Version, out.Schema.Version)
	assert.Equal(t, parrotIdentity.SpeakerUri, out.Sender.SpeakerUri)
	assert.Equal(t, parrotIdentity.ServiceUrl, out.Sender.ServiceUrl)
}

func TestProcessEnvelopeEchoesText(t *testing.T) {
	p := newTestParrot()
	in := testutil.NewEnvelopeBuilder().UtteranceTokens("Hello, ", "world!").Build()

	out := p.ProcessEnvelope(context.Background(), in)

	require.Len(t, out.Events, 1)
	assert.Equal(t, []string{"🦜 Hello, world!"}, replyTexts(t, out))

	d, err := openfloor.Utterance(out.Events[0])
	require.NoError(t, err)
	tokens := d.Features[openfloor.TextFeature].Tokens
	require.Len(t, tokens, 1)
	require.NotNil(t, tokens[0].Confidence)
	assert.Equal(t, 1.0, *tokens[0].Confidence)
}

func TestProcessEnvelopeRepliesToSender(t *testing.T) {
	p := newTestParrot()
	in := testutil.NewEnvelopeBuilder().
		Sender("tag:example.com,2025:alice", "https://alice.example.com").
		UtteranceText("hi").
		Build()

	out := p.ProcessEnvelope(context.Background(), in)

	require.Len(t, out.Events, 1)
	require.NotNil(t, out.Events[0].To)
	assert.Equal(t, "tag:example.com,2025:alice", out.Events[0].To.SpeakerUri)
}

func TestProcessEnvelopeIgnoresEventsForOthers(t *testing.T) {
	p := newTestParrot()
	in := testutil.NewEnvelopeBuilder().
		UtteranceTo("not for you", openfloor.To{SpeakerUri: "tag:example.com,2025:somebody-else"}).
		Build()

	out := p.ProcessEnvelope(context.Background(), in)

	assert.Empty(t, out.Events)
}

func TestProcessEnvelopeBroadcastIsAddressed(t *testing.T) {
	p := newTestParrot()
	in := testutil.NewEnvelopeBuilder().UtteranceText("to everyone").Build()

	out := p.ProcessEnvelope(context.Background(), in)

	assert.Equal(t, []string{"🦜 to everyone"}, replyTexts(t, out))
}

func TestProcessEnvelopeNoTextFeature(t *testing.T) {
	p := newTestParrot()

	tests := []struct {
		name string
		ev   openfloor.Event
	}{
		{"no dialogEvent parameter", openfloor.Event{EventType: openfloor.EventUtterance}},
		{"empty text feature", openfloor.Event{
			EventType: openfloor.EventUtterance,
			Parameters: map[string]any{
				openfloor.ParamDialogEvent: openfloor.DialogEvent{
					SpeakerUri: "tag:a",
					Features:   map[string]openfloor.Feature{openfloor.TextFeature: {}},
				},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testutil.NewEnvelopeBuilder().Event(tt.ev).Build()
			out := p.ProcessEnvelope(context.Background(), in)

			require.Len(t, out.Events, 1)
			assert.Equal(t, []string{noTextReply}, replyTexts(t, out))

			d, err := openfloor.Utterance(out.Events[0])
			require.NoError(t, err)
			tokens := d.Features[openfloor.TextFeature].Tokens
			require.Len(t, tokens, 1)
			assert.Nil(t, tokens[0].Confidence)
		})
	}
}

func TestProcessEnvelopeMalformedDialogEventRecovers(t *testing.T) {
	p := newTestParrot()
	in := testutil.NewEnvelopeBuilder().
		Event(openfloor.Event{
			EventType:  openfloor.EventUtterance,
			Parameters: map[string]any{openfloor.ParamDialogEvent: "garbage"},
		}).
		Build()

	out := p.ProcessEnvelope(context.Background(), in)

	assert.Equal(t, []string{recoveredReply}, replyTexts(t, out))
}

func TestProcessEnvelopePublishesManifest(t *testing.T) {
	p := newTestParrot()
	in := testutil.NewEnvelopeBuilder().
		Sender("tag:example.com,2025:alice", "").
		GetManifests().
		Build()

	out := p.ProcessEnvelope(context.Background(), in)

	require.Len(t, out.Events, 1)
	ev := out.Events[0]
	assert.Equal(t, openfloor.EventPublishManifests, ev.EventType)
	require.NotNil(t, ev.To)
	assert.Equal(t, "tag:example.com,2025:alice", ev.To.SpeakerUri)

	manifests, ok := ev.Parameters[openfloor.ParamServicingManifests].([]openfloor.Manifest)
	require.True(t, ok)
	require.Len(t, manifests, 1)
	assert.Equal(t, p.Manifest(), manifests[0])
	assert.Equal(t, parrotIdentity.SpeakerUri, manifests[0].Identification.SpeakerUri)
}

func TestProcessEnvelopeIgnoresOtherEventKinds(t *testing.T) {
	p := newTestParrot()
	in := testutil.NewEnvelopeBuilder().
		Event(openfloor.Event{EventType: openfloor.EventInvite}).
		Event(openfloor.Event{EventType: openfloor.EventBye}).
		Build()

	out := p.ProcessEnvelope(context.Background(), in)

	assert.Empty(t, out.Events)
}

func TestProcessEnvelopePreservesOrder(t *testing.T) {
	p := newTestParrot()
	in := testutil.NewEnvelopeBuilder().
		UtteranceTokens("A").
		UtteranceTokens("B").
		UtteranceTokens("C").
		Build()

	out := p.ProcessEnvelope(context.Background(), in)

	assert.Equal(t, []string{"🦜 A", "🦜 B", "🦜 C"}, replyTexts(t, out))
}

func TestProcessEnvelopeIdempotent(t *testing.T) {
	p := newTestParrot()
	in := testutil.NewEnvelopeBuilder().
		UtteranceTokens("again").
		GetManifests().
		Build()

	first := p.ProcessEnvelope(context.Background(), in)
	second := p.ProcessEnvelope(context.Background(), in)

	require.Len(t, first.Events, 2)
	require.Len(t, second.Events, 2)
	assert.Equal(t, replyTexts(t, openfloor.Envelope{Events: first.Events[:1]}),
		replyTexts(t, openfloor.Envelope{Events: second.Events[:1]}))
	assert.Equal(t, first.Events[1].Parameters, second.Events[1].Parameters)
	assert.Equal(t, first.Conversation, second.Conversation)
}

func TestProcessEnvelopeMixedAddressing(t *testing.T) {
	p := newTestParrot()
	in := testutil.NewEnvelopeBuilder().
		UtteranceTo("by speaker", openfloor.To{SpeakerUri: parrotIdentity.SpeakerUri}).
		UtteranceTo("by service", openfloor.To{ServiceUrl: parrotIdentity.ServiceUrl}).
		UtteranceTo("for someone else", openfloor.To{SpeakerUri: "tag:example.com,2025:other"}).
		Build()

	out := p.ProcessEnvelope(context.Background(), in)

	assert.Equal(t, []string{"🦜 by speaker", "🦜 by service"}, replyTexts(t, out))
}
