package openfloor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{
	"openFloor": {
		"schema": {"version": "1.0.0"},
		"conversation": {"id": "conv:4567"},
		"sender": {"speakerUri": "tag:example.com,2025:1234"},
		"events": [
			{
				"eventType": "utterance",
				"parameters": {
					"dialogEvent": {
						"speakerUri": "tag:example.com,2025:1234",
						"features": {
							"text": {"mimeType": "text/plain", "tokens": [{"value": "Hello, world!"}]}
						}
					}
				}
			}
		]
	}
}`

func TestValidatePayload(t *testing.T) {
	p, errs := ValidatePayload([]byte(validPayload))
	require.Empty(t, errs)
	require.NotNil(t, p)

	env := p.OpenFloor
	assert.Equal(t, "1.0.0", env.Schema.Version)
	assert.Equal(t, "conv:4567", env.Conversation.ID)
	assert.Equal(t, "tag:example.com,2025:1234", env.Sender.SpeakerUri)
	require.Len(t, env.Events, 1)
	assert.Equal(t, EventUtterance, env.Events[0].EventType)
}

func TestValidatePayloadInvalidJSON(t *testing.T) {
	p, errs := ValidatePayload([]byte("{not json"))
	assert.Nil(t, p)
	require.Len(t, errs, 1)
	assert.Equal(t, "$", errs[0].Path)
}

func TestValidatePayloadCollectsAllErrors(t *testing.T) {
	body := `{"openFloor": {"events": [{"eventType": "shout"}, {}]}}`

	p, errs := ValidatePayload([]byte(body))
	assert.Nil(t, p)

	paths := make([]string, len(errs))
	for i, e := range errs {
		paths[i] = e.Path
	}
	assert.ElementsMatch(t, []string{
		"openFloor.schema.version",
		"openFloor.conversation.id",
		"openFloor.sender.speakerUri",
		"openFloor.events[0].eventType",
		"openFloor.events[1].eventType",
	}, paths)
}

func TestPayloadMarshalRoundTrip(t *testing.T) {
	env := NewEnvelope(
		Schema{},
		"conv:rt",
		Sender{SpeakerUri: "tag:example.com,2025:rt"},
		[]Event{NewUtterance("tag:example.com,2025:rt", "round trip")},
	)

	data, err := (Payload{OpenFloor: env}).Marshal()
	require.NoError(t, err)

	parsed, errs := ValidatePayload(data)
	require.Empty(t, errs)

	assert.Equal(t, CurrentSchemaVersion, parsed.OpenFloor.Schema.Version)
	assert.Equal(t, "conv:rt", parsed.OpenFloor.Conversation.ID)
	require.Len(t, parsed.OpenFloor.Events, 1)

	d, err := Utterance(parsed.OpenFloor.Events[0])
	require.NoError(t, err)
	text, ok := d.Text()
	require.True(t, ok)
	assert.Equal(t, "round trip", text)
}

func TestEnvelopeMarshalsEmptyEventsAsArray(t *testing.T) {
	env := NewEnvelope(Schema{}, "conv:empty", Sender{SpeakerUri: "tag:a"}, nil)

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"events":[]`)
}

func TestEventTypeKnown(t *testing.T) {
	assert.True(t, EventUtterance.Known())
	assert.True(t, EventPublishManifests.Known())
	assert.False(t, EventType("shout").Known())
	assert.False(t, EventType("").Known())
}
