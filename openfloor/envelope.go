package openfloor

// CurrentSchemaVersion is the Open Floor schema version this package speaks.
const CurrentSchemaVersion = "1.0.0"

// Schema identifies the protocol revision of an envelope.
type Schema struct {
	Version string `json:"version"`
	URL     string `json:"url,omitempty"`
}

// Conversation identifies the dialog an envelope belongs to.
type Conversation struct {
	ID string `json:"id"`
}

// Sender identifies the party that produced an envelope. SpeakerUri is the
// stable identity (a tag URI by convention); ServiceUrl is where the sender
// can be reached, when it is reachable at all.
type Sender struct {
	SpeakerUri string `json:"speakerUri"`
	ServiceUrl string `json:"serviceUrl,omitempty"`
}

// Envelope is the top-level message container exchanged between agents.
// Treat a constructed envelope as immutable; replies are new envelopes.
type Envelope struct {
	Schema       Schema       `json:"schema"`
	Conversation Conversation `json:"conversation"`
	Sender       Sender       `json:"sender"`
	Events       []Event      `json:"events"`
}

// NewEnvelope constructs an envelope. A zero-version schema is upgraded to
// CurrentSchemaVersion; events may be empty but never nil on the wire.
func NewEnvelope(schema Schema, conversationID string, sender Sender, events []Event) Envelope {
	if schema.Version == "" {
		schema.Version = CurrentSchemaVersion
	}
	if events == nil {
		events = []Event{}
	}
	return Envelope{
		Schema:       schema,
		Conversation: Conversation{ID: conversationID},
		Sender:       sender,
		Events:       events,
	}
}
