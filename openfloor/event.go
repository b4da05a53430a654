package openfloor

// EventType identifies the kind of conversational event carried inside an
// envelope. The constants below cover the full Open Floor 1.0 event set;
// values outside this set survive parsing unchanged but fail validation.
type EventType string

const (
	// EventUtterance carries spoken or typed dialog content.
	EventUtterance EventType = "utterance"
	// EventContext supplies out-of-band conversational context.
	EventContext EventType = "context"
	// EventInvite asks an agent to join the conversation.
	EventInvite EventType = "invite"
	// EventUninvite removes a previously invited agent.
	EventUninvite EventType = "uninvite"
	// EventDeclineInvite rejects an invite.
	EventDeclineInvite EventType = "declineInvite"
	// EventBye announces that the sender is leaving the conversation.
	EventBye EventType = "bye"
	// EventGetManifests requests capability discovery.
	EventGetManifests EventType = "getManifests"
	// EventPublishManifests answers a getManifests request.
	EventPublishManifests EventType = "publishManifests"
	// EventRequestFloor asks the convener for the conversational floor.
	EventRequestFloor EventType = "requestFloor"
	// EventGrantFloor hands the floor to an agent.
	EventGrantFloor EventType = "grantFloor"
	// EventRevokeFloor withdraws the floor from an agent.
	EventRevokeFloor EventType = "revokeFloor"
	// EventYieldFloor returns the floor voluntarily.
	EventYieldFloor EventType = "yieldFloor"
)

var knownEventTypes = map[EventType]struct{}{
	EventUtterance:        {},
	EventContext:          {},
	EventInvite:           {},
	EventUninvite:         {},
	EventDeclineInvite:    {},
	EventBye:              {},
	EventGetManifests:     {},
	EventPublishManifests: {},
	EventRequestFloor:     {},
	EventGrantFloor:       {},
	EventRevokeFloor:      {},
	EventYieldFloor:       {},
}

// Known reports whether t is a member of the Open Floor event set.
func (t EventType) Known() bool {
	_, ok := knownEventTypes[t]
	return ok
}

// To is the optional addressing block of an event. An absent To means the
// event is directed at every party in the conversation.
type To struct {
	SpeakerUri string `json:"speakerUri,omitempty"`
	ServiceUrl string `json:"serviceUrl,omitempty"`
	Private    bool   `json:"private,omitempty"`
}

// Event is one unit of conversational content or control inside an envelope.
// Parameters holds the event-type specific payload (e.g. a dialogEvent for
// utterances, servicingManifests for publishManifests).
type Event struct {
	EventType  EventType      `json:"eventType"`
	To         *To            `json:"to,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// UtteranceOptions configures NewUtterance.
type UtteranceOptions struct {
	// To addresses the utterance; nil means broadcast.
	To *To
	// Confidence, when non-nil, is attached to the single text token.
	Confidence *float64
}

// NewUtterance constructs a text utterance event spoken by speakerUri. The
// text becomes a single token of the dialog event's "text" feature.
func NewUtterance(speakerUri, text string, optFns ...func(o *UtteranceOptions)) Event {
	opts := UtteranceOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	d := NewDialogEvent(speakerUri, Feature{
		MimeType: MimeTextPlain,
		Tokens:   []Token{{Value: text, Confidence: opts.Confidence}},
	})

	return Event{
		EventType:  EventUtterance,
		To:         opts.To,
		Parameters: map[string]any{ParamDialogEvent: d},
	}
}

// NewGetManifests constructs a capability-discovery request. A nil to asks
// every reachable agent to publish its manifests.
func NewGetManifests(to *To) Event {
	return Event{EventType: EventGetManifests, To: to}
}

// NewPublishManifests constructs the reply to a getManifests request,
// carrying the manifests of the agents this service can field.
func NewPublishManifests(manifests []Manifest, to *To) Event {
	return Event{
		EventType:  EventPublishManifests,
		To:         to,
		Parameters: map[string]any{ParamServicingManifests: manifests},
	}
}

// Parameter keys used by the event kinds this package constructs.
const (
	ParamDialogEvent        = "dialogEvent"
	ParamServicingManifests = "servicingManifests"
)

// Float returns a pointer to v. Convenience for optional confidence values.
func Float(v float64) *float64 { return &v }
