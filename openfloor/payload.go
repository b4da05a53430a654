package openfloor

import (
	"encoding/json"
	"fmt"
)

// Payload is the wire-level wrapper around an envelope: the JSON body posted
// between agents is {"openFloor": {...}}.
type Payload struct {
	OpenFloor Envelope `json:"openFloor"`
}

// Marshal serializes the payload for transport.
func (p Payload) Marshal() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("openfloor: marshal payload: %w", err)
	}
	return data, nil
}

// ValidationError locates a structural problem in an inbound payload.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidatePayload parses and structurally validates an inbound JSON payload.
// On success it returns the parsed payload and a nil error list; on failure
// the payload is nil and the list holds every problem found, so callers can
// report them all at once.
func ValidatePayload(data []byte) (*Payload, []ValidationError) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, []ValidationError{{Path: "$", Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}

	var errs []ValidationError
	env := p.OpenFloor
	if env.Schema.Version == "" {
		errs = append(errs, ValidationError{Path: "openFloor.schema.version", Message: "missing schema version"})
	}
	if env.Conversation.ID == "" {
		errs = append(errs, ValidationError{Path: "openFloor.conversation.id", Message: "missing conversation id"})
	}
	if env.Sender.SpeakerUri == "" {
		errs = append(errs, ValidationError{Path: "openFloor.sender.speakerUri", Message: "missing sender speakerUri"})
	}
	for i, ev := range env.Events {
		if ev.EventType == "" {
			errs = append(errs, ValidationError{
				Path:    fmt.Sprintf("openFloor.events[%d].eventType", i),
				Message: "missing eventType",
			})
			continue
		}
		if !ev.EventType.Known() {
			errs = append(errs, ValidationError{
				Path:    fmt.Sprintf("openFloor.events[%d].eventType", i),
				Message: fmt.Sprintf("unknown eventType %q", ev.EventType),
			})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &p, nil
}
