package openfloor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MimeTextPlain is the mime type of the text feature's tokens.
const MimeTextPlain = "text/plain"

// TextFeature is the feature key carrying the textual form of an utterance.
const TextFeature = "text"

// ErrNoDialogEvent reports an utterance event with no dialogEvent parameter.
var ErrNoDialogEvent = errors.New("openfloor: event has no dialogEvent parameter")

// Token is one unit of a feature's content. Confidence is optional and
// distinguishable from an explicit 0.0.
type Token struct {
	Value      string   `json:"value,omitempty"`
	ValueUrl   string   `json:"valueUrl,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Links      []string `json:"links,omitempty"`
}

// Feature is an ordered token sequence of a single media type, e.g. the
// "text" feature of a spoken or typed utterance.
type Feature struct {
	MimeType string  `json:"mimeType,omitempty"`
	Lang     string  `json:"lang,omitempty"`
	Encoding string  `json:"encoding,omitempty"`
	Tokens   []Token `json:"tokens"`
}

// Span records when an utterance happened.
type Span struct {
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

// DialogEvent is the payload of an utterance event: who spoke, when, and the
// typed features of what was said.
type DialogEvent struct {
	ID         string             `json:"id"`
	SpeakerUri string             `json:"speakerUri"`
	Span       *Span              `json:"span,omitempty"`
	Features   map[string]Feature `json:"features"`
}

// NewDialogEvent builds a dialog event for speakerUri carrying the given
// text feature, stamped with a fresh id and the current time.
func NewDialogEvent(speakerUri string, text Feature) DialogEvent {
	now := time.Now().UTC()
	return DialogEvent{
		ID:         uuid.NewString(),
		SpeakerUri: speakerUri,
		Span:       &Span{StartTime: &now},
		Features:   map[string]Feature{TextFeature: text},
	}
}

// Text concatenates the values of the text feature's tokens in order with no
// separator; tokens are assumed to carry their own whitespace. ok is false
// when the feature is absent or has zero tokens.
func (d DialogEvent) Text() (text string, ok bool) {
	f, present := d.Features[TextFeature]
	if !present || len(f.Tokens) == 0 {
		return "", false
	}
	var sb strings.Builder
	for _, t := range f.Tokens {
		sb.WriteString(t.Value)
	}
	return sb.String(), true
}

// Utterance extracts the dialog event from an utterance-kind event. It
// accepts both locally constructed events (typed DialogEvent parameter) and
// events decoded from JSON (generic map parameter). A missing parameter is
// reported as ErrNoDialogEvent; a structurally malformed one as a decode
// error.
func Utterance(ev Event) (*DialogEvent, error) {
	raw, present := ev.Parameters[ParamDialogEvent]
	if !present {
		return nil, ErrNoDialogEvent
	}

	switch v := raw.(type) {
	case DialogEvent:
		return &v, nil
	case *DialogEvent:
		return v, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("openfloor: encode dialogEvent: %w", err)
		}
		var d DialogEvent
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("openfloor: malformed dialogEvent: %w", err)
		}
		return &d, nil
	}
}
