package agent

import (
	"context"
	"errors"

	"github.com/openfloor-dev/parrot-go/openfloor"
)

// Canned parrot replies. The echo prefix and both recovery texts are part of
// the agent's observable contract.
const (
	echoPrefix     = "🦜 "
	noTextReply    = "🦜 *chirp* I can only repeat text messages!"
	recoveredReply = "🦜 *confused chirp* Something went wrong while trying to repeat that!"
	parrotSynopsis = "A simple parrot agent that repeats what you say"
)

// ParrotAgent echoes addressed text utterances back to their sender with a
// parrot prefix. It holds no per-call state.
type ParrotAgent struct {
	BaseAgent
}

// NewParrotAgent constructs the echo agent. Manifest fields not overridden
// via options get parrot defaults.
func NewParrotAgent(identity Identity, optFns ...func(o *Options)) *ParrotAgent {
	opts := Options{
		Name:         "Parrot",
		Organization: "Open Floor",
		Synopsis:     parrotSynopsis,
		Keyphrases:   []string{"parrot", "repeat", "echo"},
		Descriptions: []string{"Repeats any text message sent to it, prefixed with a parrot emoji"},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ParrotAgent{BaseAgent: NewBaseAgent(identity, opts)}
}

// ProcessEnvelope implements FloorAgent.
func (p *ParrotAgent) ProcessEnvelope(ctx context.Context, in openfloor.Envelope) openfloor.Envelope {
	return p.Dispatch(ctx, in, p.respond)
}

// respond applies the echo transform to one addressed utterance. Every
// failure path ends in a canned reply: a missing or empty text feature gets
// the chirp, a malformed dialog event gets the confused chirp. Successful
// echoes carry confidence 1.0; the canned replies assert none.
func (p *ParrotAgent) respond(_ context.Context, replyTo *openfloor.To, ev openfloor.Event) []openfloor.Event {
	speaker := p.Identity().SpeakerUri

	d, err := openfloor.Utterance(ev)
	switch {
	case errors.Is(err, openfloor.ErrNoDialogEvent):
		return []openfloor.Event{openfloor.NewUtterance(speaker, noTextReply, func(o *openfloor.UtteranceOptions) {
			o.To = replyTo
		})}
	case err != nil:
		p.Logger().Warn("failed to extract utterance text", "agent", p.Name(), "error", err)
		return []openfloor.Event{openfloor.NewUtterance(speaker, recoveredReply, func(o *openfloor.UtteranceOptions) {
			o.To = replyTo
		})}
	}

	text, ok := d.Text()
	if !ok {
		return []openfloor.Event{openfloor.NewUtterance(speaker, noTextReply, func(o *openfloor.UtteranceOptions) {
			o.To = replyTo
		})}
	}

	return []openfloor.Event{openfloor.NewUtterance(speaker, echoPrefix+text, func(o *openfloor.UtteranceOptions) {
		o.To = replyTo
		o.Confidence = openfloor.Float(1.0)
	})}
}
