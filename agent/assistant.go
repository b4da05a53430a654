package agent

import (
	"context"
	"errors"

	"github.com/openfloor-dev/parrot-go/model"
	"github.com/openfloor-dev/parrot-go/openfloor"
)

const (
	assistantNoText   = "Sorry, I can only respond to text messages."
	assistantFallback = "Sorry, I couldn't come up with a reply just now."

	defaultInstructions = "You are a helpful conversational agent on an Open Floor conversation. " +
		"Keep replies short and friendly."
)

// AssistantAgent answers addressed text utterances by delegating to a
// language model. It shares ParrotAgent's dispatch skeleton and its
// never-raise contract: a model failure becomes a canned apology utterance.
type AssistantAgent struct {
	BaseAgent
	model        model.Model
	instructions string
}

// AssistantOptions extends Options with model behaviour.
type AssistantOptions struct {
	Options
	Instructions string
}

// NewAssistantAgent constructs a model-backed agent.
func NewAssistantAgent(identity Identity, m model.Model, optFns ...func(o *AssistantOptions)) *AssistantAgent {
	opts := AssistantOptions{
		Options: Options{
			Name:         "Assistant",
			Organization: "Open Floor",
			Synopsis:     "A conversational agent backed by a language model",
			Keyphrases:   []string{"chat", "assistant", "question"},
			Descriptions: []string{"Answers text messages conversationally using a language model"},
		},
		Instructions: defaultInstructions,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &AssistantAgent{
		BaseAgent:    NewBaseAgent(identity, opts.Options),
		model:        m,
		instructions: opts.Instructions,
	}
}

// ProcessEnvelope implements FloorAgent.
func (a *AssistantAgent) ProcessEnvelope(ctx context.Context, in openfloor.Envelope) openfloor.Envelope {
	return a.Dispatch(ctx, in, a.respond)
}

func (a *AssistantAgent) respond(ctx context.Context, replyTo *openfloor.To, ev openfloor.Event) []openfloor.Event {
	speaker := a.Identity().SpeakerUri

	reply := func(text string) []openfloor.Event {
		return []openfloor.Event{openfloor.NewUtterance(speaker, text, func(o *openfloor.UtteranceOptions) {
			o.To = replyTo
		})}
	}

	d, err := openfloor.Utterance(ev)
	if err != nil {
		if !errors.Is(err, openfloor.ErrNoDialogEvent) {
			a.Logger().Warn("failed to extract utterance text", "agent", a.Name(), "error", err)
		}
		return reply(assistantNoText)
	}

	text, ok := d.Text()
	if !ok {
		return reply(assistantNoText)
	}

	resp, err := a.model.Complete(ctx, model.Request{
		Instructions: a.instructions,
		Messages:     []model.Message{{Role: "user", Text: text}},
	})
	if err != nil {
		a.Logger().Warn("model completion failed", "agent", a.Name(), "model", a.model.Info().Name, "error", err)
		return reply(assistantFallback)
	}

	return reply(resp.Text)
}
