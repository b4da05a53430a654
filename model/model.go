package model

import (
	"context"
	"sync"
)

// Message is one turn of conversational input to a model.
type Message struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// Request captures the normalized model input: a system instruction plus the
// ordered conversation turns.
type Request struct {
	Instructions string    `json:"instructions"`
	Messages     []Message `json:"messages"`
}

// Response is the model's completed reply. No streaming: the agents in this
// repository answer with whole utterances.
type Response struct {
	Text string `json:"text"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", ...
}

// Model is the minimal interface the assistant agent needs to drive generation.
type Model interface {
	Complete(ctx context.Context, req Request) (Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// It returns Reply (or Err) for every request and records the requests seen.
type MockModel struct {
	Reply string
	Err   error

	mu       sync.Mutex
	requests []Request
}

// Complete returns the canned reply or error.
func (m *MockModel) Complete(_ context.Context, req Request) (Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.Err != nil {
		return Response{}, m.Err
	}
	return Response{Text: m.Reply}, nil
}

// Info identifies the mock.
func (m *MockModel) Info() Info { return Info{Name: "mock", Provider: "mock"} }

// Requests returns a copy of the requests seen so far.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}
