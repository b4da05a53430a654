// Package model defines the provider-neutral text generation interface used
// by the assistant agent, plus a MockModel for tests. Concrete providers
// live in the openai and anthropic subpackages.
package model
