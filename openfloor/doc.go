// Package openfloor implements the value types and payload handling for the
// Open Floor inter-agent conversation protocol: envelopes, events, dialog
// events (utterances), assistant manifests and the JSON payload wrapper
// exchanged over the wire.
//
// The package is the protocol support layer the rest of the repository
// consumes. Envelopes are treated as immutable once constructed; callers
// build new envelopes via NewEnvelope rather than mutating parsed ones.
// Inbound JSON is checked with ValidatePayload before any agent logic runs,
// so downstream code can assume a structurally valid envelope.
package openfloor
