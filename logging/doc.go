// Package logging provides a minimal logging interface and adapters for the
// parrot agent.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the agent and the HTTP façade use for observability.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json")
//	srv := server.New(addr, floorAgent, server.WithLogger(logger))
//
// The design intentionally keeps the interface minimal so callers can plug
// any structured logger.
package logging
