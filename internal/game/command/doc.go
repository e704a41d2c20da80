// Package command turns free-text command lines into typed command envelopes.
//
// A line is tokenized into words and bracketed lists, matched against the
// command grammar and emitted as a Command whose payload is JSON. The
// Registry validates envelopes before the engine decides them, and Decision
// carries the pure outcome of that decision.
package command
