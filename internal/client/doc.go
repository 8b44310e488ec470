// Package client owns the outbound request lifecycle.
//
// Ownership boundary:
// - header composition and per-call envelopes
// - the build, send, decode, classify stage machine
// - single-shot refresh retry on expired tokens
// - typed call failures
//
// Encoding, transport and credential exchange live behind ports; this
// package sequences them and never interprets encoded bytes itself.
package client
