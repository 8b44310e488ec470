// Package wire owns the decoded-payload contract between codec and pipeline.
//
// Ownership boundary:
// - field-slot record primitives
// - protocol category identifiers
// - payload diagnostics helpers
//
// The serialization format itself lives behind the codec port; this package
// never inspects encoded bytes beyond diagnostics.
package wire
