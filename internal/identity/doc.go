// Package identity owns platform identity for outbound calls.
//
// Ownership boundary:
// - the closed platform table and per-platform defaults
// - derived identity and user-agent strings
// - token and sync capability lookups
package identity
