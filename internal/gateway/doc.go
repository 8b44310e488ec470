// Package gateway owns the local stub upstream used for development and
// integration tests.
//
// Ownership boundary:
// - canned fixture responses keyed by request path
// - optional shared-token admission
// - token rotation announcements via response headers
//
// Fixture bodies come from configuration; the gateway never generates or
// interprets encoded payloads.
package gateway
