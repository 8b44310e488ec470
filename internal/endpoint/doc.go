// Package endpoint owns the path catalog and domain routing for outbound calls.
//
// Ownership boundary:
// - endpoint descriptors and category lookups
// - error-kind and square-path tables
// - base-URL selection and environment-driven domain table
package endpoint
