// Package bus owns in-process notification delivery.
//
// Ownership boundary:
// - subscription bookkeeping per event name
// - synchronous delivery in registration order
// - handler failure isolation
package bus
