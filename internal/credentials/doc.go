// Package credentials owns access and refresh token state.
//
// Ownership boundary:
// - racefree token storage with change notification
// - delegation to the external refresh capability
// - optional file persistence
//
// The refresh exchange protocol itself stays outside; this package only
// invokes the injected capability and stores what it returns.
package credentials
