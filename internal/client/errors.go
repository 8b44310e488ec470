package client

import (
	"errors"
	"fmt"
)

// Kind labels a call failure class.
type Kind string

const (
	KindConfiguration Kind = "ConfigurationError"
	KindTimeout       Kind = "RequestTimeout"
	KindRequest       Kind = "RequestError"
)

// Failure is the error type every failed call returns.
type Failure struct {
	Kind    Kind
	Message string
	Detail  any
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func newFailure(kind Kind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsFailure unwraps err into a Failure when one is in the chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsConfiguration reports whether err is a build-stage failure.
func IsConfiguration(err error) bool {
	f, ok := AsFailure(err)
	return ok && f.Kind == KindConfiguration
}

// IsTimeout reports whether err is a call deadline failure.
func IsTimeout(err error) bool {
	f, ok := AsFailure(err)
	return ok && f.Kind == KindTimeout
}

// IsRequestError reports whether err is a transport, decode or
// application failure.
func IsRequestError(err error) bool {
	f, ok := AsFailure(err)
	return ok && f.Kind == KindRequest
}
