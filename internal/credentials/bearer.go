package credentials

import (
	"crypto/subtle"
	"errors"
)

var ErrUnauthorized = errors.New("credentials: unauthorized")

// Validator checks an access token presented to a server.
type Validator interface {
	Validate(token string) error
}

// StaticBearer validates against a single shared token. Development use only.
type StaticBearer struct {
	Token string
}

func (s StaticBearer) Validate(token string) error {
	if s.Token == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(s.Token), []byte(token)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// ValidatorFunc adapts a function into a Validator.
type ValidatorFunc func(token string) error

func (f ValidatorFunc) Validate(token string) error {
	return f(token)
}
