package jwtx

import (
	"errors"
	"time"
)

// Issuer signs a Payload into a token string.
type Issuer interface {
	Issue(p Payload, ttl time.Duration) (string, error)
}

// Verifier validates a token and gives you back the payload if it's legit.
type Verifier interface {
	Verify(token string) (Payload, error)
}

// TokenCodec both issues and verifies tokens with the same server-held key.
type TokenCodec interface {
	Issuer
	Verifier
}

var (
	// ErrMalformed means the string could not be parsed as a token of the
	// expected shape.
	ErrMalformed = errors.New("jwtx: malformed token")

	// ErrInvalidToken means the token parsed but its signature (or algorithm)
	// does not match the server key.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	// ErrExpired means the current time is at or past the token's exp.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrWeakSecret is returned when constructing a codec with a short key.
	ErrWeakSecret = errors.New("jwtx: signing secret too short")

	// ErrInvalidTTL is returned when asked to issue a token that is already
	// expired.
	ErrInvalidTTL = errors.New("jwtx: ttl must be positive")
)
