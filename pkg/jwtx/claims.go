package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the default lifetime for access tokens.
// Short-lived for security, callers can override it per-service.
const DefaultTokenTTL = 1 * time.Hour

// Payload is the identity carried inside a token. It holds exactly what is
// needed to reconstruct the caller and nothing sensitive.
type Payload struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// Claims is the wire form of a Payload.
//
// Only iat and exp are used out of the registered claims, the rest stay empty
// and are dropped by omitempty.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`

	jwt.RegisteredClaims
}

// NewClaims builds claims for p valid from now until now+ttl.
func NewClaims(p Payload, ttl time.Duration, now time.Time) Claims {
	return Claims{
		UserID: p.ID,
		Email:  p.Email,
		Name:   p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// Payload converts verified claims back into a Payload.
func (c *Claims) Payload() Payload {
	p := Payload{
		ID:    c.UserID,
		Email: c.Email,
		Name:  c.Name,
	}
	if c.IssuedAt != nil {
		p.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		p.ExpiresAt = c.ExpiresAt.Time
	}
	return p
}

// validateShape checks the custom claims a token must carry to identify a user.
func (c *Claims) validateShape() error {
	if c.UserID <= 0 || c.Email == "" {
		return ErrMalformed
	}
	return nil
}
