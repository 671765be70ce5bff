package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HS256 key we accept (256 bits).
const MinSecretLength = 32

// HS256Codec issues and verifies HMAC-SHA256 signed JWTs.
type HS256Codec struct {
	secret []byte
	now    func() time.Time
}

// HS256Option customises an HS256Codec.
type HS256Option func(*HS256Codec)

// WithClock overrides the time source used for iat/exp. Tests use this to
// move past a token's expiry without sleeping.
func WithClock(now func() time.Time) HS256Option {
	return func(c *HS256Codec) { c.now = now }
}

// NewHS256Codec creates a codec using secret as the symmetric signing key.
func NewHS256Codec(secret []byte, opts ...HS256Option) (*HS256Codec, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrWeakSecret, MinSecretLength, len(secret))
	}

	c := &HS256Codec{
		secret: append([]byte(nil), secret...),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ TokenCodec = (*HS256Codec)(nil)

// Issue signs p into a compact JWT valid for ttl. Any IssuedAt/ExpiresAt
// already set on p are ignored.
func (c *HS256Codec) Issue(p Payload, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}

	claims := NewClaims(p, ttl, c.now().UTC())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of token and returns its payload.
// Errors are always one of ErrMalformed, ErrInvalidToken or ErrExpired
// (wrapping the underlying library error).
func (c *HS256Codec) Verify(token string) (Payload, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(c.now),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return Payload{}, classify(err)
	}

	if err := claims.validateShape(); err != nil {
		return Payload{}, err
	}

	return claims.Payload(), nil
}

// classify folds golang-jwt's error tree into our three verification failures.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpired, err)
	default:
		// Signature mismatch, disallowed alg, nbf/iat in the future.
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
}
