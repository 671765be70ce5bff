package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/authkit/internal/auth/domain"
	"github.com/aussiebroadwan/authkit/internal/auth/metrics"
	"github.com/aussiebroadwan/authkit/internal/auth/store"
	"github.com/aussiebroadwan/authkit/pkg/cryptox"
	"github.com/aussiebroadwan/authkit/pkg/jwtx"
	"github.com/aussiebroadwan/authkit/pkg/slogx"
)

// AuthService registers accounts and exchanges credentials for tokens.
// Inputs are expected to be validated by the transport layer already.
type AuthService struct {
	Store    store.Credentials
	Hasher   cryptox.Hasher
	Tokens   jwtx.Issuer
	TokenTTL time.Duration
	Metrics  *metrics.Auth

	dummyOnce sync.Once
	dummyHash string
}

// burnVerify runs one hash verification against a throwaway hash so a login
// for an unknown email costs the same as a wrong password.
func (s *AuthService) burnVerify(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.Hasher.Hash("not-a-real-password")
	})
	_ = s.Hasher.Verify(password, s.dummyHash)
}

func (s *AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return jwtx.DefaultTokenTTL
}

// Register creates a new account. The email unique constraint in the store
// is the only uniqueness check, so concurrent registrations for one email
// yield exactly one success.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.PublicUser, error) {
	l := slogx.FromContext(ctx).With(slog.String("email", email))
	l.Info("registration attempt")

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		l.Error("registration failed: hash password", slog.Any("err", err))
		s.Metrics.Registration(metrics.OutcomeError)
		return domain.PublicUser{}, ErrInternal
	}

	user, err := s.Store.InsertUnique(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Warn("registration failed: email already exists")
			s.Metrics.Registration(metrics.OutcomeDuplicate)
			return domain.PublicUser{}, &DuplicateEmailError{Email: email}
		}
		l.Error("registration failed: store", slog.Any("err", err))
		s.Metrics.Registration(metrics.OutcomeError)
		return domain.PublicUser{}, ErrInternal
	}

	l.Info("user registered", slog.Int64("user_id", user.ID))
	s.Metrics.Registration(metrics.OutcomeSuccess)
	return user.Public(), nil
}

// Login checks the credentials and returns a signed bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	l := slogx.FromContext(ctx).With(slog.String("email", email))
	l.Info("login attempt")

	user, err := s.Store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.burnVerify(password)
			l.Warn("login failed: user not found")
			s.Metrics.Login(metrics.OutcomeInvalid)
			return "", ErrInvalidCredentials
		}
		l.Error("login failed: store", slog.Any("err", err))
		s.Metrics.Login(metrics.OutcomeError)
		return "", ErrInternal
	}

	if !s.Hasher.Verify(password, user.PasswordHash) {
		l.Warn("login failed: password mismatch", slog.Int64("user_id", user.ID))
		s.Metrics.Login(metrics.OutcomeInvalid)
		return "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(jwtx.Payload{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, s.ttl())
	if err != nil {
		l.Error("login failed: issue token", slog.Any("err", err))
		s.Metrics.Login(metrics.OutcomeError)
		return "", ErrInternal
	}

	l.Info("user logged in", slog.Int64("user_id", user.ID))
	s.Metrics.Login(metrics.OutcomeSuccess)
	return token, nil
}
