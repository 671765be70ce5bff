package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/authkit/pkg/cryptox"
	"github.com/aussiebroadwan/authkit/pkg/jwtx"
)

// InitTokenCodec builds the HS256 codec from JWT_SECRET.
func InitTokenCodec(cfg Config, logger *slog.Logger) (*jwtx.HS256Codec, error) {
	codec, err := jwtx.NewHS256Codec([]byte(cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	logger.Info("token codec ready", "alg", "HS256", "ttl", cfg.JWTExpiresIn)
	return codec, nil
}

// InitHasher builds the password hasher, loading or creating the pepper file
// when one is configured.
func InitHasher(cfg Config, logger *slog.Logger) (*cryptox.Argon2Hasher, error) {
	if cfg.PepperFile == "" {
		return cryptox.NewArgon2Hasher(""), nil
	}

	pepper, err := cryptox.LoadOrGeneratePepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	logger.Info("password pepper loaded", "path", cfg.PepperFile)
	return cryptox.NewArgon2Hasher(pepper), nil
}
