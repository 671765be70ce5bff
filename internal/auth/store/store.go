package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/authkit/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Credentials is the user lookup/insert surface the auth service needs.
type Credentials interface {
	// FindByEmail returns the user with an exact email match or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (domain.User, error)

	// InsertUnique inserts u and returns it with the store-assigned ID and
	// CreatedAt. A clash on the email unique constraint is ErrAlreadyExists;
	// there is no read-before-write, the constraint decides.
	InsertUnique(ctx context.Context, u domain.User) (domain.User, error)
}

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this.
type Store interface {
	Credentials

	// ApplyMigrations brings the schema up to date using the embedded files.
	ApplyMigrations() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases the underlying connection(s).
	Close() error
}
