package sqlite

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/authkit/internal/auth/domain"
	"github.com/aussiebroadwan/authkit/internal/auth/store"
)

const (
	selectUserByEmail = `SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`
	insertUser        = `INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, ?, ?)`
)

func (s *Store) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var (
		u         domain.User
		createdAt int64
	)
	err := s.db.QueryRowContext(ctx, selectUserByEmail, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &createdAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.CreatedAt = fromMillis(createdAt)
	return u, nil
}

func (s *Store) InsertUnique(ctx context.Context, u domain.User) (domain.User, error) {
	createdAt := toMillis(s.now())

	res, err := s.db.ExecContext(ctx, insertUser, u.Name, u.Email, u.PasswordHash, createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, store.ErrAlreadyExists
		}
		return domain.User{}, fmt.Errorf("sqlite: insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, fmt.Errorf("sqlite: last insert id: %w", err)
	}

	u.ID = id
	u.CreatedAt = fromMillis(createdAt)
	return u, nil
}
