package domain

import "time"

// User is a registered account as persisted by the store.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // argon2id PHC string, never serialised
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is what we hand back to callers: no credential material.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips the password hash.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
