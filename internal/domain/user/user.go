// Package user defines the account entity and its persistence contract.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID           uint
	Name         string
	PasswordHash string
	// Preferences is an opaque JSON blob owned by the UI.
	Preferences string
	CreatedAt   time.Time
}

// New validates a signup request and hashes the password.
func New(name, password string, hasher PasswordHasher) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &User{
		Name:         name,
		PasswordHash: hash,
		Preferences:  "{}",
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// VerifyPassword checks a candidate password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	return hasher.Verify(password, u.PasswordHash)
}

// ChangePassword replaces the stored hash after validating the new password.
func (u *User) ChangePassword(newPassword string, hasher PasswordHasher) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = hash
	return nil
}

// PasswordHasher produces and verifies salted password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// Repository persists users. GetByName returns (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByName(ctx context.Context, name string) (*User, error)
	Update(ctx context.Context, user *User) error
	// Delete removes the account; sessions, projects, and everything under
	// them go with it through the schema's cascading foreign keys.
	Delete(ctx context.Context, id uint) error
}
