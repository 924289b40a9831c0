// Package service provides password hashing for new registrations.
package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/anylai/signup/internal/errors"
)

// PasswordService hashes and verifies registrant passwords.
type PasswordService interface {
	// Hash returns the Argon2id PHC string of password.
	Hash(password string) (string, error)
	// Compare reports whether password matches hash.
	Compare(password, hash string) bool
}

type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// NewPasswordService creates a PasswordService using the interactive Argon2id policy.
func NewPasswordService() (PasswordService, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}
	return &passwordService{hasher: hasher}, nil
}

// Hash hashes password with Argon2id.
func (s *passwordService) Hash(password string) (string, error) {
	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

// Compare performs a constant-time comparison between password and hash.
func (s *passwordService) Compare(password, hash string) bool {
	ok, err := s.hasher.Verify([]byte(password), hash)
	if err != nil {
		return false
	}
	return ok
}
