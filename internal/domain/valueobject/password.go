package valueobject

import (
	"errors"
	"strings"
)

var (
	ErrWeakPassword = errors.New("password must have at least 8 characters")
	ErrEmptyHash    = errors.New("password hash must not be empty")
)

// PasswordHasher is the port for password hashing strategies. Hash and
// Compare are CPU-bound; implementations must be safe for concurrent
// use from multiple requests.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hash string) bool
}

// Password wraps a stored password hash. It is constructed either from
// an already-hashed value or from a plaintext run through a hasher, and
// is immutable afterwards.
type Password struct {
	hash string
}

// PasswordFromHash wraps a persisted hash. The hash must not trim to empty.
func PasswordFromHash(hash string) (Password, error) {
	if strings.TrimSpace(hash) == "" {
		return Password{}, ErrEmptyHash
	}
	return Password{hash: hash}, nil
}

// PasswordFromPlain validates the plaintext length and hashes it with
// the given hasher.
func PasswordFromPlain(plain string, hasher PasswordHasher) (Password, error) {
	if len(plain) < 8 {
		return Password{}, ErrWeakPassword
	}
	h, err := hasher.Hash(plain)
	if err != nil {
		return Password{}, err
	}
	return Password{hash: h}, nil
}

// Hash returns the stored hash string.
func (p Password) Hash() string { return p.hash }

// Verify reports whether plain matches the stored hash. It never fails
// loudly; a malformed hash reads as a plain mismatch.
func (p Password) Verify(plain string, hasher PasswordHasher) bool {
	return hasher.Compare(plain, p.hash)
}
