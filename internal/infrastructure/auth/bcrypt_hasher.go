package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-api-boilerplate/internal/domain/valueobject"
)

// ErrEmptyInput is returned by Hash for empty or whitespace-only input.
var ErrEmptyInput = errors.New("password must not be empty")

// BcryptHasher implements valueobject.PasswordHasher with bcrypt. The
// output embeds algorithm, salt and cost, so verification needs no side
// channel; the same plaintext hashed twice yields different strings.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher with the given cost factor. Costs
// outside bcrypt's supported range fall back to the default (10).
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	if strings.TrimSpace(plain) == "" {
		return "", ErrEmptyInput
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether plain matches hash. Empty or malformed input
// reads as a plain mismatch, never as a distinct error class.
func (h *BcryptHasher) Compare(plain, hash string) bool {
	if strings.TrimSpace(plain) == "" || strings.TrimSpace(hash) == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

var _ valueobject.PasswordHasher = (*BcryptHasher)(nil)
