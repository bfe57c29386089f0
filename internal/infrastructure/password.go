package infrastructure

import (
	"errors"
	"fmt"

	"blog-service/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

const (
	PasswordCost = 12
	// MinPasswordCost is the lowest work factor accepted from configuration.
	MinPasswordCost = 10
	// MaxPasswordBytes is bcrypt's input limit, counted in bytes not runes.
	MaxPasswordBytes = 72
)

type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = PasswordCost
	}
	return &PasswordHasher{cost: cost}
}

// ConfiguredPasswordCost raises an operator supplied cost below
// MinPasswordCost to the default.
func ConfiguredPasswordCost(cost int) int {
	if cost < MinPasswordCost {
		return PasswordCost
	}
	return cost
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", domain.InvalidInput("password must be at most 72 bytes")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.InvalidInput("password must be at most 72 bytes")
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashedPassword), nil
}

func (h *PasswordHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
