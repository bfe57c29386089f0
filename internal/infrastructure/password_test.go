package infrastructure

import (
	"errors"
	"strings"
	"testing"

	"blog-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", digest)

	assert.True(t, hasher.Verify("correct horse", digest))
	assert.False(t, hasher.Verify("wrong horse", digest))
	assert.False(t, hasher.Verify("correct horse", "not-a-digest"))
}

func TestPasswordHasher_DefaultCost(t *testing.T) {
	hasher := NewPasswordHasher(0)
	assert.Equal(t, PasswordCost, hasher.cost)
}

func TestPasswordHasher_RejectsOverlongBytes(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	// 40 runes, 80 bytes.
	_, err := hasher.Hash(strings.Repeat("é", 40))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = hasher.Hash(strings.Repeat("é", 36))
	assert.NoError(t, err)
}

func TestConfiguredPasswordCost(t *testing.T) {
	assert.Equal(t, PasswordCost, ConfiguredPasswordCost(bcrypt.MinCost))
	assert.Equal(t, PasswordCost, ConfiguredPasswordCost(9))
	assert.Equal(t, MinPasswordCost, ConfiguredPasswordCost(MinPasswordCost))
	assert.Equal(t, 14, ConfiguredPasswordCost(14))
}
