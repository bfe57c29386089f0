package services

import (
	"errors"
	"strings"
	"testing"

	"blog-service/internal/application/command"
	"blog-service/internal/application/common"
	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"
	"blog-service/internal/infrastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// register creates a user and returns the identity its token resolves to.
func (e *testEnv) register(t *testing.T, username string) *common.Identity {
	t.Helper()
	_, err := e.auth.Register(e.ctx, &command.RegisterUserCommand{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return e.login(t, username)
}

func (e *testEnv) login(t *testing.T, username string) *common.Identity {
	t.Helper()
	token, err := e.auth.Login(e.ctx, &command.LoginUserCommand{Username: username, Password: "password123"})
	require.NoError(t, err)
	identity, err := e.auth.Authenticate(e.ctx, token.AccessToken)
	require.NoError(t, err)
	return identity
}

func TestAuthService_Register(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Register(env.ctx, &command.RegisterUserCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, entities.RoleUser, user.Role)

	stored, err := env.userRepo.FindByUsername(env.ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.Password)

	_, err = env.auth.Register(env.ctx, &command.RegisterUserCommand{
		Username: "alice",
		Email:    "another@example.com",
		Password: "password123",
	})
	assert.True(t, errors.Is(err, domain.ErrConflict))

	_, err = env.auth.Register(env.ctx, &command.RegisterUserCommand{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	token, err := env.auth.Login(env.ctx, &command.LoginUserCommand{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	claims, err := env.jwt.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, entities.RoleUser, claims.Role)

	_, err = env.auth.Login(env.ctx, &command.LoginUserCommand{Username: "alice", Password: "wrong-password"})
	assert.True(t, errors.Is(err, domain.ErrUnauthenticated))

	_, err = env.auth.Login(env.ctx, &command.LoginUserCommand{Username: "nobody", Password: "password123"})
	assert.True(t, errors.Is(err, domain.ErrUnauthenticated))
}

func TestAuthService_Authenticate(t *testing.T) {
	env := newTestEnv(t)
	identity := env.register(t, "alice")
	assert.Equal(t, "alice", identity.Username)
	assert.NotZero(t, identity.UserID)

	_, err := env.auth.Authenticate(env.ctx, "garbage")
	assert.True(t, errors.Is(err, domain.ErrUnauthenticated))

	ghost, err := env.jwt.GenerateToken(infrastructure.Claims{Subject: "ghost", Role: entities.RoleUser})
	require.NoError(t, err)
	_, err = env.auth.Authenticate(env.ctx, ghost)
	assert.True(t, errors.Is(err, domain.ErrUnauthenticated))
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.auth.EnsureAdmin(env.ctx, "root", "root@example.com", "password123"))
	require.NoError(t, env.auth.EnsureAdmin(env.ctx, "root", "root@example.com", "password123"))

	admin := env.login(t, "root")
	assert.Equal(t, entities.RoleAdmin, admin.Role)

	require.NoError(t, env.auth.EnsureAdmin(env.ctx, "", "", ""))
}

func TestAuthService_RegisterRejectsPasswordOverBcryptLimit(t *testing.T) {
	env := newTestEnv(t)

	// 40 characters pass a rune count of 72 but encode to 80 bytes.
	_, err := env.auth.Register(env.ctx, &command.RegisterUserCommand{
		Username: "accent",
		Email:    "accent@example.com",
		Password: strings.Repeat("é", 40),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, "password must be at most 72 bytes", domain.Message(err, ""))

	user, err := env.userRepo.FindByUsername(env.ctx, "accent")
	require.NoError(t, err)
	assert.Nil(t, user)
}
