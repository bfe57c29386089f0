package services

import (
	"errors"
	"testing"

	"blog-service/internal/application/command"
	"blog-service/internal/application/query"
	"blog-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	carol := env.register(t, "carol")
	require.NoError(t, env.auth.EnsureAdmin(env.ctx, "root", "root@example.com", "password123"))
	admin := env.login(t, "root")

	post, err := env.posts.CreatePost(env.ctx, newPost("discussed", nil), alice.UserID)
	require.NoError(t, err)

	_, err = env.comments.CreateComment(env.ctx, 999, &command.CreateCommentCommand{Content: "hello?"}, bob.UserID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = env.comments.ListComments(env.ctx, 999, query.Page{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	first, err := env.comments.CreateComment(env.ctx, post.ID, &command.CreateCommentCommand{Content: "first"}, bob.UserID)
	require.NoError(t, err)
	second, err := env.comments.CreateComment(env.ctx, post.ID, &command.CreateCommentCommand{Content: "second"}, carol.UserID)
	require.NoError(t, err)

	list, err := env.comments.ListComments(env.ctx, post.ID, query.Page{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Total)
	require.Len(t, list.Comments, 2)
	assert.Equal(t, second.ID, list.Comments[0].ID)

	err = env.comments.DeleteComment(env.ctx, first.ID, carol.UserID, carol.Role)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	require.NoError(t, env.comments.DeleteComment(env.ctx, first.ID, bob.UserID, bob.Role))
	require.NoError(t, env.comments.DeleteComment(env.ctx, second.ID, admin.UserID, admin.Role))

	err = env.comments.DeleteComment(env.ctx, first.ID, bob.UserID, bob.Role)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
