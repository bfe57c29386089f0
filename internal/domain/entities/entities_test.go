package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategoryID(t *testing.T) {
	zero, five := uint(0), uint(5)

	assert.Nil(t, NormalizeCategoryID(nil))
	assert.Nil(t, NormalizeCategoryID(&zero))
	got := NormalizeCategoryID(&five)
	if assert.NotNil(t, got) {
		assert.Equal(t, uint(5), *got)
		assert.NotSame(t, &five, got)
	}
}

func TestOwnershipRules(t *testing.T) {
	post := &Post{AuthorID: 1}
	assert.True(t, post.CanBeModifiedBy(1, RoleUser))
	assert.True(t, post.CanBeModifiedBy(2, RoleAdmin))
	assert.False(t, post.CanBeModifiedBy(2, RoleUser))

	comment := &Comment{AuthorID: 1}
	assert.True(t, comment.CanBeDeletedBy(1, RoleUser))
	assert.True(t, comment.CanBeDeletedBy(2, RoleAdmin))
	assert.False(t, comment.CanBeDeletedBy(2, RoleUser))

	bookmark := &Bookmark{UserID: 1}
	assert.True(t, bookmark.CanBeDeletedBy(1))
	assert.False(t, bookmark.CanBeDeletedBy(2))
}

func TestUserValidate(t *testing.T) {
	assert.NoError(t, NewUser("alice", "alice@example.com", "digest", RoleUser).Validate())
	assert.Error(t, NewUser("", "alice@example.com", "digest", RoleUser).Validate())
	assert.Error(t, NewUser("alice", "alice@example.com", "digest", Role("root")).Validate())
	assert.True(t, NewUser("root", "root@example.com", "digest", RoleAdmin).IsAdmin())
}

func TestNameKeyAndLikeMessage(t *testing.T) {
	assert.Equal(t, "golang", NameKey("  GoLang "))
	assert.Equal(t, "bob liked your post", LikeMessage("bob"))
}
