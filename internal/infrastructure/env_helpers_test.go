package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("BLOG_TEST_INT", " 42 ")
	t.Setenv("BLOG_TEST_BAD_INT", "forty-two")
	t.Setenv("BLOG_TEST_DURATION", "90s")
	t.Setenv("BLOG_TEST_SECONDS", "3600")
	t.Setenv("BLOG_TEST_STRING", "value")
	t.Setenv("BLOG_TEST_EMPTY", "   ")

	assert.Equal(t, 42, GetEnvAsInt("BLOG_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("BLOG_TEST_BAD_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("BLOG_TEST_MISSING", 1))

	assert.Equal(t, 90*time.Second, GetEnvAsDuration("BLOG_TEST_DURATION", time.Minute))
	assert.Equal(t, time.Hour, GetEnvAsDuration("BLOG_TEST_SECONDS", time.Minute))
	assert.Equal(t, time.Minute, GetEnvAsDuration("BLOG_TEST_STRING", time.Minute))

	assert.Equal(t, "value", GetEnvAsString("BLOG_TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnvAsString("BLOG_TEST_EMPTY", "default"))
}
