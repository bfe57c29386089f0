package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"blog-service/internal/application/interfaces"
	"blog-service/internal/application/services"
	"blog-service/internal/infrastructure"
	"blog-service/internal/infrastructure/db/postgres"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type nopBus struct{}

func (nopBus) Publish(context.Context, interfaces.NotificationEvent) error { return nil }

func (nopBus) Subscribe(uint, func([]byte)) (func() error, error) {
	return func() error { return nil }, nil
}

type testServer struct {
	t *testing.T
	e *echo.Echo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := postgres.Open(postgres.DriverSqlite,
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name), zerolog.Nop())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	cache := infrastructure.NewRedisService(nil, 0, 0, zerolog.Nop())

	auth := services.NewAuthService(userRepo, infrastructure.NewPasswordHasher(bcrypt.MinCost),
		infrastructure.NewJWTService("test-secret", time.Minute), zerolog.Nop())
	notifications := services.NewNotificationService(postgres.NewNotificationRepository(db), nopBus{}, zerolog.Nop())

	require.NoError(t, auth.EnsureAdmin(context.Background(), "root", "root@example.com", "password123"))

	e := NewServer(Services{
		Auth:          auth,
		Posts:         services.NewPostService(postRepo, categoryRepo, cache, notifications, zerolog.Nop()),
		Categories:    services.NewCategoryService(categoryRepo, zerolog.Nop()),
		Comments:      services.NewCommentService(postgres.NewCommentRepository(db), postRepo, zerolog.Nop()),
		Bookmarks:     services.NewBookmarkService(postgres.NewBookmarkRepository(db), postRepo, zerolog.Nop()),
		Notifications: notifications,
	}, sqlDB, nil, zerolog.Nop())

	return &testServer{t: t, e: e}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) register(username string) string {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return s.login(username)
}

// login posts the credentials as a form, the way OAuth2 password clients do.
func (s *testServer) login(username string) string {
	s.t.Helper()
	form := url.Values{"username": {username}, "password": {"password123"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &token))
	require.Equal(s.t, "bearer", token.TokenType)
	return token.AccessToken
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestServer_RootAndHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec), "message")

	rec = s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestServer_Auth(t *testing.T) {
	s := newTestServer(t)
	s.register("alice")

	rec := s.do(http.MethodPost, "/auth/register", "", map[string]string{
		"username": "alice",
		"email":    "other@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.EqualValues(t, http.StatusBadRequest, body["code"])

	rec = s.do(http.MethodPost, "/auth/register", "", map[string]string{
		"username": "b",
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodPost, "/auth/register", "", map[string]string{
		"username": "accent",
		"email":    "accent@example.com",
		"password": strings.Repeat("é", 40),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "password must be at most 72 bytes", decode(t, rec)["message"])

	rec = s.do(http.MethodPost, "/auth/token", "", map[string]string{"username": "alice", "password": "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestServer_RequiresAuthentication(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/posts", "", map[string]string{"title": "hello", "content": "hello world!"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

	rec = s.do(http.MethodGet, "/bookmarks", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_CategoriesAreAdminOnly(t *testing.T) {
	s := newTestServer(t)
	user := s.register("alice")
	admin := s.login("root")

	rec := s.do(http.MethodPost, "/categories", user, map[string]string{"name": "News"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/categories", admin, map[string]string{"name": "News"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	categoryID := decode(t, rec)["id"]

	rec = s.do(http.MethodPost, "/posts", user, map[string]interface{}{
		"title":       "Breaking",
		"content":     "something happened today",
		"category_id": categoryID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	postID := decode(t, rec)["id"]

	rec = s.do(http.MethodDelete, fmt.Sprintf("/categories/%v", categoryID), admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/posts/%v", postID), user, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/categories/%v", categoryID), admin, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/categories", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, decode(t, rec)["total"])
}

func TestServer_PostLifecycle(t *testing.T) {
	s := newTestServer(t)
	alice := s.register("alice")
	bob := s.register("bob")

	rec := s.do(http.MethodPost, "/posts", alice, map[string]interface{}{
		"title":       "Hello",
		"content":     "my very first post",
		"category_id": 0,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	post := decode(t, rec)
	assert.Nil(t, post["category_id"])
	path := fmt.Sprintf("/posts/%v", post["id"])

	rec = s.do(http.MethodPost, "/posts", alice, map[string]string{"title": "x", "content": "short"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/posts/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/posts/abc", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodPut, path, bob, map[string]string{"title": "Mine now", "content": "overwritten content"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPut, path, alice, map[string]string{"title": "Hello again", "content": "edited first post"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Hello again", decode(t, rec)["title"])

	rec = s.do(http.MethodPost, path+"/like", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, decode(t, rec)["likes_count"])

	rec = s.do(http.MethodGet, "/notifications", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	notifications := decode(t, rec)
	assert.EqualValues(t, 1, notifications["total"])
	first := notifications["notifications"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "bob liked your post", first["content"])

	rec = s.do(http.MethodPatch, fmt.Sprintf("/notifications/%v/read", first["id"]), bob, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = s.do(http.MethodPatch, fmt.Sprintf("/notifications/%v/read", first["id"]), alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["is_read"])

	rec = s.do(http.MethodGet, "/posts?author_id=1&start_date=2000-01-01&limit=5", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode(t, rec)
	assert.Contains(t, list, "posts")
	assert.Contains(t, list, "total")

	rec = s.do(http.MethodGet, "/posts?start_date=yesterday", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodDelete, path, bob, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = s.do(http.MethodDelete, path, alice, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_CommentsAndBookmarks(t *testing.T) {
	s := newTestServer(t)
	alice := s.register("alice")
	bob := s.register("bob")
	admin := s.login("root")

	rec := s.do(http.MethodPost, "/posts", alice, map[string]string{"title": "Topic", "content": "let us discuss this"})
	require.Equal(t, http.StatusCreated, rec.Code)
	postID := decode(t, rec)["id"]

	rec = s.do(http.MethodPost, fmt.Sprintf("/comments/posts/%v", postID), bob, map[string]string{"content": "agreed"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	commentID := decode(t, rec)["id"]

	rec = s.do(http.MethodGet, fmt.Sprintf("/comments/posts/%v", postID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["total"])

	rec = s.do(http.MethodDelete, fmt.Sprintf("/comments/%v", commentID), alice, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = s.do(http.MethodDelete, fmt.Sprintf("/comments/%v", commentID), admin, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodPost, "/bookmarks", bob, map[string]interface{}{"post_id": postID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	bookmark := decode(t, rec)
	assert.Equal(t, "Topic", bookmark["post_title"])

	rec = s.do(http.MethodPost, "/bookmarks", bob, map[string]interface{}{"post_id": postID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/bookmarks", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["total"])

	rec = s.do(http.MethodDelete, fmt.Sprintf("/bookmarks/%v", bookmark["id"]), admin, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = s.do(http.MethodDelete, fmt.Sprintf("/bookmarks/%v", bookmark["id"]), bob, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
