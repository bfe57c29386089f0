package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"blog-service/internal/application/interfaces"
	"blog-service/internal/domain/repositories"
	"blog-service/internal/infrastructure"
	"blog-service/internal/infrastructure/db/postgres"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeBus records published events. Setting err makes every publish fail.
type fakeBus struct {
	mu     sync.Mutex
	events []interfaces.NotificationEvent
	err    error
}

func (b *fakeBus) Publish(_ context.Context, event interfaces.NotificationEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, event)
	return nil
}

func (b *fakeBus) Subscribe(uint, func([]byte)) (func() error, error) {
	return func() error { return nil }, nil
}

func (b *fakeBus) Events() []interfaces.NotificationEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]interfaces.NotificationEvent(nil), b.events...)
}

type testEnv struct {
	ctx   context.Context
	redis *miniredis.Miniredis
	bus   *fakeBus
	jwt   *infrastructure.JWTService

	userRepo         repositories.UserRepository
	postRepo         repositories.PostRepository
	notificationRepo repositories.NotificationRepository

	auth          interfaces.AuthService
	posts         interfaces.PostService
	categories    interfaces.CategoryService
	comments      interfaces.CommentService
	bookmarks     interfaces.BookmarkService
	notifications interfaces.NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := postgres.Open(postgres.DriverSqlite,
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name), zerolog.Nop())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := infrastructure.NewRedisService(client, time.Hour, time.Second, zerolog.Nop())

	env := &testEnv{
		ctx:              context.Background(),
		redis:            mr,
		bus:              &fakeBus{},
		jwt:              infrastructure.NewJWTService("test-secret", time.Minute),
		userRepo:         postgres.NewUserRepository(db),
		postRepo:         postgres.NewPostRepository(db),
		notificationRepo: postgres.NewNotificationRepository(db),
	}
	categoryRepo := postgres.NewCategoryRepository(db)

	env.auth = NewAuthService(env.userRepo, infrastructure.NewPasswordHasher(bcrypt.MinCost), env.jwt, zerolog.Nop())
	env.notifications = NewNotificationService(env.notificationRepo, env.bus, zerolog.Nop())
	env.posts = NewPostService(env.postRepo, categoryRepo, cache, env.notifications, zerolog.Nop())
	env.categories = NewCategoryService(categoryRepo, zerolog.Nop())
	env.comments = NewCommentService(postgres.NewCommentRepository(db), env.postRepo, zerolog.Nop())
	env.bookmarks = NewBookmarkService(postgres.NewBookmarkRepository(db), env.postRepo, zerolog.Nop())
	return env
}

var errBusDown = errors.New("bus down")

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
