package handler

import (
	"context"
	"net/http"
	"time"

	"blog-service/internal/application/interfaces"
	"blog-service/internal/delivery/ws"
	"blog-service/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const healthTimeout = 2 * time.Second

type Services struct {
	Auth          interfaces.AuthService
	Posts         interfaces.PostService
	Categories    interfaces.CategoryService
	Comments      interfaces.CommentService
	Bookmarks     interfaces.BookmarkService
	Notifications interfaces.NotificationService
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewServer builds the echo instance with every route registered. stream may
// be nil, in which case the websocket endpoint is not mounted.
func NewServer(svc Services, store Pinger, stream *ws.Handler, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the blog API"})
	})
	e.GET("/health", health(store))

	authenticated := Authenticate(svc.Auth)
	adminOnly := RequireRole(entities.RoleAdmin)

	auth := NewAuthHandler(svc.Auth)
	g := e.Group("/auth")
	g.POST("/register", auth.Register)
	g.POST("/token", auth.Login)

	posts := NewPostHandler(svc.Posts)
	g = e.Group("/posts")
	g.POST("", posts.Create, authenticated)
	g.GET("", posts.List)
	g.GET("/:id", posts.Get)
	g.PUT("/:id", posts.Update, authenticated)
	g.DELETE("/:id", posts.Delete, authenticated)
	g.POST("/:id/like", posts.ToggleLike, authenticated)

	categories := NewCategoryHandler(svc.Categories)
	g = e.Group("/categories")
	g.POST("", categories.Create, authenticated, adminOnly)
	g.GET("", categories.List)
	g.GET("/:id", categories.Get)
	g.PUT("/:id", categories.Update, authenticated, adminOnly)
	g.DELETE("/:id", categories.Delete, authenticated, adminOnly)

	comments := NewCommentHandler(svc.Comments)
	g = e.Group("/comments")
	g.POST("/posts/:post_id", comments.Create, authenticated)
	g.GET("/posts/:post_id", comments.List)
	g.DELETE("/:id", comments.Delete, authenticated)

	bookmarks := NewBookmarkHandler(svc.Bookmarks)
	g = e.Group("/bookmarks", authenticated)
	g.POST("", bookmarks.Create)
	g.GET("", bookmarks.List)
	g.DELETE("/:id", bookmarks.Delete)

	notifications := NewNotificationHandler(svc.Notifications)
	if stream != nil {
		e.GET("/notifications/stream", stream.Serve)
	}
	g = e.Group("/notifications", authenticated)
	g.GET("", notifications.List)
	g.PATCH("/:id/read", notifications.MarkRead)

	return e
}

func health(store Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()

		if err := store.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

func requestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := logger.Info()
			if v.Status >= http.StatusInternalServerError {
				event = logger.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
