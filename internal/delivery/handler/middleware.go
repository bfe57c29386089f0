package handler

import (
	"strings"

	"blog-service/internal/application/common"
	"blog-service/internal/application/interfaces"
	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// Authenticate resolves the bearer token to an identity and stores it on the
// context. Requests without a valid token are rejected with 401.
func Authenticate(auth interfaces.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return domain.Unauthenticated("not authenticated")
			}

			identity, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}
			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// RequireRole must run after Authenticate. The role has to match exactly.
func RequireRole(role entities.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity == nil {
				return domain.Unauthenticated("not authenticated")
			}
			if identity.Role != role {
				return domain.Forbidden("not enough permissions")
			}
			return next(c)
		}
	}
}

func IdentityFrom(c echo.Context) *common.Identity {
	identity, _ := c.Get(identityKey).(*common.Identity)
	return identity
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
