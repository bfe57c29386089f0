package handler

import (
	"errors"
	"fmt"
	"net/http"

	"blog-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ErrorHandler renders every error returned by a handler or middleware as an
// ErrorResponse. Errors that carry no domain kind are logged and hidden.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := statusFor(err)
		if code >= http.StatusInternalServerError {
			logger.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request failed")
		}
		if code == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, ErrorResponse{Status: "error", Message: message, Code: code})
		}
		if err != nil {
			logger.Error().Err(err).Msg("write error response")
		}
	}
}

func statusFor(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, domain.Message(err, "not authenticated")
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, domain.Message(err, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, domain.Message(err, "not found")
	case errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest, domain.Message(err, "conflict")
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusUnprocessableEntity, domain.Message(err, "invalid input")
	}
	return http.StatusInternalServerError, "internal server error"
}
