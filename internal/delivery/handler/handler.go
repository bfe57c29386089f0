package handler

import (
	"net/http"

	"blog-service/internal/application/command"
	"blog-service/internal/application/interfaces"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	auth interfaces.AuthService
}

func NewAuthHandler(auth interfaces.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}

	user, err := h.auth.Register(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Login accepts the credentials as a form or as JSON.
func (h *AuthHandler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}

	token, err := h.auth.Login(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, token)
}
