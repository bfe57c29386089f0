package handler

import (
	"net/http"

	"blog-service/internal/application/command"
	"blog-service/internal/application/interfaces"

	"github.com/labstack/echo/v4"
)

type BookmarkHandler struct {
	bookmarks interfaces.BookmarkService
}

func NewBookmarkHandler(bookmarks interfaces.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

func (h *BookmarkHandler) Create(c echo.Context) error {
	var cmd command.CreateBookmarkCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}

	bookmark, err := h.bookmarks.CreateBookmark(c.Request().Context(), &cmd, IdentityFrom(c).UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bookmark)
}

func (h *BookmarkHandler) List(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	bookmarks, err := h.bookmarks.ListBookmarks(c.Request().Context(), IdentityFrom(c).UserID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookmarks)
}

func (h *BookmarkHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.bookmarks.DeleteBookmark(c.Request().Context(), id, IdentityFrom(c).UserID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
