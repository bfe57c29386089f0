package handler

import (
	"net/http"

	"blog-service/internal/application/command"
	"blog-service/internal/application/interfaces"

	"github.com/labstack/echo/v4"
)

type CommentHandler struct {
	comments interfaces.CommentService
}

func NewCommentHandler(comments interfaces.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) Create(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return err
	}
	var cmd command.CreateCommentCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}

	comment, err := h.comments.CreateComment(c.Request().Context(), postID, &cmd, IdentityFrom(c).UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) List(c echo.Context) error {
	postID, err := pathID(c, "post_id")
	if err != nil {
		return err
	}
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	comments, err := h.comments.ListComments(c.Request().Context(), postID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	identity := IdentityFrom(c)
	if err := h.comments.DeleteComment(c.Request().Context(), id, identity.UserID, identity.Role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
