package handler

import (
	"net/http"

	"blog-service/internal/application/command"
	"blog-service/internal/application/interfaces"

	"github.com/labstack/echo/v4"
)

type PostHandler struct {
	posts interfaces.PostService
}

func NewPostHandler(posts interfaces.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) Create(c echo.Context) error {
	var cmd command.CreatePostCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}

	post, err := h.posts.CreatePost(c.Request().Context(), &cmd, IdentityFrom(c).UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) List(c echo.Context) error {
	q, err := listPostsQuery(c)
	if err != nil {
		return err
	}

	posts, err := h.posts.ListPosts(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.posts.GetPost(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var cmd command.UpdatePostCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}

	identity := IdentityFrom(c)
	post, err := h.posts.UpdatePost(c.Request().Context(), id, &cmd, identity.UserID, identity.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	identity := IdentityFrom(c)
	if err := h.posts.DeletePost(c.Request().Context(), id, identity.UserID, identity.Role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PostHandler) ToggleLike(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	identity := IdentityFrom(c)
	post, err := h.posts.ToggleLike(c.Request().Context(), id, identity.UserID, identity.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}
