package handler

import (
	"net/http"

	"blog-service/internal/application/command"
	"blog-service/internal/application/interfaces"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	categories interfaces.CategoryService
}

func NewCategoryHandler(categories interfaces.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var cmd command.CreateCategoryCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}

	category, err := h.categories.CreateCategory(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) List(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	categories, err := h.categories.ListCategories(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categories.GetCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var cmd command.UpdateCategoryCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}

	category, err := h.categories.UpdateCategory(c.Request().Context(), id, &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categories.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
