package handler

import (
	"fmt"
	"strconv"
	"time"

	"blog-service/internal/application/query"
	"blog-service/internal/domain"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.InvalidInput(fmt.Sprintf("%s must be a positive integer", name))
	}
	return uint(id), nil
}

func pageQuery(c echo.Context) (query.Page, error) {
	var page query.Page
	err := echo.QueryParamsBinder(c).
		Int("skip", &page.Skip).
		Int("limit", &page.Limit).
		BindError()
	if err != nil {
		return page, domain.InvalidInput("skip and limit must be integers")
	}
	if page.Skip < 0 {
		return page, domain.InvalidInput("skip must not be negative")
	}
	if page.Limit < 0 {
		return page, domain.InvalidInput("limit must not be negative")
	}
	return page, nil
}

func optionalUint(c echo.Context, name string) (*uint, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, domain.InvalidInput(fmt.Sprintf("%s must be a non-negative integer", name))
	}
	id := uint(v)
	return &id, nil
}

// optionalTime accepts RFC 3339 timestamps and plain dates.
func optionalTime(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, dateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, domain.InvalidInput(fmt.Sprintf("%s must be a date (YYYY-MM-DD) or an RFC 3339 timestamp", name))
}

func listPostsQuery(c echo.Context) (*query.ListPostsQuery, error) {
	page, err := pageQuery(c)
	if err != nil {
		return nil, err
	}
	q := &query.ListPostsQuery{Page: page}
	if q.CategoryID, err = optionalUint(c, "category_id"); err != nil {
		return nil, err
	}
	if q.AuthorID, err = optionalUint(c, "author_id"); err != nil {
		return nil, err
	}
	if q.StartDate, err = optionalTime(c, "start_date"); err != nil {
		return nil, err
	}
	if q.EndDate, err = optionalTime(c, "end_date"); err != nil {
		return nil, err
	}
	return q, nil
}
