package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPage_Normalize(t *testing.T) {
	assert.Equal(t, Page{Skip: 0, Limit: DefaultLimit}, Page{}.Normalize())
	assert.Equal(t, Page{Skip: 0, Limit: DefaultLimit}, Page{Skip: -5, Limit: -1}.Normalize())
	assert.Equal(t, Page{Skip: 20, Limit: MaxLimit}, Page{Skip: 20, Limit: 1000}.Normalize())
	assert.Equal(t, Page{Skip: 3, Limit: 7}, Page{Skip: 3, Limit: 7}.Normalize())
}

func TestListPostsQuery_CacheFilters(t *testing.T) {
	category := uint(4)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	q := &ListPostsQuery{Page: Page{Skip: 10, Limit: 5}, CategoryID: &category, StartDate: &start}

	assert.Equal(t, map[string]string{
		"category_id": "4",
		"author_id":   "",
		"start_date":  "2024-01-02T00:00:00Z",
		"end_date":    "",
		"skip":        "10",
		"limit":       "5",
	}, q.CacheFilters())

	filter := q.Filter()
	assert.Equal(t, &category, filter.CategoryID)
	assert.Nil(t, filter.AuthorID)
}
