package query

import (
	"strconv"
	"time"

	"blog-service/internal/domain/entities"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Page struct {
	Skip  int
	Limit int
}

// Normalize applies the default page size and clamps out of range values.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

type ListPostsQuery struct {
	Page
	CategoryID *uint
	AuthorID   *uint
	StartDate  *time.Time
	EndDate    *time.Time
}

func (q *ListPostsQuery) Filter() entities.PostFilter {
	return entities.PostFilter{
		CategoryID: q.CategoryID,
		AuthorID:   q.AuthorID,
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
	}
}

// CacheFilters is the set of fields a cached listing is keyed on. Unset
// filters are left empty.
func (q *ListPostsQuery) CacheFilters() map[string]string {
	return map[string]string{
		"category_id": formatUint(q.CategoryID),
		"author_id":   formatUint(q.AuthorID),
		"start_date":  formatTime(q.StartDate),
		"end_date":    formatTime(q.EndDate),
		"skip":        strconv.Itoa(q.Skip),
		"limit":       strconv.Itoa(q.Limit),
	}
}

func formatUint(v *uint) string {
	if v == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*v), 10)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
