package entities

import "strings"

type Category struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	PostCount   int64   `json:"post_count"`
}

// NameKey is the case-folded form of a category name that uniqueness is
// enforced on.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
