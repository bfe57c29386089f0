package entities

import "time"

type Post struct {
	ID         uint       `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	AuthorID   uint       `json:"author_id"`
	CategoryID *uint      `json:"category_id"`
	Category   *Category  `json:"category,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	LikesCount int64      `json:"likes_count"`
}

// CanBeModifiedBy reports whether the actor may update or delete the post.
// Authors may always change their own posts, admins may change any post.
func (p *Post) CanBeModifiedBy(actorID uint, actorRole Role) bool {
	return actorRole == RoleAdmin || p.AuthorID == actorID
}

// PostFilter narrows a post listing. Zero values mean "no filter"; all set
// fields are combined with AND.
type PostFilter struct {
	CategoryID *uint
	AuthorID   *uint
	StartDate  *time.Time
	EndDate    *time.Time
}

// NormalizeCategoryID maps the "no category" sentinel 0 to nil.
func NormalizeCategoryID(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}
