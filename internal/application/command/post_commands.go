package command

// CategoryID 0 means "no category".
type CreatePostCommand struct {
	Title      string `json:"title" validate:"required,min=3,max=255"`
	Content    string `json:"content" validate:"required,min=10"`
	CategoryID *uint  `json:"category_id"`
}

type UpdatePostCommand struct {
	Title      string `json:"title" validate:"required,min=3,max=255"`
	Content    string `json:"content" validate:"required,min=10"`
	CategoryID *uint  `json:"category_id"`
}

type CreateCategoryCommand struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description"`
}

type UpdateCategoryCommand struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description"`
}

type CreateCommentCommand struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

type CreateBookmarkCommand struct {
	PostID uint `json:"post_id" validate:"required"`
}
