package postgres

import (
	"time"
)

type UserModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Username  string `gorm:"size:50;uniqueIndex;not null"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Role      string `gorm:"size:16;not null;default:user"`
}

func (UserModel) TableName() string {
	return "users"
}

type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	NameKey     string `gorm:"size:100;uniqueIndex;not null"`
	Description *string
	PostCount   int64 `gorm:"->;-:migration"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

type PostModel struct {
	ID         uint       `gorm:"primaryKey"`
	Title      string     `gorm:"size:255;not null"`
	Content    string     `gorm:"type:text;not null"`
	AuthorID   uint       `gorm:"not null;index"`
	CategoryID *uint      `gorm:"index"`
	CreatedAt  time.Time  `gorm:"index"`
	UpdatedAt  *time.Time `gorm:"autoUpdateTime:false"`
	LikesCount int64      `gorm:"->;-:migration"`

	// Only declared so AutoMigrate emits the foreign keys; never saved.
	Author   *UserModel     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

func (PostModel) TableName() string {
	return "posts"
}

type PostLikeModel struct {
	PostID    uint `gorm:"primaryKey;autoIncrement:false"`
	UserID    uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time

	Post *PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (PostLikeModel) TableName() string {
	return "post_likes"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"type:text;not null"`
	PostID    uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	CreatedAt time.Time

	Post   *PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Author *UserModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (CommentModel) TableName() string {
	return "comments"
}

type BookmarkModel struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_bookmarks_user_post"`
	PostID    uint `gorm:"not null;uniqueIndex:idx_bookmarks_user_post"`
	CreatedAt time.Time
	PostTitle string `gorm:"->;-:migration"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post *PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (BookmarkModel) TableName() string {
	return "bookmarks"
}

type NotificationModel struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"not null;index"`
	Content          string `gorm:"type:text;not null"`
	NotificationType string `gorm:"size:50;not null"`
	RelatedID        *uint
	IsRead           bool `gorm:"not null;default:false"`
	CreatedAt        time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// AllModels lists every table in dependency order for AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&CategoryModel{},
		&PostModel{},
		&PostLikeModel{},
		&CommentModel{},
		&BookmarkModel{},
		&NotificationModel{},
	}
}
