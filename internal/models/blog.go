package models

import "time"

// Blog represents a blog post. A private blog (is_public false) is visible
// only to its author and to users following the author. Like and comment
// counts are never stored on the row; they are computed from the live edge
// tables on every read.
type Blog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:200"`
	Subtitle   string    `json:"subtitle,omitempty" gorm:"size:300"`
	Content    string    `json:"content" gorm:"type:text"`
	CoverImage string    `json:"cover_image,omitempty" gorm:"size:255"`
	IsPublic   bool      `json:"is_public" gorm:"index"`
	IsFeatured bool      `json:"is_featured" gorm:"index"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uint      `json:"user_id" gorm:"index"`
}

// CreateBlogRequest defines the form fields for publishing a blog.
// The cover image, if any, is read from the multipart file part.
type CreateBlogRequest struct {
	Title      string `json:"title" form:"title" validate:"required,min=1,max=200"`
	Subtitle   string `json:"subtitle" form:"subtitle" validate:"max=300"`
	Content    string `json:"content" form:"content" validate:"required"`
	IsPublic   bool   `json:"is_public" form:"is_public"`
	IsFeatured bool   `json:"is_featured" form:"is_featured"`
}

// UpdateBlogRequest defines the form fields for editing an existing blog
type UpdateBlogRequest struct {
	Title      string `json:"title" form:"title" validate:"required,min=1,max=200"`
	Subtitle   string `json:"subtitle" form:"subtitle" validate:"max=300"`
	Content    string `json:"content" form:"content" validate:"required"`
	IsPublic   bool   `json:"is_public" form:"is_public"`
	IsFeatured bool   `json:"is_featured" form:"is_featured"`
}
