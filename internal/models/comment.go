package models

import "time"

// Comment represents a comment on a blog. Comments are removed with their
// blog and with their author.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UserID    uint      `json:"user_id" gorm:"index"`
	BlogID    uint      `json:"blog_id" gorm:"index"`
}

// CreateCommentRequest defines the request body for adding a comment
type CreateCommentRequest struct {
	Content string `json:"content" form:"content" validate:"required,min=1,max=1000"`
}
