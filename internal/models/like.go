package models

import "time"

// BlogLike represents a like on a blog. Existence is binary: unliking
// deletes the row, and a later re-like gets a fresh timestamp.
type BlogLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_blog_user_like"`
	BlogID    uint      `json:"blog_id" gorm:"index;uniqueIndex:idx_blog_user_like"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentLike represents a like on a comment
type CommentLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_comment_user_like"`
	CommentID uint      `json:"comment_id" gorm:"index;uniqueIndex:idx_comment_user_like"`
	CreatedAt time.Time `json:"created_at"`
}
