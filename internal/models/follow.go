package models

import "time"

// Follow represents a directed follow relationship. The composite unique
// index guarantees at most one edge per ordered (follower, followed) pair;
// self-loops are rejected at the operation level.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	FollowedID uint      `json:"followed_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	CreatedAt  time.Time `json:"created_at"`
}
