package repositories

import (
	"github.com/inkwell-app/inkwell/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlogLikeRepository defines the interface for blog like operations.
// Like and Unlike are idempotent. LikesCount is always computed from the
// live edge set; there is no denormalized counter to drift.
type BlogLikeRepository interface {
	Like(userID, blogID uint) error
	Unlike(userID, blogID uint) error
	HasLiked(userID, blogID uint) (bool, error)
	LikesCount(blogID uint) (int64, error)
	Toggle(userID, blogID uint) (liked bool, count int64, err error)
}

type blogLikeRepository struct {
	db *gorm.DB
}

// NewBlogLikeRepository creates a BlogLikeRepository backed by the given store
func NewBlogLikeRepository(db *gorm.DB) BlogLikeRepository {
	return &blogLikeRepository{db: db}
}

func (r *blogLikeRepository) Like(userID, blogID uint) error {
	like := &models.BlogLike{UserID: userID, BlogID: blogID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

func (r *blogLikeRepository) Unlike(userID, blogID uint) error {
	return r.db.Where("user_id = ? AND blog_id = ?", userID, blogID).
		Delete(&models.BlogLike{}).Error
}

func (r *blogLikeRepository) HasLiked(userID, blogID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlogLike{}).
		Where("user_id = ? AND blog_id = ?", userID, blogID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *blogLikeRepository) LikesCount(blogID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.BlogLike{}).Where("blog_id = ?", blogID).Count(&count).Error
	return count, err
}

// Toggle flips the like inside a single transaction; the returned count is
// consistent with the flip it just performed.
func (r *blogLikeRepository) Toggle(userID, blogID uint) (bool, int64, error) {
	var liked bool
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.BlogLike{}).
			Where("user_id = ? AND blog_id = ?", userID, blogID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			if err := tx.Where("user_id = ? AND blog_id = ?", userID, blogID).
				Delete(&models.BlogLike{}).Error; err != nil {
				return err
			}
			liked = false
		} else {
			like := &models.BlogLike{UserID: userID, BlogID: blogID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
				return err
			}
			liked = true
		}
		return tx.Model(&models.BlogLike{}).Where("blog_id = ?", blogID).Count(&count).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}
