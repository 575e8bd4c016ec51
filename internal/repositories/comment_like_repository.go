package repositories

import (
	"github.com/inkwell-app/inkwell/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentLikeRepository defines the interface for comment like operations,
// symmetric with BlogLikeRepository.
type CommentLikeRepository interface {
	Like(userID, commentID uint) error
	Unlike(userID, commentID uint) error
	HasLiked(userID, commentID uint) (bool, error)
	LikesCount(commentID uint) (int64, error)
	Toggle(userID, commentID uint) (liked bool, count int64, err error)
}

type commentLikeRepository struct {
	db *gorm.DB
}

// NewCommentLikeRepository creates a CommentLikeRepository backed by the given store
func NewCommentLikeRepository(db *gorm.DB) CommentLikeRepository {
	return &commentLikeRepository{db: db}
}

func (r *commentLikeRepository) Like(userID, commentID uint) error {
	like := &models.CommentLike{UserID: userID, CommentID: commentID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

func (r *commentLikeRepository) Unlike(userID, commentID uint) error {
	return r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&models.CommentLike{}).Error
}

func (r *commentLikeRepository) HasLiked(userID, commentID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *commentLikeRepository) LikesCount(commentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CommentLike{}).Where("comment_id = ?", commentID).Count(&count).Error
	return count, err
}

func (r *commentLikeRepository) Toggle(userID, commentID uint) (bool, int64, error) {
	var liked bool
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.CommentLike{}).
			Where("user_id = ? AND comment_id = ?", userID, commentID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			if err := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).
				Delete(&models.CommentLike{}).Error; err != nil {
				return err
			}
			liked = false
		} else {
			like := &models.CommentLike{UserID: userID, CommentID: commentID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
				return err
			}
			liked = true
		}
		return tx.Model(&models.CommentLike{}).Where("comment_id = ?", commentID).Count(&count).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}
