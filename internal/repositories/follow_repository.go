package repositories

import (
	"errors"

	"github.com/inkwell-app/inkwell/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSelfFollow is returned when a user attempts to follow themselves.
var ErrSelfFollow = errors.New("users cannot follow themselves")

// FollowRepository defines the interface for follow-graph operations.
// Follow and Unfollow are idempotent; repeating either is a no-op.
type FollowRepository interface {
	Follow(followerID, followedID uint) error
	Unfollow(followerID, followedID uint) error
	IsFollowing(followerID, followedID uint) (bool, error)
	ToggleFollow(followerID, followedID uint) (following bool, followers int64, err error)
	GetFollowers(userID uint) ([]models.User, error)
	GetFollowing(userID uint) ([]models.User, error)
	GetFollowersCount(userID uint) (int64, error)
	GetFollowingIDs(userID uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a FollowRepository backed by the given store
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(followerID, followedID uint) error {
	if followerID == followedID {
		return ErrSelfFollow
	}
	follow := &models.Follow{FollowerID: followerID, FollowedID: followedID}
	// The unique index plus DO NOTHING makes concurrent duplicate follows safe.
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error
}

func (r *followRepository) Unfollow(followerID, followedID uint) error {
	// Removing a non-existent edge is a no-op, not an error.
	return r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
}

func (r *followRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ToggleFollow flips the edge inside a single transaction and returns the new
// state together with the followed user's follower count as of commit.
func (r *followRepository) ToggleFollow(followerID, followedID uint) (bool, int64, error) {
	if followerID == followedID {
		return false, 0, ErrSelfFollow
	}
	var following bool
	var followers int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Follow{}).
			Where("follower_id = ? AND followed_id = ?", followerID, followedID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			if err := tx.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
				Delete(&models.Follow{}).Error; err != nil {
				return err
			}
			following = false
		} else {
			follow := &models.Follow{FollowerID: followerID, FollowedID: followedID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error; err != nil {
				return err
			}
			following = true
		}
		return tx.Model(&models.Follow{}).
			Where("followed_id = ?", followedID).
			Count(&followers).Error
	})
	if err != nil {
		return false, 0, err
	}
	return following, followers, nil
}

func (r *followRepository) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("follower_id").Where("followed_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *followRepository) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("followed_id").Where("follower_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *followRepository) GetFollowersCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *followRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Pluck("followed_id", &ids).Error
	return ids, err
}
