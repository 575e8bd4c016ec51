package repositories

import (
	"github.com/inkwell-app/inkwell/internal/models"
	"gorm.io/gorm"
)

// feedOrder is the deterministic feed ordering: newest first, ties broken
// by higher id so equal timestamps never reshuffle between reads.
const feedOrder = "created_at DESC, id DESC"

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	Create(blog *models.Blog) error
	GetByID(id uint) (*models.Blog, error)
	Update(blog *models.Blog) error
	Delete(id uint) error
	GetFeatured() ([]models.Blog, error)
	GetRecentPublic(limit int) ([]models.Blog, error)
	GetRecentPrivateByAuthors(authorIDs []uint, limit int) ([]models.Blog, error)
	GetByAuthor(userID uint, includePrivate bool) ([]models.Blog, error)
	GetPublicPage(page, perPage int) ([]models.Blog, int64, error)
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a BlogRepository backed by the given store
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

func (r *blogRepository) GetByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.First(&blog, id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// Delete removes the blog together with its comments, its likes and its
// comments' likes in one transaction.
func (r *blogRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteBlogCascade(tx, id)
	})
}

// deleteBlogCascade is shared with the user cascade in user_repository.go;
// it assumes it is already running inside a transaction.
func deleteBlogCascade(tx *gorm.DB, blogID uint) error {
	var commentIDs []uint
	if err := tx.Model(&models.Comment{}).Where("blog_id = ?", blogID).Pluck("id", &commentIDs).Error; err != nil {
		return err
	}
	if len(commentIDs) > 0 {
		if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("blog_id = ?", blogID).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("blog_id = ?", blogID).Delete(&models.BlogLike{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Blog{}, blogID).Error
}

// GetFeatured returns featured public blogs, newest first. The is_public
// filter keeps a featured-but-private blog off the home page.
func (r *blogRepository) GetFeatured() ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Where("is_featured = ? AND is_public = ?", true, true).
		Order(feedOrder).Find(&blogs).Error
	return blogs, err
}

func (r *blogRepository) GetRecentPublic(limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Where("is_public = ?", true).
		Order(feedOrder).Limit(limit).Find(&blogs).Error
	return blogs, err
}

// GetRecentPrivateByAuthors returns the most recent private blogs written by
// any of the given authors; used to extend the home feed for a viewer with
// their own and their followed users' private blogs.
func (r *blogRepository) GetRecentPrivateByAuthors(authorIDs []uint, limit int) ([]models.Blog, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var blogs []models.Blog
	err := r.db.Where("user_id IN ? AND is_public = ?", authorIDs, false).
		Order(feedOrder).Limit(limit).Find(&blogs).Error
	return blogs, err
}

func (r *blogRepository) GetByAuthor(userID uint, includePrivate bool) ([]models.Blog, error) {
	var blogs []models.Blog
	q := r.db.Where("user_id = ?", userID)
	if !includePrivate {
		q = q.Where("is_public = ?", true)
	}
	err := q.Order(feedOrder).Find(&blogs).Error
	return blogs, err
}

// GetPublicPage returns one 1-indexed page of public blogs plus the total
// count. A page past the end comes back empty, not as an error.
func (r *blogRepository) GetPublicPage(page, perPage int) ([]models.Blog, int64, error) {
	if page < 1 {
		page = 1
	}
	var total int64
	if err := r.db.Model(&models.Blog{}).Where("is_public = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var blogs []models.Blog
	err := r.db.Where("is_public = ?", true).
		Order(feedOrder).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&blogs).Error
	return blogs, total, err
}
