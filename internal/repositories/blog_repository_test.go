package repositories_test

import (
	"testing"
	"time"

	"github.com/inkwell-app/inkwell/internal/models"
	"github.com/inkwell-app/inkwell/internal/repositories"
	"github.com/inkwell-app/inkwell/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteBlogCascades(t *testing.T) {
	db := testutil.OpenDB(t)
	blogRepo := repositories.NewBlogRepository(db)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	blog := testutil.CreateBlog(t, db, alice.ID, true, false, time.Now())
	comment := testutil.CreateComment(t, db, bob.ID, blog.ID)

	require.NoError(t, repositories.NewBlogLikeRepository(db).Like(bob.ID, blog.ID))
	require.NoError(t, repositories.NewCommentLikeRepository(db).Like(alice.ID, comment.ID))

	require.NoError(t, blogRepo.Delete(blog.ID))

	var comments, blogLikes, commentLikes int64
	require.NoError(t, db.Model(&models.Comment{}).Where("blog_id = ?", blog.ID).Count(&comments).Error)
	require.NoError(t, db.Model(&models.BlogLike{}).Where("blog_id = ?", blog.ID).Count(&blogLikes).Error)
	require.NoError(t, db.Model(&models.CommentLike{}).Where("comment_id = ?", comment.ID).Count(&commentLikes).Error)
	assert.Zero(t, comments)
	assert.Zero(t, blogLikes)
	assert.Zero(t, commentLikes)

	_, err := blogRepo.GetByID(blog.ID)
	assert.Error(t, err)
}

func TestGetFeaturedExcludesPrivateBlogs(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repositories.NewBlogRepository(db)
	alice := testutil.CreateUser(t, db, "alice")
	now := time.Now()

	featured := testutil.CreateBlog(t, db, alice.ID, true, true, now)
	testutil.CreateBlog(t, db, alice.ID, false, true, now.Add(time.Minute)) // featured but private
	testutil.CreateBlog(t, db, alice.ID, true, false, now)

	blogs, err := repo.GetFeatured()
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, featured.ID, blogs[0].ID)
}

func TestGetRecentPublicOrderAndLimit(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repositories.NewBlogRepository(db)
	alice := testutil.CreateUser(t, db, "alice")
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		testutil.CreateBlog(t, db, alice.ID, true, false, base.Add(time.Duration(i)*time.Hour))
	}

	blogs, err := repo.GetRecentPublic(6)
	require.NoError(t, err)
	require.Len(t, blogs, 6)
	for i := 1; i < len(blogs); i++ {
		assert.True(t, !blogs[i].CreatedAt.After(blogs[i-1].CreatedAt))
	}
	assert.Equal(t, base.Add(7*time.Hour).Unix(), blogs[0].CreatedAt.Unix())
}

func TestFeedOrderTieBreaksOnIDDescending(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repositories.NewBlogRepository(db)
	alice := testutil.CreateUser(t, db, "alice")
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	first := testutil.CreateBlog(t, db, alice.ID, true, false, at)
	second := testutil.CreateBlog(t, db, alice.ID, true, false, at)

	blogs, err := repo.GetRecentPublic(6)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, second.ID, blogs[0].ID)
	assert.Equal(t, first.ID, blogs[1].ID)
}

func TestGetPublicPageBeyondLastIsEmpty(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repositories.NewBlogRepository(db)
	alice := testutil.CreateUser(t, db, "alice")
	now := time.Now()

	for i := 0; i < 4; i++ {
		testutil.CreateBlog(t, db, alice.ID, true, false, now.Add(time.Duration(i)*time.Minute))
	}
	testutil.CreateBlog(t, db, alice.ID, false, false, now)

	blogs, total, err := repo.GetPublicPage(1, 3)
	require.NoError(t, err)
	assert.Len(t, blogs, 3)
	assert.Equal(t, int64(4), total)

	blogs, total, err = repo.GetPublicPage(2, 3)
	require.NoError(t, err)
	assert.Len(t, blogs, 1)
	assert.Equal(t, int64(4), total)

	blogs, _, err = repo.GetPublicPage(5, 3)
	require.NoError(t, err)
	assert.Empty(t, blogs)
}

func TestGetRecentPrivateByAuthors(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repositories.NewBlogRepository(db)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	now := time.Now()

	private := testutil.CreateBlog(t, db, alice.ID, false, false, now)
	testutil.CreateBlog(t, db, alice.ID, true, false, now)
	testutil.CreateBlog(t, db, bob.ID, false, false, now)

	blogs, err := repo.GetRecentPrivateByAuthors([]uint{alice.ID}, 6)
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, private.ID, blogs[0].ID)

	blogs, err = repo.GetRecentPrivateByAuthors(nil, 6)
	require.NoError(t, err)
	assert.Empty(t, blogs)
}

func TestGetByAuthorRespectsPrivacy(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repositories.NewBlogRepository(db)
	alice := testutil.CreateUser(t, db, "alice")
	now := time.Now()

	testutil.CreateBlog(t, db, alice.ID, true, false, now)
	testutil.CreateBlog(t, db, alice.ID, false, false, now.Add(time.Minute))

	all, err := repo.GetByAuthor(alice.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	publicOnly, err := repo.GetByAuthor(alice.ID, false)
	require.NoError(t, err)
	require.Len(t, publicOnly, 1)
	assert.True(t, publicOnly[0].IsPublic)
}
