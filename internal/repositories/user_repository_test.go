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

func TestUserLookups(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repositories.NewUserRepository(db)
	alice := testutil.CreateUser(t, db, "alice")

	byID, err := repo.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)

	byEmail, err := repo.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)

	_, err = repo.GetByUsername("nobody")
	assert.Error(t, err)
}

func TestDeleteUserCascadesEverything(t *testing.T) {
	db := testutil.OpenDB(t)
	userRepo := repositories.NewUserRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	blogLikeRepo := repositories.NewBlogLikeRepository(db)
	commentLikeRepo := repositories.NewCommentLikeRepository(db)

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	aliceBlog := testutil.CreateBlog(t, db, alice.ID, false, false, time.Now())
	bobBlog := testutil.CreateBlog(t, db, bob.ID, true, false, time.Now())

	aliceComment := testutil.CreateComment(t, db, alice.ID, bobBlog.ID)
	bobComment := testutil.CreateComment(t, db, bob.ID, aliceBlog.ID)

	require.NoError(t, followRepo.Follow(alice.ID, bob.ID))
	require.NoError(t, followRepo.Follow(bob.ID, alice.ID))
	require.NoError(t, blogLikeRepo.Like(alice.ID, bobBlog.ID))
	require.NoError(t, blogLikeRepo.Like(bob.ID, aliceBlog.ID))
	require.NoError(t, commentLikeRepo.Like(bob.ID, aliceComment.ID))

	require.NoError(t, userRepo.Delete(alice.ID))

	_, err := userRepo.GetByID(alice.ID)
	assert.Error(t, err)

	// Alice's blog is gone together with bob's comment and like on it.
	var blogs, comments, blogLikes, commentLikes, follows int64
	require.NoError(t, db.Model(&models.Blog{}).Where("user_id = ?", alice.ID).Count(&blogs).Error)
	require.NoError(t, db.Model(&models.Comment{}).Where("blog_id = ? OR user_id = ?", aliceBlog.ID, alice.ID).Count(&comments).Error)
	require.NoError(t, db.Model(&models.BlogLike{}).Where("blog_id = ? OR user_id = ?", aliceBlog.ID, alice.ID).Count(&blogLikes).Error)
	require.NoError(t, db.Model(&models.CommentLike{}).Where("comment_id IN ?", []uint{aliceComment.ID, bobComment.ID}).Count(&commentLikes).Error)
	require.NoError(t, db.Model(&models.Follow{}).Where("follower_id = ? OR followed_id = ?", alice.ID, alice.ID).Count(&follows).Error)
	assert.Zero(t, blogs)
	assert.Zero(t, comments)
	assert.Zero(t, blogLikes)
	assert.Zero(t, commentLikes)
	assert.Zero(t, follows)

	// Bob's own blog survives.
	var bobBlogs int64
	require.NoError(t, db.Model(&models.Blog{}).Where("user_id = ?", bob.ID).Count(&bobBlogs).Error)
	assert.Equal(t, int64(1), bobBlogs)
}
