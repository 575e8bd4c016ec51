package visibility_test

import (
	"testing"
	"time"

	"github.com/inkwell-app/inkwell/internal/repositories"
	"github.com/inkwell-app/inkwell/internal/testutil"
	"github.com/inkwell-app/inkwell/internal/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicBlogIsVisibleToEveryone(t *testing.T) {
	db := testutil.OpenDB(t)
	checker := visibility.NewChecker(repositories.NewFollowRepository(db))
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	blog := testutil.CreateBlog(t, db, alice.ID, true, false, time.Now())

	for _, viewer := range []uint{visibility.AnonymousViewer, alice.ID, bob.ID} {
		ok, err := checker.CanView(viewer, blog)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestPrivateBlogVisibility(t *testing.T) {
	db := testutil.OpenDB(t)
	follows := repositories.NewFollowRepository(db)
	checker := visibility.NewChecker(follows)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	blog := testutil.CreateBlog(t, db, alice.ID, false, false, time.Now())

	// Anonymous visitors never see private blogs.
	ok, err := checker.CanView(visibility.AnonymousViewer, blog)
	require.NoError(t, err)
	assert.False(t, ok)

	// A stranger does not either.
	ok, err = checker.CanView(bob.ID, blog)
	require.NoError(t, err)
	assert.False(t, ok)

	// The author always does.
	ok, err = checker.CanView(alice.ID, blog)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFollowGrantsAndUnfollowRevokesVisibility(t *testing.T) {
	db := testutil.OpenDB(t)
	follows := repositories.NewFollowRepository(db)
	checker := visibility.NewChecker(follows)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	blog := testutil.CreateBlog(t, db, alice.ID, false, false, time.Now())

	require.NoError(t, follows.Follow(bob.ID, alice.ID))
	ok, err := checker.CanView(bob.ID, blog)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, follows.Unfollow(bob.ID, alice.ID))
	ok, err = checker.CanView(bob.ID, blog)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFollowDirectionMatters(t *testing.T) {
	db := testutil.OpenDB(t)
	follows := repositories.NewFollowRepository(db)
	checker := visibility.NewChecker(follows)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	blog := testutil.CreateBlog(t, db, alice.ID, false, false, time.Now())

	// Alice following bob does not let bob read alice's private blog.
	require.NoError(t, follows.Follow(alice.ID, bob.ID))
	ok, err := checker.CanView(bob.ID, blog)
	require.NoError(t, err)
	assert.False(t, ok)
}
