// Package visibility decides who may read a blog. Public blogs are visible
// to everyone including anonymous visitors; private blogs are visible to the
// author and to users following the author.
package visibility

import (
	"github.com/inkwell-app/inkwell/internal/models"
	"github.com/inkwell-app/inkwell/internal/repositories"
)

// AnonymousViewer is the viewer id of an unauthenticated request.
const AnonymousViewer uint = 0

// Checker answers CanView questions against the follow graph.
type Checker struct {
	follows repositories.FollowRepository
}

// NewChecker creates a Checker backed by the given follow repository
func NewChecker(follows repositories.FollowRepository) *Checker {
	return &Checker{follows: follows}
}

// CanView reports whether viewerID may read blog. It never mutates state,
// so it is safe to call once per blog while rendering a listing.
func (c *Checker) CanView(viewerID uint, blog *models.Blog) (bool, error) {
	if blog.IsPublic {
		return true, nil
	}
	if viewerID == AnonymousViewer {
		return false, nil
	}
	if viewerID == blog.UserID {
		return true, nil
	}
	return c.follows.IsFollowing(viewerID, blog.UserID)
}
