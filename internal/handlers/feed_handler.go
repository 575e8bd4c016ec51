package handlers

import (
	"net/http"

	"github.com/inkwell-app/inkwell/internal/feed"
	"github.com/inkwell-app/inkwell/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler composes the home page feed
type FeedHandler struct {
	blogRepository   repositories.BlogRepository
	followRepository repositories.FollowRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(blogRepo repositories.BlogRepository, followRepo repositories.FollowRepository) *FeedHandler {
	return &FeedHandler{
		blogRepository:   blogRepo,
		followRepository: followRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/", h.Home)
}

// Home returns the featured blogs and the recent section. Anonymous
// visitors get the most recent public blogs; a logged-in viewer also gets
// private blogs from themselves and the users they follow, merged into the
// same six slots.
func (h *FeedHandler) Home(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	featured, err := h.blogRepository.GetFeatured()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	recent, err := h.blogRepository.GetRecentPublic(feed.RecentLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if currentUserID != 0 {
		followedIDs, err := h.followRepository.GetFollowingIDs(currentUserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		authorIDs := append(followedIDs, currentUserID)

		private, err := h.blogRepository.GetRecentPrivateByAuthors(authorIDs, feed.RecentLimit)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		recent = feed.MergeRecent(recent, private, feed.RecentLimit)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"featured": featured,
		"recent":   recent,
	})
}
