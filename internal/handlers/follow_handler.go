package handlers

import (
	"net/http"

	"github.com/inkwell-app/inkwell/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/toggle_follow/:username", h.ToggleFollow)
}

// ToggleFollow flips the follow edge towards the named user and returns the
// new state with the target's follower count.
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	target, err := h.userRepository.GetByUsername(c.Param("username"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if target.ID == currentUserID {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "You cannot follow yourself"})
	}

	following, followers, err := h.followRepository.ToggleFollow(currentUserID, target.ID)
	if err != nil {
		if err == repositories.ErrSelfFollow {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "You cannot follow yourself"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	status := "unfollowed"
	if following {
		status = "followed"
	}
	return c.JSON(http.StatusOK, echo.Map{"status": status, "followers_count": followers})
}
