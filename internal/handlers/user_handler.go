package handlers

import (
	"net/http"
	"strings"

	"github.com/inkwell-app/inkwell/internal/models"
	"github.com/inkwell-app/inkwell/internal/repositories"
	"github.com/inkwell-app/inkwell/pkg/config"
	"github.com/inkwell-app/inkwell/pkg/images"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles profile pages and profile editing
type UserHandler struct {
	userRepository   repositories.UserRepository
	blogRepository   repositories.BlogRepository
	followRepository repositories.FollowRepository
	cfg              *config.Config
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, blogRepo repositories.BlogRepository, followRepo repositories.FollowRepository, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		blogRepository:   blogRepo,
		followRepository: followRepo,
		cfg:              cfg,
	}
}

// RegisterUserRoutes registers profile routes on the optional-auth and
// required-auth groups.
func (h *UserHandler) RegisterUserRoutes(public, protected *echo.Group) {
	public.GET("/profile/:username", h.GetProfile)
	protected.PUT("/edit_profile", h.EditProfile)
}

// GetProfile returns a user's profile with their blogs. The owner and their
// followers see private blogs too; everyone else gets only public ones.
func (h *UserHandler) GetProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	user, err := h.userRepository.GetByUsername(c.Param("username"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	includePrivate := false
	isFollowing := false
	if currentUserID != 0 {
		if currentUserID == user.ID {
			includePrivate = true
		} else {
			isFollowing, err = h.followRepository.IsFollowing(currentUserID, user.ID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			includePrivate = isFollowing
		}
	}

	blogs, err := h.blogRepository.GetByAuthor(user.ID, includePrivate)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followersCount, err := h.followRepository.GetFollowersCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":            user,
		"blogs":           blogs,
		"followers_count": followersCount,
		"is_following":    isFollowing,
	})
}

// EditProfile updates the current user's profile, re-checking username and
// email uniqueness when they change. Accepts an optional multipart
// profile_picture part.
func (h *UserHandler) EditProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetByID(currentUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.Username != user.Username {
		if _, err := h.userRepository.GetByUsername(req.Username); err == nil {
			return echo.NewHTTPError(http.StatusConflict, "Username already taken")
		}
	}
	email := strings.ToLower(req.Email)
	if email != user.Email {
		if _, err := h.userRepository.GetByEmail(email); err == nil {
			return echo.NewHTTPError(http.StatusConflict, "Email already registered")
		}
	}

	user.Username = req.Username
	user.Email = email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Bio = req.Bio

	if file, err := c.FormFile("profile_picture"); err == nil {
		filename, err := images.Save(file, h.cfg.UploadDir, "profiles", 300, 300)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Failed to process profile picture")
		}
		user.ProfilePicture = filename
	}

	if err := h.userRepository.Update(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, user)
}
