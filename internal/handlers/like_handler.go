package handlers

import (
	"net/http"
	"strconv"

	"github.com/inkwell-app/inkwell/internal/repositories"
	"github.com/inkwell-app/inkwell/internal/visibility"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// LikeHandler handles the like toggles for blogs and comments. Liking is
// gated by the same visibility rules as reading: a blog you cannot view is a
// blog you cannot like.
type LikeHandler struct {
	blogLikeRepository    repositories.BlogLikeRepository
	commentLikeRepository repositories.CommentLikeRepository
	blogRepository        repositories.BlogRepository
	commentRepository     repositories.CommentRepository
	checker               *visibility.Checker
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(
	blogLikeRepo repositories.BlogLikeRepository,
	commentLikeRepo repositories.CommentLikeRepository,
	blogRepo repositories.BlogRepository,
	commentRepo repositories.CommentRepository,
	checker *visibility.Checker,
) *LikeHandler {
	return &LikeHandler{
		blogLikeRepository:    blogLikeRepo,
		commentLikeRepository: commentLikeRepo,
		blogRepository:        blogRepo,
		commentRepository:     commentRepo,
		checker:               checker,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/toggle_like_blog/:id", h.ToggleLikeBlog)
	g.POST("/toggle_like_comment/:id", h.ToggleLikeComment)
}

// ToggleLikeBlog flips the current user's like on a blog and returns the new
// state with the blog's live like count.
func (h *LikeHandler) ToggleLikeBlog(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	blogID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid blog ID"})
	}

	blog, err := h.blogRepository.GetByID(uint(blogID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Blog not found"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	canView, err := h.checker.CanView(currentUserID, blog)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !canView {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You don't have permission to view this blog"})
	}

	liked, count, err := h.blogLikeRepository.Toggle(currentUserID, uint(blogID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"status": likeStatus(liked), "likes_count": count})
}

// ToggleLikeComment flips the current user's like on a comment.
func (h *LikeHandler) ToggleLikeComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid comment ID"})
	}

	comment, err := h.commentRepository.GetByID(uint(commentID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Comment not found"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// The comment inherits the visibility of the blog it sits on.
	blog, err := h.blogRepository.GetByID(comment.BlogID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	canView, err := h.checker.CanView(currentUserID, blog)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !canView {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You don't have permission to view this blog"})
	}

	liked, count, err := h.commentLikeRepository.Toggle(currentUserID, uint(commentID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"status": likeStatus(liked), "likes_count": count})
}

func likeStatus(liked bool) string {
	if liked {
		return "liked"
	}
	return "unliked"
}
