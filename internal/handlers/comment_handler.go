package handlers

import (
	"net/http"
	"strconv"

	"github.com/inkwell-app/inkwell/internal/models"
	"github.com/inkwell-app/inkwell/internal/repositories"
	"github.com/inkwell-app/inkwell/internal/visibility"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// commentDateLayout mirrors the "September 02, 2026 at 09:04 PM" format the
// frontend renders next to each comment. The hour is zero-padded.
const commentDateLayout = "January 02, 2006 at 03:04 PM"

// CommentHandler handles HTTP requests related to comments. Commenting is
// gated by the same visibility rules as reading the blog.
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	blogRepository    repositories.BlogRepository
	userRepository    repositories.UserRepository
	checker           *visibility.Checker
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, blogRepo repositories.BlogRepository, userRepo repositories.UserRepository, checker *visibility.Checker) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		blogRepository:    blogRepo,
		userRepository:    userRepo,
		checker:           checker,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/add_comment/:blog_id", h.AddComment)
	g.POST("/delete_comment/:id", h.DeleteComment)
}

// AddComment creates a comment on a blog and returns it in the shape the
// frontend appends to the comment list.
func (h *CommentHandler) AddComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	blogID, err := strconv.ParseUint(c.Param("blog_id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid blog ID"})
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Comment must be between 1 and 1000 characters"})
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

	author, err := h.userRepository.GetByID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	comment := &models.Comment{
		Content: req.Content,
		UserID:  currentUserID,
		BlogID:  uint(blogID),
	}
	if err := h.commentRepository.Create(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"comment": echo.Map{
			"id":          comment.ID,
			"content":     comment.Content,
			"author":      author.FullName(),
			"date":        comment.CreatedAt.Format(commentDateLayout),
			"likes_count": 0,
		},
	})
}

// DeleteComment deletes a comment. Allowed for the comment's author and for
// the author of the blog it sits on.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
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

	blog, err := h.blogRepository.GetByID(comment.BlogID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if currentUserID != comment.UserID && currentUserID != blog.UserID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	}

	if err := h.commentRepository.Delete(comment.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Failed to delete comment"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Comment deleted successfully"})
}
