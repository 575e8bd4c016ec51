package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/inkwell-app/inkwell/internal/models"
	"github.com/inkwell-app/inkwell/internal/repositories"
	"github.com/inkwell-app/inkwell/internal/visibility"
	"github.com/inkwell-app/inkwell/pkg/config"
	"github.com/inkwell-app/inkwell/pkg/images"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// BlogHandler handles blog CRUD, the single-blog view, the dashboard and
// the explore listing.
type BlogHandler struct {
	blogRepository        repositories.BlogRepository
	commentRepository     repositories.CommentRepository
	blogLikeRepository    repositories.BlogLikeRepository
	commentLikeRepository repositories.CommentLikeRepository
	userRepository        repositories.UserRepository
	checker               *visibility.Checker
	cfg                   *config.Config
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(
	blogRepo repositories.BlogRepository,
	commentRepo repositories.CommentRepository,
	blogLikeRepo repositories.BlogLikeRepository,
	commentLikeRepo repositories.CommentLikeRepository,
	userRepo repositories.UserRepository,
	checker *visibility.Checker,
	cfg *config.Config,
) *BlogHandler {
	return &BlogHandler{
		blogRepository:        blogRepo,
		commentRepository:     commentRepo,
		blogLikeRepository:    blogLikeRepo,
		commentLikeRepository: commentLikeRepo,
		userRepository:        userRepo,
		checker:               checker,
		cfg:                   cfg,
	}
}

// RegisterBlogRoutes registers blog routes on the optional-auth and
// required-auth groups.
func (h *BlogHandler) RegisterBlogRoutes(public, protected *echo.Group) {
	public.GET("/blog/:id", h.ViewBlog)
	public.GET("/explore", h.Explore)
	protected.POST("/create_blog", h.CreateBlog)
	protected.PUT("/edit_blog/:id", h.EditBlog)
	protected.POST("/delete_blog/:id", h.DeleteBlog)
	protected.GET("/dashboard", h.Dashboard)
}

// CreateBlog publishes a new blog, with an optional multipart cover image
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	var req models.CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	blog := &models.Blog{
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Content:    req.Content,
		IsPublic:   req.IsPublic,
		IsFeatured: req.IsFeatured,
		UserID:     currentUserID,
	}

	if file, err := c.FormFile("cover_image"); err == nil {
		filename, err := images.Save(file, h.cfg.UploadDir, "covers", 1200, 800)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Failed to process cover image")
		}
		blog.CoverImage = filename
	}

	if err := h.blogRepository.Create(blog); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, blog)
}

// ViewBlog returns a single blog with author, live counts and comments,
// gated by the visibility rules.
func (h *BlogHandler) ViewBlog(c echo.Context) error {
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

	author, err := h.userRepository.GetByID(blog.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	likesCount, err := h.blogLikeRepository.LikesCount(blog.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comments, err := h.commentRepository.GetByBlogID(blog.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	commentPayloads := make([]echo.Map, 0, len(comments))
	for _, comment := range comments {
		commentAuthor := models.UserCompact{}
		if u, err := h.userRepository.GetByID(comment.UserID); err == nil {
			commentAuthor = u.ToCompact()
		}
		commentLikes, err := h.commentLikeRepository.LikesCount(comment.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		commentPayloads = append(commentPayloads, echo.Map{
			"id":          comment.ID,
			"content":     comment.Content,
			"author":      commentAuthor,
			"date":        comment.CreatedAt.Format(commentDateLayout),
			"likes_count": commentLikes,
		})
	}

	hasLiked := false
	if currentUserID != 0 {
		hasLiked, err = h.blogLikeRepository.HasLiked(currentUserID, blog.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"blog":           blog,
		"author":         author.ToCompact(),
		"likes_count":    likesCount,
		"comments_count": len(comments),
		"has_liked":      hasLiked,
		"comments":       commentPayloads,
	})
}

// EditBlog updates a blog; authors only
func (h *BlogHandler) EditBlog(c echo.Context) error {
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

	if blog.UserID != currentUserID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You can only edit your own blogs"})
	}

	var req models.UpdateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	blog.Title = req.Title
	blog.Subtitle = req.Subtitle
	blog.Content = req.Content
	blog.IsPublic = req.IsPublic
	blog.IsFeatured = req.IsFeatured
	blog.UpdatedAt = time.Now().UTC()

	if file, err := c.FormFile("cover_image"); err == nil {
		filename, err := images.Save(file, h.cfg.UploadDir, "covers", 1200, 800)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Failed to process cover image")
		}
		blog.CoverImage = filename
	}

	if err := h.blogRepository.Update(blog); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, blog)
}

// DeleteBlog deletes a blog and everything hanging off it; authors only
func (h *BlogHandler) DeleteBlog(c echo.Context) error {
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

	if blog.UserID != currentUserID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You can only delete your own blogs"})
	}

	if err := h.blogRepository.Delete(blog.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Blog deleted successfully"})
}

// Dashboard lists the current user's own blogs, newest first
func (h *BlogHandler) Dashboard(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	blogs, err := h.blogRepository.GetByAuthor(currentUserID, true)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"blogs": blogs})
}

// Explore lists public blogs with offset pagination. Pages are 1-indexed;
// a page past the end returns an empty list.
func (h *BlogHandler) Explore(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage := h.cfg.PostsPerPage

	blogs, total, err := h.blogRepository.GetPublicPage(page, perPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	return c.JSON(http.StatusOK, echo.Map{
		"blogs": blogs,
		"meta": echo.Map{
			"currentPage":     page,
			"totalPages":      totalPages,
			"totalItems":      total,
			"itemsPerPage":    perPage,
			"hasNextPage":     page < totalPages,
			"hasPreviousPage": page > 1,
		},
	})
}
