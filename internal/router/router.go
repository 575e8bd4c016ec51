package router

import (
	"log"

	"github.com/inkwell-app/inkwell/internal/handlers"
	"github.com/inkwell-app/inkwell/internal/middleware"
	"github.com/inkwell-app/inkwell/internal/models"
	"github.com/inkwell-app/inkwell/internal/repositories"
	"github.com/inkwell-app/inkwell/internal/visibility"
	"github.com/inkwell-app/inkwell/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes migrates the schema, builds the repositories and wires every
// route onto the Echo instance.
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Comment{},
		&models.Follow{},
		&models.BlogLike{},
		&models.CommentLike{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewUserRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	blogLikeRepo := repositories.NewBlogLikeRepository(db)
	commentLikeRepo := repositories.NewCommentLikeRepository(db)

	checker := visibility.NewChecker(followRepo)

	// Public pages honor a token when one is sent but never require it;
	// everything else demands a valid token.
	public := e.Group("")
	public.Use(middleware.OptionalJWTAuth())
	protected := e.Group("")
	protected.Use(middleware.JWTAuth())

	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(public, protected)
	log.Println("Auth routes configured.")

	feedHandler := handlers.NewFeedHandler(blogRepo, followRepo)
	feedHandler.RegisterFeedRoutes(public)
	log.Println("Feed routes configured.")

	blogHandler := handlers.NewBlogHandler(blogRepo, commentRepo, blogLikeRepo, commentLikeRepo, userRepo, checker, cfg)
	blogHandler.RegisterBlogRoutes(public, protected)
	log.Println("Blog routes configured.")

	userHandler := handlers.NewUserHandler(userRepo, blogRepo, followRepo, cfg)
	userHandler.RegisterUserRoutes(public, protected)
	log.Println("User profile routes configured.")

	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(protected)
	log.Println("Follow routes configured.")

	likeHandler := handlers.NewLikeHandler(blogLikeRepo, commentLikeRepo, blogRepo, commentRepo, checker)
	likeHandler.RegisterLikeRoutes(protected)
	log.Println("Like routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, blogRepo, userRepo, checker)
	commentHandler.RegisterCommentRoutes(protected)
	log.Println("Comment routes configured.")

	log.Println("All routes configured.")
}
