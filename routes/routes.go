// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pulsenet-api/config"
	"pulsenet-api/controllers"
	"pulsenet-api/middleware"
	"pulsenet-api/repositories"
	"pulsenet-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	postRepo := repositories.NewPostRepository(db, cfg.SearchLanguage)
	userRepo := repositories.NewUserRepository(db)

	postViewService := services.NewPostViewService(postRepo)
	feedService := services.NewFeedService(postRepo, postViewService)
	searchService := services.NewSearchService(postRepo, postViewService)

	notificationController := controllers.NewNotificationController(db)
	authController := controllers.NewAuthController(db, cfg, emailService)
	feedController := controllers.NewFeedController(feedService)
	postController := controllers.NewPostController(db, postViewService, searchService, notificationController)
	commentController := controllers.NewCommentController(db, notificationController)
	userController := controllers.NewUserController(db, userRepo, notificationController)
	mediaController := controllers.NewMediaController(db, cfg.UploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit(cfg.AuthRequestsPerMinute, cfg.AuthBurst))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Read surfaces work anonymously; a valid token only adds the
	// viewer-relative fields.
	public := api.Group("")
	public.Use(middleware.AuthOptional(cfg.JWTSecret))
	{
		public.GET("/feed", feedController.GetFeed)
		public.GET("/posts/search", postController.SearchPosts)
		public.GET("/posts/:id", postController.GetPost)
		public.GET("/posts/:id/comments", commentController.GetComments)
		public.GET("/users/:id", userController.GetUser)
		public.GET("/users/:id/posts", postController.GetUserPosts)
		public.GET("/users/:id/followers", userController.GetFollowers)
		public.GET("/users/:id/following", userController.GetFollowing)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		protected.POST("/posts", postController.CreatePost)
		protected.PUT("/posts/:id", postController.UpdatePost)
		protected.DELETE("/posts/:id", postController.DeletePost)
		protected.POST("/posts/:id/like", postController.LikePost)
		protected.DELETE("/posts/:id/like", postController.UnlikePost)
		protected.POST("/posts/:id/comments", commentController.CreateComment)
		protected.DELETE("/comments/:id", commentController.DeleteComment)
		protected.PUT("/users/me", userController.UpdateProfile)
		protected.POST("/users/:id/follow", userController.FollowUser)
		protected.DELETE("/users/:id/follow", userController.UnfollowUser)
		protected.POST("/media/upload", mediaController.UploadMedia)
		protected.POST("/posts/:id/attach", mediaController.AttachToPost)
		protected.GET("/notifications", notificationController.GetNotifications)
		protected.PUT("/notifications/:id/read", notificationController.MarkAsRead)
	}
}
