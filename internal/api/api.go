package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/musclematch/backend/internal/middleware"
	"github.com/musclematch/backend/internal/service"
)

// SetupAPI wires services and handlers onto the router.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, store service.ObjectStore, jwtSecret string) {
	// Initialize services
	authService := service.NewAuthService(db, jwtSecret)
	profileService := service.NewProfileService(db)
	verificationService := service.NewVerificationService(db)
	moderationService := service.NewModerationService(db)
	likeService := service.NewLikeService(db)
	mediaService := service.NewMediaService(db, store)

	// Initialize handlers
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	verificationHandler := NewVerificationHandler(verificationService)
	adminHandler := NewAdminHandler(moderationService)
	likeHandler := NewLikeHandler(likeService)
	mediaHandler := NewMediaHandler(mediaService)

	v1 := router.Group("/api/v1")

	// Public routes
	authHandler.RegisterRoutes(v1)

	// Abuse throttles on top of auth; skipped when Redis is absent (tests).
	var likeThrottle, submitThrottle gin.HandlerFunc
	if redisClient != nil {
		likeThrottle = middleware.NewLikeRateLimiter(redisClient).RateLimitMiddleware()
		submitThrottle = middleware.NewEvidenceSubmissionRateLimiter(redisClient).RateLimitMiddleware()
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		profileHandler.RegisterRoutes(protected)
		verificationHandler.RegisterRoutes(protected, submitThrottle)
		adminHandler.RegisterRoutes(protected)
		mediaHandler.RegisterRoutes(protected)
		likeHandler.RegisterRoutes(protected, likeThrottle)
	}
}
