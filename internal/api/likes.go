package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/musclematch/backend/internal/middleware"
	"github.com/musclematch/backend/internal/service"
)

// LikeHandler exposes the daily like budget.
type LikeHandler struct {
	likeService service.ILikeService
}

func NewLikeHandler(likeService service.ILikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) RegisterRoutes(router *gin.RouterGroup, throttle gin.HandlerFunc) {
	likes := router.Group("/likes")
	if throttle != nil {
		likes.Use(throttle)
	}
	{
		likes.POST("", h.Spend)
		likes.GET("", h.Budget)
	}
}

func (h *LikeHandler) Spend(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	budget, err := h.likeService.SpendLike(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

func (h *LikeHandler) Budget(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	budget, err := h.likeService.Budget(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}
