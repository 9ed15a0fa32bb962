package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/musclematch/backend/internal/middleware"
	"github.com/musclematch/backend/internal/service"
	"github.com/musclematch/backend/internal/types"
)

// AdminHandler exposes the moderation queue and role management. The admin
// check happens inside the moderation service on every call, not here; this
// layer only parses the request.
type AdminHandler struct {
	moderationService service.IModerationService
}

func NewAdminHandler(moderationService service.IModerationService) *AdminHandler {
	return &AdminHandler{moderationService: moderationService}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.GET("/verifications", h.ListPending)
		admin.PUT("/verifications/:id", h.RecordDecision)
		admin.PUT("/users/:id/role", h.SetRole)
	}
}

func (h *AdminHandler) ListPending(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	pending, err := h.moderationService.ListPending(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": pending, "count": len(pending)})
}

func (h *AdminHandler) RecordDecision(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	var req types.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	status, err := h.moderationService.RecordDecision(c.Request.Context(), userID, profileID, req.Category, req.Decision)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

func (h *AdminHandler) SetRole(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	var req types.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	role, err := h.moderationService.SetRole(c.Request.Context(), userID, profileID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role})
}
