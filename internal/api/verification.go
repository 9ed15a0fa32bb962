package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/musclematch/backend/internal/middleware"
	"github.com/musclematch/backend/internal/service"
	"github.com/musclematch/backend/internal/types"
)

// VerificationHandler exposes the user-facing review operations.
type VerificationHandler struct {
	verificationService service.IVerificationService
}

func NewVerificationHandler(verificationService service.IVerificationService) *VerificationHandler {
	return &VerificationHandler{verificationService: verificationService}
}

func (h *VerificationHandler) RegisterRoutes(router *gin.RouterGroup, submitThrottle gin.HandlerFunc) {
	verification := router.Group("/verification")
	{
		if submitThrottle != nil {
			verification.POST("", submitThrottle, h.Submit)
		} else {
			verification.POST("", h.Submit)
		}
		verification.GET("", h.Status)
	}
}

func (h *VerificationHandler) Submit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.SubmitEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	status, err := h.verificationService.SubmitEvidence(c.Request.Context(), userID, req.Category, req.StorageKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

func (h *VerificationHandler) Status(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	status, err := h.verificationService.GetStatus(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
