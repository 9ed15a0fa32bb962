package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/musclematch/backend/internal/mocks"
	"github.com/musclematch/backend/internal/models"
	"github.com/musclematch/backend/internal/service"
	"github.com/musclematch/backend/internal/types"
)

// authAs simulates the auth middleware for handler tests.
func authAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func setupVerificationRouter(svc service.IVerificationService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/v1", authAs(userID))
	NewVerificationHandler(svc).RegisterRoutes(group, nil)
	return router
}

func TestSubmitEvidenceHandler(t *testing.T) {
	mockSvc := new(mocks.MockVerificationService)
	userID := uuid.New()
	router := setupVerificationRouter(mockSvc, userID)

	mockSvc.On("SubmitEvidence", mock.Anything, userID, models.CategoryIdentity, "identity/key.jpg").
		Return(&models.VerificationStatus{
			Identity: models.VerificationPending,
			Muscle:   models.VerificationNotSubmitted,
		}, nil)

	body, _ := json.Marshal(types.SubmitEvidenceRequest{
		Category:   models.CategoryIdentity,
		StorageKey: "identity/key.jpg",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/verification", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status models.VerificationStatus `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.VerificationPending, resp.Status.Identity)
	mockSvc.AssertExpectations(t)
}

func TestSubmitEvidenceHandlerRejectsBadCategory(t *testing.T) {
	mockSvc := new(mocks.MockVerificationService)
	router := setupVerificationRouter(mockSvc, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/verification",
		bytes.NewReader([]byte(`{"category":"tattoo","storage_key":"x"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "SubmitEvidence")
}

func TestSubmitEvidenceHandlerConflict(t *testing.T) {
	mockSvc := new(mocks.MockVerificationService)
	userID := uuid.New()
	router := setupVerificationRouter(mockSvc, userID)

	mockSvc.On("SubmitEvidence", mock.Anything, userID, models.CategoryIdentity, "identity/key.jpg").
		Return(nil, service.ErrInvalidTransition)

	body, _ := json.Marshal(types.SubmitEvidenceRequest{
		Category:   models.CategoryIdentity,
		StorageKey: "identity/key.jpg",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/verification", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStatusHandler(t *testing.T) {
	mockSvc := new(mocks.MockVerificationService)
	userID := uuid.New()
	router := setupVerificationRouter(mockSvc, userID)

	mockSvc.On("GetStatus", mock.Anything, userID).Return(&types.VerificationStatusResponse{
		Identity:        models.VerificationApproved,
		Muscle:          models.VerificationNotSubmitted,
		Gender:          models.GenderFemale,
		PermissionLevel: 3,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/verification", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.VerificationStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.VerificationApproved, resp.Identity)
	assert.Equal(t, 3, resp.PermissionLevel)
}

func TestStatusHandlerUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/v1")
	NewVerificationHandler(new(mocks.MockVerificationService)).RegisterRoutes(group, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/verification", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
