package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sagheerabbass/talenttrack/internal/api/handlers"
	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/services"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

func setupCandidateRouter() (*gin.Engine, *MockCandidateService, *MockAutomationService) {
	mockCandidates := new(MockCandidateService)
	mockAutomation := new(MockAutomationService)
	handler := handlers.NewCandidateHandler(mockCandidates, mockAutomation, testValidator(), testLogger())

	router := gin.New()
	group := router.Group("/api/v1")
	group.POST("/candidates", handler.CreateCandidate)
	group.GET("/candidates", handler.GetCandidates)
	group.GET("/candidates/stats/overview", handler.GetCandidateStats)
	group.POST("/candidates/workflow", handler.RunWorkflow)
	group.GET("/candidates/:id", handler.GetCandidateByID)
	group.PUT("/candidates/:id", handler.UpdateCandidate)
	group.PATCH("/candidates/:id/status", handler.UpdateCandidateStatus)
	group.POST("/candidates/:id/invite", handler.SendInvite)
	return router, mockCandidates, mockAutomation
}

func validCreateBody() map[string]any {
	return map[string]any{
		"name":            "Ada Lovelace",
		"email":           "ada@example.com",
		"phone":           "+4470000001",
		"skills":          []string{"go", "mongodb"},
		"experience":      4.0,
		"resumeUrl":       "https://cdn.example.com/resumes/ada.pdf",
		"appliedPosition": "Backend Engineer",
	}
}

func TestCandidateHandler_CreateCandidate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockCandidates, _ := setupCandidateRouter()
		created := &models.Candidate{ID: primitive.NewObjectID(), Name: "Ada Lovelace", Status: models.StatusPending}
		mockCandidates.On("Create", mock.Anything, mock.Anything).Return(created, nil).Once()

		recorder := performJSON(t, router, http.MethodPost, "/api/v1/candidates", validCreateBody())

		assert.Equal(t, http.StatusCreated, recorder.Code)
		envelope := decodeEnvelope(t, recorder)
		assert.True(t, envelope.Success)
		assert.Equal(t, "Candidate created successfully", envelope.Message)
		mockCandidates.AssertExpectations(t)
	})

	t.Run("Missing Required Fields", func(t *testing.T) {
		router, mockCandidates, _ := setupCandidateRouter()

		body := validCreateBody()
		delete(body, "email")
		delete(body, "resumeUrl")
		recorder := performJSON(t, router, http.MethodPost, "/api/v1/candidates", body)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		envelope := decodeEnvelope(t, recorder)
		assert.False(t, envelope.Success)
		assert.Contains(t, recorder.Body.String(), "Validation failed")
		mockCandidates.AssertNotCalled(t, "Create")
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		router, mockCandidates, _ := setupCandidateRouter()
		mockCandidates.On("Create", mock.Anything, mock.Anything).Return(nil, services.ErrConflict).Once()

		recorder := performJSON(t, router, http.MethodPost, "/api/v1/candidates", validCreateBody())

		assert.Equal(t, http.StatusConflict, recorder.Code)
		envelope := decodeEnvelope(t, recorder)
		assert.False(t, envelope.Success)
		mockCandidates.AssertExpectations(t)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		router, _, _ := setupCandidateRouter()

		recorder := performJSON(t, router, http.MethodPost, "/api/v1/candidates", "not-an-object")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCandidateHandler_GetCandidates(t *testing.T) {
	t.Run("Filters And Pagination Pass Through", func(t *testing.T) {
		router, mockCandidates, _ := setupCandidateRouter()

		items := []models.Candidate{{ID: primitive.NewObjectID(), Name: "Ada Lovelace"}}
		pagination := dto.Pagination{Page: 2, Limit: 5, Total: 11, Pages: 3}
		mockCandidates.On("List", mock.Anything, mock.MatchedBy(func(f *dto.CandidateFilter) bool {
			return f.Status == "shortlisted" && f.Search == "ada" && f.MinScore != nil && *f.MinScore == 50
		}), 2, 5).Return(items, pagination, nil).Once()

		recorder := performJSON(t, router, http.MethodGet, "/api/v1/candidates?page=2&limit=5&status=shortlisted&search=ada&minScore=50", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response struct {
			Success bool `json:"success"`
			Data    struct {
				Items      []models.Candidate `json:"items"`
				Pagination dto.Pagination     `json:"pagination"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Len(t, response.Data.Items, 1)
		assert.Equal(t, pagination, response.Data.Pagination)
		mockCandidates.AssertExpectations(t)
	})

	t.Run("Service Failure Is A 500", func(t *testing.T) {
		router, mockCandidates, _ := setupCandidateRouter()
		mockCandidates.On("List", mock.Anything, mock.Anything, 1, 10).
			Return(nil, dto.Pagination{}, assert.AnError).Once()

		recorder := performJSON(t, router, http.MethodGet, "/api/v1/candidates", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Failed to retrieve candidates")
	})
}

func TestCandidateHandler_GetCandidateByID(t *testing.T) {
	router, mockCandidates, _ := setupCandidateRouter()
	id := primitive.NewObjectID()

	t.Run("Success", func(t *testing.T) {
		mockCandidates.On("GetByID", mock.Anything, id.Hex()).
			Return(&models.Candidate{ID: id, Name: "Ada Lovelace"}, nil).Once()

		recorder := performJSON(t, router, http.MethodGet, "/api/v1/candidates/"+id.Hex(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Ada Lovelace")
	})

	t.Run("Not Found", func(t *testing.T) {
		mockCandidates.On("GetByID", mock.Anything, id.Hex()).
			Return(nil, services.ErrNotFound).Once()

		recorder := performJSON(t, router, http.MethodGet, "/api/v1/candidates/"+id.Hex(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Malformed ID", func(t *testing.T) {
		mockCandidates.On("GetByID", mock.Anything, "zzz").
			Return(nil, services.ErrValidation).Once()

		recorder := performJSON(t, router, http.MethodGet, "/api/v1/candidates/zzz", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCandidateHandler_UpdateCandidateStatus(t *testing.T) {
	router, mockCandidates, _ := setupCandidateRouter()
	id := primitive.NewObjectID()

	t.Run("Success", func(t *testing.T) {
		updated := &models.Candidate{ID: id, Name: "Ada Lovelace", Status: models.StatusHired}
		mockCandidates.On("UpdateStatus", mock.Anything, id.Hex(), "hired").Return(updated, nil).Once()

		recorder := performJSON(t, router, http.MethodPatch, "/api/v1/candidates/"+id.Hex()+"/status", map[string]string{"status": "hired"})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "hired")
	})

	t.Run("Missing Status", func(t *testing.T) {
		recorder := performJSON(t, router, http.MethodPatch, "/api/v1/candidates/"+id.Hex()+"/status", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCandidates.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Invalid Stage", func(t *testing.T) {
		mockCandidates.On("UpdateStatus", mock.Anything, id.Hex(), "archived").
			Return(nil, services.ErrValidation).Once()

		recorder := performJSON(t, router, http.MethodPatch, "/api/v1/candidates/"+id.Hex()+"/status", map[string]string{"status": "archived"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCandidateHandler_Workflow(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, _, mockAutomation := setupCandidateRouter()
		created := &models.Candidate{ID: primitive.NewObjectID(), Name: "Grace Hopper", Source: models.SourceAIIntern}
		mockAutomation.On("RunWorkflow", mock.Anything).Return(created, nil).Once()

		recorder := performJSON(t, router, http.MethodPost, "/api/v1/candidates/workflow", nil)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		envelope := decodeEnvelope(t, recorder)
		assert.True(t, envelope.Success)
		assert.Equal(t, "Candidate processed via automation", envelope.Message)
	})

	t.Run("Upstream Failure Is A 502", func(t *testing.T) {
		router, _, mockAutomation := setupCandidateRouter()
		mockAutomation.On("RunWorkflow", mock.Anything).Return(nil, services.ErrUpstream).Once()

		recorder := performJSON(t, router, http.MethodPost, "/api/v1/candidates/workflow", nil)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		envelope := decodeEnvelope(t, recorder)
		assert.False(t, envelope.Success)
	})
}

func TestCandidateHandler_SendInvite(t *testing.T) {
	router, _, mockAutomation := setupCandidateRouter()
	id := primitive.NewObjectID()

	t.Run("Success", func(t *testing.T) {
		mockAutomation.On("SendInvite", mock.Anything, id.Hex()).
			Return(&dto.InviteResponse{Status: "sent"}, nil).Once()

		recorder := performJSON(t, router, http.MethodPost, "/api/v1/candidates/"+id.Hex()+"/invite", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "sent")
	})

	t.Run("Unknown Candidate", func(t *testing.T) {
		mockAutomation.On("SendInvite", mock.Anything, id.Hex()).
			Return(nil, services.ErrNotFound).Once()

		recorder := performJSON(t, router, http.MethodPost, "/api/v1/candidates/"+id.Hex()+"/invite", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Delivery Failure", func(t *testing.T) {
		mockAutomation.On("SendInvite", mock.Anything, id.Hex()).
			Return(nil, services.ErrUpstream).Once()

		recorder := performJSON(t, router, http.MethodPost, "/api/v1/candidates/"+id.Hex()+"/invite", nil)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
	})
}

func TestCandidateHandler_GetCandidateStats(t *testing.T) {
	router, mockCandidates, _ := setupCandidateRouter()

	stats := &dto.CandidateStats{Total: 11, Pending: 4, Shortlisted: 3, Rejected: 2, Interviewed: 1, Hired: 1}
	mockCandidates.On("Stats", mock.Anything).Return(stats, nil).Once()

	recorder := performJSON(t, router, http.MethodGet, "/api/v1/candidates/stats/overview", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var response struct {
		Success bool               `json:"success"`
		Data    dto.CandidateStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, int64(11), response.Data.Total)
	assert.Equal(t, int64(4), response.Data.Pending)
}
