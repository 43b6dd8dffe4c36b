package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/services"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

// MockCandidateService is a mock implementation of services.CandidateService
type MockCandidateService struct {
	mock.Mock
}

func (m *MockCandidateService) Create(ctx context.Context, req *dto.CreateCandidateRequest) (*models.Candidate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateService) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateService) List(ctx context.Context, filter *dto.CandidateFilter, page, limit int) ([]models.Candidate, dto.Pagination, error) {
	args := m.Called(ctx, filter, page, limit)
	var candidates []models.Candidate
	if args.Get(0) != nil {
		candidates = args.Get(0).([]models.Candidate)
	}
	return candidates, args.Get(1).(dto.Pagination), args.Error(2)
}

func (m *MockCandidateService) UpdateStatus(ctx context.Context, id, status string) (*models.Candidate, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateService) Update(ctx context.Context, id string, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateService) Stats(ctx context.Context) (*dto.CandidateStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CandidateStats), args.Error(1)
}

var _ services.CandidateService = (*MockCandidateService)(nil)

// MockAutomationService is a mock implementation of services.AutomationService
type MockAutomationService struct {
	mock.Mock
}

func (m *MockAutomationService) RunWorkflow(ctx context.Context) (*models.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockAutomationService) SendInvite(ctx context.Context, candidateID string) (*dto.InviteResponse, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.InviteResponse), args.Error(1)
}

var _ services.AutomationService = (*MockAutomationService)(nil)

// MockLogService is a mock implementation of services.LogService
type MockLogService struct {
	mock.Mock
}

func (m *MockLogService) Append(ctx context.Context, action, candidateID string) (*models.Log, error) {
	args := m.Called(ctx, action, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Log), args.Error(1)
}

func (m *MockLogService) List(ctx context.Context, filter *dto.LogFilter, page, limit int) ([]dto.LogResponse, dto.Pagination, error) {
	args := m.Called(ctx, filter, page, limit)
	var responses []dto.LogResponse
	if args.Get(0) != nil {
		responses = args.Get(0).([]dto.LogResponse)
	}
	return responses, args.Get(1).(dto.Pagination), args.Error(2)
}

var _ services.LogService = (*MockLogService)(nil)

func testValidator() *validator.Validate {
	return validator.New()
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) dto.Envelope {
	t.Helper()

	var envelope dto.Envelope
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response envelope: %v", err)
	}
	return envelope
}
