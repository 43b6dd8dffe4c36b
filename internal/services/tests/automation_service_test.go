package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sagheerabbass/talenttrack/internal/mocks"
	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/services"
	"github.com/sagheerabbass/talenttrack/internal/storage"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

func workflowPayload() *dto.RunWorkflowResponse {
	return &dto.RunWorkflowResponse{
		Candidate: &dto.WorkflowCandidate{
			Name:            "Grace Hopper",
			Email:           "grace@example.com",
			Phone:           "+1500000001",
			Skills:          []string{"go", "compilers"},
			Experience:      7,
			ResumeURL:       "https://cdn.example.com/resumes/grace.pdf",
			AppliedPosition: "Platform Engineer",
			Score:           91,
		},
	}
}

func TestAutomationService_RunWorkflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockAutomationClient(ctrl)
	mockCandidateRepo := mocks.NewMockCandidateRepository(ctrl)
	mockLogRepo := mocks.NewMockLogRepository(ctrl)
	automationService := services.NewAutomationService(mockClient, mockCandidateRepo, mockLogRepo, zap.NewNop())
	ctx := context.Background()

	createdID := primitive.NewObjectID()
	upstreamDown := errors.New("connection refused")

	tests := []struct {
		name          string
		mockSetup     func()
		expectedError error
		errorContains string
	}{
		{
			name: "Success - Source Defaults To AI Intern",
			mockSetup: func() {
				mockClient.EXPECT().RunWorkflow(gomock.Any()).Return(workflowPayload(), nil).Times(1)
				mockCandidateRepo.EXPECT().GetByEmail(gomock.Any(), "grace@example.com").Return(nil, storage.ErrNotFound).Times(1)
				mockCandidateRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *models.Candidate) (*models.Candidate, error) {
						assert.Equal(t, models.SourceAIIntern, c.Source)
						assert.Equal(t, models.StatusPending, c.Status)
						assert.Equal(t, 91.0, c.Score)
						created := *c
						created.ID = createdID
						return &created, nil
					}).Times(1)
				mockLogRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *models.Log) (*models.Log, error) {
						assert.Equal(t, "Candidate Grace Hopper processed via automation (position: Platform Engineer)", entry.Action)
						assert.Equal(t, createdID, entry.CandidateID)
						return entry, nil
					}).Times(1)
			},
		},
		{
			name: "Upstream Call Fails",
			mockSetup: func() {
				mockClient.EXPECT().RunWorkflow(gomock.Any()).Return(nil, upstreamDown).Times(1)
			},
			expectedError: services.ErrUpstream,
		},
		{
			name: "Payload Without Email Is An Upstream Failure",
			mockSetup: func() {
				resp := workflowPayload()
				resp.Candidate.Email = ""
				mockClient.EXPECT().RunWorkflow(gomock.Any()).Return(resp, nil).Times(1)
			},
			expectedError: services.ErrUpstream,
			errorContains: "no candidate data",
		},
		{
			name: "Empty Payload Is An Upstream Failure",
			mockSetup: func() {
				mockClient.EXPECT().RunWorkflow(gomock.Any()).Return(&dto.RunWorkflowResponse{}, nil).Times(1)
			},
			expectedError: services.ErrUpstream,
		},
		{
			name: "Duplicate Email Is A Conflict",
			mockSetup: func() {
				mockClient.EXPECT().RunWorkflow(gomock.Any()).Return(workflowPayload(), nil).Times(1)
				existing := &models.Candidate{ID: primitive.NewObjectID(), Email: "grace@example.com"}
				mockCandidateRepo.EXPECT().GetByEmail(gomock.Any(), "grace@example.com").Return(existing, nil).Times(1)
			},
			expectedError: services.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			candidate, err := automationService.RunWorkflow(ctx)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, candidate)
			} else {
				require.NoError(t, err)
				require.NotNil(t, candidate)
				assert.Equal(t, createdID, candidate.ID)
				assert.Equal(t, models.SourceAIIntern, candidate.Source)
			}
		})
	}
}

func TestAutomationService_SendInvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockAutomationClient(ctrl)
	mockCandidateRepo := mocks.NewMockCandidateRepository(ctrl)
	mockLogRepo := mocks.NewMockLogRepository(ctrl)
	automationService := services.NewAutomationService(mockClient, mockCandidateRepo, mockLogRepo, zap.NewNop())
	ctx := context.Background()

	candidateID := primitive.NewObjectID()
	stored := &models.Candidate{
		ID:              candidateID,
		Name:            "Grace Hopper",
		Email:           "grace@example.com",
		AppliedPosition: "Platform Engineer",
	}
	deliveryFailed := errors.New("whatsapp gateway timeout")

	t.Run("Success Appends Invite Log", func(t *testing.T) {
		mockCandidateRepo.EXPECT().GetByID(gomock.Any(), candidateID).Return(stored, nil).Times(1)
		mockClient.EXPECT().SendInvite(gomock.Any(), &dto.InviteRequest{
			Email:    "grace@example.com",
			Name:     "Grace Hopper",
			Position: "Platform Engineer",
		}).Return(&dto.InviteResponse{Status: "sent"}, nil).Times(1)
		mockLogRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *models.Log) (*models.Log, error) {
				assert.Equal(t, "WhatsApp invite sent to Grace Hopper", entry.Action)
				assert.Equal(t, candidateID, entry.CandidateID)
				return entry, nil
			}).Times(1)

		resp, err := automationService.SendInvite(ctx, candidateID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "sent", resp.Status)
	})

	t.Run("Unknown Candidate", func(t *testing.T) {
		missing := primitive.NewObjectID()
		mockCandidateRepo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, storage.ErrNotFound).Times(1)

		resp, err := automationService.SendInvite(ctx, missing.Hex())
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
		assert.Nil(t, resp)
	})

	t.Run("Upstream Failure Leaves No Log Entry", func(t *testing.T) {
		mockCandidateRepo.EXPECT().GetByID(gomock.Any(), candidateID).Return(stored, nil).Times(1)
		mockClient.EXPECT().SendInvite(gomock.Any(), gomock.Any()).Return(nil, deliveryFailed).Times(1)
		// No Append expectation: a failed delivery must not be audited.

		resp, err := automationService.SendInvite(ctx, candidateID.Hex())
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrUpstream))
		assert.Nil(t, resp)
	})

	t.Run("Malformed ID", func(t *testing.T) {
		resp, err := automationService.SendInvite(ctx, "bogus")
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Nil(t, resp)
	})
}
