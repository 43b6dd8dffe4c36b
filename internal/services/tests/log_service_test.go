package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

func newLogService(t *testing.T) (services.LogService, *mocks.MockLogRepository, *mocks.MockCandidateRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLogRepo := mocks.NewMockLogRepository(ctrl)
	mockCandidateRepo := mocks.NewMockCandidateRepository(ctrl)
	logService := services.NewLogService(mockLogRepo, mockCandidateRepo, zap.NewNop())
	return logService, mockLogRepo, mockCandidateRepo
}

func TestLogService_Append(t *testing.T) {
	ctx := context.Background()
	candidateID := primitive.NewObjectID()

	t.Run("Success", func(t *testing.T) {
		logService, mockLogRepo, mockCandidateRepo := newLogService(t)
		stored := &models.Candidate{ID: candidateID, Name: "Ada Lovelace"}
		mockCandidateRepo.EXPECT().GetByID(gomock.Any(), candidateID).Return(stored, nil).Times(1)
		mockLogRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *models.Log) (*models.Log, error) {
				assert.Equal(t, "Interview rescheduled", entry.Action)
				assert.Equal(t, candidateID, entry.CandidateID)
				saved := *entry
				saved.ID = primitive.NewObjectID()
				saved.Timestamp = time.Now()
				return &saved, nil
			}).Times(1)

		entry, err := logService.Append(ctx, "Interview rescheduled", candidateID.Hex())
		require.NoError(t, err)
		assert.False(t, entry.ID.IsZero())
	})

	t.Run("Empty Action", func(t *testing.T) {
		logService, _, _ := newLogService(t)
		entry, err := logService.Append(ctx, "", candidateID.Hex())
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Nil(t, entry)
	})

	t.Run("Malformed Candidate ID", func(t *testing.T) {
		logService, _, _ := newLogService(t)
		entry, err := logService.Append(ctx, "Interview rescheduled", "nope")
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Nil(t, entry)
	})

	t.Run("Dangling Candidate Reference Is Rejected", func(t *testing.T) {
		logService, _, mockCandidateRepo := newLogService(t)
		missing := primitive.NewObjectID()
		mockCandidateRepo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, storage.ErrNotFound).Times(1)

		entry, err := logService.Append(ctx, "Interview rescheduled", missing.Hex())
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Contains(t, err.Error(), "does not exist")
		assert.Nil(t, entry)
	})
}

func TestLogService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Entries Join Their Candidates Best Effort", func(t *testing.T) {
		logService, mockLogRepo, mockCandidateRepo := newLogService(t)

		knownID := primitive.NewObjectID()
		vanishedID := primitive.NewObjectID()
		entries := []models.Log{
			{ID: primitive.NewObjectID(), Action: "Status updated from pending to hired for Ada Lovelace", CandidateID: knownID, Timestamp: time.Now()},
			{ID: primitive.NewObjectID(), Action: "WhatsApp invite sent to Ghost", CandidateID: vanishedID, Timestamp: time.Now().Add(-time.Hour)},
			{ID: primitive.NewObjectID(), Action: "Candidate Ada Lovelace details updated", CandidateID: knownID, Timestamp: time.Now().Add(-2 * time.Hour)},
		}

		filter := &dto.LogFilter{}
		mockLogRepo.EXPECT().List(gomock.Any(), filter, 1, 10).Return(entries, int64(3), nil).Times(1)
		// Duplicate candidate IDs are deduplicated before the batch fetch
		mockCandidateRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Len(2)).Return(map[primitive.ObjectID]models.Candidate{
			knownID: {ID: knownID, Name: "Ada Lovelace", Email: "ada@example.com", AppliedPosition: "Backend Engineer"},
		}, nil).Times(1)

		responses, pagination, err := logService.List(ctx, filter, 1, 10)
		require.NoError(t, err)
		require.Len(t, responses, 3)
		assert.Equal(t, int64(3), pagination.Total)

		require.NotNil(t, responses[0].Candidate)
		assert.Equal(t, "Ada Lovelace", responses[0].Candidate.Name)
		// The vanished candidate leaves a nil projection, not an error
		assert.Nil(t, responses[1].Candidate)
		require.NotNil(t, responses[2].Candidate)
	})

	t.Run("Repo Failure Propagates", func(t *testing.T) {
		logService, mockLogRepo, _ := newLogService(t)
		dbDown := errors.New("cursor timeout")
		mockLogRepo.EXPECT().List(gomock.Any(), gomock.Any(), 1, 10).Return(nil, int64(0), dbDown).Times(1)

		responses, _, err := logService.List(ctx, &dto.LogFilter{}, 1, 10)
		require.Error(t, err)
		assert.True(t, errors.Is(err, dbDown))
		assert.Nil(t, responses)
	})
}
