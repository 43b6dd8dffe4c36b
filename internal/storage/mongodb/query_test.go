package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestBuildCandidateQuery(t *testing.T) {
	t.Run("Nil Filter Matches Everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, BuildCandidateQuery(nil))
	})

	t.Run("Empty Filter Matches Everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, BuildCandidateQuery(&dto.CandidateFilter{}))
	})

	t.Run("Valid Status And Source", func(t *testing.T) {
		query := BuildCandidateQuery(&dto.CandidateFilter{Status: "shortlisted", Source: "referral"})

		assert.Equal(t, models.StatusShortlisted, query["status"])
		assert.Equal(t, models.SourceReferral, query["source"])
	})

	t.Run("Unknown Enum Values Are Ignored", func(t *testing.T) {
		query := BuildCandidateQuery(&dto.CandidateFilter{Status: "archived", Source: "craigslist"})

		assert.NotContains(t, query, "status")
		assert.NotContains(t, query, "source")
	})

	t.Run("Position Is Case Insensitive And Quoted", func(t *testing.T) {
		query := BuildCandidateQuery(&dto.CandidateFilter{Position: "C++ (Senior)"})

		re, ok := query["applied_position"].(primitive.Regex)
		require.True(t, ok)
		assert.Equal(t, "i", re.Options)
		// regex metacharacters from user input must arrive escaped
		assert.Contains(t, re.Pattern, `C\+\+`)
	})

	t.Run("Experience And Score Ranges", func(t *testing.T) {
		query := BuildCandidateQuery(&dto.CandidateFilter{
			MinExperience: float64Ptr(2),
			MaxExperience: float64Ptr(8),
			MinScore:      float64Ptr(60),
		})

		assert.Equal(t, bson.M{"$gte": 2.0, "$lte": 8.0}, query["experience"])
		assert.Equal(t, bson.M{"$gte": 60.0}, query["score"])
	})

	t.Run("Search Spans Name Email And Position", func(t *testing.T) {
		query := BuildCandidateQuery(&dto.CandidateFilter{Search: "ada"})

		clauses, ok := query["$or"].([]bson.M)
		require.True(t, ok)
		require.Len(t, clauses, 3)

		fields := make([]string, 0, len(clauses))
		for _, clause := range clauses {
			for field := range clause {
				fields = append(fields, field)
			}
		}
		assert.ElementsMatch(t, []string{"name", "email", "applied_position"}, fields)
	})
}

func TestBuildLogQuery(t *testing.T) {
	t.Run("Nil Filter Matches Everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, BuildLogQuery(nil))
	})

	t.Run("Action Substring Match", func(t *testing.T) {
		query := BuildLogQuery(&dto.LogFilter{Action: "Status updated"})

		re, ok := query["action"].(primitive.Regex)
		require.True(t, ok)
		assert.Equal(t, "i", re.Options)
	})

	t.Run("Candidate ID Round Trips", func(t *testing.T) {
		id := primitive.NewObjectID()
		query := BuildLogQuery(&dto.LogFilter{CandidateID: id.Hex()})

		assert.Equal(t, id, query["candidate_id"])
	})

	t.Run("Malformed Candidate ID Is Ignored", func(t *testing.T) {
		query := BuildLogQuery(&dto.LogFilter{CandidateID: "not-hex"})

		assert.NotContains(t, query, "candidate_id")
	})

	t.Run("Inclusive Time Bounds", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		query := BuildLogQuery(&dto.LogFilter{Start: &start, End: &end})

		assert.Equal(t, bson.M{"$gte": start, "$lte": end}, query["timestamp"])
	})

	t.Run("Start Only", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		query := BuildLogQuery(&dto.LogFilter{Start: &start})

		assert.Equal(t, bson.M{"$gte": start}, query["timestamp"])
	})
}

func TestOffset(t *testing.T) {
	assert.Equal(t, int64(0), Offset(1, 10))
	assert.Equal(t, int64(40), Offset(5, 10))
	assert.Equal(t, int64(0), Offset(0, 10), "page below 1 clamps to the first page")
	assert.Equal(t, int64(0), Offset(-3, 10))
	assert.Equal(t, int64(0), Offset(2, -5), "negative limit clamps to zero")
}
