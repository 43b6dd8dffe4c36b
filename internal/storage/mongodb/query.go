package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

// containsCI builds a case-insensitive substring match. The needle is
// quoted so user input cannot inject regex syntax.
func containsCI(needle string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(needle), Options: "i"}
}

// rangeQuery combines optional inclusive bounds into a $gte/$lte document.
func rangeQuery(min, max *float64) bson.M {
	bounds := bson.M{}
	if min != nil {
		bounds["$gte"] = *min
	}
	if max != nil {
		bounds["$lte"] = *max
	}
	return bounds
}

// BuildCandidateQuery translates the request-supplied filter into a Mongo
// query document. Enum filters are permissive on read: an unrecognized
// status or source matches nothing special and is simply ignored.
func BuildCandidateQuery(filter *dto.CandidateFilter) bson.M {
	query := bson.M{}
	if filter == nil {
		return query
	}

	if s := models.CandidateStatus(filter.Status); filter.Status != "" && s.Valid() {
		query["status"] = s
	}
	if s := models.CandidateSource(filter.Source); filter.Source != "" && s.Valid() {
		query["source"] = s
	}
	if filter.Position != "" {
		query["applied_position"] = containsCI(filter.Position)
	}
	if bounds := rangeQuery(filter.MinExperience, filter.MaxExperience); len(bounds) > 0 {
		query["experience"] = bounds
	}
	if bounds := rangeQuery(filter.MinScore, filter.MaxScore); len(bounds) > 0 {
		query["score"] = bounds
	}
	if filter.Search != "" {
		re := containsCI(filter.Search)
		query["$or"] = []bson.M{
			{"name": re},
			{"email": re},
			{"applied_position": re},
		}
	}
	return query
}

// BuildLogQuery translates the audit-log filter into a Mongo query
// document. Timestamp bounds are inclusive.
func BuildLogQuery(filter *dto.LogFilter) bson.M {
	query := bson.M{}
	if filter == nil {
		return query
	}

	if filter.Action != "" {
		query["action"] = containsCI(filter.Action)
	}
	if filter.CandidateID != "" {
		if id, err := primitive.ObjectIDFromHex(filter.CandidateID); err == nil {
			query["candidate_id"] = id
		}
	}
	bounds := bson.M{}
	if filter.Start != nil {
		bounds["$gte"] = *filter.Start
	}
	if filter.End != nil {
		bounds["$lte"] = *filter.End
	}
	if len(bounds) > 0 {
		query["timestamp"] = bounds
	}
	return query
}

// Offset converts a 1-indexed page and limit into a skip count, never
// negative.
func Offset(page, limit int) int64 {
	if page < 1 {
		page = 1
	}
	if limit < 0 {
		limit = 0
	}
	return int64(page-1) * int64(limit)
}
