package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/storage"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

// CandidateRepo implements storage.CandidateRepository on a MongoDB
// collection. The unique index on email is the authoritative arbiter for
// duplicate submissions; service-level pre-checks are an optimization only.
type CandidateRepo struct {
	col *mongo.Collection
}

// NewCandidateRepo wraps the candidates collection and ensures its indexes.
func NewCandidateRepo(db *mongo.Database) (*CandidateRepo, error) {
	col := db.Collection("candidates")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		return nil, err
	}

	return &CandidateRepo{col: col}, nil
}

var _ storage.CandidateRepository = (*CandidateRepo)(nil)

func (r *CandidateRepo) Create(ctx context.Context, candidate *models.Candidate) (*models.Candidate, error) {
	now := time.Now().UTC()
	candidate.ID = primitive.NewObjectID()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, candidate); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, storage.ErrDuplicateEmail
		}
		return nil, err
	}
	return candidate, nil
}

func (r *CandidateRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&candidate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepo) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&candidate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

// List returns one window of candidates, newest first, and the total count
// matching the filter regardless of the window.
func (r *CandidateRepo) List(ctx context.Context, filter *dto.CandidateFilter, page, limit int) ([]models.Candidate, int64, error) {
	query := BuildCandidateQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(Offset(page, limit)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	candidates := make([]models.Candidate, 0, limit)
	if err := cur.All(ctx, &candidates); err != nil {
		return nil, 0, err
	}
	return candidates, total, nil
}

// GetByIDs fetches the given candidates in one round trip, keyed by ID.
// Missing IDs are simply absent from the result.
func (r *CandidateRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Candidate, error) {
	result := make(map[primitive.ObjectID]models.Candidate, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var candidates []models.Candidate
	if err := cur.All(ctx, &candidates); err != nil {
		return nil, err
	}
	for _, c := range candidates {
		result[c.ID] = c
	}
	return result, nil
}

func (r *CandidateRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.CandidateStatus) (*models.Candidate, error) {
	return r.UpdateFields(ctx, id, map[string]any{"status": status})
}

// UpdateFields applies a $set patch and returns the updated document.
// updated_at is always refreshed.
func (r *CandidateRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, set map[string]any) (*models.Candidate, error) {
	patch := bson.M{}
	for k, v := range set {
		patch[k] = v
	}
	patch["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Candidate
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": patch}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *CandidateRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *CandidateRepo) CountByStatus(ctx context.Context, status models.CandidateStatus) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"status": status})
}

// TopPositions groups candidates by applied position and returns the most
// common ones, descending by count.
func (r *CandidateRepo) TopPositions(ctx context.Context, limit int) ([]dto.PositionCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$applied_position"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	positions := make([]dto.PositionCount, 0, limit)
	if err := cur.All(ctx, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

func (r *CandidateRepo) Recent(ctx context.Context, limit int) ([]models.Candidate, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	candidates := make([]models.Candidate, 0, limit)
	if err := cur.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}
