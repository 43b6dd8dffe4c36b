package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sagheerabbass/talenttrack/internal/models"
	"github.com/sagheerabbass/talenttrack/internal/storage"
	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

// LogRepo implements storage.LogRepository. The collection is append-only;
// no code path updates or deletes entries.
type LogRepo struct {
	col *mongo.Collection
}

// NewLogRepo wraps the logs collection and ensures its indexes.
func NewLogRepo(db *mongo.Database) (*LogRepo, error) {
	col := db.Collection("logs")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "candidate_id", Value: 1}}},
	})
	if err != nil {
		return nil, err
	}

	return &LogRepo{col: col}, nil
}

var _ storage.LogRepository = (*LogRepo)(nil)

func (r *LogRepo) Append(ctx context.Context, entry *models.Log) (*models.Log, error) {
	entry.ID = primitive.NewObjectID()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns one window of entries, newest first, plus the total count
// matching the filter.
func (r *LogRepo) List(ctx context.Context, filter *dto.LogFilter, page, limit int) ([]models.Log, int64, error) {
	query := BuildLogQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(Offset(page, limit)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	entries := make([]models.Log, 0, limit)
	if err := cur.All(ctx, &entries); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
