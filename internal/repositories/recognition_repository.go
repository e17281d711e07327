package repositories

import (
	"context"
	"time"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecognitionRepository defines the interface for recognition history storage.
// Model replies are schemaless, so history lives in MongoDB.
type RecognitionRepository interface {
	Insert(ctx context.Context, record *models.RecognitionRecord) error
	GetByUserID(ctx context.Context, userID uint, limit int64) ([]models.RecognitionRecord, error)
}

// MongoRecognitionRepository implements RecognitionRepository for MongoDB
type MongoRecognitionRepository struct {
	collection *mongo.Collection
}

// NewMongoRecognitionRepository creates a new MongoRecognitionRepository
func NewMongoRecognitionRepository(db *mongo.Database) *MongoRecognitionRepository {
	return &MongoRecognitionRepository{collection: db.Collection("recognitions")}
}

// Insert stores a recognition record in MongoDB
func (r *MongoRecognitionRepository) Insert(ctx context.Context, record *models.RecognitionRecord) error {
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// GetByUserID retrieves a user's recognition history, newest first
func (r *MongoRecognitionRepository) GetByUserID(ctx context.Context, userID uint, limit int64) ([]models.RecognitionRecord, error) {
	findOptions := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]models.RecognitionRecord, 0)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
