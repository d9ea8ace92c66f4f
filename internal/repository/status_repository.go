package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/models"
)

const statusRecordsCollection = "status_records"

// StatusRepository is the append-only log of status assignments. Records
// are never updated or deleted.
type StatusRepository struct {
	db *mongo.Database
}

func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) Append(ctx context.Context, record *models.StatusRecord) error {
	collection := r.db.Collection(statusRecordsCollection)

	result, err := collection.InsertOne(ctx, record)
	if err != nil {
		return err
	}

	record.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *StatusRepository) GetAll(ctx context.Context) ([]models.StatusRecord, error) {
	collection := r.db.Collection(statusRecordsCollection)

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.StatusRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.StatusRecord{}
	}

	return records, nil
}
