package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/models"
)

const complaintsCollection = "complaints"

type ComplaintRepository struct {
	db *mongo.Database
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	collection := r.db.Collection(complaintsCollection)

	now := time.Now()
	complaint.CreatedAt = now
	complaint.UpdatedAt = now

	result, err := collection.InsertOne(ctx, complaint)
	if err != nil {
		return err
	}

	complaint.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ComplaintRepository) GetAll(ctx context.Context) ([]models.Complaint, error) {
	collection := r.db.Collection(complaintsCollection)

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var complaints []models.Complaint
	if err = cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}

	if complaints == nil {
		complaints = []models.Complaint{}
	}

	return complaints, nil
}

// FindFirstByDate returns the first complaint whose submission date matches
// exactly. Dates are not unique; when several complaints share a date the
// store picks whichever matches first.
func (r *ComplaintRepository) FindFirstByDate(ctx context.Context, date string) (*models.Complaint, error) {
	collection := r.db.Collection(complaintsCollection)

	var complaint models.Complaint
	err := collection.FindOne(ctx, bson.M{"date": date}).Decode(&complaint)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ComplaintStatus, updatedAt time.Time) error {
	collection := r.db.Collection(complaintsCollection)

	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": updatedAt,
	}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}

	return nil
}
