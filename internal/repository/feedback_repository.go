package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/models"
)

const feedbackCollection = "feedbacks"

type FeedbackRepository struct {
	db *mongo.Database
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	collection := r.db.Collection(feedbackCollection)

	feedback.CreatedAt = time.Now()

	result, err := collection.InsertOne(ctx, feedback)
	if err != nil {
		return err
	}

	feedback.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *FeedbackRepository) GetAll(ctx context.Context) ([]models.Feedback, error) {
	collection := r.db.Collection(feedbackCollection)

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err = cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}

	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}

	return feedbacks, nil
}
