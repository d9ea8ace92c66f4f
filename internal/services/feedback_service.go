package services

import (
	"context"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/models"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetAll(ctx context.Context) ([]models.Feedback, error)
}

type FeedbackService struct {
	repo FeedbackRepository
}

func NewFeedbackService(repo FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

func (s *FeedbackService) Create(ctx context.Context, feedback *models.Feedback) error {
	if err := feedback.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, feedback)
}

func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return s.repo.GetAll(ctx)
}
