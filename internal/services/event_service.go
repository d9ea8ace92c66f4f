package services

import (
	"context"
	"log"
	"time"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/models"
)

const (
	eventsCacheKey = "events:all"
	eventsCacheTTL = 5 * time.Minute
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetAll(ctx context.Context) ([]models.Event, error)
}

// Cache is the subset of the Redis wrapper the services need.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type EventService struct {
	repo  EventRepository
	cache Cache
}

func NewEventService(repo EventRepository, cache Cache) *EventService {
	return &EventService{repo: repo, cache: cache}
}

func (s *EventService) Create(ctx context.Context, event *models.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, eventsCacheKey); err != nil {
		log.Printf("Failed to invalidate events cache: %v", err)
	}
	return nil
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	var cached []models.Event
	if err := s.cache.Get(ctx, eventsCacheKey, &cached); err == nil {
		return cached, nil
	}

	events, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, eventsCacheKey, events, eventsCacheTTL); err != nil {
		log.Printf("Failed to cache events: %v", err)
	}
	return events, nil
}
