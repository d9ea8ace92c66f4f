package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/models"
)

type fakeEventRepo struct {
	events []*models.Event
}

func (r *fakeEventRepo) Create(_ context.Context, event *models.Event) error {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	stored := *event
	r.events = append(r.events, &stored)
	return nil
}

func (r *fakeEventRepo) GetAll(_ context.Context) ([]models.Event, error) {
	all := make([]models.Event, 0, len(r.events))
	for _, e := range r.events {
		all = append(all, *e)
	}
	return all, nil
}

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	data, ok := c.entries[key]
	if !ok {
		return errors.New("cache miss")
	}
	return json.Unmarshal(data, dest)
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func validEvent() *models.Event {
	return &models.Event{
		Title:       "Clean Campus Drive",
		Description: "Campus-wide cleanliness drive",
		Date:        "2024-03-10",
		Venue:       "Main Ground",
	}
}

func TestEventCreate_RejectsMissingFields(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventService(repo, newFakeCache())

	event := validEvent()
	event.Title = ""

	err := svc.Create(context.Background(), event)
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("Create without title = %v, want ErrValidation", err)
	}
	if len(repo.events) != 0 {
		t.Errorf("stored %d events after failed create, want 0", len(repo.events))
	}
}

func TestEventCreate_InvalidatesCache(t *testing.T) {
	repo := &fakeEventRepo{}
	cache := newFakeCache()
	svc := NewEventService(repo, cache)
	ctx := context.Background()

	if err := cache.Set(ctx, eventsCacheKey, []models.Event{}, time.Minute); err != nil {
		t.Fatalf("seeding cache failed: %v", err)
	}

	if err := svc.Create(ctx, validEvent()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, ok := cache.entries[eventsCacheKey]; ok {
		t.Error("events cache not invalidated after create")
	}
}

func TestEventList_ServesFromCache(t *testing.T) {
	repo := &fakeEventRepo{}
	cache := newFakeCache()
	svc := NewEventService(repo, cache)
	ctx := context.Background()

	if err := svc.Create(ctx, validEvent()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	events, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("listed %d events, want 1", len(events))
	}

	// Bypass the service; a second List must come from the cache.
	repo.events = append(repo.events, validEvent())

	events, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("second List failed: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("second List returned %d events, want 1 from cache", len(events))
	}
}
