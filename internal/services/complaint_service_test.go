package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/models"
)

type fakeComplaintRepo struct {
	complaints []*models.Complaint
}

func (r *fakeComplaintRepo) Create(_ context.Context, complaint *models.Complaint) error {
	complaint.ID = primitive.NewObjectID()
	now := time.Now()
	complaint.CreatedAt = now
	complaint.UpdatedAt = now

	stored := *complaint
	r.complaints = append(r.complaints, &stored)
	return nil
}

func (r *fakeComplaintRepo) GetAll(_ context.Context) ([]models.Complaint, error) {
	all := make([]models.Complaint, 0, len(r.complaints))
	for _, c := range r.complaints {
		all = append(all, *c)
	}
	return all, nil
}

func (r *fakeComplaintRepo) FindFirstByDate(_ context.Context, date string) (*models.Complaint, error) {
	for _, c := range r.complaints {
		if c.Date == date {
			found := *c
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeComplaintRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.ComplaintStatus, updatedAt time.Time) error {
	for _, c := range r.complaints {
		if c.ID == id {
			c.Status = status
			c.UpdatedAt = updatedAt
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeStatusRepo struct {
	records []*models.StatusRecord
}

func (r *fakeStatusRepo) Append(_ context.Context, record *models.StatusRecord) error {
	record.ID = primitive.NewObjectID()
	stored := *record
	r.records = append(r.records, &stored)
	return nil
}

func (r *fakeStatusRepo) GetAll(_ context.Context) ([]models.StatusRecord, error) {
	all := make([]models.StatusRecord, 0, len(r.records))
	for _, rec := range r.records {
		all = append(all, *rec)
	}
	return all, nil
}

func newComplaintServiceForTest() (*ComplaintService, *fakeComplaintRepo, *fakeStatusRepo) {
	complaints := &fakeComplaintRepo{}
	history := &fakeStatusRepo{}
	return NewComplaintService(complaints, history), complaints, history
}

func TestSubmit_NullsRoomNoForMess(t *testing.T) {
	svc, complaints, _ := newComplaintServiceForTest()

	err := svc.Submit(context.Background(), &models.Complaint{
		Username: "alice",
		Text:     "food quality",
		Date:     "2024-03-01",
		Location: "mess",
		RoomNo:   "101",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if got := complaints.complaints[0].RoomNo; got != "" {
		t.Errorf("RoomNo for mess complaint = %q, want empty", got)
	}
}

func TestSubmit_KeepsRoomNoForHostel(t *testing.T) {
	svc, complaints, _ := newComplaintServiceForTest()

	err := svc.Submit(context.Background(), &models.Complaint{
		Username: "alice",
		Text:     "broken fan",
		Date:     "2024-03-01",
		Location: "hostel",
		RoomNo:   "101",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if got := complaints.complaints[0].RoomNo; got != "101" {
		t.Errorf("RoomNo for hostel complaint = %q, want 101", got)
	}
}

func TestSubmit_CreatesComplaintAndInitialRecord(t *testing.T) {
	svc, complaints, history := newComplaintServiceForTest()

	err := svc.Submit(context.Background(), &models.Complaint{
		Username: "alice",
		Text:     "broken fan",
		Date:     "2024-03-01",
		Location: "hostel",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if len(complaints.complaints) != 1 {
		t.Fatalf("stored %d complaints, want 1", len(complaints.complaints))
	}
	if len(history.records) != 1 {
		t.Fatalf("stored %d status records, want 1", len(history.records))
	}

	complaint := complaints.complaints[0]
	record := history.records[0]
	if complaint.Status != models.StatusYetToBegin {
		t.Errorf("complaint status = %q, want %q", complaint.Status, models.StatusYetToBegin)
	}
	if record.Status != models.StatusYetToBegin {
		t.Errorf("record status = %q, want %q", record.Status, models.StatusYetToBegin)
	}
	if record.ComplaintID != complaint.ID {
		t.Errorf("record complaint id = %v, want %v", record.ComplaintID, complaint.ID)
	}
}

func TestList_RendersImageAsDataURI(t *testing.T) {
	svc, _, _ := newComplaintServiceForTest()
	ctx := context.Background()

	withImage := &models.Complaint{
		Username: "alice",
		Text:     "overflowing bin",
		Date:     "2024-03-01",
		Location: "garden",
		Image: &models.ComplaintImage{
			Data:        []byte("fake image bytes"),
			ContentType: "image/png",
		},
	}
	withoutImage := &models.Complaint{
		Username: "bob",
		Text:     "broken fan",
		Date:     "2024-03-02",
		Location: "hostel",
	}
	if err := svc.Submit(ctx, withImage); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := svc.Submit(ctx, withoutImage); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	views, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("listed %d complaints, want 2", len(views))
	}

	if views[0].Image == nil {
		t.Fatal("complaint with image listed with nil image")
	}
	if !strings.HasPrefix(*views[0].Image, "data:image/png;base64,") {
		t.Errorf("image = %q, want data:image/png;base64, prefix", *views[0].Image)
	}
	if views[1].Image != nil {
		t.Errorf("complaint without image listed with image %q", *views[1].Image)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _, history := newComplaintServiceForTest()

	err := svc.UpdateStatus(context.Background(), "2024-03-01", models.StatusInProgress)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("UpdateStatus with no matching date = %v, want ErrNotFound", err)
	}
	if len(history.records) != 0 {
		t.Errorf("stored %d status records after failed update, want 0", len(history.records))
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, history := newComplaintServiceForTest()
	ctx := context.Background()

	if err := svc.Submit(ctx, &models.Complaint{Date: "2024-03-01", Location: "hostel"}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	err := svc.UpdateStatus(ctx, "2024-03-01", "Done")
	if !errors.Is(err, models.ErrInvalidStatus) {
		t.Errorf("UpdateStatus with unknown status = %v, want ErrInvalidStatus", err)
	}
	if len(history.records) != 1 {
		t.Errorf("stored %d status records, want only the initial one", len(history.records))
	}
}

func TestUpdateStatus_AppendsRecordAndKeepsHistory(t *testing.T) {
	svc, complaints, history := newComplaintServiceForTest()
	ctx := context.Background()

	if err := svc.Submit(ctx, &models.Complaint{Text: "broken fan", Date: "2024-03-01", Location: "hostel"}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if err := svc.UpdateStatus(ctx, "2024-03-01", models.StatusInProgress); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	if got := complaints.complaints[0].Status; got != models.StatusInProgress {
		t.Errorf("complaint status = %q, want %q", got, models.StatusInProgress)
	}
	if len(history.records) != 2 {
		t.Fatalf("stored %d status records, want 2", len(history.records))
	}
	if history.records[0].Status != models.StatusYetToBegin {
		t.Errorf("initial record overwritten: status = %q", history.records[0].Status)
	}
	if history.records[1].Status != models.StatusInProgress {
		t.Errorf("appended record status = %q, want %q", history.records[1].Status, models.StatusInProgress)
	}
}

func TestUpdateStatus_FirstMatchWinsOnSharedDate(t *testing.T) {
	svc, complaints, _ := newComplaintServiceForTest()
	ctx := context.Background()

	first := &models.Complaint{Text: "broken fan", Date: "2024-03-01", Location: "hostel"}
	second := &models.Complaint{Text: "leaking tap", Date: "2024-03-01", Location: "hostel"}
	if err := svc.Submit(ctx, first); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := svc.Submit(ctx, second); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if err := svc.UpdateStatus(ctx, "2024-03-01", models.StatusResolved); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	if got := complaints.complaints[0].Status; got != models.StatusResolved {
		t.Errorf("first complaint status = %q, want %q", got, models.StatusResolved)
	}
	if got := complaints.complaints[1].Status; got != models.StatusYetToBegin {
		t.Errorf("second complaint status = %q, want untouched %q", got, models.StatusYetToBegin)
	}
}
