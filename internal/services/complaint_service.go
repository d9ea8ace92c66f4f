package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/models"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetAll(ctx context.Context) ([]models.Complaint, error)
	FindFirstByDate(ctx context.Context, date string) (*models.Complaint, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ComplaintStatus, updatedAt time.Time) error
}

type StatusRepository interface {
	Append(ctx context.Context, record *models.StatusRecord) error
	GetAll(ctx context.Context) ([]models.StatusRecord, error)
}

// ComplaintService owns all writes to complaints and their status history.
type ComplaintService struct {
	complaints ComplaintRepository
	history    StatusRepository
}

func NewComplaintService(complaints ComplaintRepository, history StatusRepository) *ComplaintService {
	return &ComplaintService{complaints: complaints, history: history}
}

// Submit persists a new complaint and its initial status record. The
// complaint write lands first; if the history write fails the complaint
// stands and the log lags behind (the two writes are not transactional).
func (s *ComplaintService) Submit(ctx context.Context, complaint *models.Complaint) error {
	// Mess and garden have no room concept.
	if complaint.Location == "mess" || complaint.Location == "garden" {
		complaint.RoomNo = ""
	}
	complaint.Status = models.StatusYetToBegin

	if err := s.complaints.Create(ctx, complaint); err != nil {
		return err
	}

	record := &models.StatusRecord{
		ComplaintID: complaint.ID,
		Text:        complaint.Text,
		Location:    complaint.Location,
		SubLocation: complaint.SubLocation,
		Status:      complaint.Status,
		UpdatedAt:   complaint.CreatedAt,
	}
	return s.history.Append(ctx, record)
}

// List returns all complaints with any stored image rendered as a base64
// data URI.
func (s *ComplaintService) List(ctx context.Context) ([]models.ComplaintView, error) {
	complaints, err := s.complaints.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.ComplaintView, 0, len(complaints))
	for _, c := range complaints {
		view := models.ComplaintView{
			ID:          c.ID,
			Username:    c.Username,
			Text:        c.Text,
			Date:        c.Date,
			Location:    c.Location,
			SubLocation: c.SubLocation,
			RoomNo:      c.RoomNo,
			Status:      c.Status,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		}
		if c.Image != nil {
			uri := dataURI(c.Image)
			view.Image = &uri
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateStatus looks a complaint up by its submission date, sets the new
// status and appends a status record. Date is the documented lookup key;
// when several complaints share a date only the first match is updated.
func (s *ComplaintService) UpdateStatus(ctx context.Context, date string, status models.ComplaintStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	complaint, err := s.complaints.FindFirstByDate(ctx, date)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := s.complaints.UpdateStatus(ctx, complaint.ID, status, now); err != nil {
		return err
	}

	record := &models.StatusRecord{
		ComplaintID: complaint.ID,
		Text:        complaint.Text,
		Location:    complaint.Location,
		SubLocation: complaint.SubLocation,
		Status:      status,
		UpdatedAt:   now,
	}
	return s.history.Append(ctx, record)
}

// History returns every status record. Complaint text and location were
// copied onto each record at write time, so no join is needed.
func (s *ComplaintService) History(ctx context.Context) ([]models.StatusRecord, error) {
	return s.history.GetAll(ctx)
}

func dataURI(img *models.ComplaintImage) string {
	return fmt.Sprintf("data:%s;base64,%s", img.ContentType, base64.StdEncoding.EncodeToString(img.Data))
}
