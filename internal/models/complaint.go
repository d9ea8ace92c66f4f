package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ComplaintStatus string

const (
	StatusYetToBegin ComplaintStatus = "Yet to Begin"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
)

// Valid reports whether s is one of the three known statuses.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusYetToBegin, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// ComplaintImage holds an uploaded image inline with the complaint document.
type ComplaintImage struct {
	Data        []byte `bson:"data"`
	ContentType string `bson:"content_type"`
}

// Complaint is a submitted issue report. Username is free text, not a
// reference into the accounts collections. Date is kept as the raw form
// value because status updates look complaints up by exact date match.
type Complaint struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username    string             `bson:"username" json:"username"`
	Text        string             `bson:"complaint" json:"complaint"`
	Date        string             `bson:"date" json:"date"`
	Location    string             `bson:"location" json:"location"`
	SubLocation string             `bson:"sub_location,omitempty" json:"sub_location,omitempty"`
	RoomNo      string             `bson:"room_no,omitempty" json:"room_no,omitempty"`
	Image       *ComplaintImage    `bson:"image,omitempty" json:"-"`
	Status      ComplaintStatus    `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// ComplaintView is the list representation of a complaint. Image carries a
// base64 data URI so clients can embed it directly; nil when no image was
// uploaded.
type ComplaintView struct {
	ID          primitive.ObjectID `json:"id"`
	Username    string             `json:"username"`
	Text        string             `json:"complaint"`
	Date        string             `json:"date"`
	Location    string             `json:"location"`
	SubLocation string             `json:"sub_location,omitempty"`
	RoomNo      string             `json:"room_no,omitempty"`
	Image       *string            `json:"image"`
	Status      ComplaintStatus    `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// StatusRecord is an append-only snapshot of a complaint's status. The
// complaint text and location are copied in at write time, so reads need
// no join against the complaints collection.
type StatusRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ComplaintID primitive.ObjectID `bson:"complaint_id" json:"complaint_id"`
	Text        string             `bson:"complaint" json:"complaint"`
	Location    string             `bson:"location" json:"location"`
	SubLocation string             `bson:"sub_location,omitempty" json:"sub_location,omitempty"`
	Status      ComplaintStatus    `bson:"status" json:"status"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
