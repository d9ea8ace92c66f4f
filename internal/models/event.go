package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/utils"
)

// Event is a campus event posted by an admin.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Date        string             `bson:"date" json:"date" validate:"required"`
	Venue       string             `bson:"venue" json:"venue" validate:"required"`
	Organizer   string             `bson:"organizer,omitempty" json:"organizer,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

func (e Event) Validate() error {
	validate := utils.GetValidator()
	if err := validate.Struct(e); err != nil {
		errs := utils.ParseValidationErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}
	return nil
}
