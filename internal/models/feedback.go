package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/utils"
)

// Feedback is a free-form comment about the campus or the service itself.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Message   string             `bson:"message" json:"message" validate:"required"`
	Rating    *int               `bson:"rating,omitempty" json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func (f Feedback) Validate() error {
	validate := utils.GetValidator()
	if err := validate.Struct(f); err != nil {
		errs := utils.ParseValidationErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}
	return nil
}
