package selection

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pichalabs/picha/core"
)

var errInvalidClassID = errors.New("invalid class id")

// Entry is a per-user pending-purchase reference to a ClassItem.
// The entry carries the chosen class's id as its own id, which makes adding
// a class to the selection idempotent.
type Entry struct {
	ID         string  `json:"_id" bson:"_id"`
	Email      string  `json:"email" bson:"email"`
	Name       string  `json:"name,omitempty" bson:"name,omitempty"`
	Image      string  `json:"image,omitempty" bson:"image,omitempty"`
	Instructor string  `json:"instructor,omitempty" bson:"instructor,omitempty"`
	Price      float64 `json:"price" bson:"price"`
}

func (e *Entry) Validate(validate *validator.Validate) error {
	e.ID = core.CleanString(e.ID)
	e.Email = core.CleanString(e.Email, true /* lower */)
	if err := validate.Struct(struct {
		ID    string `json:"_id" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}{e.ID, e.Email}); err != nil {
		return err
	}
	// the id must reference a class document
	if _, err := primitive.ObjectIDFromHex(e.ID); err != nil {
		return core.NewValidationError(errInvalidClassID, core.FieldError{
			Field: "_id",
			Error: "must be a valid class id",
		})
	}
	return nil
}
