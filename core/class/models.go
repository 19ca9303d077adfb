package class

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pichalabs/picha/core"
)

// Moderation statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

var AllStatuses = []string{StatusPending, StatusApproved, StatusDenied}

func KnownStatus(status string) bool {
	for _, s := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type ClassItem struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	Instructor      string             `json:"instructor,omitempty" bson:"instructor,omitempty"`
	InstructorEmail string             `json:"instructorEmail,omitempty" bson:"instructorEmail,omitempty"`
	Seats           int                `json:"seats" bson:"seats"`
	Price           float64            `json:"price" bson:"price"`
	Status          string             `json:"status" bson:"status"`
	Feedback        string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
}

// EffectiveStatus normalizes a persisted status against the closed status
// set; anything unrecognized reads as pending.
func (c ClassItem) EffectiveStatus() string {
	if KnownStatus(c.Status) {
		return c.Status
	}
	return StatusPending
}

// NewClass contains information needed to submit a new ClassItem.
// Submission is not validated against the submitting identity.
type NewClass struct {
	Name            string  `json:"name" validate:"required"`
	Image           string  `json:"image"`
	Instructor      string  `json:"instructor"`
	InstructorEmail string  `json:"instructorEmail" validate:"omitempty,email"`
	Seats           int     `json:"seats" validate:"gte=0"`
	Price           float64 `json:"price" validate:"gte=0"`
}

func (nc *NewClass) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.InstructorEmail = core.CleanString(nc.InstructorEmail, true /* lower */)
	return validate.Struct(nc)
}

type UpdateStatus struct {
	Status string `json:"status" validate:"required"`
}

func (us *UpdateStatus) Validate(validate *validator.Validate) error {
	us.Status = core.CleanString(us.Status, true /* lower */)
	return validate.Struct(us)
}

type UpdateFeedback struct {
	Feedback string `json:"feedback" validate:"required"`
}

func (uf *UpdateFeedback) Validate(validate *validator.Validate) error {
	uf.Feedback = core.CleanString(uf.Feedback)
	return validate.Struct(uf)
}
