package payment

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pichalabs/picha/core"
)

// Record is a completed payment. Its SelectItems list the selection entry
// ids that were purchased and cleared by the payment.
type Record struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	TransactionID string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Amount        float64            `json:"amount" bson:"amount"`
	SelectItems   []string           `json:"selectItems" bson:"selectItems"`
	ClassNames    []string           `json:"classNames,omitempty" bson:"classNames,omitempty"`
	Date          time.Time          `json:"date" bson:"date"` // UTC, set server-side
}

// NewPayment contains information needed to record a completed payment.
type NewPayment struct {
	Email         string   `json:"email" validate:"required,email"`
	TransactionID string   `json:"transactionId"`
	Amount        float64  `json:"amount" validate:"gte=0"`
	SelectItems   []string `json:"selectItems" validate:"required,min=1"`
	ClassNames    []string `json:"classNames"`
}

func (np *NewPayment) Validate(validate *validator.Validate) error {
	np.Email = core.CleanString(np.Email, true /* lower */)
	return validate.Struct(np)
}

type IntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

func (ir *IntentRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(ir)
}

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordResult reports the two store outcomes of recording a payment.
type RecordResult struct {
	InsertResult core.InsertResult `json:"insertResult"`
	DeleteResult core.DeleteResult `json:"deleteResult"`
}
