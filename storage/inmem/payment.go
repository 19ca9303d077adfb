package inmem

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pichalabs/picha/core"
	"github.com/pichalabs/picha/core/payment"
)

type paymentRepository struct {
	db *paymentTable
}

func NewPaymentRepository(db *DB) payment.Repository {
	return &paymentRepository{db: db.payment}
}

func (repo *paymentRepository) CreatePayment(_ context.Context, rec payment.Record) (core.InsertResult, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	repo.db.table = append(repo.db.table, rec)
	return core.InsertResult{InsertedID: rec.ID.Hex()}, nil
}

func (repo *paymentRepository) QueryAllPayments(_ context.Context) ([]payment.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	recs := make([]payment.Record, len(repo.db.table))
	copy(recs, repo.db.table)
	return recs, nil
}
