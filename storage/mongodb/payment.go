package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pichalabs/picha/core"
	"github.com/pichalabs/picha/core/payment"
)

type paymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) payment.Repository {
	return &paymentRepository{coll: db.Collection(paymentsCollection)}
}

func (repo *paymentRepository) CreatePayment(ctx context.Context, rec payment.Record) (core.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, rec)
	if err != nil {
		return core.InsertResult{}, errors.Wrap(err, "inserting payment record")
	}
	return core.InsertResult{InsertedID: insertedIDHex(res.InsertedID)}, nil
}

func (repo *paymentRepository) QueryAllPayments(ctx context.Context) ([]payment.Record, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying payment records")
	}
	recs := make([]payment.Record, 0)
	if err = cursor.All(ctx, &recs); err != nil {
		return nil, errors.Wrap(err, "decoding payment records")
	}
	return recs, nil
}

// transactor runs a payment record + selection clear pair in a single
// multi-document transaction. Requires a replica-set/sharded deployment.
type transactor struct {
	client *mongo.Client
}

func NewTransactor(client *mongo.Client) payment.Transactor {
	return &transactor{client: client}
}

func (t *transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := t.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "starting session")
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
