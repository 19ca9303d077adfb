package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pichalabs/picha/core"
	"github.com/pichalabs/picha/core/selection"
)

// Selection entries reuse the chosen class's hex id as their _id, so ids are
// stored as plain strings here.
type selectionRepository struct {
	coll *mongo.Collection
}

func NewSelectionRepository(db *mongo.Database) selection.Repository {
	return &selectionRepository{coll: db.Collection(selectionsCollection)}
}

func (repo *selectionRepository) CreateEntry(ctx context.Context, entry selection.Entry) (core.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, entry)
	if err != nil {
		return core.InsertResult{}, errors.Wrap(err, "inserting selection entry")
	}
	return core.InsertResult{InsertedID: insertedIDHex(res.InsertedID)}, nil
}

func (repo *selectionRepository) GetEntryByID(ctx context.Context, id string) (selection.Entry, error) {
	var entry selection.Entry
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return selection.Entry{}, selection.ErrNotFound
		}
		return selection.Entry{}, errors.Wrap(err, "finding selection entry")
	}
	return entry, nil
}

func (repo *selectionRepository) QueryEntriesByOwner(ctx context.Context, email string) ([]selection.Entry, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, errors.Wrap(err, "querying selection entries")
	}
	entries := make([]selection.Entry, 0)
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, errors.Wrap(err, "decoding selection entries")
	}
	return entries, nil
}

func (repo *selectionRepository) DeleteEntry(ctx context.Context, id string) (core.DeleteResult, error) {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return core.DeleteResult{}, errors.Wrap(err, "deleting selection entry")
	}
	return core.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (repo *selectionRepository) DeleteEntriesByID(ctx context.Context, ids []string) (core.DeleteResult, error) {
	res, err := repo.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return core.DeleteResult{}, errors.Wrap(err, "deleting selection entries")
	}
	return core.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
