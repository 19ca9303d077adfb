package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pichalabs/picha/core"
	"github.com/pichalabs/picha/core/class"
)

type classRepository struct {
	coll *mongo.Collection
}

func NewClassRepository(db *mongo.Database) class.Repository {
	return &classRepository{coll: db.Collection(classesCollection)}
}

func (repo *classRepository) CreateClass(ctx context.Context, item class.ClassItem) (core.InsertResult, error) {
	res, err := repo.coll.InsertOne(ctx, item)
	if err != nil {
		return core.InsertResult{}, errors.Wrap(err, "inserting class")
	}
	return core.InsertResult{InsertedID: insertedIDHex(res.InsertedID)}, nil
}

func (repo *classRepository) QueryAllClasses(ctx context.Context) ([]class.ClassItem, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying classes")
	}
	items := make([]class.ClassItem, 0)
	if err = cursor.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decoding classes")
	}
	return items, nil
}

func (repo *classRepository) SetClassStatus(ctx context.Context, id, status string) (core.UpdateResult, error) {
	return repo.setField(ctx, id, "status", status)
}

func (repo *classRepository) SetClassFeedback(ctx context.Context, id, feedback string) (core.UpdateResult, error) {
	return repo.setField(ctx, id, "feedback", feedback)
}

func (repo *classRepository) setField(ctx context.Context, id, field, value string) (core.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return core.UpdateResult{}, nil // malformed id matches nothing
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return core.UpdateResult{}, errors.Wrap(err, "updating class "+field)
	}
	return core.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (repo *classRepository) DeleteClass(ctx context.Context, id string) (core.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return core.DeleteResult{}, nil
	}
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return core.DeleteResult{}, errors.Wrap(err, "deleting class")
	}
	return core.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func insertedIDHex(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	if s, ok := id.(string); ok {
		return s
	}
	return ""
}
