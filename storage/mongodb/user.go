package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pichalabs/picha/core"
	"github.com/pichalabs/picha/core/user"
)

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) user.Repository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	res, err := repo.coll.InsertOne(ctx, usr)
	if err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		usr.ID = oid
	}
	return usr, nil
}

func (repo *userRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var usr user.User
	err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&usr)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "finding user by email")
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	users := make([]user.User, 0)
	if err = cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decoding users")
	}
	return users, nil
}

func (repo *userRepository) FilterUsersByRole(ctx context.Context, role string) ([]user.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, errors.Wrap(err, "querying users by role")
	}
	users := make([]user.User, 0)
	if err = cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decoding users")
	}
	return users, nil
}

func (repo *userRepository) SetUserRole(ctx context.Context, id, role string) (core.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return core.UpdateResult{}, nil // malformed id matches nothing
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return core.UpdateResult{}, errors.Wrap(err, "updating user role")
	}
	return core.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
