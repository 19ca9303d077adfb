package inmem

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pichalabs/picha/core"
	"github.com/pichalabs/picha/core/user"
)

type userRepository struct {
	db *userTable
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.user}
}

func (repo *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if usr.ID.IsZero() {
		usr.ID = primitive.NewObjectID()
	}
	repo.db.table[usr.ID.Hex()] = &usr
	return usr, nil
}

func (repo *userRepository) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, usr := range repo.db.table {
		if usr.Email == email {
			return *usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) QueryAllUsers(_ context.Context) ([]user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	users := make([]user.User, 0, len(repo.db.table))
	for _, usr := range repo.db.table {
		users = append(users, *usr)
	}
	return users, nil
}

func (repo *userRepository) FilterUsersByRole(_ context.Context, role string) ([]user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	users := make([]user.User, 0)
	for _, usr := range repo.db.table {
		if usr.Role == role {
			users = append(users, *usr)
		}
	}
	return users, nil
}

func (repo *userRepository) SetUserRole(_ context.Context, id, role string) (core.UpdateResult, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	usr, ok := repo.db.table[id]
	if !ok {
		return core.UpdateResult{}, nil
	}
	modified := int64(0)
	if usr.Role != role {
		usr.Role = role
		modified = 1
	}
	return core.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
}
