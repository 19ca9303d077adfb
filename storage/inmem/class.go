package inmem

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pichalabs/picha/core"
	"github.com/pichalabs/picha/core/class"
)

type classRepository struct {
	db *classTable
}

func NewClassRepository(db *DB) class.Repository {
	return &classRepository{db: db.class}
}

func (repo *classRepository) CreateClass(_ context.Context, item class.ClassItem) (core.InsertResult, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	repo.db.table[item.ID.Hex()] = &item
	return core.InsertResult{InsertedID: item.ID.Hex()}, nil
}

func (repo *classRepository) QueryAllClasses(_ context.Context) ([]class.ClassItem, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	items := make([]class.ClassItem, 0, len(repo.db.table))
	for _, item := range repo.db.table {
		items = append(items, *item)
	}
	return items, nil
}

func (repo *classRepository) SetClassStatus(_ context.Context, id, status string) (core.UpdateResult, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	item, ok := repo.db.table[id]
	if !ok {
		return core.UpdateResult{}, nil
	}
	modified := int64(0)
	if item.Status != status {
		item.Status = status
		modified = 1
	}
	return core.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
}

func (repo *classRepository) SetClassFeedback(_ context.Context, id, feedback string) (core.UpdateResult, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	item, ok := repo.db.table[id]
	if !ok {
		return core.UpdateResult{}, nil
	}
	modified := int64(0)
	if item.Feedback != feedback {
		item.Feedback = feedback
		modified = 1
	}
	return core.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
}

func (repo *classRepository) DeleteClass(_ context.Context, id string) (core.DeleteResult, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return core.DeleteResult{}, nil
	}
	delete(repo.db.table, id)
	return core.DeleteResult{DeletedCount: 1}, nil
}
