package inmem

import (
	"context"

	"github.com/pichalabs/picha/core"
	"github.com/pichalabs/picha/core/selection"
)

type selectionRepository struct {
	db *selectionTable
}

func NewSelectionRepository(db *DB) selection.Repository {
	return &selectionRepository{db: db.selection}
}

func (repo *selectionRepository) CreateEntry(_ context.Context, entry selection.Entry) (core.InsertResult, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[entry.ID] = &entry
	return core.InsertResult{InsertedID: entry.ID}, nil
}

func (repo *selectionRepository) GetEntryByID(_ context.Context, id string) (selection.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if entry, ok := repo.db.table[id]; ok {
		return *entry, nil
	}
	return selection.Entry{}, selection.ErrNotFound
}

func (repo *selectionRepository) QueryEntriesByOwner(_ context.Context, email string) ([]selection.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	entries := make([]selection.Entry, 0)
	for _, entry := range repo.db.table {
		if entry.Email == email {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}

func (repo *selectionRepository) DeleteEntry(_ context.Context, id string) (core.DeleteResult, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return core.DeleteResult{}, nil
	}
	delete(repo.db.table, id)
	return core.DeleteResult{DeletedCount: 1}, nil
}

func (repo *selectionRepository) DeleteEntriesByID(_ context.Context, ids []string) (core.DeleteResult, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	var deleted int64
	for _, id := range ids {
		if _, ok := repo.db.table[id]; ok {
			delete(repo.db.table, id)
			deleted++
		}
	}
	return core.DeleteResult{DeletedCount: deleted}, nil
}
