package selection

import (
	"context"
	"errors"

	"github.com/pichalabs/picha/core"
)

var (
	// errors
	ErrNotFound = errors.New("selection entry not found")
)

type (
	Repository interface {
		CreateEntry(ctx context.Context, entry Entry) (core.InsertResult, error)
		GetEntryByID(ctx context.Context, id string) (Entry, error)
		QueryEntriesByOwner(ctx context.Context, email string) ([]Entry, error)
		DeleteEntry(ctx context.Context, id string) (core.DeleteResult, error)
		DeleteEntriesByID(ctx context.Context, ids []string) (core.DeleteResult, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add inserts the entry unless one with its id already exists, in which case
// the existing entry is returned untouched. The bool reports pre-existence.
func (svc *Service) Add(ctx context.Context, entry Entry) (Entry, bool, error) {
	existing, err := svc.repo.GetEntryByID(ctx, entry.ID)
	if err == nil {
		return existing, true, nil
	}
	if err != ErrNotFound {
		return Entry{}, false, err
	}

	if _, err = svc.repo.CreateEntry(ctx, entry); err != nil {
		return Entry{}, false, err
	}
	return entry, false, nil
}

// QueryByOwner returns the owner's pending-purchase entries.
func (svc *Service) QueryByOwner(ctx context.Context, email string) ([]Entry, error) {
	return svc.repo.QueryEntriesByOwner(ctx, core.CleanString(email, true /* lower */))
}

func (svc *Service) Delete(ctx context.Context, id string) (core.DeleteResult, error) {
	return svc.repo.DeleteEntry(ctx, id)
}
