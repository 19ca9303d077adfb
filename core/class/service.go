package class

import (
	"context"

	"github.com/pichalabs/picha/core"
)

type (
	Repository interface {
		CreateClass(ctx context.Context, item ClassItem) (core.InsertResult, error)
		QueryAllClasses(ctx context.Context) ([]ClassItem, error)
		SetClassStatus(ctx context.Context, id, status string) (core.UpdateResult, error)
		SetClassFeedback(ctx context.Context, id, feedback string) (core.UpdateResult, error)
		DeleteClass(ctx context.Context, id string) (core.DeleteResult, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewClass) (core.InsertResult, error) {
	item := ClassItem{
		Name:            nc.Name,
		Image:           nc.Image,
		Instructor:      nc.Instructor,
		InstructorEmail: nc.InstructorEmail,
		Seats:           nc.Seats,
		Price:           nc.Price,
		Status:          StatusPending,
	}
	return svc.repo.CreateClass(ctx, item)
}

// QueryAll returns every ClassItem unfiltered; callers filter by status or
// instructor on their side.
func (svc *Service) QueryAll(ctx context.Context) ([]ClassItem, error) {
	return svc.repo.QueryAllClasses(ctx)
}

// SetStatus overwrites the status field of exactly one record matched by id.
// The stored value is not state-machine checked; readers normalize via
// EffectiveStatus.
func (svc *Service) SetStatus(ctx context.Context, id, status string) (core.UpdateResult, error) {
	return svc.repo.SetClassStatus(ctx, id, status)
}

// SetFeedback overwrites the feedback field, independent of status.
func (svc *Service) SetFeedback(ctx context.Context, id, feedback string) (core.UpdateResult, error) {
	return svc.repo.SetClassFeedback(ctx, id, feedback)
}

func (svc *Service) Delete(ctx context.Context, id string) (core.DeleteResult, error) {
	return svc.repo.DeleteClass(ctx, id)
}
