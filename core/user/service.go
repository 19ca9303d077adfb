package user

import (
	"context"
	"errors"

	"github.com/pichalabs/picha/core"
)

var (
	// errors
	ErrNotFound = errors.New("user not found")
)

type (
	Repository interface {
		CreateUser(ctx context.Context, usr User) (User, error)
		GetUserByEmail(ctx context.Context, email string) (User, error)
		QueryAllUsers(ctx context.Context) ([]User, error)
		FilterUsersByRole(ctx context.Context, role string) ([]User, error)
		SetUserRole(ctx context.Context, id, role string) (core.UpdateResult, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register inserts a new User only if no record with that email exists;
// otherwise it reports existence without mutating. Returns the stored User
// and whether it was created by this call.
func (svc *Service) Register(ctx context.Context, nu NewUser) (User, bool, error) {
	existing, err := svc.repo.GetUserByEmail(ctx, nu.Email)
	if err == nil {
		return existing, false, nil
	}
	if err != ErrNotFound {
		return User{}, false, err
	}

	usr := User{
		Name:  nu.Name,
		Email: nu.Email,
		Photo: nu.Photo,
	}
	usr, err = svc.repo.CreateUser(ctx, usr)
	return usr, err == nil, err
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return svc.repo.GetUserByEmail(ctx, core.CleanString(email, true /* lower */))
}

// HasRole reports whether the User stored under email has the given role.
// A missing user simply has no role.
func (svc *Service) HasRole(ctx context.Context, email, role string) (bool, error) {
	usr, err := svc.GetByEmail(ctx, email)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return usr.EffectiveRole() == role, nil
}

// SetRole unconditionally overwrites the role of the User matched by id.
func (svc *Service) SetRole(ctx context.Context, id, role string) (core.UpdateResult, error) {
	return svc.repo.SetUserRole(ctx, id, role)
}

func (svc *Service) FilterByRole(ctx context.Context, role string) ([]User, error) {
	return svc.repo.FilterUsersByRole(ctx, role)
}
