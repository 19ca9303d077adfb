package user

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pichalabs/picha/core"
)

// Roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
	RoleNone       = "" // registered, no role assigned yet
)

var AllRoles = []string{RoleStudent, RoleInstructor, RoleAdmin}

// KnownRole reports whether role is part of the closed role set.
// Persisted values outside of it are treated as RoleNone.
func KnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name,omitempty" bson:"name,omitempty"`
	Email string             `json:"email" bson:"email"`
	Photo string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty"`
}

// EffectiveRole normalizes the persisted role against the closed role set.
func (u User) EffectiveRole() string {
	if KnownRole(u.Role) {
		return u.Role
	}
	return RoleNone
}

func (u User) IsAdmin() bool      { return u.EffectiveRole() == RoleAdmin }
func (u User) IsInstructor() bool { return u.EffectiveRole() == RoleInstructor }
func (u User) IsStudent() bool    { return u.EffectiveRole() == RoleStudent }

// NewUser contains information needed to register a new User.
// Registration is called on every client login and must be idempotent.
type NewUser struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
	Photo string `json:"photo"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	return validate.Struct(nu)
}

// UpdateRole defines the payload of a role overwrite.
// The stored value is not validated against AllRoles; readers normalize
// unrecognized values via EffectiveRole.
type UpdateRole struct {
	Role string `json:"role" validate:"required"`
}

func (ur *UpdateRole) Validate(validate *validator.Validate) error {
	ur.Role = core.CleanString(ur.Role, true /* lower */)
	return validate.Struct(ur)
}
