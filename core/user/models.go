package user

import (
	"time"

	"github.com/jakartamandarin/console/core"
)

// Roles
const (
	RoleAdmin   = "admin"
	RoleSEA     = "sea"
	RoleSSC     = "ssc"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

var AllRoles = []string{RoleAdmin, RoleSEA, RoleSSC, RoleTeacher, RoleStudent}

// Record mirrors one backend user row. The client holds a transient,
// unsynchronized copy that is discarded on every refetch; ID is only
// used as an opaque render key.
type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser is the create form. Password is required here and only here.
type NewUser struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,userrole"`
	Phone    string `json:"phone" validate:"omitempty,min=6"`
	Password string `json:"password" validate:"required,min=6"`
}

func (nu *NewUser) Validate() error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true)
	nu.Phone = core.CleanString(nu.Phone)
	return core.TranslateError(core.Validate.Struct(nu))
}

// UpdateUser is the edit form. An empty Password means "no change";
// it is sent as-is and the backend interprets it, the client does not
// special-case it.
type UpdateUser struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,userrole"`
	Phone    string `json:"phone" validate:"omitempty,min=6"`
	Password string `json:"password" validate:"omitempty,min=6"`
	IsActive *bool  `json:"isActive,omitempty"`
}

func (uu *UpdateUser) Validate() error {
	uu.Name = core.CleanString(uu.Name)
	uu.Email = core.CleanString(uu.Email, true)
	uu.Phone = core.CleanString(uu.Phone)
	return core.TranslateError(core.Validate.Struct(uu))
}
