package user

import (
	"time"

	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

// User is a login account. The password hash never leaves the repository.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToMeResponse() MeResponse {
	return MeResponse{
		Email: u.Email,
		Name:  u.FullName,
		Role:  u.Role,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
