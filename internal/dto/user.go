package dto

import (
	"time"

	apierrors "github.com/pmapi/project-management-api/internal/errors"
	"github.com/pmapi/project-management-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash is never
// part of any wire representation.
type UserDTO struct {
	ID         uint64    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	IsStaff    bool      `json:"is_staff"`
	IsActive   bool      `json:"is_active"`
	DateJoined time.Time `json:"date_joined"`
}

// ToUserDTO converts a User model to UserDTO.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		IsStaff:    user.IsStaff,
		IsActive:   user.IsActive,
		DateJoined: user.DateJoined,
	}
}

// ToUserDTOs converts a slice of User models.
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = ToUserDTO(u)
	}
	return out
}

// UserRegisterInput holds the validated registration fields. Password is
// write-only plaintext; the service hashes it before persistence.
type UserRegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ParseUserRegister validates a registration body.
func ParseUserRegister(raw map[string]any) (*UserRegisterInput, apierrors.ValidationErrors) {
	errs := apierrors.ValidationErrors{}
	in := &UserRegisterInput{}

	if v, ok := raw["username"]; ok {
		if s, ok := asString(v, "username", false, errs); ok {
			in.Username = s
		}
	} else {
		errs.Add("username", apierrors.MsgRequired)
	}

	if v, ok := raw["email"]; ok {
		if s, ok := asString(v, "email", false, errs); ok {
			in.Email = s
		}
	} else {
		errs.Add("email", apierrors.MsgRequired)
	}

	if v, ok := raw["password"]; ok {
		if s, ok := asString(v, "password", false, errs); ok {
			in.Password = s
		}
	} else {
		errs.Add("password", apierrors.MsgRequired)
	}

	if v, ok := raw["first_name"]; ok {
		if s, ok := asString(v, "first_name", true, errs); ok {
			in.FirstName = s
		}
	}
	if v, ok := raw["last_name"]; ok {
		if s, ok := asString(v, "last_name", true, errs); ok {
			in.LastName = s
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}

// UserUpdateInput holds the fields present in a partial user update.
type UserUpdateInput struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	IsStaff   *bool
	IsActive  *bool
}

// ParseUserUpdate validates a partial update body. Absent fields stay nil;
// id, date_joined and password are read-only here and ignored.
func ParseUserUpdate(raw map[string]any) (*UserUpdateInput, apierrors.ValidationErrors) {
	errs := apierrors.ValidationErrors{}
	in := &UserUpdateInput{}

	if v, ok := raw["username"]; ok {
		if s, ok := asString(v, "username", false, errs); ok {
			in.Username = &s
		}
	}
	if v, ok := raw["email"]; ok {
		if s, ok := asString(v, "email", false, errs); ok {
			in.Email = &s
		}
	}
	if v, ok := raw["first_name"]; ok {
		if s, ok := asString(v, "first_name", true, errs); ok {
			in.FirstName = &s
		}
	}
	if v, ok := raw["last_name"]; ok {
		if s, ok := asString(v, "last_name", true, errs); ok {
			in.LastName = &s
		}
	}
	if v, ok := raw["is_staff"]; ok {
		if b, ok := asBool(v, "is_staff", errs); ok {
			in.IsStaff = &b
		}
	}
	if v, ok := raw["is_active"]; ok {
		if b, ok := asBool(v, "is_active", errs); ok {
			in.IsActive = &b
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return in, nil
}
