package user

import (
	"regexp"

	"github.com/frahmantamala/hr-directory/internal"
	"github.com/frahmantamala/hr-directory/internal/auth"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// UpdateUserDTO carries partial account updates; nil means leave the field
// alone. Role, company and isActive changes are superadmin-only and enforced
// in the service.
type UpdateUserDTO struct {
	Email     *string         `json:"email"`
	Password  *string         `json:"password"`
	FirstName *string         `json:"firstName"`
	LastName  *string         `json:"lastName"`
	Role      *string         `json:"role"`
	Company   auth.CompanyRef `json:"company"`
	IsActive  *bool           `json:"isActive"`
}

func (d UpdateUserDTO) Validate() error {
	var errs []internal.ValidationError
	if d.Email != nil && !emailPattern.MatchString(*d.Email) {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "invalid email", Code: string(internal.ErrCodeInvalidEmail)})
	}
	if d.Password != nil && len(*d.Password) < 6 {
		errs = append(errs, internal.ValidationError{Field: "password", Message: "password must be at least 6 characters", Code: string(internal.ErrCodeInvalidPassword)})
	}
	if d.Role != nil && !auth.ValidRole(*d.Role) {
		errs = append(errs, internal.ValidationError{Field: "role", Message: "invalid role", Code: string(internal.ErrCodeValidationFailed)})
	}
	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}
