package company

import (
	"regexp"

	"github.com/frahmantamala/hr-directory/internal"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type CreateCompanyDTO struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Website      string `json:"website"`
	Sector       string `json:"sector"`
	Size         string `json:"size"`
	Type         string `json:"type"`
	Color        string `json:"color"`
	QRColor      string `json:"qrColor"`
	CreationYear string `json:"creationYear"`
}

func (d CreateCompanyDTO) Validate() error {
	var errs []internal.ValidationError
	if d.Name == "" {
		errs = append(errs, internal.ValidationError{Field: "name", Message: "name is required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if !emailPattern.MatchString(d.Email) {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "invalid email", Code: string(internal.ErrCodeInvalidEmail)})
	}
	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

// RegisterCompanyDTO is the public self-registration payload: one company plus
// its first company_admin account.
type RegisterCompanyDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d RegisterCompanyDTO) Validate() error {
	var errs []internal.ValidationError
	if d.Name == "" {
		errs = append(errs, internal.ValidationError{Field: "name", Message: "name is required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if !emailPattern.MatchString(d.Email) {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "invalid email", Code: string(internal.ErrCodeInvalidEmail)})
	}
	if len(d.Password) < 6 {
		errs = append(errs, internal.ValidationError{Field: "password", Message: "password must be at least 6 characters", Code: string(internal.ErrCodeInvalidPassword)})
	}
	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

// UpdateCompanyDTO carries partial updates; nil means leave the field alone.
type UpdateCompanyDTO struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	PostalCode   *string `json:"postalCode"`
	Country      *string `json:"country"`
	Website      *string `json:"website"`
	Sector       *string `json:"sector"`
	Size         *string `json:"size"`
	Type         *string `json:"type"`
	Color        *string `json:"color"`
	QRColor      *string `json:"qrColor"`
	CreationYear *string `json:"creationYear"`
	Status       *string `json:"status"`
}

func (d UpdateCompanyDTO) Validate() error {
	var errs []internal.ValidationError
	if d.Email != nil && !emailPattern.MatchString(*d.Email) {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "invalid email", Code: string(internal.ErrCodeInvalidEmail)})
	}
	if d.Status != nil && *d.Status != StatusActive && *d.Status != StatusSuspended {
		errs = append(errs, internal.ValidationError{Field: "status", Message: "status must be active or suspended", Code: string(internal.ErrCodeValidationFailed)})
	}
	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}
