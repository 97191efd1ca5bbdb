package employee

import (
	"regexp"

	"github.com/frahmantamala/hr-directory/internal"
	"github.com/frahmantamala/hr-directory/internal/auth"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// CreateEmployeeDTO is the new-card payload. Company accepts either a plain id
// string or an embedded company object; company admins may omit it entirely
// and get their own tenant.
type CreateEmployeeDTO struct {
	Company        auth.CompanyRef `json:"company"`
	UserID         *string         `json:"userId"`
	Name           string          `json:"name"`
	Surname        string          `json:"surname"`
	Patronymic     string          `json:"patronymic"`
	Role           string          `json:"role"`
	Agency         string          `json:"agency"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	HomePhone      string          `json:"homePhone"`
	WorkPhone      string          `json:"workPhone"`
	InsuranceAgent string          `json:"insuranceAgent"`
	PersonalSite   string          `json:"personalSite"`
	BirthDate      string          `json:"birthDate"`
	CorporateEmail string          `json:"corporateEmail"`
	HomeAddress    string          `json:"homeAddress"`
	Facebook       string          `json:"facebook"`
	X              string          `json:"x"`
	Linkedin       string          `json:"linkedin"`
	Instagram      string          `json:"instagram"`
	Github         string          `json:"github"`
	ICQ            string          `json:"icq"`
	Title          string          `json:"title"`
}

func (d CreateEmployeeDTO) Validate() error {
	var errs []internal.ValidationError
	if d.Name == "" {
		errs = append(errs, internal.ValidationError{Field: "name", Message: "name is required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Surname == "" {
		errs = append(errs, internal.ValidationError{Field: "surname", Message: "surname is required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Email != "" && !emailPattern.MatchString(d.Email) {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "invalid email", Code: string(internal.ErrCodeInvalidEmail)})
	}
	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

// UpdateEmployeeDTO carries partial updates; nil means leave the field alone.
// Company moves are restricted to superadmins in the service.
type UpdateEmployeeDTO struct {
	Company        auth.CompanyRef `json:"company"`
	Name           *string         `json:"name"`
	Surname        *string         `json:"surname"`
	Patronymic     *string         `json:"patronymic"`
	Role           *string         `json:"role"`
	Agency         *string         `json:"agency"`
	Email          *string         `json:"email"`
	Phone          *string         `json:"phone"`
	HomePhone      *string         `json:"homePhone"`
	WorkPhone      *string         `json:"workPhone"`
	InsuranceAgent *string         `json:"insuranceAgent"`
	PersonalSite   *string         `json:"personalSite"`
	BirthDate      *string         `json:"birthDate"`
	CorporateEmail *string         `json:"corporateEmail"`
	HomeAddress    *string         `json:"homeAddress"`
	Facebook       *string         `json:"facebook"`
	X              *string         `json:"x"`
	Linkedin       *string         `json:"linkedin"`
	Instagram      *string         `json:"instagram"`
	Github         *string         `json:"github"`
	ICQ            *string         `json:"icq"`
	Title          *string         `json:"title"`
}

func (d UpdateEmployeeDTO) Validate() error {
	var errs []internal.ValidationError
	if d.Name != nil && *d.Name == "" {
		errs = append(errs, internal.ValidationError{Field: "name", Message: "name cannot be empty", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Surname != nil && *d.Surname == "" {
		errs = append(errs, internal.ValidationError{Field: "surname", Message: "surname cannot be empty", Code: string(internal.ErrCodeValidationFailed)})
	}
	if d.Email != nil && *d.Email != "" && !emailPattern.MatchString(*d.Email) {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "invalid email", Code: string(internal.ErrCodeInvalidEmail)})
	}
	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}
