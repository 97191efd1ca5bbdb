package auth

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/frahmantamala/hr-directory/internal"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() error {
	var errs []internal.ValidationError
	if !emailPattern.MatchString(d.Email) {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "invalid email", Code: string(internal.ErrCodeInvalidEmail)})
	}
	if d.Password == "" {
		errs = append(errs, internal.ValidationError{Field: "password", Message: "password is required", Code: string(internal.ErrCodeInvalidPassword)})
	}
	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

// RegisterDTO accepts new account registrations. Role defaults to employee when
// omitted.
type RegisterDTO struct {
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      string     `json:"role"`
	CompanyID CompanyRef `json:"companyId"`
}

func (d *RegisterDTO) Validate() error {
	var errs []internal.ValidationError
	if !emailPattern.MatchString(d.Email) {
		errs = append(errs, internal.ValidationError{Field: "email", Message: "invalid email", Code: string(internal.ErrCodeInvalidEmail)})
	}
	if len(d.Password) < 6 {
		errs = append(errs, internal.ValidationError{Field: "password", Message: "password must be at least 6 characters", Code: string(internal.ErrCodeInvalidPassword)})
	}
	if d.Role != "" && !ValidRole(d.Role) {
		errs = append(errs, internal.ValidationError{Field: "role", Message: "invalid role", Code: string(internal.ErrCodeInvalidRole)})
	}
	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

// CompanyRef normalizes the "company can be an id string or a populated object"
// ambiguity at the boundary: whatever the client sends, guard checks only ever
// see a canonical id string.
type CompanyRef string

func (c *CompanyRef) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		*c = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = CompanyRef(s)
		return nil
	}

	var obj struct {
		ID    string `json:"id"`
		OID   string `json:"_id"`
		UUID  string `json:"uuid"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	switch {
	case obj.ID != "":
		*c = CompanyRef(obj.ID)
	case obj.OID != "":
		*c = CompanyRef(obj.OID)
	case obj.UUID != "":
		*c = CompanyRef(obj.UUID)
	default:
		*c = CompanyRef(obj.Value)
	}
	return nil
}

func (c CompanyRef) String() string {
	return string(c)
}

func (c CompanyRef) IsZero() bool {
	return c == ""
}
