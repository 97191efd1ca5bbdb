package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/employee"
)

// Employee is a directory card: the person's contact and profile fields, the
// company it belongs to, and an optional link to a login account. Records
// without a UserID are directory-only entries managed by admins.
type Employee struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"companyId"`
	UserID         *string   `json:"userId,omitempty"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Patronymic     string    `json:"patronymic,omitempty"`
	Role           string    `json:"role,omitempty"`
	Agency         string    `json:"agency,omitempty"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	HomePhone      string    `json:"homePhone,omitempty"`
	WorkPhone      string    `json:"workPhone,omitempty"`
	InsuranceAgent string    `json:"insuranceAgent,omitempty"`
	PersonalSite   string    `json:"personalSite,omitempty"`
	BirthDate      string    `json:"birthDate,omitempty"`
	CorporateEmail string    `json:"corporateEmail,omitempty"`
	HomeAddress    string    `json:"homeAddress,omitempty"`
	Facebook       string    `json:"facebook,omitempty"`
	X              string    `json:"x,omitempty"`
	Linkedin       string    `json:"linkedin,omitempty"`
	Instagram      string    `json:"instagram,omitempty"`
	Github         string    `json:"github,omitempty"`
	ICQ            string    `json:"icq,omitempty"`
	Title          string    `json:"title,omitempty"`
	Avatar         *string   `json:"avatar,omitempty"`
	Background     *string   `json:"background,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:             e.ID,
		CompanyID:      e.CompanyID,
		UserID:         e.UserID,
		Name:           e.Name,
		Surname:        e.Surname,
		Patronymic:     e.Patronymic,
		Role:           e.Role,
		Agency:         e.Agency,
		Email:          e.Email,
		Phone:          e.Phone,
		HomePhone:      e.HomePhone,
		WorkPhone:      e.WorkPhone,
		InsuranceAgent: e.InsuranceAgent,
		PersonalSite:   e.PersonalSite,
		BirthDate:      e.BirthDate,
		CorporateEmail: e.CorporateEmail,
		HomeAddress:    e.HomeAddress,
		Facebook:       e.Facebook,
		X:              e.X,
		Linkedin:       e.Linkedin,
		Instagram:      e.Instagram,
		Github:         e.Github,
		ICQ:            e.ICQ,
		Title:          e.Title,
		Avatar:         e.Avatar,
		Background:     e.Background,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func FromDataModel(record *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:             record.ID,
		CompanyID:      record.CompanyID,
		UserID:         record.UserID,
		Name:           record.Name,
		Surname:        record.Surname,
		Patronymic:     record.Patronymic,
		Role:           record.Role,
		Agency:         record.Agency,
		Email:          record.Email,
		Phone:          record.Phone,
		HomePhone:      record.HomePhone,
		WorkPhone:      record.WorkPhone,
		InsuranceAgent: record.InsuranceAgent,
		PersonalSite:   record.PersonalSite,
		BirthDate:      record.BirthDate,
		CorporateEmail: record.CorporateEmail,
		HomeAddress:    record.HomeAddress,
		Facebook:       record.Facebook,
		X:              record.X,
		Linkedin:       record.Linkedin,
		Instagram:      record.Instagram,
		Github:         record.Github,
		ICQ:            record.ICQ,
		Title:          record.Title,
		Avatar:         record.Avatar,
		Background:     record.Background,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}
