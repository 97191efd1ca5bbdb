package company

import (
	"time"

	companyDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/company"
)

const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

type Company struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty"`
	Country      string    `json:"country,omitempty"`
	Website      string    `json:"website,omitempty"`
	Sector       string    `json:"sector,omitempty"`
	Size         string    `json:"size,omitempty"`
	Type         string    `json:"type,omitempty"`
	Logo         *string   `json:"logo"`
	Color        string    `json:"color,omitempty"`
	QRColor      string    `json:"qrColor,omitempty"`
	CreationYear string    `json:"creationYear,omitempty"`
	Status       string    `json:"status"`
	CreatedBy    *string   `json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToDataModel(c *Company) *companyDatamodel.Company {
	return &companyDatamodel.Company{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		City:         c.City,
		PostalCode:   c.PostalCode,
		Country:      c.Country,
		Website:      c.Website,
		Sector:       c.Sector,
		Size:         c.Size,
		Type:         c.Type,
		Logo:         c.Logo,
		Color:        c.Color,
		QRColor:      c.QRColor,
		CreationYear: c.CreationYear,
		Status:       c.Status,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromDataModel(record *companyDatamodel.Company) *Company {
	return &Company{
		ID:           record.ID,
		Name:         record.Name,
		Email:        record.Email,
		Phone:        record.Phone,
		Address:      record.Address,
		City:         record.City,
		PostalCode:   record.PostalCode,
		Country:      record.Country,
		Website:      record.Website,
		Sector:       record.Sector,
		Size:         record.Size,
		Type:         record.Type,
		Logo:         record.Logo,
		Color:        record.Color,
		QRColor:      record.QRColor,
		CreationYear: record.CreationYear,
		Status:       record.Status,
		CreatedBy:    record.CreatedBy,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}
