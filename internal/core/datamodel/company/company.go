package company

import "time"

type Company struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	Address      string
	City         string
	PostalCode   string
	Country      string
	Website      string
	Sector       string
	Size         string
	Type         string
	Logo         *string
	Color        string
	QRColor      string `gorm:"column:qr_color"`
	CreationYear string
	Status       string
	CreatedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Company) TableName() string {
	return "companies"
}
