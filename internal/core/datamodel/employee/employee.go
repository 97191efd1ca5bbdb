package employee

import "time"

type Employee struct {
	ID             string  `gorm:"primaryKey"`
	CompanyID      string  `gorm:"index"`
	UserID         *string `gorm:"index"`
	Name           string
	Surname        string
	Patronymic     string
	Role           string
	Agency         string
	Email          string
	Phone          string
	HomePhone      string
	WorkPhone      string
	InsuranceAgent string
	PersonalSite   string
	BirthDate      string
	CorporateEmail string
	HomeAddress    string
	Facebook       string
	X              string
	Linkedin       string
	Instagram      string
	Github         string
	ICQ            string `gorm:"column:icq"`
	Title          string
	Avatar         *string
	Background     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Employee) TableName() string {
	return "employees"
}
