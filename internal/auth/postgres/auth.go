package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frahmantamala/hr-directory/internal/auth"
	companyDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/company"
	userDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/user"
)

var ErrNotFound = errors.New("user not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByEmail(email string) (*auth.User, string, error) {
	var record userDatamodel.User
	if err := r.db.Where("email = ?", email).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	user := toPrincipal(&record)
	r.attachCompany(user)
	return user, record.PasswordHash, nil
}

func (r *Repository) GetByID(userID string) (*auth.User, error) {
	var record userDatamodel.User
	if err := r.db.Where("id = ?", userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user := toPrincipal(&record)
	r.attachCompany(user)
	return user, nil
}

func (r *Repository) GetCompanyStatus(companyID string) (string, error) {
	var status string
	err := r.db.Model(&companyDatamodel.Company{}).
		Where("id = ?", companyID).
		Pluck("status", &status).Error
	if err != nil {
		return "", err
	}
	if status == "" {
		return "", gorm.ErrRecordNotFound
	}
	return status, nil
}

func (r *Repository) CompanyExists(companyID string) (bool, error) {
	var count int64
	err := r.db.Model(&companyDatamodel.Company{}).
		Where("id = ?", companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) Create(u *auth.User, passwordHash string) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	record := &userDatamodel.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: passwordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		CompanyID:    u.CompanyID,
		IsActive:     u.IsActive,
	}
	if err := r.db.Create(record).Error; err != nil {
		return err
	}

	u.CreatedAt = record.CreatedAt
	u.UpdatedAt = record.UpdatedAt
	return nil
}

// attachCompany populates the embedded company summary. Best-effort: a missing
// company record leaves the summary nil, the suspension check does not rely on
// it.
func (r *Repository) attachCompany(u *auth.User) {
	if u.CompanyID == nil {
		return
	}

	var record companyDatamodel.Company
	if err := r.db.Where("id = ?", *u.CompanyID).First(&record).Error; err != nil {
		return
	}

	u.Company = &auth.CompanySummary{
		ID:     record.ID,
		Name:   record.Name,
		Email:  record.Email,
		Logo:   record.Logo,
		Color:  record.Color,
		Status: record.Status,
	}
}

func toPrincipal(record *userDatamodel.User) *auth.User {
	return &auth.User{
		ID:        record.ID,
		Email:     record.Email,
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Role:      record.Role,
		CompanyID: record.CompanyID,
		IsActive:  record.IsActive,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
