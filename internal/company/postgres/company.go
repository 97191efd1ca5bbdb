package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frahmantamala/hr-directory/internal/auth"
	"github.com/frahmantamala/hr-directory/internal/company"
	companyDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/company"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) company.Repository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetByID(id string) (*company.Company, error) {
	var record companyDatamodel.Company
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return company.FromDataModel(&record), nil
}

// List applies the tenant scope before touching the table. Companies have no
// per-user owner, so an owner-only scope yields nothing.
func (r *CompanyRepository) List(scope auth.Scope) ([]*company.Company, error) {
	if scope.OwnerUserID != "" && scope.CompanyID == "" {
		return []*company.Company{}, nil
	}

	q := r.db.Order("created_at DESC")
	if scope.CompanyID != "" {
		q = q.Where("id = ?", scope.CompanyID)
	}

	var records []*companyDatamodel.Company
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}

	companies := make([]*company.Company, len(records))
	for i, record := range records {
		companies[i] = company.FromDataModel(record)
	}
	return companies, nil
}

func (r *CompanyRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&companyDatamodel.Company{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *CompanyRepository) Create(c *company.Company) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = company.StatusActive
	}

	record := company.ToDataModel(c)
	if err := r.db.Create(record).Error; err != nil {
		return err
	}

	c.CreatedAt = record.CreatedAt
	c.UpdatedAt = record.UpdatedAt
	return nil
}

func (r *CompanyRepository) Update(c *company.Company) error {
	c.UpdatedAt = time.Now()
	record := company.ToDataModel(c)
	return r.db.Save(record).Error
}

func (r *CompanyRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&companyDatamodel.Company{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("company not found")
	}
	return nil
}
