package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frahmantamala/hr-directory/internal/auth"
	companyDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/company"
	employeeDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/hr-directory/internal/employee"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetByID(id string) (*employee.Employee, error) {
	var record employeeDatamodel.Employee
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return employee.FromDataModel(&record), nil
}

// List applies the tenant scope before touching the table.
func (r *EmployeeRepository) List(scope auth.Scope) ([]*employee.Employee, error) {
	q := r.db.Order("created_at DESC")
	if scope.CompanyID != "" {
		q = q.Where("company_id = ?", scope.CompanyID)
	}
	if scope.OwnerUserID != "" {
		q = q.Where("user_id = ?", scope.OwnerUserID)
	}

	var records []*employeeDatamodel.Employee
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}

	employees := make([]*employee.Employee, len(records))
	for i, record := range records {
		employees[i] = employee.FromDataModel(record)
	}
	return employees, nil
}

func (r *EmployeeRepository) CompanyExists(companyID string) (bool, error) {
	var count int64
	err := r.db.Model(&companyDatamodel.Company{}).
		Where("id = ?", companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *EmployeeRepository) Create(e *employee.Employee) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	record := employee.ToDataModel(e)
	if err := r.db.Create(record).Error; err != nil {
		return err
	}

	e.CreatedAt = record.CreatedAt
	e.UpdatedAt = record.UpdatedAt
	return nil
}

func (r *EmployeeRepository) Update(e *employee.Employee) error {
	e.UpdatedAt = time.Now()
	record := employee.ToDataModel(e)
	return r.db.Save(record).Error
}

func (r *EmployeeRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&employeeDatamodel.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("employee not found")
	}
	return nil
}
