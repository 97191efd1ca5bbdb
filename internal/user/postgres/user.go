package postgres

import (
	"time"

	"gorm.io/gorm"

	companyDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/company"
	userDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/user"
	"github.com/frahmantamala/hr-directory/internal/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id string) (*user.User, error) {
	var record userDatamodel.User
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return user.FromDataModel(&record), nil
}

func (r *UserRepository) List() ([]*user.User, error) {
	var records []*userDatamodel.User
	if err := r.db.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, len(records))
	for i, record := range records {
		users[i] = user.FromDataModel(record)
	}
	return users, nil
}

func (r *UserRepository) EmailExists(email, excludeUserID string) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).
		Where("email = ? AND id <> ?", email, excludeUserID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) CompanyExists(companyID string) (bool, error) {
	var count int64
	err := r.db.Model(&companyDatamodel.Company{}).
		Where("id = ?", companyID).
		Count(&count).Error
	return count > 0, err
}

// Update writes the mutable account fields. The password hash has its own
// path so a profile update can never blank it.
func (r *UserRepository) Update(u *user.User) error {
	u.UpdatedAt = time.Now()
	return r.db.Model(&userDatamodel.User{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"email":      u.Email,
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"role":       u.Role,
			"company_id": u.CompanyID,
			"is_active":  u.IsActive,
			"updated_at": u.UpdatedAt,
		}).Error
}

func (r *UserRepository) UpdatePassword(id, hash string) error {
	return r.db.Model(&userDatamodel.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash": hash,
			"updated_at":    time.Now(),
		}).Error
}
