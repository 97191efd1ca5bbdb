package user

import (
	"log/slog"

	"github.com/frahmantamala/hr-directory/internal"
	"github.com/frahmantamala/hr-directory/internal/auth"
)

type Repository interface {
	GetByID(id string) (*User, error)
	List() ([]*User, error)
	EmailExists(email, excludeUserID string) (bool, error)
	CompanyExists(companyID string) (bool, error)
	Update(u *User) error
	UpdatePassword(id, hash string) error
}

// PasswordHasher hides the bcrypt details. Satisfied by the auth service so
// both packages hash the same way.
type PasswordHasher interface {
	HashPassword(plain string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo Repository, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// List returns every account. The route restricts this to superadmins.
func (s *Service) List(actor *auth.User) ([]*User, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, internal.NewInternalError("failed to list users", err)
	}
	return users, nil
}

// GetByID returns one account: self-service, or superadmin.
func (s *Service) GetByID(actor *auth.User, id string) (*User, error) {
	if !auth.CanAccessUser(actor, id) {
		return nil, internal.ErrForbidden
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

// Update mutates an account. Anyone may change their own email, name and
// password; role, company and active-flag changes stay with superadmins and
// are silently dropped for everyone else.
func (s *Service) Update(actor *auth.User, id string, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if !auth.CanAccessUser(actor, id) {
		return nil, internal.ErrForbidden
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	if dto.Email != nil && *dto.Email != u.Email {
		taken, err := s.repo.EmailExists(*dto.Email, u.ID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check email", err)
		}
		if taken {
			return nil, internal.ErrEmailTaken
		}
		u.Email = *dto.Email
	}
	if dto.FirstName != nil {
		u.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		u.LastName = *dto.LastName
	}

	if actor.Role == auth.RoleSuperAdmin {
		if dto.Role != nil {
			u.Role = *dto.Role
		}
		if !dto.Company.IsZero() {
			companyID := dto.Company.String()
			exists, err := s.repo.CompanyExists(companyID)
			if err != nil {
				return nil, internal.NewInternalError("failed to check company", err)
			}
			if !exists {
				return nil, internal.ErrCompanyNotFound
			}
			u.CompanyID = &companyID
		}
		if dto.IsActive != nil {
			u.IsActive = *dto.IsActive
		}
	}

	if err := s.repo.Update(u); err != nil {
		return nil, internal.NewInternalError("failed to update user", err)
	}

	if dto.Password != nil {
		hash, err := s.hasher.HashPassword(*dto.Password)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		if err := s.repo.UpdatePassword(u.ID, hash); err != nil {
			return nil, internal.NewInternalError("failed to update password", err)
		}
		s.logger.Info("user password changed", "user_id", u.ID, "by", actor.ID)
	}

	return u, nil
}
