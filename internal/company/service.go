package company

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/hr-directory/internal"
	"github.com/frahmantamala/hr-directory/internal/auth"
	"github.com/frahmantamala/hr-directory/internal/media"
)

type Repository interface {
	GetByID(id string) (*Company, error)
	List(scope auth.Scope) ([]*Company, error)
	EmailExists(email string) (bool, error)
	Create(c *Company) error
	Update(c *Company) error
	Delete(id string) error
}

// AccountRegistrar creates the admin account during public company
// registration. Satisfied by the auth service.
type AccountRegistrar interface {
	Register(dto auth.RegisterDTO) (*auth.User, string, error)
}

type Service struct {
	repo      Repository
	accounts  AccountRegistrar
	mediaHost media.Store
	logger    *slog.Logger
}

func NewService(repo Repository, accounts AccountRegistrar, mediaHost media.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		accounts:  accounts,
		mediaHost: mediaHost,
		logger:    logger,
	}
}

// List returns the companies visible to the actor, filtered at the query
// boundary via the tenant scope.
func (s *Service) List(actor *auth.User) ([]*Company, error) {
	scope := auth.ScopeFor(actor)
	if actor.Role == auth.RoleEmployee {
		// Companies have no per-user owner; the closest meaningful filter for
		// an employee is their own company membership.
		if actor.TenantID() == "" {
			return []*Company{}, nil
		}
		scope = auth.Scope{CompanyID: actor.TenantID()}
	}

	companies, err := s.repo.List(scope)
	if err != nil {
		return nil, internal.NewInternalError("failed to list companies", err)
	}
	return companies, nil
}

// GetByID returns one company. Reads are open to any member of the company and
// to superadmins; a company_admin of another tenant is rejected.
func (s *Service) GetByID(actor *auth.User, id string) (*Company, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrCompanyNotFound
	}

	if actor.Role == auth.RoleCompanyAdmin && !auth.CanAccessCompany(actor, c.ID) {
		return nil, internal.ErrCrossTenantAccess
	}

	return c, nil
}

// RegisterPublic creates a company together with its first company_admin
// account and logs that account in. This is the unauthenticated signup path.
func (s *Service) RegisterPublic(dto RegisterCompanyDTO) (*Company, *auth.User, string, error) {
	if err := dto.Validate(); err != nil {
		return nil, nil, "", err
	}

	taken, err := s.repo.EmailExists(dto.Email)
	if err != nil {
		return nil, nil, "", internal.NewInternalError("failed to check company email", err)
	}
	if taken {
		return nil, nil, "", internal.ErrEmailTaken
	}

	c := &Company{
		Name:   dto.Name,
		Email:  dto.Email,
		Status: StatusActive,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, nil, "", internal.NewInternalError("failed to create company", err)
	}

	user, token, err := s.accounts.Register(auth.RegisterDTO{
		Email:     dto.Email,
		Password:  dto.Password,
		Role:      auth.RoleCompanyAdmin,
		CompanyID: auth.CompanyRef(c.ID),
	})
	if err != nil {
		// Leave the company row in place, matching the storage layer's
		// single-document atomicity: the admin can be created later.
		s.logger.Error("company registered but admin account creation failed", "company_id", c.ID, "error", err)
		return nil, nil, "", err
	}

	s.logger.Info("company registered", "company_id", c.ID, "admin_user_id", user.ID)

	return c, user, token, nil
}

// Create adds a company on behalf of a superadmin (the route enforces the
// role).
func (s *Service) Create(actor *auth.User, dto CreateCompanyDTO) (*Company, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.EmailExists(dto.Email)
	if err != nil {
		return nil, internal.NewInternalError("failed to check company email", err)
	}
	if taken {
		return nil, internal.ErrEmailTaken
	}

	actorID := actor.ID
	c := &Company{
		Name:         dto.Name,
		Email:        dto.Email,
		Phone:        dto.Phone,
		Address:      dto.Address,
		City:         dto.City,
		PostalCode:   dto.PostalCode,
		Country:      dto.Country,
		Website:      dto.Website,
		Sector:       dto.Sector,
		Size:         dto.Size,
		Type:         dto.Type,
		Color:        dto.Color,
		QRColor:      dto.QRColor,
		CreationYear: dto.CreationYear,
		Status:       StatusActive,
		CreatedBy:    &actorID,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, internal.NewInternalError("failed to create company", err)
	}

	return c, nil
}

// Update mutates a company. The logo, when present, replaces the previous one:
// the old object's deletion is best-effort, the new upload is not.
func (s *Service) Update(ctx context.Context, actor *auth.User, id string, dto UpdateCompanyDTO, logo *media.File) (*Company, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrCompanyNotFound
	}

	if !auth.CanAccessCompany(actor, c.ID) {
		return nil, internal.ErrCrossTenantAccess
	}

	if logo != nil {
		if c.Logo != nil {
			s.deleteMedia(ctx, *c.Logo)
		}
		url, err := s.mediaHost.Upload(ctx, logo.Body, logo.ContentType, media.FolderCompanyLogos)
		if err != nil {
			return nil, internal.NewInternalError("failed to upload logo", err)
		}
		c.Logo = &url
	}

	applyStringUpdates(c, dto)

	if dto.Status != nil && actor.Role == auth.RoleSuperAdmin {
		c.Status = *dto.Status
	}

	if err := s.repo.Update(c); err != nil {
		return nil, internal.NewInternalError("failed to update company", err)
	}

	return c, nil
}

// Delete removes a company. Media cleanup runs first but never blocks the
// removal: the record is the source of truth.
func (s *Service) Delete(ctx context.Context, actor *auth.User, id string) error {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return internal.ErrCompanyNotFound
	}

	if c.Logo != nil {
		s.deleteMedia(ctx, *c.Logo)
	}

	if err := s.repo.Delete(c.ID); err != nil {
		return internal.NewInternalError("failed to delete company", err)
	}

	s.logger.Info("company deleted", "company_id", c.ID, "deleted_by", actor.ID)
	return nil
}

// ToggleStatus flips a company between active and suspended. Suspension locks
// out every non-superadmin member on their next request.
func (s *Service) ToggleStatus(actor *auth.User, id string) (*Company, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrCompanyNotFound
	}

	if c.Status == StatusActive {
		c.Status = StatusSuspended
	} else {
		c.Status = StatusActive
	}

	if err := s.repo.Update(c); err != nil {
		return nil, internal.NewInternalError("failed to update company status", err)
	}

	s.logger.Info("company status toggled", "company_id", c.ID, "status", c.Status, "by", actor.ID)
	return c, nil
}

func (s *Service) deleteMedia(ctx context.Context, url string) {
	if err := s.mediaHost.Delete(ctx, url); err != nil {
		s.logger.Warn("failed to delete media object, continuing", "url", url, "error", err)
	}
}

func applyStringUpdates(c *Company, dto UpdateCompanyDTO) {
	if dto.Name != nil && *dto.Name != "" {
		c.Name = *dto.Name
	}
	if dto.Email != nil && *dto.Email != "" {
		c.Email = *dto.Email
	}
	if dto.Phone != nil {
		c.Phone = *dto.Phone
	}
	if dto.Address != nil {
		c.Address = *dto.Address
	}
	if dto.City != nil {
		c.City = *dto.City
	}
	if dto.PostalCode != nil {
		c.PostalCode = *dto.PostalCode
	}
	if dto.Country != nil {
		c.Country = *dto.Country
	}
	if dto.Website != nil {
		c.Website = *dto.Website
	}
	if dto.Sector != nil && *dto.Sector != "" {
		c.Sector = *dto.Sector
	}
	if dto.Size != nil && *dto.Size != "" {
		c.Size = *dto.Size
	}
	if dto.Type != nil && *dto.Type != "" {
		c.Type = *dto.Type
	}
	if dto.Color != nil && *dto.Color != "" {
		c.Color = *dto.Color
	}
	if dto.QRColor != nil && *dto.QRColor != "" {
		c.QRColor = *dto.QRColor
	}
	if dto.CreationYear != nil {
		c.CreationYear = *dto.CreationYear
	}
}
