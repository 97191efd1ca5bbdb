package employee

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/hr-directory/internal"
	"github.com/frahmantamala/hr-directory/internal/auth"
	"github.com/frahmantamala/hr-directory/internal/media"
)

type Repository interface {
	GetByID(id string) (*Employee, error)
	List(scope auth.Scope) ([]*Employee, error)
	CompanyExists(companyID string) (bool, error)
	Create(e *Employee) error
	Update(e *Employee) error
	Delete(id string) error
}

type Service struct {
	repo      Repository
	mediaHost media.Store
	logger    *slog.Logger
}

func NewService(repo Repository, mediaHost media.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		mediaHost: mediaHost,
		logger:    logger,
	}
}

// List returns the employee cards visible to the actor: all of them for a
// superadmin, the tenant's for a company_admin, the actor's own for an
// employee. The filter is applied at the query boundary.
func (s *Service) List(actor *auth.User) ([]*Employee, error) {
	employees, err := s.repo.List(auth.ScopeFor(actor))
	if err != nil {
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	return employees, nil
}

// ListByCompany returns one company's directory. Non-superadmins may only ask
// for their own tenant.
func (s *Service) ListByCompany(actor *auth.User, companyID string) ([]*Employee, error) {
	exists, err := s.repo.CompanyExists(companyID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check company", err)
	}
	if !exists {
		return nil, internal.ErrCompanyNotFound
	}

	if actor.Role != auth.RoleSuperAdmin && actor.TenantID() != companyID {
		return nil, internal.ErrCrossTenantAccess
	}

	employees, err := s.repo.List(auth.Scope{CompanyID: companyID})
	if err != nil {
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	return employees, nil
}

// GetPublic fetches one card with no authentication at all. This backs the
// NFC/QR business-card flow: anyone holding the id sees the full card.
func (s *Service) GetPublic(id string) (*Employee, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return e, nil
}

// Create adds a card. Company admins may only create into their own tenant
// and naming another company is rejected; superadmins must name a company
// explicitly.
func (s *Service) Create(ctx context.Context, actor *auth.User, dto CreateEmployeeDTO, avatar, background *media.File) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	var companyID string
	switch actor.Role {
	case auth.RoleCompanyAdmin:
		companyID = actor.TenantID()
		if companyID == "" {
			return nil, internal.ErrForbidden
		}
		if target := dto.Company.String(); target != "" && target != companyID {
			return nil, internal.ErrCrossTenantAccess
		}
	case auth.RoleSuperAdmin:
		companyID = dto.Company.String()
		if companyID == "" {
			return nil, internal.NewValidationError("company is required", internal.ErrCodeValidationFailed)
		}
	default:
		return nil, internal.ErrForbidden
	}

	exists, err := s.repo.CompanyExists(companyID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check company", err)
	}
	if !exists {
		return nil, internal.ErrCompanyNotFound
	}

	e := &Employee{
		CompanyID:      companyID,
		UserID:         dto.UserID,
		Name:           dto.Name,
		Surname:        dto.Surname,
		Patronymic:     dto.Patronymic,
		Role:           dto.Role,
		Agency:         dto.Agency,
		Email:          dto.Email,
		Phone:          dto.Phone,
		HomePhone:      dto.HomePhone,
		WorkPhone:      dto.WorkPhone,
		InsuranceAgent: dto.InsuranceAgent,
		PersonalSite:   dto.PersonalSite,
		BirthDate:      dto.BirthDate,
		CorporateEmail: dto.CorporateEmail,
		HomeAddress:    dto.HomeAddress,
		Facebook:       dto.Facebook,
		X:              dto.X,
		Linkedin:       dto.Linkedin,
		Instagram:      dto.Instagram,
		Github:         dto.Github,
		ICQ:            dto.ICQ,
		Title:          dto.Title,
	}

	if avatar != nil {
		url, err := s.mediaHost.Upload(ctx, avatar.Body, avatar.ContentType, media.FolderEmployeeAvatars)
		if err != nil {
			return nil, internal.NewInternalError("failed to upload avatar", err)
		}
		e.Avatar = &url
	}
	if background != nil {
		url, err := s.mediaHost.Upload(ctx, background.Body, background.ContentType, media.FolderEmployeeBackgrounds)
		if err != nil {
			return nil, internal.NewInternalError("failed to upload background", err)
		}
		e.Background = &url
	}

	if err := s.repo.Create(e); err != nil {
		return nil, internal.NewInternalError("failed to create employee", err)
	}

	s.logger.Info("employee created", "employee_id", e.ID, "company_id", e.CompanyID, "by", actor.ID)
	return e, nil
}

// Update mutates a card. An employee may only edit the card bound to their own
// account; moving a card between companies is a superadmin operation and is
// silently ignored for everyone else.
func (s *Service) Update(ctx context.Context, actor *auth.User, id string, dto UpdateEmployeeDTO, avatar *media.File) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound
	}

	if err := s.guard(actor, e); err != nil {
		return nil, err
	}

	if !dto.Company.IsZero() && actor.Role == auth.RoleSuperAdmin {
		target := dto.Company.String()
		exists, err := s.repo.CompanyExists(target)
		if err != nil {
			return nil, internal.NewInternalError("failed to check company", err)
		}
		if !exists {
			return nil, internal.ErrCompanyNotFound
		}
		e.CompanyID = target
	}

	if avatar != nil {
		if e.Avatar != nil {
			s.deleteMedia(ctx, *e.Avatar)
		}
		url, err := s.mediaHost.Upload(ctx, avatar.Body, avatar.ContentType, media.FolderEmployeeAvatars)
		if err != nil {
			return nil, internal.NewInternalError("failed to upload avatar", err)
		}
		e.Avatar = &url
	}

	applyStringUpdates(e, dto)

	if err := s.repo.Update(e); err != nil {
		return nil, internal.NewInternalError("failed to update employee", err)
	}

	return e, nil
}

// UpdateBackground swaps the card's background image. The old object's
// deletion is best-effort, the new upload is not.
func (s *Service) UpdateBackground(ctx context.Context, actor *auth.User, id string, background *media.File) (*Employee, error) {
	if background == nil {
		return nil, internal.NewValidationError("background image is required", internal.ErrCodeValidationFailed)
	}

	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrEmployeeNotFound
	}

	if err := s.guard(actor, e); err != nil {
		return nil, err
	}

	if e.Background != nil {
		s.deleteMedia(ctx, *e.Background)
	}
	url, err := s.mediaHost.Upload(ctx, background.Body, background.ContentType, media.FolderEmployeeBackgrounds)
	if err != nil {
		return nil, internal.NewInternalError("failed to upload background", err)
	}
	e.Background = &url

	if err := s.repo.Update(e); err != nil {
		return nil, internal.NewInternalError("failed to update employee", err)
	}

	return e, nil
}

// Delete removes a card. Media cleanup runs first but never blocks the
// removal.
func (s *Service) Delete(ctx context.Context, actor *auth.User, id string) error {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return internal.ErrEmployeeNotFound
	}

	if err := s.guard(actor, e); err != nil {
		return err
	}

	if e.Avatar != nil {
		s.deleteMedia(ctx, *e.Avatar)
	}
	if e.Background != nil {
		s.deleteMedia(ctx, *e.Background)
	}

	if err := s.repo.Delete(e.ID); err != nil {
		return internal.NewInternalError("failed to delete employee", err)
	}

	s.logger.Info("employee deleted", "employee_id", e.ID, "company_id", e.CompanyID, "by", actor.ID)
	return nil
}

func (s *Service) guard(actor *auth.User, e *Employee) error {
	if auth.CanAccessEmployeeRecord(actor, e.CompanyID, e.UserID) {
		return nil
	}
	if actor.Role == auth.RoleCompanyAdmin {
		return internal.ErrCrossTenantAccess
	}
	return internal.ErrForbidden
}

func (s *Service) deleteMedia(ctx context.Context, url string) {
	if err := s.mediaHost.Delete(ctx, url); err != nil {
		s.logger.Warn("failed to delete media object, continuing", "url", url, "error", err)
	}
}

func applyStringUpdates(e *Employee, dto UpdateEmployeeDTO) {
	if dto.Name != nil {
		e.Name = *dto.Name
	}
	if dto.Surname != nil {
		e.Surname = *dto.Surname
	}
	if dto.Patronymic != nil {
		e.Patronymic = *dto.Patronymic
	}
	if dto.Role != nil {
		e.Role = *dto.Role
	}
	if dto.Agency != nil {
		e.Agency = *dto.Agency
	}
	if dto.Email != nil {
		e.Email = *dto.Email
	}
	if dto.Phone != nil {
		e.Phone = *dto.Phone
	}
	if dto.HomePhone != nil {
		e.HomePhone = *dto.HomePhone
	}
	if dto.WorkPhone != nil {
		e.WorkPhone = *dto.WorkPhone
	}
	if dto.InsuranceAgent != nil {
		e.InsuranceAgent = *dto.InsuranceAgent
	}
	if dto.PersonalSite != nil {
		e.PersonalSite = *dto.PersonalSite
	}
	if dto.BirthDate != nil {
		e.BirthDate = *dto.BirthDate
	}
	if dto.CorporateEmail != nil {
		e.CorporateEmail = *dto.CorporateEmail
	}
	if dto.HomeAddress != nil {
		e.HomeAddress = *dto.HomeAddress
	}
	if dto.Facebook != nil {
		e.Facebook = *dto.Facebook
	}
	if dto.X != nil {
		e.X = *dto.X
	}
	if dto.Linkedin != nil {
		e.Linkedin = *dto.Linkedin
	}
	if dto.Instagram != nil {
		e.Instagram = *dto.Instagram
	}
	if dto.Github != nil {
		e.Github = *dto.Github
	}
	if dto.ICQ != nil {
		e.ICQ = *dto.ICQ
	}
	if dto.Title != nil {
		e.Title = *dto.Title
	}
}
