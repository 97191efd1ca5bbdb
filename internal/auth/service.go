package auth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/hr-directory/internal"
)

// Repository is the credential-store view the auth service needs. GetByEmail is
// the only method allowed to surface the password hash.
type Repository interface {
	GetByEmail(email string) (*User, string, error)
	GetByID(userID string) (*User, error)
	GetCompanyStatus(companyID string) (string, error)
	CompanyExists(companyID string) (bool, error)
	EmailExists(email string) (bool, error)
	Create(u *User, passwordHash string) error
}

const (
	CompanyStatusActive    = "active"
	CompanyStatusSuspended = "suspended"
)

// Service authenticates credentials, registers accounts and resolves session
// tokens back into principals.
type Service struct {
	repo       Repository
	tokenGen   TokenGenerator
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		tokenGen:   tokenGen,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Authenticate validates credentials and returns the principal with a fresh
// session token. Unknown emails and wrong passwords produce the same error.
func (s *Service) Authenticate(dto LoginDTO) (*User, string, error) {
	if err := dto.Validate(); err != nil {
		return nil, "", err
	}

	user, storedHash, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		return nil, "", internal.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn("login attempt on deactivated account", "user_id", user.ID)
		return nil, "", internal.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(dto.Password)); err != nil {
		return nil, "", internal.ErrInvalidCredentials
	}

	if err := s.checkCompanyStatus(user); err != nil {
		return nil, "", err
	}

	token, err := s.tokenGen.GenerateToken(user.ID)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to issue token", err)
	}

	return user, token, nil
}

// Register creates a new account and logs it in. Role defaults to employee; a
// company binding must point at an existing company.
func (s *Service) Register(dto RegisterDTO) (*User, string, error) {
	if err := dto.Validate(); err != nil {
		return nil, "", err
	}

	taken, err := s.repo.EmailExists(dto.Email)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to check email", err)
	}
	if taken {
		return nil, "", internal.ErrEmailTaken
	}

	var companyID *string
	if !dto.CompanyID.IsZero() {
		id := dto.CompanyID.String()
		exists, err := s.repo.CompanyExists(id)
		if err != nil {
			return nil, "", internal.NewInternalError("failed to check company", err)
		}
		if !exists {
			return nil, "", internal.NewValidationError("Company not found", internal.ErrCodeInvalidCompanyID)
		}
		companyID = &id
	}

	role := dto.Role
	if role == "" {
		role = RoleEmployee
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Role:      role,
		CompanyID: companyID,
		IsActive:  true,
	}
	if err := s.repo.Create(user, hash); err != nil {
		return nil, "", internal.NewInternalError("failed to create user", err)
	}

	token, err := s.tokenGen.GenerateToken(user.ID)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to issue token", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role)

	return user, token, nil
}

// ResolveToken turns a bearer token into the acting principal. It rejects
// unknown and deactivated accounts, and re-checks the bound company's status on
// every call: a company suspended mid-session locks its members out immediately
// even though their token is still cryptographically valid.
func (s *Service) ResolveToken(tokenString string) (*User, error) {
	claims, err := s.tokenGen.ValidateToken(tokenString)
	if err != nil {
		return nil, internal.ErrInvalidToken
	}

	user, err := s.repo.GetByID(claims.UserID)
	if err != nil {
		return nil, internal.ErrInvalidToken
	}

	if !user.IsActive {
		return nil, internal.ErrUserInactive
	}

	if err := s.checkCompanyStatus(user); err != nil {
		return nil, err
	}

	return user, nil
}

// checkCompanyStatus blocks members of suspended companies. Superadmins are
// exempt, as are users without a company binding.
func (s *Service) checkCompanyStatus(user *User) error {
	if user.Role == RoleSuperAdmin || user.TenantID() == "" {
		return nil
	}

	status, err := s.repo.GetCompanyStatus(user.TenantID())
	if err != nil {
		// A dangling company binding should not grant access.
		return internal.NewInternalError("failed to check company status", err)
	}
	if status == CompanyStatusSuspended {
		s.logger.Warn("request blocked: company suspended", "user_id", user.ID, "company_id", user.TenantID())
		return internal.ErrTenantSuspended
	}
	return nil
}

// HashPassword creates a bcrypt hash of the password.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
