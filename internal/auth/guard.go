package auth

// Tenant guard: per-record access decisions and the query scope applied before
// any list operation. Repositories MUST apply Scope first; the per-record
// checks are a second layer, not a substitute for filtering at the query
// boundary.

// Scope is the filter a repository applies before listing records. Zero fields
// mean unrestricted.
type Scope struct {
	CompanyID   string
	OwnerUserID string
}

func (s Scope) Unrestricted() bool {
	return s.CompanyID == "" && s.OwnerUserID == ""
}

// ScopeFor returns the visibility filter for the principal: everything for a
// superadmin, own company for a company_admin, own records for an employee.
func ScopeFor(u *User) Scope {
	switch u.Role {
	case RoleSuperAdmin:
		return Scope{}
	case RoleCompanyAdmin:
		return Scope{CompanyID: u.TenantID()}
	default:
		return Scope{OwnerUserID: u.ID}
	}
}

// CanAccessCompany reports whether the principal may read or mutate the given
// company record. Employees never operate on company records directly.
func CanAccessCompany(u *User, companyID string) bool {
	switch u.Role {
	case RoleSuperAdmin:
		return true
	case RoleCompanyAdmin:
		return u.TenantID() != "" && u.TenantID() == companyID
	default:
		return false
	}
}

// CanAccessEmployeeRecord reports whether the principal may touch an employee
// record belonging to companyID and optionally bound to a user account.
// Employees may only touch records bound to their own account.
func CanAccessEmployeeRecord(u *User, companyID string, ownerUserID *string) bool {
	switch u.Role {
	case RoleSuperAdmin:
		return true
	case RoleCompanyAdmin:
		return u.TenantID() != "" && u.TenantID() == companyID
	case RoleEmployee:
		return ownerUserID != nil && *ownerUserID == u.ID
	default:
		return false
	}
}

// CanAccessUser reports whether the actor may read or update the target user
// account: self-service, or superadmin.
func CanAccessUser(actor *User, targetUserID string) bool {
	if actor.Role == RoleSuperAdmin {
		return true
	}
	return actor.ID == targetUserID
}
