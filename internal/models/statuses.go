package models

// Role is the closed set of workforce roles. Set once at registration and
// immutable afterwards.
type Role string

// VerificationStatus is the lifecycle state gating dashboard access. It only
// ever moves pending -> approved or pending -> rejected, and only through the
// admin review queue.
type VerificationStatus string

// DashboardVariant names one of the four dashboard renditions.
type DashboardVariant string

const (
	RoleLabour           Role = "labour"
	RoleSupervisor       Role = "supervisor"
	RoleSiteManager      Role = "site_manager"
	RoleClientContractor Role = "client_contractor"

	StatusPending  VerificationStatus = "pending"
	StatusApproved VerificationStatus = "approved"
	StatusRejected VerificationStatus = "rejected"

	DashboardLabour      DashboardVariant = "labour"
	DashboardSupervisor  DashboardVariant = "supervisor"
	DashboardSiteManager DashboardVariant = "site_manager"
	DashboardClient      DashboardVariant = "client"
)

// Roles lists every member of the closed role set.
var Roles = []Role{RoleLabour, RoleSupervisor, RoleSiteManager, RoleClientContractor}

// ParseRole validates a raw role token against the closed set.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleLabour, RoleSupervisor, RoleSiteManager, RoleClientContractor:
		return Role(raw), true
	}
	return "", false
}

// ParseDashboardVariant validates a raw dashboard token (typically a path
// segment) against the four variants.
func ParseDashboardVariant(raw string) (DashboardVariant, bool) {
	switch DashboardVariant(raw) {
	case DashboardLabour, DashboardSupervisor, DashboardSiteManager, DashboardClient:
		return DashboardVariant(raw), true
	}
	return "", false
}

// Dashboard maps a role to its dashboard variant. The match is exhaustive
// over the closed role set; there is no catch-all dashboard.
func (r Role) Dashboard() (DashboardVariant, bool) {
	switch r {
	case RoleLabour:
		return DashboardLabour, true
	case RoleSupervisor:
		return DashboardSupervisor, true
	case RoleSiteManager:
		return DashboardSiteManager, true
	case RoleClientContractor:
		return DashboardClient, true
	}
	return "", false
}

// Terminal reports whether the status permits no further transitions.
func (s VerificationStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}
