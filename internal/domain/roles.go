package domain

// Role is an admin-panel role. The set is the union of the two role schemes
// the dashboard shipped with.
type Role string

const (
	RoleSuperAdmin     Role = "Super Admin"
	RoleAdmin          Role = "Admin"
	RoleManager        Role = "Manager"
	RoleServiceAdvisor Role = "Service Advisor"
	RoleCashier        Role = "Cashier"
)

// IsValidRole reports whether r is a known role.
func IsValidRole(r Role) bool {
	_, ok := rolePermissions[r]
	return ok
}

// Permission names, one per dashboard area plus user management.
const (
	PermViewDashboard   = "view_dashboard"
	PermManageBookings  = "manage_bookings"
	PermManageInventory = "manage_inventory"
	PermManageStaff     = "manage_staff"
	PermManageCorporate = "manage_corporate"
	PermViewReports     = "view_reports"
	PermManageSettings  = "manage_settings"
	PermManageUsers     = "manage_users"
)

var rolePermissions = map[Role][]string{
	RoleSuperAdmin: {
		PermViewDashboard, PermManageBookings, PermManageInventory,
		PermManageStaff, PermManageCorporate, PermViewReports,
		PermManageSettings, PermManageUsers,
	},
	RoleAdmin: {
		PermViewDashboard, PermManageBookings, PermManageInventory,
		PermManageStaff, PermManageCorporate, PermViewReports,
		PermManageSettings,
	},
	RoleManager: {
		PermViewDashboard, PermManageBookings, PermManageInventory,
		PermManageStaff, PermViewReports,
	},
	RoleServiceAdvisor: {
		PermViewDashboard, PermManageBookings, PermManageStaff,
	},
	RoleCashier: {
		PermViewDashboard, PermManageBookings,
	},
}

// PermissionsForRole returns the permissions role grants, in a copy the
// caller may keep.
func PermissionsForRole(role Role) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether role grants permission.
func HasPermission(role Role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
