package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleSuperAdmin, PermManageUsers))
	assert.True(t, HasPermission(RoleAdmin, PermManageSettings))
	assert.False(t, HasPermission(RoleAdmin, PermManageUsers))
	assert.True(t, HasPermission(RoleManager, PermManageInventory))
	assert.False(t, HasPermission(RoleManager, PermManageCorporate))
	assert.True(t, HasPermission(RoleCashier, PermManageBookings))
	assert.False(t, HasPermission(RoleCashier, PermManageStaff))
	assert.False(t, HasPermission(Role("Intern"), PermViewDashboard))
}

func TestPermissionsForRoleReturnsCopy(t *testing.T) {
	perms := PermissionsForRole(RoleCashier)
	assert.Equal(t, []string{PermViewDashboard, PermManageBookings}, perms)

	// Mutating the returned slice must not touch the role table.
	perms[0] = "tampered"
	assert.Equal(t, []string{PermViewDashboard, PermManageBookings}, PermissionsForRole(RoleCashier))
}

func TestPermissionsForRoleUnknownRole(t *testing.T) {
	assert.Empty(t, PermissionsForRole(Role("Intern")))
}
