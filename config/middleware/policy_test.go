package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Sistem-HR-Marketplace/models"
)

func TestRoleAllowsAdmin(t *testing.T) {
	assert.True(t, RoleAllows(models.RoleAdmin, OpUsersManage))
	assert.True(t, RoleAllows(models.RoleAdmin, OpWorkersApprove))
	assert.True(t, RoleAllows(models.RoleAdmin, OpLeaveReview))

	// Admin bukan customer: tidak membuat booking
	assert.False(t, RoleAllows(models.RoleAdmin, OpBookingsCreate))
}

func TestRoleAllowsHR(t *testing.T) {
	assert.True(t, RoleAllows(models.RoleHR, OpAttendanceReview))
	assert.True(t, RoleAllows(models.RoleHR, OpWorkersApprove))

	assert.False(t, RoleAllows(models.RoleHR, OpUsersManage))
	assert.False(t, RoleAllows(models.RoleHR, OpBookingsCreate))
}

func TestRoleAllowsKaryawan(t *testing.T) {
	assert.True(t, RoleAllows(models.RoleKaryawan, OpAttendanceSelf))
	assert.True(t, RoleAllows(models.RoleKaryawan, OpLeaveApply))
	assert.True(t, RoleAllows(models.RoleKaryawan, OpBookingsWorker))

	assert.False(t, RoleAllows(models.RoleKaryawan, OpAttendanceReview))
	assert.False(t, RoleAllows(models.RoleKaryawan, OpLeaveReview))
	assert.False(t, RoleAllows(models.RoleKaryawan, OpBookingsCreate))
}

func TestRoleAllowsCustomer(t *testing.T) {
	assert.True(t, RoleAllows(models.RoleCustomer, OpMarketplaceBrowse))
	assert.True(t, RoleAllows(models.RoleCustomer, OpBookingsCreate))
	assert.True(t, RoleAllows(models.RoleCustomer, OpBookingsCustomer))

	assert.False(t, RoleAllows(models.RoleCustomer, OpAttendanceSelf))
	assert.False(t, RoleAllows(models.RoleCustomer, OpUsersRead))
	assert.False(t, RoleAllows(models.RoleCustomer, OpBookingsWorker))
}

func TestRoleAllowsUnknown(t *testing.T) {
	assert.False(t, RoleAllows("superuser", OpUsersManage))
	assert.False(t, RoleAllows("", OpMarketplaceBrowse))
	assert.False(t, RoleAllows(models.RoleAdmin, "unknown:op"))
}
