package middleware

import (
	"Sistem-HR-Marketplace/models"
	"Sistem-HR-Marketplace/pkg/paseto"

	"github.com/gofiber/fiber/v2"
)

// Operasi yang dikenal aplikasi. Setiap endpoint dijaga oleh satu operasi.
const (
	OpUsersManage       = "users:manage"
	OpUsersRead         = "users:read"
	OpDashboardRead     = "dashboard:read"
	OpDepartmentsManage = "departments:manage"
	OpDepartmentsRead   = "departments:read"
	OpSchedulesManage   = "schedules:manage"
	OpSchedulesRead     = "schedules:read"
	OpAttendanceSelf    = "attendance:self"
	OpAttendanceReview  = "attendance:review"
	OpLeaveApply        = "leave:apply"
	OpLeaveReview       = "leave:review"
	OpWorkersApprove    = "workers:approve"
	OpMarketplaceBrowse = "marketplace:browse"
	OpBookingsCreate    = "bookings:create"
	OpBookingsCustomer  = "bookings:customer"
	OpBookingsWorker    = "bookings:worker"
)

// rolePermissions adalah tabel kapabilitas tunggal: role -> operasi yang diizinkan.
// Semua pengecekan role lewat tabel ini, tidak ada cek role ad-hoc di handler.
var rolePermissions = map[string][]string{
	models.RoleAdmin: {
		OpUsersManage, OpUsersRead, OpDashboardRead,
		OpDepartmentsManage, OpDepartmentsRead,
		OpSchedulesManage, OpSchedulesRead,
		OpAttendanceSelf, OpAttendanceReview,
		OpLeaveApply, OpLeaveReview,
		OpWorkersApprove, OpMarketplaceBrowse,
	},
	models.RoleHR: {
		OpUsersRead, OpDashboardRead,
		OpDepartmentsManage, OpDepartmentsRead,
		OpSchedulesManage, OpSchedulesRead,
		OpAttendanceSelf, OpAttendanceReview,
		OpLeaveApply, OpLeaveReview,
		OpWorkersApprove,
	},
	models.RoleKaryawan: {
		OpDepartmentsRead, OpSchedulesRead,
		OpAttendanceSelf, OpLeaveApply,
		OpBookingsWorker, OpMarketplaceBrowse,
	},
	models.RoleCustomer: {
		OpMarketplaceBrowse, OpBookingsCreate, OpBookingsCustomer,
	},
}

func RoleAllows(role, operation string) bool {
	for _, op := range rolePermissions[role] {
		if op == operation {
			return true
		}
	}
	return false
}

// RequirePermission memeriksa tabel kapabilitas sekali per request.
func RequirePermission(operation string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*paseto.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
		}

		if !RoleAllows(claims.Role, operation) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak. Role Anda tidak memiliki izin untuk operasi ini"})
		}

		return c.Next()
	}
}
