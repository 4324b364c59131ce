package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-HR-Marketplace/models"
	"Sistem-HR-Marketplace/pkg/paseto"
	"Sistem-HR-Marketplace/pkg/timesheet"
	util "Sistem-HR-Marketplace/pkg/utils"
	"Sistem-HR-Marketplace/repository"
)

type AttendanceHandler struct {
	repo      repository.AttendanceRepository
	leaveRepo repository.LeaveRequestRepository
}

func NewAttendanceHandler(repo repository.AttendanceRepository, leaveRepo repository.LeaveRequestRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo, leaveRepo: leaveRepo}
}

// openCycle membuka siklus absensi baru untuk user pada hari ini.
// Ditolak kalau masih ada siklus yang belum di-checkout, atau user
// sedang dalam masa cuti yang sudah disetujui.
func (h *AttendanceHandler) openCycle(ctx context.Context, userID primitive.ObjectID, now time.Time) (*models.Attendance, int, string) {
	today := now.Format("2006-01-02")

	if leave, err := h.leaveRepo.FindApprovedRequestByUserAndDate(ctx, userID, today); err == nil && leave != nil {
		return nil, fiber.StatusConflict, "Anda sedang dalam masa " + leave.LeaveType + " yang sudah disetujui."
	}

	open, err := h.repo.FindOpenCycleByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, fiber.StatusInternalServerError, "Gagal memeriksa status absensi."
	}
	if open != nil {
		return nil, fiber.StatusConflict, "Anda masih memiliki check-in yang belum di-checkout."
	}

	newAttendance := models.Attendance{
		ID:             primitive.NewObjectID(),
		UserID:         userID,
		Date:           today,
		CheckInTime:    now,
		InOutStatus:    models.AttendanceIn,
		ApprovalStatus: models.ApprovalPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := h.repo.CreateAttendance(ctx, &newAttendance); err != nil {
		return nil, fiber.StatusInternalServerError, "Gagal melakukan check-in."
	}

	return &newAttendance, fiber.StatusCreated, "Berhasil check-in pukul " + now.Format("15:04")
}

// closeCycle menutup siklus absensi terbuka hari ini dan menghitung jam kerjanya.
func (h *AttendanceHandler) closeCycle(ctx context.Context, userID primitive.ObjectID, now time.Time) (*models.Attendance, int, string) {
	today := now.Format("2006-01-02")

	open, err := h.repo.FindOpenCycleByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, fiber.StatusInternalServerError, "Gagal memeriksa status absensi."
	}
	if open == nil {
		return nil, fiber.StatusBadRequest, "Tidak ada check-in aktif untuk di-checkout hari ini."
	}

	totalHours := timesheet.TotalHours(open.CheckInTime, now)
	if _, err := h.repo.CloseCycle(ctx, open.ID, now, totalHours); err != nil {
		return nil, fiber.StatusInternalServerError, "Gagal melakukan check-out."
	}

	open.CheckOutTime = &now
	open.TotalHours = totalHours
	open.InOutStatus = models.AttendanceOut

	return open, fiber.StatusOK, fmt.Sprintf("Berhasil check-out pukul %s (%.2f jam)", now.Format("15:04"), totalHours)
}

// CheckIn godoc
// @Summary Check In
// @Description Karyawan membuka siklus absensi hari ini. Ditolak kalau masih ada siklus terbuka.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 201 {object} object{message=string,attendance=models.Attendance}
// @Failure 409 {object} models.ErrorResponse
// @Router /attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendance, status, message := h.openCycle(ctx, claims.UserID, time.Now())
	if attendance == nil {
		return c.Status(status).JSON(fiber.Map{"error": message})
	}

	return c.Status(status).JSON(fiber.Map{
		"message":    message,
		"attendance": attendance,
	})
}

// CheckOut godoc
// @Summary Check Out
// @Description Karyawan menutup siklus absensi yang sedang terbuka. Jam kerja dihitung dari check-in sampai check-out.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,attendance=models.Attendance}
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendance, status, message := h.closeCycle(ctx, claims.UserID, time.Now())
	if attendance == nil {
		return c.Status(status).JSON(fiber.Map{"error": message})
	}

	return c.Status(status).JSON(fiber.Map{
		"message":    message,
		"attendance": attendance,
	})
}

// GetTodayProgress godoc
// @Summary Progress Jam Kerja Hari Ini
// @Description Total jam kerja hari ini dari semua siklus yang sudah ditutup, terhadap target 9 jam.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TodayProgress
// @Router /attendance/today-progress [get]
func (h *AttendanceHandler) GetTodayProgress(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	today := time.Now().Format("2006-01-02")
	cycles, err := h.repo.FindAllByUserAndDate(ctx, claims.UserID, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi hari ini"})
	}

	var closedHours []float64
	openCycle := false
	for _, cycle := range cycles {
		if cycle.InOutStatus == models.AttendanceOut {
			closedHours = append(closedHours, cycle.TotalHours)
		} else {
			openCycle = true
		}
	}

	total := timesheet.DailyTotal(closedHours)
	progress := models.TodayProgress{
		Date:            today,
		TotalHours:      total,
		TargetHours:     timesheet.TargetHours,
		ProgressPercent: timesheet.Progress(total),
		OpenCycle:       openCycle,
	}

	return c.Status(fiber.StatusOK).JSON(progress)
}

// GetMyAttendanceHistory godoc
// @Summary Riwayat Absensi Saya
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Attendance
// @Router /attendance/my-history [get]
func (h *AttendanceHandler) GetMyAttendanceHistory(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Tidak terautentikasi atau klaim token tidak valid",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendanceHistory, err := h.repo.FindAttendanceByUserID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil riwayat kehadiran",
		})
	}

	if attendanceHistory == nil {
		return c.Status(fiber.StatusOK).JSON([]models.Attendance{})
	}

	return c.Status(fiber.StatusOK).JSON(attendanceHistory)
}

// GetTodayAttendance godoc
// @Summary Daftar Absensi Hari Ini
// @Description Daftar absensi hari ini beserta detail karyawan (admin/HR)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AttendanceWithUser
// @Router /admin/attendance/today [get]
func (h *AttendanceHandler) GetTodayAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	attendanceList, err := h.repo.GetTodayAttendanceWithUserDetails(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil daftar kehadiran",
		})
	}

	if attendanceList == nil {
		return c.Status(fiber.StatusOK).JSON([]models.AttendanceWithUser{})
	}

	return c.Status(fiber.StatusOK).JSON(attendanceList)
}

// GetAllAttendances godoc
// @Summary Semua Riwayat Absensi
// @Description Seluruh riwayat absensi dengan pagination dan filter (admin/HR)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10)"
// @Param date query string false "Filter tanggal (YYYY-MM-DD)"
// @Param approval_status query string false "Filter status approval"
// @Success 200 {object} object{data=array,total=int,page=int,limit=int}
// @Router /admin/attendance [get]
func (h *AttendanceHandler) GetAllAttendances(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	date := c.Query("date", "")
	approvalStatus := c.Query("approval_status", "")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := bson.M{}
	if date != "" {
		filter["date"] = date
	}
	if approvalStatus != "" {
		filter["approval_status"] = approvalStatus
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	attendances, total, err := h.repo.GetAllAttendancesWithUserDetails(ctx, filter, int64(page), int64(limit))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat absensi"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  attendances,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// UpdateApprovalStatus godoc
// @Summary Review Absensi
// @Description Admin/HR menyetujui atau menolak catatan absensi
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID"
// @Param status body models.AttendanceApprovalPayload true "Keputusan approval"
// @Success 200 {object} object{message=string}
// @Router /admin/attendance/{id}/approval [put]
func (h *AttendanceHandler) UpdateApprovalStatus(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID absensi tidak valid"})
	}

	var payload models.AttendanceApprovalPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendance, err := h.repo.FindByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mencari catatan absensi"})
	}
	if attendance == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "catatan absensi tidak ditemukan"})
	}

	if _, err := h.repo.UpdateApprovalStatus(ctx, objID, payload.Status, payload.Note); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate status approval"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Status approval absensi berhasil diperbarui",
		"status":  payload.Status,
	})
}

// DeleteAttendance godoc
// @Summary Hapus Catatan Absensi
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID"
// @Success 200 {object} object{message=string}
// @Router /admin/attendance/{id} [delete]
func (h *AttendanceHandler) DeleteAttendance(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID absensi tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.repo.DeleteAttendance(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus catatan absensi"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "catatan absensi tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Catatan absensi berhasil dihapus"})
}

// GenerateQRCode godoc
// @Summary Generate QR Code Absensi
// @Description Admin membuat QR Code absensi yang berlaku untuk hari ini
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,qr_code_image=string,expires_at=string}
// @Router /admin/attendance/generate-qr [post]
func (h *AttendanceHandler) GenerateQRCode(c *fiber.Ctx) error {
	uniqueCode := uuid.New().String()
	today := time.Now()
	expiresAt := time.Date(today.Year(), today.Month(), today.Day(), 23, 0, 0, 0, today.Location())

	newQRCode := &models.QRCode{
		ID:        primitive.NewObjectID(),
		Code:      uniqueCode,
		Date:      today.Format("2006-01-02"),
		ExpiresAt: expiresAt,
		UsedBy:    []primitive.ObjectID{},
		CreatedAt: today,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.repo.CreateQRCode(ctx, newQRCode); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan data QR Code."})
	}

	png, err := qrcode.Encode(uniqueCode, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat gambar QR Code."})
	}

	encodedString := base64.StdEncoding.EncodeToString(png)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "QR Code berhasil dibuat",
		"qr_code_image": "data:image/png;base64," + encodedString,
		"expires_at":    expiresAt,
	})
}

// ScanQRCode godoc
// @Summary Scan QR Code Absensi
// @Description Scan QR Code untuk check-in atau check-out. Scan pertama membuka siklus, scan berikutnya menutupnya.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.QRCodeScanPayload true "Nilai QR Code"
// @Success 200 {object} object{message=string}
// @Router /attendance/scan [post]
func (h *AttendanceHandler) ScanQRCode(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	var payload models.QRCodeScanPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid: " + err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	qrCode, err := h.repo.FindQRCodeByValue(ctx, payload.QRCodeValue)
	if err != nil || qrCode == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR Code tidak ditemukan atau tidak valid."})
	}

	now := time.Now()
	if now.After(qrCode.ExpiresAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "QR Code sudah kadaluarsa."})
	}

	today := now.Format("2006-01-02")
	if qrCode.Date != today {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "QR Code ini tidak berlaku untuk hari ini."})
	}

	open, err := h.repo.FindOpenCycleByUserAndDate(ctx, claims.UserID, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa status absensi."})
	}

	var attendance *models.Attendance
	var status int
	var message string
	if open != nil {
		attendance, status, message = h.closeCycle(ctx, claims.UserID, now)
	} else {
		attendance, status, message = h.openCycle(ctx, claims.UserID, now)
	}
	if attendance == nil {
		return c.Status(status).JSON(fiber.Map{"error": message})
	}

	h.repo.MarkQRCodeAsUsed(ctx, qrCode.ID, claims.UserID)

	return c.Status(status).JSON(fiber.Map{"message": message})
}
