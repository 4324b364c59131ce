package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-HR-Marketplace/models"
	"Sistem-HR-Marketplace/pkg/paseto"
	util "Sistem-HR-Marketplace/pkg/utils"
	"Sistem-HR-Marketplace/pkg/workflow"
	"Sistem-HR-Marketplace/repository"
)

type LeaveRequestHandler struct {
	leaveRepo      repository.LeaveRequestRepository
	attendanceRepo repository.AttendanceRepository
}

func NewLeaveRequestHandler(leaveRepo repository.LeaveRequestRepository, attendanceRepo repository.AttendanceRepository) *LeaveRequestHandler {
	return &LeaveRequestHandler{
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
	}
}

// CreateLeaveRequest godoc
// @Summary Ajukan Cuti/Izin/Sakit
// @Tags Leave
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.LeaveRequestCreatePayload true "Data pengajuan"
// @Success 201 {object} models.LeaveRequest
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /leave-requests [post]
func (h *LeaveRequestHandler) CreateLeaveRequest(c *fiber.Ctx) error {
	var payload models.LeaveRequestCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	// Format ISO membuat perbandingan leksikal sama dengan kronologis.
	if payload.EndDate < payload.StartDate {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tanggal selesai tidak boleh sebelum tanggal mulai"})
	}

	newRequest := &models.LeaveRequest{
		ID:        primitive.NewObjectID(),
		UserID:    claims.UserID,
		LeaveType: payload.LeaveType,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		Reason:    payload.Reason,
		Status:    workflow.LeavePending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.leaveRepo.Create(ctx, newRequest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat pengajuan"})
	}

	return c.Status(fiber.StatusCreated).JSON(newRequest)
}

// GetAllLeaveRequests godoc
// @Summary Semua Pengajuan Cuti
// @Description Daftar seluruh pengajuan beserta detail pemohon (admin/HR)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LeaveRequestWithUser
// @Router /admin/leave-requests [get]
func (h *LeaveRequestHandler) GetAllLeaveRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	requests, err := h.leaveRepo.FindAll(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pengajuan"})
	}
	return c.Status(fiber.StatusOK).JSON(requests)
}

// GetMyLeaveRequests godoc
// @Summary Pengajuan Cuti Saya
// @Tags Leave
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LeaveRequest
// @Router /leave-requests/my [get]
func (h *LeaveRequestHandler) GetMyLeaveRequests(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	requests, err := h.leaveRepo.FindByUserID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat pengajuan"})
	}

	if requests == nil {
		return c.Status(fiber.StatusOK).JSON([]models.LeaveRequest{})
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}

// UploadAttachment godoc
// @Summary Upload Lampiran Pengajuan
// @Description Upload surat dokter atau dokumen pendukung ke pengajuan cuti
// @Tags Leave
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave Request ID"
// @Param attachment formData file true "File lampiran"
// @Success 200 {object} object{message=string,file_url=string}
// @Router /leave-requests/{id}/attachment [post]
func (h *LeaveRequestHandler) UploadAttachment(c *fiber.Ctx) error {
	id := c.Params("id")
	reqID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID pengajuan tidak valid"})
	}

	file, err := c.FormFile("attachment")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File tidak ditemukan"})
	}

	uniqueFileName := fmt.Sprintf("%d-%s", time.Now().Unix(), file.Filename)
	filePath := fmt.Sprintf("./uploads/attachments/%s", uniqueFileName)

	if err := c.SaveFile(file, filePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan file"})
	}

	fileURL := fmt.Sprintf("/uploads/attachments/%s", uniqueFileName)

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.leaveRepo.UpdateAttachmentURL(ctx, reqID, fileURL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan URL file ke database"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "File berhasil diunggah",
		"file_url": fileURL,
	})
}

// UpdateLeaveRequestStatus godoc
// @Summary Review Pengajuan Cuti
// @Description Admin/HR menyetujui atau menolak pengajuan. Pengajuan yang disetujui otomatis dicatat sebagai kehadiran.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave Request ID"
// @Param status body models.LeaveRequestUpdatePayload true "Keputusan"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/leave-requests/{id} [put]
func (h *LeaveRequestHandler) UpdateLeaveRequestStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	reqID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var payload models.LeaveRequestUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	request, err := h.leaveRepo.FindByID(ctx, reqID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mencari pengajuan"})
	}
	if request == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengajuan dengan ID ini tidak ditemukan"})
	}

	if err := workflow.TransitionLeave(request.Status, payload.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := h.leaveRepo.UpdateStatus(ctx, reqID, payload.Status, payload.Note); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui status"})
	}

	if payload.Status == workflow.LeaveApproved {
		startDate, _ := time.Parse("2006-01-02", request.StartDate)
		endDate, _ := time.Parse("2006-01-02", request.EndDate)

		for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
			attendanceRecord := &models.Attendance{
				ID:             primitive.NewObjectID(),
				UserID:         request.UserID,
				Date:           d.Format("2006-01-02"),
				InOutStatus:    models.AttendanceOut,
				ApprovalStatus: models.ApprovalApproved,
				Note:           fmt.Sprintf("%s disetujui: %s", request.LeaveType, request.Reason),
				CreatedAt:      time.Now(),
				UpdatedAt:      time.Now(),
			}
			h.attendanceRepo.CreateAttendance(ctx, attendanceRecord)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Status pengajuan berhasil diperbarui"})
}

// CancelLeaveRequest godoc
// @Summary Batalkan Pengajuan Cuti
// @Description Pemohon membatalkan pengajuannya sendiri selama masih pending
// @Tags Leave
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave Request ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Router /leave-requests/{id}/cancel [put]
func (h *LeaveRequestHandler) CancelLeaveRequest(c *fiber.Ctx) error {
	id := c.Params("id")
	reqID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	request, err := h.leaveRepo.FindByID(ctx, reqID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mencari pengajuan"})
	}
	if request == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengajuan dengan ID ini tidak ditemukan"})
	}

	if request.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Anda hanya dapat membatalkan pengajuan anda sendiri"})
	}

	if err := workflow.TransitionLeave(request.Status, workflow.LeaveCancelled); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := h.leaveRepo.UpdateStatus(ctx, reqID, workflow.LeaveCancelled, "Dibatalkan oleh pemohon"); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membatalkan pengajuan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Pengajuan berhasil dibatalkan"})
}
