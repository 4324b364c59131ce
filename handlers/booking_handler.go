package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-HR-Marketplace/models"
	"Sistem-HR-Marketplace/pkg/availability"
	"Sistem-HR-Marketplace/pkg/paseto"
	util "Sistem-HR-Marketplace/pkg/utils"
	"Sistem-HR-Marketplace/pkg/workflow"
	"Sistem-HR-Marketplace/repository"
)

type BookingHandler struct {
	bookingRepo repository.BookingRepository
	userRepo    *repository.UserRepository
}

func NewBookingHandler(bookingRepo repository.BookingRepository, userRepo *repository.UserRepository) *BookingHandler {
	return &BookingHandler{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

// CreateBooking godoc
// @Summary Buat Booking
// @Description Customer membuat booking atas worker yang sudah diterima di marketplace
// @Tags Booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.BookingCreatePayload true "Data booking"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.Fail("Tidak terautentikasi atau klaim token tidak valid"))
	}

	var payload models.BookingCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("Payload tidak valid"))
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	workerID, err := primitive.ObjectIDFromHex(payload.WorkerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("format ID worker tidak valid"))
	}

	if payload.PreferredDate < time.Now().Format("2006-01-02") {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("Tanggal booking tidak boleh di masa lalu"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	worker, err := h.userRepo.FindUserByID(ctx, workerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Fail("Gagal mencari worker"))
	}
	if worker == nil || worker.Role != models.RoleKaryawan {
		return c.Status(fiber.StatusNotFound).JSON(models.Fail("Worker tidak ditemukan"))
	}
	if worker.ApplicationStatus != models.ApplicationAccepted {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("Worker ini belum tersedia untuk dibooking"))
	}

	customer, err := h.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil || customer == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Fail("Gagal mengambil data customer"))
	}

	booking := &models.Booking{
		ID:            primitive.NewObjectID(),
		ReferenceCode: uuid.New().String(),
		WorkerID:      workerID,
		CustomerEmail: customer.Email,
		CustomerName:  customer.Name,
		PreferredDate: payload.PreferredDate,
		PreferredTime: payload.PreferredTime,
		JobDetail:     payload.JobDetail,
		Status:        workflow.BookingPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if _, err := h.bookingRepo.Create(ctx, booking); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Fail("Gagal membuat booking"))
	}

	// Notifikasi ke worker best-effort saja.
	log.Printf("Notifikasi: booking baru %s untuk worker %s pada %s", booking.ReferenceCode, worker.Email, booking.PreferredDate)

	return c.Status(fiber.StatusCreated).JSON(models.OKWithMessage("Booking berhasil dibuat", booking))
}

// GetMyBookings godoc
// @Summary Booking Saya (Customer)
// @Description Daftar booking milik customer yang sedang login, beserta detail worker
// @Tags Booking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse
// @Router /bookings/my [get]
func (h *BookingHandler) GetMyBookings(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.Fail("Tidak terautentikasi atau klaim token tidak valid"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	bookings, err := h.bookingRepo.FindByCustomerEmail(ctx, claims.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Fail("Gagal mengambil daftar booking"))
	}

	if bookings == nil {
		bookings = []models.BookingWithWorker{}
	}

	return c.Status(fiber.StatusOK).JSON(models.OK(bookings))
}

// GetWorkerBookings godoc
// @Summary Booking Masuk (Worker)
// @Description Daftar booking yang ditujukan ke worker yang sedang login
// @Tags Booking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse
// @Router /bookings/worker [get]
func (h *BookingHandler) GetWorkerBookings(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.Fail("Tidak terautentikasi atau klaim token tidak valid"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.bookingRepo.FindByWorkerID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Fail("Gagal mengambil daftar booking"))
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}

	return c.Status(fiber.StatusOK).JSON(models.OK(bookings))
}

// UpdateBookingStatus godoc
// @Summary Ubah Status Booking
// @Description Worker menerima/menolak/menyelesaikan booking miliknya; customer dapat membatalkan bookingnya. Transisi status divalidasi.
// @Tags Booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param status body models.BookingStatusPayload true "Status baru"
// @Success 200 {object} models.APIResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.Fail("Tidak terautentikasi atau klaim token tidak valid"))
	}

	idParam := c.Params("id")
	bookingID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("format ID booking tidak valid"))
	}

	var payload models.BookingStatusPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("Payload tidak valid"))
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	booking, err := h.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Fail("Gagal mencari booking"))
	}
	if booking == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Fail("Booking tidak ditemukan"))
	}

	// Pembatalan hanya oleh customer pemilik, status lain hanya oleh worker yang dibooking.
	if payload.Status == workflow.BookingCancelled {
		if claims.Role != models.RoleCustomer || booking.CustomerEmail != claims.Email {
			return c.Status(fiber.StatusForbidden).JSON(models.Fail("Hanya customer pemilik booking yang dapat membatalkan"))
		}
	} else {
		if booking.WorkerID != claims.UserID {
			return c.Status(fiber.StatusForbidden).JSON(models.Fail("Hanya worker yang dibooking yang dapat mengubah status ini"))
		}
	}

	if err := workflow.TransitionBooking(booking.Status, payload.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail(err.Error()))
	}

	if payload.Status == workflow.BookingAccepted {
		existing, err := h.bookingRepo.FindAcceptedByWorkerAndDate(ctx, booking.WorkerID, booking.PreferredDate)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.Fail("Gagal memeriksa jadwal worker"))
		}
		if existing != nil && existing.ID != booking.ID {
			return c.Status(fiber.StatusConflict).JSON(models.Fail(fmt.Sprintf("Worker sudah memiliki booking yang diterima pada tanggal %s", booking.PreferredDate)))
		}
	}

	if _, err := h.bookingRepo.UpdateStatus(ctx, bookingID, payload.Status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Fail("Gagal memperbarui status booking"))
	}

	// Notifikasi email ke customer best-effort saja, kegagalan tidak menggagalkan request.
	log.Printf("Notifikasi: booking %s untuk %s berubah menjadi %s", booking.ReferenceCode, booking.CustomerEmail, payload.Status)

	booking.Status = payload.Status
	return c.Status(fiber.StatusOK).JSON(models.OKWithMessage("Status booking berhasil diperbarui", booking))
}

// GetWorkerAvailability godoc
// @Summary Ketersediaan Worker per Bulan
// @Description Kalender ketersediaan worker: hari yang masih bisa dibooking, tanggal pending, dan tanggal yang sudah diterima
// @Tags Marketplace
// @Produce json
// @Security BearerAuth
// @Param workerId path string true "Worker ID"
// @Param month path int true "Bulan (1-12)"
// @Param year path int true "Tahun"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /marketplace/availability/{workerId}/{month}/{year} [get]
func (h *BookingHandler) GetWorkerAvailability(c *fiber.Ctx) error {
	idParam := c.Params("workerId")
	workerID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("format ID worker tidak valid"))
	}

	now := time.Now()
	month, err := c.ParamsInt("month")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("bulan harus berupa angka"))
	}
	year, err := c.ParamsInt("year")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("tahun harus berupa angka"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	worker, err := h.userRepo.FindUserByID(ctx, workerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Fail("Gagal mencari worker"))
	}
	if worker == nil || worker.Role != models.RoleKaryawan {
		return c.Status(fiber.StatusNotFound).JSON(models.Fail("Worker tidak ditemukan"))
	}

	firstDay := fmt.Sprintf("%04d-%02d-01", year, month)
	lastDay := fmt.Sprintf("%04d-%02d-31", year, month)

	bookings, err := h.bookingRepo.FindByWorkerAndMonth(ctx, workerID, firstDay, lastDay)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Fail("Gagal mengambil data booking worker"))
	}

	var pendingDates, acceptedDates []string
	for _, b := range bookings {
		switch b.Status {
		case workflow.BookingPending:
			pendingDates = append(pendingDates, b.PreferredDate)
		case workflow.BookingAccepted:
			acceptedDates = append(acceptedDates, b.PreferredDate)
		}
	}

	calendar, err := availability.ForMonth(month, year, now, pendingDates, acceptedDates)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail(err.Error()))
	}

	return c.Status(fiber.StatusOK).JSON(models.OK(calendar))
}
