package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-HR-Marketplace/models"
	"Sistem-HR-Marketplace/pkg/paseto"
	util "Sistem-HR-Marketplace/pkg/utils"
	"Sistem-HR-Marketplace/repository"
)

type UserHandler struct {
	userRepo *repository.UserRepository
}

func NewUserHandler(userRepo *repository.UserRepository) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

// GetUserByID godoc
// @Summary Get User by ID
// @Description Mendapatkan detail user berdasarkan ID (user hanya bisa melihat data diri sendiri, admin/HR bisa melihat semua)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID user tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "tidak terautentikasi atau klaim token tidak valid"})
	}

	if claims.Role != models.RoleAdmin && claims.Role != models.RoleHR && claims.UserID.Hex() != idParam {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "akses ditolak. anda hanya dapat melihat profile anda sendiri."})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, objID)
	if err != nil {
		log.Printf("Error getting user by ID: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mendapatkan user: %v", err)})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// GetAllUsers godoc
// @Summary Get All Users
// @Description Mendapatkan semua data users dengan pagination dan filter (admin/HR)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Param search query string false "Search by name or email"
// @Param role query string false "Filter by role"
// @Success 200 {object} object{data=array,total=int,page=int,limit=int}
// @Router /admin/users [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	search := c.Query("search", "")
	role := c.Query("role", "")

	if page < 1 {
		page = 1
	}

	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := bson.M{}
	if search != "" {
		filter["$or"] = []bson.M{
			{"name": primitive.Regex{Pattern: search, Options: "i"}},
			{"email": primitive.Regex{Pattern: search, Options: "i"}},
		}
	}
	if role != "" {
		filter["role"] = role
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	users, total, err := h.userRepo.GetAllUsers(ctx, filter, int64(page), int64(limit))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mendapatkan semua user: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// UpdateUser godoc
// @Summary Update User
// @Description Update data user (user hanya bisa update data diri sendiri, admin bisa update semua)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param user body models.UserUpdatePayload true "Data update user"
// @Success 200 {object} object{message=string}
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID user tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "tidak terautentikasi atau klaim token tidak valid"})
	}

	if claims.Role != models.RoleAdmin && claims.UserID.Hex() != idParam {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "akses ditolak. anda hanya dapat mengupdate profil anda sendiri."})
	}

	var payload models.UserUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	updateData := bson.M{}
	if payload.Name != "" {
		updateData["name"] = payload.Name
	}
	if payload.Email != "" {
		updateData["email"] = payload.Email
	}
	if payload.Position != "" {
		updateData["position"] = payload.Position
	}
	if payload.Department != "" {
		updateData["department"] = payload.Department
	}
	if payload.BaseSalary > 0 {
		updateData["base_salary"] = payload.BaseSalary
	}
	if payload.Address != "" {
		updateData["address"] = payload.Address
	}
	if payload.Photo != "" {
		updateData["photo"] = payload.Photo
	}
	if payload.Skills != nil {
		updateData["skills"] = payload.Skills
	}
	if payload.HourlyRate != nil {
		updateData["hourly_rate"] = *payload.HourlyRate
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "tidak ada data yang diupdate"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.userRepo.UpdateUser(ctx, objID, updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mengupdate user: %v", err)})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User berhasil diupdate",
		"user_id": idParam,
	})
}

// DeleteUser godoc
// @Summary Delete User
// @Description Menghapus user berdasarkan ID (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID user tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.userRepo.DeleteUser(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal menghapus user: %v", err)})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User berhasil dihapus",
		"user_id": idParam,
	})
}

// UpdateApplicationStatus godoc
// @Summary Review Lamaran Worker
// @Description Admin/HR menerima atau menolak lamaran worker marketplace
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worker ID"
// @Param status body models.ApplicationStatusPayload true "Keputusan lamaran"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /admin/workers/{id}/application-status [put]
func (h *UserHandler) UpdateApplicationStatus(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID worker tidak valid"})
	}

	var payload models.ApplicationStatusPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	worker, err := h.userRepo.FindUserByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mencari worker: %v", err)})
	}
	if worker == nil || worker.Role != models.RoleKaryawan {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "worker tidak ditemukan"})
	}

	if worker.ApplicationStatus != models.ApplicationPending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("lamaran worker sudah diputuskan (status: %s)", worker.ApplicationStatus)})
	}

	_, err = h.userRepo.UpdateApplicationStatus(ctx, objID, payload.Status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mengupdate status lamaran: %v", err)})
	}

	// Notifikasi email ke worker best-effort saja, tidak menggagalkan request.
	log.Printf("Notifikasi: lamaran worker %s (%s) %s", worker.Name, worker.Email, payload.Status)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Status lamaran worker berhasil diperbarui",
		"status":  payload.Status,
	})
}

// GetMarketplaceWorkers godoc
// @Summary List Worker Marketplace
// @Description Daftar worker yang lamarannya sudah diterima dan boleh dibooking
// @Tags Marketplace
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse
// @Router /marketplace/workers [get]
func (h *UserHandler) GetMarketplaceWorkers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	workers, err := h.userRepo.FindAcceptedWorkers(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Fail("Gagal mengambil daftar worker"))
	}

	return c.Status(fiber.StatusOK).JSON(models.OK(workers))
}

// GetDashboardStats godoc
// @Summary Dashboard Stats
// @Description Statistik untuk dashboard admin/HR
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats
// @Router /admin/dashboard-stats [get]
func (h *UserHandler) GetDashboardStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	stats, err := h.userRepo.GetDashboardStats(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mengambil statistik dashboard: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
