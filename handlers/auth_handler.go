package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"Sistem-HR-Marketplace/models"
	"Sistem-HR-Marketplace/pkg/paseto"
	"Sistem-HR-Marketplace/pkg/password"
	util "Sistem-HR-Marketplace/pkg/utils"
	"Sistem-HR-Marketplace/repository"
)

type AuthHandler struct {
	userRepo *repository.UserRepository
}

func NewAuthHandler(userRepo *repository.UserRepository) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
	}
}

// Register godoc
// @Summary Register Karyawan
// @Description Mendaftarkan karyawan/staff baru (admin only)
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body models.UserRegisterPayload true "Data registrasi user"
// @Success 201 {object} models.RegisterSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.ErrorResponse "Email sudah terdaftar"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.UserRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal hash password"})
	}

	newUser := &models.User{
		Name:         payload.Name,
		Email:        payload.Email,
		Password:     hashedPassword,
		Role:         payload.Role,
		Position:     payload.Position,
		Department:   payload.Department,
		BaseSalary:   payload.BaseSalary,
		Address:      payload.Address,
		Photo:        payload.Photo,
		IsFirstLogin: true,
	}

	// Karyawan yang didaftarkan admin langsung boleh tampil di marketplace.
	if payload.Role == models.RoleKaryawan {
		newUser.ApplicationStatus = models.ApplicationAccepted
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.userRepo.CreateUser(ctx, newUser)
	if err != nil {
		if err.Error() == "email sudah ada" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email sudah terdaftar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mendaftarkan user: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User berhasil didaftarkan (oleh admin)",
		"user_id": result.InsertedID,
	})
}

// RegisterWorker godoc
// @Summary Register Worker Marketplace
// @Description Pendaftaran mandiri worker. Lamaran berstatus pending sampai direview admin/HR
// @Tags Auth
// @Accept json
// @Produce json
// @Param worker body models.WorkerRegisterPayload true "Data pendaftaran worker"
// @Success 201 {object} models.RegisterSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.ErrorResponse "Email sudah terdaftar"
// @Router /auth/register-worker [post]
func (h *AuthHandler) RegisterWorker(c *fiber.Ctx) error {
	var payload models.WorkerRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal hash password"})
	}

	newWorker := &models.User{
		Name:              payload.Name,
		Email:             payload.Email,
		Password:          hashedPassword,
		Role:              models.RoleKaryawan,
		Position:          payload.Position,
		Skills:            payload.Skills,
		HourlyRate:        payload.HourlyRate,
		Address:           payload.Address,
		Photo:             payload.Photo,
		ApplicationStatus: models.ApplicationPending,
		IsFirstLogin:      true,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.userRepo.CreateUser(ctx, newWorker)
	if err != nil {
		if err.Error() == "email sudah ada" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email sudah terdaftar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mendaftarkan worker: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pendaftaran worker diterima. Lamaran Anda akan direview oleh admin.",
		"user_id": result.InsertedID,
	})
}

// RegisterCustomer godoc
// @Summary Register Customer
// @Description Pendaftaran customer marketplace
// @Tags Auth
// @Accept json
// @Produce json
// @Param customer body models.CustomerRegisterPayload true "Data pendaftaran customer"
// @Success 201 {object} models.RegisterSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.ErrorResponse "Email sudah terdaftar"
// @Router /auth/register-customer [post]
func (h *AuthHandler) RegisterCustomer(c *fiber.Ctx) error {
	var payload models.CustomerRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal hash password"})
	}

	newCustomer := &models.User{
		Name:         payload.Name,
		Email:        payload.Email,
		Password:     hashedPassword,
		Role:         models.RoleCustomer,
		Address:      payload.Address,
		IsFirstLogin: false,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.userRepo.CreateUser(ctx, newCustomer)
	if err != nil {
		if err.Error() == "email sudah ada" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email sudah terdaftar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mendaftarkan customer: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registrasi berhasil. Silakan login.",
		"user_id": result.InsertedID,
	})
}

// Login godoc
// @Summary Login User
// @Description Melakukan proses login dan mengembalikan token PASETO jika email dan password valid
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Kredensial untuk Login"
// @Success 200 {object} models.LoginSuccessResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse "Kombinasi email dan password salah"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kombinasi email dan password salah"})
	}

	if !password.CheckPasswordHash(payload.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kombinasi email dan password salah"})
	}

	token, err := paseto.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"user":    user,
	})
}

// ChangePassword godoc
// @Summary Change Password
// @Description Mengubah password user yang sedang login
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param password body models.ChangePasswordPayload true "Data untuk mengubah password"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Router /users/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
	}

	var payload models.ChangePasswordPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil || user == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	if !password.CheckPasswordHash(payload.OldPassword, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Password lama tidak cocok"})
	}

	if payload.NewPassword == payload.OldPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password baru tidak boleh sama dengan password lama."})
	}

	newHashedPassword, err := password.HashPassword(payload.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal hash password baru"})
	}

	updateData := bson.M{
		"password":     newHashedPassword,
		"isFirstLogin": false,
	}

	_, err = h.userRepo.UpdateUser(ctx, claims.UserID, updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal update password: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password berhasil diubah."})
}

// Logout godoc
// @Summary Logout User
// @Description Token stateless; logout cukup informasikan client menghapus token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	_, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logout berhasil. Silakan hapus token dari sisi client.",
	})
}
