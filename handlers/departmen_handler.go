package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Sistem-HR-Marketplace/models"
	util "Sistem-HR-Marketplace/pkg/utils"
	"Sistem-HR-Marketplace/repository"
)

type DepartmentHandler struct {
	deptRepo repository.DepartmentRepository
}

func NewDepartmentHandler(deptRepo repository.DepartmentRepository) *DepartmentHandler {
	return &DepartmentHandler{
		deptRepo: deptRepo,
	}
}

// CreateDepartment godoc
// @Summary Create Department
// @Description Menambahkan departemen baru (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param department body models.DepartmentPayload true "Data departemen baru"
// @Success 201 {object} object{message=string,id=string}
// @Failure 409 {object} models.ErrorResponse "Nama departemen sudah ada"
// @Router /admin/departments [post]
func (h *DepartmentHandler) CreateDepartment(c *fiber.Ctx) error {
	var payload models.DepartmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	existingDept, err := h.deptRepo.FindDepartmentByName(ctx, payload.Name)
	if err != nil && err.Error() != "departemen tidak ditemukan" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal memeriksa departemen: %v", err)})
	}
	if existingDept != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Nama departemen sudah ada"})
	}

	newDept := models.Department{
		ID:   primitive.NewObjectID(),
		Name: payload.Name,
	}

	result, err := h.deptRepo.CreateDepartment(ctx, &newDept)
	if err != nil {
		if err.Error() == "nama departemen sudah ada" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Nama departemen sudah ada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal membuat departemen: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Departemen berhasil ditambahkan",
		"id":      result.InsertedID,
	})
}

// GetAllDepartments godoc
// @Summary Get All Departments
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Department
// @Router /departments [get]
func (h *DepartmentHandler) GetAllDepartments(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	departments, err := h.deptRepo.GetAllDepartments(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil departemen: %v", err)})
	}
	return c.Status(fiber.StatusOK).JSON(departments)
}

// GetDepartmentByID godoc
// @Summary Get Department by ID
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} models.Department
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartmentByID(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID departemen tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dept, err := h.deptRepo.GetDepartmentByID(ctx, objID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Departemen tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil departemen: %v", err)})
	}
	return c.Status(fiber.StatusOK).JSON(dept)
}

// UpdateDepartment godoc
// @Summary Update Department
// @Description Memperbarui departemen berdasarkan ID (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param department body models.DepartmentPayload true "Data departemen untuk diupdate"
// @Success 200 {object} object{message=string}
// @Failure 409 {object} models.ErrorResponse "Nama departemen sudah ada"
// @Router /admin/departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID departemen tidak valid"})
	}

	var payload models.DepartmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	updateData := bson.M{}
	if payload.Name != "" {
		existingDept, err := h.deptRepo.FindDepartmentByName(ctx, payload.Name)
		if err != nil && err.Error() != "departemen tidak ditemukan" {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal memeriksa departemen: %v", err)})
		}
		if existingDept != nil && existingDept.ID != objID {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Nama departemen sudah ada"})
		}
		updateData["name"] = payload.Name
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tidak ada data untuk diupdate"})
	}

	result, err := h.deptRepo.UpdateDepartment(ctx, objID, updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengupdate departemen: %v", err)})
	}
	if result.ModifiedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Departemen tidak ditemukan atau tidak ada perubahan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Departemen berhasil diupdate"})
}

// DeleteDepartment godoc
// @Summary Delete Department
// @Description Menghapus departemen berdasarkan ID (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /admin/departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID departemen tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.deptRepo.DeleteDepartment(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menghapus departemen: %v", err)})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Departemen tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Departemen berhasil dihapus"})
}
