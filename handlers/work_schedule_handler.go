package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/teambition/rrule-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-HR-Marketplace/models"
	util "Sistem-HR-Marketplace/pkg/utils"
	"Sistem-HR-Marketplace/repository"
)

type WorkScheduleHandler struct {
	workScheduleRepo *repository.WorkScheduleRepository
}

func NewWorkScheduleHandler(repo *repository.WorkScheduleRepository) *WorkScheduleHandler {
	return &WorkScheduleHandler{
		workScheduleRepo: repo,
	}
}

// CreateWorkSchedule godoc
// @Summary Buat Aturan Jadwal Kerja
// @Description Membuat aturan jadwal kerja, bisa sekali jalan atau berulang (RRULE)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.WorkScheduleCreatePayload true "Data jadwal kerja"
// @Success 201 {object} object{message=string,data=models.WorkSchedule}
// @Router /admin/work-schedules [post]
func (h *WorkScheduleHandler) CreateWorkSchedule(c *fiber.Ctx) error {
	var payload models.WorkScheduleCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	if payload.RecurrenceRule != "" {
		if _, err := rrule.StrToROption(payload.RecurrenceRule); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Aturan perulangan (RRULE) tidak valid", "details": err.Error()})
		}
	}

	schedule := models.WorkSchedule{
		Date:           strings.TrimSpace(payload.Date),
		StartTime:      strings.TrimSpace(payload.StartTime),
		EndTime:        strings.TrimSpace(payload.EndTime),
		Note:           payload.Note,
		RecurrenceRule: payload.RecurrenceRule,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	createdSchedule, err := h.workScheduleRepo.Create(ctx, &schedule)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan jadwal kerja", "details": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Jadwal kerja berhasil ditambahkan", "data": createdSchedule})
}

// GetHolidays godoc
// @Summary Daftar Hari Libur Nasional
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param year query string false "Tahun (default: tahun berjalan)"
// @Success 200 {array} models.Holiday
// @Router /work-schedules/holidays [get]
func (h *WorkScheduleHandler) GetHolidays(c *fiber.Ctx) error {
	year := c.Query("year")
	if year == "" {
		year = time.Now().Format("2006")
	}

	holidaysData, err := util.GetExternalHolidaysForFrontend(year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data hari libur", "details": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(holidaysData)
}

// GetWorkScheduleById godoc
// @Summary Detail Aturan Jadwal Kerja
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work Schedule ID"
// @Success 200 {object} object{data=models.WorkSchedule}
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /work-schedules/{id} [get]
func (h *WorkScheduleHandler) GetWorkScheduleById(c *fiber.Ctx) error {
	scheduleID := c.Params("id")
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID jadwal kerja tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	schedule, err := h.workScheduleRepo.FindByID(ctx, objectID)
	if err != nil {
		if err.Error() == "jadwal tidak ditemukan" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal kerja tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jadwal kerja", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": schedule})
}

// GetAllWorkSchedules godoc
// @Summary Jadwal Kerja dalam Rentang Tanggal
// @Description Mengekspansi aturan jadwal (termasuk RRULE) menjadi jadwal harian dalam rentang tanggal, dikurangi hari libur nasional
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "Tanggal awal (YYYY-MM-DD)"
// @Param end_date query string true "Tanggal akhir (YYYY-MM-DD)"
// @Success 200 {object} object{data=array}
// @Router /work-schedules [get]
func (h *WorkScheduleHandler) GetAllWorkSchedules(c *fiber.Ctx) error {
	layout := "2006-01-02"
	startDateStr := c.Query("start_date")
	endDateStr := c.Query("end_date")

	startDate, err := time.Parse(layout, startDateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_date format"})
	}
	endDate, err := time.Parse(layout, endDateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	scheduleRules, err := h.workScheduleRepo.FindAllWithFilter(ctx, bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch schedule rules"})
	}

	holidayMap, err := util.GetHolidayMap(startDate.Format("2006"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch holidays"})
	}
	if startDate.Year() != endDate.Year() {
		nextYearHolidays, _ := util.GetHolidayMap(endDate.Format("2006"))
		for date, val := range nextYearHolidays {
			holidayMap[date] = val
		}
	}

	finalSchedules := []models.WorkSchedule{}

	for _, rule := range scheduleRules {
		if rule.RecurrenceRule != "" {
			rOption, err := rrule.StrToROption(rule.RecurrenceRule)
			if err != nil {
				continue
			}

			ruleStartDate, _ := time.Parse(layout, rule.Date)
			rOption.Dtstart = ruleStartDate

			rr, err := rrule.NewRRule(*rOption)
			if err != nil {
				continue
			}

			ruleSet := rrule.Set{}
			ruleSet.RRule(rr)

			instances := ruleSet.Between(startDate, endDate, true)

			for _, instance := range instances {
				instanceDateStr := instance.Format(layout)
				if !holidayMap[instanceDateStr] {
					finalSchedules = append(finalSchedules, models.WorkSchedule{
						ID:             rule.ID,
						Date:           instanceDateStr,
						StartTime:      rule.StartTime,
						EndTime:        rule.EndTime,
						Note:           rule.Note,
						RecurrenceRule: rule.RecurrenceRule,
					})
				}
			}
		} else {
			ruleDate, _ := time.Parse(layout, rule.Date)
			if (ruleDate.After(startDate) || ruleDate.Equal(startDate)) && (ruleDate.Before(endDate) || ruleDate.Equal(endDate)) {
				if !holidayMap[rule.Date] {
					finalSchedules = append(finalSchedules, rule)
				}
			}
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": finalSchedules})
}

// UpdateWorkSchedule godoc
// @Summary Update Aturan Jadwal Kerja
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work Schedule ID"
// @Param payload body models.WorkScheduleUpdatePayload true "Data jadwal kerja"
// @Success 200 {object} object{message=string}
// @Router /admin/work-schedules/{id} [put]
func (h *WorkScheduleHandler) UpdateWorkSchedule(c *fiber.Ctx) error {
	scheduleID := c.Params("id")
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID jadwal kerja tidak valid"})
	}

	var payload models.WorkScheduleUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	err = h.workScheduleRepo.UpdateByID(ctx, objectID, &payload)
	if err != nil {
		if strings.Contains(err.Error(), "jadwal tidak ditemukan") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui jadwal kerja", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Jadwal kerja berhasil diperbarui"})
}

// DeleteWorkSchedule godoc
// @Summary Hapus Aturan Jadwal Kerja
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work Schedule ID"
// @Success 200 {object} object{message=string}
// @Router /admin/work-schedules/{id} [delete]
func (h *WorkScheduleHandler) DeleteWorkSchedule(c *fiber.Ctx) error {
	scheduleID := c.Params("id")
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID jadwal kerja tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	err = h.workScheduleRepo.DeleteByID(ctx, objectID)
	if err != nil {
		if strings.Contains(err.Error(), "jadwal tidak ditemukan") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal kerja tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus jadwal kerja", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Jadwal kerja berhasil dihapus"})
}
