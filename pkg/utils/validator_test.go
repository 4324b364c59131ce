package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sistem-HR-Marketplace/models"
)

func TestValidateStructWorkerRegisterPayload(t *testing.T) {
	payload := models.WorkerRegisterPayload{
		Name:     "Budi Santoso",
		Email:    "budi@gmail.com",
		Password: "Password123",
		Position: "Cleaning Service",
		Skills:   []string{"Cleaning Rumah"},
	}

	assert.Nil(t, ValidateStruct(payload))
}

func TestValidateStructPasswordNeedsUppercase(t *testing.T) {
	payload := models.WorkerRegisterPayload{
		Name:     "Budi Santoso",
		Email:    "budi@gmail.com",
		Password: "password123",
		Position: "Cleaning Service",
		Skills:   []string{"Cleaning Rumah"},
	}

	errs := ValidateStruct(payload)
	require.NotNil(t, errs)
	assert.Equal(t, "hasuppercase", errs[0].Tag)
}

func TestValidateStructBookingPayload(t *testing.T) {
	valid := models.BookingCreatePayload{
		WorkerID:      "64f000000000000000000001",
		PreferredDate: "2024-06-10",
		PreferredTime: "09:30",
	}
	assert.Nil(t, ValidateStruct(valid))

	invalidDate := valid
	invalidDate.PreferredDate = "10-06-2024"
	errs := ValidateStruct(invalidDate)
	require.NotNil(t, errs)
	assert.Equal(t, "datetime", errs[0].Tag)
}

func TestValidateStructStatusOneOf(t *testing.T) {
	errs := ValidateStruct(models.BookingStatusPayload{Status: "done"})
	require.NotNil(t, errs)
	assert.Equal(t, "oneof", errs[0].Tag)

	assert.Nil(t, ValidateStruct(models.BookingStatusPayload{Status: "accepted"}))
}
