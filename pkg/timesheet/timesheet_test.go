package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTotalHours(t *testing.T) {
	checkIn := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 2.0, TotalHours(checkIn, checkIn.Add(2*time.Hour)))
	assert.Equal(t, 8.5, TotalHours(checkIn, checkIn.Add(8*time.Hour+30*time.Minute)))
	assert.Equal(t, 0.25, TotalHours(checkIn, checkIn.Add(15*time.Minute)))
}

func TestTotalHoursRounding(t *testing.T) {
	checkIn := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	// 7 jam 47 menit = 7.7833... jam, dibulatkan jadi 7.78
	assert.Equal(t, 7.78, TotalHours(checkIn, checkIn.Add(7*time.Hour+47*time.Minute)))
}

func TestTotalHoursNegativeClampedToZero(t *testing.T) {
	checkIn := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, TotalHours(checkIn, checkIn.Add(-time.Hour)))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(0))
	assert.Equal(t, 100.0, Progress(9))
	assert.InDelta(t, 94.44, Progress(8.5), 0.01)
	assert.InDelta(t, 50.0, Progress(4.5), 0.001)
}

func TestProgressNotClamped(t *testing.T) {
	assert.Greater(t, Progress(10.5), 100.0)
	assert.InDelta(t, 116.67, Progress(10.5), 0.01)
}

func TestDailyTotal(t *testing.T) {
	assert.Equal(t, 0.0, DailyTotal(nil))
	assert.Equal(t, 8.5, DailyTotal([]float64{8.5}))
	assert.Equal(t, 9.25, DailyTotal([]float64{4.0, 3.0, 2.25}))
}

func TestDailyTotalRounding(t *testing.T) {
	assert.Equal(t, 0.3, DailyTotal([]float64{0.1, 0.1, 0.1}))
}
