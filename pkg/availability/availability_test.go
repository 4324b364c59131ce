package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestForMonthFutureMonthAllAvailable(t *testing.T) {
	today := mustDate(t, "2024-06-01")

	result, err := ForMonth(7, 2024, today, nil, nil)
	require.NoError(t, err)

	assert.Len(t, result.AvailableDays, 31)
	assert.Equal(t, 1, result.AvailableDays[0])
	assert.Equal(t, 31, result.AvailableDays[30])
	assert.Empty(t, result.BookedDates)
	assert.Empty(t, result.AcceptedDates)
	assert.Empty(t, result.PendingDates)
}

func TestForMonthClassifiesBookings(t *testing.T) {
	today := mustDate(t, "2024-06-01")

	result, err := ForMonth(6, 2024, today,
		[]string{"2024-06-10"},
		[]string{"2024-06-15"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-06-10"}, result.BookedDates)
	assert.Equal(t, []string{"2024-06-10"}, result.PendingDates)
	assert.Equal(t, []string{"2024-06-15"}, result.AcceptedDates)

	assert.NotContains(t, result.AvailableDays, 10)
	assert.NotContains(t, result.AvailableDays, 15)
	assert.Len(t, result.AvailableDays, 28)
}

func TestForMonthEachDayInExactlyOneCategory(t *testing.T) {
	today := mustDate(t, "2024-06-12")

	result, err := ForMonth(6, 2024, today,
		[]string{"2024-06-10", "2024-06-20"},
		[]string{"2024-06-15"},
	)
	require.NoError(t, err)

	seen := make(map[int]int)
	for _, day := range result.AvailableDays {
		seen[day]++
	}
	for _, d := range result.BookedDates {
		parsed := mustDate(t, d)
		seen[parsed.Day()]++
	}
	for _, d := range result.AcceptedDates {
		parsed := mustDate(t, d)
		seen[parsed.Day()]++
	}

	for day, count := range seen {
		assert.Equalf(t, 1, count, "tanggal %d muncul di lebih dari satu kategori", day)
	}
}

func TestForMonthPastDaysNotAvailable(t *testing.T) {
	today := mustDate(t, "2024-06-12")

	result, err := ForMonth(6, 2024, today, nil, nil)
	require.NoError(t, err)

	for _, day := range result.AvailableDays {
		assert.GreaterOrEqual(t, day, 12)
	}
	assert.Contains(t, result.AvailableDays, 12)
	assert.NotContains(t, result.AvailableDays, 11)
}

func TestForMonthPastBookingsStillListed(t *testing.T) {
	// Bulan yang sepenuhnya lampau: tidak ada hari available,
	// tapi daftar booked/accepted tetap terisi.
	today := mustDate(t, "2024-08-01")

	result, err := ForMonth(6, 2024, today,
		[]string{"2024-06-10"},
		[]string{"2024-06-15"},
	)
	require.NoError(t, err)

	assert.Empty(t, result.AvailableDays)
	assert.Equal(t, []string{"2024-06-10"}, result.BookedDates)
	assert.Equal(t, []string{"2024-06-15"}, result.AcceptedDates)
}

func TestForMonthAcceptedWinsOverPending(t *testing.T) {
	today := mustDate(t, "2024-06-01")

	result, err := ForMonth(6, 2024, today,
		[]string{"2024-06-15"},
		[]string{"2024-06-15"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-06-15"}, result.AcceptedDates)
	assert.Empty(t, result.BookedDates)
	assert.Empty(t, result.PendingDates)
}

func TestForMonthIgnoresDatesOutsideMonth(t *testing.T) {
	today := mustDate(t, "2024-06-01")

	result, err := ForMonth(6, 2024, today,
		[]string{"2024-07-10", "2024-05-10"},
		[]string{"2023-06-15"},
	)
	require.NoError(t, err)

	assert.Empty(t, result.BookedDates)
	assert.Empty(t, result.AcceptedDates)
	assert.Len(t, result.AvailableDays, 30)
}

func TestForMonthFebruaryLeapYear(t *testing.T) {
	today := mustDate(t, "2024-01-01")

	result, err := ForMonth(2, 2024, today, nil, nil)
	require.NoError(t, err)

	assert.Len(t, result.AvailableDays, 29)
}

func TestForMonthInvalidInput(t *testing.T) {
	today := mustDate(t, "2024-06-01")

	_, err := ForMonth(0, 2024, today, nil, nil)
	assert.Error(t, err)

	_, err = ForMonth(13, 2024, today, nil, nil)
	assert.Error(t, err)

	_, err = ForMonth(6, 0, today, nil, nil)
	assert.Error(t, err)
}
