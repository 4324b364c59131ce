package availability

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// MonthAvailability adalah hasil klasifikasi kalender satu worker untuk satu bulan.
// BookedDates berisi tanggal booking berstatus pending; PendingDates menduplikasi
// daftar yang sama karena frontend lama membaca kedua nama field tersebut.
type MonthAvailability struct {
	AvailableDays []int    `json:"availableDays"`
	BookedDates   []string `json:"bookedDates"`
	AcceptedDates []string `json:"acceptedDates"`
	PendingDates  []string `json:"pendingDates"`
}

// ForMonth mengklasifikasikan setiap tanggal 1..N di bulan tersebut ke tepat satu
// kategori: available, booked-pending, booked-accepted, atau past.
//
// Aturan:
//   - tanggal yang muncul di pending sekaligus accepted dihitung accepted saja,
//   - "past" adalah tanggal sebelum today (zona waktu server), apapun status bookingnya,
//   - sebuah tanggal "available" hanya jika bukan past dan tidak ada booking
//     pending/accepted di tanggal itu.
func ForMonth(month, year int, today time.Time, pendingDates, acceptedDates []string) (*MonthAvailability, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("bulan tidak valid: %d (harus 1-12)", month)
	}
	if year < 1 {
		return nil, fmt.Errorf("tahun tidak valid: %d", year)
	}

	acceptedSet := make(map[string]bool)
	for _, d := range acceptedDates {
		if inMonth(d, month, year) {
			acceptedSet[d] = true
		}
	}

	pendingSet := make(map[string]bool)
	for _, d := range pendingDates {
		// accepted menang kalau satu tanggal punya dua booking beda status
		if inMonth(d, month, year) && !acceptedSet[d] {
			pendingSet[d] = true
		}
	}

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	result := &MonthAvailability{
		AvailableDays: []int{},
		BookedDates:   []string{},
		AcceptedDates: []string{},
		PendingDates:  []string{},
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, today.Location()).Day()

	for day := 1; day <= daysInMonth; day++ {
		current := time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location())
		dateStr := current.Format(dateLayout)

		switch {
		case acceptedSet[dateStr]:
			result.AcceptedDates = append(result.AcceptedDates, dateStr)
		case pendingSet[dateStr]:
			result.BookedDates = append(result.BookedDates, dateStr)
			result.PendingDates = append(result.PendingDates, dateStr)
		case current.Before(todayDate):
			// past: tidak ditawarkan, juga tidak masuk daftar booked
		default:
			result.AvailableDays = append(result.AvailableDays, day)
		}
	}

	return result, nil
}

func inMonth(dateStr string, month, year int) bool {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return false
	}
	return t.Year() == year && int(t.Month()) == month
}
