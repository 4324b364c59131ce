package timesheet

import (
	"math"
	"time"
)

// TargetHours adalah target jam kerja harian.
const TargetHours = 9.0

// TotalHours menghitung durasi kerja satu siklus check-in/check-out dalam jam
// desimal, dibulatkan ke 2 angka di belakang koma.
func TotalHours(checkIn, checkOut time.Time) float64 {
	hours := checkOut.Sub(checkIn).Hours()
	if hours < 0 {
		return 0
	}
	return math.Round(hours*100) / 100
}

// Progress mengubah total jam menjadi persentase terhadap target harian.
// Nilai di atas 100 tidak dipotong; pemanggil yang memutuskan mau clamp atau tidak.
func Progress(totalHours float64) float64 {
	return totalHours / TargetHours * 100
}

// DailyTotal menjumlahkan jam dari semua siklus yang sudah tertutup pada satu hari.
// Satu hari bisa berisi beberapa siklus check-in/check-out yang independen.
func DailyTotal(cycleHours []float64) float64 {
	var total float64
	for _, h := range cycleHours {
		total += h
	}
	return math.Round(total*100) / 100
}
