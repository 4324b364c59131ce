// file: seeder/user_seeder.go

package seeder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"Sistem-HR-Marketplace/models"
	"Sistem-HR-Marketplace/repository"
)

var workerSkillSets = map[string][]string{
	"Kebersihan":            {"Cleaning Rumah", "Cleaning Kantor", "Deep Cleaning"},
	"Perbaikan & Instalasi": {"Instalasi Listrik", "Perbaikan AC", "Perbaikan Pipa", "Pengecatan"},
	"Perawatan Taman":       {"Potong Rumput", "Penataan Taman", "Perawatan Tanaman"},
}

// SeedUsers memasukkan akun admin, HR, worker, dan customer awal.
// Worker disebar antara yang sudah diterima dan yang masih pending
// supaya alur approval lamaran bisa langsung dicoba.
func SeedUsers(userRepo *repository.UserRepository, departmentRepo repository.DepartmentRepository) {
	log.Println("🌱 Memulai seeding user...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Gagal hash password: %v", err)
	}

	seedOne := func(user *models.User) {
		existing, err := userRepo.FindUserByEmail(ctx, user.Email)
		if err == nil && existing != nil {
			fmt.Printf("Skipping: User %s sudah ada.\n", user.Email)
			return
		}
		if _, err := userRepo.CreateUser(ctx, user); err != nil {
			log.Printf("❌ Gagal menyimpan user %s: %v\n", user.Email, err)
		} else {
			fmt.Printf("✔ User %s (%s) berhasil ditambahkan.\n", user.Name, user.Role)
		}
	}

	now := time.Now()

	seedOne(&models.User{
		ID:           primitive.NewObjectID(),
		Name:         "Admin Utama",
		Email:        "admin.utama@gmail.com",
		Password:     string(hashedPassword),
		Role:         models.RoleAdmin,
		Position:     "Manajer Umum",
		Department:   "Manajemen",
		BaseSalary:   9500000.00,
		Address:      "Jl. Administrasi No. 1, Jakarta",
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	seedOne(&models.User{
		ID:           primitive.NewObjectID(),
		Name:         "Hana Pertiwi",
		Email:        "hr.utama@gmail.com",
		Password:     string(hashedPassword),
		Role:         models.RoleHR,
		Position:     "HR Manager",
		Department:   "Sumber Daya Manusia (HRD)",
		BaseSalary:   7000000.00,
		Address:      "Jl. Kepegawaian No. 3, Jakarta",
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	firstNames := []string{"Budi", "Siti", "Agus", "Dewi", "Joko", "Rina", "Andi", "Eko", "Maya", "Fajar"}
	lastNames := []string{"Santoso", "Wijaya", "Putra", "Utami", "Nugroho", "Rahayu", "Pratama", "Lestari", "Setiawan", "Hidayat"}
	cities := []string{"Jakarta", "Bandung", "Surabaya", "Yogyakarta", "Semarang"}

	departments := make([]string, 0, len(workerSkillSets))
	for dept := range workerSkillSets {
		departments = append(departments, dept)
	}

	log.Println("🔄 Menambahkan 10 worker marketplace...")
	for i := 1; i <= 10; i++ {
		email := fmt.Sprintf("worker%02d@gmail.com", i)

		fullName := fmt.Sprintf("%s %s", firstNames[rand.Intn(len(firstNames))], lastNames[rand.Intn(len(lastNames))])
		dept := departments[rand.Intn(len(departments))]
		skills := workerSkillSets[dept]
		address := fmt.Sprintf("Jl. %s No. %d", cities[rand.Intn(len(cities))], rand.Intn(100)+1)

		// 7 worker pertama langsung diterima, sisanya menunggu review
		applicationStatus := models.ApplicationAccepted
		if i > 7 {
			applicationStatus = models.ApplicationPending
		}

		seedOne(&models.User{
			ID:                primitive.NewObjectID(),
			Name:              fullName,
			Email:             email,
			Password:          string(hashedPassword),
			Role:              models.RoleKaryawan,
			Position:          skills[rand.Intn(len(skills))],
			Department:        dept,
			BaseSalary:        float64(rand.Intn(2000001) + 3000000),
			HourlyRate:        float64(rand.Intn(50)+25) * 1000,
			Skills:            skills,
			ApplicationStatus: applicationStatus,
			Address:           address,
			IsFirstLogin:      true,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	log.Println("🔄 Menambahkan customer contoh...")
	for i := 1; i <= 3; i++ {
		seedOne(&models.User{
			ID:           primitive.NewObjectID(),
			Name:         fmt.Sprintf("Customer %02d", i),
			Email:        fmt.Sprintf("customer%02d@gmail.com", i),
			Password:     string(hashedPassword),
			Role:         models.RoleCustomer,
			Address:      fmt.Sprintf("Jl. Pelanggan No. %d, Jakarta", i),
			IsFirstLogin: false,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	log.Println("✅ Seeding user selesai.")
}
