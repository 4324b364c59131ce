// file: seeder/department_seeder.go

package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-HR-Marketplace/models"
	"Sistem-HR-Marketplace/repository"
)

// SeedDepartments memasukkan data departemen awal ke database
func SeedDepartments(departmentRepo repository.DepartmentRepository) {
	log.Println("🌱 Memulai seeding departemen...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	departmentsData := []string{
		"Manajemen",
		"Sumber Daya Manusia (HRD)",
		"Kebersihan",
		"Perbaikan & Instalasi",
		"Perawatan Taman",
		"Layanan Pelanggan",
	}

	for _, deptName := range departmentsData {
		existingDept, err := departmentRepo.FindDepartmentByName(ctx, deptName)
		if err == nil && existingDept != nil && existingDept.Name == deptName {
			fmt.Printf("Skipping: Departemen '%s' sudah ada.\n", deptName)
			continue
		}

		newDepartment := &models.Department{
			ID:        primitive.NewObjectID(),
			Name:      deptName,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		_, err = departmentRepo.CreateDepartment(ctx, newDepartment)
		if err != nil {
			log.Printf("❌ Gagal menyimpan departemen '%s': %v\n", deptName, err)
		} else {
			fmt.Printf("✔ Departemen '%s' berhasil ditambahkan.\n", deptName)
		}
	}

	log.Println("✅ Seeding departemen selesai.")
}
