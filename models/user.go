package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role yang dikenal aplikasi. "karyawan" adalah entitas yang sama dengan
// "worker" di sisi marketplace.
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleKaryawan = "karyawan"
	RoleCustomer = "customer"
)

// Status lamaran worker yang menentukan visibilitas di marketplace.
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

type User struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name,omitempty"`
	Email             string             `json:"email" bson:"email,omitempty"`
	Password          string             `json:"-" bson:"password,omitempty"`
	Role              string             `json:"role" bson:"role,omitempty"`
	Position          string             `json:"position" bson:"position,omitempty"`
	Department        string             `json:"department" bson:"department,omitempty"`
	BaseSalary        float64            `json:"base_salary" bson:"base_salary,omitempty"`
	Address           string             `json:"address" bson:"address,omitempty"`
	Photo             string             `json:"photo" bson:"photo,omitempty"`
	Skills            []string           `json:"skills,omitempty" bson:"skills,omitempty"`
	HourlyRate        float64            `json:"hourly_rate,omitempty" bson:"hourly_rate,omitempty"`
	ApplicationStatus string             `json:"application_status,omitempty" bson:"application_status,omitempty"`
	IsFirstLogin      bool               `json:"is_first_login" bson:"isFirstLogin,omitempty"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type UserRegisterPayload struct {
	Name       string  `json:"name" validate:"required,min=3,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8,max=50,hasuppercase"`
	Role       string  `json:"role" validate:"required,oneof=admin hr karyawan"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	BaseSalary float64 `json:"base_salary" validate:"min=0"`
	Address    string  `json:"address" validate:"omitempty,min=5,max=255"`
	Photo      string  `json:"photo" validate:"omitempty,url"`
}

// WorkerRegisterPayload dipakai pendaftaran mandiri worker dari marketplace.
// Status lamaran selalu mulai dari pending.
type WorkerRegisterPayload struct {
	Name       string   `json:"name" validate:"required,min=3,max=100"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=8,max=50,hasuppercase"`
	Position   string   `json:"position" validate:"required,min=3,max=100"`
	Skills     []string `json:"skills" validate:"omitempty,dive,min=2"`
	HourlyRate float64  `json:"hourly_rate" validate:"min=0"`
	Address    string   `json:"address" validate:"omitempty,min=5,max=255"`
	Photo      string   `json:"photo" validate:"omitempty,url"`
}

type CustomerRegisterPayload struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=50,hasuppercase"`
	Address  string `json:"address" validate:"omitempty,min=5,max=255"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserUpdatePayload struct {
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty" validate:"omitempty,email"`
	Position   string   `json:"position,omitempty"`
	Department string   `json:"department,omitempty"`
	BaseSalary float64  `json:"base_salary,omitempty" validate:"omitempty,min=0"`
	Address    string   `json:"address,omitempty" validate:"omitempty,min=5,max=255"`
	Photo      string   `json:"photo,omitempty" validate:"omitempty,url"`
	Skills     []string `json:"skills,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty" validate:"omitempty,min=0"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=50,hasuppercase"`
}

// ApplicationStatusPayload dipakai admin/HR untuk memutuskan lamaran worker.
type ApplicationStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

type DepartmentCount struct {
	Department string `bson:"_id" json:"department"`
	Count      int64  `bson:"count" json:"count"`
}

type DashboardStats struct {
	TotalKaryawan             int64             `json:"total_karyawan"`
	KaryawanAktif             int64             `json:"karyawan_aktif"`
	WorkerPending             int64             `json:"worker_pending"`
	PendingLeaveRequestsCount int64             `json:"pending_leave_requests_count"`
	PendingBookingsCount      int64             `json:"pending_bookings_count"`
	TotalDepartemen           int64             `json:"total_departemen"`
	DistribusiDepartemen      []DepartmentCount `json:"distribusi_departemen"`
}
