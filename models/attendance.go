package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status masuk/keluar satu siklus absensi.
const (
	AttendanceIn  = "IN"
	AttendanceOut = "OUT"
)

// Status review absensi oleh admin/HR.
const (
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRejected = "Rejected"
)

type Attendance struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	Date           string             `json:"date" bson:"date,omitempty"`
	CheckInTime    time.Time          `json:"check_in_time" bson:"check_in_time,omitempty"`
	CheckOutTime   *time.Time         `json:"check_out_time,omitempty" bson:"check_out_time,omitempty"`
	TotalHours     float64            `json:"total_hours" bson:"total_hours,omitempty"`
	InOutStatus    string             `json:"in_out_status" bson:"in_out_status,omitempty"`
	ApprovalStatus string             `json:"approval_status" bson:"approval_status,omitempty"`
	Note           string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type AttendanceApprovalPayload struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected"`
	Note   string `json:"note,omitempty"`
}

type AttendanceWithUser struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	UserID         primitive.ObjectID `json:"user_id" bson:"user_id"`
	Date           string             `json:"date" bson:"date"`
	CheckInTime    time.Time          `json:"check_in_time" bson:"check_in_time"`
	CheckOutTime   *time.Time         `json:"check_out_time,omitempty" bson:"check_out_time,omitempty"`
	TotalHours     float64            `json:"total_hours" bson:"total_hours"`
	InOutStatus    string             `json:"in_out_status" bson:"in_out_status"`
	ApprovalStatus string             `json:"approval_status" bson:"approval_status"`
	Note           string             `json:"note,omitempty" bson:"note,omitempty"`
	UserName       string             `json:"user_name" bson:"user_name"`
	UserEmail      string             `json:"user_email" bson:"user_email"`
	UserPhoto      string             `json:"user_photo,omitempty" bson:"user_photo,omitempty"`
	UserPosition   string             `json:"user_position,omitempty" bson:"user_position,omitempty"`
	UserDepartment string             `json:"user_department,omitempty" bson:"user_department,omitempty"`
}

// TodayProgress adalah ringkasan jam kerja user untuk hari ini.
type TodayProgress struct {
	Date            string  `json:"date"`
	TotalHours      float64 `json:"total_hours"`
	TargetHours     float64 `json:"target_hours"`
	ProgressPercent float64 `json:"progress_percent"`
	OpenCycle       bool    `json:"open_cycle"`
}

type QRCode struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string               `json:"code" bson:"code,omitempty"`
	Date      string               `json:"date" bson:"date,omitempty"`
	ExpiresAt time.Time            `json:"expires_at" bson:"expires_at,omitempty"`
	UsedBy    []primitive.ObjectID `json:"used_by,omitempty" bson:"used_by,omitempty"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time            `json:"updated_at" bson:"updated_at,omitempty"`
}

type QRCodeScanPayload struct {
	QRCodeValue string `json:"qr_code_value" validate:"required"`
}
