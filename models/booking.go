package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking adalah permintaan customer atas waktu seorang worker pada tanggal tertentu.
type Booking struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ReferenceCode string             `json:"reference_code" bson:"reference_code,omitempty"`
	WorkerID      primitive.ObjectID `json:"worker_id" bson:"worker_id,omitempty"`
	CustomerEmail string             `json:"customer_email" bson:"customer_email,omitempty"`
	CustomerName  string             `json:"customer_name" bson:"customer_name,omitempty"`
	PreferredDate string             `json:"preferred_date" bson:"preferred_date,omitempty"`
	PreferredTime string             `json:"preferred_time" bson:"preferred_time,omitempty"`
	JobDetail     string             `json:"job_detail,omitempty" bson:"job_detail,omitempty"`
	Status        string             `json:"status" bson:"status,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type BookingCreatePayload struct {
	WorkerID      string `json:"worker_id" validate:"required"`
	PreferredDate string `json:"preferred_date" validate:"required,datetime=2006-01-02"`
	PreferredTime string `json:"preferred_time" validate:"required,datetime=15:04"`
	JobDetail     string `json:"job_detail" validate:"omitempty,max=500"`
}

type BookingStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed cancelled"`
}

type BookingWithWorker struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	ReferenceCode string             `json:"reference_code" bson:"reference_code"`
	WorkerID      primitive.ObjectID `json:"worker_id" bson:"worker_id"`
	CustomerEmail string             `json:"customer_email" bson:"customer_email"`
	CustomerName  string             `json:"customer_name" bson:"customer_name"`
	PreferredDate string             `json:"preferred_date" bson:"preferred_date"`
	PreferredTime string             `json:"preferred_time" bson:"preferred_time"`
	JobDetail     string             `json:"job_detail,omitempty" bson:"job_detail,omitempty"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	WorkerName    string             `json:"worker_name" bson:"worker_name"`
	WorkerPhoto   string             `json:"worker_photo,omitempty" bson:"worker_photo,omitempty"`
	WorkerSkill   string             `json:"worker_position,omitempty" bson:"worker_position,omitempty"`
}
