package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LeaveRequest struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	LeaveType     string             `json:"leave_type" bson:"leave_type,omitempty"`
	StartDate     string             `json:"start_date" bson:"start_date,omitempty"`
	EndDate       string             `json:"end_date" bson:"end_date,omitempty"`
	Reason        string             `json:"reason" bson:"reason,omitempty"`
	Status        string             `json:"status" bson:"status,omitempty"`
	Note          string             `json:"note" bson:"note,omitempty"`
	AttachmentURL string             `json:"attachment_url,omitempty" bson:"attachment_url,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type LeaveRequestCreatePayload struct {
	LeaveType string `json:"leave_type" validate:"required,oneof=Cuti Izin Sakit"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02,gtefield=StartDate"`
	Reason    string `json:"reason" validate:"required,min=10,max=500"`
}

type LeaveRequestUpdatePayload struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Note   string `json:"note,omitempty"`
}

type LeaveRequestWithUser struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	UserID        primitive.ObjectID `json:"user_id" bson:"user_id"`
	LeaveType     string             `json:"leave_type" bson:"leave_type"`
	StartDate     string             `json:"start_date" bson:"start_date"`
	EndDate       string             `json:"end_date" bson:"end_date"`
	Reason        string             `json:"reason" bson:"reason"`
	Status        string             `json:"status" bson:"status"`
	Note          string             `json:"note,omitempty" bson:"note,omitempty"`
	AttachmentURL string             `json:"attachment_url,omitempty" bson:"attachment_url,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
	UserName      string             `json:"user_name" bson:"user_name"`
	UserEmail     string             `json:"user_email" bson:"user_email"`
	UserPhoto     string             `json:"user_photo,omitempty" bson:"user_photo,omitempty"`
}
