package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Sistem-HR-Marketplace/config"
	"Sistem-HR-Marketplace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req *models.LeaveRequest) (*mongo.InsertOneResult, error)
	FindAll(ctx context.Context) ([]models.LeaveRequestWithUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.LeaveRequest, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.LeaveRequest, error)
	FindApprovedRequestByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, note string) (*mongo.UpdateResult, error)
	UpdateAttachmentURL(ctx context.Context, id primitive.ObjectID, fileURL string) (*mongo.UpdateResult, error)
}

type leaveRequestRepository struct {
	collection *mongo.Collection
}

func NewLeaveRequestRepository() LeaveRequestRepository {
	return &leaveRequestRepository{
		collection: config.GetCollection(config.LeaveRequestCollection),
	}
}

func (r *leaveRequestRepository) Create(ctx context.Context, req *models.LeaveRequest) (*mongo.InsertOneResult, error) {
	res, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat pengajuan: %w", err)
	}
	return res, nil
}

func (r *leaveRequestRepository) FindAll(ctx context.Context) ([]models.LeaveRequestWithUser, error) {
	var requests []models.LeaveRequestWithUser

	pipeline := mongo.Pipeline{
		bson.D{{
			Key: "$lookup",
			Value: bson.D{
				{Key: "from", Value: config.UserCollection},
				{Key: "localField", Value: "user_id"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "user_info"},
			},
		}},
		bson.D{{
			Key: "$unwind",
			Value: bson.D{
				{Key: "path", Value: "$user_info"},
				{Key: "preserveNullAndEmptyArrays", Value: false},
			},
		}},
		bson.D{{
			Key: "$project",
			Value: bson.D{
				{Key: "_id", Value: 1},
				{Key: "user_id", Value: 1},
				{Key: "leave_type", Value: 1},
				{Key: "start_date", Value: 1},
				{Key: "end_date", Value: 1},
				{Key: "reason", Value: 1},
				{Key: "status", Value: 1},
				{Key: "note", Value: 1},
				{Key: "attachment_url", Value: 1},
				{Key: "created_at", Value: 1},
				{Key: "updated_at", Value: 1},
				{Key: "user_name", Value: "$user_info.name"},
				{Key: "user_email", Value: "$user_info.email"},
				{Key: "user_photo", Value: "$user_info.photo"},
			},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal melakukan agregasi untuk pengajuan dengan detail user: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("gagal mendecode pengajuan dengan detail user: %w", err)
	}

	if len(requests) == 0 {
		return []models.LeaveRequestWithUser{}, nil
	}
	return requests, nil
}

func (r *leaveRequestRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.LeaveRequest, error) {
	var requests []models.LeaveRequest
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari pengajuan cuti berdasarkan user ID: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("gagal decode hasil pengajuan cuti: %w", err)
	}

	if len(requests) == 0 {
		return []models.LeaveRequest{}, nil
	}
	return requests, nil
}

func (r *leaveRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan pengajuan berdasarkan ID: %w", err)
	}
	return &request, nil
}

// FindApprovedRequestByUserAndDate mencari pengajuan approved yang rentangnya
// mencakup tanggal tertentu. Dipakai untuk cek cuti saat absensi.
func (r *leaveRequestRepository) FindApprovedRequestByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	filter := bson.M{
		"user_id":    userID,
		"status":     "approved",
		"start_date": bson.M{"$lte": date},
		"end_date":   bson.M{"$gte": date},
	}

	err := r.collection.FindOne(ctx, filter).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari pengajuan approved: %w", err)
	}
	return &request, nil
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, note string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"note":       note,
			"updated_at": time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate status pengajuan: %w", err)
	}
	return result, nil
}

func (r *leaveRequestRepository) UpdateAttachmentURL(ctx context.Context, id primitive.ObjectID, fileURL string) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"attachment_url": fileURL, "updated_at": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate URL lampiran: %w", err)
	}
	return result, nil
}

