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

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]models.BookingWithWorker, error)
	FindByWorkerID(ctx context.Context, workerID primitive.ObjectID) ([]models.Booking, error)
	FindByWorkerAndMonth(ctx context.Context, workerID primitive.ObjectID, firstDay, lastDay string) ([]models.Booking, error)
	FindAcceptedByWorkerAndDate(ctx context.Context, workerID primitive.ObjectID, date string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
}

type bookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository() BookingRepository {
	return &bookingRepository{
		collection: config.GetCollection(config.BookingCollection),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) (*mongo.InsertOneResult, error) {
	res, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat booking: %w", err)
	}
	return res, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan booking berdasarkan ID: %w", err)
	}
	return &booking, nil
}

// FindByCustomerEmail mengembalikan booking milik satu customer beserta detail
// worker untuk ditampilkan di daftar pesanan.
func (r *bookingRepository) FindByCustomerEmail(ctx context.Context, email string) ([]models.BookingWithWorker, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "customer_email", Value: email}}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "worker_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "workerDetails"},
		}}},
		{{Key: "$unwind", Value: "$workerDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "reference_code", Value: 1},
			{Key: "worker_id", Value: 1},
			{Key: "customer_email", Value: 1},
			{Key: "customer_name", Value: 1},
			{Key: "preferred_date", Value: 1},
			{Key: "preferred_time", Value: 1},
			{Key: "job_detail", Value: 1},
			{Key: "status", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "worker_name", Value: "$workerDetails.name"},
			{Key: "worker_photo", Value: "$workerDetails.photo"},
			{Key: "worker_position", Value: "$workerDetails.position"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal aggregation untuk booking customer: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.BookingWithWorker
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode booking customer: %w", err)
	}

	if len(results) == 0 {
		return []models.BookingWithWorker{}, nil
	}
	return results, nil
}

func (r *bookingRepository) FindByWorkerID(ctx context.Context, workerID primitive.ObjectID) ([]models.Booking, error) {
	filter := bson.M{"worker_id": workerID}
	opts := options.Find().SetSort(bson.D{{Key: "preferred_date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari booking worker: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Booking
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode booking worker: %w", err)
	}

	if len(results) == 0 {
		return []models.Booking{}, nil
	}
	return results, nil
}

// FindByWorkerAndMonth mengambil booking satu worker yang tanggalnya berada di
// rentang satu bulan. String tanggal format 2006-01-02 aman dibandingkan leksikal.
func (r *bookingRepository) FindByWorkerAndMonth(ctx context.Context, workerID primitive.ObjectID, firstDay, lastDay string) ([]models.Booking, error) {
	filter := bson.M{
		"worker_id": workerID,
		"preferred_date": bson.M{
			"$gte": firstDay,
			"$lte": lastDay,
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari booking per bulan: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Booking
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode booking per bulan: %w", err)
	}

	if len(results) == 0 {
		return []models.Booking{}, nil
	}
	return results, nil
}

// FindAcceptedByWorkerAndDate dipakai untuk menjaga invariant: satu worker tidak
// boleh punya dua booking accepted di tanggal yang sama.
func (r *bookingRepository) FindAcceptedByWorkerAndDate(ctx context.Context, workerID primitive.ObjectID, date string) (*models.Booking, error) {
	var booking models.Booking
	filter := bson.M{
		"worker_id":      workerID,
		"preferred_date": date,
		"status":         "accepted",
	}

	err := r.collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari booking accepted: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate status booking: %w", err)
	}
	return result, nil
}
