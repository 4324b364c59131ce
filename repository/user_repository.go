package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Sistem-HR-Marketplace/config"
	"Sistem-HR-Marketplace/models"
)

type UserRepository struct {
	collection      *mongo.Collection
	leaveCollection *mongo.Collection
	bookingColl     *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		collection:      config.GetCollection(config.UserCollection),
		leaveCollection: config.GetCollection(config.LeaveRequestCollection),
		bookingColl:     config.GetCollection(config.BookingCollection),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email sudah ada")
		}
		return nil, fmt.Errorf("gagal membuat user: %w", err)
	}
	return result, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	filter := bson.M{"email": email}

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan user berdasarkan email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan user berdasarkan ID: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate user: %w", err)
	}
	return result, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	filter := bson.M{"_id": id}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus user: %w", err)
	}
	return result, nil
}

func (r *UserRepository) GetAllUsers(ctx context.Context, filter bson.M, page, limit int64) ([]models.User, int64, error) {
	findOptions := options.Find()
	findOptions.SetSkip((page - 1) * limit)
	findOptions.SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menemukan user: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User

	if err = cursor.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("gagal mendecode user: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung user: %w", err)
	}

	return users, total, nil
}

// FindAcceptedWorkers mengembalikan worker yang lolos review dan boleh tampil
// di marketplace.
func (r *UserRepository) FindAcceptedWorkers(ctx context.Context) ([]models.User, error) {
	filter := bson.M{
		"role":               models.RoleKaryawan,
		"application_status": models.ApplicationAccepted,
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("gagal menemukan worker: %w", err)
	}
	defer cursor.Close(ctx)

	var workers []models.User
	if err = cursor.All(ctx, &workers); err != nil {
		return nil, fmt.Errorf("gagal mendecode worker: %w", err)
	}

	if len(workers) == 0 {
		return []models.User{}, nil
	}
	return workers, nil
}

func (r *UserRepository) UpdateApplicationStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"application_status": status,
			"updated_at":         time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "role": models.RoleKaryawan}, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate status lamaran worker: %w", err)
	}
	return result, nil
}

func (r *UserRepository) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {

	totalUsers, err := r.collection.CountDocuments(ctx, bson.M{"role": bson.M{"$in": []string{models.RoleKaryawan, models.RoleHR}}})
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung total karyawan: %w", err)
	}

	activeUsers, err := r.collection.CountDocuments(ctx, bson.M{"role": models.RoleKaryawan})
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung karyawan aktif: %w", err)
	}

	pendingWorkers, err := r.collection.CountDocuments(ctx, bson.M{
		"role":               models.RoleKaryawan,
		"application_status": models.ApplicationPending,
	})
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung worker pending: %w", err)
	}

	pendingLeaves, err := r.leaveCollection.CountDocuments(ctx, bson.M{"status": "pending"})
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung pengajuan tertunda: %w", err)
	}

	pendingBookings, err := r.bookingColl.CountDocuments(ctx, bson.M{"status": "pending"})
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung booking tertunda: %w", err)
	}

	pipeline := []bson.M{
		{"$match": bson.M{"department": bson.M{"$ne": ""}}},
		{"$group": bson.M{
			"_id":   "$department",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal melakukan agregasi distribusi departemen: %w", err)
	}
	defer cursor.Close(ctx)

	var departmentCounts []models.DepartmentCount
	if err = cursor.All(ctx, &departmentCounts); err != nil {
		return nil, fmt.Errorf("gagal mendecode distribusi departemen: %w", err)
	}

	stats := &models.DashboardStats{
		TotalKaryawan:             totalUsers,
		KaryawanAktif:             activeUsers,
		WorkerPending:             pendingWorkers,
		PendingLeaveRequestsCount: pendingLeaves,
		PendingBookingsCount:      pendingBookings,
		TotalDepartemen:           int64(len(departmentCounts)),
		DistribusiDepartemen:      departmentCounts,
	}

	return stats, nil
}
