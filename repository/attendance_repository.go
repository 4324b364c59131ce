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

type AttendanceRepository interface {
	// --- Methods for QRCode ---
	CreateQRCode(ctx context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error)
	FindQRCodeByValue(ctx context.Context, code string) (*models.QRCode, error)
	MarkQRCodeAsUsed(ctx context.Context, qrCodeID primitive.ObjectID, userID primitive.ObjectID) (*mongo.UpdateResult, error)

	// --- Methods for Attendance ---
	CreateAttendance(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error)
	FindOpenCycleByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error)
	FindAllByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]models.Attendance, error)
	CloseCycle(ctx context.Context, attendanceID primitive.ObjectID, checkOutTime time.Time, totalHours float64) (*mongo.UpdateResult, error)
	UpdateApprovalStatus(ctx context.Context, id primitive.ObjectID, status, note string) (*mongo.UpdateResult, error)
	DeleteAttendance(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error)
	FindAttendanceByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Attendance, error)
	GetTodayAttendanceWithUserDetails(ctx context.Context) ([]models.AttendanceWithUser, error)
	GetAllAttendancesWithUserDetails(ctx context.Context, filter bson.M, page, limit int64) ([]models.AttendanceWithUser, int64, error)
}

type attendanceRepository struct {
	qrCodeCollection     *mongo.Collection
	attendanceCollection *mongo.Collection
	userCollection       *mongo.Collection
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		qrCodeCollection:     config.GetCollection(config.QRCodeCollection),
		attendanceCollection: config.GetCollection(config.AttendanceCollection),
		userCollection:       config.GetCollection(config.UserCollection),
	}
}

func (r *attendanceRepository) CreateQRCode(ctx context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error) {
	res, err := r.qrCodeCollection.InsertOne(ctx, qrCode)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat QR Code: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindQRCodeByValue(ctx context.Context, value string) (*models.QRCode, error) {
	var qrCode models.QRCode
	err := r.qrCodeCollection.FindOne(ctx, bson.M{"code": value}).Decode(&qrCode)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &qrCode, nil
}

func (r *attendanceRepository) MarkQRCodeAsUsed(ctx context.Context, qrCodeID primitive.ObjectID, userID primitive.ObjectID) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": qrCodeID}
	update := bson.M{
		"$addToSet": bson.M{"used_by": userID},
		"$set":      bson.M{"updated_at": time.Now()},
	}

	res, err := r.qrCodeCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("gagal menandai QR Code sebagai sudah digunakan: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) CreateAttendance(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error) {
	res, err := r.attendanceCollection.InsertOne(ctx, attendance)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat absensi: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindOpenCycleByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error) {
	var attendance models.Attendance
	filter := bson.M{
		"user_id":       userID,
		"date":          date,
		"in_out_status": models.AttendanceIn,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "check_in_time", Value: -1}})

	err := r.attendanceCollection.FindOne(ctx, filter, opts).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari siklus absensi terbuka: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) FindAllByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]models.Attendance, error) {
	filter := bson.M{"user_id": userID, "date": date}
	opts := options.Find().SetSort(bson.D{{Key: "check_in_time", Value: 1}})

	cursor, err := r.attendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari absensi harian: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Attendance
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode absensi harian: %w", err)
	}

	if len(results) == 0 {
		return []models.Attendance{}, nil
	}
	return results, nil
}

// CloseCycle menutup satu siklus: set check-out, total jam, dan status OUT.
func (r *attendanceRepository) CloseCycle(ctx context.Context, attendanceID primitive.ObjectID, checkOutTime time.Time, totalHours float64) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"check_out_time": checkOutTime,
			"total_hours":    totalHours,
			"in_out_status":  models.AttendanceOut,
			"updated_at":     time.Now(),
		},
	}
	res, err := r.attendanceCollection.UpdateByID(ctx, attendanceID, update)
	if err != nil {
		return nil, fmt.Errorf("gagal update check-out absensi: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) UpdateApprovalStatus(ctx context.Context, id primitive.ObjectID, status, note string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"approval_status": status,
			"updated_at":      time.Now(),
		},
	}
	if note != "" {
		update["$set"].(bson.M)["note"] = note
	}

	res, err := r.attendanceCollection.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("gagal update status review absensi: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) DeleteAttendance(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	res, err := r.attendanceCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus absensi: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.attendanceCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan absensi berdasarkan ID: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) FindAttendanceByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Attendance, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "check_in_time", Value: -1}})

	cursor, err := r.attendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari riwayat absensi user: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Attendance
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode riwayat absensi: %w", err)
	}

	if len(results) == 0 {
		return []models.Attendance{}, nil
	}
	return results, nil
}

func attendanceUserProjection() bson.D {
	return bson.D{
		{Key: "_id", Value: "$_id"},
		{Key: "user_id", Value: 1},
		{Key: "date", Value: 1},
		{Key: "check_in_time", Value: 1},
		{Key: "check_out_time", Value: 1},
		{Key: "total_hours", Value: 1},
		{Key: "in_out_status", Value: 1},
		{Key: "approval_status", Value: 1},
		{Key: "note", Value: 1},
		{Key: "user_name", Value: "$userDetails.name"},
		{Key: "user_email", Value: "$userDetails.email"},
		{Key: "user_photo", Value: "$userDetails.photo"},
		{Key: "user_position", Value: "$userDetails.position"},
		{Key: "user_department", Value: "$userDetails.department"},
	}
}

func (r *attendanceRepository) GetTodayAttendanceWithUserDetails(ctx context.Context) ([]models.AttendanceWithUser, error) {
	today := time.Now().Format("2006-01-02")

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "date", Value: today}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$project", Value: attendanceUserProjection()}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal aggregation untuk daftar kehadiran hari ini: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceWithUser
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode hasil aggregation kehadiran: %w", err)
	}

	if len(results) == 0 {
		return []models.AttendanceWithUser{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) GetAllAttendancesWithUserDetails(ctx context.Context, filter bson.M, page, limit int64) ([]models.AttendanceWithUser, int64, error) {

	total, err := r.attendanceCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung total dokumen absensi: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}, {Key: "check_in_time", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$project", Value: attendanceUserProjection()}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal aggregation untuk riwayat kehadiran admin: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceWithUser
	if err = cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("gagal decode hasil aggregation riwayat kehadiran: %w", err)
	}

	if len(results) == 0 {
		return []models.AttendanceWithUser{}, total, nil
	}
	return results, total, nil
}
