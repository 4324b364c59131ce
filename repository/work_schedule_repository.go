package repository

import (
	"context"
	"errors"
	"time"

	"Sistem-HR-Marketplace/config"
	"Sistem-HR-Marketplace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type WorkScheduleRepository struct {
	collection *mongo.Collection
}

func NewWorkScheduleRepository() *WorkScheduleRepository {
	return &WorkScheduleRepository{
		collection: config.GetCollection(config.WorkScheduleCollection),
	}
}

func (r *WorkScheduleRepository) Create(ctx context.Context, schedule *models.WorkSchedule) (*models.WorkSchedule, error) {
	schedule.ID = primitive.NewObjectID()
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, schedule)
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// FindAllWithFilter mendukung filtering dinamis dari handler.
func (r *WorkScheduleRepository) FindAllWithFilter(ctx context.Context, filter bson.M) ([]models.WorkSchedule, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []models.WorkSchedule
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *WorkScheduleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.WorkSchedule, error) {
	var schedule models.WorkSchedule
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("jadwal tidak ditemukan")
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *WorkScheduleRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, payload *models.WorkScheduleUpdatePayload) error {
	update := bson.M{
		"$set": bson.M{
			"date":            payload.Date,
			"start_time":      payload.StartTime,
			"end_time":        payload.EndTime,
			"note":            payload.Note,
			"recurrence_rule": payload.RecurrenceRule,
			"updated_at":      time.Now(),
		},
	}

	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("jadwal tidak ditemukan")
	}
	return nil
}

func (r *WorkScheduleRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("jadwal tidak ditemukan")
	}
	return nil
}
