package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoConn *mongo.Client

var DBName string = "hr-marketplace-db"
var UserCollection string = "users"
var AttendanceCollection string = "attendances"
var LeaveRequestCollection string = "leave_requests"
var BookingCollection string = "bookings"
var WorkScheduleCollection string = "work_schedules"
var DepartmentCollection string = "departments"
var QRCodeCollection string = "qr_codes"

func MongoConnect() {

	mongoURI := os.Getenv("MONGOSTRING")

	if mongoURI == "" {
		log.Fatal("MONGOSTRING belum di setting di env. coba setting dulu")
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB!")
	MongoConn = client
}

// InitDatabase membuat index yang dibutuhkan aplikasi.
func InitDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := GetCollection(UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("Warning: gagal membuat index unik email: %v", err)
	}

	// Index untuk query availability per worker per bulan.
	_, err = GetCollection(BookingCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "worker_id", Value: 1}, {Key: "preferred_date", Value: 1}},
	})
	if err != nil {
		log.Printf("Warning: gagal membuat index booking: %v", err)
	}

	_, err = GetCollection(AttendanceCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		log.Printf("Warning: gagal membuat index absensi: %v", err)
	}
}

func GetCollection(collectionName string) *mongo.Collection {
	if MongoConn == nil {
		log.Fatal("MongoDB untuk client tidak di inisialisasi. Panggil MongoConnect() first")
	}
	return MongoConn.Database(DBName).Collection(collectionName)
}

func DisconnectDB() {
	if MongoConn != nil {
		if err := MongoConn.Disconnect(context.Background()); err != nil {
			log.Fatalf("Error disconnecting from MongoDB: %v", err)
		}
		log.Println("Disconnect from MongoDB")
	}
}
