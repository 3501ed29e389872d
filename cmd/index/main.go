package main

import (
	"context"
	"log"
	"time"

	"github.com/Malmeu/food-force-v2-sub001/internal/config"
	"github.com/Malmeu/food-force-v2-sub001/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Jobs indexes
	createIndex(ctx, db, "jobs", bson.D{{Key: "establishmentId", Value: 1}}, nil)
	createIndex(ctx, db, "jobs", bson.D{
		{Key: "status", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)
	createIndex(ctx, db, "jobs", bson.D{{Key: "location.city", Value: 1}}, nil)

	// Applications indexes. One application per candidate per job.
	createIndex(ctx, db, "applications", bson.D{
		{Key: "jobId", Value: 1},
		{Key: "candidateId", Value: 1},
	}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "applications", bson.D{{Key: "candidateId", Value: 1}}, nil)

	// Missions indexes
	createIndex(ctx, db, "missions", bson.D{{Key: "establishmentId", Value: 1}}, nil)
	createIndex(ctx, db, "missions", bson.D{{Key: "candidateId", Value: 1}}, nil)

	// Work hours indexes
	createIndex(ctx, db, "work_hours", bson.D{
		{Key: "missionId", Value: 1},
		{Key: "status", Value: 1},
	}, nil)
	createIndex(ctx, db, "work_hours", bson.D{{Key: "candidateId", Value: 1}}, nil)

	// Payments indexes
	createIndex(ctx, db, "payments", bson.D{{Key: "missionId", Value: 1}}, nil)
	createIndex(ctx, db, "payments", bson.D{{Key: "employerId", Value: 1}}, nil)
	createIndex(ctx, db, "payments", bson.D{{Key: "candidateId", Value: 1}}, nil)

	// Notifications indexes
	createIndex(ctx, db, "notifications", bson.D{
		{Key: "recipientId", Value: 1},
		{Key: "read", Value: 1},
	}, nil)
	createIndex(ctx, db, "notifications", bson.D{{Key: "createdAt", Value: -1}}, nil)

	// Messages indexes
	createIndex(ctx, db, "messages", bson.D{
		{Key: "senderId", Value: 1},
		{Key: "recipientId", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)
	createIndex(ctx, db, "messages", bson.D{{Key: "recipientId", Value: 1}}, nil)

	// Ratings indexes. One rating per rater per mission.
	createIndex(ctx, db, "ratings", bson.D{
		{Key: "missionId", Value: 1},
		{Key: "raterId", Value: 1},
	}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "ratings", bson.D{{Key: "ratedId", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
