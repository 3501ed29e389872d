package main

import (
	"context"
	"log"
	"time"

	"github.com/Malmeu/food-force-v2-sub001/internal/config"
	"github.com/Malmeu/food-force-v2-sub001/internal/database"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	establishmentID, candidateID := seedUsers(ctx, mongoDB.Database)
	jobID := seedJobs(ctx, mongoDB.Database, establishmentID)
	applicationID := seedApplications(ctx, mongoDB.Database, jobID, candidateID)
	seedMissions(ctx, mongoDB.Database, establishmentID, candidateID, applicationID)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) (primitive.ObjectID, primitive.ObjectID) {
	collection := db.Collection("users")

	// Clear existing users
	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	password, err := auth.HashPassword("password123")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()

	establishment := models.User{
		ID:       primitive.NewObjectID(),
		Email:    "bistro@example.com",
		Password: password,
		UserType: models.UserTypeEstablishment,
		Establishment: &models.EstablishmentProfile{
			Name:        "Le Petit Bistro",
			Description: "Traditional French bistro in the heart of Paris",
			Address:     "12 rue des Halles",
			City:        "Paris",
			Phone:       "+33145678901",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	candidate := models.User{
		ID:       primitive.NewObjectID(),
		Email:    "marie@example.com",
		Password: password,
		UserType: models.UserTypeCandidate,
		Candidate: &models.CandidateProfile{
			FirstName:  "Marie",
			LastName:   "Dubois",
			Phone:      "+33612345678",
			City:       "Paris",
			Skills:     []string{"service", "barista"},
			Experience: "3 years in fine dining",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := collection.InsertMany(ctx, []interface{}{establishment, candidate}); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded 2 users (password: password123)")
	return establishment.ID, candidate.ID
}

func seedJobs(ctx context.Context, db *mongo.Database, establishmentID primitive.ObjectID) primitive.ObjectID {
	collection := db.Collection("jobs")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear jobs: %v", err)
	}

	now := time.Now()

	jobs := []interface{}{
		models.Job{
			ID:              primitive.NewObjectID(),
			EstablishmentID: establishmentID,
			Title:           "Serveur / Serveuse",
			Description:     "Evening service, 5 days a week",
			ContractType:    "CDD",
			Sector:          "restaurant",
			Location:        models.Location{City: "Paris", Address: "12 rue des Halles"},
			Salary:          models.Salary{Amount: 14.5, Period: "hour", Currency: "EUR"},
			RequiredSkills:  []string{"service"},
			Schedule:        "18:00-01:00",
			Status:          models.JobStatusActive,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		models.Job{
			ID:              primitive.NewObjectID(),
			EstablishmentID: establishmentID,
			Title:           "Chef de partie",
			Description:     "Winter season reinforcement",
			ContractType:    "CDI",
			Sector:          "restaurant",
			Location:        models.Location{City: "Paris", Address: "12 rue des Halles"},
			Salary:          models.Salary{Amount: 16, Period: "hour", Currency: "EUR"},
			RequiredSkills:  []string{"grill", "pastry"},
			Schedule:        "10:00-18:00",
			Status:          models.JobStatusActive,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}

	if _, err := collection.InsertMany(ctx, jobs); err != nil {
		log.Fatalf("Failed to seed jobs: %v", err)
	}

	log.Printf("Seeded %d jobs", len(jobs))
	return jobs[0].(models.Job).ID
}

func seedApplications(ctx context.Context, db *mongo.Database, jobID, candidateID primitive.ObjectID) primitive.ObjectID {
	collection := db.Collection("applications")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear applications: %v", err)
	}

	now := time.Now()

	application := models.Application{
		ID:          primitive.NewObjectID(),
		JobID:       jobID,
		CandidateID: candidateID,
		CoverLetter: "I have three years of experience in fine dining service.",
		Status:      models.ApplicationAccepted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := collection.InsertOne(ctx, application); err != nil {
		log.Fatalf("Failed to seed applications: %v", err)
	}

	log.Println("Seeded 1 application")
	return application.ID
}

func seedMissions(ctx context.Context, db *mongo.Database, establishmentID, candidateID, applicationID primitive.ObjectID) {
	collection := db.Collection("missions")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear missions: %v", err)
	}

	now := time.Now()

	mission := models.Mission{
		ID:              primitive.NewObjectID(),
		Title:           "Service renfort février",
		Description:     "Evening reinforcement for the winter season",
		EstablishmentID: establishmentID,
		CandidateID:     candidateID,
		ApplicationID:   applicationID,
		StartDate:       now.AddDate(0, 0, 7),
		EndDate:         now.AddDate(0, 1, 7),
		Status:          models.MissionPending,
		Priority:        models.PriorityMedium,
		HourlyRate:      15.5,
		EstimatedHours:  120,
		Notes:           "Uniform provided",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := collection.InsertOne(ctx, mission); err != nil {
		log.Fatalf("Failed to seed missions: %v", err)
	}

	log.Println("Seeded 1 mission")
}
