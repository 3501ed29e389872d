package repository

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentRepository defines the interface for payment data operations.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
	FindByMission(ctx context.Context, missionID primitive.ObjectID, page, limit int) ([]models.Payment, int, error)
	FindByEmployer(ctx context.Context, employerID primitive.ObjectID, page, limit int) ([]models.Payment, int, error)
	FindByCandidate(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.Payment, int, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.PaymentStatus, paymentDate *time.Time) (*models.Payment, error)
	EmployerStats(ctx context.Context, employerID primitive.ObjectID) (*models.EmployerPaymentStats, error)
}

// paymentRepository implements PaymentRepository using MongoDB.
type paymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepository{
		collection: db.Collection("payments"),
	}
}

// Create inserts a new payment.
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return err
	}

	payment.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a payment by its ID.
func (r *paymentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	var payment models.Payment

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return &payment, nil
}

// FindByMission returns paginated payments for a mission, newest first.
func (r *paymentRepository) FindByMission(ctx context.Context, missionID primitive.ObjectID, page, limit int) ([]models.Payment, int, error) {
	return r.findPage(ctx, bson.M{"missionId": missionID}, page, limit)
}

// FindByEmployer returns paginated payments issued by an employer, newest first.
func (r *paymentRepository) FindByEmployer(ctx context.Context, employerID primitive.ObjectID, page, limit int) ([]models.Payment, int, error) {
	return r.findPage(ctx, bson.M{"employerId": employerID}, page, limit)
}

// FindByCandidate returns paginated payments addressed to a candidate, newest first.
func (r *paymentRepository) FindByCandidate(ctx context.Context, candidateID primitive.ObjectID, page, limit int) ([]models.Payment, int, error) {
	return r.findPage(ctx, bson.M{"candidateId": candidateID}, page, limit)
}

func (r *paymentRepository) findPage(ctx context.Context, query bson.M, page, limit int) ([]models.Payment, int, error) {
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, 0, err
	}

	if payments == nil {
		payments = []models.Payment{}
	}

	return payments, int(total), nil
}

// UpdateStatus sets a payment's status and, when provided, its payment date.
// Transition legality is enforced by the service.
func (r *paymentRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.PaymentStatus, paymentDate *time.Time) (*models.Payment, error) {
	set := bson.M{"status": status, "updatedAt": time.Now()}
	if paymentDate != nil {
		set["paymentDate"] = *paymentDate
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// EmployerStats aggregates an employer's payments by status and by creation month.
func (r *paymentRepository) EmployerStats(ctx context.Context, employerID primitive.ObjectID) (*models.EmployerPaymentStats, error) {
	byStatus, err := r.aggregateByStatus(ctx, employerID)
	if err != nil {
		return nil, err
	}

	byMonth, err := r.aggregateByMonth(ctx, employerID)
	if err != nil {
		return nil, err
	}

	stats := &models.EmployerPaymentStats{
		ByStatus: byStatus,
		ByMonth:  byMonth,
	}
	for _, s := range byStatus {
		stats.TotalAmount += s.Amount
		stats.TotalCount += s.Count
	}

	return stats, nil
}

func (r *paymentRepository) aggregateByStatus(ctx context.Context, employerID primitive.ObjectID) ([]models.PaymentStatusTotal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"employerId": employerID}}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$status",
			"count":  bson.M{"$sum": 1},
			"amount": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var totals []models.PaymentStatusTotal
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, err
	}

	if totals == nil {
		totals = []models.PaymentStatusTotal{}
	}

	return totals, nil
}

func (r *paymentRepository) aggregateByMonth(ctx context.Context, employerID primitive.ObjectID) ([]models.PaymentMonthTotal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"employerId": employerID}}},
		{{Key: "$group", Value: bson.M{
			"_id":    bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$createdAt"}},
			"count":  bson.M{"$sum": 1},
			"amount": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var totals []models.PaymentMonthTotal
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, err
	}

	if totals == nil {
		totals = []models.PaymentMonthTotal{}
	}

	return totals, nil
}
