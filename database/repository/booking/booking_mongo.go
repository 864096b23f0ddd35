package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"shareit/database"
	"shareit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// compound (item_id, status, start, end) index backs the overlap checks.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "item_id", Value: 1},
			{Key: "status", Value: 1},
			{Key: "start", Value: 1},
			{Key: "end", Value: 1},
		}},
		{Keys: bson.D{{Key: "booker_id", Value: 1}, {Key: "start", Value: -1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "start", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextID("bookings")
	if err != nil {
		return err
	}
	b.ID = id
	b.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its id, or (nil, nil) when absent.
func (r *MongoBookingRepo) GetByID(id int64) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %d: %w", id, err)
	}
	return &b, nil
}

// ExistsApprovedOverlap answers the temporal overlap query for one item.
func (r *MongoBookingRepo) ExistsApprovedOverlap(itemID int64, start, end time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := overlapFilter(itemID, start, end)
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("overlap check failed for item %d: %w", itemID, err)
	}
	return count > 0, nil
}

// overlapFilter matches APPROVED bookings whose half-open interval
// intersects [start, end).
func overlapFilter(itemID int64, start, end time.Time) bson.M {
	return bson.M{
		"item_id": itemID,
		"status":  models.StatusApproved,
		"start":   bson.M{"$lt": end},
		"end":     bson.M{"$gt": start},
	}
}

// ExistsCompletedBooking answers the comment eligibility query.
func (r *MongoBookingRepo) ExistsCompletedBooking(bookerID, itemID int64, asOf time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"booker_id": bookerID,
		"item_id":   itemID,
		"status":    models.StatusApproved,
		"end":       bson.M{"$lt": asOf},
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("completed booking check failed: %w", err)
	}
	return count > 0, nil
}
