package requestRepo

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

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo creates a new instance of RequestRepository using MongoDB.
func NewMongoRequestRepo() RequestRepository {
	repo := &MongoRequestRepo{coll: database.Collection("requests")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRequestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "requestor_id", Value: 1}, {Key: "created", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new item request document.
func (r *MongoRequestRepo) Create(request *models.ItemRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextID("requests")
	if err != nil {
		return err
	}
	request.ID = id

	if _, err := r.coll.InsertOne(ctx, request); err != nil {
		return fmt.Errorf("failed to create item request: %w", err)
	}
	return nil
}

// GetByID retrieves a request by its id, or (nil, nil) when absent.
func (r *MongoRequestRepo) GetByID(id int64) (*models.ItemRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.ItemRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch request with id %d: %w", id, err)
	}
	return &req, nil
}

// FindByRequestor returns the user's own requests, newest first.
func (r *MongoRequestRepo) FindByRequestor(userID int64) ([]models.ItemRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"requestor_id": userID},
		options.Find().SetSort(bson.D{{Key: "created", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests for user %d: %w", userID, err)
	}
	defer cursor.Close(ctx)

	return decodeRequests(ctx, cursor)
}

// FindByOtherRequestors returns one page of everyone else's requests.
func (r *MongoRequestRepo) FindByOtherRequestors(userID int64, from, size int) ([]models.ItemRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created", Value: -1}}).
		SetSkip(int64(from / size * size)).
		SetLimit(int64(size))

	cursor, err := r.coll.Find(ctx, bson.M{"requestor_id": bson.M{"$ne": userID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch other users' requests: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeRequests(ctx, cursor)
}

func decodeRequests(ctx context.Context, cursor *mongo.Cursor) ([]models.ItemRequest, error) {
	var out []models.ItemRequest
	for cursor.Next(ctx) {
		var req models.ItemRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}
		out = append(out, req)
	}
	return out, cursor.Err()
}
