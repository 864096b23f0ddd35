package itemRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"shareit/database"
	"shareit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoItemRepo implements ItemRepository using MongoDB.
type MongoItemRepo struct {
	coll *mongo.Collection
}

// NewMongoItemRepo creates a new instance of ItemRepository using MongoDB.
func NewMongoItemRepo() ItemRepository {
	repo := &MongoItemRepo{coll: database.Collection("items")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoItemRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new item document.
func (r *MongoItemRepo) Create(item *models.Item) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextID("items")
	if err != nil {
		return err
	}
	item.ID = id

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// Update replaces an existing item document.
func (r *MongoItemRepo) Update(item *models.Item) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": item.ID}, bson.M{"$set": item})
	if err != nil {
		return fmt.Errorf("failed to update item with id %d: %w", item.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("item with id %d not found", item.ID)
	}
	return nil
}

// GetByID retrieves an item by its id, or (nil, nil) when absent.
func (r *MongoItemRepo) GetByID(id int64) (*models.Item, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var item models.Item
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch item with id %d: %w", id, err)
	}
	return &item, nil
}

// Delete removes an item document by its id.
func (r *MongoItemRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete item with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("item with id %d not found", id)
	}
	return nil
}

// ListByOwner returns one page of the owner's items ordered by id.
func (r *MongoItemRepo) ListByOwner(ownerID int64, from, size int) ([]models.Item, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "id", Value: 1}}).
		SetSkip(int64(from / size * size)).
		SetLimit(int64(size))

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list items for owner %d: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	return decodeItems(ctx, cursor)
}

// Search returns available items matching text in name or description.
func (r *MongoItemRepo) Search(text string) ([]models.Item, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pattern := regexp.QuoteMeta(text)
	regex := bson.M{"$regex": pattern, "$options": "i"}
	filter := bson.M{
		"available": true,
		"$or": []bson.M{
			{"name": regex},
			{"description": regex},
		},
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("item search failed: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeItems(ctx, cursor)
}

// FindByRequestIDs returns all items answering the given requests.
func (r *MongoItemRepo) FindByRequestIDs(requestIDs []int64) ([]models.Item, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"request_id": bson.M{"$in": requestIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items by request ids: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeItems(ctx, cursor)
}

func decodeItems(ctx context.Context, cursor *mongo.Cursor) ([]models.Item, error) {
	var out []models.Item
	for cursor.Next(ctx) {
		var item models.Item
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode item: %w", err)
		}
		out = append(out, item)
	}
	return out, cursor.Err()
}
