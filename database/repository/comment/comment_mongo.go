package commentRepo

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

// MongoCommentRepo implements CommentRepository using MongoDB.
type MongoCommentRepo struct {
	coll *mongo.Collection
}

// NewMongoCommentRepo creates a new instance of CommentRepository using MongoDB.
func NewMongoCommentRepo() CommentRepository {
	repo := &MongoCommentRepo{coll: database.Collection("comments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCommentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "item_id", Value: 1}, {Key: "created", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new comment document.
func (r *MongoCommentRepo) Create(comment *models.Comment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextID("comments")
	if err != nil {
		return err
	}
	comment.ID = id

	if _, err := r.coll.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindByItem returns the item's comments ordered by creation ascending.
func (r *MongoCommentRepo) FindByItem(itemID int64) ([]models.Comment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"item_id": itemID},
		options.Find().SetSort(bson.D{{Key: "created", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments for item %d: %w", itemID, err)
	}
	defer cursor.Close(ctx)

	return decodeComments(ctx, cursor)
}

// FindByItems returns comments for the given items grouped by item id.
func (r *MongoCommentRepo) FindByItems(itemIDs []int64) (map[int64][]models.Comment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"item_id": bson.M{"$in": itemIDs}},
		options.Find().SetSort(bson.D{{Key: "created", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments by item ids: %w", err)
	}
	defer cursor.Close(ctx)

	comments, err := decodeComments(ctx, cursor)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]models.Comment)
	for _, c := range comments {
		grouped[c.ItemID] = append(grouped[c.ItemID], c)
	}
	return grouped, nil
}

func decodeComments(ctx context.Context, cursor *mongo.Cursor) ([]models.Comment, error) {
	var out []models.Comment
	for cursor.Next(ctx) {
		var c models.Comment
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode comment: %w", err)
		}
		out = append(out, c)
	}
	return out, cursor.Err()
}
