package commentRepo

import "shareit/models"

// CommentRepository defines the interface for comment data access. The
// booking core only reads from it; writes happen through the item service.
type CommentRepository interface {
	// Create persists a new comment and assigns its id.
	Create(comment *models.Comment) error

	// FindByItem returns the item's comments ordered by creation ascending.
	FindByItem(itemID int64) ([]models.Comment, error)

	// FindByItems returns comments for all given items, grouped by item id,
	// each group ordered by creation ascending.
	FindByItems(itemIDs []int64) (map[int64][]models.Comment, error)
}
