package itemRepo

import "shareit/models"

// ItemRepository defines the interface for item data access.
type ItemRepository interface {
	// Create persists a new item and assigns its id.
	Create(item *models.Item) error

	// Update replaces an existing item document.
	Update(item *models.Item) error

	// GetByID returns the item or (nil, nil) when absent.
	GetByID(id int64) (*models.Item, error)

	// Delete removes an item by its id.
	Delete(id int64) error

	// ListByOwner returns one page of the owner's items ordered by id.
	// The page index is from/size, matching the booking listing semantics.
	ListByOwner(ownerID int64, from, size int) ([]models.Item, error)

	// Search returns available items whose name or description contains
	// text, case-insensitively.
	Search(text string) ([]models.Item, error)

	// FindByRequestIDs returns all items answering any of the given
	// item requests.
	FindByRequestIDs(requestIDs []int64) ([]models.Item, error)
}
