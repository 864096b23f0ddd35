package item

import "shareit/models"

// ItemService manages listed items, their comments, and the owner-side
// projection that decorates items with booking summaries.
type ItemService interface {
	Create(ownerID int64, in models.ItemCreate) (*models.Item, error)
	Update(ownerID, itemID int64, patch models.ItemUpdate) (*models.Item, error)
	GetByID(requesterID, itemID int64) (*models.ItemView, error)
	Delete(ownerID, itemID int64) error

	// Search returns available items matching text; blank text yields an
	// empty result.
	Search(requesterID int64, text string) ([]models.Item, error)

	// ListByOwner returns one page of the owner's items, each with its
	// last and next approved booking and all comments.
	ListByOwner(ownerID int64, from, size int) ([]models.ItemOwnerView, error)

	// AddComment records feedback from a user who completed an approved
	// booking for the item.
	AddComment(userID, itemID int64, in models.CommentCreate) (*models.Comment, error)
}
