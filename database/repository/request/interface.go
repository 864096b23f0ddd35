package requestRepo

import "shareit/models"

// RequestRepository defines the interface for item request data access.
type RequestRepository interface {
	// Create persists a new item request and assigns its id.
	Create(request *models.ItemRequest) error

	// GetByID returns the request or (nil, nil) when absent.
	GetByID(id int64) (*models.ItemRequest, error)

	// FindByRequestor returns the user's own requests, newest first.
	FindByRequestor(userID int64) ([]models.ItemRequest, error)

	// FindByOtherRequestors returns one page of requests posted by anyone
	// but the user, newest first. The page index is from/size.
	FindByOtherRequestors(userID int64, from, size int) ([]models.ItemRequest, error)
}
