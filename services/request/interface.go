package request

import "shareit/models"

// RequestService manages item requests: wishes for items nobody has listed
// yet, answered by owners listing items against them.
type RequestService interface {
	Create(userID int64, in models.RequestCreate) (*models.ItemRequest, error)
	GetByID(userID, requestID int64) (*models.RequestView, error)

	// GetOwn returns the caller's requests, newest first, with answers.
	GetOwn(userID int64) ([]models.RequestView, error)

	// GetAllOthers pages other users' requests, newest first, with answers.
	GetAllOthers(userID int64, from, size int) ([]models.RequestView, error)
}
