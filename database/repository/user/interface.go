package userRepo

import "shareit/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create persists a new user and assigns its id.
	Create(user *models.User) error

	// Update replaces an existing user document.
	Update(user *models.User) error

	// GetByID returns the user or (nil, nil) when absent.
	GetByID(id int64) (*models.User, error)

	// GetAll returns all users ordered by id.
	GetAll() ([]models.User, error)

	// Delete removes a user by its id.
	Delete(id int64) error

	// ExistsByID answers whether a user with the id exists.
	ExistsByID(id int64) (bool, error)

	// ExistsByEmail answers whether any user other than excludeID uses the
	// email. Pass excludeID of 0 to match all users.
	ExistsByEmail(email string, excludeID int64) (bool, error)
}
