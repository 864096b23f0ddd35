package user

import "shareit/models"

// UserService manages registered users. Emails are unique across users.
type UserService interface {
	Create(in models.UserCreate) (*models.User, error)
	Update(id int64, patch models.UserUpdate) (*models.User, error)
	GetByID(id int64) (*models.User, error)
	GetAll() ([]models.User, error)
	Delete(id int64) error
}
