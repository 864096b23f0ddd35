package user

import (
	"strings"

	userRepo "shareit/database/repository/user"
	"shareit/models"
	"shareit/utils"

	"go.uber.org/zap"
)

// DefaultUserService is the default implementation of UserService.
type DefaultUserService struct {
	Users userRepo.UserRepository
}

// Create registers a new user; the email must not be in use.
func (s *DefaultUserService) Create(in models.UserCreate) (*models.User, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(in.Email) == "" {
		return nil, utils.InvalidInput("email required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, utils.InvalidInput("name required")
	}

	used, err := s.Users.ExistsByEmail(in.Email, 0)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, utils.Conflict("email already used")
	}

	u := &models.User{Name: in.Name, Email: in.Email}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}

	logger.Info("user created", zap.Int64("userId", u.ID))
	return u, nil
}

// Update patches a user; a new email must not belong to another user.
func (s *DefaultUserService) Update(id int64, patch models.UserUpdate) (*models.User, error) {
	u, err := s.Users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.NotFound("user not found")
	}

	if patch.Email != nil {
		used, err := s.Users.ExistsByEmail(*patch.Email, id)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, utils.Conflict("email already used")
		}
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}

	if err := s.Users.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetByID returns the user by id.
func (s *DefaultUserService) GetByID(id int64) (*models.User, error) {
	u, err := s.Users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.NotFound("user not found")
	}
	return u, nil
}

// GetAll returns every registered user.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	users, err := s.Users.GetAll()
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Delete removes a user by id.
func (s *DefaultUserService) Delete(id int64) error {
	u, err := s.Users.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return utils.NotFound("user not found")
	}
	return s.Users.Delete(id)
}
