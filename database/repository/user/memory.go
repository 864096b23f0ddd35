package userRepo

import (
	"fmt"
	"sort"
	"sync"

	"shareit/models"
)

// MemoryUserRepo is an in-memory UserRepository used by service tests.
type MemoryUserRepo struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]models.User
}

// NewMemoryUserRepo creates an empty in-memory user repository.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{byID: make(map[int64]models.User)}
}

func (r *MemoryUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	user.ID = r.seq
	r.byID[user.ID] = *user
	return nil
}

func (r *MemoryUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID]; !ok {
		return fmt.Errorf("user with id %d not found", user.ID)
	}
	r.byID[user.ID] = *user
	return nil
}

func (r *MemoryUserRepo) GetByID(id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *MemoryUserRepo) GetAll() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryUserRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("user with id %d not found", id)
	}
	delete(r.byID, id)
	return nil
}

func (r *MemoryUserRepo) ExistsByID(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	return ok, nil
}

func (r *MemoryUserRepo) ExistsByEmail(email string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}
