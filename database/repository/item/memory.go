package itemRepo

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"shareit/models"
)

// MemoryItemRepo is an in-memory ItemRepository used by service tests.
type MemoryItemRepo struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]models.Item
}

// NewMemoryItemRepo creates an empty in-memory item repository.
func NewMemoryItemRepo() *MemoryItemRepo {
	return &MemoryItemRepo{byID: make(map[int64]models.Item)}
}

func (r *MemoryItemRepo) Create(item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	item.ID = r.seq
	r.byID[item.ID] = *item
	return nil
}

func (r *MemoryItemRepo) Update(item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[item.ID]; !ok {
		return fmt.Errorf("item with id %d not found", item.ID)
	}
	r.byID[item.ID] = *item
	return nil
}

func (r *MemoryItemRepo) GetByID(id int64) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *MemoryItemRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("item with id %d not found", id)
	}
	delete(r.byID, id)
	return nil
}

func (r *MemoryItemRepo) ListByOwner(ownerID int64, from, size int) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []models.Item
	for _, item := range r.byID {
		if item.OwnerID == ownerID {
			owned = append(owned, item)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	offset := from / size * size
	if offset >= len(owned) {
		return nil, nil
	}
	endIdx := offset + size
	if endIdx > len(owned) {
		endIdx = len(owned)
	}
	return owned[offset:endIdx], nil
}

func (r *MemoryItemRepo) Search(text string) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(text)
	var out []models.Item
	for _, item := range r.byID {
		if !item.IsAvailable() {
			continue
		}
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryItemRepo) FindByRequestIDs(requestIDs []int64) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[int64]bool, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = true
	}

	var out []models.Item
	for _, item := range r.byID {
		if item.RequestID != 0 && wanted[item.RequestID] {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
