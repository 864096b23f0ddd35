package requestRepo

import (
	"sort"
	"sync"

	"shareit/models"
)

// MemoryRequestRepo is an in-memory RequestRepository used by service tests.
type MemoryRequestRepo struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]models.ItemRequest
}

// NewMemoryRequestRepo creates an empty in-memory request repository.
func NewMemoryRequestRepo() *MemoryRequestRepo {
	return &MemoryRequestRepo{byID: make(map[int64]models.ItemRequest)}
}

func (r *MemoryRequestRepo) Create(request *models.ItemRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	request.ID = r.seq
	r.byID[request.ID] = *request
	return nil
}

func (r *MemoryRequestRepo) GetByID(id int64) (*models.ItemRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

func (r *MemoryRequestRepo) FindByRequestor(userID int64) ([]models.ItemRequest, error) {
	return r.filtered(func(req models.ItemRequest) bool { return req.RequestorID == userID }, 0, 0), nil
}

func (r *MemoryRequestRepo) FindByOtherRequestors(userID int64, from, size int) ([]models.ItemRequest, error) {
	return r.filtered(func(req models.ItemRequest) bool { return req.RequestorID != userID }, from, size), nil
}

// filtered returns matching requests newest first; size 0 means no paging.
func (r *MemoryRequestRepo) filtered(keep func(models.ItemRequest) bool, from, size int) []models.ItemRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ItemRequest
	for _, req := range r.byID {
		if keep(req) {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created.After(out[j].Created) })

	if size <= 0 {
		return out
	}
	offset := from / size * size
	if offset >= len(out) {
		return nil
	}
	endIdx := offset + size
	if endIdx > len(out) {
		endIdx = len(out)
	}
	return out[offset:endIdx]
}
