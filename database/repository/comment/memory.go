package commentRepo

import (
	"sort"
	"sync"

	"shareit/models"
)

// MemoryCommentRepo is an in-memory CommentRepository used by service tests.
type MemoryCommentRepo struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]models.Comment
}

// NewMemoryCommentRepo creates an empty in-memory comment repository.
func NewMemoryCommentRepo() *MemoryCommentRepo {
	return &MemoryCommentRepo{byID: make(map[int64]models.Comment)}
}

func (r *MemoryCommentRepo) Create(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	comment.ID = r.seq
	r.byID[comment.ID] = *comment
	return nil
}

func (r *MemoryCommentRepo) FindByItem(itemID int64) ([]models.Comment, error) {
	grouped, err := r.FindByItems([]int64{itemID})
	if err != nil {
		return nil, err
	}
	return grouped[itemID], nil
}

func (r *MemoryCommentRepo) FindByItems(itemIDs []int64) (map[int64][]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[int64]bool, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = true
	}

	grouped := make(map[int64][]models.Comment)
	for _, c := range r.byID {
		if wanted[c.ItemID] {
			grouped[c.ItemID] = append(grouped[c.ItemID], c)
		}
	}
	for id := range grouped {
		cs := grouped[id]
		sort.Slice(cs, func(i, j int) bool { return cs[i].Created.Before(cs[j].Created) })
		grouped[id] = cs
	}
	return grouped, nil
}
