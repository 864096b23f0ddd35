package bookingRepo

import (
	"sort"
	"sync"
	"time"

	"shareit/models"
)

// statePredicates is the in-memory counterpart of stateFilter: one pure
// predicate per query-time state.
var statePredicates = map[models.BookingState]func(models.Booking, time.Time) bool{
	models.StateAll:     func(models.Booking, time.Time) bool { return true },
	models.StateCurrent: func(b models.Booking, now time.Time) bool { return b.Start.Before(now) && b.End.After(now) },
	models.StatePast:    func(b models.Booking, now time.Time) bool { return b.End.Before(now) },
	models.StateFuture:  func(b models.Booking, now time.Time) bool { return b.Start.After(now) },
	models.StateWaiting: func(b models.Booking, _ time.Time) bool { return b.Status == models.StatusWaiting },
	models.StateRejected: func(b models.Booking, _ time.Time) bool {
		return b.Status == models.StatusRejected
	},
}

// MemoryBookingRepo is an in-memory BookingRepository satisfying the same
// contract as the Mongo implementation, including serialized decisions.
// Used by service tests.
type MemoryBookingRepo struct {
	mu   sync.Mutex
	seq  int64
	byID map[int64]models.Booking
}

// NewMemoryBookingRepo creates an empty in-memory booking repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{byID: make(map[int64]models.Booking)}
}

func (r *MemoryBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	b.ID = r.seq
	b.CreatedAt = time.Now()
	r.byID[b.ID] = *b
	return nil
}

func (r *MemoryBookingRepo) GetByID(id int64) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *MemoryBookingRepo) Decide(id int64, approve bool) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	next := models.StatusRejected
	if approve {
		next = models.StatusApproved
	}
	if !b.Status.CanTransition(next) {
		return nil, ErrAlreadyDecided
	}
	if approve && r.overlapsLocked(b.ItemID, b.Start, b.End) {
		return nil, ErrOverlap
	}

	b.Status = next
	r.byID[id] = b
	return &b, nil
}

// overlapsLocked requires r.mu to be held.
func (r *MemoryBookingRepo) overlapsLocked(itemID int64, start, end time.Time) bool {
	for _, b := range r.byID {
		if b.ItemID == itemID && b.Status == models.StatusApproved && b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func (r *MemoryBookingRepo) ExistsApprovedOverlap(itemID int64, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overlapsLocked(itemID, start, end), nil
}

func (r *MemoryBookingRepo) ListBySubject(subjectID int64, role models.Role, state models.BookingState, now time.Time, page Page) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pred := statePredicates[state]
	if pred == nil {
		pred = statePredicates[models.StateAll]
	}

	var matched []models.Booking
	for _, b := range r.byID {
		subject := b.BookerID
		if role == models.RoleOwner {
			subject = b.OwnerID
		}
		if subject == subjectID && pred(b, now) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Start.After(matched[j].Start) })

	offset := page.Index() * page.Size
	if offset >= len(matched) {
		return nil, nil
	}
	endIdx := offset + page.Size
	if endIdx > len(matched) {
		endIdx = len(matched)
	}
	return matched[offset:endIdx], nil
}

func (r *MemoryBookingRepo) FindLastByItemIDs(itemIDs []int64, now time.Time) (map[int64]models.Booking, error) {
	return r.extremal(itemIDs, func(b models.Booking) bool { return b.Start.Before(now) },
		func(cand, cur models.Booking) bool { return cand.End.After(cur.End) }), nil
}

func (r *MemoryBookingRepo) FindNextByItemIDs(itemIDs []int64, now time.Time) (map[int64]models.Booking, error) {
	return r.extremal(itemIDs, func(b models.Booking) bool { return b.Start.After(now) },
		func(cand, cur models.Booking) bool { return cand.Start.Before(cur.Start) }), nil
}

func (r *MemoryBookingRepo) extremal(itemIDs []int64, side func(models.Booking) bool, better func(cand, cur models.Booking) bool) map[int64]models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[int64]bool, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = true
	}

	out := make(map[int64]models.Booking)
	for _, b := range r.byID {
		if !wanted[b.ItemID] || b.Status != models.StatusApproved || !side(b) {
			continue
		}
		cur, ok := out[b.ItemID]
		if !ok || better(b, cur) {
			out[b.ItemID] = b
		}
	}
	return out
}

func (r *MemoryBookingRepo) ExistsCompletedBooking(bookerID, itemID int64, asOf time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.byID {
		if b.BookerID == bookerID && b.ItemID == itemID && b.Status == models.StatusApproved && b.End.Before(asOf) {
			return true, nil
		}
	}
	return false, nil
}
