package bookingRepo

import (
	"errors"
	"time"

	"shareit/models"
)

// Sentinel failures surfaced by Decide; the service layer translates them
// into its error taxonomy.
var (
	ErrNotFound       = errors.New("booking not found")
	ErrAlreadyDecided = errors.New("already decided")
	ErrOverlap        = errors.New("overlaps with approved booking")
)

// Page describes offset pagination. The page index is From/Size: From is a
// page-aligned cursor, not a raw offset.
type Page struct {
	From int
	Size int
}

// Index returns the zero-based page index.
func (p Page) Index() int {
	return p.From / p.Size
}

// BookingRepository is the sole writer of booking records.
type BookingRepository interface {
	// Create persists a new booking and assigns its id.
	Create(b *models.Booking) error

	// GetByID returns the booking or (nil, nil) when absent.
	GetByID(id int64) (*models.Booking, error)

	// Decide flips a WAITING booking to APPROVED or REJECTED. The status
	// check, the overlap re-check against other APPROVED bookings on the
	// same item, and the write happen atomically so that two concurrent
	// approvals of overlapping WAITING bookings cannot both succeed.
	// Fails with ErrNotFound, ErrAlreadyDecided or ErrOverlap.
	Decide(id int64, approve bool) (*models.Booking, error)

	// ExistsApprovedOverlap answers whether an APPROVED booking on the item
	// intersects [start, end). Touching endpoints do not count.
	ExistsApprovedOverlap(itemID int64, start, end time.Time) (bool, error)

	// ListBySubject returns one page of the subject's bookings, filtered by
	// state relative to now and sorted descending by start time. The subject
	// is matched as booker or item owner depending on role.
	ListBySubject(subjectID int64, role models.Role, state models.BookingState, now time.Time, page Page) ([]models.Booking, error)

	// FindLastByItemIDs returns, per item, the APPROVED booking with
	// start < now closest to now (latest end wins).
	FindLastByItemIDs(itemIDs []int64, now time.Time) (map[int64]models.Booking, error)

	// FindNextByItemIDs returns, per item, the APPROVED booking with
	// start > now closest to now (earliest start wins).
	FindNextByItemIDs(itemIDs []int64, now time.Time) (map[int64]models.Booking, error)

	// ExistsCompletedBooking answers whether the user has an APPROVED
	// booking for the item that ended before asOf. Gates commenting.
	ExistsCompletedBooking(bookerID, itemID int64, asOf time.Time) (bool, error)
}
