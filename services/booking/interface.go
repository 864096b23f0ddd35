package booking

import "shareit/models"

// BookingService governs the booking lifecycle: creation by a booker, a
// single approve/reject decision by the item's owner, and state-classified
// listings for either side.
type BookingService interface {
	// Create validates and persists a new WAITING booking for the caller.
	Create(userID int64, in models.BookingCreate) (*models.Booking, error)

	// Approve decides a WAITING booking. Only the item's owner may call it,
	// and only once per booking.
	Approve(ownerID, bookingID int64, approved bool) (*models.Booking, error)

	// GetByID returns the booking to its booker or the item's owner.
	GetByID(userID, bookingID int64) (*models.Booking, error)

	// List returns one page of the subject's bookings classified by state,
	// sorted descending by start time.
	List(userID int64, role models.Role, state models.BookingState, from, size int) ([]models.Booking, error)
}
