package booking

import (
	"errors"
	"time"

	bookingRepo "shareit/database/repository/booking"
	itemRepo "shareit/database/repository/item"
	userRepo "shareit/database/repository/user"
	"shareit/models"
	"shareit/utils"

	"go.uber.org/zap"
)

// DefaultBookingService is the default implementation of BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Items    itemRepo.ItemRepository
	Users    userRepo.UserRepository
}

// Create runs the booking preconditions in a fixed order; the first failure
// wins and nothing is written.
func (s *DefaultBookingService) Create(userID int64, in models.BookingCreate) (*models.Booking, error) {
	logger := utils.GetLogger()

	if !in.Start.Before(in.End) {
		return nil, utils.InvalidInput("start must be before end")
	}
	if in.Start.Before(time.Now()) {
		return nil, utils.InvalidInput("start must be in future")
	}

	exists, err := s.Users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NotFound("booker not found")
	}

	item, err := s.Items.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.NotFound("item not found")
	}
	if item.OwnerID == 0 {
		return nil, utils.NotFound("item owner missing")
	}
	if item.OwnerID == userID {
		return nil, utils.Forbidden("owner cannot book own item")
	}
	if !item.IsAvailable() {
		return nil, utils.Conflict("item not available")
	}

	overlaps, err := s.Bookings.ExistsApprovedOverlap(item.ID, in.Start, in.End)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, utils.Conflict("overlaps with approved booking")
	}

	b := &models.Booking{
		ItemID:   item.ID,
		BookerID: userID,
		OwnerID:  item.OwnerID,
		Start:    in.Start,
		End:      in.End,
		Status:   models.StatusWaiting,
	}
	if err := s.Bookings.Create(b); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.Int64("bookingId", b.ID),
		zap.Int64("itemId", b.ItemID),
		zap.Int64("bookerId", b.BookerID))
	return b, nil
}

// Approve decides a WAITING booking. The ownership and status guards run
// here; the overlap re-check and the status write happen atomically in the
// repository so concurrent approvals on the same item stay exclusive.
func (s *DefaultBookingService) Approve(ownerID, bookingID int64, approved bool) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NotFound("booking not found")
	}
	if b.OwnerID != ownerID {
		return nil, utils.Forbidden("only owner can approve")
	}
	if b.Status != models.StatusWaiting {
		return nil, utils.Conflict("already decided")
	}

	decided, err := s.Bookings.Decide(bookingID, approved)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, utils.NotFound("booking not found")
		case errors.Is(err, bookingRepo.ErrAlreadyDecided):
			return nil, utils.Conflict("already decided")
		case errors.Is(err, bookingRepo.ErrOverlap):
			return nil, utils.Conflict("overlaps with approved booking")
		}
		return nil, err
	}

	utils.GetLogger().Info("booking decided",
		zap.Int64("bookingId", decided.ID),
		zap.String("status", string(decided.Status)))
	return decided, nil
}

// GetByID returns the booking if the caller participates in it.
func (s *DefaultBookingService) GetByID(userID, bookingID int64) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NotFound("booking not found")
	}
	if b.OwnerID != userID && b.BookerID != userID {
		return nil, utils.Forbidden("no access to this booking")
	}
	return b, nil
}

// List pages the subject's bookings. Now is sampled once per call so every
// state predicate in the page sees the same instant.
func (s *DefaultBookingService) List(userID int64, role models.Role, state models.BookingState, from, size int) ([]models.Booking, error) {
	if size <= 0 {
		return nil, utils.InvalidInput("size must be positive")
	}
	if from < 0 {
		return nil, utils.InvalidInput("from must not be negative")
	}

	exists, err := s.Users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NotFound("user not found")
	}

	now := time.Now()
	return s.Bookings.ListBySubject(userID, role, state, now, bookingRepo.Page{From: from, Size: size})
}
