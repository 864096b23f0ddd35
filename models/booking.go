package models

import "time"

// BookingStatus is the persisted lifecycle status of a booking.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// validNext encodes the only legal status transitions: a WAITING booking is
// decided exactly once, decided bookings are immutable.
var validNext = map[BookingStatus]map[BookingStatus]bool{
	StatusWaiting:  {StatusApproved: true, StatusRejected: true},
	StatusApproved: {},
	StatusRejected: {},
}

// CanTransition reports whether moving from s to next is a legal transition.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	return validNext[s][next]
}

// BookingState is the query-time classification of bookings, computed
// relative to "now". It is never persisted.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState maps a query parameter to a BookingState. The empty
// string defaults to ALL.
func ParseBookingState(s string) (BookingState, bool) {
	if s == "" {
		return StateAll, true
	}
	switch BookingState(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return BookingState(s), true
	}
	return "", false
}

// Role is the perspective from which a booking list is requested.
type Role string

const (
	RoleBooker Role = "BOOKER"
	RoleOwner  Role = "OWNER"
)

// Booking represents one request to use an item for the half-open
// interval [Start, End). OwnerID is denormalized from the item at creation
// time so owner-side queries hit the bookings collection directly; items
// never change owners, so the copy cannot go stale.
type Booking struct {
	ID        int64         `bson:"id" json:"id"`
	ItemID    int64         `bson:"item_id" json:"itemId"`
	BookerID  int64         `bson:"booker_id" json:"bookerId"`
	OwnerID   int64         `bson:"owner_id" json:"-"`
	Start     time.Time     `bson:"start" json:"start"`
	End       time.Time     `bson:"end" json:"end"`
	Status    BookingStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"-"`
}

// BookingCreate is the payload for creating a booking.
type BookingCreate struct {
	ItemID int64     `json:"itemId"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// BookingShort is the compact booking summary attached to owner item views.
type BookingShort struct {
	ID       int64     `bson:"id" json:"id"`
	BookerID int64     `bson:"booker_id" json:"bookerId"`
	Start    time.Time `bson:"start" json:"start"`
	End      time.Time `bson:"end" json:"end"`
}

// Short returns the compact summary of a booking.
func (b Booking) Short() BookingShort {
	return BookingShort{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}

// Overlaps reports whether [Start, End) intersects [start, end).
// Touching endpoints do not count as overlap.
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && start.Before(b.End)
}
