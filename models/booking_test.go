package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, StatusWaiting.CanTransition(StatusApproved))
	assert.True(t, StatusWaiting.CanTransition(StatusRejected))

	// Decided bookings are immutable.
	assert.False(t, StatusApproved.CanTransition(StatusRejected))
	assert.False(t, StatusApproved.CanTransition(StatusWaiting))
	assert.False(t, StatusRejected.CanTransition(StatusApproved))
	assert.False(t, StatusRejected.CanTransition(StatusWaiting))
	assert.False(t, StatusWaiting.CanTransition(StatusWaiting))
}

func TestParseBookingState(t *testing.T) {
	cases := []struct {
		in   string
		want BookingState
		ok   bool
	}{
		{"", StateAll, true},
		{"ALL", StateAll, true},
		{"CURRENT", StateCurrent, true},
		{"PAST", StatePast, true},
		{"FUTURE", StateFuture, true},
		{"WAITING", StateWaiting, true},
		{"REJECTED", StateRejected, true},
		{"APPROVED", "", false},
		{"all", "", false},
		{"bogus", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseBookingState(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }
	b := Booking{Start: at(2), End: at(4)}

	assert.True(t, b.Overlaps(at(3), at(5)), "partial overlap on the right")
	assert.True(t, b.Overlaps(at(1), at(3)), "partial overlap on the left")
	assert.True(t, b.Overlaps(at(1), at(5)), "candidate contains booking")
	assert.True(t, b.Overlaps(at(2), at(4)), "identical interval")
	assert.True(t, b.Overlaps(at(3).Add(-time.Minute), at(3)), "inside booking")

	// Touching endpoints do not count.
	assert.False(t, b.Overlaps(at(0), at(2)), "ends where booking starts")
	assert.False(t, b.Overlaps(at(4), at(6)), "starts where booking ends")
	assert.False(t, b.Overlaps(at(5), at(6)), "disjoint")
}

func TestShort(t *testing.T) {
	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	b := Booking{ID: 7, ItemID: 3, BookerID: 11, OwnerID: 2, Start: start, End: start.Add(time.Hour)}

	short := b.Short()
	assert.Equal(t, int64(7), short.ID)
	assert.Equal(t, int64(11), short.BookerID)
	assert.Equal(t, start, short.Start)
	assert.Equal(t, start.Add(time.Hour), short.End)
}
