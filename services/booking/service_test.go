package booking

import (
	"math/rand"
	"net/http"
	"testing"
	"time"

	bookingRepo "shareit/database/repository/booking"
	itemRepo "shareit/database/repository/item"
	userRepo "shareit/database/repository/user"
	"shareit/models"
	"shareit/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	svc      *DefaultBookingService
	bookings *bookingRepo.MemoryBookingRepo
	items    *itemRepo.MemoryItemRepo
	users    *userRepo.MemoryUserRepo

	owner    models.User
	booker   models.User
	stranger models.User
	item     models.Item
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	f := &bookingFixture{
		bookings: bookingRepo.NewMemoryBookingRepo(),
		items:    itemRepo.NewMemoryItemRepo(),
		users:    userRepo.NewMemoryUserRepo(),
	}
	f.svc = &DefaultBookingService{Bookings: f.bookings, Items: f.items, Users: f.users}

	f.owner = models.User{Name: "owner", Email: "owner@example.com"}
	require.NoError(t, f.users.Create(&f.owner))
	f.booker = models.User{Name: "booker", Email: "booker@example.com"}
	require.NoError(t, f.users.Create(&f.booker))
	f.stranger = models.User{Name: "stranger", Email: "stranger@example.com"}
	require.NoError(t, f.users.Create(&f.stranger))

	avail := true
	f.item = models.Item{Name: "drill", Description: "cordless drill", Available: &avail, OwnerID: f.owner.ID}
	require.NoError(t, f.items.Create(&f.item))
	return f
}

// in returns a time the given number of hours from now.
func in(hours int) time.Time {
	return time.Now().Add(time.Duration(hours) * time.Hour)
}

func TestCreateBooking(t *testing.T) {
	f := newBookingFixture(t)

	b, err := f.svc.Create(f.booker.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(1), End: in(2)})
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, models.StatusWaiting, b.Status)
	assert.Equal(t, f.booker.ID, b.BookerID)
	assert.Equal(t, f.owner.ID, b.OwnerID)
	assert.Equal(t, f.item.ID, b.ItemID)
}

func TestCreateBookingValidation(t *testing.T) {
	f := newBookingFixture(t)

	// One shared instant so the boundary case is exactly start == end.
	same := in(2)

	cases := []struct {
		name   string
		caller int64
		in     models.BookingCreate
		status int
	}{
		{"start equals end", f.booker.ID,
			models.BookingCreate{ItemID: f.item.ID, Start: same, End: same}, http.StatusBadRequest},
		{"start after end", f.booker.ID,
			models.BookingCreate{ItemID: f.item.ID, Start: in(3), End: in(2)}, http.StatusBadRequest},
		{"start in past", f.booker.ID,
			models.BookingCreate{ItemID: f.item.ID, Start: in(-1), End: in(2)}, http.StatusBadRequest},
		{"unknown booker", 999,
			models.BookingCreate{ItemID: f.item.ID, Start: in(1), End: in(2)}, http.StatusNotFound},
		{"unknown item", f.booker.ID,
			models.BookingCreate{ItemID: 999, Start: in(1), End: in(2)}, http.StatusNotFound},
		{"owner books own item", f.owner.ID,
			models.BookingCreate{ItemID: f.item.ID, Start: in(1), End: in(2)}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Create(tc.caller, tc.in)
			require.Error(t, err)
			assert.Equal(t, tc.status, utils.HTTPStatus(err))
		})
	}
}

func TestCreateUnavailableItem(t *testing.T) {
	f := newBookingFixture(t)

	unavail := false
	f.item.Available = &unavail
	require.NoError(t, f.items.Update(&f.item))

	_, err := f.svc.Create(f.booker.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(1), End: in(2)})
	require.Error(t, err)
	assert.True(t, utils.IsConflict(err))
}

func TestCreateRejectsApprovedOverlap(t *testing.T) {
	f := newBookingFixture(t)

	b, err := f.svc.Create(f.booker.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(2), End: in(4)})
	require.NoError(t, err)
	_, err = f.svc.Approve(f.owner.ID, b.ID, true)
	require.NoError(t, err)

	// Intersecting the approved interval fails.
	_, err = f.svc.Create(f.stranger.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(3), End: in(5)})
	require.Error(t, err)
	assert.True(t, utils.IsConflict(err))

	// Touching endpoints are fine.
	_, err = f.svc.Create(f.stranger.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(4), End: in(5)})
	assert.NoError(t, err)

	// A WAITING overlap does not block creation.
	_, err = f.svc.Create(f.stranger.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(6), End: in(8)})
	require.NoError(t, err)
	_, err = f.svc.Create(f.booker.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(7), End: in(9)})
	assert.NoError(t, err)
}

// Creating random intervals around one approved booking must admit exactly
// those that do not intersect it.
func TestCreateOverlapProperty(t *testing.T) {
	f := newBookingFixture(t)

	// Every endpoint derives from one captured base so the intersection
	// predicate and the stored intervals agree at touching boundaries.
	base := time.Now()
	at := func(hours int) time.Time { return base.Add(time.Duration(hours) * time.Hour) }

	approved, err := f.svc.Create(f.booker.ID, models.BookingCreate{ItemID: f.item.ID, Start: at(100), End: at(200)})
	require.NoError(t, err)
	_, err = f.svc.Approve(f.owner.ID, approved.ID, true)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		a := 1 + rng.Intn(300)
		b := 1 + rng.Intn(300)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		start, end := at(a), at(b)
		intersects := a < 200 && 100 < b

		_, err := f.svc.Create(f.stranger.ID, models.BookingCreate{ItemID: f.item.ID, Start: start, End: end})
		if intersects {
			assert.True(t, utils.IsConflict(err), "interval [%d, %d) should be rejected", a, b)
		} else {
			assert.NoError(t, err, "interval [%d, %d) should be admitted", a, b)
		}
	}
}

func TestApprove(t *testing.T) {
	f := newBookingFixture(t)

	b, err := f.svc.Create(f.booker.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(1), End: in(2)})
	require.NoError(t, err)

	_, err = f.svc.Approve(f.stranger.ID, b.ID, true)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, utils.HTTPStatus(err))

	// The booker is not the owner either.
	_, err = f.svc.Approve(f.booker.ID, b.ID, true)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, utils.HTTPStatus(err))

	decided, err := f.svc.Approve(f.owner.ID, b.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, decided.Status)

	// A booking is decided exactly once, in either direction.
	_, err = f.svc.Approve(f.owner.ID, b.ID, true)
	require.Error(t, err)
	assert.True(t, utils.IsConflict(err))
	_, err = f.svc.Approve(f.owner.ID, b.ID, false)
	require.Error(t, err)
	assert.True(t, utils.IsConflict(err))

	_, err = f.svc.Approve(f.owner.ID, 999, true)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}

func TestReject(t *testing.T) {
	f := newBookingFixture(t)

	b, err := f.svc.Create(f.booker.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(1), End: in(2)})
	require.NoError(t, err)

	decided, err := f.svc.Approve(f.owner.ID, b.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, decided.Status)

	// Rejected intervals do not block new bookings.
	_, err = f.svc.Create(f.stranger.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(1), End: in(2)})
	assert.NoError(t, err)
}

// Two overlapping WAITING bookings may coexist, but only one of them can be
// approved: the second approval hits the overlap re-check.
func TestApproveReChecksOverlap(t *testing.T) {
	f := newBookingFixture(t)

	first, err := f.svc.Create(f.booker.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(1), End: in(3)})
	require.NoError(t, err)
	second, err := f.svc.Create(f.stranger.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(2), End: in(4)})
	require.NoError(t, err)

	_, err = f.svc.Approve(f.owner.ID, first.ID, true)
	require.NoError(t, err)

	_, err = f.svc.Approve(f.owner.ID, second.ID, true)
	require.Error(t, err)
	assert.True(t, utils.IsConflict(err))

	// Rejecting it is still possible.
	decided, err := f.svc.Approve(f.owner.ID, second.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, decided.Status)
}

func TestGetByIDVisibility(t *testing.T) {
	f := newBookingFixture(t)

	b, err := f.svc.Create(f.booker.ID, models.BookingCreate{ItemID: f.item.ID, Start: in(1), End: in(2)})
	require.NoError(t, err)

	got, err := f.svc.GetByID(f.booker.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	got, err = f.svc.GetByID(f.owner.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = f.svc.GetByID(f.stranger.ID, b.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, utils.HTTPStatus(err))

	_, err = f.svc.GetByID(f.booker.ID, 999)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}

// seed persists a booking directly, bypassing the creation preconditions so
// past and current intervals can exist.
func (f *bookingFixture) seed(t *testing.T, bookerID int64, startH, endH int, status models.BookingStatus) models.Booking {
	t.Helper()
	b := models.Booking{
		ItemID:   f.item.ID,
		BookerID: bookerID,
		OwnerID:  f.owner.ID,
		Start:    in(startH),
		End:      in(endH),
		Status:   status,
	}
	require.NoError(t, f.bookings.Create(&b))
	return b
}

func TestListClassification(t *testing.T) {
	f := newBookingFixture(t)

	past := f.seed(t, f.booker.ID, -4, -2, models.StatusApproved)
	current := f.seed(t, f.booker.ID, -1, 1, models.StatusApproved)
	future := f.seed(t, f.booker.ID, 2, 3, models.StatusApproved)
	waiting := f.seed(t, f.booker.ID, 4, 5, models.StatusWaiting)
	rejected := f.seed(t, f.booker.ID, 6, 7, models.StatusRejected)

	ids := func(bs []models.Booking) []int64 {
		out := make([]int64, 0, len(bs))
		for _, b := range bs {
			out = append(out, b.ID)
		}
		return out
	}
	list := func(state models.BookingState) []models.Booking {
		got, err := f.svc.List(f.booker.ID, models.RoleBooker, state, 0, 20)
		require.NoError(t, err)
		return got
	}

	assert.Equal(t, []int64{past.ID}, ids(list(models.StatePast)))
	assert.Equal(t, []int64{current.ID}, ids(list(models.StateCurrent)))
	// FUTURE includes everything not yet started regardless of status.
	assert.Equal(t, []int64{rejected.ID, waiting.ID, future.ID}, ids(list(models.StateFuture)))
	assert.Equal(t, []int64{waiting.ID}, ids(list(models.StateWaiting)))
	assert.Equal(t, []int64{rejected.ID}, ids(list(models.StateRejected)))

	// ALL is every booking, start descending.
	assert.Equal(t, []int64{rejected.ID, waiting.ID, future.ID, current.ID, past.ID},
		ids(list(models.StateAll)))
}

func TestListRoles(t *testing.T) {
	f := newBookingFixture(t)

	mine := f.seed(t, f.booker.ID, 1, 2, models.StatusWaiting)
	other := f.seed(t, f.stranger.ID, 3, 4, models.StatusWaiting)

	got, err := f.svc.List(f.booker.ID, models.RoleBooker, models.StateAll, 0, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)

	// The owner sees bookings on their items from every booker.
	got, err = f.svc.List(f.owner.ID, models.RoleOwner, models.StateAll, 0, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, other.ID, got[0].ID)
	assert.Equal(t, mine.ID, got[1].ID)

	got, err = f.svc.List(f.owner.ID, models.RoleBooker, models.StateAll, 0, 20)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListPagination(t *testing.T) {
	f := newBookingFixture(t)

	var all []int64
	for i := 0; i < 5; i++ {
		b := f.seed(t, f.booker.ID, i+1, i+2, models.StatusWaiting)
		all = append(all, b.ID)
	}
	// Descending by start, so the newest seed comes first.

	got, err := f.svc.List(f.booker.ID, models.RoleBooker, models.StateAll, 0, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, all[4], got[0].ID)
	assert.Equal(t, all[3], got[1].ID)

	// From is page-aligned: 3/2 selects page 1, same as from=2.
	got, err = f.svc.List(f.booker.ID, models.RoleBooker, models.StateAll, 3, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, all[2], got[0].ID)
	assert.Equal(t, all[1], got[1].ID)

	got, err = f.svc.List(f.booker.ID, models.RoleBooker, models.StateAll, 4, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, all[0], got[0].ID)

	got, err = f.svc.List(f.booker.ID, models.RoleBooker, models.StateAll, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListValidation(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.List(f.booker.ID, models.RoleBooker, models.StateAll, 0, 0)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.HTTPStatus(err))

	_, err = f.svc.List(f.booker.ID, models.RoleBooker, models.StateAll, -1, 20)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.HTTPStatus(err))

	_, err = f.svc.List(999, models.RoleBooker, models.StateAll, 0, 20)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}
