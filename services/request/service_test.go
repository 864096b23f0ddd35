package request

import (
	"net/http"
	"testing"

	itemRepo "shareit/database/repository/item"
	requestRepo "shareit/database/repository/request"
	userRepo "shareit/database/repository/user"
	"shareit/models"
	"shareit/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestFixture struct {
	svc   *DefaultRequestService
	items *itemRepo.MemoryItemRepo

	requestor models.User
	owner     models.User
}

func newRequestFixture(t *testing.T) *requestFixture {
	t.Helper()

	users := userRepo.NewMemoryUserRepo()
	f := &requestFixture{
		items: itemRepo.NewMemoryItemRepo(),
	}
	f.svc = &DefaultRequestService{
		Requests: requestRepo.NewMemoryRequestRepo(),
		Users:    users,
		Items:    f.items,
	}

	f.requestor = models.User{Name: "requestor", Email: "requestor@example.com"}
	require.NoError(t, users.Create(&f.requestor))
	f.owner = models.User{Name: "owner", Email: "owner@example.com"}
	require.NoError(t, users.Create(&f.owner))
	return f
}

func TestCreateRequest(t *testing.T) {
	f := newRequestFixture(t)

	req, err := f.svc.Create(f.requestor.ID, models.RequestCreate{Description: "need a drill"})
	require.NoError(t, err)
	assert.NotZero(t, req.ID)
	assert.Equal(t, f.requestor.ID, req.RequestorID)
	assert.False(t, req.Created.IsZero())

	_, err = f.svc.Create(f.requestor.ID, models.RequestCreate{Description: "  "})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.HTTPStatus(err))

	_, err = f.svc.Create(999, models.RequestCreate{Description: "need a drill"})
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}

func TestGetRequestWithAnswers(t *testing.T) {
	f := newRequestFixture(t)

	req, err := f.svc.Create(f.requestor.ID, models.RequestCreate{Description: "need a drill"})
	require.NoError(t, err)

	avail := true
	answer := models.Item{Name: "drill", Description: "cordless", Available: &avail, OwnerID: f.owner.ID, RequestID: req.ID}
	require.NoError(t, f.items.Create(&answer))
	unrelated := models.Item{Name: "ladder", Description: "3m", Available: &avail, OwnerID: f.owner.ID}
	require.NoError(t, f.items.Create(&unrelated))

	view, err := f.svc.GetByID(f.owner.ID, req.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, answer.ID, view.Items[0].ItemID)
	assert.Equal(t, answer.Name, view.Items[0].Name)
	assert.Equal(t, f.owner.ID, view.Items[0].OwnerID)

	_, err = f.svc.GetByID(f.owner.ID, 999)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))

	_, err = f.svc.GetByID(999, req.ID)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}

func TestGetOwnRequests(t *testing.T) {
	f := newRequestFixture(t)

	first, err := f.svc.Create(f.requestor.ID, models.RequestCreate{Description: "first"})
	require.NoError(t, err)
	second, err := f.svc.Create(f.requestor.ID, models.RequestCreate{Description: "second"})
	require.NoError(t, err)
	_, err = f.svc.Create(f.owner.ID, models.RequestCreate{Description: "someone else's"})
	require.NoError(t, err)

	views, err := f.svc.GetOwn(f.requestor.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	// Newest first.
	assert.Equal(t, second.ID, views[0].ID)
	assert.Equal(t, first.ID, views[1].ID)
	assert.NotNil(t, views[0].Items)

	_, err = f.svc.GetOwn(999)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}

func TestGetAllOthers(t *testing.T) {
	f := newRequestFixture(t)

	mine, err := f.svc.Create(f.requestor.ID, models.RequestCreate{Description: "mine"})
	require.NoError(t, err)
	theirs, err := f.svc.Create(f.owner.ID, models.RequestCreate{Description: "theirs"})
	require.NoError(t, err)

	views, err := f.svc.GetAllOthers(f.requestor.ID, 0, 20)
	require.NoError(t, err)
	require.Len(t, views, 1, "own requests are excluded")
	assert.Equal(t, theirs.ID, views[0].ID)

	views, err = f.svc.GetAllOthers(f.owner.ID, 0, 20)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, mine.ID, views[0].ID)

	views, err = f.svc.GetAllOthers(f.requestor.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, views)

	_, err = f.svc.GetAllOthers(999, 0, 20)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}
