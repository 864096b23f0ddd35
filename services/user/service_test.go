package user

import (
	"net/http"
	"testing"

	userRepo "shareit/database/repository/user"
	"shareit/models"
	"shareit/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() *DefaultUserService {
	return &DefaultUserService{Users: userRepo.NewMemoryUserRepo()}
}

func strPtr(s string) *string { return &s }

func TestCreateUser(t *testing.T) {
	svc := newUserService()

	u, err := svc.Create(models.UserCreate{Name: "ann", Email: "ann@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)

	_, err = svc.Create(models.UserCreate{Name: "ann", Email: ""})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.HTTPStatus(err))

	_, err = svc.Create(models.UserCreate{Name: "  ", Email: "x@example.com"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.HTTPStatus(err))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := newUserService()

	_, err := svc.Create(models.UserCreate{Name: "ann", Email: "ann@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(models.UserCreate{Name: "other ann", Email: "ann@example.com"})
	require.Error(t, err)
	assert.True(t, utils.IsConflict(err))
}

func TestUpdateUser(t *testing.T) {
	svc := newUserService()

	ann, err := svc.Create(models.UserCreate{Name: "ann", Email: "ann@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(models.UserCreate{Name: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	// Re-submitting one's own email is not a conflict.
	updated, err := svc.Update(ann.ID, models.UserUpdate{Email: strPtr("ann@example.com"), Name: strPtr("anne")})
	require.NoError(t, err)
	assert.Equal(t, "anne", updated.Name)

	_, err = svc.Update(ann.ID, models.UserUpdate{Email: strPtr("bob@example.com")})
	require.Error(t, err)
	assert.True(t, utils.IsConflict(err))

	_, err = svc.Update(999, models.UserUpdate{Name: strPtr("ghost")})
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}

func TestGetAndDeleteUser(t *testing.T) {
	svc := newUserService()

	ann, err := svc.Create(models.UserCreate{Name: "ann", Email: "ann@example.com"})
	require.NoError(t, err)

	got, err := svc.GetByID(ann.ID)
	require.NoError(t, err)
	assert.Equal(t, ann.Email, got.Email)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ann.ID))
	_, err = svc.GetByID(ann.ID)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))

	err = svc.Delete(ann.ID)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))

	// The freed email can be reused.
	_, err = svc.Create(models.UserCreate{Name: "ann again", Email: "ann@example.com"})
	assert.NoError(t, err)
}
