package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/db/models"
)

func TestAuthStateNotify(t *testing.T) {
	state := NewAuthState()
	require.Nil(t, state.Current())

	var got []*models.User
	unsubscribe := state.OnChange(func(u *models.User) {
		got = append(got, u)
	})

	admin := &models.User{ID: "u1", Email: "admin@sterlingprice.example.com"}
	state.Set(admin)
	state.Set(nil)

	require.Len(t, got, 2)
	assert.Equal(t, admin, got[0])
	assert.Nil(t, got[1])
	assert.Nil(t, state.Current())

	// After unsubscribing the listener stays silent.
	unsubscribe()
	state.Set(admin)
	assert.Len(t, got, 2)
	assert.Equal(t, admin, state.Current())
}

func TestAuthStateUnsubscribeIsIndependent(t *testing.T) {
	state := NewAuthState()

	var first, second int
	undoFirst := state.OnChange(func(_ *models.User) { first++ })
	state.OnChange(func(_ *models.User) { second++ })

	state.Set(&models.User{ID: "u1"})
	undoFirst()
	state.Set(nil)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}
