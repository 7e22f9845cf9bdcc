package gateway

import (
	"sync"

	"github.com/GoLawFirm-Admin/GoLawFirm-Admin/internal/db/models"
)

// AuthState holds the current session user and its subscribers. It replaces
// ambient global session access: consumers receive the state explicitly and
// register an explicit unsubscribe for their lifetime.
type AuthState struct {
	mu   sync.Mutex
	user *models.User
	subs map[int]func(*models.User)
	next int
}

// NewAuthState returns an empty auth state with no signed-in user.
func NewAuthState() *AuthState {
	return &AuthState{
		subs: make(map[int]func(*models.User)),
	}
}

// Current returns the signed-in user, or nil.
func (a *AuthState) Current() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.user
}

// Set replaces the session user and notifies every subscriber synchronously,
// for sign-in, sign-out and external expiry alike.
func (a *AuthState) Set(user *models.User) {
	a.mu.Lock()
	a.user = user

	listeners := make([]func(*models.User), 0, len(a.subs))
	for _, fn := range a.subs {
		listeners = append(listeners, fn)
	}
	a.mu.Unlock()

	// Notify outside the lock so a listener may unsubscribe itself.
	for _, fn := range listeners {
		fn(user)
	}
}

// OnChange registers a listener and returns its cancel function. A canceled
// listener is never notified again.
func (a *AuthState) OnChange(fn func(*models.User)) Unsubscribe {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.next
	a.next++
	a.subs[id] = fn

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()

		delete(a.subs, id)
	}
}
