package auth

import "errors"

// ErrNotAuthenticated is returned by the guard when no session is
// established. Callers redirect to the login flow.
var ErrNotAuthenticated = errors.New("not authenticated: run 'hms-console login' first")

// Guard gates access to protected screens on session state. It is stateless
// beyond reading the store.
type Guard struct {
	sessions *Store
}

func NewGuard(sessions *Store) *Guard {
	return &Guard{sessions: sessions}
}

// Require returns nil when a session is established, ErrNotAuthenticated
// otherwise.
func (g *Guard) Require() error {
	if !g.sessions.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}
