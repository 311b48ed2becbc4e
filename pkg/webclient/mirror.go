package webclient

import (
	"encoding/json"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Address matches the server's address wire shape.
type Address struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// User is the server's profile representation as cached by the mirror.
type User struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Addresses          []Address      `json:"addresses"`
	AvatarURL          string         `json:"avatarUrl"`
	ProfilePreferences map[string]any `json:"profilePreferences"`
	Phone              string         `json:"phone"`
}

// SessionMirror caches the current {token, user} pair in client-local
// storage. The cached user is only ever overwritten from a successful server
// response; a failed call leaves the stale copy untouched. It never derives
// profile state on its own.
type SessionMirror struct {
	storage Storage
}

func NewSessionMirror(storage Storage) *SessionMirror {
	return &SessionMirror{storage: storage}
}

// Token returns the stored bearer token, empty when logged out.
func (m *SessionMirror) Token() string {
	t, _ := m.storage.Get(tokenKey)
	return t
}

// User returns the cached user snapshot, or false when none is stored.
func (m *SessionMirror) User() (User, bool) {
	raw, ok := m.storage.Get(userKey)
	if !ok {
		return User{}, false
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, false
	}
	return u, true
}

// LoggedIn reports whether a token is present. Expiry is discovered lazily:
// the next privileged call fails with 401 and the UI reacts then.
func (m *SessionMirror) LoggedIn() bool {
	return m.Token() != ""
}

// Clear drops the local session. This is the whole logout: issued tokens
// stay valid server-side until their natural expiry.
func (m *SessionMirror) Clear() {
	m.storage.Remove(tokenKey)
	m.storage.Remove(userKey)
}

func (m *SessionMirror) setSession(token string, u User) {
	m.storage.Set(tokenKey, token)
	m.setUser(u)
}

func (m *SessionMirror) setUser(u User) {
	b, err := json.Marshal(u)
	if err != nil {
		return
	}
	m.storage.Set(userKey, string(b))
}
