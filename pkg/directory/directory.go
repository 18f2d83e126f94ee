package directory

import "errors"

var ErrUserNotFound = errors.New("user not found")

// User is one roster entry. The password is a plaintext secret compared
// verbatim on login; it is an access token for a known deployment, not a
// security mechanism, and must never leave the process.
type User struct {
	Id       string
	Name     string
	Color    string
	Password string
	IsAdmin  bool
}

// Store is a read-only roster of known users, fixed at startup.
type Store interface {
	Get(id string) (User, error)
	All() []User
}
