package directory

import "fmt"

// StaticStore holds the seeded roster. It is never mutated after
// construction, so reads need no locking.
type StaticStore struct {
	order []string
	users map[string]User
}

func NewStaticStore(users []User) (*StaticStore, error) {
	store := &StaticStore{
		order: make([]string, 0, len(users)),
		users: make(map[string]User, len(users)),
	}
	for _, u := range users {
		if _, exists := store.users[u.Id]; exists {
			return nil, fmt.Errorf("duplicate user id in roster: %s", u.Id)
		}
		store.order = append(store.order, u.Id)
		store.users[u.Id] = u
	}
	return store, nil
}

func (s *StaticStore) Get(id string) (User, error) {
	u, ok := s.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

// All returns the roster in seeding order.
func (s *StaticStore) All() []User {
	users := make([]User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, s.users[id])
	}
	return users
}
