package store

import (
	"social_network/internal/domain" // Domain models
	"sync"                           // Mutex for concurrent handlers
)

// UserDirectory is the ordered, in-memory list of user records
type UserDirectory struct {
	mu     sync.RWMutex  // Guards users and nextID
	users  []domain.User // Users in insertion order
	nextID int           // Next id to hand out, never reused
}

// NewUserDirectory returns an empty directory whose first id is 1
func NewUserDirectory() *UserDirectory {
	return &UserDirectory{nextID: 1}
}

// Create appends a new user and returns it
func (d *UserDirectory) Create(username, passwordHash, profilePicID string) domain.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	u := domain.User{
		ID:           d.nextID,     // Monotonic id
		Username:     username,     // Username as submitted
		Password:     passwordHash, // Already hashed by the caller
		ProfilePicID: profilePicID, // Selected asset
		Posts:        []string{},   // Placeholder
	}
	d.nextID++
	d.users = append(d.users, u)
	return u
}

// Delete removes the user with the given id; false when absent
func (d *UserDirectory) Delete(id int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, u := range d.users {
		if u.ID == id {
			d.users = append(d.users[:i:i], d.users[i+1:]...)
			return true
		}
	}
	return false
}

// Get looks a user up by id
func (d *UserDirectory) Get(id int) (domain.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// List returns a copy of all users in insertion order
func (d *UserDirectory) List() []domain.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.User, len(d.users))
	copy(out, d.users)
	return out
}

// Len returns the number of users
func (d *UserDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
