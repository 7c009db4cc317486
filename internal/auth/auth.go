// Package auth authenticates both directory users and the administrator
// through one Authenticator capability, distinguished by role.
package auth

import (
	"fmt"                            // Error wrapping
	"social_network/internal/domain" // Domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Authenticator turns a credential pair into a Principal
type Authenticator interface {
	Authenticate(username, password string) (domain.Principal, error)
}

// UserLister is the part of the user directory the authenticator reads
type UserLister interface {
	List() []domain.User
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func passwordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DirectoryAuthenticator grants RoleUser to directory entries
type DirectoryAuthenticator struct {
	users UserLister
}

func NewDirectoryAuthenticator(users UserLister) *DirectoryAuthenticator {
	return &DirectoryAuthenticator{users: users}
}

// Authenticate scans the directory in insertion order; the first entry whose
// username and password both match wins.
func (a *DirectoryAuthenticator) Authenticate(username, password string) (domain.Principal, error) {
	for _, u := range a.users.List() {
		if u.Username != username || !passwordMatches(u.Password, password) {
			continue
		}
		user := u
		return domain.Principal{Username: u.Username, Role: domain.RoleUser, User: &user}, nil
	}
	return domain.Principal{}, domain.ErrInvalidCredentials
}

// StaticAuthenticator grants RoleAdmin to a single configured credential pair
type StaticAuthenticator struct {
	username string // Expected username
	hash     string // Bcrypt hash of the expected password
}

// NewStaticAuthenticator hashes the configured password once at startup
func NewStaticAuthenticator(username, password string) (*StaticAuthenticator, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &StaticAuthenticator{username: username, hash: hash}, nil
}

func (a *StaticAuthenticator) Authenticate(username, password string) (domain.Principal, error) {
	if username != a.username || !passwordMatches(a.hash, password) {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}
	return domain.Principal{Username: username, Role: domain.RoleAdmin}, nil
}
