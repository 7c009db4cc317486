package store

import (
	"fmt"                            // Error wrapping
	"social_network/internal/domain" // Domain models
	"sort"                           // Chronological ordering
	"strings"                        // Blank message check
	"sync"                           // Mutex for concurrent handlers
	"time"                           // Post timestamps

	"github.com/google/uuid" // Stable post ids
)

// Feed is the global collection of posts, kept in insertion order
type Feed struct {
	mu    sync.RWMutex
	posts []domain.Post
	now   func() time.Time // Clock used for new posts
}

// FeedOption configures a Feed
type FeedOption func(*Feed)

// WithClock replaces time.Now as the source of post dates
func WithClock(now func() time.Time) FeedOption {
	return func(f *Feed) { f.now = now }
}

func NewFeed(opts ...FeedOption) *Feed {
	f := &Feed{now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ListChronological returns every post, most recent first.
// Posts with equal dates keep their insertion order.
func (f *Feed) ListChronological() []domain.Post {
	f.mu.RLock()
	out := make([]domain.Post, len(f.posts))
	for i, p := range f.posts {
		out[i] = p.Clone()
	}
	f.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date) // Descending by date
	})
	return out
}

// ListByOwner filters ListChronological to the posts written by username
func (f *Feed) ListByOwner(username string) []domain.Post {
	all := f.ListChronological()
	out := make([]domain.Post, 0, len(all))
	for _, p := range all {
		if p.User.Username == username {
			out = append(out, p)
		}
	}
	return out
}

// Create appends a post by owner dated now with no likes
func (f *Feed) Create(owner domain.User, message, image string) (domain.Post, error) {
	if strings.TrimSpace(message) == "" {
		return domain.Post{}, fmt.Errorf("message is required: %w", domain.ErrValidation)
	}
	p := domain.Post{
		ID:      uuid.NewString(), // Stable identity for delete and like
		User:    owner,            // Snapshot, not a reference
		Message: message,          // Post text
		Image:   image,            // Optional data URL
		Date:    f.now(),          // Creation time
		Likes:   []string{},       // No likes yet
	}
	f.mu.Lock()
	f.posts = append(f.posts, p)
	f.mu.Unlock()
	return p.Clone(), nil
}

// Delete removes the post with the given id when it belongs to owner.
// It never touches any other post; false means nothing was removed.
func (f *Feed) Delete(id, owner string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.posts {
		if p.ID != id {
			continue
		}
		if p.User.Username != owner {
			return false
		}
		f.posts = append(f.posts[:i:i], f.posts[i+1:]...)
		return true
	}
	return false
}

// ToggleLike flips username's membership in the like set of post id
func (f *Feed) ToggleLike(id, username string) (domain.Post, error) {
	if username == "" {
		return domain.Post{}, domain.ErrUnauthenticated
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts[i].ToggleLike(username)
			return f.posts[i].Clone(), nil
		}
	}
	return domain.Post{}, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
}

// Get returns the post with the given id
func (f *Feed) Get(id string) (domain.Post, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, p := range f.posts {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return domain.Post{}, false
}
