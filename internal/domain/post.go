package domain

import "time"

// Post Model
type Post struct {
	ID      string    `json:"id"`      // Stable post identity (uuid)
	User    User      `json:"user"`    // Snapshot of the author at creation time
	Message string    `json:"message"` // Post text
	Image   string    `json:"image"`   // Optional data URL, empty when absent
	Date    time.Time `json:"date"`    // Creation time
	Likes   []string  `json:"likes"`   // Usernames in like order, each at most once
}

// Liked reports whether username is in the post's like set
func (p Post) Liked(username string) bool {
	return p.likeIndex(username) >= 0
}

// ToggleLike removes username from the like set when present, appends it otherwise
func (p *Post) ToggleLike(username string) {
	if i := p.likeIndex(username); i >= 0 {
		p.Likes = append(p.Likes[:i:i], p.Likes[i+1:]...) // Unlike
		return
	}
	p.Likes = append(p.Likes, username) // Like
}

func (p Post) likeIndex(username string) int {
	for i, u := range p.Likes {
		if u == username {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares no slices with p
func (p Post) Clone() Post {
	c := p
	c.Likes = append([]string(nil), p.Likes...)
	if c.Likes == nil {
		c.Likes = []string{}
	}
	return c
}
