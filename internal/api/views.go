package api

import (
	"social_network/internal/domain" // Domain models
	"social_network/internal/store"  // Asset lookup
	"strconv"                        // Like count label
	"time"                           // Post dates
)

// NavLink is one entry of the navigation bar
type NavLink struct {
	Label  string `json:"label"`  // Link text
	Path   string `json:"path"`   // Target path
	Method string `json:"method"` // GET for views, POST for actions
}

// navLinks mirrors the navigation bar for the given session state
func navLinks(loggedIn bool) []NavLink {
	links := []NavLink{{Label: "Home", Path: "/", Method: "GET"}}
	if loggedIn {
		links = append(links,
			NavLink{Label: "Profile", Path: "/profile", Method: "GET"},
			NavLink{Label: "Logoff", Path: "/logoff", Method: "POST"},
		)
	} else {
		links = append(links, NavLink{Label: "Login", Path: "/login", Method: "GET"})
	}
	return append(links,
		NavLink{Label: "Admin", Path: "/admin", Method: "GET"},
		NavLink{Label: "Create User", Path: "/create-user", Method: "GET"},
	)
}

// UserResponse is a user without its password hash
type UserResponse struct {
	ID         int    `json:"id"`          // User ID
	Username   string `json:"username"`    // Username
	ProfilePic string `json:"profile_pic"` // Asset id of the profile picture
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, ProfilePic: u.ProfilePicID}
}

// PostView is a post as rendered for a viewer
type PostView struct {
	ID         string    `json:"id"`          // Post id
	Username   string    `json:"username"`    // Author
	ProfilePic string    `json:"profile_pic"` // Author picture data, empty if removed
	Message    string    `json:"message"`     // Post text
	Image      string    `json:"image"`       // Optional image data
	Date       time.Time `json:"date"`        // Creation time
	Likes      int       `json:"likes"`       // Like count
	LikesLabel string    `json:"likes_label"` // "1 like" / "N likes"
	Liked      bool      `json:"liked"`       // Viewer already likes it
	Action     string    `json:"action"`      // "Like" or "Unlike"
}

func likesLabel(n int) string {
	if n == 1 {
		return "1 like"
	}
	return strconv.Itoa(n) + " likes"
}

func toPostView(p domain.Post, assets *store.AssetGallery, viewer string) PostView {
	v := PostView{
		ID:         p.ID,
		Username:   p.User.Username,
		Message:    p.Message,
		Image:      p.Image,
		Date:       p.Date,
		Likes:      len(p.Likes),
		LikesLabel: likesLabel(len(p.Likes)),
		Liked:      viewer != "" && p.Liked(viewer),
		Action:     "Like",
	}
	if a, ok := assets.Get(p.User.ProfilePicID); ok {
		v.ProfilePic = a.Data
	}
	if v.Liked {
		v.Action = "Unlike"
	}
	return v
}

func toPostViews(posts []domain.Post, assets *store.AssetGallery, viewer string) []PostView {
	out := make([]PostView, len(posts))
	for i, p := range posts {
		out[i] = toPostView(p, assets, viewer)
	}
	return out
}
