package domain

// User Model
type User struct {
	ID           int      `json:"id"`          // Directory-assigned id
	Username     string   `json:"username"`    // Username (unique by convention only)
	Password     string   `json:"password"`    // Bcrypt hash of the password
	ProfilePicID string   `json:"profile_pic"` // Asset id of the profile picture
	Posts        []string `json:"posts"`       // Placeholder list, never populated
}

// Role of an authenticated principal
type Role string

const (
	RoleUser  Role = "user"  // Regular directory user
	RoleAdmin Role = "admin" // Holder of the admin credential pair
)

// Principal is the result of a successful authentication
type Principal struct {
	Username string // Authenticated name
	Role     Role   // Granted role
	User     *User  // Directory record, nil for admins
}
