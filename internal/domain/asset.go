package domain

// Asset Model (uploaded profile picture)
type Asset struct {
	ID   string `json:"id"`   // Stable asset identity (uuid)
	Data string `json:"data"` // Inline data URL of the image
}
