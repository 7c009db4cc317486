package api

import (
	"fmt"                           // Error wrapping
	"social_network/internal/media" // Data URL encoding

	"github.com/gin-gonic/gin" // Gin web framework
)

// readUpload encodes the multipart file in field as a data URL.
// A missing file yields http.ErrMissingFile.
func readUpload(c *gin.Context, field string, limit int64) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	return media.EncodeDataURL(f, limit)
}
