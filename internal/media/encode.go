package media

import (
	"encoding/base64"                // Data URL payload
	"fmt"                            // Error wrapping
	"io"                             // Upload stream
	"social_network/internal/domain" // Domain errors
	"strings"                        // MIME prefix check

	"github.com/gabriel-vasile/mimetype" // Content sniffing
)

// EncodeDataURL reads an uploaded image and returns it as a base64 data URL.
// Uploads larger than limit bytes, empty uploads and non-images are rejected
// with domain.ErrValidation.
func EncodeDataURL(r io.Reader, limit int64) (string, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("empty upload: %w", domain.ErrValidation)
	}
	if int64(len(b)) > limit {
		return "", fmt.Errorf("upload exceeds %d bytes: %w", limit, domain.ErrValidation)
	}
	mtype := mimetype.Detect(b)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("unsupported content type %s: %w", mtype.String(), domain.ErrValidation)
	}
	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
