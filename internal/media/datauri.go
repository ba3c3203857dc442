package media

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrUnsupportedSource is returned for image inputs the backend cannot take:
// anything but a base64 data URI, a bare base64 payload or (Cloudinary only)
// an http(s) URL.
var ErrUnsupportedSource = errors.New("unsupported image source")

// DecodeDataURI returns the bytes of a "data:<mime>;base64,<payload>" string.
// A bare base64 payload is accepted too.
func DecodeDataURI(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrUnsupportedSource
	}

	payload := s
	if strings.HasPrefix(s, "data:") {
		header, data, ok := strings.Cut(s, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return nil, ErrUnsupportedSource
		}
		payload = data
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		decoded, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil || len(decoded) == 0 {
		return nil, ErrUnsupportedSource
	}
	return decoded, nil
}
