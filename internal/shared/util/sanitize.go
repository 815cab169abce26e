package util

import (
	"errors"
	"strings"
)

const maxFileNameLength = 255

// SanitizeFileName removes path separators and control characters and rejects
// traversal patterns. Storage keys embed the result, so it must be safe both
// on the local filesystem and as an S3 key segment.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return "", errors.New("invalid file name")
	}
	if len(s) > maxFileNameLength {
		return "", errors.New("file name too long")
	}
	return s, nil
}
