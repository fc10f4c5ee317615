package utils

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/osse101/Despensa_Go/internal/domain"
)

const cursorPrefix = "after:"

// EncodeCursor wraps the last id of a page into an opaque cursor
func EncodeCursor(lastID string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + lastID))
}

// DecodeCursor returns the id a cursor points after. An empty cursor is the
// first page.
func DecodeCursor(cursor string) (string, error) {
	if cursor == "" {
		return "", nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidCursor, err)
	}
	id, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok || id == "" {
		return "", domain.ErrInvalidCursor
	}
	return id, nil
}
