// Package pagination encodes keyset cursors handed out as nextToken values.
package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	timeFormat = time.RFC3339Nano
	separator  = "|"
)

// ErrMalformedCursor is wrapped by every decode failure.
var ErrMalformedCursor = errors.New("malformed pagination cursor")

var encoding = base64.RawURLEncoding

// EncodeDateCursor builds the cursor for listings ordered by a business date
// and then by insertion time, both descending.
func EncodeDateCursor(date, createdAt time.Time) string {
	return encoding.EncodeToString([]byte(date.Format(timeFormat) + separator + createdAt.Format(timeFormat)))
}

// DecodeDateCursor reverses EncodeDateCursor.
func DecodeDateCursor(token string) (date, createdAt time.Time, err error) {
	parts, err := DecodeFieldsCursor(token, 2)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if date, err = time.Parse(timeFormat, parts[0]); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: sort date: %v", ErrMalformedCursor, err)
	}
	if createdAt, err = time.Parse(timeFormat, parts[1]); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: created_at: %v", ErrMalformedCursor, err)
	}
	return date, createdAt, nil
}

// EncodeFieldsCursor joins fields into an opaque cursor. Only the last field
// may contain the separator.
func EncodeFieldsCursor(fields ...string) string {
	return encoding.EncodeToString([]byte(strings.Join(fields, separator)))
}

// DecodeFieldsCursor splits a cursor into exactly n fields; the last one
// keeps any separators it contained.
func DecodeFieldsCursor(token string, n int) ([]string, error) {
	raw, err := encoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCursor, err)
	}
	parts := strings.SplitN(string(raw), separator, n)
	if len(parts) != n {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedCursor, n, len(parts))
	}
	return parts, nil
}
