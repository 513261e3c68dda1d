// Package id generates record identifiers.
package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns an identifier like "1735689600123-a1b2c3d4": millisecond
// timestamp plus a random suffix. Unique enough for a single device; not
// globally unique and not monotonic under clock skew.
func New() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// Timestamp parses the creation time encoded in an identifier.
func Timestamp(id string) (time.Time, error) {
	prefix, _, ok := strings.Cut(id, "-")
	if !ok {
		return time.Time{}, fmt.Errorf("invalid id format: %q", id)
	}
	millis, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp in id %q: %w", id, err)
	}
	return time.UnixMilli(millis), nil
}
