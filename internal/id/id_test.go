package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Format(t *testing.T) {
	got := New()

	ts, err := Timestamp(got)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)

	// Suffix is 8 characters after the timestamp prefix.
	parts := []rune(got)
	assert.Equal(t, '-', parts[len(got)-9])
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestTimestamp_Invalid(t *testing.T) {
	_, err := Timestamp("nodash")
	assert.Error(t, err)

	_, err = Timestamp("abc-def")
	assert.Error(t, err)
}
