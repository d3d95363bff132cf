package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
	}{
		{&BoundsError{Op: "read", Offset: 10, Want: 4, Length: 12}, ErrOutOfBounds},
		{&DataIntegrityError{Offset: 3, Actual: 9}, ErrDataIntegrity},
		{&KeyError{Name: "size", Tag: "uint32", Reason: "already reserved"}, ErrReservationKey},
		{&StateError{Op: "step out", Detail: "bookmark stack is empty"}, ErrState},
		{&IncompleteWriteError{Keys: []string{"size (uint32)"}}, ErrIncompleteWrite},
	}

	for _, tt := range tests {
		require.ErrorIs(t, tt.err, tt.sentinel)

		// Wrapping must not break classification.
		require.ErrorIs(t, fmt.Errorf("parsing header: %w", tt.err), tt.sentinel)
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	err := &BoundsError{Op: "read"}
	require.False(t, errors.Is(err, ErrDataIntegrity))
	require.False(t, errors.Is(err, ErrState))
}

func TestMessages(t *testing.T) {
	require.Equal(t,
		"read: 4 bytes at offset 10 exceeds length 12",
		(&BoundsError{Op: "read", Offset: 10, Want: 4, Length: 12}).Error())

	require.Equal(t,
		"expected 1 at offset 3, got 9",
		(&DataIntegrityError{Offset: 3, Actual: 9, Expected: []any{1}}).Error())

	require.Equal(t,
		"expected one of [1 2] at offset 3, got 9",
		(&DataIntegrityError{Offset: 3, Actual: 9, Expected: []any{1, 2}}).Error())

	require.Equal(t,
		`reservation "size" (uint32): already reserved`,
		(&KeyError{Name: "size", Tag: "uint32", Reason: "already reserved"}).Error())

	require.Equal(t,
		"writer finalized with 2 unfilled reservation(s): count (uint16), size (uint32)",
		(&IncompleteWriteError{Keys: []string{"count (uint16)", "size (uint32)"}}).Error())
}

func TestErrorAsUnpacking(t *testing.T) {
	wrapped := fmt.Errorf("reading index: %w", &BoundsError{Op: "read", Want: 8, Length: 4})

	var bounds *BoundsError
	require.ErrorAs(t, wrapped, &bounds)
	require.Equal(t, int64(8), bounds.Want)
}
