// Package errs defines the error kinds shared by every BinaryMemory package.
//
// Each kind is an exported struct carrying the diagnostic detail a format
// author needs (offsets, actual vs. expected values, unresolved reservation
// keys), paired with a package-level sentinel so callers can classify
// failures with errors.Is without unpacking the concrete type:
//
//	if errors.Is(err, errs.ErrOutOfBounds) {
//	    // truncated or malformed input
//	}
//
// All errors are raised at the point of violation and propagate unchanged;
// no package in this module retries or recovers on the caller's behalf.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for error classification via errors.Is.
var (
	// ErrOutOfBounds matches any BoundsError.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrDataIntegrity matches any DataIntegrityError.
	ErrDataIntegrity = errors.New("data integrity violation")

	// ErrReservationKey matches any KeyError.
	ErrReservationKey = errors.New("reservation key error")

	// ErrState matches any StateError.
	ErrState = errors.New("invalid cursor state")

	// ErrIncompleteWrite matches any IncompleteWriteError.
	ErrIncompleteWrite = errors.New("unresolved reservations at finalization")
)

// BoundsError reports a read, write, or positioning operation that would
// violate 0 <= position <= length. The failing cursor is left unchanged.
type BoundsError struct {
	Op     string // operation name, e.g. "read", "seek", "align"
	Offset int64  // position at which the operation was attempted
	Want   int64  // byte count (or target position) the operation required
	Length int64  // length of the backing region or window
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: %d bytes at offset %d exceeds length %d", e.Op, e.Want, e.Offset, e.Length)
}

// Is reports whether target is ErrOutOfBounds.
func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// DataIntegrityError reports a value that was read successfully but does not
// satisfy its contract: a failed assertion, a boolean byte outside {0, 1}, or
// a value outside an enumerated domain. Offset is the cursor position at the
// start of the offending value.
type DataIntegrityError struct {
	Offset   int64
	Actual   any
	Expected []any // one entry for a plain assert, several for one-of asserts
}

func (e *DataIntegrityError) Error() string {
	switch len(e.Expected) {
	case 0:
		return fmt.Sprintf("invalid value %v at offset %d", e.Actual, e.Offset)
	case 1:
		return fmt.Sprintf("expected %v at offset %d, got %v", e.Expected[0], e.Offset, e.Actual)
	default:
		return fmt.Sprintf("expected one of %v at offset %d, got %v", e.Expected, e.Offset, e.Actual)
	}
}

// Is reports whether target is ErrDataIntegrity.
func (e *DataIntegrityError) Is(target error) bool { return target == ErrDataIntegrity }

// KeyError reports misuse of the reservation ledger: reserving a key that is
// already live, or filling a key that was never reserved or already filled.
type KeyError struct {
	Name   string // caller-supplied reservation name
	Tag    string // type tag derived from the reserved Go type
	Reason string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("reservation %q (%s): %s", e.Name, e.Tag, e.Reason)
}

// Is reports whether target is ErrReservationKey.
func (e *KeyError) Is(target error) bool { return target == ErrReservationKey }

// StateError reports an operation that is invalid in the cursor's current
// state, such as stepping out of an empty bookmark stack or selecting an
// unsupported variable value width.
type StateError struct {
	Op     string
	Detail string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

// Is reports whether target is ErrState.
func (e *StateError) Is(target error) bool { return target == ErrState }

// IncompleteWriteError reports that a writer was finalized while reservations
// were still unfilled. Keys lists every unresolved "name (tag)" pair so the
// missing Fill calls can be located.
type IncompleteWriteError struct {
	Keys []string
}

func (e *IncompleteWriteError) Error() string {
	return fmt.Sprintf("writer finalized with %d unfilled reservation(s): %s",
		len(e.Keys), strings.Join(e.Keys, ", "))
}

// Is reports whether target is ErrIncompleteWrite.
func (e *IncompleteWriteError) Is(target error) bool { return target == ErrIncompleteWrite }
