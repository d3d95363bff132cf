package cursor

import (
	"fmt"

	"github.com/WarpZephyr/BinaryMemory/errs"
	"github.com/WarpZephyr/BinaryMemory/internal/fixed"
)

// placeholderByte fills reserved slots until they are filled. The repeated
// pattern is recognizable in hex dumps of unfinished output.
const placeholderByte = 0xFE

// reservationKey is the composite ledger key: the caller's name plus a tag
// derived from the reserved Go type, so differently-typed reservations
// sharing a name never collide.
type reservationKey struct {
	name string
	tag  string
}

func typeTag[T fixed.Scalar]() string {
	return fmt.Sprintf("%T", *new(T))
}

// Reserve records the current position under (name, T) in the writer's
// ledger and emits sizeof(T) placeholder bytes, so sequential writing
// continues exactly as if the real value had been written. The slot must
// later be resolved by Fill with the same name and type.
//
// Reserving a key that is already live fails with a KeyError.
func Reserve[T fixed.Scalar](w *Writer, name string) error {
	key := reservationKey{name: name, tag: typeTag[T]()}
	if _, live := w.reservations[key]; live {
		return &errs.KeyError{Name: name, Tag: key.tag, Reason: "already reserved"}
	}

	offset := w.position
	if err := w.WritePattern(int64(fixed.SizeOf[T]()), placeholderByte); err != nil {
		return err
	}

	w.reservations[key] = offset

	return nil
}

// Fill resolves the reservation (name, T): the value is encoded at the
// offset captured by Reserve, under the cursor's current byte order, and the
// cursor position is left where it was. Each reservation can be filled
// exactly once; filling an unknown or already-resolved key fails with a
// KeyError.
func Fill[T fixed.Scalar](w *Writer, name string, value T) error {
	key := reservationKey{name: name, tag: typeTag[T]()}

	offset, live := w.reservations[key]
	if !live {
		return &errs.KeyError{Name: name, Tag: key.tag, Reason: "not reserved or already filled"}
	}

	if err := Put(w, offset, value); err != nil {
		return err
	}

	delete(w.reservations, key)

	return nil
}

// Reserved reports whether (name, T) is live in the ledger.
func Reserved[T fixed.Scalar](w *Writer, name string) bool {
	_, live := w.reservations[reservationKey{name: name, tag: typeTag[T]()}]
	return live
}
