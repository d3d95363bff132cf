// Package endian provides the byte-order engine used by every typed
// read and write in BinaryMemory.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder interfaces into
// a single EndianEngine so one value can serve both fixed-offset and
// append-style encoding, and adds native-order detection so callers can tell
// whether a requested order requires byte swapping on the host.
//
// Cursors hold one EndianEngine and may switch it at any time; the engine
// affects multi-byte numeric values only, never raw byte copies.
//
// The returned engines are the stateless binary.LittleEndian and
// binary.BigEndian values and are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine is the byte-order capability consumed by typed access:
// encoding/binary's ByteOrder and AppendByteOrder in one interface.
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Native returns the host's byte order, determined by inspecting the memory
// layout of a fixed integer value.
func Native() EndianEngine {
	// 0x0100: a big-endian host stores the 0x01 byte first.
	var probe uint16 = 0x0100
	if (*[2]byte)(unsafe.Pointer(&probe))[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return Native() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return Native() == binary.BigEndian
}

// Of returns the engine selected by a big-endian flag: binary.BigEndian when
// bigEndian is true, binary.LittleEndian otherwise.
func Of(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsBig reports whether engine is the big-endian engine.
func IsBig(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// Little returns the little-endian engine.
func Little() EndianEngine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
func Big() EndianEngine {
	return binary.BigEndian
}
