// Package charset provides the text encoding capability consumed by cursor
// string operations.
//
// An Encoding converts between Go strings and encoded bytes and reports its
// code-unit width, which the cursor uses to scan for terminators: 1 byte for
// 8-bit and multibyte encodings, 2 for UTF-16, 4 for UTF-32. The multibyte
// CJK encodings and the UTF-16/32 variants delegate to golang.org/x/text
// transforms; encoding a rune the character set cannot represent is an error,
// never a silent substitution.
package charset

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encoding converts text to and from one character set.
//
// Unit is the code-unit width in bytes; a terminator is one code unit of all
// zero bytes. Implementations are stateless and safe for concurrent use.
type Encoding interface {
	// Name identifies the character set, e.g. "UTF-16LE" or "Shift-JIS".
	Name() string

	// Unit returns the code-unit width in bytes: 1, 2 or 4.
	Unit() int

	// Encode converts text to encoded bytes. Runes the character set cannot
	// represent cause an error.
	Encode(text string) ([]byte, error)

	// Decode converts encoded bytes to text. Malformed input causes an error.
	Decode(data []byte) (string, error)
}

// Supported encodings. All values are stateless singletons.
var (
	UTF8     Encoding = utf8Encoding{}
	ASCII    Encoding = asciiEncoding{}
	UTF16LE  Encoding = xtext{"UTF-16LE", 2, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}
	UTF16BE  Encoding = xtext{"UTF-16BE", 2, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}
	UTF32LE  Encoding = xtext{"UTF-32LE", 4, utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)}
	UTF32BE  Encoding = xtext{"UTF-32BE", 4, utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)}
	ShiftJIS Encoding = xtext{"Shift-JIS", 1, japanese.ShiftJIS}
	EUCJP    Encoding = xtext{"EUC-JP", 1, japanese.EUCJP}
	EUCKR    Encoding = xtext{"EUC-KR", 1, korean.EUCKR}
	GBK      Encoding = xtext{"GBK", 1, simplifiedchinese.GBK}
)

// utf8Encoding passes bytes through with validity checking; Go strings are
// already UTF-8.
type utf8Encoding struct{}

func (utf8Encoding) Name() string { return "UTF-8" }
func (utf8Encoding) Unit() int    { return 1 }

func (utf8Encoding) Encode(text string) ([]byte, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("UTF-8 encode: invalid string")
	}

	return []byte(text), nil
}

func (utf8Encoding) Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("UTF-8 decode: invalid byte sequence")
	}

	return string(data), nil
}

// asciiEncoding is strict 7-bit ASCII.
type asciiEncoding struct{}

func (asciiEncoding) Name() string { return "ASCII" }
func (asciiEncoding) Unit() int    { return 1 }

func (asciiEncoding) Encode(text string) ([]byte, error) {
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			return nil, fmt.Errorf("ASCII encode: byte %#x at index %d outside 7-bit range", text[i], i)
		}
	}

	return []byte(text), nil
}

func (asciiEncoding) Decode(data []byte) (string, error) {
	for i, b := range data {
		if b >= 0x80 {
			return "", fmt.Errorf("ASCII decode: byte %#x at index %d outside 7-bit range", b, i)
		}
	}

	return string(data), nil
}

// xtext adapts a golang.org/x/text encoding. The default x/text encoder
// already fails on unrepresentable runes, which matches the strict contract.
type xtext struct {
	name string
	unit int
	enc  encoding.Encoding
}

func (x xtext) Name() string { return x.name }
func (x xtext) Unit() int    { return x.unit }

func (x xtext) Encode(text string) ([]byte, error) {
	out, err := x.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%s encode: %w", x.name, err)
	}

	return out, nil
}

func (x xtext) Decode(data []byte) (string, error) {
	out, err := x.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%s decode: %w", x.name, err)
	}

	return string(out), nil
}
