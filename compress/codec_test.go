package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayload() []byte {
	// Repetitive enough that every codec actually shrinks it.
	return bytes.Repeat([]byte("four score and seven bytes ago "), 64)
}

func TestCodecsRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		codec Codec
	}{
		{"noop", NewNoopCodec()},
		{"zstd", NewZstdCodec()},
		{"s2", NewS2Codec()},
		{"lz4", NewLZ4Codec()},
	}

	payload := testPayload()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(payload)
			require.NoError(t, err)

			raw, err := tt.codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, raw)
		})
	}
}

func TestCompressionShrinksPayload(t *testing.T) {
	payload := testPayload()

	for _, codec := range []Codec{NewZstdCodec(), NewS2Codec(), NewLZ4Codec()} {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload))
	}
}

func TestEmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewNoopCodec(), NewZstdCodec(), NewS2Codec(), NewLZ4Codec()} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		raw, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, raw)
	}
}

func TestNew(t *testing.T) {
	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		codec, err := New(typ)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := New(Type(200))
	require.Error(t, err)
}

func TestZstdRejectsGarbage(t *testing.T) {
	_, err := NewZstdCodec().Decompress([]byte("not a zstd frame"))
	require.Error(t, err)
}
