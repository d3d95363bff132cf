package compress

// ZstdCodec compresses with Zstandard. The implementation is selected at
// build time: valyala/gozstd when cgo is available, the pure-Go
// klauspost/compress/zstd otherwise. Both produce standard zstd frames and
// interoperate freely.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
