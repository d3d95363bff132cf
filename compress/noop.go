package compress

// NoopCodec passes data through unchanged, for formats whose compression
// flag can be disabled.
type NoopCodec struct{}

var _ Codec = NoopCodec{}

// NewNoopCodec creates a pass-through codec.
func NewNoopCodec() NoopCodec {
	return NoopCodec{}
}

// Compress returns data unchanged.
func (NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
