package compress

// NoOpCompressor provides a no-operation codec that stores deltas uncompressed.
//
// Useful when:
//   - Deltas are dominated by copy opcodes and barely compress
//   - CPU matters more than storage
//   - Measuring baseline performance without compression overhead
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice unchanged and without copying.
// The result aliases the input; callers must not modify one while
// holding the other.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice unchanged and without copying.
// The result aliases the input; callers must not modify one while
// holding the other.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
