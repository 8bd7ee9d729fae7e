package compress

// ZstdCompressor provides Zstandard compression for stored deltas.
//
// Zstd trades CPU for the best compression ratio of the built-in codecs,
// making it the choice for:
//   - Cold storage and archival of revision chains
//   - Network transmission where bandwidth is limited
//   - Deltas of text-like blobs with long literal runs
//
// The implementation is selected at build time: a cgo binding when cgo is
// available, a pure-Go one otherwise. Both emit standard Zstandard frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
