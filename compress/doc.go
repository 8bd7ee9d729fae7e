// Package compress provides compression codecs for storing encoded deltas at rest.
//
// A delta stream is already a compact description of the target, but its
// insert opcodes carry raw literal bytes, so deltas of text-like blobs
// still compress well. An object store keeping long delta chains applies
// one of these codecs before writing a delta and the matching decompressor
// before handing the stream to delta.Apply.
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Four codecs are built in:
//   - None: no compression; for deltas that are mostly copy opcodes
//   - Zstd: best ratio; cold storage and network transfer
//   - S2: balanced ratio and speed; general-purpose default
//   - LZ4: fastest decompression; read-heavy stores
//
// Zstd has two implementations selected at build time: a cgo binding
// (valyala/gozstd) when cgo is available, and a pure-Go fallback
// (klauspost/compress/zstd) otherwise. Both produce standard Zstandard
// frames and interoperate freely.
//
// All codecs are safe for concurrent use. The pure-Go Zstd codec pools its
// encoders and decoders and the LZ4 codec pools its block compressors; the
// other codecs keep no pooled state.
//
// Select a codec by format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	stored, err := codec.Compress(delta)
//	...
//	raw, err := codec.Decompress(stored)
//	target, err := delta.Apply(ref, raw)
package compress
