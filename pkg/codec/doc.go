// Package codec serializes and deserializes single ID3v2 frames.
//
// One codec exists per wire version (ID3v2.2, 2.3 and 2.4) behind the
// shared FrameCodec contract. The versions differ in identifier width,
// size encoding and flag layout but follow the same conceptual protocol:
// a fixed header naming the frame and its content size, followed by the
// content payload.
//
// # ID3v2.3 frame layout
//
// The representative, feature-complete layout. All integers are
// big-endian:
//
//	[Identifier(4)][ContentSize(4)][Flags(2)][DecompressedSize(0 or 4)][Payload]
//
// Fields:
//   - Identifier: 4 ASCII bytes naming the frame. A zero byte in place of
//     an identifier is the padding sentinel that ends the frame area.
//   - ContentSize: bytes occupied by everything after the 10-byte header.
//   - Flags: 0x8000 tag alter preservation, 0x4000 file alter
//     preservation, 0x2000 read-only, 0x0080 compression, 0x0040
//     encryption, 0x0020 grouping identity.
//   - DecompressedSize: present only when the compression flag is set. It
//     is counted in ContentSize but precedes the compressed payload.
//   - Payload: the content bytes, zlib-compressed when the compression
//     flag is set.
//
// The total on-disk size of a frame is 10 + ContentSize; Decode and
// Encode return that count so the caller can track stream offsets without
// re-deriving it.
//
// # Unsupported features
//
// Encrypted and group-tagged frames (and, in ID3v2.4, frames using
// per-frame unsynchronisation) fail to decode with an unsupported feature
// error. They are never produced on encode. The read-only flag is
// round-tripped but not enforced.
//
// # Error handling
//
// Errors carry a Kind and, where known, the identifier of the offending
// frame. Callers match them with errors.Is against ErrUnsupportedFeature,
// ErrMalformedStream and ErrDecoding. A frame either decodes completely or
// the operation fails as a whole; there is no partial success.
//
// # Thread safety
//
// Codec values are stateless and safe for concurrent use. Frames within
// one tag must still be decoded sequentially, because each frame's size
// determines where the next one begins.
package codec
