package codec

import (
	"fmt"
	"io"

	"github.com/jxs/go-id3/pkg/frame"
)

// FrameCodec reads and writes single frames in one wire version.
//
// Decode returns the total number of bytes the frame occupies on disk
// (header included) together with the decoded frame; the caller advances
// its cursor by that count. A padding sentinel in place of an identifier
// yields (0, nil, nil), signalling that no frame starts here.
//
// Encode writes one frame and returns the number of bytes written.
type FrameCodec interface {
	Decode(r io.Reader) (int, *frame.Frame, error)
	Encode(w io.Writer, f *frame.Frame) (int, error)
}

// ForVersion returns the frame codec for the given wire version.
func ForVersion(v frame.Version) (FrameCodec, error) {
	switch v {
	case frame.Version22:
		return FrameV2{}, nil
	case frame.Version23:
		return FrameV3{}, nil
	case frame.Version24:
		return FrameV4{}, nil
	default:
		return nil, fmt.Errorf("codec: no frame codec for %s", v)
	}
}

// SyncsafeUint32 decodes a 4-byte syncsafe integer (7 significant bits per
// byte). It returns false if any byte has its high bit set.
func SyncsafeUint32(b []byte) (uint32, bool) {
	if (b[0]|b[1]|b[2]|b[3])&0x80 != 0 {
		return 0, false
	}
	v := uint32(b[0])<<21 | uint32(b[1])<<14 | uint32(b[2])<<7 | uint32(b[3])
	return v, true
}

// PutSyncsafeUint32 encodes v as a 4-byte syncsafe integer. Values of 2^28
// or more do not fit and panic.
func PutSyncsafeUint32(b []byte, v uint32) {
	if v >= 1<<28 {
		panic(fmt.Sprintf("codec: %d does not fit in a syncsafe uint32", v))
	}
	b[0] = byte(v >> 21 & 0x7F)
	b[1] = byte(v >> 14 & 0x7F)
	b[2] = byte(v >> 7 & 0x7F)
	b[3] = byte(v & 0x7F)
}
