package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/jxs/go-id3/pkg/content"
	"github.com/jxs/go-id3/pkg/frame"
)

// ID3v2.4 frame header flags. The layout differs from ID3v2.3: status
// flags move down one bit and the format flags occupy the low nibble.
const (
	v4FlagTagAlterPreservation  = 0x4000
	v4FlagFileAlterPreservation = 0x2000
	v4FlagReadOnly              = 0x1000
	v4FlagGroupingIdentity      = 0x0040
	v4FlagCompression           = 0x0008
	v4FlagEncryption            = 0x0004
	v4FlagUnsynchronisation     = 0x0002
	v4FlagDataLength            = 0x0001
)

// v4HeaderSize is the fixed frame header: identifier(4) + size(4) +
// flags(2).
const v4HeaderSize = 10

// FrameV4 is the ID3v2.4 frame codec. Sizes are syncsafe integers and a
// compressed frame carries a syncsafe data length field.
type FrameV4 struct{}

// Decode reads one ID3v2.4 frame. Encryption, grouping identity and
// per-frame unsynchronisation are rejected as unsupported.
func (FrameV4) Decode(r io.Reader) (int, *frame.Frame, error) {
	id, ok, err := readFrameID(r, 4)
	if err != nil {
		return 0, nil, err
	}
	if !ok {
		return 0, nil, nil
	}

	var header [6]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, nil, malformed(id, "truncated frame header", err)
	}
	contentSize, ok := SyncsafeUint32(header[0:4])
	if !ok {
		return 0, nil, malformed(id, "frame size is not syncsafe", nil)
	}
	flags := binary.BigEndian.Uint16(header[4:6])

	if flags&v4FlagEncryption != 0 {
		return 0, nil, unsupported(id, "encryption is not supported")
	}
	if flags&v4FlagGroupingIdentity != 0 {
		return 0, nil, unsupported(id, "grouping identity is not supported")
	}
	if flags&v4FlagUnsynchronisation != 0 {
		return 0, nil, unsupported(id, "frame unsynchronisation is not supported")
	}

	compressed := flags&v4FlagCompression != 0
	hasDataLength := flags&v4FlagDataLength != 0
	if compressed && !hasDataLength {
		return 0, nil, malformed(id, "compressed frame without data length indicator", nil)
	}

	readSize := contentSize
	var dataLength uint32
	if hasDataLength {
		if contentSize < 4 {
			return 0, nil, malformed(id, "frame too small for data length field", nil)
		}
		var sz [4]byte
		if _, err := io.ReadFull(r, sz[:]); err != nil {
			return 0, nil, malformed(id, "truncated data length field", err)
		}
		dataLength, ok = SyncsafeUint32(sz[:])
		if !ok {
			return 0, nil, malformed(id, "data length is not syncsafe", nil)
		}
		readSize -= 4
	}

	data, err := readPayload(r, id, int(readSize))
	if err != nil {
		return 0, nil, err
	}
	if compressed {
		data, err = inflate(id, data, dataLength)
		if err != nil {
			return 0, nil, err
		}
	}

	c, err := content.Parse(id, data)
	if err != nil {
		return 0, nil, decoding(id, err)
	}

	f := frame.WithContent(id, c)
	f.SetTagAlterPreservation(flags&v4FlagTagAlterPreservation != 0)
	f.SetFileAlterPreservation(flags&v4FlagFileAlterPreservation != 0)
	f.SetReadOnly(flags&v4FlagReadOnly != 0)
	f.SetCompression(compressed)

	return v4HeaderSize + int(contentSize), f, nil
}

// Encode writes one ID3v2.4 frame. A compressed frame sets both the
// compression and data length flags.
//
// Panics if the frame's identifier has no 4-byte form.
func (FrameV4) Encode(w io.Writer, f *frame.Frame) (int, error) {
	id, ok := f.IDForVersion(frame.Version24)
	if !ok || len(id) != 4 {
		panic(fmt.Sprintf("codec: frame %q has no ID3v2.4 identifier", f.ID()))
	}

	payload, err := content.Render(f.ID(), f.Content())
	if err != nil {
		return 0, decoding(id, err)
	}
	dataLength := len(payload)

	contentSize := dataLength
	if f.Compression() {
		payload = deflate(payload)
		contentSize = len(payload) + 4
	}

	var flags uint16
	if f.TagAlterPreservation() {
		flags |= v4FlagTagAlterPreservation
	}
	if f.FileAlterPreservation() {
		flags |= v4FlagFileAlterPreservation
	}
	if f.ReadOnly() {
		flags |= v4FlagReadOnly
	}
	if f.Compression() {
		flags |= v4FlagCompression | v4FlagDataLength
	}

	header := make([]byte, v4HeaderSize, v4HeaderSize+4)
	copy(header[0:4], id)
	PutSyncsafeUint32(header[4:8], uint32(contentSize))
	binary.BigEndian.PutUint16(header[8:10], flags)
	if f.Compression() {
		header = header[:v4HeaderSize+4]
		PutSyncsafeUint32(header[v4HeaderSize:], uint32(dataLength))
	}

	if _, err := w.Write(header); err != nil {
		return 0, err
	}
	if _, err := w.Write(payload); err != nil {
		return 0, err
	}
	return v4HeaderSize + contentSize, nil
}
