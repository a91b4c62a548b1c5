package tag

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jxs/go-id3/pkg/codec"
	"github.com/jxs/go-id3/pkg/frame"
)

// ErrNoTag is returned by Decode when the stream does not start with an
// ID3v2 tag header.
var ErrNoTag = fmt.Errorf("tag: no ID3v2 tag found")

// Tag header flag bits. The 0x40 bit means compression in ID3v2.2 and
// extended header in later versions.
const (
	headerFlagUnsynchronisation = 0x80
	headerFlagExtendedOrCompat  = 0x40
)

// headerSize is the fixed ID3v2 tag header size.
const headerSize = 10

// Decode reads one complete ID3v2 tag from the start of r. On success the
// reader is positioned immediately after the tag, regardless of padding.
//
// Frames are decoded strictly sequentially: each frame's declared size is
// the only way to locate the next one.
func Decode(r io.Reader) (*Tag, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("tag: reading header: %w", err)
	}
	if !bytes.Equal(header[:3], []byte("ID3")) {
		return nil, ErrNoTag
	}

	var version frame.Version
	switch header[3] {
	case 2:
		version = frame.Version22
	case 3:
		version = frame.Version23
	case 4:
		version = frame.Version24
	default:
		return nil, fmt.Errorf("tag: unsupported tag version ID3v2.%d", header[3])
	}

	flags := header[5]
	if flags&headerFlagUnsynchronisation != 0 {
		return nil, fmt.Errorf("tag: unsynchronisation is not supported")
	}
	if version == frame.Version22 && flags&headerFlagExtendedOrCompat != 0 {
		return nil, fmt.Errorf("tag: ID3v2.2 compression is not supported")
	}

	size, ok := codec.SyncsafeUint32(header[6:10])
	if !ok {
		return nil, fmt.Errorf("tag: tag size is not syncsafe")
	}

	body := io.LimitReader(r, int64(size))
	remaining := int(size)

	if version != frame.Version22 && flags&headerFlagExtendedOrCompat != 0 {
		skipped, err := skipExtendedHeader(body, version)
		if err != nil {
			return nil, err
		}
		remaining -= skipped
	}

	fc, err := codec.ForVersion(version)
	if err != nil {
		return nil, err
	}

	t := NewWithVersion(version)
	for remaining > 0 {
		n, f, err := fc.Decode(body)
		if err != nil {
			return nil, fmt.Errorf("tag: %w", err)
		}
		if f == nil {
			// Padding: nothing but zero bytes follows.
			break
		}
		remaining -= n
		t.AddFrame(f)
	}

	// Drain padding so the reader sits at the first byte after the tag.
	if _, err := io.Copy(io.Discard, body); err != nil {
		return nil, fmt.Errorf("tag: draining padding: %w", err)
	}
	return t, nil
}

// skipExtendedHeader discards the extended header, returning the number of
// bytes it occupied.
func skipExtendedHeader(r io.Reader, version frame.Version) (int, error) {
	var sizeBytes [4]byte
	if _, err := io.ReadFull(r, sizeBytes[:]); err != nil {
		return 0, fmt.Errorf("tag: reading extended header: %w", err)
	}
	var skip int
	if version == frame.Version24 {
		// Syncsafe size that includes the size field itself.
		size, ok := codec.SyncsafeUint32(sizeBytes[:])
		if !ok || size < 4 {
			return 0, fmt.Errorf("tag: malformed extended header size")
		}
		skip = int(size) - 4
	} else {
		// Big-endian size that excludes the size field.
		skip = int(uint32(sizeBytes[0])<<24 | uint32(sizeBytes[1])<<16 |
			uint32(sizeBytes[2])<<8 | uint32(sizeBytes[3]))
	}
	if _, err := io.CopyN(io.Discard, r, int64(skip)); err != nil {
		return 0, fmt.Errorf("tag: skipping extended header: %w", err)
	}
	return 4 + skip, nil
}

// Encode writes the tag, header included, and returns the number of bytes
// written. No padding is emitted.
//
// Encoding a tag whose version cannot represent one of its frame
// identifiers is a programming error and panics, mirroring the frame
// codec's precondition.
func (t *Tag) Encode(w io.Writer) (int, error) {
	fc, err := codec.ForVersion(t.version)
	if err != nil {
		return 0, err
	}

	var body bytes.Buffer
	for _, f := range t.frames {
		if _, err := fc.Encode(&body, f); err != nil {
			return 0, fmt.Errorf("tag: encoding frame %q: %w", f.ID(), err)
		}
	}

	header := make([]byte, headerSize)
	copy(header[:3], "ID3")
	header[3] = byte(t.version)
	codec.PutSyncsafeUint32(header[6:10], uint32(body.Len()))

	if _, err := w.Write(header); err != nil {
		return 0, err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return 0, err
	}
	return headerSize + body.Len(), nil
}
