package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/jxs/go-id3/pkg/content"
	"github.com/jxs/go-id3/pkg/frame"
)

// ID3v2.3 frame header flags, high byte first.
const (
	v3FlagTagAlterPreservation  = 0x8000
	v3FlagFileAlterPreservation = 0x4000
	v3FlagReadOnly              = 0x2000
	v3FlagCompression           = 0x0080
	v3FlagEncryption            = 0x0040
	v3FlagGroupingIdentity      = 0x0020
)

// v3HeaderSize is the fixed frame header: identifier(4) + size(4) +
// flags(2).
const v3HeaderSize = 10

// FrameV3 is the ID3v2.3 frame codec.
type FrameV3 struct{}

// Decode reads one ID3v2.3 frame. Encrypted and group-tagged frames are
// rejected with an unsupported feature error; compressed payloads are
// inflated before content parsing.
func (FrameV3) Decode(r io.Reader) (int, *frame.Frame, error) {
	id, ok, err := readFrameID(r, 4)
	if err != nil {
		return 0, nil, err
	}
	if !ok {
		// Padding: the frame area ends here.
		return 0, nil, nil
	}

	var header [6]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, nil, malformed(id, "truncated frame header", err)
	}
	contentSize := binary.BigEndian.Uint32(header[0:4])
	flags := binary.BigEndian.Uint16(header[4:6])

	if flags&v3FlagEncryption != 0 {
		return 0, nil, unsupported(id, "encryption is not supported")
	}
	if flags&v3FlagGroupingIdentity != 0 {
		return 0, nil, unsupported(id, "grouping identity is not supported")
	}

	readSize := contentSize
	compressed := flags&v3FlagCompression != 0
	var decompressedSize uint32
	if compressed {
		// The decompressed size field is counted in contentSize but is
		// not part of the compressed payload.
		if contentSize < 4 {
			return 0, nil, malformed(id, "compressed frame too small for decompressed size field", nil)
		}
		var sz [4]byte
		if _, err := io.ReadFull(r, sz[:]); err != nil {
			return 0, nil, malformed(id, "truncated decompressed size field", err)
		}
		decompressedSize = binary.BigEndian.Uint32(sz[:])
		readSize -= 4
	}

	data, err := readPayload(r, id, int(readSize))
	if err != nil {
		return 0, nil, err
	}
	if compressed {
		data, err = inflate(id, data, decompressedSize)
		if err != nil {
			return 0, nil, err
		}
	}

	c, err := content.Parse(id, data)
	if err != nil {
		return 0, nil, decoding(id, err)
	}

	f := frame.WithContent(id, c)
	f.SetTagAlterPreservation(flags&v3FlagTagAlterPreservation != 0)
	f.SetFileAlterPreservation(flags&v3FlagFileAlterPreservation != 0)
	f.SetReadOnly(flags&v3FlagReadOnly != 0)
	f.SetCompression(compressed)

	return v3HeaderSize + int(contentSize), f, nil
}

// Encode writes one ID3v2.3 frame and returns the total bytes written.
// Encryption and grouping identity are never set on write.
//
// Panics if the frame's identifier has no 4-byte ID3v2.3 form; a frame in
// that state must not reach the writer.
func (FrameV3) Encode(w io.Writer, f *frame.Frame) (int, error) {
	id, ok := f.IDForVersion(frame.Version23)
	if !ok || len(id) != 4 {
		panic(fmt.Sprintf("codec: frame %q has no ID3v2.3 identifier", f.ID()))
	}

	payload, err := content.Render(f.ID(), f.Content())
	if err != nil {
		return 0, decoding(id, err)
	}
	decompressedSize := len(payload)

	contentSize := decompressedSize
	if f.Compression() {
		payload = deflate(payload)
		contentSize = len(payload) + 4
	}

	var flags uint16
	if f.TagAlterPreservation() {
		flags |= v3FlagTagAlterPreservation
	}
	if f.FileAlterPreservation() {
		flags |= v3FlagFileAlterPreservation
	}
	if f.ReadOnly() {
		flags |= v3FlagReadOnly
	}
	if f.Compression() {
		flags |= v3FlagCompression
	}

	header := make([]byte, v3HeaderSize, v3HeaderSize+4)
	copy(header[0:4], id)
	binary.BigEndian.PutUint32(header[4:8], uint32(contentSize))
	binary.BigEndian.PutUint16(header[8:10], flags)
	if f.Compression() {
		header = header[:v3HeaderSize+4]
		binary.BigEndian.PutUint32(header[v3HeaderSize:], uint32(decompressedSize))
	}

	if _, err := w.Write(header); err != nil {
		return 0, err
	}
	if _, err := w.Write(payload); err != nil {
		return 0, err
	}
	return v3HeaderSize + contentSize, nil
}

// readFrameID reads an identifier of the given width. A leading zero byte
// is the padding sentinel; it reports ok=false without error.
func readFrameID(r io.Reader, width int) (string, bool, error) {
	buf := make([]byte, width)
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return "", false, malformed("", "missing frame identifier", err)
	}
	if buf[0] == 0 {
		return "", false, nil
	}
	if _, err := io.ReadFull(r, buf[1:]); err != nil {
		return "", false, malformed("", "truncated frame identifier", err)
	}
	return string(buf), true, nil
}

// readPayload reads exactly size content bytes. The buffer grows with the
// bytes actually read, so a hostile size field cannot force a huge
// allocation before the stream runs dry.
func readPayload(r io.Reader, frameID string, size int) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(size)))
	if err != nil {
		return nil, malformed(frameID, "truncated frame payload", err)
	}
	if len(data) != size {
		return nil, malformed(frameID, "truncated frame payload", io.ErrUnexpectedEOF)
	}
	return data, nil
}

// inflate decompresses a zlib payload and checks it against the declared
// decompressed size.
func inflate(frameID string, data []byte, declared uint32) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, malformed(frameID, "corrupt compressed payload", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, malformed(frameID, "corrupt compressed payload", err)
	}
	if uint32(len(out)) != declared {
		return nil, malformed(frameID, fmt.Sprintf("decompressed size %d does not match declared %d", len(out), declared), nil)
	}
	return out, nil
}

// deflate compresses a payload with zlib.
func deflate(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(data)
	zw.Close()
	return buf.Bytes()
}
