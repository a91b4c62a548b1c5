package codec

import (
	"fmt"
	"io"

	"github.com/jxs/go-id3/pkg/content"
	"github.com/jxs/go-id3/pkg/frame"
)

// v2HeaderSize is the ID3v2.2 frame header: identifier(3) + size(3).
const v2HeaderSize = 6

// FrameV2 is the ID3v2.2 frame codec. The legacy layout carries no frame
// flags and no compression.
type FrameV2 struct{}

// Decode reads one ID3v2.2 frame. The 3-byte identifier is translated to
// its ID3v2.3 form where a mapping exists; untranslatable identifiers are
// preserved verbatim and their payload kept as raw bytes.
func (FrameV2) Decode(r io.Reader) (int, *frame.Frame, error) {
	id, ok, err := readFrameID(r, 3)
	if err != nil {
		return 0, nil, err
	}
	if !ok {
		return 0, nil, nil
	}

	var szb [3]byte
	if _, err := io.ReadFull(r, szb[:]); err != nil {
		return 0, nil, malformed(id, "truncated frame header", err)
	}
	contentSize := int(szb[0])<<16 | int(szb[1])<<8 | int(szb[2])

	data, err := readPayload(r, id, contentSize)
	if err != nil {
		return 0, nil, err
	}

	// Content shape is keyed by the translated identifier; an identifier
	// with no ID3v2.3 form parses as raw bytes.
	fid := frame.NewFrameID(id)
	c, err := content.Parse(fid.String(), data)
	if err != nil {
		return 0, nil, decoding(id, err)
	}

	return v2HeaderSize + contentSize, frame.WithContent(id, c), nil
}

// Encode writes one ID3v2.2 frame.
//
// Panics if the frame's identifier has no 3-byte legacy form; callers
// must project identifiers before selecting this codec.
func (FrameV2) Encode(w io.Writer, f *frame.Frame) (int, error) {
	id, ok := f.IDForVersion(frame.Version22)
	if !ok || len(id) != 3 {
		panic(fmt.Sprintf("codec: frame %q has no ID3v2.2 identifier", f.ID()))
	}

	payload, err := content.Render(f.ID(), f.Content())
	if err != nil {
		return 0, decoding(id, err)
	}
	if len(payload) >= 1<<24 {
		return 0, malformed(id, "payload exceeds 24-bit frame size", nil)
	}

	header := []byte{
		id[0], id[1], id[2],
		byte(len(payload) >> 16),
		byte(len(payload) >> 8),
		byte(len(payload)),
	}
	if _, err := w.Write(header); err != nil {
		return 0, err
	}
	if _, err := w.Write(payload); err != nil {
		return 0, err
	}
	return v2HeaderSize + len(payload), nil
}
