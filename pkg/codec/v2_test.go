package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jxs/go-id3/pkg/frame"
)

// v2Frame builds raw ID3v2.2 frame bytes.
func v2Frame(id string, payload []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(id)
	buf.Write([]byte{
		byte(len(payload) >> 16),
		byte(len(payload) >> 8),
		byte(len(payload)),
	})
	buf.Write(payload)
	return buf.Bytes()
}

func TestFrameV2_Decode_TranslatesIdentifier(t *testing.T) {
	raw := v2Frame("TT2", append([]byte{0x00}, "title"...))

	n, f, err := FrameV2{}.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != len(raw) {
		t.Errorf("consumed %d bytes, want %d", n, len(raw))
	}
	if f.ID() != "TIT2" {
		t.Errorf("ID = %q, want TIT2", f.ID())
	}
	if !f.Content().Equal(frame.Text("title")) {
		t.Errorf("content = %#v, want Text(\"title\")", f.Content())
	}
}

func TestFrameV2_Decode_UnmappedIdentifierKeepsRawContent(t *testing.T) {
	raw := v2Frame("XYZ", []byte{0xDE, 0xAD, 0xBE, 0xEF})

	_, f, err := FrameV2{}.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if f.ID() != "XYZ" {
		t.Errorf("ID = %q, want XYZ preserved verbatim", f.ID())
	}
	if !f.Content().Equal(frame.Unknown([]byte{0xDE, 0xAD, 0xBE, 0xEF})) {
		t.Errorf("content = %#v, want raw bytes", f.Content())
	}
}

func TestFrameV2_Decode_Padding(t *testing.T) {
	n, f, err := FrameV2{}.Decode(bytes.NewReader(make([]byte, 8)))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != 0 || f != nil {
		t.Errorf("padding should yield (0, nil), got (%d, %v)", n, f)
	}
}

func TestFrameV2_Decode_Truncated(t *testing.T) {
	raw := v2Frame("TT2", append([]byte{0x00}, "title"...))

	for _, cut := range []int{2, 5, 8} {
		_, _, err := FrameV2{}.Decode(bytes.NewReader(raw[:cut]))
		if !errors.Is(err, ErrMalformedStream) {
			t.Errorf("cut at %d: err = %v, want ErrMalformedStream", cut, err)
		}
	}
}

func TestFrameV2_RoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		frame *frame.Frame
	}{
		{"text", frame.WithContent("TT2", frame.Text("title"))},
		{"comment", frame.WithContent("COM", frame.Comment{Lang: "eng", Description: "d", Text: "c"})},
		{"picture", frame.WithContent("PIC", frame.Picture{
			MimeType:    "image/png",
			PictureType: frame.PictureFrontCover,
			Description: "cover",
			Data:        []byte{1, 2, 3},
		})},
		{"unmapped identifier", frame.WithContent("XYZ", frame.Unknown([]byte{9, 9}))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			written, err := FrameV2{}.Encode(&buf, tc.frame)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			consumed, decoded, err := FrameV2{}.Decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if consumed != written {
				t.Errorf("consumed %d bytes, wrote %d", consumed, written)
			}
			if !decoded.Equal(tc.frame) || !decoded.Content().Equal(tc.frame.Content()) {
				t.Errorf("round trip changed frame: %#v", decoded.Content())
			}
		})
	}
}

func TestFrameV2_Encode_PanicsWithoutLegacyIdentifier(t *testing.T) {
	// TSST has no ID3v2.2 counterpart.
	f := frame.WithContent("TSST", frame.Text("set subtitle"))

	defer func() {
		if recover() == nil {
			t.Error("Encode did not panic for a frame without an ID3v2.2 identifier")
		}
	}()
	FrameV2{}.Encode(&bytes.Buffer{}, f)
}
