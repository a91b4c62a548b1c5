package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/jxs/go-id3/pkg/frame"
)

// v3Frame builds raw ID3v2.3 frame bytes.
func v3Frame(id string, flags uint16, extra, payload []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(id)
	var sz [4]byte
	binary.BigEndian.PutUint32(sz[:], uint32(len(extra)+len(payload)))
	buf.Write(sz[:])
	var fl [2]byte
	binary.BigEndian.PutUint16(fl[:], flags)
	buf.Write(fl[:])
	buf.Write(extra)
	buf.Write(payload)
	return buf.Bytes()
}

func TestFrameV3_Decode_PlainTextFrame(t *testing.T) {
	raw := v3Frame("TIT2", 0x0000, nil, []byte("title"))

	n, f, err := FrameV3{}.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != 15 {
		t.Errorf("consumed %d bytes, want 15", n)
	}
	if f.ID() != "TIT2" {
		t.Errorf("ID = %q, want TIT2", f.ID())
	}
	if !f.Content().Equal(frame.Text("title")) {
		t.Errorf("content = %#v, want Text(\"title\")", f.Content())
	}
	if f.TagAlterPreservation() || f.FileAlterPreservation() {
		t.Error("preservation flags must be false for a zero flag word")
	}
}

func TestFrameV3_Decode_Flags(t *testing.T) {
	raw := v3Frame("TIT2", 0x8000|0x4000|0x2000, nil, []byte("title"))

	_, f, err := FrameV3{}.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !f.TagAlterPreservation() {
		t.Error("tag alter preservation flag not decoded")
	}
	if !f.FileAlterPreservation() {
		t.Error("file alter preservation flag not decoded")
	}
	if !f.ReadOnly() {
		t.Error("read-only flag not decoded")
	}
}

func TestFrameV3_Decode_RejectsEncryption(t *testing.T) {
	raw := v3Frame("TIT2", 0x0040, nil, []byte("title"))

	_, _, err := FrameV3{}.Decode(bytes.NewReader(raw))
	if !errors.Is(err, ErrUnsupportedFeature) {
		t.Fatalf("err = %v, want ErrUnsupportedFeature", err)
	}

	var cerr *Error
	if !errors.As(err, &cerr) || cerr.FrameID != "TIT2" {
		t.Errorf("error should name the frame: %v", err)
	}
}

func TestFrameV3_Decode_RejectsGroupingIdentity(t *testing.T) {
	raw := v3Frame("TIT2", 0x0020, nil, []byte("title"))

	_, _, err := FrameV3{}.Decode(bytes.NewReader(raw))
	if !errors.Is(err, ErrUnsupportedFeature) {
		t.Fatalf("err = %v, want ErrUnsupportedFeature", err)
	}
}

func TestFrameV3_Decode_Compressed(t *testing.T) {
	var z bytes.Buffer
	zw := zlib.NewWriter(&z)
	zw.Write([]byte("title"))
	zw.Close()

	extra := make([]byte, 4)
	binary.BigEndian.PutUint32(extra, 5) // decompressed size
	raw := v3Frame("TIT2", 0x0080, extra, z.Bytes())

	n, f, err := FrameV3{}.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != len(raw) {
		t.Errorf("consumed %d bytes, want %d", n, len(raw))
	}
	if !f.Content().Equal(frame.Text("title")) {
		t.Errorf("content = %#v, want Text(\"title\")", f.Content())
	}
	if !f.Compression() {
		t.Error("compression flag not decoded")
	}
}

func TestFrameV3_Decode_CorruptCompressedPayload(t *testing.T) {
	extra := make([]byte, 4)
	binary.BigEndian.PutUint32(extra, 5)
	raw := v3Frame("TIT2", 0x0080, extra, []byte("definitely not zlib"))

	_, _, err := FrameV3{}.Decode(bytes.NewReader(raw))
	if !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("err = %v, want ErrMalformedStream", err)
	}
}

func TestFrameV3_Decode_TruncatedPayload(t *testing.T) {
	raw := v3Frame("TIT2", 0x0000, nil, []byte("title"))

	for _, cut := range []int{3, 8, 12} {
		_, _, err := FrameV3{}.Decode(bytes.NewReader(raw[:cut]))
		if !errors.Is(err, ErrMalformedStream) {
			t.Errorf("cut at %d: err = %v, want ErrMalformedStream", cut, err)
		}
	}
}

func TestFrameV3_Decode_HostileSizeField(t *testing.T) {
	// A header declaring a near-4GiB payload over a tiny stream must fail
	// as malformed without committing memory for the declared size.
	raw := []byte{
		'T', 'I', 'T', '2',
		0xFF, 0xFF, 0xFF, 0x00,
		0x00, 0x00,
		't', 'i', 't', 'l', 'e',
	}

	_, _, err := FrameV3{}.Decode(bytes.NewReader(raw))
	if !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("err = %v, want ErrMalformedStream", err)
	}
}

func TestFrameV3_Decode_Padding(t *testing.T) {
	n, f, err := FrameV3{}.Decode(bytes.NewReader(make([]byte, 16)))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != 0 || f != nil {
		t.Errorf("padding should yield (0, nil), got (%d, %v)", n, f)
	}
}

func TestFrameV3_RoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		frame *frame.Frame
	}{
		{"text", frame.WithContent("TIT2", frame.Text("title"))},
		{"unicode text", frame.WithContent("TPE1", frame.Text("Björk ビョーク"))},
		{"link", frame.WithContent("WOAF", frame.Link("http://example.com/file"))},
		{"extended text", frame.WithContent("TXXX", frame.ExtendedText{Description: "key", Value: "value"})},
		{"extended link", frame.WithContent("WXXX", frame.ExtendedLink{Description: "homepage", Link: "http://example.com"})},
		{"comment", frame.WithContent("COMM", frame.Comment{Lang: "eng", Description: "note", Text: "a comment"})},
		{"lyrics", frame.WithContent("USLT", frame.Lyrics{Lang: "eng", Text: "la la la"})},
		{"picture", frame.WithContent("APIC", frame.Picture{
			MimeType:    "image/png",
			PictureType: frame.PictureFrontCover,
			Description: "cover",
			Data:        []byte{0x89, 0x50, 0x4E, 0x47},
		})},
		{"unknown", frame.WithContent("PRIV", frame.Unknown([]byte{0x01, 0x02, 0x03}))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			written, err := FrameV3{}.Encode(&buf, tc.frame)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if written != buf.Len() {
				t.Errorf("Encode reported %d bytes, wrote %d", written, buf.Len())
			}

			consumed, decoded, err := FrameV3{}.Decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if consumed != written {
				t.Errorf("consumed %d bytes, wrote %d", consumed, written)
			}
			if !decoded.Equal(tc.frame) {
				t.Errorf("decoded frame %v is not equal to original %v", decoded, tc.frame)
			}
			if !decoded.Content().Equal(tc.frame.Content()) {
				t.Errorf("decoded content %#v differs from original %#v", decoded.Content(), tc.frame.Content())
			}
		})
	}
}

func TestFrameV3_RoundTrip_FlagsAndCompression(t *testing.T) {
	f := frame.WithContent("USLT", frame.Lyrics{Lang: "eng", Text: "round and round the lyrics go"})
	f.SetTagAlterPreservation(true)
	f.SetReadOnly(true)
	f.SetCompression(true)

	var buf bytes.Buffer
	if _, err := (FrameV3{}).Encode(&buf, f); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	_, decoded, err := FrameV3{}.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !decoded.Content().Equal(f.Content()) {
		t.Errorf("compressed round trip changed content: %#v", decoded.Content())
	}
	if !decoded.TagAlterPreservation() || !decoded.ReadOnly() || !decoded.Compression() {
		t.Error("flags lost in round trip")
	}
	if decoded.FileAlterPreservation() {
		t.Error("file alter preservation should stay false")
	}
}

func TestFrameV3_Encode_PanicsWithoutV3Identifier(t *testing.T) {
	// An untranslatable legacy identifier has no ID3v2.3 form.
	f := frame.WithContent("XYZ", frame.Unknown([]byte{1}))

	defer func() {
		if recover() == nil {
			t.Error("Encode did not panic for a frame without an ID3v2.3 identifier")
		}
	}()
	FrameV3{}.Encode(&bytes.Buffer{}, f)
}
