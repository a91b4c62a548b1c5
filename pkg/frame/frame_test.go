package frame

import "testing"

func TestFrame_Equal_TextIgnoresContent(t *testing.T) {
	a := WithContent("TIT2", Text("first title"))
	b := WithContent("TIT2", Text("second title"))

	if !a.Equal(b) {
		t.Error("text frames with equal identifiers must be equal regardless of text")
	}
	if a.HashKey() != b.HashKey() {
		t.Error("equal frames must share a hash key")
	}

	c := WithContent("TALB", Text("first title"))
	if a.Equal(c) {
		t.Error("text frames with different identifiers must not be equal")
	}
}

func TestFrame_Equal_PictureComparesContent(t *testing.T) {
	front := WithContent("APIC", Picture{
		MimeType:    "image/jpeg",
		PictureType: PictureFrontCover,
		Description: "cover",
		Data:        []byte{1, 2, 3},
	})
	back := WithContent("APIC", Picture{
		MimeType:    "image/jpeg",
		PictureType: PictureBackCover,
		Description: "back",
		Data:        []byte{4, 5, 6},
	})

	if front.Equal(back) {
		t.Error("picture frames with different content must not be equal")
	}

	same := WithContent("APIC", Picture{
		MimeType:    "image/jpeg",
		PictureType: PictureFrontCover,
		Description: "cover",
		Data:        []byte{1, 2, 3},
	})
	if !front.Equal(same) {
		t.Error("picture frames with identical content must be equal")
	}
	if front.HashKey() != same.HashKey() {
		t.Error("equal frames must share a hash key")
	}
	if front.HashKey() == back.HashKey() {
		t.Error("distinct picture frames should hash differently")
	}
}

func TestFrame_Equal_Nil(t *testing.T) {
	f := WithContent("TIT2", Text("title"))
	if f.Equal(nil) {
		t.Error("a frame must not equal nil")
	}
}

func TestWithContent_Flags(t *testing.T) {
	f := WithContent("TIT2", Text("title"))
	if f.TagAlterPreservation() || f.FileAlterPreservation() || f.ReadOnly() || f.Compression() {
		t.Fatal("all flags must start cleared")
	}

	f.SetTagAlterPreservation(true)
	f.SetFileAlterPreservation(true)
	f.SetReadOnly(true)
	f.SetCompression(true)
	if !f.TagAlterPreservation() || !f.FileAlterPreservation() || !f.ReadOnly() || !f.Compression() {
		t.Fatal("flag setters must round-trip")
	}
}

func TestFrame_String(t *testing.T) {
	testCases := []struct {
		name    string
		frame   *Frame
		summary string
	}{
		{
			name:    "text",
			frame:   WithContent("TIT2", Text("title")),
			summary: "title",
		},
		{
			name:    "link",
			frame:   WithContent("WOAF", Link("http://example.com")),
			summary: "http://example.com",
		},
		{
			name:    "extended text",
			frame:   WithContent("TXXX", ExtendedText{Description: "description", Value: "value"}),
			summary: "description: value",
		},
		{
			name:    "extended link",
			frame:   WithContent("WXXX", ExtendedLink{Description: "homepage", Link: "http://example.com"}),
			summary: "homepage: http://example.com",
		},
		{
			name:    "comment",
			frame:   WithContent("COMM", Comment{Lang: "eng", Description: "note", Text: "hello"}),
			summary: "note: hello",
		},
		{
			name:    "lyrics",
			frame:   WithContent("USLT", Lyrics{Lang: "eng", Text: "la la la"}),
			summary: "la la la",
		},
		{
			name: "picture",
			frame: WithContent("APIC", Picture{
				MimeType:    "image/png",
				PictureType: PictureFrontCover,
				Description: "cover",
			}),
			summary: "cover: FrontCover (image/png)",
		},
		{
			name:    "unknown",
			frame:   WithContent("XYZW", Unknown([]byte{1, 2, 3})),
			summary: "unknown, 3 bytes",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.frame.String(); got != tc.summary {
				t.Errorf("String() = %q, want %q", got, tc.summary)
			}
		})
	}
}

func TestFrame_IDForVersion(t *testing.T) {
	f := WithContent("TT2", Text("title"))
	if f.ID() != "TIT2" {
		t.Fatalf("ID() = %q, want TIT2", f.ID())
	}
	if got, ok := f.IDForVersion(Version22); !ok || got != "TT2" {
		t.Errorf("IDForVersion(Version22) = %q, %v", got, ok)
	}
	if got, ok := f.IDForVersion(Version24); !ok || got != "TIT2" {
		t.Errorf("IDForVersion(Version24) = %q, %v", got, ok)
	}
}
