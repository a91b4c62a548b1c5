// Package tag models an ID3v2 tag: a versioned, ordered collection of
// frames with the uniqueness semantics the frame model defines, plus the
// container-level wire format (tag header, frame sequence, padding).
package tag

import (
	"github.com/jxs/go-id3/pkg/frame"
)

// Tag is an ID3v2 tag.
type Tag struct {
	version frame.Version
	frames  []*frame.Frame
}

// New creates an empty ID3v2.3 tag.
func New() *Tag {
	return NewWithVersion(frame.Version23)
}

// NewWithVersion creates an empty tag for the given wire version.
func NewWithVersion(v frame.Version) *Tag {
	return &Tag{version: v}
}

// Version returns the tag's wire version.
func (t *Tag) Version() frame.Version { return t.version }

// Frames returns the tag's frames in order.
func (t *Tag) Frames() []*frame.Frame { return t.frames }

// AddFrame inserts a frame. A frame occupying the same uniqueness slot
// (per frame equality) is replaced in place, so a tag holds at most one
// text frame per identifier while distinct pictures may share "APIC".
func (t *Tag) AddFrame(f *frame.Frame) {
	for i, existing := range t.frames {
		if f.Equal(existing) {
			t.frames[i] = f
			return
		}
	}
	t.frames = append(t.frames, f)
}

// Frame returns the first frame with the given identifier, or nil.
func (t *Tag) Frame(id string) *frame.Frame {
	for _, f := range t.frames {
		if f.ID() == id {
			return f
		}
	}
	return nil
}

// RemoveFrames drops every frame with the given identifier.
func (t *Tag) RemoveFrames(id string) {
	kept := t.frames[:0]
	for _, f := range t.frames {
		if f.ID() != id {
			kept = append(kept, f)
		}
	}
	t.frames = kept
}

// text returns the value of a text frame, or "".
func (t *Tag) text(id string) string {
	f := t.Frame(id)
	if f == nil {
		return ""
	}
	if txt, ok := f.Content().(frame.Text); ok {
		return string(txt)
	}
	return ""
}

// setText sets a text frame, replacing any previous value.
func (t *Tag) setText(id, value string) {
	t.AddFrame(frame.WithContent(id, frame.Text(value)))
}

// Title returns the content of the TIT2 frame.
func (t *Tag) Title() string { return t.text("TIT2") }

// SetTitle sets the TIT2 frame.
func (t *Tag) SetTitle(title string) { t.setText("TIT2", title) }

// Artist returns the content of the TPE1 frame.
func (t *Tag) Artist() string { return t.text("TPE1") }

// SetArtist sets the TPE1 frame.
func (t *Tag) SetArtist(artist string) { t.setText("TPE1", artist) }

// Album returns the content of the TALB frame.
func (t *Tag) Album() string { return t.text("TALB") }

// SetAlbum sets the TALB frame.
func (t *Tag) SetAlbum(album string) { t.setText("TALB", album) }

// Genre returns the content of the TCON frame.
func (t *Tag) Genre() string { return t.text("TCON") }

// SetGenre sets the TCON frame.
func (t *Tag) SetGenre(genre string) { t.setText("TCON", genre) }

// Year returns the content of the TYER frame.
func (t *Tag) Year() string { return t.text("TYER") }

// SetYear sets the TYER frame.
func (t *Tag) SetYear(year string) { t.setText("TYER", year) }
