// Package frame models a single ID3v2 metadata unit: its identifier, its
// typed content and its preservation flags.
//
// Equality follows the ID3 specification's notion of frame uniqueness:
// text frames with equal identifiers are equal regardless of their text,
// while every other kind of frame is also distinguished by its content.
// Two "APIC" frames carrying different images are therefore distinct,
// but a tag can only hold one "TIT2". HashKey is consistent with Equal.
package frame

import "hash/fnv"

// Frame is one metadata unit within an ID3v2 tag.
type Frame struct {
	id      FrameID
	content Content

	tagAlterPreservation  bool
	fileAlterPreservation bool
	readOnly              bool
	compression           bool
}

// WithContent creates a frame with the given identifier and content.
//
// Both ID3v2.2 and ID3v2.3 identifiers are accepted; 3-byte identifiers
// are translated to their 4-byte form where a mapping exists and kept
// verbatim otherwise. All flags start cleared.
//
// Panics if the identifier is not 3 or 4 bytes long.
func WithContent(id string, content Content) *Frame {
	return &Frame{id: NewFrameID(id), content: content}
}

// ID returns the stored identifier string. It is 4 bytes long except when
// the frame was built from an ID3v2.2 identifier that could not be
// translated.
func (f *Frame) ID() string { return f.id.String() }

// IDForVersion returns the identifier compatible with the given wire
// version, or false when none exists.
func (f *Frame) IDForVersion(v Version) (string, bool) {
	return f.id.ForVersion(v)
}

// Content returns the frame's payload.
func (f *Frame) Content() Content { return f.content }

// SetContent replaces the frame's payload.
func (f *Frame) SetContent(content Content) { f.content = content }

// TagAlterPreservation reports whether the frame should be discarded when
// the tag is altered by a writer that does not know it.
func (f *Frame) TagAlterPreservation() bool { return f.tagAlterPreservation }

// SetTagAlterPreservation sets the tag alter preservation flag.
func (f *Frame) SetTagAlterPreservation(v bool) { f.tagAlterPreservation = v }

// FileAlterPreservation reports whether the frame should be discarded when
// the file, excluding the tag, is altered.
func (f *Frame) FileAlterPreservation() bool { return f.fileAlterPreservation }

// SetFileAlterPreservation sets the file alter preservation flag.
func (f *Frame) SetFileAlterPreservation(v bool) { f.fileAlterPreservation = v }

// ReadOnly reports the read-only flag. The flag is round-tripped through
// the wire format but not enforced.
func (f *Frame) ReadOnly() bool { return f.readOnly }

// SetReadOnly sets the read-only flag.
func (f *Frame) SetReadOnly(v bool) { f.readOnly = v }

// Compression reports whether the frame's payload is written
// zlib-compressed.
func (f *Frame) Compression() bool { return f.compression }

// SetCompression sets the compression flag.
func (f *Frame) SetCompression(v bool) { f.compression = v }

// Equal reports whether two frames occupy the same uniqueness slot. Text
// frames compare by identifier alone; all other frames compare by
// identifier and content.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil {
		return false
	}
	if _, isText := f.content.(Text); isText {
		return f.id == other.id
	}
	return f.id == other.id && f.content.Equal(other.content)
}

// HashKey returns a hash consistent with Equal: frames that are Equal
// produce the same key.
func (f *Frame) HashKey() uint64 {
	h := fnv.New64a()
	hashFields(h, f.id.code)
	if _, isText := f.content.(Text); !isText {
		f.content.writeHash(h)
	}
	return h.Sum64()
}

// String renders a single-line human readable summary of the content.
func (f *Frame) String() string { return f.content.String() }
