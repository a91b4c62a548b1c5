package frame

import (
	"bytes"
	"fmt"
	"io"
)

// Content is the typed payload a frame carries. It is a closed set of
// variants; the unexported hash method keeps implementations confined to
// this package.
type Content interface {
	fmt.Stringer

	// Equal reports structural equality with another content value.
	Equal(other Content) bool

	// writeHash feeds the variant's identity into a frame hash.
	writeHash(w io.Writer)
}

// Text is the value of a text information frame (identifiers "T000"-"TZZZ"
// excluding "TXXX").
type Text string

func (t Text) String() string { return string(t) }

func (t Text) Equal(other Content) bool {
	o, ok := other.(Text)
	return ok && o == t
}

func (t Text) writeHash(w io.Writer) {
	hashFields(w, "text", string(t))
}

// Link is the URL of a link frame ("W000"-"WZZZ" excluding "WXXX").
type Link string

func (l Link) String() string { return string(l) }

func (l Link) Equal(other Content) bool {
	o, ok := other.(Link)
	return ok && o == l
}

func (l Link) writeHash(w io.Writer) {
	hashFields(w, "link", string(l))
}

// ExtendedText is the payload of a user-defined text frame ("TXXX").
type ExtendedText struct {
	Description string
	Value       string
}

func (t ExtendedText) String() string {
	return fmt.Sprintf("%s: %s", t.Description, t.Value)
}

func (t ExtendedText) Equal(other Content) bool {
	o, ok := other.(ExtendedText)
	return ok && o == t
}

func (t ExtendedText) writeHash(w io.Writer) {
	hashFields(w, "extendedtext", t.Description, t.Value)
}

// ExtendedLink is the payload of a user-defined link frame ("WXXX").
type ExtendedLink struct {
	Description string
	Link        string
}

func (l ExtendedLink) String() string {
	return fmt.Sprintf("%s: %s", l.Description, l.Link)
}

func (l ExtendedLink) Equal(other Content) bool {
	o, ok := other.(ExtendedLink)
	return ok && o == l
}

func (l ExtendedLink) writeHash(w io.Writer) {
	hashFields(w, "extendedlink", l.Description, l.Link)
}

// Comment is the payload of a comment frame ("COMM"). Lang is the 3-byte
// ISO-639-2 language tag carried inside the payload.
type Comment struct {
	Lang        string
	Description string
	Text        string
}

func (c Comment) String() string {
	return fmt.Sprintf("%s: %s", c.Description, c.Text)
}

func (c Comment) Equal(other Content) bool {
	o, ok := other.(Comment)
	return ok && o == c
}

func (c Comment) writeHash(w io.Writer) {
	hashFields(w, "comment", c.Lang, c.Description, c.Text)
}

// Lyrics is the payload of an unsynchronised lyrics frame ("USLT"). Lang
// is the 3-byte language tag carried inside the payload.
type Lyrics struct {
	Lang string
	Text string
}

func (l Lyrics) String() string { return l.Text }

func (l Lyrics) Equal(other Content) bool {
	o, ok := other.(Lyrics)
	return ok && o == l
}

func (l Lyrics) writeHash(w io.Writer) {
	hashFields(w, "lyrics", l.Lang, l.Text)
}

// Picture is the payload of an attached picture frame ("APIC").
type Picture struct {
	MimeType    string
	PictureType PictureType
	Description string
	Data        []byte
}

func (p Picture) String() string {
	return fmt.Sprintf("%s: %s (%s)", p.Description, p.PictureType, p.MimeType)
}

func (p Picture) Equal(other Content) bool {
	o, ok := other.(Picture)
	return ok &&
		o.MimeType == p.MimeType &&
		o.PictureType == p.PictureType &&
		o.Description == p.Description &&
		bytes.Equal(o.Data, p.Data)
}

func (p Picture) writeHash(w io.Writer) {
	hashFields(w, "picture", p.MimeType, p.Description)
	w.Write([]byte{byte(p.PictureType)})
	w.Write(p.Data)
}

// Unknown holds the raw payload of a frame whose identifier has no known
// content shape.
type Unknown []byte

func (u Unknown) String() string {
	return fmt.Sprintf("unknown, %d bytes", len(u))
}

func (u Unknown) Equal(other Content) bool {
	o, ok := other.(Unknown)
	return ok && bytes.Equal(o, u)
}

func (u Unknown) writeHash(w io.Writer) {
	hashFields(w, "unknown")
	w.Write(u)
}

// hashFields writes a variant tag and its string fields with NUL
// separators so distinct field splits hash differently.
func hashFields(w io.Writer, fields ...string) {
	for _, f := range fields {
		io.WriteString(w, f)
		w.Write([]byte{0})
	}
}
