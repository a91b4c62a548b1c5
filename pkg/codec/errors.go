package codec

import "fmt"

// Kind classifies a codec error.
type Kind int

const (
	// KindUnsupportedFeature marks a frame using a wire feature this codec
	// does not implement (encryption, grouping identity,
	// unsynchronisation).
	KindUnsupportedFeature Kind = iota + 1
	// KindMalformedStream marks short reads, truncated payloads and
	// corrupt compressed data.
	KindMalformedStream
	// KindDecoding marks a payload that could not be interpreted under its
	// declared text encoding or content shape.
	KindDecoding
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedFeature:
		return "unsupported feature"
	case KindMalformedStream:
		return "malformed stream"
	case KindDecoding:
		return "decoding error"
	default:
		return "unknown error"
	}
}

// Matching targets for errors.Is.
var (
	ErrUnsupportedFeature = &Error{Kind: KindUnsupportedFeature}
	ErrMalformedStream    = &Error{Kind: KindMalformedStream}
	ErrDecoding           = &Error{Kind: KindDecoding}
)

// Error is a frame codec error. FrameID names the frame being processed
// when it is known at the point of failure.
type Error struct {
	Kind    Kind
	FrameID string
	Msg     string
	Err     error
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.FrameID != "" {
		s = fmt.Sprintf("[%s] %s", e.FrameID, s)
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so callers can test against the
// package-level targets with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.FrameID == "" && t.Msg == "" && t.Err == nil
}

func unsupported(frameID, msg string) *Error {
	return &Error{Kind: KindUnsupportedFeature, FrameID: frameID, Msg: msg}
}

func malformed(frameID, msg string, err error) *Error {
	return &Error{Kind: KindMalformedStream, FrameID: frameID, Msg: msg, Err: err}
}

func decoding(frameID string, err error) *Error {
	return &Error{Kind: KindDecoding, FrameID: frameID, Err: err}
}
