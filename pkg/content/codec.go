// Package content parses and renders ID3v2 frame payloads. The payload
// shape is keyed by the frame identifier's semantic category: text frames
// ("T..."), link frames ("W..."), comments ("COMM"), lyrics ("USLT") and
// pictures ("APIC"). Identifiers with no known shape keep their payload as
// raw bytes so they survive a round trip untouched.
package content

import (
	"bytes"
	"fmt"

	"github.com/jxs/go-id3/pkg/frame"
)

// Parse interprets a frame payload according to the identifier's semantic
// category.
func Parse(id string, data []byte) (frame.Content, error) {
	switch {
	case id == "TXXX":
		return parseExtendedText(data)
	case id == "WXXX":
		return parseExtendedLink(data)
	case id == "COMM":
		return parseComment(data)
	case id == "USLT":
		return parseLyrics(data)
	case id == "APIC":
		return parsePicture(data)
	case len(id) == 4 && id[0] == 'T':
		return parseText(data)
	case len(id) == 4 && id[0] == 'W':
		return frame.Link(string(trimTerminated(data, 1))), nil
	default:
		return frame.Unknown(append([]byte(nil), data...)), nil
	}
}

// Render serializes content to its canonical payload bytes. The identifier
// is accepted for symmetry with Parse; the layout is determined by the
// content variant.
func Render(id string, c frame.Content) ([]byte, error) {
	switch v := c.(type) {
	case frame.Text:
		enc := chooseEncoding(string(v))
		text, err := enc.EncodeText(string(v))
		if err != nil {
			return nil, err
		}
		return concat([]byte{byte(enc)}, text), nil
	case frame.Link:
		return []byte(v), nil
	case frame.ExtendedText:
		enc := chooseEncoding(v.Description, v.Value)
		desc, err := enc.EncodeText(v.Description)
		if err != nil {
			return nil, err
		}
		value, err := enc.EncodeText(v.Value)
		if err != nil {
			return nil, err
		}
		return concat([]byte{byte(enc)}, desc, enc.terminator(), value), nil
	case frame.ExtendedLink:
		enc := chooseEncoding(v.Description)
		desc, err := enc.EncodeText(v.Description)
		if err != nil {
			return nil, err
		}
		return concat([]byte{byte(enc)}, desc, enc.terminator(), []byte(v.Link)), nil
	case frame.Comment:
		enc := chooseEncoding(v.Description, v.Text)
		desc, err := enc.EncodeText(v.Description)
		if err != nil {
			return nil, err
		}
		text, err := enc.EncodeText(v.Text)
		if err != nil {
			return nil, err
		}
		return concat([]byte{byte(enc)}, langBytes(v.Lang), desc, enc.terminator(), text), nil
	case frame.Lyrics:
		enc := chooseEncoding(v.Text)
		text, err := enc.EncodeText(v.Text)
		if err != nil {
			return nil, err
		}
		// The content descriptor is left empty.
		return concat([]byte{byte(enc)}, langBytes(v.Lang), enc.terminator(), text), nil
	case frame.Picture:
		enc := chooseEncoding(v.Description)
		desc, err := enc.EncodeText(v.Description)
		if err != nil {
			return nil, err
		}
		return concat(
			[]byte{byte(enc)},
			[]byte(v.MimeType), []byte{0},
			[]byte{byte(v.PictureType)},
			desc, enc.terminator(),
			v.Data,
		), nil
	case frame.Unknown:
		return append([]byte(nil), v...), nil
	default:
		return nil, fmt.Errorf("content: cannot render %T for frame %q", c, id)
	}
}

func parseText(data []byte) (frame.Content, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("text frame payload is empty")
	}
	enc := Encoding(data[0])
	if enc > EncodingUTF8 {
		// Some writers omit the encoding byte entirely; read the whole
		// payload as ISO-8859-1 so the frame is not lost.
		s, err := EncodingLatin1.DecodeText(trimTerminated(data, 1))
		if err != nil {
			return nil, err
		}
		return frame.Text(s), nil
	}
	s, err := enc.DecodeText(trimTerminated(data[1:], enc.termWidth()))
	if err != nil {
		return nil, err
	}
	return frame.Text(s), nil
}

func parseExtendedText(data []byte) (frame.Content, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("extended text frame payload is empty")
	}
	enc := Encoding(data[0])
	descBytes, rest := splitTerminated(data[1:], enc.termWidth())
	desc, err := enc.DecodeText(descBytes)
	if err != nil {
		return nil, err
	}
	value, err := enc.DecodeText(trimTerminated(rest, enc.termWidth()))
	if err != nil {
		return nil, err
	}
	return frame.ExtendedText{Description: desc, Value: value}, nil
}

func parseExtendedLink(data []byte) (frame.Content, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("extended link frame payload is empty")
	}
	enc := Encoding(data[0])
	descBytes, rest := splitTerminated(data[1:], enc.termWidth())
	desc, err := enc.DecodeText(descBytes)
	if err != nil {
		return nil, err
	}
	return frame.ExtendedLink{Description: desc, Link: string(trimTerminated(rest, 1))}, nil
}

func parseComment(data []byte) (frame.Content, error) {
	enc, lang, rest, err := parseLangHeader(data, "comment")
	if err != nil {
		return nil, err
	}
	descBytes, textBytes := splitTerminated(rest, enc.termWidth())
	desc, err := enc.DecodeText(descBytes)
	if err != nil {
		return nil, err
	}
	text, err := enc.DecodeText(trimTerminated(textBytes, enc.termWidth()))
	if err != nil {
		return nil, err
	}
	return frame.Comment{Lang: lang, Description: desc, Text: text}, nil
}

func parseLyrics(data []byte) (frame.Content, error) {
	enc, lang, rest, err := parseLangHeader(data, "lyrics")
	if err != nil {
		return nil, err
	}
	// The content descriptor is not modeled; only the lyrics text after
	// it is kept.
	_, textBytes := splitTerminated(rest, enc.termWidth())
	text, err := enc.DecodeText(trimTerminated(textBytes, enc.termWidth()))
	if err != nil {
		return nil, err
	}
	return frame.Lyrics{Lang: lang, Text: text}, nil
}

func parsePicture(data []byte) (frame.Content, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("picture frame payload is empty")
	}
	enc := Encoding(data[0])
	mimeBytes, rest := splitTerminated(data[1:], 1)
	if len(rest) < 1 {
		return nil, fmt.Errorf("picture frame is missing its picture type")
	}
	picType := frame.PictureType(rest[0])
	descBytes, picData := splitTerminated(rest[1:], enc.termWidth())
	desc, err := enc.DecodeText(descBytes)
	if err != nil {
		return nil, err
	}
	return frame.Picture{
		MimeType:    string(mimeBytes),
		PictureType: picType,
		Description: desc,
		Data:        append([]byte(nil), picData...),
	}, nil
}

// parseLangHeader reads the encoding byte and 3-byte language tag shared
// by comment and lyrics payloads.
func parseLangHeader(data []byte, kind string) (Encoding, string, []byte, error) {
	if len(data) < 4 {
		return 0, "", nil, fmt.Errorf("%s frame payload is too short for its language tag", kind)
	}
	return Encoding(data[0]), string(data[1:4]), data[4:], nil
}

// langBytes normalizes a language tag to exactly 3 bytes, defaulting to
// "eng" when unset.
func langBytes(lang string) []byte {
	if lang == "" {
		return []byte("eng")
	}
	b := make([]byte, 3)
	copy(b, lang)
	for i := range b {
		if b[i] == 0 {
			b[i] = ' '
		}
	}
	return b
}

// splitTerminated splits data at the first NUL terminator of the given
// width, aligned to the width. Without a terminator the whole input is the
// head.
func splitTerminated(data []byte, width int) (head, rest []byte) {
	for i := 0; i+width <= len(data); i += width {
		if allZero(data[i : i+width]) {
			return data[:i], data[i+width:]
		}
	}
	return data, nil
}

// trimTerminated drops trailing NUL terminators of the given width.
func trimTerminated(data []byte, width int) []byte {
	for len(data) >= width && allZero(data[len(data)-width:]) {
		data = data[:len(data)-width]
	}
	return data
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

func concat(parts ...[]byte) []byte {
	var buf bytes.Buffer
	for _, p := range parts {
		buf.Write(p)
	}
	return buf.Bytes()
}
