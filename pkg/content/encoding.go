package content

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the text encoding byte that prefixes string-bearing frame
// payloads.
type Encoding byte

const (
	EncodingLatin1  Encoding = 0x00 // ISO-8859-1
	EncodingUTF16   Encoding = 0x01 // UTF-16 with BOM
	EncodingUTF16BE Encoding = 0x02 // UTF-16 big-endian, no BOM (ID3v2.4)
	EncodingUTF8    Encoding = 0x03 // UTF-8 (ID3v2.4)
)

func (e Encoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("Encoding(0x%02X)", byte(e))
	}
}

// DecodeText converts payload bytes in this encoding to a string.
func (e Encoding) DecodeText(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	switch e {
	case EncodingLatin1:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("decoding ISO-8859-1 text: %w", err)
		}
		return string(out), nil
	case EncodingUTF16:
		out, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("decoding UTF-16 text: %w", err)
		}
		return string(out), nil
	case EncodingUTF16BE:
		out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("decoding UTF-16BE text: %w", err)
		}
		return string(out), nil
	case EncodingUTF8:
		if !utf8.Valid(b) {
			return "", fmt.Errorf("invalid UTF-8 text")
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown text encoding 0x%02X", byte(e))
	}
}

// EncodeText converts a string to payload bytes in this encoding.
func (e Encoding) EncodeText(s string) ([]byte, error) {
	switch e {
	case EncodingLatin1:
		out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("encoding ISO-8859-1 text: %w", err)
		}
		return out, nil
	case EncodingUTF16:
		out, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("encoding UTF-16 text: %w", err)
		}
		return out, nil
	case EncodingUTF16BE:
		out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("encoding UTF-16BE text: %w", err)
		}
		return out, nil
	case EncodingUTF8:
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("unknown text encoding 0x%02X", byte(e))
	}
}

// termWidth is the width of the NUL terminator for this encoding.
func (e Encoding) termWidth() int {
	if e == EncodingUTF16 || e == EncodingUTF16BE {
		return 2
	}
	return 1
}

// terminator returns the NUL terminator bytes for this encoding.
func (e Encoding) terminator() []byte {
	return make([]byte, e.termWidth())
}

// chooseEncoding picks the narrowest encoding able to represent all given
// strings: ISO-8859-1 when possible, UTF-16 otherwise.
func chooseEncoding(ss ...string) Encoding {
	for _, s := range ss {
		for _, r := range s {
			if r > 0xFF {
				return EncodingUTF16
			}
		}
	}
	return EncodingLatin1
}
