package frame

import "fmt"

// Version identifies an ID3v2 wire version.
type Version byte

const (
	Version22 Version = 2 // ID3v2.2, 3-byte identifiers
	Version23 Version = 3 // ID3v2.3, 4-byte identifiers
	Version24 Version = 4 // ID3v2.4, 4-byte identifiers
)

// String returns the conventional version name, e.g. "ID3v2.3".
func (v Version) String() string {
	return fmt.Sprintf("ID3v2.%d", byte(v))
}

// FrameID is a frame identifier. A valid ID is a 4-byte code from the
// ID3v2.3 namespace; an invalid ID is an ID3v2.2 code that has no known
// 4-byte counterpart and is preserved verbatim so the frame can be
// retained instead of discarded.
type FrameID struct {
	code  string
	valid bool
}

// NewFrameID builds a FrameID from a 3- or 4-byte identifier string.
// 4-byte identifiers are accepted as-is. 3-byte identifiers are translated
// to their ID3v2.3 counterpart when a mapping exists; otherwise the
// original string is kept and the ID is marked invalid.
//
// Panics if the identifier is not exactly 3 or 4 bytes long.
func NewFrameID(id string) FrameID {
	switch len(id) {
	case 4:
		return FrameID{code: id, valid: true}
	case 3:
		if mapped, ok := idV2ToV3[id]; ok {
			return FrameID{code: mapped, valid: true}
		}
		return FrameID{code: id, valid: false}
	default:
		panic(fmt.Sprintf("frame: identifier %q must be 3 or 4 bytes", id))
	}
}

// String returns the stored identifier: 4 bytes for a valid ID, or the
// original 3-byte code for an invalid one.
func (id FrameID) String() string { return id.code }

// IsValid reports whether the identifier maps into the 4-byte namespace.
func (id FrameID) IsValid() bool { return id.valid }

// ForVersion returns the identifier compatible with the given wire
// version. The second return value is false when the identifier has no
// representation in that version: a valid ID with no ID3v2.2 counterpart,
// or an invalid legacy ID requested for a modern version.
func (id FrameID) ForVersion(v Version) (string, bool) {
	switch {
	case id.valid && v == Version22:
		legacy, ok := idV3ToV2[id.code]
		return legacy, ok
	case id.valid:
		return id.code, true
	case v == Version22:
		return id.code, true
	default:
		return "", false
	}
}

// idV2ToV3 maps ID3v2.2 frame identifiers to their ID3v2.3 successors.
var idV2ToV3 = map[string]string{
	"BUF": "RBUF",
	"CNT": "PCNT",
	"COM": "COMM",
	"CRA": "AENC",
	"ETC": "ETCO",
	"GEO": "GEOB",
	"IPL": "IPLS",
	"LNK": "LINK",
	"MCI": "MCDI",
	"MLL": "MLLT",
	"PIC": "APIC",
	"POP": "POPM",
	"REV": "RVRB",
	"RVA": "RVAD",
	"SLT": "SYLT",
	"STC": "SYTC",
	"TAL": "TALB",
	"TBP": "TBPM",
	"TCM": "TCOM",
	"TCO": "TCON",
	"TCP": "TCMP",
	"TCR": "TCOP",
	"TDA": "TDAT",
	"TDY": "TDLY",
	"TEN": "TENC",
	"TFT": "TFLT",
	"TIM": "TIME",
	"TKE": "TKEY",
	"TLA": "TLAN",
	"TLE": "TLEN",
	"TMT": "TMED",
	"TOA": "TOPE",
	"TOF": "TOFN",
	"TOL": "TOLY",
	"TOR": "TORY",
	"TOT": "TOAL",
	"TP1": "TPE1",
	"TP2": "TPE2",
	"TP3": "TPE3",
	"TP4": "TPE4",
	"TPA": "TPOS",
	"TPB": "TPUB",
	"TRC": "TSRC",
	"TRD": "TRDA",
	"TRK": "TRCK",
	"TS2": "TSO2",
	"TSA": "TSOA",
	"TSC": "TSOC",
	"TSI": "TSIZ",
	"TSP": "TSOP",
	"TSS": "TSSE",
	"TST": "TSOT",
	"TT1": "TIT1",
	"TT2": "TIT2",
	"TT3": "TIT3",
	"TXT": "TEXT",
	"TXX": "TXXX",
	"TYE": "TYER",
	"UFI": "UFID",
	"ULT": "USLT",
	"WAF": "WOAF",
	"WAR": "WOAR",
	"WAS": "WOAS",
	"WCM": "WCOM",
	"WCP": "WCOP",
	"WPB": "WPUB",
	"WXX": "WXXX",
}

// idV3ToV2 is the reverse mapping, built once at init.
var idV3ToV2 = func() map[string]string {
	m := make(map[string]string, len(idV2ToV3))
	for v2, v3 := range idV2ToV3 {
		m[v3] = v2
	}
	return m
}()
