package frame

import "testing"

func TestNewFrameID_TranslatesLegacyIdentifiers(t *testing.T) {
	testCases := []struct {
		legacy string
		modern string
	}{
		{"TT2", "TIT2"},
		{"TP1", "TPE1"},
		{"TAL", "TALB"},
		{"PIC", "APIC"},
		{"COM", "COMM"},
		{"ULT", "USLT"},
		{"TXX", "TXXX"},
		{"WXX", "WXXX"},
		{"BUF", "RBUF"},
		{"WCM", "WCOM"},
	}

	for _, tc := range testCases {
		t.Run(tc.legacy, func(t *testing.T) {
			id := NewFrameID(tc.legacy)
			if !id.IsValid() {
				t.Fatalf("NewFrameID(%q) is not valid", tc.legacy)
			}
			if id.String() != tc.modern {
				t.Errorf("NewFrameID(%q) = %q, want %q", tc.legacy, id.String(), tc.modern)
			}

			// The legacy projection must recover the original.
			legacy, ok := id.ForVersion(Version22)
			if !ok || legacy != tc.legacy {
				t.Errorf("ForVersion(Version22) = %q, %v, want %q, true", legacy, ok, tc.legacy)
			}
		})
	}
}

func TestNewFrameID_FourByteAlwaysValid(t *testing.T) {
	id := NewFrameID("TIT2")
	if !id.IsValid() || id.String() != "TIT2" {
		t.Fatalf("NewFrameID(\"TIT2\") = %q valid=%v", id.String(), id.IsValid())
	}

	// Even identifiers outside the known table are accepted verbatim.
	id = NewFrameID("ZZZZ")
	if !id.IsValid() || id.String() != "ZZZZ" {
		t.Fatalf("NewFrameID(\"ZZZZ\") = %q valid=%v", id.String(), id.IsValid())
	}
}

func TestNewFrameID_UnmappedLegacyIsPreserved(t *testing.T) {
	id := NewFrameID("XYZ")
	if id.IsValid() {
		t.Fatal("NewFrameID(\"XYZ\") should not be valid")
	}
	if id.String() != "XYZ" {
		t.Errorf("original identifier not preserved: got %q", id.String())
	}

	// The legacy projection returns the stored string.
	legacy, ok := id.ForVersion(Version22)
	if !ok || legacy != "XYZ" {
		t.Errorf("ForVersion(Version22) = %q, %v, want \"XYZ\", true", legacy, ok)
	}

	// An untranslatable legacy identifier has no modern form.
	for _, v := range []Version{Version23, Version24} {
		if got, ok := id.ForVersion(v); ok {
			t.Errorf("ForVersion(%s) = %q, want none", v, got)
		}
	}
}

func TestFrameID_ForVersion_NoLegacyCounterpart(t *testing.T) {
	// TSST is an ID3v2.3+ identifier with no 3-byte predecessor.
	id := NewFrameID("TSST")
	if _, ok := id.ForVersion(Version22); ok {
		t.Error("TSST should not project to ID3v2.2")
	}
	for _, v := range []Version{Version23, Version24} {
		if got, ok := id.ForVersion(v); !ok || got != "TSST" {
			t.Errorf("ForVersion(%s) = %q, %v, want \"TSST\", true", v, got, ok)
		}
	}
}

func TestNewFrameID_PanicsOnBadLength(t *testing.T) {
	for _, id := range []string{"", "TI", "TIT22"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewFrameID(%q) did not panic", id)
				}
			}()
			NewFrameID(id)
		}()
	}
}
