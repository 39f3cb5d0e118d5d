package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in string
		f  Format
	}{
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"yml", YAMLFormat},
		{"x", XMLFormat},
		{"xml", XMLFormat},
	} {
		f, err := ParseFormat(tc.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tc.in, err)
		}
		if f != tc.f {
			t.Errorf("ParseFormat(%q) = %s, want %s", tc.in, f, tc.f)
		}
	}
}

func TestParseFormatBad(t *testing.T) {
	for _, in := range []string{"", "toml", "unknown"} {
		if _, err := ParseFormat(in); !errors.Is(err, ErrBadFormat) {
			t.Errorf("ParseFormat(%q): got %v, want ErrBadFormat", in, err)
		}
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range append(AllFormats(), UnknownFormat) {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if f == UnknownFormat {
			if string(d) != "unknown" {
				t.Errorf("unknown marshals to %q", d)
			}
			continue
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("round trip %s != %s", g, f)
		}
	}
}

func TestSuffix(t *testing.T) {
	if JSONFormat.Suffix() != ".json" || YAMLFormat.Suffix() != ".yaml" || XMLFormat.Suffix() != ".xml" {
		t.Error("wrong suffix")
	}
	if UnknownFormat.Suffix() != "" {
		t.Error("unknown format has a suffix")
	}
}
