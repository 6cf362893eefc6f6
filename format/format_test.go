package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	type parseTest struct {
		in   string
		want Format
		err  bool
	}
	tests := []parseTest{
		{in: "j", want: JSONFormat},
		{in: "json", want: JSONFormat},
		{in: "y", want: YAMLFormat},
		{in: "yaml", want: YAMLFormat},
		{in: "yml", err: true},
		{in: "JSON", err: true},
		{in: "", err: true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tc.in)
			} else if !errors.Is(err, ErrBadFormat) {
				t.Errorf("ParseFormat(%q): got %v, want ErrBadFormat", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("round trip: got %v, want %v", back, f)
		}
	}
}

func TestFromSuffix(t *testing.T) {
	type suffixTest struct {
		name string
		want Format
	}
	tests := []suffixTest{
		{name: "tree.json", want: JSONFormat},
		{name: "tree.yaml", want: YAMLFormat},
		{name: "tree.yml", want: YAMLFormat},
		{name: "tree", want: JSONFormat},
		{name: "", want: JSONFormat},
	}
	for _, tc := range tests {
		if got := FromSuffix(tc.name); got != tc.want {
			t.Errorf("FromSuffix(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
