package main

import "testing"

func TestParseEccLevel(t *testing.T) {
	cases := map[string]bool{
		"L": true, "l": true, "M": true, "": true, "Q": true, "H": true, "X": false,
	}
	for in, ok := range cases {
		_, err := parseEccLevel(in)
		if (err == nil) != ok {
			t.Errorf("parseEccLevel(%q) error = %v, want ok=%v", in, err, ok)
		}
	}
}
