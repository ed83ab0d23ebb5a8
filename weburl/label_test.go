package weburl

import (
	"errors"
	"testing"
)

func TestNewLabel(t *testing.T) {
	cases := []struct {
		input string
		err   error
	}{
		{"example", nil},
		{"some_host", nil},
		{"a-b", nil},
		{"a", nil},
		{"héllo", nil},
		{"", ErrEmptyLabel},
		{"1abc", ErrLabelFirstChar},
		{"_abc", ErrLabelFirstChar},
		{"-abc", ErrLabelFirstChar},
		{"ab$c", ErrLabelInvalidChar},
		{"ab1c", ErrLabelInvalidChar},
		{"ab.c", ErrLabelInvalidChar},
		{"ab c", ErrLabelInvalidChar},
	}
	for _, c := range cases {
		label, err := NewLabel(c.input)
		if !errors.Is(err, c.err) {
			t.Fatalf("input %q err=%v want %v", c.input, err, c.err)
		}
		if err == nil && label.String() != c.input {
			t.Fatalf("input %q round-tripped as %q", c.input, label.String())
		}
	}
}

func TestParseLabel(t *testing.T) {
	cases := []struct {
		input string
		label string
		rest  string
		err   error
	}{
		{"example.com", "example", ".com", nil},
		{"host/path", "host", "/path", nil},
		{"host:80", "host", ":80", nil},
		{"onlylabel", "onlylabel", "", nil},
		{"a.b.c", "a", ".b.c", nil},
		{"", "", "", ErrEmptyLabel},
		{".com", "", "", ErrEmptyLabel},
		{"1a.b", "", "", ErrLabelFirstChar},
		{"a$b.c", "", "", ErrLabelInvalidChar},
	}
	for _, c := range cases {
		label, rest, err := ParseLabel(c.input)
		if !errors.Is(err, c.err) {
			t.Fatalf("input %q err=%v want %v", c.input, err, c.err)
		}
		if err != nil {
			continue
		}
		if label.String() != c.label || rest != c.rest {
			t.Fatalf("input %q got (%q, %q) want (%q, %q)", c.input, label, rest, c.label, c.rest)
		}
	}
}

// The three Label failure modes are distinct kinds, so callers can tell
// "not a hostname at all" apart from "malformed hostname".
func TestLabelErrorKindsAreDistinct(t *testing.T) {
	_, errEmpty := NewLabel("")
	_, errFirst := NewLabel("1abc")
	_, errChar := NewLabel("ab$c")

	if errors.Is(errEmpty, errFirst) || errors.Is(errEmpty, errChar) || errors.Is(errFirst, errChar) {
		t.Errorf("label error kinds overlap: %v / %v / %v", errEmpty, errFirst, errChar)
	}
}

func TestLabelEqual(t *testing.T) {
	a, _ := NewLabel("abc")
	b, _ := NewLabel("abc")
	c, _ := NewLabel("abd")
	if !a.Equal(b) {
		t.Error("identical labels not equal")
	}
	if a.Equal(c) {
		t.Error("different labels reported equal")
	}
}
