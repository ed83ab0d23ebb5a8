package weburl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label is one of the period-separated components of a hostname, like
// "example" and "com" in "example.com".
//
// A Label can only be obtained through NewLabel or ParseLabel, so holding
// one implies it is valid. The zero Label formats as the empty string but
// cannot result from parsing.
type Label struct {
	value string
}

// labelDelimiters end a label candidate during parsing.
const labelDelimiters = "/.:"

func isLabelChar(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '-'
}

// NewLabel validates value as a hostname label. The first character must be
// alphabetic and every character must be alphabetic, '_' or '-'. Digits are
// not valid label characters, not even after the first position.
func NewLabel(value string) (Label, error) {
	if value == "" {
		return Label{}, ErrEmptyLabel
	}
	first, _ := utf8.DecodeRuneInString(value)
	if !unicode.IsLetter(first) {
		return Label{}, ErrLabelFirstChar
	}
	for _, r := range value {
		if !isLabelChar(r) {
			return Label{}, ErrLabelInvalidChar
		}
	}
	return Label{value: value}, nil
}

// ParseLabel parses input until a label delimiter ('/', '.' or ':') and
// returns the label together with the unconsumed remainder, which starts at
// the delimiter. Without a delimiter the whole input is the candidate.
func ParseLabel(input string) (Label, string, error) {
	candidate, rest := input, ""
	if idx := strings.IndexAny(input, labelDelimiters); idx >= 0 {
		candidate, rest = input[:idx], input[idx:]
	}
	label, err := NewLabel(candidate)
	if err != nil {
		return Label{}, "", err
	}
	return label, rest, nil
}

// String returns the label text.
func (l Label) String() string { return l.value }

// Equal reports whether two labels hold the same text.
func (l Label) Equal(other Label) bool { return l.value == other.value }
