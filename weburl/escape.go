package weburl

import (
	"strings"
	"unicode/utf8"
)

// componentEscapes lists the printable ASCII characters that must be
// percent-encoded in path, query and fragment components, on top of the
// control bytes and non-ASCII bytes which are always encoded. It covers
// every delimiter that could make component text be misread as introducing
// a query, a pair separator or a fragment, plus '%' itself so that encoding
// nests arbitrarily.
const componentEscapes = " \"`<>?#=&{}%"

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether the byte must be percent-encoded when
// formatting a URL component.
func shouldEscape(c byte) bool {
	if c < 0x20 || c >= 0x7F {
		return true
	}
	return strings.IndexByte(componentEscapes, c) >= 0
}

// unhex converts a single hex digit byte to its value.
// Returns the value and true if valid, or 0 and false if invalid.
func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// escapeComponent percent-encodes s for inclusion in a formatted URL.
func escapeComponent(s string) string {
	escaped := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			escaped++
		}
	}
	if escaped == 0 {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 2*escaped)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			buf.WriteByte('%')
			buf.WriteByte(upperhex[c>>4])
			buf.WriteByte(upperhex[c&0xF])
		} else {
			buf.WriteByte(c)
		}
	}
	return buf.String()
}

// unescapeComponent percent-decodes s and verifies the result is valid
// UTF-8. Decoding is lenient: a '%' not followed by two hex digits is
// passed through unchanged. Fails with ErrCannotDecode when the decoded
// bytes are not valid UTF-8.
func unescapeComponent(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		if !utf8.ValidString(s) {
			return "", ErrCannotDecode
		}
		return s, nil
	}

	var buf strings.Builder
	buf.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '%' || i+2 >= len(s) {
			buf.WriteByte(c)
			i++
			continue
		}
		hi, hiOK := unhex(s[i+1])
		lo, loOK := unhex(s[i+2])
		if !hiOK || !loOK {
			buf.WriteByte(c)
			i++
			continue
		}
		buf.WriteByte(hi<<4 | lo)
		i += 3
	}

	decoded := buf.String()
	if !utf8.ValidString(decoded) {
		return "", ErrCannotDecode
	}
	return decoded, nil
}
