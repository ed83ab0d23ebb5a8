package weburl

import "strings"

// Scheme identifies the transport scheme of a URL.
type Scheme uint8

const (
	// SchemeWss is the WebSocket-over-TLS scheme.
	SchemeWss Scheme = iota
	// SchemeWs is the plain WebSocket scheme.
	SchemeWs
	// SchemeHttps is the HTTP-over-TLS scheme.
	SchemeHttps
	// SchemeHttp is the plain HTTP scheme.
	SchemeHttp
)

// schemeLiterals drives prefix matching in ParseScheme. The order is
// load-bearing: "ws" is a textual prefix of "wss" and "http" of "https",
// so the longer literal must be tried first or it would never match.
var schemeLiterals = [...]struct {
	scheme  Scheme
	literal string
}{
	{SchemeWss, "wss"},
	{SchemeWs, "ws"},
	{SchemeHttps, "https"},
	{SchemeHttp, "http"},
}

// ParseScheme matches a scheme literal at the start of input and returns the
// scheme together with the unconsumed remainder. It fails with
// ErrUnknownScheme when no literal matches.
func ParseScheme(input string) (Scheme, string, error) {
	for _, candidate := range schemeLiterals {
		if rest, ok := strings.CutPrefix(input, candidate.literal); ok {
			return candidate.scheme, rest, nil
		}
	}
	return 0, "", ErrUnknownScheme
}

// ParseSchemeName normalizes a scheme name. Unlike ParseScheme it matches
// the whole value, not a prefix.
func ParseSchemeName(value string) (Scheme, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "wss":
		return SchemeWss, true
	case "ws":
		return SchemeWs, true
	case "https":
		return SchemeHttps, true
	case "http":
		return SchemeHttp, true
	default:
		return 0, false
	}
}

// String returns the scheme literal, or the empty string for values outside
// the defined set.
func (s Scheme) String() string {
	for _, candidate := range schemeLiterals {
		if candidate.scheme == s {
			return candidate.literal
		}
	}
	return ""
}
