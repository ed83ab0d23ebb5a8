package weburl

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// URL is a structured, non-string representation of a URL.
//
// The struct is the source of truth: no textual form is cached, and String
// recomputes the text from the fields on every call. All text fields hold
// decoded values; percent-encoding exists only in the wire form.
type URL struct {
	// Scheme is the transport scheme, like "http" in "http://example.com/".
	Scheme Scheme
	// Host is the hostname, like "example.com" in "http://example.com/".
	Host Host
	// Port is the port number, like 80 in "http://example.com:80/".
	// Nil means absent; port 0 is a representable value.
	Port *uint16
	// Path is the decoded absolute path, like "/" in "http://example.com/".
	Path string
	// Query holds the decoded query parameters, like "a=123&b=456" in
	// "http://example.com/?a=123&b=456". Keys are unique; while parsing,
	// the last occurrence of a repeated key wins.
	Query map[string]string
	// Fragment is the decoded fragment, like "paragraph_1" in
	// "http://example.com/#paragraph_1". Empty means absent; the grammar
	// cannot produce a present-but-empty fragment.
	Fragment string
}

// Parse parses input as a URL. The whole input is consumed in a single
// left-to-right pass: scheme, "://", host, optional ":port", path, optional
// "?query" and optional "#fragment".
func Parse(input string) (*URL, error) {
	return ParseWithOptions(input)
}

// MustParse is like Parse but panics on error. It simplifies variable
// initialization and tests.
func MustParse(input string) *URL {
	u, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return u
}

// ParseWithOptions parses input as a URL with the given options applied.
func ParseWithOptions(input string, opts ...Option) (*URL, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxInputBytes > 0 && len(input) > options.MaxInputBytes {
		return nil, ErrInputTooLong
	}

	scheme, rest, err := ParseScheme(input)
	if err != nil {
		return nil, wrapParseError("scheme", input, 0, err)
	}

	offset := len(input) - len(rest)
	rest, ok := strings.CutPrefix(rest, "://")
	if !ok {
		return nil, wrapParseError("separator", input, offset, ErrMissingSeparator)
	}

	offset = len(input) - len(rest)
	host, rest, err := ParseHost(rest)
	if err != nil {
		return nil, rewrapStage("host", input, offset, err)
	}

	offset = len(input) - len(rest)
	port, rest, err := parsePort(rest)
	if err != nil {
		return nil, wrapParseError("port", input, offset, err)
	}

	pathOffset := len(input) - len(rest)
	rawPath, rawQuery, rawFragment := splitPathQueryFragment(rest)

	// Emptiness is checked on the raw text so that a percent-encoded empty
	// string cannot slip through as a path.
	if rawPath == "" {
		return nil, wrapParseError("path", input, pathOffset, ErrMissingPath)
	}
	path, err := unescapeComponent(rawPath)
	if err != nil {
		return nil, wrapParseError("path", input, pathOffset, err)
	}
	if !strings.HasPrefix(path, "/") {
		return nil, wrapParseError("path", input, pathOffset, ErrPathNotAbsolute)
	}

	query, err := parseQuery(rawQuery)
	if err != nil {
		return nil, wrapParseError("query", input, pathOffset+len(rawPath)+1, err)
	}

	fragment, err := unescapeComponent(rawFragment)
	if err != nil {
		return nil, wrapParseError("fragment", input, len(input)-len(rawFragment), err)
	}

	return &URL{
		Scheme:   scheme,
		Host:     host,
		Port:     port,
		Path:     path,
		Query:    query,
		Fragment: fragment,
	}, nil
}

// rewrapStage lifts a component parser's error into whole-input context.
// Position information from an inner ParseError is preserved, shifted by
// the offset where the stage started.
func rewrapStage(component, input string, offset int, err error) error {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return wrapParseError(component, input, offset+parseErr.Offset, parseErr.Err)
	}
	return wrapParseError(component, input, offset, err)
}

// parsePort consumes an optional ":digits" port. The digit run must stop
// before the end of input: a run that reaches the end means the URL has no
// path at all, which is reported as ErrMissingPath rather than a port error.
func parsePort(input string) (*uint16, string, error) {
	after, ok := strings.CutPrefix(input, ":")
	if !ok {
		return nil, input, nil
	}

	end := strings.IndexFunc(after, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		return nil, input, ErrMissingPath
	}
	value, err := strconv.ParseUint(after[:end], 10, 16)
	if err != nil {
		return nil, input, ErrGarbledPort
	}
	port := uint16(value)
	return &port, after[end:], nil
}

// splitPathQueryFragment splits the remainder after host and port into its
// raw (still percent-encoded) path, query and fragment parts. A '#' before
// any '?' means there is no query and everything after it is the fragment.
func splitPathQueryFragment(input string) (rawPath, rawQuery, rawFragment string) {
	idx := strings.IndexAny(input, "?#")
	if idx < 0 {
		return input, "", ""
	}
	rawPath = input[:idx]
	if input[idx] == '#' {
		return rawPath, "", input[idx+1:]
	}
	rawQuery = input[idx+1:]
	if j := strings.IndexByte(rawQuery, '#'); j >= 0 {
		rawQuery, rawFragment = rawQuery[:j], rawQuery[j+1:]
	}
	return rawPath, rawQuery, rawFragment
}

// parseQuery decodes an "&"-separated list of key=value pairs. A pair with
// no '=' yields an empty value for that key. Repeated keys are resolved
// left to right, last write wins.
func parseQuery(rawQuery string) (map[string]string, error) {
	query := map[string]string{}
	if rawQuery == "" {
		return query, nil
	}
	for _, rawPair := range strings.Split(rawQuery, "&") {
		rawKey, rawValue, _ := strings.Cut(rawPair, "=")
		key, err := unescapeComponent(rawKey)
		if err != nil {
			return nil, err
		}
		value, err := unescapeComponent(rawValue)
		if err != nil {
			return nil, err
		}
		query[key] = value
	}
	return query, nil
}

// String formats the URL from its fields. It is total: formatting never
// fails because every field holds already-validated data.
//
// A URL whose Path was mutated to be non-absolute after construction is
// still rendered well-formed, with a pre-emptive leading separator; such a
// value does not round-trip through Parse, which never produces one.
func (u *URL) String() string {
	var buf strings.Builder
	buf.WriteString(u.Scheme.String())
	buf.WriteString("://")
	buf.WriteString(u.Host.String())

	if u.Port != nil {
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatUint(uint64(*u.Port), 10))
	}

	if !strings.HasPrefix(u.Path, "/") {
		buf.WriteByte('/')
	}
	buf.WriteString(escapeComponent(u.Path))

	if len(u.Query) > 0 {
		keys := make([]string, 0, len(u.Query))
		for key := range u.Query {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		buf.WriteByte('?')
		for i, key := range keys {
			if i > 0 {
				buf.WriteByte('&')
			}
			buf.WriteString(escapeComponent(key))
			buf.WriteByte('=')
			buf.WriteString(escapeComponent(u.Query[key]))
		}
	}

	if u.Fragment != "" {
		buf.WriteByte('#')
		buf.WriteString(escapeComponent(u.Fragment))
	}
	return buf.String()
}

// Parent returns a copy of the URL with the last path segment removed. All
// other fields are unchanged. The parent of a root path is the root itself,
// so Parent never fails.
func (u *URL) Parent() *URL {
	parent := *u
	parent.Path = parentPath(u.Path)
	return &parent
}

// parentPath removes the final segment of p. Trailing separators are
// trimmed first, so the parent of "/a/b/" is "/a".
func parentPath(p string) string {
	end := len(p)
	for end > 1 && p[end-1] == '/' {
		end--
	}
	idx := strings.LastIndexByte(p[:end], '/')
	switch {
	case idx < 0:
		return ""
	case idx == 0:
		return "/"
	default:
		return p[:idx]
	}
}

// Equal reports whether two URLs hold the same field values. Query maps are
// compared by content, ignoring iteration order.
func (u *URL) Equal(other *URL) bool {
	if u == nil || other == nil {
		return u == other
	}
	if u.Scheme != other.Scheme || !u.Host.Equal(other.Host) {
		return false
	}
	if (u.Port == nil) != (other.Port == nil) {
		return false
	}
	if u.Port != nil && *u.Port != *other.Port {
		return false
	}
	if u.Path != other.Path || u.Fragment != other.Fragment {
		return false
	}
	if len(u.Query) != len(other.Query) {
		return false
	}
	for key, value := range u.Query {
		if otherValue, ok := other.Query[key]; !ok || value != otherValue {
			return false
		}
	}
	return true
}
