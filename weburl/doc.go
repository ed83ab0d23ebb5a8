// Package weburl provides a structured, non-string representation of URLs.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Instead of treating a URL as an opaque string, the package models it as a
// typed record (scheme, host, optional port, path, query, fragment) that
// parses losslessly from text and renders losslessly back to text:
//   - Parse: Parse() and ParseWithOptions() build a URL from text.
//   - Format: URL.String() recomputes the text from the fields.
//   - Components: ParseScheme(), ParseLabel() and ParseHost() expose the
//     component grammars directly; each returns the parsed value together
//     with the unconsumed remainder of its input.
//
// The grammar is intentionally narrow: four schemes (wss, ws, https, http)
// and simple hostname labels (alphabetic first character; letters, '_' and
// '-' only; digits are not valid label characters). It is not a general
// RFC 3986 implementation, and it never touches the network.
//
// Percent-decoding happens at parse time and percent-encoding at format
// time, so the struct always holds decoded text and is the single source of
// truth; no string form is cached. Query keys are unique (the last
// occurrence wins while parsing) and are written in sorted order, making
// formatting deterministic:
//
//	u, err := weburl.Parse("https://example.com:8080/a/b?x=1#top")
//	if err != nil {
//	    // handle error
//	}
//	u.Query["y"] = "2"
//	fmt.Println(u) // https://example.com:8080/a/b?x=1&y=2#top
//
// Errors are closed, named kinds: sentinel errors such as ErrGarbledPort can
// be tested with errors.Is even through stage wrapping, and Code() maps any
// parse error to a stable ErrorCode for programmatic handling.
//
// Parsing and formatting are pure functions over their input with no shared
// state, so distinct URL values may be used freely across goroutines.
// Mutating a single URL from several goroutines needs external
// synchronization, like any other Go struct.
package weburl
