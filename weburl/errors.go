package weburl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnknownScheme indicates that no scheme literal matched.
	ErrCodeUnknownScheme ErrorCode = "UNKNOWN_SCHEME"
	// ErrCodeMissingSeparator indicates that "://" did not follow the scheme.
	ErrCodeMissingSeparator ErrorCode = "MISSING_SEPARATOR"
	// ErrCodeEmptyLabel indicates an empty hostname label.
	ErrCodeEmptyLabel ErrorCode = "EMPTY_LABEL"
	// ErrCodeLabelFirstChar indicates a label starting with a non-alphabetic character.
	ErrCodeLabelFirstChar ErrorCode = "LABEL_FIRST_CHAR"
	// ErrCodeLabelInvalidChar indicates a label containing a disallowed character.
	ErrCodeLabelInvalidChar ErrorCode = "LABEL_INVALID_CHAR"
	// ErrCodeNoLabels indicates a host with zero labels.
	ErrCodeNoLabels ErrorCode = "NO_LABELS"
	// ErrCodeMissingPath indicates that the path component is absent.
	ErrCodeMissingPath ErrorCode = "MISSING_PATH"
	// ErrCodeGarbledPort indicates an unparsable or out-of-range port.
	ErrCodeGarbledPort ErrorCode = "GARBLED_PORT"
	// ErrCodePathNotAbsolute indicates a decoded path without a leading separator.
	ErrCodePathNotAbsolute ErrorCode = "PATH_NOT_ABSOLUTE"
	// ErrCodeCannotDecode indicates percent-decoded text that is not valid UTF-8.
	ErrCodeCannotDecode ErrorCode = "CANNOT_DECODE"
	// ErrCodeInputTooLong indicates input exceeding the configured limit.
	ErrCodeInputTooLong ErrorCode = "INPUT_TOO_LONG"
	// ErrCodeParseError indicates a parse failure with no more specific code.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
)

var (
	// ErrUnknownScheme indicates that no scheme literal matched.
	ErrUnknownScheme = errors.New("weburl: no scheme recognized")
	// ErrMissingSeparator indicates that "://" did not follow the scheme.
	ErrMissingSeparator = errors.New("weburl: missing \"://\" separator")
	// ErrEmptyLabel indicates an empty hostname label.
	ErrEmptyLabel = errors.New("weburl: label is empty")
	// ErrLabelFirstChar indicates a label starting with a non-alphabetic character.
	ErrLabelFirstChar = errors.New("weburl: label must start with an alphabetic character")
	// ErrLabelInvalidChar indicates a label containing a disallowed character.
	ErrLabelInvalidChar = errors.New("weburl: label contains a disallowed character")
	// ErrNoLabels indicates a host with zero labels.
	ErrNoLabels = errors.New("weburl: host has no labels")
	// ErrMissingPath indicates that the path component is absent.
	ErrMissingPath = errors.New("weburl: missing path")
	// ErrGarbledPort indicates an unparsable or out-of-range port.
	ErrGarbledPort = errors.New("weburl: garbled port")
	// ErrPathNotAbsolute indicates a decoded path without a leading separator.
	ErrPathNotAbsolute = errors.New("weburl: path not absolute")
	// ErrCannotDecode indicates percent-decoded text that is not valid UTF-8.
	ErrCannotDecode = errors.New("weburl: cannot percent-decode")
	// ErrInputTooLong indicates input exceeding the configured limit.
	ErrInputTooLong = errors.New("weburl: input exceeds configured limit")
)

// Code returns the error code for an error, or ErrCodeParseError if unknown.
// Returns the empty string for nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrUnknownScheme):
		return ErrCodeUnknownScheme
	case errors.Is(err, ErrMissingSeparator):
		return ErrCodeMissingSeparator
	case errors.Is(err, ErrEmptyLabel):
		return ErrCodeEmptyLabel
	case errors.Is(err, ErrLabelFirstChar):
		return ErrCodeLabelFirstChar
	case errors.Is(err, ErrLabelInvalidChar):
		return ErrCodeLabelInvalidChar
	case errors.Is(err, ErrNoLabels):
		return ErrCodeNoLabels
	case errors.Is(err, ErrMissingPath):
		return ErrCodeMissingPath
	case errors.Is(err, ErrGarbledPort):
		return ErrCodeGarbledPort
	case errors.Is(err, ErrPathNotAbsolute):
		return ErrCodePathNotAbsolute
	case errors.Is(err, ErrCannotDecode):
		return ErrCodeCannotDecode
	case errors.Is(err, ErrInputTooLong):
		return ErrCodeInputTooLong
	}

	// Check for ParseError
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		// Check underlying error for more specific codes
		underlyingCode := Code(parseErr.Err)
		if underlyingCode != ErrCodeParseError && underlyingCode != "" {
			return underlyingCode
		}
		return ErrCodeParseError
	}

	// Default to parse error for unknown errors
	return ErrCodeParseError
}

// ParseError provides structured context for parse failures.
type ParseError struct {
	Component string // Stage that failed ("scheme", "host", "path", ...)
	Input     string // Offending input
	Offset    int    // Byte offset where the failing stage started (0 if unknown)
	Err       error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Component)
	if e.Offset > 0 {
		fmt.Fprintf(&msg, " (offset %d)", e.Offset)
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())

	if excerpt := e.formatExcerpt(); excerpt != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt)
	}
	return msg.String()
}

// formatExcerpt formats a readable excerpt of the input around the error
// position, with a caret pointing at the failing stage's start.
func (e *ParseError) formatExcerpt() string {
	if e.Input == "" {
		return ""
	}

	const contextLen = 40

	start := e.Offset
	if start < 0 {
		start = 0
	}
	if start > len(e.Input) {
		start = len(e.Input)
	}

	excerptStart := start - contextLen
	if excerptStart < 0 {
		excerptStart = 0
	}
	excerptEnd := start + contextLen
	if excerptEnd > len(e.Input) {
		excerptEnd = len(e.Input)
	}

	excerpt := e.Input[excerptStart:excerptEnd]
	if excerptStart > 0 {
		excerpt = "..." + excerpt
	}
	if excerptEnd < len(e.Input) {
		excerpt = excerpt + "..."
	}

	caretPos := start - excerptStart
	if excerptStart > 0 {
		caretPos += 3 // Account for "..."
	}
	if caretPos > len(excerpt) {
		caretPos = len(excerpt)
	}

	var result strings.Builder
	result.WriteString(excerpt)
	result.WriteString("\n  ")
	for i := 0; i < caretPos; i++ {
		result.WriteByte(' ')
	}
	result.WriteByte('^')
	return result.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// wrapParseError adds component/input/position context to a parse error.
func wrapParseError(component, input string, offset int, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{
		Component: component,
		Input:     input,
		Offset:    offset,
		Err:       err,
	}
}
