package rdfxml

import (
	"errors"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeNotRDFXML indicates the input was rejected by the format sniff.
	ErrCodeNotRDFXML ErrorCode = "NOT_RDF_XML"
	// ErrCodeInvalidXML indicates XML well-formedness failed.
	ErrCodeInvalidXML ErrorCode = "INVALID_XML"
	// ErrCodeInvalidNCName indicates an rdf:ID or rdf:nodeID value is not an NCName.
	ErrCodeInvalidNCName ErrorCode = "INVALID_NCNAME"
	// ErrCodeDuplicateRDFID indicates a resolved rdf:ID IRI repeats within the document.
	ErrCodeDuplicateRDFID ErrorCode = "DUPLICATE_RDF_ID"
	// ErrCodeForbiddenElement indicates an RDF core name in a position it is not allowed.
	ErrCodeForbiddenElement ErrorCode = "FORBIDDEN_ELEMENT"
	// ErrCodeDeprecatedAttribute indicates rdf:aboutEach, rdf:aboutEachPrefix, or rdf:bagID.
	ErrCodeDeprecatedAttribute ErrorCode = "DEPRECATED_ATTRIBUTE"
	// ErrCodeConflictingAttributes indicates a disallowed attribute combination.
	ErrCodeConflictingAttributes ErrorCode = "CONFLICTING_ATTRIBUTES"
	// ErrCodeIllegalLiAttribute indicates rdf:li appeared as an attribute.
	ErrCodeIllegalLiAttribute ErrorCode = "ILLEGAL_LI_ATTRIBUTE"
	// ErrCodeDepthExceeded indicates that nesting depth exceeded the configured limit.
	ErrCodeDepthExceeded ErrorCode = "DEPTH_EXCEEDED"
	// ErrCodeParseError indicates a general parse error.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
)

var (
	// ErrNotRDFXML indicates the input was rejected by the format sniff.
	ErrNotRDFXML = errors.New("Content does not appear to be valid RDF/XML")
	// ErrInvalidXML indicates XML well-formedness failed.
	ErrInvalidXML = errors.New("Invalid RDF/XML content")
	// ErrInvalidNCName indicates an rdf:ID or rdf:nodeID value is not an NCName.
	ErrInvalidNCName = errors.New("rdfxml: invalid NCName")
	// ErrDuplicateRDFID indicates a resolved rdf:ID IRI repeats within the document.
	ErrDuplicateRDFID = errors.New("rdfxml: duplicate rdf:ID")
	// ErrForbiddenElement indicates an RDF core name in a position it is not allowed.
	ErrForbiddenElement = errors.New("rdfxml: forbidden element name")
	// ErrDeprecatedAttribute indicates a deprecated RDF attribute.
	ErrDeprecatedAttribute = errors.New("rdfxml: deprecated attribute")
	// ErrConflictingAttributes indicates a disallowed attribute combination.
	ErrConflictingAttributes = errors.New("rdfxml: conflicting attributes")
	// ErrIllegalLiAttribute indicates rdf:li appeared as an attribute.
	ErrIllegalLiAttribute = errors.New("rdfxml: rdf:li is not allowed as an attribute")
	// ErrDepthExceeded indicates that nesting depth exceeded the configured limit.
	ErrDepthExceeded = errors.New("rdfxml: nesting depth exceeded configured limit")
)

// Code returns the error code for an error, or ErrCodeParseError if
// unknown. Returns the empty string for nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrNotRDFXML):
		return ErrCodeNotRDFXML
	case errors.Is(err, ErrInvalidXML):
		return ErrCodeInvalidXML
	case errors.Is(err, ErrInvalidNCName):
		return ErrCodeInvalidNCName
	case errors.Is(err, ErrDuplicateRDFID):
		return ErrCodeDuplicateRDFID
	case errors.Is(err, ErrForbiddenElement):
		return ErrCodeForbiddenElement
	case errors.Is(err, ErrDeprecatedAttribute):
		return ErrCodeDeprecatedAttribute
	case errors.Is(err, ErrConflictingAttributes):
		return ErrCodeConflictingAttributes
	case errors.Is(err, ErrIllegalLiAttribute):
		return ErrCodeIllegalLiAttribute
	case errors.Is(err, ErrDepthExceeded):
		return ErrCodeDepthExceeded
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		underlyingCode := Code(parseErr.Err)
		if underlyingCode != ErrCodeParseError && underlyingCode != "" {
			return underlyingCode
		}
		return ErrCodeParseError
	}

	return ErrCodeParseError
}

// ParseError provides structured context for parse failures. The
// top-level handler wraps every inner error in a ParseError so that
// callers see a single message shape with the underlying cause
// reachable through errors.Is/errors.As.
type ParseError struct {
	Format  string // Format name ("rdf/xml")
	Excerpt string // Input excerpt, if available
	Err     error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString("RDF/XML parsing failed: ")
	msg.WriteString(e.Err.Error())
	if e.Excerpt != "" {
		msg.WriteString("\n  ")
		msg.WriteString(e.Excerpt)
	}
	return msg.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// wrapParseError adds format/excerpt context to a parse error.
func wrapParseError(input []byte, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return err
	}
	return &ParseError{
		Format:  Name,
		Excerpt: formatExcerpt(input),
		Err:     err,
	}
}

// formatExcerpt returns a truncated single-line view of the input head.
func formatExcerpt(input []byte) string {
	const maxExcerptLen = 80
	s := strings.TrimSpace(string(input))
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	if len(s) > maxExcerptLen {
		return s[:maxExcerptLen] + "..."
	}
	return s
}
