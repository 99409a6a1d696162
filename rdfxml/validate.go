package rdfxml

import "fmt"

// forbiddenNodeLocals are RDF-namespaced local names that may not
// appear as node elements.
var forbiddenNodeLocals = map[string]bool{
	"RDF":             true,
	"ID":              true,
	"about":           true,
	"bagID":           true,
	"parseType":       true,
	"resource":        true,
	"nodeID":          true,
	"datatype":        true,
	"li":              true,
	"aboutEach":       true,
	"aboutEachPrefix": true,
}

// forbiddenPropertyLocals are RDF-namespaced local names that may not
// appear as property elements. rdf:li is allowed here; it is the
// container membership shorthand.
var forbiddenPropertyLocals = map[string]bool{
	"Description":     true,
	"RDF":             true,
	"ID":              true,
	"about":           true,
	"bagID":           true,
	"parseType":       true,
	"resource":        true,
	"nodeID":          true,
	"datatype":        true,
	"aboutEach":       true,
	"aboutEachPrefix": true,
}

// deprecatedAttrLocals are attributes from RDF 1.0 drafts whose use is
// an error.
var deprecatedAttrLocals = []string{"aboutEach", "aboutEachPrefix", "bagID"}

func isForbiddenRDFNodeElement(local string) bool {
	return forbiddenNodeLocals[local]
}

func isForbiddenRDFPropertyElement(local string) bool {
	return forbiddenPropertyLocals[local]
}

// validateNodeElement checks an element in node (subject) position.
// It runs before any triple is emitted for the element.
func validateNodeElement(el *xmlElement, attrs classifiedAttrs) error {
	if el.space == rdfNS && isForbiddenRDFNodeElement(el.local) {
		return fmt.Errorf("%w: rdf:%s is not allowed as a node element", ErrForbiddenElement, el.local)
	}
	if err := validateCommonAttributes(attrs); err != nil {
		return err
	}
	subjectAttrs := 0
	for _, local := range []string{"about", "ID", "nodeID"} {
		if attrs.has(local) {
			subjectAttrs++
		}
	}
	if subjectAttrs > 1 {
		return fmt.Errorf("%w: at most one of rdf:about, rdf:ID, rdf:nodeID is allowed", ErrConflictingAttributes)
	}
	return nil
}

// validatePropertyElement checks an element in property (predicate)
// position. It runs before any triple is emitted for the element.
func validatePropertyElement(el *xmlElement, attrs classifiedAttrs) error {
	if el.space == rdfNS && isForbiddenRDFPropertyElement(el.local) {
		return fmt.Errorf("%w: rdf:%s is not allowed as a property element", ErrForbiddenElement, el.local)
	}
	if err := validateCommonAttributes(attrs); err != nil {
		return err
	}
	if attrs.has("resource") && attrs.has("nodeID") {
		return fmt.Errorf("%w: rdf:resource and rdf:nodeID are mutually exclusive", ErrConflictingAttributes)
	}
	if attrs.has("parseType") && (attrs.has("resource") || attrs.has("nodeID")) {
		return fmt.Errorf("%w: rdf:parseType cannot be combined with rdf:resource or rdf:nodeID", ErrConflictingAttributes)
	}
	return nil
}

// validateCommonAttributes applies the checks shared by node and
// property positions: deprecated attributes, rdf:li as an attribute,
// and NCName form for rdf:ID / rdf:nodeID.
func validateCommonAttributes(attrs classifiedAttrs) error {
	for _, local := range deprecatedAttrLocals {
		if attrs.has(local) {
			return fmt.Errorf("%w: rdf:%s", ErrDeprecatedAttribute, local)
		}
	}
	if attrs.has("li") {
		return ErrIllegalLiAttribute
	}
	for _, local := range []string{"ID", "nodeID"} {
		if value, ok := attrs.rdf[local]; ok && !isNCName(value) {
			return fmt.Errorf("%w: rdf:%s value %q", ErrInvalidNCName, local, value)
		}
	}
	return nil
}

// registerRDFID records a resolved rdf:ID IRI in the per-parse set,
// failing when the IRI was already introduced elsewhere in the
// document.
func registerRDFID(used map[string]struct{}, iri string) error {
	if _, ok := used[iri]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRDFID, iri)
	}
	used[iri] = struct{}{}
	return nil
}
