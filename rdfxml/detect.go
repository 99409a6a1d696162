package rdfxml

import (
	"strings"
	"unicode"
)

// CanHandle reports whether the input is plausibly RDF/XML. The check
// is a cheap signature sniff: it accepts anything starting with an XML
// declaration, containing an <rdf:RDF> open tag, or containing both an
// <RDF open tag and the RDF namespace IRI. False positives are
// resolved by Parse.
func CanHandle(data []byte) bool {
	sample := strings.TrimLeftFunc(string(data), unicode.IsSpace)
	return looksLikeRDFXML(sample)
}

func looksLikeRDFXML(sample string) bool {
	if strings.HasPrefix(sample, "<?xml") {
		return true
	}
	if strings.Contains(sample, "<rdf:RDF") {
		return true
	}
	return strings.Contains(sample, "<RDF") && strings.Contains(sample, rdfNS)
}

// looksLikeHTML inspects the first KiB for HTML markers. HTML is a
// common false positive for the XML-declaration signature.
func looksLikeHTML(sample string) bool {
	if len(sample) > 1024 {
		sample = sample[:1024]
	}
	head := strings.ToLower(sample)
	return strings.Contains(head, "<!doctype html") || strings.Contains(head, "<html")
}
