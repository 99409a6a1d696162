// Package rdfxml parses the W3C RDF 1.1 XML syntax into RDF triples.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// The package turns a byte string holding an RDF/XML document into a
// graph of (subject, predicate, object) triples. It implements the
// grammar-driven walk over the XML element tree: node and property
// elements alternate, xml:base is threaded through the tree, xml:lang
// tags the literal of the property element that carries it (it is not
// inherited from ancestors), and rdf:parseType, containers,
// collections, and reification are expanded into their triple forms.
//
// Example:
//
//	parsed, err := rdfxml.Parse(data)
//	if err != nil {
//	    // handle error
//	}
//	for _, t := range parsed.Graph.(*rdfxml.MemoryGraph).Triples() {
//	    // process t.S, t.P, t.O
//	}
//
// Parse is a pure function from input bytes to a result: it performs
// no I/O, loads no DTDs, and resolves no external entities. Each call
// owns its blank node counter and rdf:ID registry, so concurrent
// parses are safe as long as a shared Graph sink is.
//
// Format detection via CanHandle is an intentionally loose pre-filter;
// false positives are resolved by Parse itself.
//
// Use Code to map a returned error to a stable programmatic code.
package rdfxml
