package rdfxml

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Name is the canonical format name.
const Name = "rdf/xml"

// DefaultMaxDepth bounds element nesting to keep hostile input from
// exhausting the stack.
const DefaultMaxDepth = 1000

// FormatName returns the canonical format name.
func FormatName() string { return Name }

// Option configures parser behavior.
type Option func(*Options)

// Options configures parser behavior.
type Options struct {
	// MaxDepth bounds XML element nesting.
	MaxDepth int
	// Graph receives the emitted triples. Defaults to a fresh
	// MemoryGraph per parse.
	Graph Graph
}

// OptMaxDepth sets the maximum nesting depth limit.
func OptMaxDepth(maxDepth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = maxDepth
	}
}

// OptGraph directs triples into a caller-supplied sink.
func OptGraph(g Graph) Option {
	return func(opts *Options) {
		opts.Graph = g
	}
}

func defaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// Parsed is the result of a successful parse.
type Parsed struct {
	// Graph holds the emitted triples.
	Graph Graph
	// Format is the canonical format name.
	Format string
	// RawContent is the input that was parsed.
	RawContent []byte
	// Namespaces maps declared prefixes to namespace IRIs, collected
	// per parse. The empty prefix is the default namespace.
	Namespaces map[string]string
}

// Parse parses an RDF/XML document into a graph.
//
// The input is sniffed first: content that does not look like RDF/XML,
// or that looks like HTML, fails with ErrNotRDFXML before the XML
// parser runs. XML well-formedness failures surface as ErrInvalidXML.
// Every failure is wrapped in a *ParseError whose message carries the
// "RDF/XML parsing failed: " prefix; use Code or errors.Is to branch
// on the cause.
func Parse(data []byte, opts ...Option) (*Parsed, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	sample := strings.TrimLeftFunc(string(data), unicode.IsSpace)
	if !strings.HasPrefix(sample, "<") || !looksLikeRDFXML(sample) {
		return nil, wrapParseError(data, ErrNotRDFXML)
	}
	if looksLikeHTML(sample) {
		return nil, wrapParseError(data, ErrNotRDFXML)
	}

	root, namespaces, err := loadXML(data, options.MaxDepth)
	if err != nil {
		if !errors.Is(err, ErrDepthExceeded) {
			err = fmt.Errorf("%w: %v", ErrInvalidXML, err)
		}
		return nil, wrapParseError(data, err)
	}

	graph := options.Graph
	if graph == nil {
		graph = NewMemoryGraph()
	}
	if err := newParseState(graph).drive(root); err != nil {
		return nil, wrapParseError(data, err)
	}

	return &Parsed{
		Graph:      graph,
		Format:     Name,
		RawContent: data,
		Namespaces: namespaces,
	}, nil
}
