package rdfxml

import "fmt"

// parseState holds the state owned by a single parse: the sink, the
// blank node counter, and the set of resolved rdf:ID IRIs seen so far.
type parseState struct {
	graph   Graph
	bnodes  blankNodeGenerator
	usedIDs map[string]struct{}
}

func newParseState(g Graph) *parseState {
	return &parseState{
		graph:   g,
		usedIDs: make(map[string]struct{}),
	}
}

// drive walks the document tree. Only an rdf:RDF root yields triples;
// any other root is treated as non-RDF XML and produces an empty
// graph.
func (st *parseState) drive(root *xmlElement) error {
	if root.space != rdfNS || root.local != "RDF" {
		return nil
	}
	base := ""
	if value, ok := classifyAttributes(root).xml["base"]; ok {
		base = stripFragment(value)
	}
	for _, child := range root.children {
		if _, err := st.processNode(child, base); err != nil {
			return err
		}
	}
	return nil
}

// resolveElementBase applies an element's own xml:base, if any, to the
// inherited base. A fragment on xml:base is discarded before
// resolution.
func resolveElementBase(attrs classifiedAttrs, parentBase string) string {
	value, ok := attrs.xml["base"]
	if !ok {
		return parentBase
	}
	value = stripFragment(value)
	if parentBase == "" {
		return value
	}
	return resolveIRI(parentBase, value)
}

// processNode handles an element in node position and returns the
// subject term it denotes.
func (st *parseState) processNode(el *xmlElement, parentBase string) (Term, error) {
	attrs := classifyAttributes(el)
	if err := validateNodeElement(el, attrs); err != nil {
		return nil, err
	}
	elementBase := resolveElementBase(attrs, parentBase)

	if id, ok := attrs.rdf["ID"]; ok {
		if err := registerRDFID(st.usedIDs, resolveIRI(elementBase, "#"+id)); err != nil {
			return nil, err
		}
	}

	var subject Term
	switch {
	case attrs.has("about"):
		subject = IRI{Value: resolveIRI(elementBase, attrs.rdf["about"])}
	case attrs.has("ID"):
		subject = IRI{Value: resolveIRI(elementBase, "#"+attrs.rdf["ID"])}
	case attrs.has("nodeID"):
		subject = BlankNode{ID: attrs.rdf["nodeID"]}
	default:
		subject = st.bnodes.next()
	}

	if el.space != rdfNS || el.local != "Description" {
		st.graph.AddResource(subject, rdfType, IRI{Value: el.space + el.local})
	}

	for _, a := range attrs.properties {
		st.graph.AddLiteral(subject, IRI{Value: a.space + a.local}, Literal{Lexical: a.value})
	}

	liCounter := 1
	for _, child := range el.children {
		if err := st.processProperty(child, subject, elementBase, &liCounter); err != nil {
			return nil, err
		}
	}
	return subject, nil
}

// processProperty handles an element in property position under
// subject s. liCounter numbers rdf:li members within the enclosing
// node element or parseType="Resource" scope.
func (st *parseState) processProperty(el *xmlElement, s Term, base string, liCounter *int) error {
	attrs := classifyAttributes(el)
	if err := validatePropertyElement(el, attrs); err != nil {
		return err
	}
	propBase := resolveElementBase(attrs, base)

	predicate := IRI{Value: el.space + el.local}
	if el.space == rdfNS && el.local == "li" {
		predicate = IRI{Value: fmt.Sprintf("%s_%d", rdfNS, *liCounter)}
		*liCounter++
	}

	reifyIRI := ""
	if id, ok := attrs.rdf["ID"]; ok {
		reifyIRI = resolveIRI(propBase, "#"+id)
		if err := registerRDFID(st.usedIDs, reifyIRI); err != nil {
			return err
		}
	}

	object, err := st.propertyObject(el, attrs, s, predicate, propBase)
	if err != nil {
		return err
	}

	if reifyIRI != "" {
		st.reify(IRI{Value: reifyIRI}, s, predicate, object)
	}
	return nil
}

// propertyObject emits the property element's main triple and returns
// its object term. Exactly one of the grammar's object productions
// applies; the first match wins.
func (st *parseState) propertyObject(el *xmlElement, attrs classifiedAttrs, s Term, predicate IRI, propBase string) (Term, error) {
	if parseType, ok := attrs.rdf["parseType"]; ok {
		return st.parseTypedObject(el, parseType, s, predicate, propBase)
	}

	if attrs.has("resource") {
		object := IRI{Value: resolveIRI(propBase, attrs.rdf["resource"])}
		st.graph.AddResource(s, predicate, object)
		return object, nil
	}
	if attrs.has("nodeID") {
		object := BlankNode{ID: attrs.rdf["nodeID"]}
		st.graph.AddResource(s, predicate, object)
		return object, nil
	}

	if len(el.children) > 0 {
		// The first child node element supplies the object; any
		// further siblings are ignored.
		object, err := st.processNode(el.children[0], propBase)
		if err != nil {
			return nil, err
		}
		st.graph.AddResource(s, predicate, object)
		return object, nil
	}

	literal := Literal{Lexical: el.text}
	if lang, ok := attrs.xml["lang"]; ok && lang != "" {
		literal.Lang = normalizeLang(lang)
	} else if datatype, ok := attrs.rdf["datatype"]; ok {
		literal.Datatype = IRI{Value: resolveIRI(propBase, datatype)}
	}
	st.graph.AddLiteral(s, predicate, literal)
	return literal, nil
}

// parseTypedObject dispatches on rdf:parseType. Unknown values fall
// through to the Literal treatment.
func (st *parseState) parseTypedObject(el *xmlElement, parseType string, s Term, predicate IRI, propBase string) (Term, error) {
	switch parseType {
	case "Resource":
		object := st.bnodes.next()
		st.graph.AddResource(s, predicate, object)
		liCounter := 1
		for _, child := range el.children {
			if err := st.processProperty(child, object, propBase, &liCounter); err != nil {
				return nil, err
			}
		}
		return object, nil

	case "Collection":
		if len(el.children) == 0 {
			st.graph.AddResource(s, predicate, rdfNil)
			return rdfNil, nil
		}
		head := st.bnodes.next()
		st.graph.AddResource(s, predicate, head)
		cur := head
		for i, child := range el.children {
			node, err := st.processNode(child, propBase)
			if err != nil {
				return nil, err
			}
			st.graph.AddResource(cur, rdfFirst, node)
			if i < len(el.children)-1 {
				next := st.bnodes.next()
				st.graph.AddResource(cur, rdfRest, next)
				cur = next
			} else {
				st.graph.AddResource(cur, rdfRest, rdfNil)
			}
		}
		return head, nil

	default:
		literal := Literal{Lexical: el.inner, Datatype: rdfXMLLit}
		st.graph.AddLiteral(s, predicate, literal)
		return literal, nil
	}
}

// reify emits the four reification triples for a property element
// carrying rdf:ID. The rdf:object triple mirrors the main triple's
// object kind.
func (st *parseState) reify(stmt IRI, s Term, predicate IRI, object Term) {
	st.graph.AddResource(stmt, rdfType, rdfStatement)
	st.graph.AddResource(stmt, rdfSubject, s)
	st.graph.AddResource(stmt, rdfPredicate, predicate)
	if literal, ok := object.(Literal); ok {
		st.graph.AddLiteral(stmt, rdfObject, literal)
	} else {
		st.graph.AddResource(stmt, rdfObject, object)
	}
}
