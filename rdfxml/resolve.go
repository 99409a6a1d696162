package rdfxml

import "strings"

// resolveIRI resolves a reference against a base IRI following the
// RFC 3986 section 5 algorithm. The base is expected to be absolute;
// when it cannot be split into components the reference is returned
// unchanged.
func resolveIRI(base, ref string) string {
	switch {
	case ref == "":
		return stripFragment(base)
	case strings.Contains(ref, "://"):
		return ref
	case strings.HasPrefix(ref, "#"):
		return stripFragment(base) + ref
	}

	scheme, authority, path, ok := splitBase(base)
	if !ok {
		return ref
	}

	switch {
	case strings.HasPrefix(ref, "//"):
		// The reference supplies its own authority; dot-segment
		// removal applies to its path only.
		rest := ref[2:]
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			return scheme + "://" + rest[:i] + removeDotSegments(rest[i:])
		}
		return scheme + ":" + ref
	case strings.HasPrefix(ref, "/"):
		return scheme + "://" + authority + removeDotSegments(ref)
	}

	// Merge: directory of the base path plus the reference.
	dir := "/"
	if i := strings.LastIndex(path, "/"); i >= 0 {
		dir = path[:i+1]
	}
	return scheme + "://" + authority + removeDotSegments(dir+ref)
}

// stripFragment removes a trailing #fragment, if present.
func stripFragment(iri string) string {
	if i := strings.IndexByte(iri, '#'); i >= 0 {
		return iri[:i]
	}
	return iri
}

// splitBase splits an absolute IRI into scheme, authority (including
// any user@ and :port), and path. The query and fragment are dropped;
// they never participate in merging.
func splitBase(base string) (scheme, authority, path string, ok bool) {
	i := strings.Index(base, "://")
	if i <= 0 {
		return "", "", "", false
	}
	scheme = base[:i]
	rest := base[i+3:]

	if j := strings.IndexAny(rest, "?#"); j >= 0 {
		rest = rest[:j]
	}
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		authority = rest[:j]
		path = rest[j:]
	} else {
		authority = rest
	}
	return scheme, authority, path, true
}

// removeDotSegments applies the RFC 3986 section 5.2.4 algorithm:
// iterate over an input buffer consuming "./", "../", "/./", "/../"
// and the final "." / "..", appending everything else to the output.
func removeDotSegments(path string) string {
	var out strings.Builder
	in := path
	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			popSegment(&out)
		case in == "/..":
			in = "/"
			popSegment(&out)
		case in == "." || in == "..":
			in = ""
		default:
			// Move the first segment, including its leading slash if
			// any, from input to output.
			end := len(in)
			if i := strings.IndexByte(in[1:], '/'); i >= 0 {
				end = i + 1
			}
			out.WriteString(in[:end])
			in = in[end:]
		}
	}
	return out.String()
}

// popSegment removes the last complete segment and its leading slash
// from the output buffer.
func popSegment(out *strings.Builder) {
	s := out.String()
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		i = 0
	}
	out.Reset()
	out.WriteString(s[:i])
}
