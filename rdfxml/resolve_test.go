package rdfxml

import "testing"

func TestResolveIRI(t *testing.T) {
	const base = "http://a/b/c/d;p?q"

	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{name: "empty reference returns base", base: base, ref: "", want: base},
		{name: "empty reference strips fragment", base: "http://a/b#frag", ref: "", want: "http://a/b"},
		{name: "absolute reference unchanged", base: base, ref: "http://x/y", want: "http://x/y"},
		{name: "fragment only", base: base, ref: "#s", want: "http://a/b/c/d;p?q#s"},
		{name: "fragment replaces fragment", base: "http://a/b#old", ref: "#new", want: "http://a/b#new"},
		{name: "network path", base: base, ref: "//g", want: "http://g"},
		{name: "network path with current dir", base: base, ref: "//g/./x", want: "http://g/x"},
		{name: "network path with parent dir", base: base, ref: "//a/../x", want: "http://a/x"},
		{name: "absolute path", base: base, ref: "/g", want: "http://a/g"},
		{name: "relative merge", base: base, ref: "g", want: "http://a/b/c/g"},
		{name: "current dir", base: base, ref: "./g", want: "http://a/b/c/g"},
		{name: "parent dir", base: base, ref: "../g", want: "http://a/b/g"},
		{name: "double parent", base: base, ref: "../../g", want: "http://a/g"},
		{name: "trailing dot", base: base, ref: "g/.", want: "http://a/b/c/g/"},
		{name: "trailing parent", base: base, ref: "g/..", want: "http://a/b/c/"},
		{name: "absolute path with dots", base: base, ref: "/../g", want: "http://a/g"},
		{name: "authority with user and port", base: "http://u@h:8080/x/y", ref: "z", want: "http://u@h:8080/x/z"},
		{name: "base without path", base: "http://a", ref: "g", want: "http://a/g"},
		{name: "unparseable base returns reference", base: "notabase", ref: "g", want: "g"},
		{name: "empty base returns reference", base: "", ref: "g", want: "g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveIRI(tt.base, tt.ref)
			if got != tt.want {
				t.Errorf("resolveIRI(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
			}
		})
	}
}

func TestRemoveDotSegments(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/a/b/c/./../../g", want: "/a/g"},
		{in: "mid/content=5/../6", want: "mid/6"},
		{in: "/./a", want: "/a"},
		{in: "/../a", want: "/a"},
		{in: "/a/.", want: "/a/"},
		{in: "/a/..", want: "/"},
		{in: ".", want: ""},
		{in: "..", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := removeDotSegments(tt.in)
			if got != tt.want {
				t.Errorf("removeDotSegments(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
