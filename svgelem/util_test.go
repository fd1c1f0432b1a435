package svgelem

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

type entry struct {
	ID string
	El Element
}

// entries flattens es so that it may be compared with cmp.
func entries(es Elements) []entry {
	var out []entry
	for id, el := range es.All() {
		out = append(out, entry{id, el})
	}
	return out
}

func mustImport(t *testing.T, svg string, opts *Options) Elements {
	t.Helper()
	es, err := ToElements(svg, opts)
	if err != nil {
		t.Fatal(err)
	}
	return es
}
