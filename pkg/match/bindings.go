package match

import "github.com/ndnlvs/lvs/pkg/model"

// Bindings maps a tag id to the component bound to it during a match.
// Index 0 is unused; tags run from 1 to a schema's named_pattern_cnt.
// A nil entry means that tag is not currently bound.
type Bindings []model.Component

// clone returns an independent copy, so that seeding a child match from a
// parent's bindings doesn't let either side's backtracking mutate the
// other's state.
func (b Bindings) clone() Bindings {
	out := make(Bindings, len(b))
	copy(out, b)
	return out
}

// names resolves every currently-bound tag to a human identifier using the
// schema's tag symbol table, skipping tags with no symbol.
func (b Bindings) names(symbols map[model.TagId]string) map[string]model.Component {
	out := make(map[string]model.Component)
	for tag := 1; tag < len(b); tag++ {
		if b[tag] == nil {
			continue
		}
		if ident, ok := symbols[model.TagId(tag)]; ok {
			out[ident] = b[tag]
		}
	}
	return out
}
