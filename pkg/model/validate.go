package model

import "fmt"

// validate checks the structural invariants a decoded model must satisfy
// before a matcher can safely walk it: every node id matches its table
// position, every edge and sign_cons entry targets a real node, start_id
// is the only node without a parent, every other node's parent has an
// edge to it, and tag symbol identifiers are unique. Edges are not checked
// against their target's declared parent, so an edge back to the node
// itself or to an ancestor is accepted.
func validate(m *LvsModel) error {
	n := NodeId(len(m.Nodes))

	for i, node := range m.Nodes {
		if node.ID != NodeId(i) {
			return fmt.Errorf("%w: node at position %d has id %d", ErrBadNodeID, i, node.ID)
		}
		for _, ve := range node.VEdges {
			if ve.Dest >= n {
				return fmt.Errorf("%w: node %d value edge targets %d", ErrUnknownNodeRef, node.ID, ve.Dest)
			}
		}
		for _, pe := range node.PEdges {
			if pe.Dest >= n {
				return fmt.Errorf("%w: node %d pattern edge targets %d", ErrUnknownNodeRef, node.ID, pe.Dest)
			}
		}
		for _, s := range node.SignCons {
			if s >= n {
				return fmt.Errorf("%w: node %d sign_cons targets %d", ErrUnknownNodeRef, node.ID, s)
			}
		}
	}

	if m.StartID >= n {
		return fmt.Errorf("%w: start_id %d", ErrUnknownNodeRef, m.StartID)
	}

	for i, node := range m.Nodes {
		isStart := NodeId(i) == m.StartID
		if isStart {
			if node.Parent != nil {
				return fmt.Errorf("%w: start node %d declares a parent", ErrBadParent, node.ID)
			}
			continue
		}
		if node.Parent == nil {
			return fmt.Errorf("%w: node %d has no parent but is not start_id", ErrBadParent, node.ID)
		}
		if !parentHasEdgeTo(m, *node.Parent, node.ID) {
			return fmt.Errorf("%w: node %d's parent %d has no edge to it", ErrBadParent, node.ID, *node.Parent)
		}
	}

	seen := make(map[string]bool, len(m.Symbols))
	for _, sym := range m.Symbols {
		if seen[sym.Ident] {
			return fmt.Errorf("%w: %q", ErrDuplicateSymbol, sym.Ident)
		}
		seen[sym.Ident] = true
	}

	return nil
}

func parentHasEdgeTo(m *LvsModel, parent, child NodeId) bool {
	if int(parent) >= len(m.Nodes) {
		return false
	}
	p := &m.Nodes[parent]
	for _, ve := range p.VEdges {
		if ve.Dest == child {
			return true
		}
	}
	for _, pe := range p.PEdges {
		if pe.Dest == child {
			return true
		}
	}
	return false
}
