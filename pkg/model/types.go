// Package model holds the decoded form of a trust schema: the node table
// and edges a matcher walks, independent of how the schema was encoded.
package model

// Component is the raw wire bytes of a single name component, stored
// verbatim the way the schema and packet names encode it.
type Component []byte

// Name is an ordered sequence of components.
type Name []Component

// TagId identifies a named pattern variable bound during matching. Tag 0
// is reserved to mean "no tag": a pattern edge with tag 0 binds nothing.
type TagId uint64

// NodeId indexes into LvsModel.Nodes.
type NodeId uint64

// CallArg is one argument to a user function call: either a literal
// component or a reference to a tag bound earlier in the match.
type CallArg struct {
	Literal *Component
	Tag     *TagId
}

// UserFnCall invokes a named, externally registered predicate against the
// component under test.
type UserFnCall struct {
	FnID string
	Args []CallArg
}

// ConstraintOption is one admissible way to satisfy a constraint: a
// literal value, a reference to an already-bound tag, or a function call.
// Exactly one of Literal, Tag or Call is set.
type ConstraintOption struct {
	Literal *Component
	Tag     *TagId
	Call    *UserFnCall
}

// PatternConstraint is satisfied when any one of its Options holds (OR).
// A pattern edge requires every PatternConstraint in its ConsSets to hold
// (AND across sets).
type PatternConstraint struct {
	Options []ConstraintOption
}

// ValueEdge matches a single literal component value.
type ValueEdge struct {
	Dest  NodeId
	Value Component
}

// PatternEdge matches any component that satisfies every constraint set in
// ConsSets. If Tag is a named pattern (1..NamedPatternCnt), the matched
// component is bound to it for the rest of the walk.
type PatternEdge struct {
	Dest     NodeId
	Tag      TagId
	ConsSets []PatternConstraint
}

// Node is one state in the schema's match automaton.
type Node struct {
	ID       NodeId
	Parent   *NodeId
	RuleName []string
	VEdges   []ValueEdge
	PEdges   []PatternEdge
	SignCons []NodeId
}

// TagSymbol gives a human-readable identifier to a tag number, used when
// reporting bindings back to a caller.
type TagSymbol struct {
	Tag   TagId
	Ident string
}

// LvsModel is a fully decoded, structurally validated trust schema.
type LvsModel struct {
	Version         uint64
	StartID         NodeId
	NamedPatternCnt uint64
	Nodes           []Node
	Symbols         []TagSymbol
}
