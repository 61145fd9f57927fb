package model

import "errors"

// Decode errors.
var (
	// ErrMissingField indicates a required block was absent.
	ErrMissingField = errors.New("model: required field missing")

	// ErrUnknownNodeRef indicates an edge, sign_cons entry or start_id
	// refers to a node index outside the decoded node table.
	ErrUnknownNodeRef = errors.New("model: reference to unknown node id")

	// ErrBadNodeID indicates a node's declared id does not match its
	// position in the node table.
	ErrBadNodeID = errors.New("model: node id does not match its position")

	// ErrBadParent indicates a node's parent does not have an edge
	// pointing back to it, or the tree has more than one root.
	ErrBadParent = errors.New("model: inconsistent parent/child relationship")

	// ErrDuplicateSymbol indicates two tag symbols share an identifier.
	ErrDuplicateSymbol = errors.New("model: duplicate tag symbol identifier")
)
