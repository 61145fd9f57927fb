package match

import (
	"bytes"

	"github.com/ndnlvs/lvs/pkg/model"
	"github.com/ndnlvs/lvs/pkg/userfn"
	"github.com/pion/logging"
)

// cursor records where a node's Next() call should resume: whether its
// value edges still need trying, and if not, which pattern edge index to
// try next.
type cursor struct {
	atValue bool
	patIdx  int
}

// frame is pushed onto the backtracking stack each time the walk descends
// into a child node. It carries what's needed to resume the parent's
// search and undo any binding the child edge made.
type frame struct {
	resume   cursor
	boundTag model.TagId // 0 if the edge into this child bound no tag
}

// Iterator walks a schema's match automaton against a name, yielding one
// (node, bindings) result per Next() call -- a single name can match more
// than one node when the schema is ambiguous. It replaces what a
// recursive generator would do with an explicit, bounded state machine:
// no goroutine, no unbounded call stack.
type Iterator struct {
	model *model.LvsModel
	name  model.Name
	fns   map[string]userfn.Fn

	ctx      Bindings
	cur      model.NodeId
	curValid bool
	cursor   cursor
	stack    []frame

	resultNode model.NodeId

	log logging.LeveledLogger
}

func newIterator(m *model.LvsModel, name model.Name, seed Bindings, fns map[string]userfn.Fn, log logging.LeveledLogger) *Iterator {
	ctx := make(Bindings, m.NamedPatternCnt+1)
	copy(ctx, seed)
	return &Iterator{
		model:    m,
		name:     name,
		fns:      fns,
		ctx:      ctx,
		cur:      m.StartID,
		curValid: true,
		cursor:   cursor{atValue: true},
		log:      log,
	}
}

// Node returns the node id the most recent successful Next() reached.
func (it *Iterator) Node() model.NodeId {
	return it.resultNode
}

// Bindings returns the tag bindings live at the most recent successful
// Next() call. The slice is owned by the iterator: copy it before calling
// Next() again if the caller needs to retain it.
func (it *Iterator) Bindings() Bindings {
	return it.ctx
}

// Next advances the walk to the next node reached at exactly len(name)
// edges from the start, or returns false when no further result exists.
// A non-nil error means a constraint called an undefined user function;
// the walk is aborted and further calls continue to return false.
func (it *Iterator) Next() (bool, error) {
	for it.curValid {
		node := &it.model.Nodes[it.cur]
		depth := len(it.stack)

		if depth == len(it.name) {
			it.resultNode = it.cur
			it.backtrack()
			return true, nil
		}

		c := it.name[depth]

		if it.cursor.atValue {
			it.cursor.atValue = false
			// Whether or not a value edge matched, the next iteration
			// picks up where this leaves the cursor: on the matched
			// child (atValue again) or on this node's pattern edges
			// (patIdx starts at its zero value, 0).
			it.descendValueEdge(node, c)
			continue
		}

		if it.cursor.patIdx < len(node.PEdges) {
			if _, err := it.tryPatternEdge(node, c); err != nil {
				it.curValid = false
				return false, err
			}
			continue
		}

		it.backtrack()
	}
	return false, nil
}

// descendValueEdge tries every value edge of node for one matching c. On a
// match it pushes a resume frame and descends; it never binds a tag. Value
// edges are deterministic (at most one matches a given c), so the resume
// frame moves straight to pattern-edge index 0 rather than retrying value
// edges on backtrack.
func (it *Iterator) descendValueEdge(node *model.Node, c model.Component) bool {
	for _, ve := range node.VEdges {
		if bytes.Equal(ve.Value, c) {
			if it.log != nil {
				it.log.Tracef("match: node %d: value edge matched, descend to %d", it.cur, ve.Dest)
			}
			it.stack = append(it.stack, frame{resume: cursor{atValue: false}})
			it.cur = ve.Dest
			it.cursor = cursor{atValue: true}
			return true
		}
	}
	return false
}

// tryPatternEdge evaluates the pattern edge at the current index, advances
// the index whether or not it matches, and descends on success.
func (it *Iterator) tryPatternEdge(node *model.Node, c model.Component) (bool, error) {
	pe := node.PEdges[it.cursor.patIdx]
	it.cursor.patIdx++

	named := pe.Tag != 0 && uint64(pe.Tag) <= it.model.NamedPatternCnt
	if named && it.ctx[pe.Tag] != nil {
		if !bytes.Equal(c, it.ctx[pe.Tag]) {
			return false, nil
		}
		if it.log != nil {
			it.log.Tracef("match: node %d: pattern edge %d matched bound tag %d, descend to %d", it.cur, it.cursor.patIdx-1, pe.Tag, pe.Dest)
		}
		it.push(cursor{atValue: false, patIdx: it.cursor.patIdx}, 0)
		it.cur = pe.Dest
		it.cursor = cursor{atValue: true}
		return true, nil
	}

	ok, err := checkConstraints(c, it.ctx, pe.ConsSets, it.fns)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	var bound model.TagId
	if named {
		it.ctx[pe.Tag] = c
		bound = pe.Tag
	}
	if it.log != nil {
		it.log.Tracef("match: node %d: pattern edge %d matched, descend to %d", it.cur, it.cursor.patIdx-1, pe.Dest)
	}
	it.push(cursor{atValue: false, patIdx: it.cursor.patIdx}, bound)
	it.cur = pe.Dest
	it.cursor = cursor{atValue: true}
	return true, nil
}

func (it *Iterator) push(resume cursor, boundTag model.TagId) {
	it.stack = append(it.stack, frame{resume: resume, boundTag: boundTag})
}

// backtrack pops the most recent frame, clears any tag it bound, and
// returns to the parent node with its saved cursor. If the stack is
// empty, the walk is finished.
func (it *Iterator) backtrack() {
	if len(it.stack) == 0 {
		it.curValid = false
		return
	}
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if top.boundTag != 0 {
		it.ctx[top.boundTag] = nil
	}
	parent := it.model.Nodes[it.cur].Parent
	if parent == nil {
		it.curValid = false
		return
	}
	if it.log != nil {
		it.log.Tracef("match: backtrack from node %d to %d", it.cur, *parent)
	}
	it.cur = *parent
	it.cursor = top.resume
}
