package model

import (
	"fmt"

	"github.com/ndnlvs/lvs/pkg/tlv"
)

// DecodeModel decodes a whole trust schema from buf. Unlike decoding a
// nested struct, the outermost decode rejects any trailing bytes: a schema
// file is either consumed exactly or rejected.
func DecodeModel(buf []byte) (*LvsModel, error) {
	r := tlv.NewReader(buf)

	version, ok, err := r.ReadNatural(wireVersion)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: VERSION", ErrMissingField)
	}

	startID, ok, err := r.ReadNatural(wireNodeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: start NODE_ID", ErrMissingField)
	}

	namedPatternCnt, ok, err := r.ReadNatural(wireNamedPatternNum)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: NAMED_PATTERN_NUM", ErrMissingField)
	}

	var nodes []Node
	for {
		raw, ok, err := r.ReadBlock(wireNode)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		node, err := decodeNode(tlv.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", len(nodes), err)
		}
		nodes = append(nodes, node)
	}

	var symbols []TagSymbol
	for {
		raw, ok, err := r.ReadBlock(wireTagSymbol)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		sym, err := decodeTagSymbol(tlv.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", len(symbols), err)
		}
		symbols = append(symbols, sym)
	}

	if err := r.Finish(); err != nil {
		return nil, err
	}

	m := &LvsModel{
		Version:         version,
		StartID:         NodeId(startID),
		NamedPatternCnt: namedPatternCnt,
		Nodes:           nodes,
		Symbols:         symbols,
	}
	if err := validate(m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeNode(r *tlv.Reader) (Node, error) {
	var n Node

	id, ok, err := r.ReadNatural(wireNodeID)
	if err != nil {
		return Node{}, err
	}
	if !ok {
		return Node{}, fmt.Errorf("%w: NODE_ID", ErrMissingField)
	}
	n.ID = NodeId(id)

	if parent, ok, err := r.ReadNatural(wireParentID); err != nil {
		return Node{}, err
	} else if ok {
		p := NodeId(parent)
		n.Parent = &p
	}

	for {
		raw, ok, err := r.ReadBlock(wireIdentifier)
		if err != nil {
			return Node{}, err
		}
		if !ok {
			break
		}
		n.RuleName = append(n.RuleName, string(raw))
	}

	for {
		raw, ok, err := r.ReadBlock(wireValueEdge)
		if err != nil {
			return Node{}, err
		}
		if !ok {
			break
		}
		ve, err := decodeValueEdge(tlv.NewReader(raw))
		if err != nil {
			return Node{}, err
		}
		n.VEdges = append(n.VEdges, ve)
	}

	for {
		raw, ok, err := r.ReadBlock(wirePatternEdge)
		if err != nil {
			return Node{}, err
		}
		if !ok {
			break
		}
		pe, err := decodePatternEdge(tlv.NewReader(raw))
		if err != nil {
			return Node{}, err
		}
		n.PEdges = append(n.PEdges, pe)
	}

	for {
		signer, ok, err := r.ReadNatural(wireKeyNodeID)
		if err != nil {
			return Node{}, err
		}
		if !ok {
			break
		}
		n.SignCons = append(n.SignCons, NodeId(signer))
	}

	return n, nil
}

func decodeValueEdge(r *tlv.Reader) (ValueEdge, error) {
	dest, ok, err := r.ReadNatural(wireNodeID)
	if err != nil {
		return ValueEdge{}, err
	}
	if !ok {
		return ValueEdge{}, fmt.Errorf("%w: NODE_ID", ErrMissingField)
	}
	val, ok, err := r.ReadNameComponent(wireComponentValue)
	if err != nil {
		return ValueEdge{}, err
	}
	if !ok {
		return ValueEdge{}, fmt.Errorf("%w: COMPONENT_VALUE", ErrMissingField)
	}
	return ValueEdge{Dest: NodeId(dest), Value: Component(val)}, nil
}

func decodePatternEdge(r *tlv.Reader) (PatternEdge, error) {
	dest, ok, err := r.ReadNatural(wireNodeID)
	if err != nil {
		return PatternEdge{}, err
	}
	if !ok {
		return PatternEdge{}, fmt.Errorf("%w: NODE_ID", ErrMissingField)
	}
	tag, ok, err := r.ReadNatural(wirePatternTag)
	if err != nil {
		return PatternEdge{}, err
	}
	if !ok {
		return PatternEdge{}, fmt.Errorf("%w: PATTERN_TAG", ErrMissingField)
	}

	var consSets []PatternConstraint
	for {
		raw, ok, err := r.ReadBlock(wireConstraint)
		if err != nil {
			return PatternEdge{}, err
		}
		if !ok {
			break
		}
		pc, err := decodePatternConstraint(tlv.NewReader(raw))
		if err != nil {
			return PatternEdge{}, err
		}
		consSets = append(consSets, pc)
	}

	return PatternEdge{Dest: NodeId(dest), Tag: TagId(tag), ConsSets: consSets}, nil
}

func decodePatternConstraint(r *tlv.Reader) (PatternConstraint, error) {
	var pc PatternConstraint
	for {
		raw, ok, err := r.ReadBlock(wireConsOption)
		if err != nil {
			return PatternConstraint{}, err
		}
		if !ok {
			break
		}
		opt, err := decodeConstraintOption(tlv.NewReader(raw))
		if err != nil {
			return PatternConstraint{}, err
		}
		pc.Options = append(pc.Options, opt)
	}
	return pc, nil
}

func decodeConstraintOption(r *tlv.Reader) (ConstraintOption, error) {
	var opt ConstraintOption

	if val, ok, err := r.ReadNameComponent(wireComponentValue); err != nil {
		return ConstraintOption{}, err
	} else if ok {
		c := Component(val)
		opt.Literal = &c
	}

	if tag, ok, err := r.ReadNatural(wirePatternTag); err != nil {
		return ConstraintOption{}, err
	} else if ok {
		t := TagId(tag)
		opt.Tag = &t
	}

	if raw, ok, err := r.ReadBlock(wireUserFnCall); err != nil {
		return ConstraintOption{}, err
	} else if ok {
		call, err := decodeUserFnCall(tlv.NewReader(raw))
		if err != nil {
			return ConstraintOption{}, err
		}
		opt.Call = &call
	}

	return opt, nil
}

func decodeUserFnCall(r *tlv.Reader) (UserFnCall, error) {
	fnID, ok, err := r.ReadBlock(wireUserFnID)
	if err != nil {
		return UserFnCall{}, err
	}
	if !ok {
		return UserFnCall{}, fmt.Errorf("%w: USER_FN_ID", ErrMissingField)
	}
	call := UserFnCall{FnID: string(fnID)}

	for {
		raw, ok, err := r.ReadBlock(wireFnArgs)
		if err != nil {
			return UserFnCall{}, err
		}
		if !ok {
			break
		}
		arg, err := decodeUserFnArg(tlv.NewReader(raw))
		if err != nil {
			return UserFnCall{}, err
		}
		call.Args = append(call.Args, arg)
	}

	return call, nil
}

func decodeUserFnArg(r *tlv.Reader) (CallArg, error) {
	var arg CallArg

	if val, ok, err := r.ReadNameComponent(wireComponentValue); err != nil {
		return CallArg{}, err
	} else if ok {
		c := Component(val)
		arg.Literal = &c
	}

	if tag, ok, err := r.ReadNatural(wirePatternTag); err != nil {
		return CallArg{}, err
	} else if ok {
		t := TagId(tag)
		arg.Tag = &t
	}

	return arg, nil
}

func decodeTagSymbol(r *tlv.Reader) (TagSymbol, error) {
	tag, ok, err := r.ReadNatural(wirePatternTag)
	if err != nil {
		return TagSymbol{}, err
	}
	if !ok {
		return TagSymbol{}, fmt.Errorf("%w: PATTERN_TAG", ErrMissingField)
	}
	raw, ok, err := r.ReadBlock(wireIdentifier)
	if err != nil {
		return TagSymbol{}, err
	}
	if !ok {
		return TagSymbol{}, fmt.Errorf("%w: IDENTIFIER", ErrMissingField)
	}
	return TagSymbol{Tag: TagId(tag), Ident: string(raw)}, nil
}
