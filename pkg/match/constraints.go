package match

import (
	"bytes"
	"fmt"

	"github.com/ndnlvs/lvs/pkg/model"
	"github.com/ndnlvs/lvs/pkg/userfn"
)

// checkConstraints reports whether value satisfies every constraint set
// (AND across ConsSets, OR within a set's Options).
func checkConstraints(value model.Component, ctx Bindings, consSets []model.PatternConstraint, fns map[string]userfn.Fn) (bool, error) {
	for _, cs := range consSets {
		ok, err := checkConstraintSet(value, ctx, cs, fns)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func checkConstraintSet(value model.Component, ctx Bindings, cs model.PatternConstraint, fns map[string]userfn.Fn) (bool, error) {
	for _, opt := range cs.Options {
		ok, err := checkOption(value, ctx, opt, fns)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func checkOption(value model.Component, ctx Bindings, opt model.ConstraintOption, fns map[string]userfn.Fn) (bool, error) {
	switch {
	case opt.Literal != nil:
		return bytes.Equal(value, *opt.Literal), nil
	case opt.Tag != nil:
		bound := resolveTag(ctx, *opt.Tag)
		if bound == nil {
			return false, nil
		}
		return bytes.Equal(value, bound), nil
	case opt.Call != nil:
		return evalCall(value, ctx, *opt.Call, fns)
	default:
		return false, nil
	}
}

func evalCall(value model.Component, ctx Bindings, call model.UserFnCall, fns map[string]userfn.Fn) (bool, error) {
	fn, ok := fns[call.FnID]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUndefinedFunction, call.FnID)
	}
	args := make([]model.Component, len(call.Args))
	for i, a := range call.Args {
		switch {
		case a.Literal != nil:
			args[i] = *a.Literal
		case a.Tag != nil:
			args[i] = resolveTag(ctx, *a.Tag)
		}
	}
	return fn(value, args), nil
}

func resolveTag(ctx Bindings, tag model.TagId) model.Component {
	if int(tag) >= len(ctx) {
		return nil
	}
	return ctx[tag]
}
