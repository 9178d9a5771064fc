package trace

// The merge engine decides the shape of a derived node's history when one of
// the four built-in operators combines two operands. Naively nesting both
// operands every time would grow a binary tree one level per step; folding
// keeps a running total's history flat and linear instead. The rules form an
// ordered decision table, evaluated top to bottom, first match wins:
//
//  1. absorb:   exactly one operand is a Source and the other already has the
//     result kind. The Source is appended to that operand's history and the
//     carried reason is kept. The absorbed Source's own reason is discarded.
//  2. leaves:   both operands are Sources. History is [self, other], no
//     reason is synthesized.
//  3. combine:  both operands have the result kind and at least one is
//     reasonless. Histories are concatenated (self's entries first) and the
//     present reason, if any, is kept.
//  4. preserve: anything else, notably two like-kinded operands that both
//     carry a reason. History is [self, other], without flattening either
//     side, so both named sub-computations stay inspectable.
//
// Folding only ever changes the recorded shape: the value is always computed
// as self OP other in the literal expression order, which keeps the
// non-commutative operators correct.

// Add returns self + other as a new Sum node.
func (o *Operation) Add(other *Operation) *Operation {
	return o.merge(other, KindSum, func(x, y float64) float64 { return x + y }, nil)
}

// AddWithReason is Add with an explicit annotation replacing whatever reason
// the folding rules would have carried.
func (o *Operation) AddWithReason(other *Operation, reason string) *Operation {
	return o.merge(other, KindSum, func(x, y float64) float64 { return x + y }, &reason)
}

// Sub returns self - other as a new Difference node.
func (o *Operation) Sub(other *Operation) *Operation {
	return o.merge(other, KindDifference, func(x, y float64) float64 { return x - y }, nil)
}

// SubWithReason is Sub with an explicit annotation.
func (o *Operation) SubWithReason(other *Operation, reason string) *Operation {
	return o.merge(other, KindDifference, func(x, y float64) float64 { return x - y }, &reason)
}

// Mul returns self * other as a new Product node.
func (o *Operation) Mul(other *Operation) *Operation {
	return o.merge(other, KindProduct, func(x, y float64) float64 { return x * y }, nil)
}

// MulWithReason is Mul with an explicit annotation.
func (o *Operation) MulWithReason(other *Operation, reason string) *Operation {
	return o.merge(other, KindProduct, func(x, y float64) float64 { return x * y }, &reason)
}

// Div returns self / other as a new Quotient node. A zero divisor yields the
// usual IEEE infinity or NaN, recorded as an ordinary value so the graph
// shows exactly where it entered.
func (o *Operation) Div(other *Operation) *Operation {
	return o.merge(other, KindQuotient, func(x, y float64) float64 { return x / y }, nil)
}

// DivWithReason is Div with an explicit annotation.
func (o *Operation) DivWithReason(other *Operation, reason string) *Operation {
	return o.merge(other, KindQuotient, func(x, y float64) float64 { return x / y }, &reason)
}

// merge applies the decision table above. kind is the result kind associated
// with the operator, apply the literal arithmetic. override, when non-nil,
// replaces the branch-selected reason; this happens before the node is
// registered, so no other code ever observes the replaced value.
func (o *Operation) merge(other *Operation, kind string, apply func(x, y float64) float64, override *string) *Operation {
	s := o.session
	s.ensureOwns(other)

	value := apply(o.value, other.value)

	var (
		history   []*Operation
		reason    string
		mergeCase MergeCase
	)

	switch {
	case o.kind == KindSource && other.kind == kind:
		// absorb: other is the running total, self the folded-in leaf.
		history = appended(other.history, o)
		reason = other.reason
		mergeCase = MergeAbsorb

	case other.kind == KindSource && o.kind == kind:
		// absorb, mirrored.
		history = appended(o.history, other)
		reason = o.reason
		mergeCase = MergeAbsorb

	case o.kind == KindSource && other.kind == KindSource:
		history = []*Operation{o, other}
		mergeCase = MergeLeaves

	case o.kind == kind && other.kind == kind && (o.reason == "" || other.reason == ""):
		history = appended(o.history, other.history...)
		reason = o.reason
		if reason == "" {
			reason = other.reason
		}
		mergeCase = MergeCombine

	default:
		history = []*Operation{o, other}
		mergeCase = MergePreserve
	}

	if override != nil {
		reason = *override
	}

	node := s.alloc(&Operation{
		kind:    kind,
		value:   value,
		reason:  reason,
		history: history,
		session: s,
	})
	if s.hooks.OnMerge != nil {
		s.hooks.OnMerge(MergeEvent{Kind: kind, Case: mergeCase})
	}
	return node
}

// appended builds a fresh slice from base plus extra entries. Histories are
// shared with earlier nodes, so the base is never appended to in place.
func appended(base []*Operation, extra ...*Operation) []*Operation {
	out := make([]*Operation, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
