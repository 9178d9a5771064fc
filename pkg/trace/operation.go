package trace

import (
	"fmt"
	"slices"
	"strconv"
)

// Kind constants classify how an Operation's value came to be.
const (
	// KindSource is a leaf value entered directly by the caller.
	KindSource = "source"
	// KindSum is the result of addition.
	KindSum = "sum"
	// KindDifference is the result of subtraction.
	KindDifference = "difference"
	// KindProduct is the result of multiplication.
	KindProduct = "product"
	// KindQuotient is the result of division.
	KindQuotient = "quotient"

	// KindCustom is the result of a user-defined Operator.
	KindCustom = "custom"
)

// Operation is a numeric value together with its derivation history.
// Operations are immutable once returned to the caller; they are created
// only by Session constructors and by the arithmetic methods, and they
// remain valid for as long as their owning Session is alive.
//
// Identity is pointer identity: two separately constructed Operations with
// equal value and kind are still distinct nodes in the graph.
type Operation struct {
	kind    string
	value   float64
	reason  string
	history []*Operation
	op      Operator // set only for KindCustom
	session *Session
}

// Kind returns the classification of this node.
func (o *Operation) Kind() string { return o.kind }

// Value returns the stored scalar. It always equals the literal left-to-right
// arithmetic result of the expression that produced this node, independent of
// how the history was folded.
func (o *Operation) Value() float64 { return o.value }

// Reason returns the explanatory annotation, or "" when none was given.
func (o *Operation) Reason() string { return o.reason }

// Session returns the arena that owns this node.
func (o *Operation) Session() *Session { return o.session }

// History returns the ordered operand list consumed to produce this node.
// Asking for the history of a Source leaf is a contract violation and panics.
// Use Operands for the non-panicking form.
func (o *Operation) History() []*Operation {
	if o.kind == KindSource {
		panic("trace: History called on a source leaf (leaves have no history)")
	}
	return slices.Clone(o.history)
}

// Operands returns the operand list and true, or nil and false for a
// Source leaf.
func (o *Operation) Operands() ([]*Operation, bool) {
	if o.kind == KindSource {
		return nil, false
	}
	return slices.Clone(o.history), true
}

// Symbol returns the short display token for this node's kind: blank for
// Source, an operator glyph for the four built-ins, and the registered
// Operator's symbol for Custom nodes.
func (o *Operation) Symbol() string {
	switch o.kind {
	case KindSource:
		return ""
	case KindSum:
		return "(+)"
	case KindDifference:
		return "(-)"
	case KindProduct:
		return "(*)"
	case KindQuotient:
		return "(/)"
	case KindCustom:
		return o.op.Symbol()
	}
	return "(?)"
}

// Label renders the node the way exporters display it:
// "<value> <symbol> \"<reason>\"", with the symbol and reason parts present
// only when set.
func (o *Operation) Label() string {
	label := strconv.FormatFloat(o.value, 'g', -1, 64)
	if sym := o.Symbol(); sym != "" {
		label += " " + sym
	}
	if o.reason != "" {
		label += fmt.Sprintf(" %q", o.reason)
	}
	return label
}

// String implements fmt.Stringer for debug output.
func (o *Operation) String() string {
	return fmt.Sprintf("Operation(%s %s)", o.kind, o.Label())
}
