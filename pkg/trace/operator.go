package trace

// Operator is the extension point for arithmetic beyond the four built-in
// operators. Implementations may take any number of operands (square root,
// trigonometric functions, dot products, ...).
//
// Apply must allocate the result via Session.Custom on the operands' own
// Session, compute the value deterministically from the operands, and pass
// the operands through in the exact order received. Dispatch is dynamic:
// one indirect call per invocation.
type Operator interface {
	// Symbol returns the short display token used when rendering, e.g. "sqrt".
	Symbol() string

	// Apply computes a new node from the given operands.
	Apply(operands ...*Operation) *Operation
}
