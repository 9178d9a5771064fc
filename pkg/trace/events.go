package trace

// MergeCase identifies which branch of the history-folding decision table
// produced a derived node.
type MergeCase string

const (
	// MergeAbsorb: a running total absorbed one more leaf; the leaf was
	// appended to the total's existing history.
	MergeAbsorb MergeCase = "absorb"
	// MergeLeaves: two leaves combined into a fresh two-entry history.
	MergeLeaves MergeCase = "leaves"
	// MergeCombine: two like-kinded partials, at least one anonymous, had
	// their histories concatenated into one flat history.
	MergeCombine MergeCase = "combine"
	// MergePreserve: both operands were kept as distinct children, without
	// flattening either side. This is the fallback, and in particular fires
	// when both operands carry a reason, so annotations are never absorbed
	// into each other.
	MergePreserve MergeCase = "preserve"
)

// NodeEvent describes a node the moment it is allocated.
type NodeEvent struct {
	Kind   string
	Value  float64
	Reason string
}

// MergeEvent describes the outcome of applying a built-in operator.
type MergeEvent struct {
	// Kind of the resulting node (sum, difference, product, quotient).
	Kind string
	// Case is the decision-table branch that shaped the history.
	Case MergeCase
}

// Hooks defines callbacks for session observability. A zero Hooks is valid
// and disables all callbacks. Hooks run synchronously on the constructing
// goroutine; keep them cheap.
type Hooks struct {
	OnNode  func(NodeEvent)
	OnMerge func(MergeEvent)
}
