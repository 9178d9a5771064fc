package trace

import (
	"fmt"

	"github.com/google/uuid"
)

// Session is the append-only arena owning every Operation of one computation.
// Nodes are never freed individually; they all become unreachable together
// when the Session itself is dropped.
//
// A Session is not safe for concurrent construction. Parallel computations
// must each own a private Session; mixing nodes across Sessions is a caller
// contract violation and panics with a descriptive message.
type Session struct {
	id    string
	nodes []*Operation
	hooks Hooks
}

// Option configures a Session.
type Option func(*Session)

// WithHooks registers observability callbacks fired as nodes are created
// and operand histories are merged.
func WithHooks(h Hooks) Option {
	return func(s *Session) {
		s.hooks = h
	}
}

// NewSession creates an empty arena for one computation.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the unique identifier of this Session, used in diagnostics
// when operands from different Sessions are mixed.
func (s *Session) ID() string { return s.id }

// Len returns the number of nodes allocated so far. Extraction uses it as a
// capacity hint; it only ever grows.
func (s *Session) Len() int { return len(s.nodes) }

// Source allocates a leaf node with no annotation.
func (s *Session) Source(value float64) *Operation {
	return s.alloc(&Operation{
		kind:    KindSource,
		value:   value,
		session: s,
	})
}

// SourceWithReason allocates a leaf node carrying an explanatory annotation.
func (s *Session) SourceWithReason(value float64, reason string) *Operation {
	return s.alloc(&Operation{
		kind:    KindSource,
		value:   value,
		reason:  reason,
		session: s,
	})
}

// Custom allocates a node produced by a user-defined Operator. The operand
// list is recorded literally, in the order given; no history folding is
// applied to Custom nodes. Every operand must belong to this Session, and at
// least one operand is required.
//
// Operator implementations call this from their Apply method.
func (s *Session) Custom(op Operator, value float64, operands ...*Operation) *Operation {
	if op == nil {
		panic("trace: Custom requires a non-nil Operator")
	}
	if len(operands) == 0 {
		panic(fmt.Sprintf("trace: operator %q applied to no operands", op.Symbol()))
	}
	history := make([]*Operation, len(operands))
	for i, operand := range operands {
		s.ensureOwns(operand)
		history[i] = operand
	}
	return s.alloc(&Operation{
		kind:    KindCustom,
		value:   value,
		history: history,
		op:      op,
		session: s,
	})
}

// alloc registers a freshly built node with the arena and fires hooks.
// The node must not have escaped to any other code yet.
func (s *Session) alloc(node *Operation) *Operation {
	s.nodes = append(s.nodes, node)
	if s.hooks.OnNode != nil {
		s.hooks.OnNode(NodeEvent{
			Kind:   node.kind,
			Value:  node.value,
			Reason: node.reason,
		})
	}
	return node
}

// ensureOwns panics when the operand belongs to a different Session.
// Cross-session graphs would reference nodes outside their owning arena,
// so they are rejected rather than silently tolerated.
func (s *Session) ensureOwns(operand *Operation) {
	if operand == nil {
		panic("trace: nil operand")
	}
	if operand.session != s {
		panic(fmt.Sprintf(
			"trace: operand belongs to session %s, not session %s; nodes must not cross sessions",
			operand.session.id, s.id,
		))
	}
}
