/*
Package trace contains the core value-with-history model for traceable arithmetic.

It defines the fundamental entities of the derivation graph: Operations (a
numeric value plus the ordered list of operands consumed to produce it),
Sessions (the append-only arena owning every Operation of one computation),
and Operators (the extension point for custom n-ary functions). This package
is kept pure and free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Operation: a node in the derivation graph (Source leaf or derived result).
  - Session: the owning arena; all operands of one expression must share it.
  - Operator: a user-defined function (e.g. sqrt) that allocates Custom nodes.

Arithmetic on Operations folds operand histories to keep derivation chains
flat where that loses no information, and preserves structure wherever both
operands carry an explanatory reason.
*/
package trace
