/*
Package tally performs ordinary arithmetic while transparently recording how
each result was derived. Every computed value carries a directed acyclic
graph of the operations and operands that produced it, optionally annotated
with human-readable explanations ("reasons"), so a numeric computation can be
debugged or explained after the fact.

# Concept

All values of one computation live in a Session, an append-only arena that
owns every node until the whole computation is dropped. Arithmetic on nodes
builds the derivation graph in the background; folding rules keep running
totals flat instead of growing one nesting level per step, while named
sub-results are always preserved as distinct, inspectable children. The graph
can then be extracted from any root and rendered as Graphviz DOT, Mermaid, or
a raw nested JSON/YAML document.

# Usage

	s := tally.NewSession()
	price := s.SourceWithReason(40.0, "list price")
	discount := s.SourceWithReason(0.25, "spring sale")
	total := price.Sub(price.Mul(discount))

	dot, err := tally.DOT(total)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(dot)

Custom n-ary functions plug in through the trace.Operator interface; see the
package examples for a square-root operator and a traced Newton's method.
*/
package tally
