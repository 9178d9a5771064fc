package tally

import (
	"github.com/aretw0/tally/pkg/dump"
	"github.com/aretw0/tally/pkg/graph"
	"github.com/aretw0/tally/pkg/trace"
)

// Version of the library, overridable at build time with -ldflags.
var Version = "0.1.0"

// Re-exported core types, so simple consumers only import the root package.
type (
	// Session owns every node of one computation.
	Session = trace.Session
	// Operation is a value with its derivation history.
	Operation = trace.Operation
	// Operator is the extension point for custom n-ary functions.
	Operator = trace.Operator
)

// NewSession creates an empty arena for one computation.
func NewSession(opts ...trace.Option) *Session {
	return trace.NewSession(opts...)
}

// DOT extracts the derivation graph rooted at op and renders it as Graphviz
// digraph text.
func DOT(op *Operation) (string, error) {
	g, err := graph.Extract(op)
	if err != nil {
		return "", err
	}
	return graph.DOT(g), nil
}

// Mermaid extracts the derivation graph rooted at op and renders it as a
// Mermaid flowchart.
func Mermaid(op *Operation) (string, error) {
	g, err := graph.Extract(op)
	if err != nil {
		return "", err
	}
	return graph.Mermaid(g), nil
}

// ViewerURL renders op as DOT wrapped in a shareable online-viewer link.
func ViewerURL(op *Operation) (string, error) {
	dot, err := DOT(op)
	if err != nil {
		return "", err
	}
	return graph.ViewerURL(dot), nil
}

// JSON dumps the raw nested {kind, value, reason?, history?} tree of op,
// without deduplication, as indented JSON.
func JSON(op *Operation) ([]byte, error) {
	return dump.JSON(op)
}

// YAML dumps the raw nested tree of op as YAML.
func YAML(op *Operation) ([]byte, error) {
	return dump.YAML(op)
}
