// Package dump produces the raw nested view of a derivation: a document
// mirroring the {kind, value, reason?, history?} tree exactly as owned, with
// no deduplication and no flattening. A node consumed twice appears twice.
// This view complements package graph, which renders the deduplicated DAG;
// dump is meant for inspection and diffing, not visualization.
package dump

import (
	"encoding/json"
	"errors"

	"github.com/aretw0/tally/pkg/trace"
	"gopkg.in/yaml.v3"
)

// ErrNilRoot is returned when asked to dump no node.
var ErrNilRoot = errors.New("dump: nil root operation")

// Document is the serializable mirror of an Operation. The owning session is
// deliberately omitted.
type Document struct {
	Kind    string     `json:"kind" yaml:"kind"`
	Value   float64    `json:"value" yaml:"value"`
	Reason  string     `json:"reason,omitempty" yaml:"reason,omitempty"`
	History []Document `json:"history,omitempty" yaml:"history,omitempty"`
}

// From mirrors the node tree recursively into a Document.
func From(root *trace.Operation) (Document, error) {
	if root == nil {
		return Document{}, ErrNilRoot
	}
	doc := Document{
		Kind:   root.Kind(),
		Value:  root.Value(),
		Reason: root.Reason(),
	}
	if operands, ok := root.Operands(); ok {
		doc.History = make([]Document, len(operands))
		for i, operand := range operands {
			child, err := From(operand)
			if err != nil {
				return Document{}, err
			}
			doc.History[i] = child
		}
	}
	return doc, nil
}

// JSON renders the nested document as indented JSON.
func JSON(root *trace.Operation) ([]byte, error) {
	doc, err := From(root)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// YAML renders the nested document as YAML.
func YAML(root *trace.Operation) ([]byte, error) {
	doc, err := From(root)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}
