/*
Package graph flattens an Operation's transitive history into a deduplicated
node/edge list and renders it for visualization.

Extraction walks history edges from a chosen root in discovery order,
deduplicating nodes by identity, so a node consumed twice (x + x) appears
once. The resulting ordering is deterministic for a fixed construction
sequence, which makes the rendered output reproducible byte for byte.

Two renderers are provided: Graphviz DOT and Mermaid flowchart syntax.
*/
package graph
