package tracer

import (
	"fmt"
	"strings"

	"github.com/form1040/taxengine/pkg/money"
)

// TraceNode is one node of a dependency graph rooted at a requested
// nodeId, with its direct inputs resolved recursively.
type TraceNode struct {
	Value  money.TracedValue
	Inputs []*TraceNode
}

// TraceGraph is the result of BuildTrace: a root node plus its full
// transitive dependency closure.
type TraceGraph struct {
	Root *TraceNode
}

// BuildTrace produces a graph whose root is the requested node and whose
// edges are the Computed source's Inputs lists, resolved transitively.
// Returns an error (never panics) if nodeId isn't present in the store -
// that is a caller-contract violation, not an arithmetic one.
func BuildTrace(store *Store, nodeID string) (*TraceGraph, error) {
	visiting := make(map[string]*TraceNode)
	root, err := buildNode(store, nodeID, visiting)
	if err != nil {
		return nil, err
	}
	return &TraceGraph{Root: root}, nil
}

func buildNode(store *Store, nodeID string, seen map[string]*TraceNode) (*TraceNode, error) {
	if n, ok := seen[nodeID]; ok {
		return n, nil
	}
	v, ok := store.Get(nodeID)
	if !ok {
		return nil, fmt.Errorf("tracer: nodeId %q not found in store", nodeID)
	}
	node := &TraceNode{Value: v}
	seen[nodeID] = node
	for _, dep := range v.Source.Inputs {
		child, err := buildNode(store, dep, seen)
		if err != nil {
			return nil, err
		}
		node.Inputs = append(node.Inputs, child)
	}
	return node, nil
}

// ExplainLine walks the graph rooted at nodeId and yields a human-readable
// multi-sentence explanation. Every leaf resolves to an explicit input
// reference or a documented literal reason; the engine-wide invariant is
// that no rendered explanation ever contains the substring "Unknown".
func ExplainLine(store *Store, nodeID string) (string, error) {
	graph, err := BuildTrace(store, nodeID)
	if err != nil {
		return "", err
	}
	var sentences []string
	written := make(map[string]bool)
	explainNode(graph.Root, &sentences, written)
	return strings.Join(sentences, " "), nil
}

func explainNode(n *TraceNode, sentences *[]string, written map[string]bool) {
	if written[n.Value.NodeID] {
		return
	}
	written[n.Value.NodeID] = true
	*sentences = append(*sentences, sentenceFor(n))
	for _, child := range n.Inputs {
		explainNode(child, sentences, written)
	}
}

func sentenceFor(n *TraceNode) string {
	v := n.Value
	amount := v.Amount.String()
	switch v.Source.Kind {
	case money.SourceInput:
		return fmt.Sprintf("%s = $%s (from %s).", v.NodeID, amount, v.Source.Ref)
	case money.SourceLiteral:
		return fmt.Sprintf("%s = $%s (%s).", v.NodeID, amount, v.Source.Reason)
	default:
		return fmt.Sprintf("%s = $%s = %s.", v.NodeID, amount, describeComputed(n))
	}
}

func describeComputed(n *TraceNode) string {
	op := n.Value.Source.Op
	operands := make([]string, len(n.Inputs))
	for i, child := range n.Inputs {
		operands[i] = fmt.Sprintf("%s ($%s)", child.Value.NodeID, child.Value.Amount.String())
	}
	switch op {
	case "sum":
		if len(operands) == 0 {
			return "0 (no operands)"
		}
		return strings.Join(operands, " + ")
	case "sub":
		if len(operands) == 2 {
			return fmt.Sprintf("%s - %s", operands[0], operands[1])
		}
	case "max":
		return fmt.Sprintf("max(%s)", strings.Join(operands, ", "))
	case "min":
		return fmt.Sprintf("min(%s)", strings.Join(operands, ", "))
	case "clampZero":
		return fmt.Sprintf("max(0, %s)", strings.Join(operands, ", "))
	case "mul", "applyRatio":
		return fmt.Sprintf("%s times a rate", strings.Join(operands, ", "))
	case "roundDollar":
		return fmt.Sprintf("%s rounded to the nearest dollar", strings.Join(operands, ", "))
	case "rebind":
		return fmt.Sprintf("%s (relabeled)", strings.Join(operands, ", "))
	}
	return strings.Join(operands, ", ")
}
