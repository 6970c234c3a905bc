package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Grammar node types this package matches on.
const (
	nodeCallExpression   = "call_expression"
	nodeCallSuffix       = "call_suffix"
	nodeValueArguments   = "value_arguments"
	nodeLambdaLiteral    = "lambda_literal"
	nodeLambdaParameter  = "lambda_parameter"
	nodeSimpleIdentifier = "simple_identifier"
)

// ClosureParameter is one closure parameter declaration.
type ClosureParameter struct {
	Offset int // byte offset where the declaration starts
	Name   string
}

// CallExpression describes one call site. NameOffset/NameLength cover
// the callee expression (for "[1, 2].map { ... }" that is "[1, 2].map").
// BodyOffset/BodyLength cover the trailing closure body when one exists,
// otherwise the region between the argument parentheses; calls with an
// empty body region report BodyLength 0. Parameters lists the closure
// parameter declarations belonging to this call in source order. Nested
// calls are extracted separately and own their parameters.
type CallExpression struct {
	NameOffset int
	NameLength int
	BodyOffset int
	BodyLength int
	Parameters []ClosureParameter
}

func extractCalls(root *sitter.Node, content []byte) []CallExpression {
	var calls []CallExpression
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == nodeCallExpression {
			if call, ok := callFromNode(n, content); ok {
				calls = append(calls, call)
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return calls
}

// callFromNode maps one call_expression node to a CallExpression. Nodes
// missing the pieces the rules need (no callee, no call suffix, usually
// from error recovery) report ok == false and are dropped.
func callFromNode(n *sitter.Node, content []byte) (CallExpression, bool) {
	count := int(n.NamedChildCount())
	if count < 2 {
		return CallExpression{}, false
	}
	callee := n.NamedChild(0)
	suffix := n.NamedChild(count - 1)
	if callee == nil || suffix == nil || suffix.Type() != nodeCallSuffix {
		return CallExpression{}, false
	}

	call := CallExpression{
		NameOffset: int(callee.StartByte()),
		NameLength: int(callee.EndByte() - callee.StartByte()),
	}

	// The body region is the trailing closure's interior when the call
	// has one, else the interior of the argument parentheses.
	if region := directChild(suffix, nodeLambdaLiteral); region != nil {
		call.BodyOffset, call.BodyLength = interior(region)
	} else if region := directChild(suffix, nodeValueArguments); region != nil {
		call.BodyOffset, call.BodyLength = interior(region)
	}

	call.Parameters = collectParameters(n, content)
	return call, true
}

// interior returns the byte range strictly inside a delimited node,
// excluding its opening and closing delimiter bytes.
func interior(n *sitter.Node) (offset, length int) {
	start, end := int(n.StartByte()), int(n.EndByte())
	if end-start <= 2 {
		return start + 1, 0
	}
	return start + 1, end - start - 2
}

func directChild(n *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// collectParameters gathers the closure parameter declarations owned by
// this call, in source order. The walk descends through argument lists
// and closure literals but stops at nested call expressions: a nested
// call is extracted on its own and its parameters belong to it.
func collectParameters(call *sitter.Node, content []byte) []ClosureParameter {
	var params []ClosureParameter
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			switch child.Type() {
			case nodeCallExpression:
				continue
			case nodeLambdaParameter:
				params = append(params, ClosureParameter{
					Offset: int(child.StartByte()),
					Name:   parameterName(child, content),
				})
			default:
				walk(child)
			}
		}
	}
	walk(call)
	return params
}

// parameterName extracts the declared identifier. Shorthand parameters
// are bare identifiers; parenthesized declarations carry the identifier
// as their first nested simple_identifier. Anonymous declarations fall
// back to the node's source text.
func parameterName(n *sitter.Node, content []byte) string {
	if n.Type() == nodeSimpleIdentifier {
		return string(content[n.StartByte():n.EndByte()])
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if name := parameterName(n.Child(i), content); name != "" {
			return name
		}
	}
	if n.Type() == nodeLambdaParameter {
		return string(content[n.StartByte():n.EndByte()])
	}
	return ""
}
