package ast

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// Node is a parsed formula. A node is a constant (float64), a variable (its name
// as a string constant) xOR a function applied to its children.
// Nodes are never modified once built: the same tree can be evaluated any number of times.
type Node struct {
	Function Function
	Constant any

	Children []Node
}

func NewNodeConstant(value float64) Node {
	return Node{Function: FUNC_CONSTANT, Constant: value}
}

func NewNodeVariable(name string) Node {
	return Node{Function: FUNC_VARIABLE, Constant: name}
}

func NewNodeUnaryMinus(operand Node) Node {
	return Node{Function: FUNC_UNARY_MINUS}.AddChild(operand)
}

func NewNodeBinary(function Function, left, right Node) Node {
	return Node{Function: function}.AddChild(left).AddChild(right)
}

func NewNodeCall(function Function, args ...Node) Node {
	return Node{Function: function, Children: slices.Clone(args)}
}

func (node Node) AddChild(child Node) Node {
	node.Children = append(slices.Clip(node.Children), child)
	return node
}

func (node Node) DebugString() string {
	childrenDebugString := fmt.Sprintf("with %d children", len(node.Children))
	switch node.Function {
	case FUNC_CONSTANT:
		return fmt.Sprintf("Node Constant %v %s", node.Constant, childrenDebugString)
	case FUNC_VARIABLE:
		return fmt.Sprintf("Node Variable %v %s", node.Constant, childrenDebugString)
	}
	return fmt.Sprintf("Node %s %s", node.Function.DebugString(), childrenDebugString)
}

func (node Node) VariableName() (string, bool) {
	if node.Function != FUNC_VARIABLE {
		return "", false
	}
	name, ok := node.Constant.(string)
	return name, ok
}

func (node Node) ConstantValue() (float64, bool) {
	if node.Function != FUNC_CONSTANT {
		return 0, false
	}
	value, ok := node.Constant.(float64)
	return value, ok
}

// Variables returns the names of every variable referenced by the formula.
func (node Node) Variables() *set.Set[string] {
	names := set.New[string](0)
	var walk func(Node)
	walk = func(n Node) {
		if name, ok := n.VariableName(); ok {
			names.Insert(name)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(node)
	return names
}

// SortedVariables is Variables in lexical order.
func (node Node) SortedVariables() []string {
	names := node.Variables().Slice()
	slices.Sort(names)
	return names
}

const (
	precedenceComparison = iota + 1
	precedenceAddSub
	precedenceMulDiv
	precedenceUnary
	precedencePrimary
)

func (node Node) precedence() int {
	switch node.Function {
	case FUNC_ADD, FUNC_SUBTRACT:
		return precedenceAddSub
	case FUNC_MULTIPLY, FUNC_DIVIDE:
		return precedenceMulDiv
	case FUNC_UNARY_MINUS:
		return precedenceUnary
	}
	if node.Function.IsComparison() {
		return precedenceComparison
	}
	return precedencePrimary
}

// String renders the formula back to text, adding parentheses only where precedence needs them.
// Parsing the text again gives an equal tree for trees built by the parser. A negative constant
// built by hand renders as "(-5)", which parses back as a unary minus over 5.
func (node Node) String() string {
	var sb strings.Builder
	node.write(&sb)
	return sb.String()
}

func (node Node) write(sb *strings.Builder) {
	switch node.Function {
	case FUNC_CONSTANT:
		value, _ := node.ConstantValue()
		if value < 0 {
			sb.WriteString("(-")
			sb.WriteString(strconv.FormatFloat(-value, 'f', -1, 64))
			sb.WriteString(")")
			return
		}
		sb.WriteString(strconv.FormatFloat(value, 'f', -1, 64))
		return
	case FUNC_VARIABLE:
		name, _ := node.VariableName()
		sb.WriteString(name)
		return
	case FUNC_UNARY_MINUS:
		sb.WriteString("-")
		if len(node.Children) == 1 {
			writeChild(sb, node.Children[0], node.Children[0].precedence() < precedencePrimary)
		}
		return
	}

	attributes, err := node.Function.Attributes()
	if err != nil {
		sb.WriteString("?")
		return
	}

	if attributes.AstName != "" {
		sb.WriteString(attributes.AstName)
		sb.WriteString("(")
		for i, child := range node.Children {
			if i > 0 {
				sb.WriteString(", ")
			}
			child.write(sb)
		}
		sb.WriteString(")")
		return
	}

	if len(node.Children) != 2 {
		sb.WriteString("?")
		return
	}
	p := node.precedence()
	left, right := node.Children[0], node.Children[1]
	leftNeedsParens := left.precedence() < p || (p == precedenceComparison && left.precedence() == p)
	writeChild(sb, left, leftNeedsParens)
	sb.WriteString(" ")
	sb.WriteString(attributes.Operator)
	sb.WriteString(" ")
	writeChild(sb, right, right.precedence() <= p)
}

func writeChild(sb *strings.Builder, child Node, parens bool) {
	if parens {
		sb.WriteString("(")
	}
	child.write(sb)
	if parens {
		sb.WriteString(")")
	}
}
