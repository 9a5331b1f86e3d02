package arith

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is a single node of a parsed formula tree. The concrete types
// are *NumberLiteral, *ComponentRef, *UnaryExpr, *BinaryExpr and
// *CallExpr; the unexported marker method closes the set. Nodes are
// never mutated after parsing.
type Node interface {
	exprNode()
}

// BinaryOp enumerates the binary arithmetic operators.
type BinaryOp int8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("BinaryOp(%d)", int8(op))
	}
}

// Func enumerates the built-in formula functions.
type Func int8

const (
	FuncMin Func = iota
	FuncMax
	FuncCoalesce
)

func (f Func) String() string {
	switch f {
	case FuncMin:
		return "MIN"
	case FuncMax:
		return "MAX"
	case FuncCoalesce:
		return "COALESCE"
	default:
		return fmt.Sprintf("Func(%d)", int8(f))
	}
}

// lookupFunc resolves a function name, case-insensitively.
func lookupFunc(name string) (Func, bool) {
	switch strings.ToUpper(name) {
	case "MIN":
		return FuncMin, true
	case "MAX":
		return FuncMax, true
	case "COALESCE":
		return FuncCoalesce, true
	default:
		return 0, false
	}
}

// NumberLiteral is a numeric constant.
type NumberLiteral struct {
	Value float64
}

// ComponentRef references an external component reading by id.
type ComponentRef struct {
	ID int64
}

// UnaryExpr negates its operand.
type UnaryExpr struct {
	Operand Node
}

// BinaryExpr applies a binary operator to two subtrees.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

// CallExpr applies a built-in function to one or more arguments.
type CallExpr struct {
	Fn   Func
	Args []Node
}

func (*NumberLiteral) exprNode() {}
func (*ComponentRef) exprNode()  {}
func (*UnaryExpr) exprNode()     {}
func (*BinaryExpr) exprNode()    {}
func (*CallExpr) exprNode()      {}

// Rendering precedence, mirroring the parser's binding powers. Atoms
// never need parentheses; a child is wrapped only when its level is
// below what its position requires.
const (
	precAdditive = iota + 1
	precMultiplicative
	precUnary
	precAtom
)

func nodePrec(n Node) int {
	switch n := n.(type) {
	case *BinaryExpr:
		if n.Op == OpMul || n.Op == OpDiv {
			return precMultiplicative
		}
		return precAdditive
	case *UnaryExpr:
		return precUnary
	default:
		return precAtom
	}
}

// renderNode writes n, parenthesized when its precedence is below the
// minimum its position requires.
func renderNode(sb *strings.Builder, n Node, minPrec int) {
	if nodePrec(n) < minPrec {
		sb.WriteByte('(')
		renderNode(sb, n, 0)
		sb.WriteByte(')')
		return
	}

	switch n := n.(type) {
	case *NumberLiteral:
		sb.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *ComponentRef:
		sb.WriteByte('#')
		sb.WriteString(strconv.FormatInt(n.ID, 10))
	case *UnaryExpr:
		sb.WriteByte('-')
		renderNode(sb, n.Operand, precUnary)
	case *BinaryExpr:
		prec := nodePrec(n)
		renderNode(sb, n.Left, prec)
		sb.WriteByte(' ')
		sb.WriteString(n.Op.String())
		sb.WriteByte(' ')
		// The right side binds one level tighter, so an equal-precedence
		// right subtree keeps its parentheses ("10 - (2 - 3)").
		renderNode(sb, n.Right, prec+1)
	case *CallExpr:
		sb.WriteString(n.Fn.String())
		sb.WriteByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			renderNode(sb, arg, 0)
		}
		sb.WriteByte(')')
	}
}

// render returns the canonical text of a tree: single-spaced operators,
// upper-case function names and parentheses only where grouping departs
// from operator precedence. The result parses back to the same tree.
func render(n Node) string {
	var sb strings.Builder
	renderNode(&sb, n, 0)
	return sb.String()
}
