package arith

import (
	"errors"
	"fmt"
	"math"
)

// evalNode computes the value of a subtree against the supplied
// readings. Errors abort the walk; the tree itself is untouched and
// stays valid for later calls.
func evalNode(n Node, values map[int64]float64) (float64, error) {
	switch n := n.(type) {
	case *NumberLiteral:
		return n.Value, nil

	case *ComponentRef:
		v, ok := values[n.ID]
		if !ok {
			return 0, &MissingComponentError{ID: n.ID}
		}
		return v, nil

	case *UnaryExpr:
		v, err := evalNode(n.Operand, values)
		if err != nil {
			return 0, err
		}
		return -v, nil

	case *BinaryExpr:
		left, err := evalNode(n.Left, values)
		if err != nil {
			return 0, err
		}
		right, err := evalNode(n.Right, values)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case OpAdd:
			return left + right, nil
		case OpSub:
			return left - right, nil
		case OpMul:
			return left * right, nil
		case OpDiv:
			// Catches -0.0 as well; IEEE division must never leak an
			// infinity from a zero divisor.
			if right == 0 {
				return 0, ErrDivisionByZero
			}
			return left / right, nil
		}
		return 0, fmt.Errorf("unknown binary operator: %v", n.Op)

	case *CallExpr:
		return evalCall(n, values)
	}

	return 0, fmt.Errorf("unknown node type: %T", n)
}

func evalCall(call *CallExpr, values map[int64]float64) (float64, error) {
	switch call.Fn {
	case FuncCoalesce:
		// Arguments are tried left to right; a missing reading moves on
		// to the next argument, every other error aborts immediately.
		var lastErr error
		for _, arg := range call.Args {
			v, err := evalNode(arg, values)
			if err == nil {
				return v, nil
			}
			var missing *MissingComponentError
			if !errors.As(err, &missing) {
				return 0, err
			}
			lastErr = err
		}
		return 0, lastErr

	case FuncMin, FuncMax:
		acc, err := evalNode(call.Args[0], values)
		if err != nil {
			return 0, err
		}
		for _, arg := range call.Args[1:] {
			v, err := evalNode(arg, values)
			if err != nil {
				return 0, err
			}
			if call.Fn == FuncMin {
				acc = math.Min(acc, v)
			} else {
				acc = math.Max(acc, v)
			}
		}
		return acc, nil
	}

	return 0, fmt.Errorf("unknown function: %v", call.Fn)
}
