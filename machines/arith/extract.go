package arith

// componentIDs walks the tree depth-first, left to right, and collects
// the distinct component ids in order of first appearance. The result
// is deterministic for a given tree.
func componentIDs(root Node) []int64 {
	ids := make([]int64, 0, 4)
	seen := make(map[int64]struct{})

	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *NumberLiteral:
		case *ComponentRef:
			if _, ok := seen[n.ID]; !ok {
				seen[n.ID] = struct{}{}
				ids = append(ids, n.ID)
			}
		case *UnaryExpr:
			walk(n.Operand)
		case *BinaryExpr:
			walk(n.Left)
			walk(n.Right)
		case *CallExpr:
			for _, arg := range n.Args {
				walk(arg)
			}
		}
	}
	walk(root)
	return ids
}

// containsCall reports whether the tree applies any built-in function.
func containsCall(root Node) bool {
	switch n := root.(type) {
	case *UnaryExpr:
		return containsCall(n.Operand)
	case *BinaryExpr:
		return containsCall(n.Left) || containsCall(n.Right)
	case *CallExpr:
		return true
	default:
		return false
	}
}
