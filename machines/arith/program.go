package arith

import "slices"

// Values maps component ids to their readings for one evaluation call.
type Values = map[int64]float64

// Program is an immutable, parsed formula. It is created by Parse,
// carries no mutable state, and is safe for concurrent use; evaluation
// walks the cached tree and never re-reads the source.
type Program struct {
	source     string
	root       Node
	components []int64
}

// Parse tokenizes and parses the formula source into a Program. The
// component ids the formula references are extracted once here and
// cached on the Program. Malformed input returns a *LexError or
// *ParseError and no Program.
func Parse(source string) (*Program, error) {
	toks, err := lex(source)
	if err != nil {
		return nil, err
	}

	root, err := parse(toks)
	if err != nil {
		return nil, err
	}

	return &Program{
		source:     source,
		root:       root,
		components: componentIDs(root),
	}, nil
}

// Source returns the original formula text.
func (p *Program) Source() string {
	return p.source
}

// Components returns the distinct component ids referenced by the
// formula, in order of first appearance. The caller gets a copy; the
// cached slice is never exposed.
func (p *Program) Components() []int64 {
	out := make([]int64, len(p.components))
	copy(out, p.components)
	return out
}

// References reports whether the formula reads the given component.
func (p *Program) References(id int64) bool {
	return slices.Contains(p.components, id)
}

// Evaluate computes the formula against the given readings. Every
// referenced component must have an entry in values; a missing id
// returns a *MissingComponentError and a zero divisor returns
// ErrDivisionByZero. An error aborts only this call, the Program stays
// valid.
func (p *Program) Evaluate(values Values) (float64, error) {
	return evalNode(p.root, values)
}

// String returns the canonical rendering of the parsed formula. The
// source text may carry arbitrary spacing, casing and redundant
// parentheses; the rendering normalizes all three.
func (p *Program) String() string {
	return render(p.root)
}
