package arith

import "fmt"

// Binding powers for the binary operators; higher binds tighter. Unary
// minus is handled as a prefix in parseUnary and always binds tighter
// than any binary operator.
func binaryBinding(k tokenKind) (bp int, op BinaryOp, ok bool) {
	switch k {
	case tokenPlus:
		return 1, OpAdd, true
	case tokenMinus:
		return 1, OpSub, true
	case tokenStar:
		return 2, OpMul, true
	case tokenSlash:
		return 2, OpDiv, true
	default:
		return 0, 0, false
	}
}

// parser consumes an EOF-terminated token sequence with precedence
// climbing and produces the formula tree.
type parser struct {
	toks []token
	pos  int
}

// parse builds the tree for the whole token sequence. Anything left
// over after one complete expression is a *ParseError.
func parse(toks []token) (Node, error) {
	p := &parser{toks: toks}
	root, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, &ParseError{Want: "operator or end of input", Got: tok.describe(), Col: tok.col}
	}
	return root, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

// next returns the current token and moves past it. The EOF token is
// sticky so the parser can never run off the end of the slice.
func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

// parseExpr parses a subexpression whose binary operators all bind at
// least as tightly as minBP. Left associativity comes from climbing the
// right side with bp+1.
func (p *parser) parseExpr(minBP int) (Node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		bp, op, ok := binaryBinding(p.peek().kind)
		if !ok || bp < minBP {
			return lhs, nil
		}
		p.next()

		rhs, err := p.parseExpr(bp + 1)
		if err != nil {
			return nil, err
		}
		lhs = &BinaryExpr{Op: op, Left: lhs, Right: rhs}
	}
}

func (p *parser) parseUnary() (Node, error) {
	if p.peek().kind == tokenMinus {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNumber:
		return &NumberLiteral{Value: tok.num}, nil
	case tokenComponent:
		return &ComponentRef{ID: tok.id}, nil
	case tokenLparen:
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokenRparen {
			return nil, &ParseError{Want: `")"`, Got: closing.describe(), Col: closing.col}
		}
		return inner, nil
	case tokenIdent:
		return p.parseCall(tok)
	default:
		return nil, &ParseError{Want: "operand", Got: tok.describe(), Col: tok.col}
	}
}

// parseCall parses a function application. The name token has already
// been consumed.
func (p *parser) parseCall(name token) (Node, error) {
	fn, ok := lookupFunc(name.text)
	if !ok {
		return nil, &ParseError{
			Want: "MIN, MAX, or COALESCE",
			Got:  fmt.Sprintf("identifier %q", name.text),
			Col:  name.col,
		}
	}

	if open := p.next(); open.kind != tokenLparen {
		return nil, &ParseError{Want: `"("`, Got: open.describe(), Col: open.col}
	}

	var args []Node
	for {
		arg, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		sep := p.next()
		if sep.kind == tokenComma {
			continue
		}
		if sep.kind == tokenRparen {
			return &CallExpr{Fn: fn, Args: args}, nil
		}
		return nil, &ParseError{Want: `"," or ")"`, Got: sep.describe(), Col: sep.col}
	}
}
