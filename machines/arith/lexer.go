package arith

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// lexer scans formula source into a flat token sequence.
type lexer struct {
	src string
	pos int // byte offset of the next rune
	col int // 1-based rune column of the next rune
}

// lex tokenizes the whole source. The returned slice always ends with a
// tokenEOF entry. Source that cannot be tokenized returns a *LexError.
func lex(src string) ([]token, error) {
	lx := &lexer{src: src, col: 1}
	toks := make([]token, 0, 16)
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

func (lx *lexer) peek() (rune, int) {
	if lx.pos >= len(lx.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(lx.src[lx.pos:])
}

func (lx *lexer) advance(size int) {
	lx.pos += size
	lx.col++
}

func (lx *lexer) next() (token, error) {
	for {
		r, size := lx.peek()
		if size == 0 || !unicode.IsSpace(r) {
			break
		}
		lx.advance(size)
	}

	startCol := lx.col
	r, size := lx.peek()
	if size == 0 {
		return token{kind: tokenEOF, col: startCol}, nil
	}

	switch {
	case isDigit(r) || r == '.':
		return lx.scanNumber(startCol)
	case r == '#':
		return lx.scanComponent(startCol)
	case isLetter(r):
		return lx.scanIdent(startCol)
	}

	lx.advance(size)
	switch r {
	case '+':
		return token{kind: tokenPlus, text: "+", col: startCol}, nil
	case '-':
		return token{kind: tokenMinus, text: "-", col: startCol}, nil
	case '*':
		return token{kind: tokenStar, text: "*", col: startCol}, nil
	case '/':
		return token{kind: tokenSlash, text: "/", col: startCol}, nil
	case '(':
		return token{kind: tokenLparen, text: "(", col: startCol}, nil
	case ')':
		return token{kind: tokenRparen, text: ")", col: startCol}, nil
	case ',':
		return token{kind: tokenComma, text: ",", col: startCol}, nil
	}

	return token{}, &LexError{Text: string(r), Col: startCol}
}

// scanNumber consumes a decimal literal: digits with at most one dot,
// at least one digit overall. Exponents and signs are not part of the
// literal; negation is a parser concern.
func (lx *lexer) scanNumber(startCol int) (token, error) {
	start := lx.pos
	sawDigit := false
	sawDot := false
	for {
		r, size := lx.peek()
		if size == 0 {
			break
		}
		if isDigit(r) {
			sawDigit = true
			lx.advance(size)
			continue
		}
		if r == '.' && !sawDot {
			sawDot = true
			lx.advance(size)
			continue
		}
		break
	}

	text := lx.src[start:lx.pos]
	if !sawDigit {
		return token{}, &LexError{Text: text, Col: startCol}
	}

	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, &LexError{Text: text, Col: startCol}
	}

	return token{kind: tokenNumber, text: text, col: startCol, num: num}, nil
}

// scanComponent consumes a component reference: '#' immediately
// followed by one or more digits.
func (lx *lexer) scanComponent(startCol int) (token, error) {
	start := lx.pos
	lx.advance(1) // '#'
	digits := lx.pos
	for {
		r, size := lx.peek()
		if size == 0 || !isDigit(r) {
			break
		}
		lx.advance(size)
	}

	text := lx.src[start:lx.pos]
	if lx.pos == digits {
		return token{}, &LexError{Text: text, Col: startCol}
	}

	id, err := strconv.ParseInt(lx.src[digits:lx.pos], 10, 64)
	if err != nil {
		return token{}, &LexError{Text: text, Col: startCol}
	}

	return token{kind: tokenComponent, text: text, col: startCol, id: id}, nil
}

func (lx *lexer) scanIdent(startCol int) (token, error) {
	start := lx.pos
	for {
		r, size := lx.peek()
		if size == 0 || !isLetter(r) {
			break
		}
		lx.advance(size)
	}
	return token{kind: tokenIdent, text: lx.src[start:lx.pos], col: startCol}, nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
