package arith

import "fmt"

// tokenKind classifies a single lexed token.
type tokenKind int8

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenComponent
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLparen
	tokenRparen
	tokenComma
)

// token is one lexical item. Col is the 1-based rune column of the
// token's first character in the formula source.
type token struct {
	kind tokenKind
	text string
	col  int

	// num holds the parsed value of a tokenNumber, id the parsed id of
	// a tokenComponent. Zero otherwise.
	num float64
	id  int64
}

// describe renders the token for parser error messages.
func (t token) describe() string {
	switch t.kind {
	case tokenEOF:
		return "end of input"
	case tokenNumber:
		return fmt.Sprintf("number %q", t.text)
	case tokenComponent:
		return fmt.Sprintf("component %q", t.text)
	case tokenIdent:
		return fmt.Sprintf("identifier %q", t.text)
	default:
		return fmt.Sprintf("%q", t.text)
	}
}
