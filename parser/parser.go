// Package parser reads risp source text into lisp expressions.
//
// The lexical grammar has no strings, comments, or escapes: parentheses
// are padded with spaces and the text is split on whitespace runs, so a
// parenthesis token is always isolated and no other token contains one.
package parser

import (
	"strconv"
	"strings"

	"github.com/garbagetrash/risp/lisp"
)

// Tokenize splits text into tokens.
func Tokenize(text string) []string {
	text = strings.ReplaceAll(text, "(", " ( ")
	text = strings.ReplaceAll(text, ")", " ) ")
	return strings.Fields(text)
}

// TokenCount returns the number of tokens v consumed when it was read: two
// parens plus the spans of its children for a list, one for an atom. A
// reader advances its token cursor by exactly this count after reading a
// nested form, which is what lets ReadFromTokens slice the stream instead
// of keeping an explicit parse stack.
func TokenCount(v *lisp.LVal) int {
	if v.Type == lisp.LSExpr {
		n := 2
		for _, c := range v.Cells {
			n += TokenCount(c)
		}
		return n
	}
	return 1
}

// Parse reads one expression from text.
func Parse(text string) (*lisp.LVal, error) {
	return ReadFromTokens(Tokenize(text))
}

// ParseProgram reads every expression in text, in order.
func ParseProgram(text string) ([]*lisp.LVal, error) {
	tokens := Tokenize(text)
	var forms []*lisp.LVal
	for len(tokens) > 0 {
		v, err := ReadFromTokens(tokens)
		if err != nil {
			return nil, err
		}
		forms = append(forms, v)
		tokens = tokens[TokenCount(v):]
	}
	return forms, nil
}

// ReadFromTokens reads one expression from the front of tokens. Trailing
// tokens beyond the first complete expression are left for the caller,
// which can locate them with TokenCount.
func ReadFromTokens(tokens []string) (*lisp.LVal, error) {
	if len(tokens) == 0 {
		return nil, lisp.ErrorConditionf(lisp.LexError, "unexpected end of input")
	}
	token, rest := tokens[0], tokens[1:]
	switch token {
	case "(":
		var cells []*lisp.LVal
		for {
			if len(rest) == 0 {
				return nil, lisp.ErrorConditionf(lisp.LexError, "unmatched `(`")
			}
			if rest[0] == ")" {
				return lisp.SExpr(cells), nil
			}
			c, err := ReadFromTokens(rest)
			if err != nil {
				return nil, err
			}
			cells = append(cells, c)
			rest = rest[TokenCount(c):]
		}
	case ")":
		return nil, lisp.ErrorConditionf(lisp.LexError, "unexpected `)`")
	default:
		return parseAtom(token), nil
	}
}

// parseAtom interprets a token as a literal. The words true and false are
// reserved and never become symbols; a token that parses as a float is a
// number; anything else is a symbol.
func parseAtom(token string) *lisp.LVal {
	switch token {
	case "true":
		return lisp.Bool(true)
	case "false":
		return lisp.Bool(false)
	}
	if x, err := strconv.ParseFloat(token, 64); err == nil {
		return lisp.Number(x)
	}
	return lisp.Symbol(token)
}
