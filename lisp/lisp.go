// Package lisp implements the risp language: a tagged-union expression
// model, a chain of mutable scopes, and a recursive evaluator in which
// every procedure receives its arguments unevaluated.
package lisp

import (
	"strconv"
	"strings"
)

// LType describes the type of an LVal.
type LType uint

// Possible LType values. The declaration order of the value variants fixes
// the structural order used by Compare: bools sort before symbols, symbols
// before numbers, numbers before lists, and lists before lambdas.
const (
	LInvalid LType = iota
	LBool
	LSymbol
	LNumber
	LSExpr
	LLambda
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LBool:    "bool",
	LSymbol:  "symbol",
	LNumber:  "number",
	LSExpr:   "list",
	LLambda:  "lambda",
}

func (t LType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LVal is a lisp value. Type determines which of the remaining fields are
// meaningful.
type LVal struct {
	Type LType

	// Bool is the value of an LBool.
	Bool bool

	// Str is the name of an LSymbol.
	Str string

	// Num is the value of an LNumber.
	Num float64

	// Cells are the elements of an LSExpr.
	Cells []*LVal

	// Formals and Body define an LLambda. Formals is expected to be an
	// LSExpr of symbols but is not inspected until the lambda is applied.
	// Lambdas capture no environment.
	Formals *LVal
	Body    *LVal
}

// Bool returns the boolean value b.
func Bool(b bool) *LVal {
	return &LVal{Type: LBool, Bool: b}
}

// Symbol returns a symbol with the given name.
func Symbol(s string) *LVal {
	return &LVal{Type: LSymbol, Str: s}
}

// Number returns a numeric value equal to x.
func Number(x float64) *LVal {
	return &LVal{Type: LNumber, Num: x}
}

// SExpr returns a list containing the given cells.
func SExpr(cells []*LVal) *LVal {
	return &LVal{Type: LSExpr, Cells: cells}
}

// Nil returns an empty list.
func Nil() *LVal {
	return SExpr(nil)
}

// Lambda returns a function value with the given formal parameters and
// body.
func Lambda(formals, body *LVal) *LVal {
	return &LVal{Type: LLambda, Formals: formals, Body: body}
}

// Copy returns a deep copy of v.
func (v *LVal) Copy() *LVal {
	if v == nil {
		return nil
	}
	cp := &LVal{}
	*cp = *v
	cp.Cells = copyCells(v.Cells)
	cp.Formals = v.Formals.Copy()
	cp.Body = v.Body.Copy()
	return cp
}

func copyCells(cells []*LVal) []*LVal {
	if len(cells) == 0 {
		return nil
	}
	cp := make([]*LVal, len(cells))
	for i := range cells {
		cp[i] = cells[i].Copy()
	}
	return cp
}

// String renders v in its display syntax. List elements are joined with
// commas, which intentionally differs from the whitespace-separated input
// syntax.
func (v *LVal) String() string {
	switch v.Type {
	case LBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case LSymbol:
		return v.Str
	case LNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case LSExpr:
		var buf strings.Builder
		buf.WriteByte('(')
		for i, c := range v.Cells {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(c.String())
		}
		buf.WriteByte(')')
		return buf.String()
	case LLambda:
		return v.Formals.String() + " " + v.Body.String()
	}
	return lvalTypeStrings[LInvalid]
}

// Equal returns true if v and u are structurally equal. Numbers compare by
// value, so NaN is never equal to itself.
func (v *LVal) Equal(u *LVal) bool {
	if v.Type != u.Type {
		return false
	}
	switch v.Type {
	case LBool:
		return v.Bool == u.Bool
	case LSymbol:
		return v.Str == u.Str
	case LNumber:
		return v.Num == u.Num
	case LSExpr:
		if len(v.Cells) != len(u.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(u.Cells[i]) {
				return false
			}
		}
		return true
	case LLambda:
		return v.Formals.Equal(u.Formals) && v.Body.Equal(u.Body)
	}
	return false
}

// Compare orders v against u structurally. It returns a negative, zero, or
// positive value like strings.Compare. Values of different variants order
// by variant rank; values of the same variant order by content, with lists
// ordered lexicographically and lambdas ordered by formals then body. The
// second return is false when the pair has no defined order, which happens
// whenever a NaN is involved.
func (v *LVal) Compare(u *LVal) (int, bool) {
	if v.Type != u.Type {
		if v.Type < u.Type {
			return -1, true
		}
		return 1, true
	}
	switch v.Type {
	case LBool:
		switch {
		case v.Bool == u.Bool:
			return 0, true
		case u.Bool:
			return -1, true
		}
		return 1, true
	case LSymbol:
		return strings.Compare(v.Str, u.Str), true
	case LNumber:
		switch {
		case v.Num < u.Num:
			return -1, true
		case v.Num > u.Num:
			return 1, true
		case v.Num == u.Num:
			return 0, true
		}
		return 0, false
	case LSExpr:
		n := len(v.Cells)
		if len(u.Cells) < n {
			n = len(u.Cells)
		}
		for i := 0; i < n; i++ {
			cmp, ok := v.Cells[i].Compare(u.Cells[i])
			if !ok {
				return 0, false
			}
			if cmp != 0 {
				return cmp, true
			}
		}
		return len(v.Cells) - len(u.Cells), true
	case LLambda:
		cmp, ok := v.Formals.Compare(u.Formals)
		if !ok || cmp != 0 {
			return cmp, ok
		}
		return v.Body.Compare(u.Body)
	}
	return 0, false
}
