package lisp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLValString(t *testing.T) {
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "false", Bool(false).String())
	assert.Equal(t, "x", Symbol("x").String())
	assert.Equal(t, "7", Number(7).String())
	assert.Equal(t, "-12", Number(-12).String())
	assert.Equal(t, "2.5", Number(2.5).String())
	assert.Equal(t, "()", Nil().String())
	assert.Equal(t, "(+,10,5)", SExpr([]*LVal{Symbol("+"), Number(10), Number(5)}).String())
	assert.Equal(t, "((1),2)", SExpr([]*LVal{SExpr([]*LVal{Number(1)}), Number(2)}).String())
	fun := Lambda(
		SExpr([]*LVal{Symbol("y")}),
		SExpr([]*LVal{Symbol("+"), Symbol("x"), Symbol("y")}),
	)
	assert.Equal(t, "(y) (+,x,y)", fun.String())
}

func TestLValEqual(t *testing.T) {
	assert.True(t, Bool(true).Equal(Bool(true)))
	assert.False(t, Bool(true).Equal(Bool(false)))
	assert.True(t, Symbol("a").Equal(Symbol("a")))
	assert.False(t, Symbol("a").Equal(Symbol("b")))
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Number(2)))
	nan := Number(math.NaN())
	assert.False(t, nan.Equal(nan))

	// different variants are never equal
	assert.False(t, Number(1).Equal(Symbol("1")))
	assert.False(t, Bool(true).Equal(Symbol("true")))

	a := SExpr([]*LVal{Symbol("+"), Number(1), SExpr([]*LVal{Number(2)})})
	b := SExpr([]*LVal{Symbol("+"), Number(1), SExpr([]*LVal{Number(2)})})
	c := SExpr([]*LVal{Symbol("+"), Number(1), SExpr([]*LVal{Number(3)})})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Nil()))

	f1 := Lambda(SExpr([]*LVal{Symbol("x")}), Symbol("x"))
	f2 := Lambda(SExpr([]*LVal{Symbol("x")}), Symbol("x"))
	f3 := Lambda(SExpr([]*LVal{Symbol("y")}), Symbol("y"))
	assert.True(t, f1.Equal(f2))
	assert.False(t, f1.Equal(f3))
}

func TestLValCompareRank(t *testing.T) {
	// ascending structural rank: bool, symbol, number, list, lambda
	ranked := []*LVal{
		Bool(false),
		Bool(true),
		Symbol("a"),
		Symbol("b"),
		Number(1),
		Number(2),
		SExpr([]*LVal{Number(1)}),
		SExpr([]*LVal{Number(1), Number(2)}),
		Lambda(SExpr([]*LVal{Symbol("x")}), Symbol("x")),
	}
	for i := range ranked {
		for j := range ranked {
			cmp, ok := ranked[i].Compare(ranked[j])
			require.True(t, ok, "%s vs %s", ranked[i], ranked[j])
			switch {
			case i < j:
				assert.Negative(t, cmp, "%s vs %s", ranked[i], ranked[j])
			case i > j:
				assert.Positive(t, cmp, "%s vs %s", ranked[i], ranked[j])
			default:
				assert.Zero(t, cmp, "%s vs %s", ranked[i], ranked[j])
			}
		}
	}
}

func TestLValCompareNaN(t *testing.T) {
	_, ok := Number(math.NaN()).Compare(Number(1))
	assert.False(t, ok)
	_, ok = Number(1).Compare(Number(math.NaN()))
	assert.False(t, ok)
	// a NaN buried in a list poisons the comparison
	a := SExpr([]*LVal{Number(math.NaN())})
	b := SExpr([]*LVal{Number(1)})
	_, ok = a.Compare(b)
	assert.False(t, ok)
	// unless an earlier element already decides the order
	a = SExpr([]*LVal{Number(0), Number(math.NaN())})
	b = SExpr([]*LVal{Number(1), Number(1)})
	cmp, ok := a.Compare(b)
	assert.True(t, ok)
	assert.Negative(t, cmp)
}

func TestLValCompareLists(t *testing.T) {
	one := SExpr([]*LVal{Number(1)})
	oneTwo := SExpr([]*LVal{Number(1), Number(2)})
	cmp, ok := one.Compare(oneTwo)
	require.True(t, ok)
	assert.Negative(t, cmp, "prefix ranks before its extension")
	cmp, ok = oneTwo.Compare(one)
	require.True(t, ok)
	assert.Positive(t, cmp)
}

func TestLValCopy(t *testing.T) {
	orig := SExpr([]*LVal{Symbol("+"), Number(1), SExpr([]*LVal{Number(2)})})
	cp := orig.Copy()
	require.True(t, orig.Equal(cp))
	cp.Cells[1].Num = 99
	assert.Equal(t, 1.0, orig.Cells[1].Num)

	fun := Lambda(SExpr([]*LVal{Symbol("x")}), SExpr([]*LVal{Symbol("+"), Symbol("x"), Number(1)}))
	fcp := fun.Copy()
	require.True(t, fun.Equal(fcp))
	fcp.Formals.Cells[0].Str = "y"
	assert.Equal(t, "x", fun.Formals.Cells[0].Str)
}
