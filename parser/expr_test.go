package parser

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/expr-lang/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomArithmetic builds an integer expression that reads the same in SQL
// and in expr-lang.
func randomArithmetic(r *rand.Rand, depth int) string {
	if depth == 0 || r.Intn(4) == 0 {
		return fmt.Sprint(r.Intn(9) + 1)
	}
	switch r.Intn(6) {
	case 0:
		operand := randomArithmetic(r, depth-1)
		if strings.HasPrefix(operand, "-") {
			operand = "(" + operand + ")"
		}
		return "-" + operand
	case 1:
		return "(" + randomArithmetic(r, depth-1) + ")"
	default:
		ops := []string{"+", "-", "*", "%"}
		op := ops[r.Intn(len(ops))]
		right := randomArithmetic(r, depth-1)
		if op == "%" {
			// Keep the divisor non-zero.
			right = fmt.Sprint(r.Intn(9) + 1)
		}
		return randomArithmetic(r, depth-1) + " " + op + " " + right
	}
}

func evalArithmetic(t *testing.T, e Expr) int {
	t.Helper()
	switch n := e.(type) {
	case *NumericLiteral:
		v, err := n.Value()
		require.NoError(t, err)
		return int(v.(int32))
	case *UnaryExpr:
		require.Equal(t, UMinusStr, n.Operator)
		return -evalArithmetic(t, n.Expr)
	case *BinaryExpr:
		left, right := evalArithmetic(t, n.Left), evalArithmetic(t, n.Right)
		switch n.Operator {
		case "+":
			return left + right
		case "-":
			return left - right
		case "*":
			return left * right
		case "%":
			return left % right
		}
	}
	t.Fatalf("unexpected node %T", e)
	return 0
}

func TestArithmeticPrecedence(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 300; i++ {
		sql := randomArithmetic(r, 4)

		want, err := expr.Eval(sql, nil)
		require.NoError(t, err, sql)

		parsed, err := ParseExpression(sql)
		require.NoError(t, err, sql)
		assert.Equal(t, want, evalArithmetic(t, parsed), sql)

		printed := String(parsed)
		got, err := expr.Eval(printed, nil)
		require.NoError(t, err, printed)
		assert.Equal(t, want, got, "%s printed as %s", sql, printed)
	}
}

func TestArithmeticAssociativity(t *testing.T) {
	e, err := ParseExpression("1 - 2 - 3")
	require.NoError(t, err)

	sub := e.(*BinaryExpr)
	assert.Equal(t, "-", sub.Operator)
	assert.Equal(t, &NumericLiteral{Kind: NumberInteger, Text: "3"}, sub.Right)
	assert.Equal(t, "1 - 2", String(sub.Left))
}

func TestNumericLiteralValue(t *testing.T) {
	tests := []struct {
		sql  string
		want interface{}
	}{
		{"1", int32(1)},
		{"007", int32(7)},
		{"-2147483648", int32(-2147483648)},
		{"2147483648", int64(2147483648)},
		{"99999999999999999999", mustRat("99999999999999999999")},
		{"10L", int64(10)},
		{"-10S", int16(-10)},
		{"-128Y", int8(-128)},
		{"1.5", big.NewRat(3, 2)},
		{".5", big.NewRat(1, 2)},
		{"1.5D", 1.5},
		{"2D", 2.0},
		{"1.5F", float32(1.5)},
		{"1.5BD", big.NewRat(3, 2)},
		{"1E2", 100.0},
	}
	for _, test := range tests {
		t.Run(test.sql, func(t *testing.T) {
			e, err := ParseExpression(test.sql)
			require.NoError(t, err)
			lit, ok := e.(*NumericLiteral)
			require.True(t, ok, "got %T", e)

			v, err := lit.Value()
			require.NoError(t, err)
			if want, ok := test.want.(*big.Rat); ok {
				got, ok := v.(*big.Rat)
				require.True(t, ok, "got %T", v)
				assert.Equal(t, 0, want.Cmp(got), "got %s", got)
				return
			}
			assert.Equal(t, test.want, v)
		})
	}
}

func TestNumericLiteralOutOfRange(t *testing.T) {
	tests := []struct {
		sql string
		msg string
	}{
		{"32768S", "numeric literal 32768 does not fit in range [-32768, 32767] for type smallint"},
		{"9223372036854775808L", "numeric literal 9223372036854775808 does not fit in range [-9223372036854775808, 9223372036854775807] for type bigint"},
		{"1E400", "numeric literal 1E400 does not fit in range for type double"},
		{"-129Y", "numeric literal -129 does not fit in range [-128, 127] for type tinyint"},
	}
	for _, test := range tests {
		sql, msg := test.sql, test.msg
		_, err := ParseExpression(sql)
		var perr *ParseError
		if assert.ErrorAs(t, err, &perr, sql) {
			assert.Equal(t, msg, perr.Message, sql)
		}
	}
}

func mustRat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("invalid rational " + s)
	}
	return r
}
