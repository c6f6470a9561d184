package parser

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/spf13/cast"
)

// Binding strength of expression nodes, loosest first. The parser climbs
// the same table, and Format wraps an operand in parentheses when its
// precedence is too low for its position.
const (
	precLowest = iota
	precOr
	precAnd
	precNot
	precPredicate
	precComparison
	precBitOr
	precBitXor
	precBitAnd
	precAdditive
	precMultiplicative
	precUnary
	precPrimary
)

func precedenceOf(e Expr) int {
	switch e := e.(type) {
	case *OrExpr:
		return precOr
	case *AndExpr:
		return precAnd
	case *NotExpr, *Exists:
		return precNot
	case *Between, *InList, *InSubquery, *Like, *LikeQuantified, *RLike, *IsNull, *IsBoolean, *IsDistinctFrom:
		return precPredicate
	case *Comparison:
		return precComparison
	case *BinaryExpr:
		return binaryPrecedence[e.Operator]
	case *UnaryExpr:
		return precUnary
	case *Lambda, *NamedExpr:
		return precLowest
	}
	return precPrimary
}

// printOperand formats e, parenthesized when its precedence is below min.
func (buf *TrackedBuffer) printOperand(e Expr, min int) {
	if precedenceOf(e) < min {
		buf.Myprintf("(%v)", e)
		return
	}
	buf.Myprintf("%v", e)
}

// Operators of UnaryExpr, BinaryExpr and Comparison.
const (
	MultStr          = "*"
	DivStr           = "/"
	ModStr           = "%"
	IntDivStr        = "DIV"
	PlusStr          = "+"
	MinusStr         = "-"
	ConcatStr        = "||"
	BitAndStr        = "&"
	BitXorStr        = "^"
	BitOrStr         = "|"
	UPlusStr         = "+"
	UMinusStr        = "-"
	TildaStr         = "~"
	EqualStr         = "="
	NullSafeEqualStr = "<=>"
	NotEqualStr      = "<>"
	LessThanStr      = "<"
	LessEqualStr     = "<="
	GreaterThanStr   = ">"
	GreaterEqualStr  = ">="
)

var binaryPrecedence = map[string]int{
	MultStr:   precMultiplicative,
	DivStr:    precMultiplicative,
	ModStr:    precMultiplicative,
	IntDivStr: precMultiplicative,
	PlusStr:   precAdditive,
	MinusStr:  precAdditive,
	ConcatStr: precAdditive,
	BitAndStr: precBitAnd,
	BitXorStr: precBitXor,
	BitOrStr:  precBitOr,
}

func (*NullLiteral) iExpr()     {}
func (*BooleanLiteral) iExpr()  {}
func (*StringLiteral) iExpr()   {}
func (*NumericLiteral) iExpr()  {}
func (*TypedLiteral) iExpr()    {}
func (*IntervalLiteral) iExpr() {}
func (*ColumnRef) iExpr()       {}
func (*Dereference) iExpr()     {}
func (*Star) iExpr()            {}
func (*FunctionCall) iExpr()    {}
func (*Lambda) iExpr()          {}
func (*Subscript) iExpr()       {}
func (*RowConstructor) iExpr()  {}
func (*Subquery) iExpr()        {}
func (*Exists) iExpr()          {}
func (*SearchedCase) iExpr()    {}
func (*SimpleCase) iExpr()      {}
func (*Cast) iExpr()            {}
func (*Struct) iExpr()          {}
func (*First) iExpr()           {}
func (*Last) iExpr()            {}
func (*Position) iExpr()        {}
func (*Extract) iExpr()         {}
func (*Substring) iExpr()       {}
func (*Trim) iExpr()            {}
func (*Overlay) iExpr()         {}
func (*CurrentDatetime) iExpr() {}
func (*UnaryExpr) iExpr()       {}
func (*BinaryExpr) iExpr()      {}
func (*Comparison) iExpr()      {}
func (*NotExpr) iExpr()         {}
func (*AndExpr) iExpr()         {}
func (*OrExpr) iExpr()          {}
func (*Between) iExpr()         {}
func (*InList) iExpr()          {}
func (*InSubquery) iExpr()      {}
func (*Like) iExpr()            {}
func (*LikeQuantified) iExpr()  {}
func (*RLike) iExpr()           {}
func (*IsNull) iExpr()          {}
func (*IsBoolean) iExpr()       {}
func (*IsDistinctFrom) iExpr()  {}
func (*NamedExpr) iExpr()       {}

// NullLiteral represents a NULL value.
type NullLiteral struct{}

func (*NullLiteral) Format(buf *TrackedBuffer) {
	buf.WriteString("NULL")
}

// BooleanLiteral represents TRUE or FALSE.
type BooleanLiteral struct {
	Value bool
}

func (node *BooleanLiteral) Format(buf *TrackedBuffer) {
	if node.Value {
		buf.WriteString("TRUE")
	} else {
		buf.WriteString("FALSE")
	}
}

// StringLiteral is a string constant. Adjacent literals in the source are
// concatenated into one.
type StringLiteral struct {
	Value string
}

func (node *StringLiteral) Format(buf *TrackedBuffer) {
	buf.printString(node.Value)
}

// NumberKind is the type a numeric literal denotes.
type NumberKind int

const (
	NumberInteger NumberKind = iota
	NumberBigInt
	NumberSmallInt
	NumberTinyInt
	NumberDecimal
	NumberDouble
	NumberFloat
	NumberBigDecimal
)

func (k NumberKind) String() string {
	switch k {
	case NumberInteger:
		return "integer"
	case NumberBigInt:
		return "bigint"
	case NumberSmallInt:
		return "smallint"
	case NumberTinyInt:
		return "tinyint"
	case NumberDecimal:
		return "decimal"
	case NumberDouble:
		return "double"
	case NumberFloat:
		return "float"
	case NumberBigDecimal:
		return "bigdecimal"
	default:
		return fmt.Sprintf("NumberKind(%d)", int(k))
	}
}

// NumericLiteral is a number as written in the source, including its sign
// and type suffix.
type NumericLiteral struct {
	Kind NumberKind
	Text string
}

func (node *NumericLiteral) Format(buf *TrackedBuffer) {
	buf.WriteString(node.Text)
}

// Negative reports whether the literal carries a minus sign.
func (node *NumericLiteral) Negative() bool {
	return strings.HasPrefix(node.Text, "-")
}

// Digits returns the literal text without its type suffix.
func (node *NumericLiteral) Digits() string {
	text := node.Text
	switch node.Kind {
	case NumberBigInt, NumberSmallInt, NumberTinyInt, NumberFloat:
		return text[:len(text)-1]
	case NumberDouble:
		if last := text[len(text)-1]; last == 'd' || last == 'D' {
			return text[:len(text)-1]
		}
	case NumberBigDecimal:
		return text[:len(text)-2]
	}
	return text
}

// Value converts the literal to a Go value: int32 or int64 for integers
// (whichever fits, *big.Rat beyond that), int64/int16/int8 for suffixed
// integers, float64/float32 for floating point, and *big.Rat for decimals.
// Out-of-range values are reported as errors.
func (node *NumericLiteral) Value() (interface{}, error) {
	digits := trimLeadingZeros(node.Digits())
	switch node.Kind {
	case NumberInteger:
		v, err := cast.ToInt64E(digits)
		if err != nil {
			return parseRat(digits)
		}
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return int32(v), nil
		}
		return v, nil
	case NumberBigInt:
		v, err := cast.ToInt64E(digits)
		if err != nil {
			return nil, node.rangeError(math.MinInt64, math.MaxInt64)
		}
		return v, nil
	case NumberSmallInt:
		v, err := cast.ToInt64E(digits)
		if err != nil || v < math.MinInt16 || v > math.MaxInt16 {
			return nil, node.rangeError(math.MinInt16, math.MaxInt16)
		}
		return int16(v), nil
	case NumberTinyInt:
		v, err := cast.ToInt64E(digits)
		if err != nil || v < math.MinInt8 || v > math.MaxInt8 {
			return nil, node.rangeError(math.MinInt8, math.MaxInt8)
		}
		return int8(v), nil
	case NumberDouble:
		v, err := cast.ToFloat64E(digits)
		if err != nil || math.IsInf(v, 0) {
			return nil, fmt.Errorf("numeric literal %s does not fit in range for type double", node.Text)
		}
		return v, nil
	case NumberFloat:
		v, err := cast.ToFloat32E(digits)
		if err != nil || math.IsInf(float64(v), 0) {
			return nil, fmt.Errorf("numeric literal %s does not fit in range for type float", node.Text)
		}
		return v, nil
	default:
		return parseRat(digits)
	}
}

func (node *NumericLiteral) rangeError(min, max int64) error {
	return fmt.Errorf("numeric literal %s does not fit in range [%d, %d] for type %s", node.Digits(), min, max, node.Kind)
}

func parseRat(digits string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(digits)
	if !ok {
		return nil, fmt.Errorf("invalid numeric literal %s", digits)
	}
	return r, nil
}

// trimLeadingZeros keeps cast from reading the digits as octal.
func trimLeadingZeros(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" || trimmed[0] == '.' || trimmed[0] == 'e' || trimmed[0] == 'E' {
		trimmed = "0" + trimmed
	}
	return sign + trimmed
}

// TypedLiteral is a type constructor such as DATE '2020-01-01' or X'1F'.
type TypedLiteral struct {
	Type  string
	Value string
}

func (node *TypedLiteral) Format(buf *TrackedBuffer) {
	buf.WriteString(node.Type)
	if node.Type != "X" {
		buf.WriteByte(' ')
	}
	buf.printString(node.Value)
}

// IntervalValue is the magnitude of one interval unit.
type IntervalValue struct {
	Text     string
	IsString bool
}

func (node *IntervalValue) Format(buf *TrackedBuffer) {
	if node.IsString {
		buf.printString(node.Text)
		return
	}
	buf.WriteString(node.Text)
}

// IntervalUnit is one "value unit" pair of a multi-unit interval.
type IntervalUnit struct {
	Value *IntervalValue
	Unit  string
}

func (node *IntervalUnit) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v %s", node.Value, strings.ToUpper(node.Unit))
}

// IntervalLiteral is INTERVAL value unit [value unit ...] or
// INTERVAL value unit TO unit. To is set only for the latter.
type IntervalLiteral struct {
	Units []*IntervalUnit
	To    string
}

func (node *IntervalLiteral) Format(buf *TrackedBuffer) {
	buf.WriteString("INTERVAL ")
	formatNodes(buf, " ", node.Units)
	if node.To != "" {
		buf.Myprintf(" TO %s", strings.ToUpper(node.To))
	}
}

// ColumnRef is an unqualified column reference.
type ColumnRef struct {
	Name string
}

func (node *ColumnRef) Format(buf *TrackedBuffer) {
	buf.printIdent(node.Name)
}

// Dereference is base.field: a qualified column or a struct field.
type Dereference struct {
	Base  Expr
	Field string
}

func (node *Dereference) Format(buf *TrackedBuffer) {
	if _, ok := node.Base.(*NumericLiteral); ok {
		// "2." would read back as a decimal.
		buf.Myprintf("(%v)", node.Base)
	} else {
		buf.printOperand(node.Base, precPrimary)
	}
	buf.WriteByte('.')
	buf.printIdent(node.Field)
}

// Star is * or qualifier.*.
type Star struct {
	Target MultipartIdentifier
}

func (node *Star) Format(buf *TrackedBuffer) {
	if len(node.Target) > 0 {
		buf.Myprintf("%v.", node.Target)
	}
	buf.WriteByte('*')
}

// FunctionCall is name([DISTINCT|ALL] args) [FILTER (WHERE ...)] [OVER ...].
type FunctionCall struct {
	Name       MultipartIdentifier
	Quantifier string
	Args       []Expr
	Filter     Expr
	Over       WindowSpec
}

func (node *FunctionCall) Format(buf *TrackedBuffer) {
	buf.printFuncName(node.Name)
	buf.WriteByte('(')
	if node.Quantifier != "" {
		buf.Myprintf("%s ", node.Quantifier)
	}
	formatNodes(buf, ", ", node.Args)
	buf.WriteByte(')')
	if node.Filter != nil {
		buf.Myprintf(" FILTER (WHERE %v)", node.Filter)
	}
	if node.Over != nil {
		buf.Myprintf(" OVER %v", node.Over)
	}
}

// specialFunctionKeywords start a dedicated expression form when followed
// by '(' and must be quoted to be called as plain functions.
var specialFunctionKeywords = map[string]bool{
	"CASE": true, "CAST": true, "TRY_CAST": true, "EXISTS": true,
	"STRUCT": true, "FIRST": true, "LAST": true, "POSITION": true,
	"EXTRACT": true, "SUBSTR": true, "SUBSTRING": true, "TRIM": true,
	"OVERLAY": true, "INTERVAL": true, "NOT": true, "NULL": true,
	"TRUE": true, "FALSE": true,
}

func (buf *TrackedBuffer) printFuncName(name MultipartIdentifier) {
	if len(name) == 1 {
		word := name[0]
		kw := lookupKeyword(word)
		if word != "" && !isDigit(uint16(word[0])) && !specialFunctionKeywords[kw] && isWord(word) {
			buf.WriteString(word)
			return
		}
	}
	buf.Myprintf("%v", name)
}

func isWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isIdentChar(uint16(s[i])) {
			return false
		}
	}
	return true
}

// Lambda is x -> body or (x, y) -> body.
type Lambda struct {
	Params []string
	Body   Expr
}

func (node *Lambda) Format(buf *TrackedBuffer) {
	if len(node.Params) == 1 {
		buf.printIdent(node.Params[0])
	} else {
		buf.WriteByte('(')
		buf.printIdents(node.Params)
		buf.WriteByte(')')
	}
	buf.Myprintf(" -> %v", node.Body)
}

// Subscript is base[index].
type Subscript struct {
	Base  Expr
	Index Expr
}

func (node *Subscript) Format(buf *TrackedBuffer) {
	buf.printOperand(node.Base, precPrimary)
	buf.Myprintf("[%v]", node.Index)
}

// RowConstructor is a parenthesized list of two or more expressions.
type RowConstructor struct {
	Exprs []Expr
}

func (node *RowConstructor) Format(buf *TrackedBuffer) {
	buf.WriteByte('(')
	formatNodes(buf, ", ", node.Exprs)
	buf.WriteByte(')')
}

// Subquery is a scalar subquery.
type Subquery struct {
	Query *Query
}

func (node *Subquery) Format(buf *TrackedBuffer) {
	buf.Myprintf("(%v)", node.Query)
}

// Exists is EXISTS (query).
type Exists struct {
	Query *Query
}

func (node *Exists) Format(buf *TrackedBuffer) {
	buf.Myprintf("EXISTS (%v)", node.Query)
}

// When is a WHEN ... THEN ... branch of a CASE expression.
type When struct {
	Cond   Expr
	Result Expr
}

func (node *When) Format(buf *TrackedBuffer) {
	buf.Myprintf("WHEN %v THEN %v", node.Cond, node.Result)
}

// SearchedCase is CASE WHEN cond THEN ... END.
type SearchedCase struct {
	Whens []*When
	Else  Expr
}

func (node *SearchedCase) Format(buf *TrackedBuffer) {
	buf.WriteString("CASE ")
	formatNodes(buf, " ", node.Whens)
	if node.Else != nil {
		buf.Myprintf(" ELSE %v", node.Else)
	}
	buf.WriteString(" END")
}

// SimpleCase is CASE value WHEN match THEN ... END.
type SimpleCase struct {
	Value Expr
	Whens []*When
	Else  Expr
}

func (node *SimpleCase) Format(buf *TrackedBuffer) {
	buf.Myprintf("CASE %v ", node.Value)
	formatNodes(buf, " ", node.Whens)
	if node.Else != nil {
		buf.Myprintf(" ELSE %v", node.Else)
	}
	buf.WriteString(" END")
}

// Cast is CAST(expr AS type) or TRY_CAST(expr AS type).
type Cast struct {
	Try  bool
	Expr Expr
	Type DataType
}

func (node *Cast) Format(buf *TrackedBuffer) {
	if node.Try {
		buf.WriteString("TRY_")
	}
	buf.Myprintf("CAST(%v AS %v)", node.Expr, node.Type)
}

// Struct is STRUCT(expr [AS name], ...).
type Struct struct {
	Args []*NamedExpr
}

func (node *Struct) Format(buf *TrackedBuffer) {
	buf.WriteString("STRUCT(")
	formatNodes(buf, ", ", node.Args)
	buf.WriteByte(')')
}

// First is FIRST(expr [IGNORE NULLS]).
type First struct {
	Expr        Expr
	IgnoreNulls bool
}

func (node *First) Format(buf *TrackedBuffer) {
	buf.Myprintf("FIRST(%v", node.Expr)
	if node.IgnoreNulls {
		buf.WriteString(" IGNORE NULLS")
	}
	buf.WriteByte(')')
}

// Last is LAST(expr [IGNORE NULLS]).
type Last struct {
	Expr        Expr
	IgnoreNulls bool
}

func (node *Last) Format(buf *TrackedBuffer) {
	buf.Myprintf("LAST(%v", node.Expr)
	if node.IgnoreNulls {
		buf.WriteString(" IGNORE NULLS")
	}
	buf.WriteByte(')')
}

// Position is POSITION(substr IN str).
type Position struct {
	Substr Expr
	Str    Expr
}

func (node *Position) Format(buf *TrackedBuffer) {
	buf.WriteString("POSITION(")
	buf.printOperand(node.Substr, precBitOr)
	buf.WriteString(" IN ")
	buf.printOperand(node.Str, precBitOr)
	buf.WriteByte(')')
}

// Extract is EXTRACT(field FROM source).
type Extract struct {
	Field  string
	Source Expr
}

func (node *Extract) Format(buf *TrackedBuffer) {
	buf.WriteString("EXTRACT(")
	buf.printIdent(node.Field)
	buf.WriteString(" FROM ")
	buf.printOperand(node.Source, precBitOr)
	buf.WriteByte(')')
}

// Substring is SUBSTRING(str, pos[, len]), also written with FROM/FOR.
type Substring struct {
	Str Expr
	Pos Expr
	Len Expr
}

func (node *Substring) Format(buf *TrackedBuffer) {
	buf.WriteString("SUBSTRING(")
	buf.printOperand(node.Str, precBitOr)
	buf.WriteString(", ")
	buf.printOperand(node.Pos, precBitOr)
	if node.Len != nil {
		buf.WriteString(", ")
		buf.printOperand(node.Len, precBitOr)
	}
	buf.WriteByte(')')
}

// Trim is TRIM([BOTH|LEADING|TRAILING] [trimStr] FROM src).
type Trim struct {
	Option  string
	TrimStr Expr
	Src     Expr
}

func (node *Trim) Format(buf *TrackedBuffer) {
	buf.WriteString("TRIM(")
	if node.Option != "" {
		buf.Myprintf("%s ", node.Option)
	}
	if node.TrimStr != nil {
		buf.printOperand(node.TrimStr, precBitOr)
		buf.WriteByte(' ')
	}
	buf.WriteString("FROM ")
	buf.printOperand(node.Src, precBitOr)
	buf.WriteByte(')')
}

// Overlay is OVERLAY(input PLACING replace FROM pos [FOR len]).
type Overlay struct {
	Input   Expr
	Replace Expr
	Pos     Expr
	Len     Expr
}

func (node *Overlay) Format(buf *TrackedBuffer) {
	buf.WriteString("OVERLAY(")
	buf.printOperand(node.Input, precBitOr)
	buf.WriteString(" PLACING ")
	buf.printOperand(node.Replace, precBitOr)
	buf.WriteString(" FROM ")
	buf.printOperand(node.Pos, precBitOr)
	if node.Len != nil {
		buf.WriteString(" FOR ")
		buf.printOperand(node.Len, precBitOr)
	}
	buf.WriteByte(')')
}

// CurrentDatetime is CURRENT_DATE or CURRENT_TIMESTAMP without parentheses.
type CurrentDatetime struct {
	Name string
}

func (node *CurrentDatetime) Format(buf *TrackedBuffer) {
	buf.WriteString(node.Name)
}

// UnaryExpr is +x, -x or ~x.
type UnaryExpr struct {
	Operator string
	Expr     Expr
}

func (node *UnaryExpr) Format(buf *TrackedBuffer) {
	buf.WriteString(node.Operator)
	switch operand := node.Expr.(type) {
	case *NumericLiteral, *UnaryExpr:
		// "-1" would read back as a signed literal and "--" starts a comment.
		buf.Myprintf("(%v)", operand)
	default:
		buf.printOperand(operand, precUnary)
	}
}

// BinaryExpr is an arithmetic, concatenation or bitwise operation.
type BinaryExpr struct {
	Operator string
	Left     Expr
	Right    Expr
}

func (node *BinaryExpr) Format(buf *TrackedBuffer) {
	prec := binaryPrecedence[node.Operator]
	buf.printOperand(node.Left, prec)
	buf.Myprintf(" %s ", node.Operator)
	buf.printOperand(node.Right, prec+1)
}

// Comparison is a comparison between two value expressions. Comparisons do
// not chain, so both operands bind tighter.
type Comparison struct {
	Operator string
	Left     Expr
	Right    Expr
}

func (node *Comparison) Format(buf *TrackedBuffer) {
	buf.printOperand(node.Left, precComparison+1)
	buf.Myprintf(" %s ", node.Operator)
	buf.printOperand(node.Right, precComparison+1)
}

// NotExpr is NOT expr.
type NotExpr struct {
	Expr Expr
}

func (node *NotExpr) Format(buf *TrackedBuffer) {
	buf.WriteString("NOT ")
	buf.printOperand(node.Expr, precNot)
}

// AndExpr is left AND right.
type AndExpr struct {
	Left  Expr
	Right Expr
}

func (node *AndExpr) Format(buf *TrackedBuffer) {
	buf.printOperand(node.Left, precAnd)
	buf.WriteString(" AND ")
	buf.printOperand(node.Right, precAnd+1)
}

// OrExpr is left OR right.
type OrExpr struct {
	Left  Expr
	Right Expr
}

func (node *OrExpr) Format(buf *TrackedBuffer) {
	buf.printOperand(node.Left, precOr)
	buf.WriteString(" OR ")
	buf.printOperand(node.Right, precOr+1)
}

func (buf *TrackedBuffer) printPredicateHead(e Expr, not bool, keyword string) {
	buf.printOperand(e, precComparison)
	if not {
		buf.WriteString(" NOT")
	}
	buf.Myprintf(" %s ", keyword)
}

// Between is expr [NOT] BETWEEN from AND to.
type Between struct {
	Not  bool
	Expr Expr
	From Expr
	To   Expr
}

func (node *Between) Format(buf *TrackedBuffer) {
	buf.printPredicateHead(node.Expr, node.Not, "BETWEEN")
	buf.printOperand(node.From, precComparison)
	buf.WriteString(" AND ")
	buf.printOperand(node.To, precComparison)
}

// InList is expr [NOT] IN (list).
type InList struct {
	Not  bool
	Expr Expr
	List []Expr
}

func (node *InList) Format(buf *TrackedBuffer) {
	buf.printPredicateHead(node.Expr, node.Not, "IN")
	buf.WriteByte('(')
	formatNodes(buf, ", ", node.List)
	buf.WriteByte(')')
}

// InSubquery is expr [NOT] IN (query).
type InSubquery struct {
	Not   bool
	Expr  Expr
	Query *Query
}

func (node *InSubquery) Format(buf *TrackedBuffer) {
	buf.printPredicateHead(node.Expr, node.Not, "IN")
	buf.Myprintf("(%v)", node.Query)
}

// Like is expr [NOT] LIKE pattern [ESCAPE 'c'].
type Like struct {
	Not     bool
	Expr    Expr
	Pattern Expr
	Escape  *string
}

func (node *Like) Format(buf *TrackedBuffer) {
	buf.printPredicateHead(node.Expr, node.Not, "LIKE")
	buf.printOperand(node.Pattern, precComparison)
	if node.Escape != nil {
		buf.WriteString(" ESCAPE ")
		buf.printString(*node.Escape)
	}
}

// LikeQuantified is expr [NOT] LIKE ANY|SOME|ALL (patterns).
type LikeQuantified struct {
	Not        bool
	Expr       Expr
	Quantifier string
	Patterns   []Expr
}

func (node *LikeQuantified) Format(buf *TrackedBuffer) {
	buf.printPredicateHead(node.Expr, node.Not, "LIKE")
	buf.Myprintf("%s (", node.Quantifier)
	formatNodes(buf, ", ", node.Patterns)
	buf.WriteByte(')')
}

// RLike is expr [NOT] RLIKE pattern.
type RLike struct {
	Not     bool
	Expr    Expr
	Pattern Expr
}

func (node *RLike) Format(buf *TrackedBuffer) {
	buf.printPredicateHead(node.Expr, node.Not, "RLIKE")
	buf.printOperand(node.Pattern, precComparison)
}

// IsNull is expr IS [NOT] NULL.
type IsNull struct {
	Not  bool
	Expr Expr
}

func (node *IsNull) Format(buf *TrackedBuffer) {
	buf.printOperand(node.Expr, precComparison)
	if node.Not {
		buf.WriteString(" IS NOT NULL")
	} else {
		buf.WriteString(" IS NULL")
	}
}

// IsBoolean is expr IS [NOT] TRUE|FALSE|UNKNOWN.
type IsBoolean struct {
	Not   bool
	Expr  Expr
	Value string
}

func (node *IsBoolean) Format(buf *TrackedBuffer) {
	buf.printOperand(node.Expr, precComparison)
	buf.WriteString(" IS ")
	if node.Not {
		buf.WriteString("NOT ")
	}
	buf.WriteString(node.Value)
}

// IsDistinctFrom is left IS [NOT] DISTINCT FROM right.
type IsDistinctFrom struct {
	Not   bool
	Left  Expr
	Right Expr
}

func (node *IsDistinctFrom) Format(buf *TrackedBuffer) {
	buf.printOperand(node.Left, precComparison)
	buf.WriteString(" IS ")
	if node.Not {
		buf.WriteString("NOT ")
	}
	buf.WriteString("DISTINCT FROM ")
	buf.printOperand(node.Right, precComparison)
}

// NamedExpr is an expression with an optional alias. A list alias such as
// AS (a, b) sets several names.
type NamedExpr struct {
	Expr  Expr
	Names []string
	// ListAlias is set for the parenthesized alias form.
	ListAlias bool
}

func (node *NamedExpr) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v", node.Expr)
	switch {
	case node.ListAlias:
		buf.WriteString(" AS (")
		buf.printIdents(node.Names)
		buf.WriteByte(')')
	case len(node.Names) == 1:
		buf.WriteString(" AS ")
		buf.printIdent(node.Names[0])
	}
}
