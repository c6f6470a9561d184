package parser

import (
	"strings"
)

// namedExpression is expression [[AS] alias | [AS] (alias, ...)].
func (p *parser) namedExpression() *NamedExpr {
	defer p.enter("namedExpression")()
	return p.namedExpressionRest(p.expression())
}

func (p *parser) namedExpressionRest(e Expr) *NamedExpr {
	named := &NamedExpr{Expr: e}
	hasAs := p.acceptKeyword("AS")
	switch {
	case p.peekKind('(') && (hasAs || p.isIdentifierListAt(p.pos)):
		named.Names = p.identifierList()
		named.ListAlias = true
	case hasAs:
		named.Names = []string{p.errorCapturingIdentifier()}
	case p.canStartAlias(0, false):
		named.Names = []string{p.errorCapturingIdentifier()}
	}
	return named
}

func (p *parser) namedExpressionSeq() []*NamedExpr {
	exprs := []*NamedExpr{p.namedExpression()}
	for p.accept(',') {
		exprs = append(exprs, p.namedExpression())
	}
	return exprs
}

// isIdentifierListAt reports whether the '(' at index open holds nothing
// but comma-separated identifiers.
func (p *parser) isIdentifierListAt(open int) bool {
	close := p.matchingParen(open)
	if close < 0 || close == open+1 {
		return false
	}
	for i := open + 1; i < close; i++ {
		tok := p.tokenAt(i)
		if (i-open)%2 == 0 {
			if tok.Kind != ',' {
				return false
			}
			continue
		}
		if tok.Kind != QUOTED_ID && (tok.Kind != ID || (tok.Keyword != "" && !keywordAsIdentifier(tok.Keyword, p.opts.ANSI, false))) {
			return false
		}
	}
	return (close-open)%2 == 0
}

func (p *parser) expression() Expr {
	defer p.enter("expression")()
	return p.booleanExpression()
}

func (p *parser) expressionSeq() []Expr {
	exprs := []Expr{p.expression()}
	for p.accept(',') {
		exprs = append(exprs, p.expression())
	}
	return exprs
}

func (p *parser) booleanExpression() Expr {
	left := p.andExpression()
	for p.acceptKeyword("OR") {
		left = &OrExpr{Left: left, Right: p.andExpression()}
	}
	return left
}

func (p *parser) andExpression() Expr {
	left := p.notExpression()
	for p.acceptKeyword("AND") {
		left = &AndExpr{Left: left, Right: p.notExpression()}
	}
	return left
}

func (p *parser) notExpression() Expr {
	if p.acceptKeyword("NOT") || p.accept('!') {
		return &NotExpr{Expr: p.notExpression()}
	}
	if p.peekKeyword("EXISTS") && p.peekN(1).Kind == '(' && p.parenStartsQuery(p.pos+1) {
		return p.exists()
	}
	return p.predicated()
}

func (p *parser) exists() Expr {
	p.expectKeyword("EXISTS")
	p.expect('(')
	q := p.query()
	p.expect(')')
	return &Exists{Query: q}
}

// predicated is a value expression followed by at most one predicate.
func (p *parser) predicated() Expr {
	defer p.enter("predicated")()
	e := p.valueExpression()
	not := false
	if p.peekKeyword("NOT") && isKeywordToken(p.peekN(1), "BETWEEN", "IN", "LIKE", "RLIKE") {
		p.next()
		not = true
	}
	switch {
	case p.acceptKeyword("BETWEEN"):
		from := p.valueExpression()
		p.expectKeyword("AND")
		return &Between{Not: not, Expr: e, From: from, To: p.valueExpression()}
	case p.peekKeyword("IN"):
		p.next()
		open := p.pos
		p.expect('(')
		if p.parenStartsQuery(open) {
			q := p.query()
			p.expect(')')
			return &InSubquery{Not: not, Expr: e, Query: q}
		}
		list := p.expressionSeq()
		p.expect(')')
		return &InList{Not: not, Expr: e, List: list}
	case p.acceptKeyword("LIKE"):
		if quantifier := p.acceptAnyKeyword("ANY", "SOME", "ALL"); quantifier != "" {
			open := p.expect('(')
			if p.peekKind(')') {
				p.failf(open, ErrorKindSyntax, "Expected something between '(' and ')'.")
			}
			patterns := p.expressionSeq()
			p.expect(')')
			return &LikeQuantified{Not: not, Expr: e, Quantifier: quantifier, Patterns: patterns}
		}
		like := &Like{Not: not, Expr: e, Pattern: p.valueExpression()}
		if p.acceptKeyword("ESCAPE") {
			tok := p.expect(STRING)
			if len([]rune(tok.Value)) != 1 {
				p.failf(tok, ErrorKindSyntax, "Invalid escape string. Escape string must contain only one character.")
			}
			like.Escape = &tok.Value
		}
		return like
	case p.acceptKeyword("RLIKE"):
		return &RLike{Not: not, Expr: e, Pattern: p.valueExpression()}
	case p.acceptKeyword("IS"):
		not := p.acceptKeyword("NOT")
		switch {
		case p.acceptKeyword("NULL"):
			return &IsNull{Not: not, Expr: e}
		case p.peekKeyword("TRUE", "FALSE", "UNKNOWN"):
			return &IsBoolean{Not: not, Expr: e, Value: p.next().Keyword}
		case p.acceptKeywords("DISTINCT", "FROM"):
			return &IsDistinctFrom{Not: not, Left: e, Right: p.valueExpression()}
		}
		p.fail("NULL", "TRUE", "FALSE", "UNKNOWN", "DISTINCT")
	}
	return e
}

// comparisonOperator returns the normalized operator at the current token.
func (p *parser) comparisonOperator() string {
	switch p.peek().Kind {
	case '=':
		return EqualStr
	case NSEQ:
		return NullSafeEqualStr
	case NEQ, NEQJ:
		return NotEqualStr
	case '<':
		return LessThanStr
	case LTE:
		return LessEqualStr
	case '>':
		return GreaterThanStr
	case GTE:
		return GreaterEqualStr
	}
	return ""
}

// valueExpression is the comparison level: at most one comparison between
// two arithmetic operands. Comparisons do not chain.
func (p *parser) valueExpression() Expr {
	left := p.arithmetic(precBitOr)
	op := p.comparisonOperator()
	if op == "" {
		return left
	}
	p.next()
	right := p.arithmetic(precBitOr)
	if p.comparisonOperator() != "" {
		tok := p.peek()
		p.failf(tok, ErrorKindSyntax, "mismatched input '%s': comparisons cannot be chained without parentheses", tok)
	}
	return &Comparison{Operator: op, Left: left, Right: right}
}

func (p *parser) binaryOperator() string {
	tok := p.peek()
	switch tok.Kind {
	case '*':
		return MultStr
	case '/':
		return DivStr
	case '%':
		return ModStr
	case '+':
		return PlusStr
	case '-':
		return MinusStr
	case CONCAT_PIPE:
		return ConcatStr
	case '&':
		return BitAndStr
	case '^':
		return BitXorStr
	case '|':
		return BitOrStr
	case ID:
		if tok.Keyword == "DIV" {
			return IntDivStr
		}
	}
	return ""
}

// arithmetic climbs the binary operator levels from bitwise OR down to
// multiplication. All of them are left-associative.
func (p *parser) arithmetic(minPrec int) Expr {
	left := p.unaryExpression()
	for {
		op := p.binaryOperator()
		if op == "" || binaryPrecedence[op] < minPrec {
			return left
		}
		p.next()
		right := p.arithmetic(binaryPrecedence[op] + 1)
		left = &BinaryExpr{Operator: op, Left: left, Right: right}
	}
}

func (p *parser) unaryExpression() Expr {
	switch p.peek().Kind {
	case '-':
		p.next()
		if p.peek().Kind.IsNumber() {
			return p.numberLiteral("-")
		}
		return &UnaryExpr{Operator: UMinusStr, Expr: p.unaryExpression()}
	case '+':
		p.next()
		return &UnaryExpr{Operator: UPlusStr, Expr: p.unaryExpression()}
	case '~':
		p.next()
		return &UnaryExpr{Operator: TildaStr, Expr: p.unaryExpression()}
	}
	return p.primaryExpression()
}

// primaryExpression is a primary followed by any number of subscripts and
// field accesses.
func (p *parser) primaryExpression() Expr {
	defer p.enter("primaryExpression")()
	e := p.primary()
	for {
		switch {
		case p.peekKind('['):
			p.next()
			index := p.valueExpression()
			p.expect(']')
			e = &Subscript{Base: e, Index: index}
		case p.peekKind('.') && p.isIdentifierAt(1, false):
			p.next()
			e = &Dereference{Base: e, Field: p.identifier()}
		default:
			return e
		}
	}
}

func (p *parser) primary() Expr {
	tok := p.peek()
	switch {
	case tok.Kind == STRING:
		return p.stringConstant()
	case tok.Kind.IsNumber():
		return p.numberLiteral("")
	case tok.Kind == '*':
		p.next()
		return &Star{}
	case tok.Kind == '(':
		return p.parenthesized()
	case tok.Kind == ID && tok.Keyword != "":
		if e := p.keywordPrimary(tok); e != nil {
			return e
		}
	}
	return p.namePrimary()
}

// keywordPrimary parses the constants and special forms introduced by a
// keyword, and returns nil when tok starts none of them.
func (p *parser) keywordPrimary(tok Token) Expr {
	paren := p.peekN(1).Kind == '('
	open := p.pos + 1
	switch tok.Keyword {
	case "NULL":
		p.next()
		return &NullLiteral{}
	case "TRUE", "FALSE":
		p.next()
		return &BooleanLiteral{Value: tok.Keyword == "TRUE"}
	case "CASE":
		return p.caseExpression()
	case "CAST", "TRY_CAST":
		if paren {
			return p.cast()
		}
	case "STRUCT":
		if paren {
			p.next()
			p.next()
			st := &Struct{}
			if !p.peekKind(')') {
				st.Args = p.namedExpressionSeq()
			}
			p.expect(')')
			return st
		}
	case "FIRST", "LAST":
		if paren && !p.parenHasComma(open) {
			return p.firstLast()
		}
	case "POSITION":
		if paren && p.parenHasKeyword(open, "IN") {
			p.next()
			p.next()
			substr := p.valueExpression()
			p.expectKeyword("IN")
			str := p.valueExpression()
			p.expect(')')
			return &Position{Substr: substr, Str: str}
		}
	case "EXTRACT":
		if paren && p.isIdentifierAt(2, false) && isKeywordToken(p.peekN(3), "FROM") {
			p.next()
			p.next()
			field := p.identifier()
			p.expectKeyword("FROM")
			source := p.valueExpression()
			p.expect(')')
			return &Extract{Field: field, Source: source}
		}
	case "SUBSTR", "SUBSTRING":
		if paren && (p.parenHasComma(open) || p.parenHasKeyword(open, "FROM")) {
			return p.substring()
		}
	case "TRIM":
		if paren && (p.parenHasKeyword(open, "FROM") || isKeywordToken(p.peekN(2), "BOTH", "LEADING", "TRAILING")) {
			return p.trim()
		}
	case "OVERLAY":
		if paren && p.parenHasKeyword(open, "PLACING") {
			return p.overlay()
		}
	case "CURRENT_DATE", "CURRENT_TIMESTAMP":
		if !paren {
			p.next()
			return &CurrentDatetime{Name: tok.Keyword}
		}
	case "INTERVAL":
		if p.intervalValueAt(1) {
			return p.interval()
		}
	case "EXISTS":
		if paren && p.parenStartsQuery(open) {
			return p.exists()
		}
	}
	return nil
}

// namePrimary parses the forms that start with a name: typed literals,
// lambdas, function calls, qualified stars and column references.
func (p *parser) namePrimary() Expr {
	tok := p.peek()
	if tok.Kind == ID && p.peekN(1).Kind == STRING {
		return p.typedLiteral()
	}
	if isKeywordToken(tok, "LEFT", "RIGHT", "FILTER") && p.peekN(1).Kind == '(' {
		p.next()
		return p.functionCall(MultipartIdentifier{tok.Value})
	}
	if !p.isIdentifierAt(0, false) {
		p.fail("expression")
	}
	if p.peekN(1).Kind == ARROW {
		name := p.next().Value
		p.next()
		return &Lambda{Params: []string{name}, Body: p.expression()}
	}
	n := 1
	for p.peekN(n).Kind == '.' && p.isIdentifierAt(n+1, false) {
		n += 2
	}
	switch after := p.peekN(n); {
	case after.Kind == '(':
		return p.functionCall(p.qualifiedName())
	case after.Kind == '.' && p.peekN(n+1).Kind == '*':
		name := p.qualifiedName()
		p.next()
		p.next()
		return &Star{Target: name}
	}
	if tok.Kind == ID && aliasStopWords[tok.Keyword] && p.peekN(1).Kind != '.' {
		p.fail("expression")
	}
	return &ColumnRef{Name: p.next().Value}
}

func (p *parser) stringConstant() Expr {
	var sb strings.Builder
	for p.peekKind(STRING) {
		sb.WriteString(p.next().Value)
	}
	return &StringLiteral{Value: sb.String()}
}

var numberKinds = map[TokenKind]NumberKind{
	INTEGER_VALUE:      NumberInteger,
	DECIMAL_VALUE:      NumberDecimal,
	EXPONENT_VALUE:     NumberDouble,
	BIGINT_LITERAL:     NumberBigInt,
	SMALLINT_LITERAL:   NumberSmallInt,
	TINYINT_LITERAL:    NumberTinyInt,
	DOUBLE_LITERAL:     NumberDouble,
	FLOAT_LITERAL:      NumberFloat,
	BIGDECIMAL_LITERAL: NumberBigDecimal,
}

// numberLiteral reads a numeric token, prefixed by sign, and checks that it
// fits its type.
func (p *parser) numberLiteral(sign string) *NumericLiteral {
	tok := p.next()
	kind := numberKinds[tok.Kind]
	if tok.Kind == EXPONENT_VALUE && p.opts.LegacyExponentLiteralAsDecimal {
		kind = NumberDecimal
	}
	lit := &NumericLiteral{Kind: kind, Text: sign + tok.Text}
	if _, err := lit.Value(); err != nil {
		p.failf(tok, ErrorKindSyntax, "%s", err)
	}
	return lit
}

func (p *parser) typedLiteral() Expr {
	tok := p.next()
	value := p.next().Value
	typ := strings.ToUpper(tok.Text)
	switch typ {
	case "DATE", "TIMESTAMP":
	case "X":
		if !isHexBinary(value) {
			p.failf(tok, ErrorKindSyntax, "contains illegal character for hexBinary: %s", value)
		}
	default:
		p.failf(tok, ErrorKindSyntax, "Literals of type '%s' are currently not supported.", typ)
	}
	return &TypedLiteral{Type: typ, Value: value}
}

func isHexBinary(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(uint16(c)) && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// parenthesized handles everything that starts with '(': lambdas,
// subqueries, row constructors and grouping parentheses.
func (p *parser) parenthesized() Expr {
	open := p.pos
	if close := p.matchingParen(open); close > 0 && p.tokenAt(close+1).Kind == ARROW && p.isIdentifierListAt(open) {
		params := p.identifierList()
		p.expect(ARROW)
		return &Lambda{Params: params, Body: p.expression()}
	}
	if p.parenStartsQuery(open) {
		p.next()
		q := p.query()
		p.expect(')')
		return &Subquery{Query: q}
	}
	p.next()
	first := p.expression()
	if p.accept(')') {
		return first
	}
	row := &RowConstructor{Exprs: []Expr{unwrapNamed(p.namedExpressionRest(first))}}
	p.expect(',')
	for {
		row.Exprs = append(row.Exprs, unwrapNamed(p.namedExpression()))
		if !p.accept(',') {
			break
		}
	}
	p.expect(')')
	return row
}

func unwrapNamed(named *NamedExpr) Expr {
	if len(named.Names) == 0 {
		return named.Expr
	}
	return named
}

func (p *parser) functionCall(name MultipartIdentifier) Expr {
	defer p.enter("functionCall")()
	p.expect('(')
	call := &FunctionCall{Name: name}
	if !p.peekKind(')') {
		if p.peekKeyword("DISTINCT", "ALL") && p.peekN(1).Kind != ')' && p.peekN(1).Kind != ',' {
			call.Quantifier = p.next().Keyword
		}
		call.Args = p.expressionSeq()
	}
	p.expect(')')
	if p.peekKeyword("FILTER") && p.peekN(1).Kind == '(' {
		p.next()
		p.next()
		p.expectKeyword("WHERE")
		call.Filter = p.booleanExpression()
		p.expect(')')
	}
	if p.acceptKeyword("OVER") {
		call.Over = p.windowSpec()
	}
	return call
}

func (p *parser) caseExpression() Expr {
	defer p.enter("caseExpression")()
	p.expectKeyword("CASE")
	var value Expr
	if !p.peekKeyword("WHEN") {
		value = p.expression()
	}
	var whens []*When
	for p.acceptKeyword("WHEN") {
		cond := p.expression()
		p.expectKeyword("THEN")
		whens = append(whens, &When{Cond: cond, Result: p.expression()})
	}
	if len(whens) == 0 {
		p.fail("WHEN")
	}
	var elseExpr Expr
	if p.acceptKeyword("ELSE") {
		elseExpr = p.expression()
	}
	p.expectKeyword("END")
	if value != nil {
		return &SimpleCase{Value: value, Whens: whens, Else: elseExpr}
	}
	return &SearchedCase{Whens: whens, Else: elseExpr}
}

func (p *parser) cast() Expr {
	try := p.next().Keyword == "TRY_CAST"
	p.expect('(')
	e := p.expression()
	p.expectKeyword("AS")
	typ := p.dataType()
	p.expect(')')
	return &Cast{Try: try, Expr: e, Type: typ}
}

func (p *parser) firstLast() Expr {
	last := p.next().Keyword == "LAST"
	p.expect('(')
	e := p.expression()
	ignoreNulls := p.acceptKeywords("IGNORE", "NULLS")
	p.expect(')')
	if last {
		return &Last{Expr: e, IgnoreNulls: ignoreNulls}
	}
	return &First{Expr: e, IgnoreNulls: ignoreNulls}
}

func (p *parser) substring() Expr {
	p.next()
	p.expect('(')
	sub := &Substring{Str: p.valueExpression()}
	if !p.acceptKeyword("FROM") {
		p.expect(',')
	}
	sub.Pos = p.valueExpression()
	if p.acceptKeyword("FOR") || p.accept(',') {
		sub.Len = p.valueExpression()
	}
	p.expect(')')
	return sub
}

func (p *parser) trim() Expr {
	p.next()
	p.expect('(')
	trim := &Trim{Option: p.acceptAnyKeyword("BOTH", "LEADING", "TRAILING")}
	if !p.peekKeyword("FROM") {
		trim.TrimStr = p.valueExpression()
	}
	p.expectKeyword("FROM")
	trim.Src = p.valueExpression()
	p.expect(')')
	return trim
}

func (p *parser) overlay() Expr {
	p.next()
	p.expect('(')
	ov := &Overlay{Input: p.valueExpression()}
	p.expectKeyword("PLACING")
	ov.Replace = p.valueExpression()
	p.expectKeyword("FROM")
	ov.Pos = p.valueExpression()
	if p.acceptKeyword("FOR") {
		ov.Len = p.valueExpression()
	}
	p.expect(')')
	return ov
}

var intervalUnits = map[string]bool{
	"YEAR": true, "YEARS": true, "MONTH": true, "MONTHS": true,
	"WEEK": true, "WEEKS": true, "DAY": true, "DAYS": true,
	"HOUR": true, "HOURS": true, "MINUTE": true, "MINUTES": true,
	"SECOND": true, "SECONDS": true, "MILLISECOND": true, "MILLISECONDS": true,
	"MICROSECOND": true, "MICROSECONDS": true,
}

var intervalFromTo = map[string]bool{
	"YEAR TO MONTH": true, "DAY TO HOUR": true, "DAY TO MINUTE": true,
	"DAY TO SECOND": true, "HOUR TO MINUTE": true, "HOUR TO SECOND": true,
	"MINUTE TO SECOND": true,
}

func (p *parser) isIntervalUnitAt(n int) bool {
	tok := p.peekN(n)
	return tok.Kind == ID && intervalUnits[strings.ToUpper(tok.Text)]
}

// intervalValueAt reports whether an interval value starts n tokens ahead:
// a string, or a possibly signed number followed by a unit.
func (p *parser) intervalValueAt(n int) bool {
	tok := p.peekN(n)
	if tok.Kind == STRING {
		return true
	}
	if tok.Kind == '+' || tok.Kind == '-' {
		n++
		tok = p.peekN(n)
	}
	return (tok.Kind == INTEGER_VALUE || tok.Kind == DECIMAL_VALUE) && p.isIntervalUnitAt(n+1)
}

func (p *parser) interval() Expr {
	defer p.enter("interval")()
	start := p.next()
	if p.peekKind(STRING) && !p.isIntervalUnitAt(1) {
		return &TypedLiteral{Type: "INTERVAL", Value: p.next().Value}
	}
	lit := &IntervalLiteral{}
	for p.intervalValueAt(0) {
		valueTok := p.peek()
		value := p.intervalValue()
		if !p.isIntervalUnitAt(0) {
			p.fail("interval unit")
		}
		unit := strings.ToUpper(p.next().Text)
		lit.Units = append(lit.Units, &IntervalUnit{Value: value, Unit: unit})
		if !p.peekKeyword("TO") {
			continue
		}
		toTok := p.next()
		if len(lit.Units) > 1 {
			p.failf(toTok, ErrorKindSyntax, "Can only have a single from-to unit in the interval literal syntax")
		}
		if !value.IsString {
			p.failf(valueTok, ErrorKindSyntax, "The value of from-to unit must be a string")
		}
		if !p.isIntervalUnitAt(0) {
			p.fail("interval unit")
		}
		lit.To = strings.ToUpper(p.next().Text)
		if !intervalFromTo[strings.TrimSuffix(unit, "S")+" TO "+strings.TrimSuffix(lit.To, "S")] {
			p.failf(toTok, ErrorKindSyntax, "Intervals FROM %s TO %s are not supported.", unit, lit.To)
		}
		if p.intervalValueAt(0) {
			p.failf(p.peek(), ErrorKindSyntax, "Can only have a single from-to unit in the interval literal syntax")
		}
		return lit
	}
	if len(lit.Units) == 0 {
		p.failf(start, ErrorKindSyntax, "at least one time unit should be given for interval literal")
	}
	return lit
}

func (p *parser) intervalValue() *IntervalValue {
	if p.peekKind(STRING) {
		return &IntervalValue{Text: p.next().Value, IsString: true}
	}
	sign := ""
	if p.accept('-') {
		sign = "-"
	} else {
		p.accept('+')
	}
	return &IntervalValue{Text: sign + p.next().Text}
}

// windowSpec is a window name, a parenthesized name or an inline window.
func (p *parser) windowSpec() WindowSpec {
	defer p.enter("windowSpec")()
	if !p.peekKind('(') {
		return &WindowRef{Name: p.errorCapturingIdentifier()}
	}
	if p.isIdentifierAt(1, false) && p.peekN(2).Kind == ')' {
		p.next()
		name := p.identifier()
		p.next()
		return &WindowRef{Name: name}
	}
	p.expect('(')
	def := &WindowDef{}
	switch {
	case p.acceptKeywords("CLUSTER", "BY"):
		def.Cluster = true
		def.PartitionBy = p.expressionSeq()
	default:
		if p.acceptKeywords("PARTITION", "BY") || p.acceptKeywords("DISTRIBUTE", "BY") {
			def.PartitionBy = p.expressionSeq()
		}
		if p.acceptKeywords("ORDER", "BY") || p.acceptKeywords("SORT", "BY") {
			def.OrderBy = p.sortItems()
		}
	}
	if p.peekKeyword("ROWS", "RANGE") {
		def.Frame = p.windowFrame()
	}
	p.expect(')')
	return def
}

func (p *parser) windowFrame() *WindowFrame {
	frame := &WindowFrame{Type: p.next().Keyword}
	if !p.acceptKeyword("BETWEEN") {
		frame.Start = p.frameBound()
		return frame
	}
	frame.Start = p.frameBound()
	p.expectKeyword("AND")
	frame.End = p.frameBound()
	return frame
}

func (p *parser) frameBound() *FrameBound {
	switch {
	case p.acceptKeyword("UNBOUNDED"):
		return &FrameBound{Kind: FrameUnbounded, Direction: p.expectKeyword("PRECEDING", "FOLLOWING")}
	case p.acceptKeywords("CURRENT", "ROW"):
		return &FrameBound{Kind: FrameCurrentRow}
	}
	e := p.expression()
	return &FrameBound{Kind: FrameValue, Expr: e, Direction: p.expectKeyword("PRECEDING", "FOLLOWING")}
}

func (p *parser) sortItem() *SortItem {
	item := &SortItem{Expr: p.expression()}
	item.Direction = p.acceptAnyKeyword("ASC", "DESC")
	if p.acceptKeyword("NULLS") {
		item.Nulls = p.expectKeyword("FIRST", "LAST")
	}
	return item
}

func (p *parser) sortItems() []*SortItem {
	items := []*SortItem{p.sortItem()}
	for p.accept(',') {
		items = append(items, p.sortItem())
	}
	return items
}
