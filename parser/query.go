package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// query is [WITH ctes] queryTerm queryOrganization.
func (p *parser) query() *Query {
	defer p.enter("query")()
	var with *With
	if p.peekKeyword("WITH") {
		with = p.ctes()
	}
	return p.queryWith(with)
}

// queryWith parses the rest of a query whose WITH clause, if any, has
// already been read.
func (p *parser) queryWith(with *With) *Query {
	q := &Query{With: with, Body: p.queryTerm()}
	p.queryOrganization(&q.QueryOrganization)
	return q
}

func (p *parser) ctes() *With {
	defer p.enter("ctes")()
	p.expectKeyword("WITH")
	with := &With{}
	seen := map[string]bool{}
	var duplicates []string
	start := p.peek()
	for {
		cte := &CommonTableExpr{Name: p.errorCapturingIdentifier()}
		if p.peekKind('(') && !p.parenStartsQuery(p.pos) {
			cte.Columns = p.identifierList()
		}
		p.acceptKeyword("AS")
		p.expect('(')
		cte.Query = p.query()
		p.expect(')')
		if seen[cte.Name] {
			duplicates = append(duplicates, cte.Name)
		}
		seen[cte.Name] = true
		with.CTEs = append(with.CTEs, cte)
		if !p.accept(',') {
			break
		}
	}
	if len(duplicates) > 0 {
		p.failf(start, ErrorKindSyntax, "CTE definition can't have duplicate names: '%s'.", strings.Join(duplicates, "', '"))
	}
	return with
}

// setOperator returns the set operator at the current token and its
// binding strength. INTERSECT binds tighter unless the legacy mode is on.
func (p *parser) setOperator() (string, int) {
	tok := p.peek()
	switch {
	case isKeywordToken(tok, "UNION"):
		return UnionStr, 1
	case isKeywordToken(tok, "EXCEPT", "SETMINUS"):
		return ExceptStr, 1
	case isKeywordToken(tok, "INTERSECT"):
		if p.opts.LegacySetOpsPrecedence {
			return IntersectStr, 1
		}
		return IntersectStr, 2
	}
	return "", 0
}

func (p *parser) queryTerm() SelectStatement {
	defer p.enter("queryTerm")()
	return p.queryTermRest(p.queryPrimary(), 1)
}

// queryTermRest combines left with the set operations that follow it,
// climbing by operator strength. All set operators are left-associative.
func (p *parser) queryTermRest(left SelectStatement, minPrec int) SelectStatement {
	for {
		op, prec := p.setOperator()
		if op == "" || prec < minPrec {
			return left
		}
		p.next()
		quantifier := p.acceptAnyKeyword("ALL", "DISTINCT")
		right := p.queryTermRest(p.queryPrimary(), prec+1)
		left = &SetOperation{Op: op, Quantifier: quantifier, Left: left, Right: right}
	}
}

// transformStarts reports whether a script transformation follows.
// SELECT TRANSFORM(...) is only a script transformation when the closing
// parenthesis is followed by its input clauses; otherwise it is a call of
// the transform higher-order function.
func (p *parser) transformStarts() bool {
	if p.peekKeyword("SELECT") {
		if !isKeywordToken(p.peekN(1), "TRANSFORM") || p.peekN(2).Kind != '(' {
			return false
		}
		close := p.matchingParen(p.pos + 2)
		if close < 0 {
			return false
		}
		return isKeywordToken(p.tokenAt(close+1), "USING", "ROW", "RECORDWRITER")
	}
	return p.peekKeyword("MAP", "REDUCE")
}

func (p *parser) queryPrimary() SelectStatement {
	defer p.enter("queryPrimary")()
	switch {
	case p.transformStarts():
		return p.transformQuery(true)
	case p.peekKeyword("SELECT"):
		return p.selectQuery(true)
	case p.peekKeyword("FROM"):
		return p.fromStatement(p.fromClause())
	case p.peekKeyword("TABLE"):
		p.next()
		return &TableQuery{Name: p.multipartIdentifier()}
	case p.peekKeyword("VALUES"):
		return p.inlineTable()
	case p.peekKind('('):
		p.next()
		q := p.query()
		p.expect(')')
		if q.With == nil && q.QueryOrganization.IsEmpty() {
			return q.Body
		}
		return &ParenQuery{Query: q}
	}
	p.fail("SELECT", "FROM", "VALUES", "TABLE", "(")
	return nil
}

// fromStatement parses the SELECT bodies of FROM relation SELECT ... once
// the FROM clause has been read.
func (p *parser) fromStatement(from *FromClause) SelectStatement {
	stmt := &FromStatement{From: from}
	for p.transformStarts() || p.peekKeyword("SELECT") {
		body := &Query{}
		if p.transformStarts() {
			body.Body = p.transformQuery(false)
		} else {
			body.Body = p.selectQuery(false)
		}
		p.queryOrganization(&body.QueryOrganization)
		stmt.Bodies = append(stmt.Bodies, body)
	}
	if len(stmt.Bodies) == 0 {
		p.fail("SELECT", "MAP", "REDUCE", "INSERT")
	}
	return stmt
}

// selectQuery parses a SELECT query specification. Inside a FROM statement
// the body has no FROM clause of its own but may carry lateral views.
func (p *parser) selectQuery(withFrom bool) *Select {
	defer p.enter("querySpecification")()
	p.expectKeyword("SELECT")
	sel := &Select{}
	for p.peekKind(HINT_START) {
		sel.Hints = append(sel.Hints, p.hints()...)
	}
	if p.peekKeyword("DISTINCT", "ALL") && p.peekN(1).Kind != ',' && !isKeywordToken(p.peekN(1), "FROM") {
		sel.Quantifier = p.next().Keyword
	}
	sel.Exprs = p.namedExpressionSeq()
	if withFrom {
		if p.peekKeyword("FROM") {
			sel.From = p.fromClause()
		}
	} else {
		for p.peekKeywords("LATERAL", "VIEW") {
			sel.LateralViews = append(sel.LateralViews, p.lateralView())
		}
	}
	if p.acceptKeyword("WHERE") {
		sel.Where = p.booleanExpression()
	}
	if p.peekKeywords("GROUP", "BY") {
		sel.GroupBy = p.groupBy()
	}
	if p.acceptKeyword("HAVING") {
		sel.Having = p.booleanExpression()
	}
	if p.peekKeyword("WINDOW") {
		sel.Windows = p.windowClause()
	}
	return sel
}

// hints parses one /*+ ... */ block.
func (p *parser) hints() []*Hint {
	p.expect(HINT_START)
	var hints []*Hint
	for {
		hint := &Hint{Name: p.identifier()}
		if p.accept('(') {
			hint.Params = append(hint.Params, p.primaryExpression())
			for p.accept(',') {
				hint.Params = append(hint.Params, p.primaryExpression())
			}
			p.expect(')')
		}
		hints = append(hints, hint)
		if p.accept(HINT_END) {
			return hints
		}
		p.accept(',')
	}
}

func (p *parser) transformQuery(withFrom bool) *TransformSelect {
	defer p.enter("transformQuery")()
	ts := &TransformSelect{}
	if p.acceptKeyword("SELECT") {
		ts.Kind = p.expectKeyword("TRANSFORM")
		p.expect('(')
		ts.Exprs = p.namedExpressionSeq()
		p.expect(')')
	} else {
		ts.Kind = p.expectKeyword("MAP", "REDUCE")
		ts.Exprs = p.namedExpressionSeq()
	}
	ts.InRowFormat = p.rowFormat()
	if p.acceptKeyword("RECORDWRITER") {
		writer := p.stringLiteral()
		ts.RecordWriter = &writer
	}
	p.expectKeyword("USING")
	ts.Script = p.stringLiteral()
	if p.acceptKeyword("AS") {
		paren := p.accept('(')
		if p.typedColumnFollows() {
			ts.OutputColumns = p.colTypeList()
		} else {
			ts.OutputNames = p.identifierSeq()
		}
		if paren {
			p.expect(')')
		}
	}
	ts.OutRowFormat = p.rowFormat()
	if p.acceptKeyword("RECORDREADER") {
		reader := p.stringLiteral()
		ts.RecordReader = &reader
	}
	if withFrom && p.peekKeyword("FROM") {
		ts.From = p.fromClause()
	}
	if p.acceptKeyword("WHERE") {
		ts.Where = p.booleanExpression()
	}
	return ts
}

// typedColumnFollows reports whether the upcoming column list carries
// data types.
func (p *parser) typedColumnFollows() bool {
	tok := p.peekN(1)
	if tok.Kind != ID {
		return false
	}
	if isKeywordToken(tok, "ARRAY", "MAP", "STRUCT") {
		next := p.peekN(2).Kind
		return next == '<' || next == NEQ
	}
	_, ok := primitiveTypes[strings.ToLower(tok.Text)]
	return ok
}

func (p *parser) fromClause() *FromClause {
	defer p.enter("fromClause")()
	p.expectKeyword("FROM")
	from := &FromClause{Relations: []TableExpr{p.relation()}}
	for p.accept(',') {
		from.Relations = append(from.Relations, p.relation())
	}
	var lateral Token
	for p.peekKeywords("LATERAL", "VIEW") {
		if len(from.LateralViews) == 0 {
			lateral = p.peek()
		}
		from.LateralViews = append(from.LateralViews, p.lateralView())
	}
	if p.peekKeyword("PIVOT") {
		if len(from.LateralViews) > 0 {
			p.notAllowed(lateral, "LATERAL cannot be used together with PIVOT in FROM clause")
		}
		from.Pivot = p.pivot()
	}
	return from
}

// relation is a primary relation followed by any number of joins.
func (p *parser) relation() TableExpr {
	defer p.enter("relation")()
	left := p.relationPrimary()
	for {
		start := p.peek()
		natural := p.acceptKeyword("NATURAL")
		typ, ok := p.joinType()
		if !ok {
			if natural {
				p.fail("JOIN")
			}
			return left
		}
		if natural && typ == JoinCross {
			p.notAllowed(start, "NATURAL CROSS JOIN is not supported")
		}
		join := &Join{Type: typ, Natural: natural, Left: left, Right: p.relationPrimary()}
		if !natural {
			switch {
			case p.acceptKeyword("ON"):
				join.On = p.booleanExpression()
			case p.acceptKeyword("USING"):
				join.Using = p.identifierList()
			}
		}
		left = join
	}
}

// joinType consumes a join operator up to and including JOIN.
func (p *parser) joinType() (string, bool) {
	typ := ""
	n := 0
	switch {
	case p.peekKeyword("JOIN"):
		typ = JoinInner
	case p.peekKeywords("INNER", "JOIN"):
		typ, n = JoinInner, 1
	case p.peekKeywords("CROSS", "JOIN"):
		typ, n = JoinCross, 1
	case p.peekKeywords("LEFT", "OUTER", "JOIN"):
		typ, n = JoinLeftOuter, 2
	case p.peekKeywords("LEFT", "SEMI", "JOIN"):
		typ, n = JoinLeftSemi, 2
	case p.peekKeywords("LEFT", "ANTI", "JOIN"):
		typ, n = JoinLeftAnti, 2
	case p.peekKeywords("LEFT", "JOIN"):
		typ, n = JoinLeftOuter, 1
	case p.peekKeywords("SEMI", "JOIN"):
		typ, n = JoinLeftSemi, 1
	case p.peekKeywords("ANTI", "JOIN"):
		typ, n = JoinLeftAnti, 1
	case p.peekKeywords("RIGHT", "OUTER", "JOIN"):
		typ, n = JoinRightOuter, 2
	case p.peekKeywords("RIGHT", "JOIN"):
		typ, n = JoinRightOuter, 1
	case p.peekKeywords("FULL", "OUTER", "JOIN"):
		typ, n = JoinFullOuter, 2
	case p.peekKeywords("FULL", "JOIN"):
		typ, n = JoinFullOuter, 1
	default:
		return "", false
	}
	p.pos += n + 1
	return typ, true
}

func (p *parser) relationPrimary() TableExpr {
	defer p.enter("relationPrimary")()
	switch {
	case p.peekKeyword("VALUES"):
		return p.inlineTable()
	case p.peekKind('('):
		if p.parenStartsQuery(p.pos) {
			p.next()
			q := p.query()
			p.expect(')')
			return &AliasedQuery{Query: q, Sample: p.sample(), Alias: p.tableAlias()}
		}
		p.next()
		rel := p.relation()
		p.expect(')')
		return &AliasedRelation{Relation: rel, Sample: p.sample(), Alias: p.tableAlias()}
	case p.isIdentifierAt(0, false) && p.peekN(1).Kind == '(':
		fn := &TableFunction{Name: p.errorCapturingIdentifier()}
		p.expect('(')
		if !p.peekKind(')') {
			fn.Args = p.expressionSeq()
		}
		p.expect(')')
		fn.Alias = p.tableAlias()
		return fn
	}
	name := p.multipartIdentifier()
	return &TableName{Name: name, Sample: p.sample(), Alias: p.tableAlias()}
}

// tableAlias is [[AS] name [(columns)]].
func (p *parser) tableAlias() *TableAlias {
	if p.acceptKeyword("AS") {
		alias := &TableAlias{Name: p.strictIdentifier()}
		if p.peekKind('(') {
			alias.Columns = p.identifierList()
		}
		return alias
	}
	if !p.canStartAlias(0, true) {
		return nil
	}
	alias := &TableAlias{Name: p.strictIdentifier()}
	if p.peekKind('(') && p.isIdentifierListAt(p.pos) {
		alias.Columns = p.identifierList()
	}
	return alias
}

func (p *parser) inlineTable() *InlineTable {
	defer p.enter("inlineTable")()
	p.expectKeyword("VALUES")
	return &InlineTable{Rows: p.expressionSeq(), Alias: p.tableAlias()}
}

var byteLengthLiteral = regexp.MustCompile(`^[0-9]+[bBkKmMgG]$`)

// sample parses an optional TABLESAMPLE clause.
func (p *parser) sample() *Sample {
	if !p.acceptKeyword("TABLESAMPLE") {
		return nil
	}
	p.expect('(')
	s := &Sample{}
	n := 0
	if p.peekKind('-') {
		n = 1
	}
	switch num := p.peekN(n); {
	case p.acceptKeyword("BUCKET"):
		s.Kind = SampleBucket
		numTok := p.peek()
		s.Numerator = p.integerLiteral()
		p.expectKeywords("OUT", "OF")
		s.Denominator = p.integerLiteral()
		if on := p.peek(); p.acceptKeyword("ON") {
			if next := p.peekN(1).Kind; p.isIdentifierAt(0, false) && (next == '(' || next == '.') {
				p.notAllowed(on, "TABLESAMPLE(BUCKET x OUT OF y ON function)")
			}
			p.notAllowed(on, "TABLESAMPLE(BUCKET x OUT OF y ON colname)")
		}
		numerator, _ := strconv.ParseFloat(s.Numerator, 64)
		denominator, _ := strconv.ParseFloat(s.Denominator, 64)
		p.validateFraction(numTok, numerator/denominator)
	case (num.Kind == INTEGER_VALUE || num.Kind == DECIMAL_VALUE) && isKeywordToken(p.peekN(n+1), "PERCENT"):
		s.Kind = SamplePercent
		numTok := p.peek()
		if p.accept('-') {
			s.Percent = "-"
		}
		s.Percent += p.next().Text
		p.next()
		percent, _ := strconv.ParseFloat(s.Percent, 64)
		p.validateFraction(numTok, percent/100)
	default:
		exprTok := p.peek()
		s.Expr = p.expression()
		if p.acceptKeyword("ROWS") {
			s.Kind = SampleRows
			break
		}
		col, ok := s.Expr.(*ColumnRef)
		if !ok || exprTok.Kind != ID || !byteLengthLiteral.MatchString(col.Name) {
			text := strings.TrimSpace(p.sql[exprTok.Pos:p.tokenAt(p.pos-1).End])
			p.failf(exprTok, ErrorKindSyntax, "%s is not a valid byte length literal, expected syntax: DIGIT+ ('B' | 'K' | 'M' | 'G')", text)
		}
		s.Kind = SampleBytes
	}
	p.expect(')')
	return s
}

func (p *parser) validateFraction(tok Token, fraction float64) {
	const eps = 1e-6
	if fraction < -eps || fraction > 1+eps {
		text := strconv.FormatFloat(fraction, 'f', -1, 64)
		if !strings.ContainsAny(text, ".eE") {
			text += ".0"
		}
		p.failf(tok, ErrorKindSyntax, "Sampling fraction (%s) must be on interval [0, 1]", text)
	}
}

// lateralView is LATERAL VIEW [OUTER] generator(args) table [[AS] col, ...].
func (p *parser) lateralView() *LateralView {
	defer p.enter("lateralView")()
	p.expectKeywords("LATERAL", "VIEW")
	view := &LateralView{Outer: p.acceptKeyword("OUTER")}
	view.Generator = p.qualifiedName()
	p.expect('(')
	if !p.peekKind(')') {
		view.Args = p.expressionSeq()
	}
	p.expect(')')
	view.Table = p.identifier()
	if p.acceptKeyword("AS") || p.canStartAlias(0, false) {
		view.Columns = []string{p.identifier()}
		for p.accept(',') {
			view.Columns = append(view.Columns, p.identifier())
		}
	}
	return view
}

func (p *parser) pivot() *Pivot {
	defer p.enter("pivotClause")()
	p.expectKeyword("PIVOT")
	p.expect('(')
	pivot := &Pivot{Aggregates: p.namedExpressionSeq()}
	p.expectKeyword("FOR")
	if p.peekKind('(') {
		pivot.Columns = p.identifierList()
	} else {
		pivot.Columns = []string{p.identifier()}
	}
	p.expectKeyword("IN")
	p.expect('(')
	for {
		value := &PivotValue{Expr: p.expression()}
		if p.acceptKeyword("AS") || p.canStartAlias(0, false) {
			value.Alias = p.identifier()
		}
		pivot.Values = append(pivot.Values, value)
		if !p.accept(',') {
			break
		}
	}
	p.expect(')')
	p.expect(')')
	return pivot
}

func (p *parser) groupBy() *GroupBy {
	defer p.enter("aggregationClause")()
	p.expectKeywords("GROUP", "BY")
	group := &GroupBy{}
	if !p.peekKeywords("GROUPING", "SETS") {
		group.Exprs = p.expressionSeq()
	}
	switch {
	case p.acceptKeywords("WITH", "ROLLUP"):
		group.Kind = GroupByRollup
	case p.acceptKeywords("WITH", "CUBE"):
		group.Kind = GroupByCube
	case p.acceptKeywords("GROUPING", "SETS"):
		group.Kind = GroupByGroupingSets
		p.expect('(')
		for {
			group.Sets = append(group.Sets, p.groupingSet())
			if !p.accept(',') {
				break
			}
		}
		p.expect(')')
	}
	return group
}

// groupingSet is a parenthesized expression list or a single expression.
// A parenthesized group counts as a list only when nothing but ',' or ')'
// follows it.
func (p *parser) groupingSet() []Expr {
	if p.peekKind('(') {
		close := p.matchingParen(p.pos)
		if after := p.tokenAt(close + 1).Kind; close > 0 && (after == ',' || after == ')') {
			p.next()
			var set []Expr
			if !p.peekKind(')') {
				set = p.expressionSeq()
			}
			p.expect(')')
			return set
		}
	}
	return []Expr{p.expression()}
}

func (p *parser) windowClause() []*NamedWindow {
	p.expectKeyword("WINDOW")
	var windows []*NamedWindow
	for {
		w := &NamedWindow{Name: p.errorCapturingIdentifier()}
		p.expectKeyword("AS")
		w.Spec = p.windowSpec()
		windows = append(windows, w)
		if !p.accept(',') {
			return windows
		}
	}
}

// queryOrganization parses the trailing ORDER BY, CLUSTER BY, DISTRIBUTE
// BY, SORT BY, WINDOW and LIMIT clauses into org.
func (p *parser) queryOrganization(org *QueryOrganization) {
	start := p.peek()
	if p.acceptKeywords("ORDER", "BY") {
		org.OrderBy = p.sortItems()
	}
	if p.acceptKeywords("CLUSTER", "BY") {
		org.ClusterBy = p.expressionSeq()
	}
	if p.acceptKeywords("DISTRIBUTE", "BY") {
		org.DistributeBy = p.expressionSeq()
	}
	if p.acceptKeywords("SORT", "BY") {
		org.SortBy = p.sortItems()
	}
	if p.peekKeyword("WINDOW") {
		org.Windows = p.windowClause()
	}
	if p.acceptKeyword("LIMIT") {
		if p.acceptKeyword("ALL") {
			org.LimitAll = true
		} else {
			org.Limit = p.expression()
		}
	}
	order, cluster := len(org.OrderBy) > 0, len(org.ClusterBy) > 0
	distribute, sort := len(org.DistributeBy) > 0, len(org.SortBy) > 0
	if (order && (cluster || distribute || sort)) || (cluster && (distribute || sort)) {
		p.notAllowed(start, "Combination of ORDER BY/SORT BY/DISTRIBUTE BY/CLUSTER BY is not supported")
	}
}
