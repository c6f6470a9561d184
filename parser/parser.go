package parser

import (
	"fmt"
	"strings"
)

// Options select the grammar variant.
type Options struct {
	// ANSI restricts unquoted identifiers to non-reserved keywords.
	ANSI bool
	// LegacySetOpsPrecedence parses all set operators left to right at one
	// precedence level instead of binding INTERSECT tighter.
	LegacySetOpsPrecedence bool
	// LegacyExponentLiteralAsDecimal reads 1E10 as a decimal instead of a
	// double.
	LegacyExponentLiteralAsDecimal bool
	// DoubleQuotedIdentifiers reads "..." as an identifier instead of a
	// string.
	DoubleQuotedIdentifiers bool
}

const (
	// maxDepth bounds rule nesting so deeply nested input fails with a
	// ParseError instead of exhausting the stack.
	maxDepth = 1000
	// maxParenLookahead bounds how many nested parentheses are inspected
	// when deciding whether a parenthesis opens a query.
	maxParenLookahead = 64
)

// Parser parses SQL text with fixed Options. A Parser holds no state
// between calls and may be shared by goroutines.
type Parser struct {
	opts Options
}

// NewParser returns a Parser for opts.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Options returns the options of p.
func (p *Parser) Options() Options {
	return p.opts
}

var defaultParser = NewParser(Options{})

// ParseStatement parses a single statement with the default options.
func ParseStatement(sql string) (Statement, error) {
	return defaultParser.ParseStatement(sql)
}

// ParseExpression parses a single expression with the default options.
func ParseExpression(sql string) (Expr, error) {
	return defaultParser.ParseExpression(sql)
}

// ParseTableIdentifier parses [db.]table with the default options.
func ParseTableIdentifier(sql string) (*TableIdentifier, error) {
	return defaultParser.ParseTableIdentifier(sql)
}

// ParseFunctionIdentifier parses [db.]function with the default options.
func ParseFunctionIdentifier(sql string) (*FunctionIdentifier, error) {
	return defaultParser.ParseFunctionIdentifier(sql)
}

// ParseMultipartIdentifier parses a dotted name with the default options.
func ParseMultipartIdentifier(sql string) (MultipartIdentifier, error) {
	return defaultParser.ParseMultipartIdentifier(sql)
}

// ParseDataType parses a data type with the default options.
func ParseDataType(sql string) (DataType, error) {
	return defaultParser.ParseDataType(sql)
}

// ParseColumnSchema parses a comma-separated column list such as
// "a INT, b STRING NOT NULL" with the default options.
func ParseColumnSchema(sql string) ([]*ColumnDef, error) {
	return defaultParser.ParseColumnSchema(sql)
}

// ParseStatement parses a single statement. Input after the statement is
// a syntax error.
func (p *Parser) ParseStatement(sql string) (Statement, error) {
	return parseSingle(p, sql, "singleStatement", func(ps *parser) Statement {
		stmt := ps.statement()
		ps.accept(';')
		return stmt
	})
}

// ParseExpression parses a single expression. An aliased expression such
// as "a AS b" is returned as a *NamedExpr.
func (p *Parser) ParseExpression(sql string) (Expr, error) {
	return parseSingle(p, sql, "singleExpression", func(ps *parser) Expr {
		named := ps.namedExpression()
		if len(named.Names) == 0 {
			return named.Expr
		}
		return named
	})
}

// ParseTableIdentifier parses [db.]table.
func (p *Parser) ParseTableIdentifier(sql string) (*TableIdentifier, error) {
	return parseSingle(p, sql, "singleTableIdentifier", (*parser).tableIdentifier)
}

// ParseFunctionIdentifier parses [db.]function.
func (p *Parser) ParseFunctionIdentifier(sql string) (*FunctionIdentifier, error) {
	return parseSingle(p, sql, "singleFunctionIdentifier", (*parser).functionIdentifier)
}

// ParseMultipartIdentifier parses a dotted name.
func (p *Parser) ParseMultipartIdentifier(sql string) (MultipartIdentifier, error) {
	return parseSingle(p, sql, "singleMultipartIdentifier", (*parser).multipartIdentifier)
}

// ParseDataType parses a data type.
func (p *Parser) ParseDataType(sql string) (DataType, error) {
	return parseSingle(p, sql, "singleDataType", (*parser).dataType)
}

// ParseColumnSchema parses a comma-separated column list.
func (p *Parser) ParseColumnSchema(sql string) ([]*ColumnDef, error) {
	return parseSingle(p, sql, "singleTableSchema", (*parser).colTypeList)
}

// parseSingle tokenizes sql, runs fn and requires that all input was
// consumed. Errors raised by rules unwind to here.
func parseSingle[T any](p *Parser, sql string, rule string, fn func(*parser) T) (result T, err error) {
	tokens, err := Tokenize(sql, p.opts)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Rule = rule
		}
		return result, err
	}

	ps := &parser{sql: sql, tokens: tokens, opts: p.opts}
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			var zero T
			result, err = zero, b.err
		}
	}()

	defer ps.enter(rule)()
	result = fn(ps)
	ps.expectEOF()
	return result, nil
}

// parser is the state of one parse: the token slice and a cursor into it.
type parser struct {
	sql    string
	tokens []Token
	pos    int
	opts   Options
	rules  []string
}

func (p *parser) enter(rule string) func() {
	p.rules = append(p.rules, rule)
	if len(p.rules) > maxDepth {
		p.failf(p.peek(), ErrorKindSyntax, "statement is too deeply nested")
	}
	return func() {
		p.rules = p.rules[:len(p.rules)-1]
	}
}

func (p *parser) rule() string {
	if len(p.rules) == 0 {
		return ""
	}
	return p.rules[len(p.rules)-1]
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

// peekN returns the token n positions ahead. Positions past the end
// return the EOF token.
func (p *parser) peekN(n int) Token {
	return p.tokenAt(p.pos + n)
}

func (p *parser) tokenAt(i int) Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) peekKind(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *parser) accept(kind TokenKind) bool {
	if p.peekKind(kind) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(kind TokenKind) Token {
	if !p.peekKind(kind) {
		p.fail(kind.String())
	}
	return p.next()
}

func isKeywordToken(tok Token, keywords ...string) bool {
	if tok.Kind != ID || tok.Keyword == "" {
		return false
	}
	for _, kw := range keywords {
		if tok.Keyword == kw {
			return true
		}
	}
	return false
}

// isNamedToken reports whether tok is an unquoted word equal to one of
// words, ignoring case. Unlike isKeywordToken it also matches words that are
// not in the keyword table.
func isNamedToken(tok Token, words ...string) bool {
	if tok.Kind != ID {
		return false
	}
	for _, word := range words {
		if strings.EqualFold(tok.Text, word) {
			return true
		}
	}
	return false
}

// peekKeyword reports whether the current token is one of keywords.
func (p *parser) peekKeyword(keywords ...string) bool {
	return isKeywordToken(p.peek(), keywords...)
}

// peekKeywords reports whether the upcoming tokens are exactly seq.
func (p *parser) peekKeywords(seq ...string) bool {
	for i, kw := range seq {
		if !isKeywordToken(p.peekN(i), kw) {
			return false
		}
	}
	return true
}

func (p *parser) acceptKeyword(kw string) bool {
	if p.peekKeyword(kw) {
		p.next()
		return true
	}
	return false
}

// acceptKeywords consumes seq only if all of it is present.
func (p *parser) acceptKeywords(seq ...string) bool {
	if !p.peekKeywords(seq...) {
		return false
	}
	p.pos += len(seq)
	return true
}

// acceptAnyKeyword consumes and returns the current keyword if it is one
// of keywords, and returns "" otherwise.
func (p *parser) acceptAnyKeyword(keywords ...string) string {
	if p.peekKeyword(keywords...) {
		return p.next().Keyword
	}
	return ""
}

// expectKeyword consumes one of keywords and returns it.
func (p *parser) expectKeyword(keywords ...string) string {
	if !p.peekKeyword(keywords...) {
		p.fail(keywords...)
	}
	return p.next().Keyword
}

func (p *parser) expectKeywords(seq ...string) {
	for _, kw := range seq {
		p.expectKeyword(kw)
	}
}

func (p *parser) expectEOF() {
	if !p.peekKind(EOF) {
		p.fail("<EOF>")
	}
}

// atStatementEnd reports whether nothing but an optional ';' remains.
func (p *parser) atStatementEnd() bool {
	return p.peekKind(EOF) || p.peekKind(';')
}

func (p *parser) stringLiteral() string {
	return p.expect(STRING).Value
}

func (p *parser) integerLiteral() string {
	return p.expect(INTEGER_VALUE).Text
}

// fail raises a syntax error at the current token.
func (p *parser) fail(expected ...string) {
	tok := p.peek()
	msg := fmt.Sprintf("mismatched input '%s'", tok)
	if tok.Kind == EOF {
		msg = "unexpected end of input"
	}
	p.raise(tok, ErrorKindSyntax, msg, expected)
}

func (p *parser) failf(tok Token, kind ErrorKind, format string, args ...interface{}) {
	p.raise(tok, kind, fmt.Sprintf(format, args...), nil)
}

// notAllowed raises an error for syntax that is recognized but rejected.
func (p *parser) notAllowed(tok Token, format string, args ...interface{}) {
	p.failf(tok, ErrorKindOperationNotAllowed, "Operation not allowed: "+format, args...)
}

func (p *parser) raise(tok Token, kind ErrorKind, msg string, expected []string) {
	panic(bailout{err: &ParseError{
		Kind:     kind,
		Rule:     p.rule(),
		Message:  msg,
		Token:    tok.String(),
		Expected: expected,
		Pos:      tok.Pos,
		Line:     tok.Line,
		Column:   tok.Column,
		SQL:      p.sql,
	}})
}

// clauseSet detects repeated optional clauses.
type clauseSet map[string]bool

func (p *parser) checkDuplicate(seen clauseSet, tok Token, clause string) {
	if seen[clause] {
		p.failf(tok, ErrorKindDuplicateClause, "Found duplicate clauses: %s", clause)
	}
	seen[clause] = true
}

// remainder returns the raw source text of all tokens left before the end
// of the statement and consumes them.
func (p *parser) remainder() string {
	start := p.peek()
	end := start
	for !p.atStatementEnd() {
		end = p.next()
	}
	if start.Kind == EOF || start.Kind == ';' {
		return ""
	}
	return strings.TrimSpace(p.sql[start.Pos:end.End])
}

// isIdentifierAt reports whether the token n positions ahead can be read as
// an identifier. strict excludes the join-related keywords.
func (p *parser) isIdentifierAt(n int, strict bool) bool {
	tok := p.peekN(n)
	switch tok.Kind {
	case QUOTED_ID:
		return true
	case ID:
		return tok.Keyword == "" || keywordAsIdentifier(tok.Keyword, p.opts.ANSI, strict)
	}
	return false
}

func (p *parser) identifier() string {
	if !p.isIdentifierAt(0, false) {
		p.fail("identifier")
	}
	return p.next().Value
}

func (p *parser) strictIdentifier() string {
	if !p.isIdentifierAt(0, true) {
		p.fail("identifier")
	}
	return p.next().Value
}

// errorCapturingIdentifier reads an identifier and rejects a following
// "-name" that suggests an unquoted hyphenated name.
func (p *parser) errorCapturingIdentifier() string {
	start := p.peek()
	name := p.identifier()
	if !p.peekKind('-') || !p.isIdentifierAt(1, false) {
		return name
	}
	parts := []string{name}
	for p.peekKind('-') && p.isIdentifierAt(1, false) {
		p.next()
		parts = append(parts, p.next().Value)
	}
	joined := strings.Join(parts, "-")
	p.failf(start, ErrorKindSyntax, "Possibly unquoted identifier %s detected. Please consider quoting it with back-quotes as `%s`", joined, joined)
	return ""
}

func (p *parser) multipartIdentifier() MultipartIdentifier {
	defer p.enter("multipartIdentifier")()
	parts := MultipartIdentifier{p.errorCapturingIdentifier()}
	for p.peekKind('.') && p.isIdentifierAt(1, false) {
		p.next()
		parts = append(parts, p.errorCapturingIdentifier())
	}
	return parts
}

func (p *parser) multipartIdentifierList() []MultipartIdentifier {
	names := []MultipartIdentifier{p.multipartIdentifier()}
	for p.accept(',') {
		names = append(names, p.multipartIdentifier())
	}
	return names
}

func (p *parser) tableIdentifier() *TableIdentifier {
	defer p.enter("tableIdentifier")()
	first := p.errorCapturingIdentifier()
	if !p.accept('.') {
		return &TableIdentifier{Name: first}
	}
	return &TableIdentifier{Database: first, Name: p.errorCapturingIdentifier()}
}

func (p *parser) functionIdentifier() *FunctionIdentifier {
	defer p.enter("functionIdentifier")()
	first := p.errorCapturingIdentifier()
	if !p.accept('.') {
		return &FunctionIdentifier{Name: first}
	}
	return &FunctionIdentifier{Database: first, Name: p.errorCapturingIdentifier()}
}

// qualifiedName is identifier ('.' identifier)*.
func (p *parser) qualifiedName() MultipartIdentifier {
	parts := MultipartIdentifier{p.identifier()}
	for p.peekKind('.') && p.isIdentifierAt(1, false) {
		p.next()
		parts = append(parts, p.identifier())
	}
	return parts
}

// identifierList is '(' identifier (',' identifier)* ')'.
func (p *parser) identifierList() []string {
	p.expect('(')
	names := p.identifierSeq()
	p.expect(')')
	return names
}

func (p *parser) identifierSeq() []string {
	names := []string{p.errorCapturingIdentifier()}
	for p.accept(',') {
		names = append(names, p.errorCapturingIdentifier())
	}
	return names
}

// canStartAlias reports whether the token n positions ahead may begin an
// alias written without AS.
func (p *parser) canStartAlias(n int, strict bool) bool {
	tok := p.peekN(n)
	if tok.Kind == ID && aliasStopWords[tok.Keyword] {
		return false
	}
	return p.isIdentifierAt(n, strict)
}

// matchingParen returns the index of the ')' closing the '(' at index i,
// or -1 when the input ends first.
func (p *parser) matchingParen(i int) int {
	depth := 0
	for ; i < len(p.tokens); i++ {
		switch p.tokens[i].Kind {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		case EOF:
			return -1
		}
	}
	return -1
}

// scanParen calls fn for every token directly inside the parentheses
// opened at index open, that is at nesting depth one, and stops early when
// fn returns true. It reports whether fn stopped the scan.
func (p *parser) scanParen(open int, fn func(i int, tok Token) bool) bool {
	end := p.matchingParen(open)
	if end < 0 {
		end = len(p.tokens) - 1
	}
	depth := 0
	for i := open + 1; i < end; i++ {
		tok := p.tokens[i]
		switch tok.Kind {
		case '(':
			depth++
		case ')':
			depth--
		default:
			if depth == 0 && fn(i, tok) {
				return true
			}
		}
	}
	return false
}

// parenHasKeyword reports whether one of keywords appears directly inside
// the parentheses opened at index open.
func (p *parser) parenHasKeyword(open int, keywords ...string) bool {
	return p.scanParen(open, func(_ int, tok Token) bool {
		return isKeywordToken(tok, keywords...)
	})
}

func (p *parser) parenHasComma(open int) bool {
	return p.scanParen(open, func(_ int, tok Token) bool {
		return tok.Kind == ','
	})
}

var setOperatorKeywords = []string{"UNION", "EXCEPT", "SETMINUS", "INTERSECT"}

var organizationKeywords = []string{"ORDER", "CLUSTER", "DISTRIBUTE", "SORT", "LIMIT", "WINDOW"}

// parenStartsQuery decides whether the '(' at index open encloses a query
// rather than an expression or a relation.
func (p *parser) parenStartsQuery(open int) bool {
	return p.parenStartsQueryDepth(open, 0)
}

func (p *parser) parenStartsQueryDepth(open, depth int) bool {
	if depth >= maxParenLookahead {
		p.failf(p.tokenAt(open), ErrorKindAmbiguous,
			"cannot decide whether the parenthesis encloses a query within %d nested levels", maxParenLookahead)
	}
	first, second := p.tokenAt(open+1), p.tokenAt(open+2)
	switch {
	case isKeywordToken(first, "SELECT", "WITH", "VALUES", "FROM"):
		return true
	case isKeywordToken(first, "TABLE", "MAP", "REDUCE"):
		return second.Kind == ID || second.Kind == QUOTED_ID
	case first.Kind == '(':
		if !p.parenStartsQueryDepth(open+1, depth+1) {
			return false
		}
		close := p.matchingParen(open + 1)
		if close < 0 {
			return true
		}
		after := p.tokenAt(close + 1)
		return after.Kind == ')' || isKeywordToken(after, setOperatorKeywords...) ||
			isKeywordToken(after, organizationKeywords...)
	}
	return false
}

// queryStarts reports whether a query begins at the current token.
func (p *parser) queryStarts() bool {
	if p.peekKind('(') {
		return p.parenStartsQuery(p.pos)
	}
	if p.peekKeyword("TABLE", "MAP", "REDUCE") {
		next := p.peekN(1)
		return next.Kind == ID || next.Kind == QUOTED_ID
	}
	return p.peekKeyword("SELECT", "WITH", "VALUES", "FROM")
}
