/*
Copyright 2017 Google Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package parser

import (
	"fmt"
	"strconv"
	"strings"
)

const eofChar = 0x100

// TokenKind classifies a Token. Single-character operators and punctuation
// use their byte value as the kind.
type TokenKind int

const EOF TokenKind = 0

const (
	ID TokenKind = 0x10000 + iota
	QUOTED_ID
	STRING
	INTEGER_VALUE
	DECIMAL_VALUE
	EXPONENT_VALUE
	BIGINT_LITERAL
	SMALLINT_LITERAL
	TINYINT_LITERAL
	DOUBLE_LITERAL
	FLOAT_LITERAL
	BIGDECIMAL_LITERAL
	NSEQ        // <=>
	NEQ         // <>
	NEQJ        // !=
	LTE         // <= or !>
	GTE         // >= or !<
	CONCAT_PIPE // ||
	ARROW       // ->
	HINT_START  // /*+
	HINT_END    // */
)

var tokenKindNames = map[TokenKind]string{
	EOF:                "<EOF>",
	ID:                 "identifier",
	QUOTED_ID:          "quoted identifier",
	STRING:             "string literal",
	INTEGER_VALUE:      "integer literal",
	DECIMAL_VALUE:      "decimal literal",
	EXPONENT_VALUE:     "exponent literal",
	BIGINT_LITERAL:     "bigint literal",
	SMALLINT_LITERAL:   "smallint literal",
	TINYINT_LITERAL:    "tinyint literal",
	DOUBLE_LITERAL:     "double literal",
	FLOAT_LITERAL:      "float literal",
	BIGDECIMAL_LITERAL: "bigdecimal literal",
	NSEQ:               "'<=>'",
	NEQ:                "'<>'",
	NEQJ:               "'!='",
	LTE:                "'<='",
	GTE:                "'>='",
	CONCAT_PIPE:        "'||'",
	ARROW:              "'->'",
	HINT_START:         "'/*+'",
	HINT_END:           "'*/'",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	if k > 0 && k < 0x80 {
		return fmt.Sprintf("'%c'", rune(k))
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// IsNumber reports whether the kind is one of the numeric literal kinds.
func (k TokenKind) IsNumber() bool {
	return INTEGER_VALUE <= k && k <= BIGDECIMAL_LITERAL
}

// Token is a lexical unit of a SQL text. Tokens are never mutated after
// the tokenizer produces them.
type Token struct {
	Kind TokenKind
	// Text is the raw source slice.
	Text string
	// Value is the decoded text of strings and quoted identifiers, and the
	// raw text otherwise.
	Value string
	// Keyword is the canonical upper-case keyword for ID tokens that are
	// keywords, and empty otherwise.
	Keyword string
	Pos     int
	End     int
	Line    int
	Column  int
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "<EOF>"
	}
	return t.Text
}

// Tokenizer is the struct used to generate SQL tokens for the parser.
type Tokenizer struct {
	DoubleQuotedIdentifiers bool

	buf       string
	bufPos    int
	lastChar  uint16
	Position  int
	line      int
	column    int
	hintDepth int
}

// NewStringTokenizer creates a new Tokenizer for the sql string.
func NewStringTokenizer(sql string) *Tokenizer {
	tkn := &Tokenizer{buf: sql, line: 1}
	tkn.next()
	return tkn
}

// Tokenize scans the whole input. The returned slice always ends with an
// EOF token.
func Tokenize(sql string, opts Options) ([]Token, error) {
	tkn := NewStringTokenizer(sql)
	tkn.DoubleQuotedIdentifiers = opts.DoubleQuotedIdentifiers

	tokens := make([]Token, 0, len(sql)/4+1)
	for {
		tok, err := tkn.Scan()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

// Scan returns the next token. Comments and whitespace are skipped.
func (tkn *Tokenizer) Scan() (Token, error) {
	if err := tkn.skipBlankAndComments(); err != nil {
		return Token{}, err
	}

	start, line, column := tkn.Position, tkn.line, tkn.column
	kind, value, err := tkn.scan()
	if err != nil {
		return Token{}, err
	}

	tok := Token{
		Kind:   kind,
		Text:   tkn.buf[start:tkn.Position],
		Value:  value,
		Pos:    start,
		End:    tkn.Position,
		Line:   line,
		Column: column,
	}
	if kind != STRING && kind != QUOTED_ID {
		tok.Value = tok.Text
	}
	if kind == ID {
		tok.Keyword = lookupKeyword(tok.Text)
	}
	return tok, nil
}

func (tkn *Tokenizer) scan() (TokenKind, string, error) {
	switch ch := tkn.lastChar; {
	case ch == eofChar:
		return EOF, "", nil
	case isLetter(ch):
		tkn.skipTo(tkn.identEnd(tkn.Position))
		return ID, "", nil
	case isDigit(ch):
		kind, end := tkn.scanNumber()
		if identEnd := tkn.identEnd(tkn.Position); identEnd > end {
			kind, end = ID, identEnd
		}
		tkn.skipTo(end)
		return kind, "", nil
	case ch == '.':
		if isDigit(tkn.charAt(tkn.Position + 1)) {
			if kind, end := tkn.scanNumber(); kind != EOF {
				tkn.skipTo(end)
				return kind, "", nil
			}
		}
		tkn.next()
		return '.', "", nil
	case ch == '\'':
		return tkn.scanString('\'')
	case ch == '"':
		if tkn.DoubleQuotedIdentifiers {
			return tkn.scanLiteralIdentifier('"')
		}
		return tkn.scanString('"')
	case ch == '`':
		return tkn.scanLiteralIdentifier('`')
	}

	ch, start := tkn.lastChar, tkn.Position
	tkn.next()
	switch ch {
	case ',', ';', '(', ')', '[', ']', '+', '%', '^', '~', '&', ':':
		return TokenKind(ch), "", nil
	case '=':
		if tkn.lastChar == '=' {
			tkn.next()
		}
		return '=', "", nil
	case '*':
		if tkn.hintDepth > 0 && tkn.lastChar == '/' {
			tkn.next()
			tkn.hintDepth--
			return HINT_END, "", nil
		}
		return '*', "", nil
	case '/':
		if tkn.lastChar == '*' && tkn.charAt(tkn.Position+1) == '+' {
			tkn.next()
			tkn.next()
			tkn.hintDepth++
			return HINT_START, "", nil
		}
		return '/', "", nil
	case '-':
		if tkn.lastChar == '>' {
			tkn.next()
			return ARROW, "", nil
		}
		return '-', "", nil
	case '|':
		if tkn.lastChar == '|' {
			tkn.next()
			return CONCAT_PIPE, "", nil
		}
		return '|', "", nil
	case '<':
		switch tkn.lastChar {
		case '=':
			tkn.next()
			if tkn.lastChar == '>' {
				tkn.next()
				return NSEQ, "", nil
			}
			return LTE, "", nil
		case '>':
			tkn.next()
			return NEQ, "", nil
		}
		return '<', "", nil
	case '>':
		if tkn.lastChar == '=' {
			tkn.next()
			return GTE, "", nil
		}
		return '>', "", nil
	case '!':
		switch tkn.lastChar {
		case '=':
			tkn.next()
			return NEQJ, "", nil
		case '<':
			tkn.next()
			return GTE, "", nil
		case '>':
			tkn.next()
			return LTE, "", nil
		}
		return '!', "", nil
	}
	return EOF, "", tkn.lexError(start, fmt.Sprintf("unrecognized character %q", rune(ch)))
}

func (tkn *Tokenizer) skipBlankAndComments() error {
	for {
		for isBlank(tkn.lastChar) {
			tkn.next()
		}
		switch {
		case tkn.lastChar == '-' && tkn.charAt(tkn.Position+1) == '-':
			tkn.scanCommentType1()
		case tkn.lastChar == '/' && tkn.charAt(tkn.Position+1) == '*' && tkn.charAt(tkn.Position+2) != '+':
			if err := tkn.scanCommentType2(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// scanCommentType1 skips a "--" comment up to and including the newline.
func (tkn *Tokenizer) scanCommentType1() {
	for tkn.lastChar != eofChar {
		if tkn.lastChar == '\n' {
			tkn.next()
			return
		}
		tkn.next()
	}
}

// scanCommentType2 skips a bracketed comment. Bracketed comments nest.
func (tkn *Tokenizer) scanCommentType2() error {
	start := tkn.Position
	depth := 0
	for {
		switch {
		case tkn.lastChar == eofChar:
			return tkn.lexError(start, "unterminated comment")
		case tkn.lastChar == '/' && tkn.charAt(tkn.Position+1) == '*':
			tkn.next()
			tkn.next()
			depth++
		case tkn.lastChar == '*' && tkn.charAt(tkn.Position+1) == '/':
			tkn.next()
			tkn.next()
			depth--
			if depth == 0 {
				return nil
			}
		default:
			tkn.next()
		}
	}
}

// scanNumber returns the longest numeric literal starting at the current
// position, or EOF when there is none. Literals containing a decimal point
// are only accepted when no identifier character follows them.
func (tkn *Tokenizer) scanNumber() (TokenKind, int) {
	start := tkn.Position
	i := start
	for isDigit(tkn.charAt(i)) {
		i++
	}
	intEnd := i
	hasInt := intEnd > start

	decimalEnd := -1
	if tkn.charAt(i) == '.' {
		j := i + 1
		for isDigit(tkn.charAt(j)) {
			j++
		}
		if hasInt || j > i+1 {
			decimalEnd = j
		}
	}

	kind, bestEnd := EOF, start
	accept := func(k TokenKind, end int, validDecimal bool) {
		if end <= bestEnd {
			return
		}
		if validDecimal && isIdentChar(tkn.charAt(end)) {
			return
		}
		kind, bestEnd = k, end
	}
	fractional := func(end int, validDecimal bool) {
		switch upper(tkn.charAt(end)) {
		case 'D':
			accept(DOUBLE_LITERAL, end+1, validDecimal)
		case 'F':
			accept(FLOAT_LITERAL, end+1, validDecimal)
		case 'B':
			if upper(tkn.charAt(end+1)) == 'D' {
				accept(BIGDECIMAL_LITERAL, end+2, validDecimal)
			}
		}
	}

	if hasInt {
		accept(INTEGER_VALUE, intEnd, false)
		switch upper(tkn.charAt(intEnd)) {
		case 'L':
			accept(BIGINT_LITERAL, intEnd+1, false)
		case 'S':
			accept(SMALLINT_LITERAL, intEnd+1, false)
		case 'Y':
			accept(TINYINT_LITERAL, intEnd+1, false)
		}
		fractional(intEnd, false)
		if e := tkn.exponentEnd(intEnd); e > 0 {
			accept(EXPONENT_VALUE, e, false)
			fractional(e, false)
		}
	}
	if decimalEnd > 0 {
		accept(DECIMAL_VALUE, decimalEnd, true)
		fractional(decimalEnd, true)
		if e := tkn.exponentEnd(decimalEnd); e > 0 {
			accept(EXPONENT_VALUE, e, true)
			fractional(e, true)
		}
	}
	return kind, bestEnd
}

func (tkn *Tokenizer) exponentEnd(i int) int {
	if upper(tkn.charAt(i)) != 'E' {
		return -1
	}
	i++
	if ch := tkn.charAt(i); ch == '+' || ch == '-' {
		i++
	}
	j := i
	for isDigit(tkn.charAt(j)) {
		j++
	}
	if j == i {
		return -1
	}
	return j
}

func (tkn *Tokenizer) identEnd(i int) int {
	for isIdentChar(tkn.charAt(i)) {
		i++
	}
	return i
}

func (tkn *Tokenizer) scanString(delim uint16) (TokenKind, string, error) {
	start := tkn.Position
	tkn.next()
	bodyStart := tkn.Position
	for {
		switch tkn.lastChar {
		case eofChar:
			return EOF, "", tkn.lexError(start, "unterminated string literal")
		case '\\':
			tkn.next()
			if tkn.lastChar == eofChar {
				return EOF, "", tkn.lexError(start, "unterminated string literal")
			}
		case delim:
			body := tkn.buf[bodyStart:tkn.Position]
			tkn.next()
			return STRING, unescapeSQLString(body), nil
		}
		tkn.next()
	}
}

func (tkn *Tokenizer) scanLiteralIdentifier(sepChar uint16) (TokenKind, string, error) {
	start := tkn.Position
	var buffer strings.Builder
	tkn.next()
	for {
		switch tkn.lastChar {
		case eofChar:
			return EOF, "", tkn.lexError(start, "unterminated quoted identifier")
		case sepChar:
			tkn.next()
			if tkn.lastChar != sepChar {
				return QUOTED_ID, buffer.String(), nil
			}
		}
		buffer.WriteByte(byte(tkn.lastChar))
		tkn.next()
	}
}

// unescapeSQLString decodes backslash escapes in the body of a string literal.
func unescapeSQLString(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}

	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch != '\\' || i+1 >= len(s) {
			buf.WriteByte(ch)
			continue
		}
		i++
		ch = s[i]
		switch {
		case ch == 'u' && i+4 < len(s) && isHex(s[i+1:i+5]):
			code, _ := strconv.ParseUint(s[i+1:i+5], 16, 32)
			buf.WriteRune(rune(code))
			i += 4
		case '0' <= ch && ch <= '3' && i+2 < len(s) && isOctal(s[i+1]) && isOctal(s[i+2]):
			buf.WriteByte((ch-'0')<<6 | (s[i+1]-'0')<<3 | (s[i+2] - '0'))
			i += 2
		default:
			switch ch {
			case '0':
				buf.WriteByte(0)
			case 'b':
				buf.WriteByte('\b')
			case 'n':
				buf.WriteByte('\n')
			case 'r':
				buf.WriteByte('\r')
			case 't':
				buf.WriteByte('\t')
			case 'Z':
				buf.WriteByte(0x1a)
			case '%', '_':
				buf.WriteByte('\\')
				buf.WriteByte(ch)
			default:
				buf.WriteByte(ch)
			}
		}
	}
	return buf.String()
}

func (tkn *Tokenizer) lexError(pos int, msg string) error {
	line, column := calcLineCol(tkn.buf, pos)
	end := pos + 1
	if end > len(tkn.buf) {
		end = len(tkn.buf)
	}
	return &ParseError{
		Kind:    ErrorKindLexical,
		Message: msg,
		Token:   tkn.buf[pos:end],
		Pos:     pos,
		Line:    line,
		Column:  column,
		SQL:     tkn.buf,
	}
}

func (tkn *Tokenizer) skipTo(end int) {
	for tkn.Position < end && tkn.lastChar != eofChar {
		tkn.next()
	}
}

func (tkn *Tokenizer) charAt(i int) uint16 {
	if i >= len(tkn.buf) {
		return eofChar
	}
	return uint16(tkn.buf[i])
}

func (tkn *Tokenizer) next() {
	if tkn.lastChar == '\n' {
		tkn.line++
		tkn.column = 0
	}
	if tkn.bufPos >= len(tkn.buf) {
		if tkn.lastChar != eofChar {
			tkn.Position = len(tkn.buf)
			tkn.column++
			tkn.lastChar = eofChar
		}
		return
	}
	tkn.Position = tkn.bufPos
	tkn.lastChar = uint16(tkn.buf[tkn.bufPos])
	tkn.bufPos++
	tkn.column++
}

// calcLineCol returns the 1-based line and column of the byte offset pos.
func calcLineCol(sql string, pos int) (int, int) {
	if pos > len(sql) {
		pos = len(sql)
	}
	line := 1 + strings.Count(sql[:pos], "\n")
	column := pos + 1
	if i := strings.LastIndexByte(sql[:pos], '\n'); i >= 0 {
		column = pos - i
	}
	return line, column
}

func isBlank(ch uint16) bool {
	return ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t' || ch == '\f'
}

func isLetter(ch uint16) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch uint16) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch uint16) bool {
	return isLetter(ch) || isDigit(ch)
}

func isOctal(ch byte) bool {
	return '0' <= ch && ch <= '7'
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !('0' <= ch && ch <= '9' || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F') {
			return false
		}
	}
	return true
}

func upper(ch uint16) uint16 {
	if 'a' <= ch && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}
