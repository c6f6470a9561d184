package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("SELECT a.b, `c``d` FROM t -- done\nWHERE x <=> 1.5e3 /* c */ AND y != 'it\\'s'", Options{})
	require.NoError(t, err)

	type tok struct {
		Kind  TokenKind
		Value string
	}
	var got []tok
	for _, token := range tokens {
		got = append(got, tok{token.Kind, token.Value})
	}
	assert.Equal(t, []tok{
		{ID, "SELECT"},
		{ID, "a"},
		{'.', "."},
		{ID, "b"},
		{',', ","},
		{QUOTED_ID, "c`d"},
		{ID, "FROM"},
		{ID, "t"},
		{ID, "WHERE"},
		{ID, "x"},
		{NSEQ, "<=>"},
		{EXPONENT_VALUE, "1.5e3"},
		{ID, "AND"},
		{ID, "y"},
		{NEQJ, "!="},
		{STRING, "it's"},
		{EOF, ""},
	}, got)

	where := tokens[8]
	assert.Equal(t, "WHERE", where.Keyword)
	assert.Equal(t, 2, where.Line)
	assert.Equal(t, 1, where.Column)
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		sql  string
		kind TokenKind
	}{
		{"12", INTEGER_VALUE},
		{"12L", BIGINT_LITERAL},
		{"12s", SMALLINT_LITERAL},
		{"12Y", TINYINT_LITERAL},
		{"1.", DECIMAL_VALUE},
		{".5", DECIMAL_VALUE},
		{"1e-3", EXPONENT_VALUE},
		{"1.5D", DOUBLE_LITERAL},
		{"1F", FLOAT_LITERAL},
		{"1.5bd", BIGDECIMAL_LITERAL},
		{"12abc", ID},
	}
	for _, test := range tests {
		t.Run(test.sql, func(t *testing.T) {
			tokens, err := Tokenize(test.sql, Options{})
			require.NoError(t, err)
			assert.Equal(t, test.kind, tokens[0].Kind, "got %s", tokens[0].Kind)
		})
	}
}

func TestTokenizeHint(t *testing.T) {
	tokens, err := Tokenize("SELECT /*+ REPARTITION(3) */ a", Options{})
	require.NoError(t, err)

	var kinds []TokenKind
	for _, token := range tokens {
		kinds = append(kinds, token.Kind)
	}
	assert.Equal(t, []TokenKind{ID, HINT_START, ID, '(', INTEGER_VALUE, ')', HINT_END, ID, EOF}, kinds)
}

func TestTokenizeDoubleQuotes(t *testing.T) {
	tokens, err := Tokenize(`"a b"`, Options{})
	require.NoError(t, err)
	assert.Equal(t, STRING, tokens[0].Kind)

	tokens, err = Tokenize(`"a b"`, Options{DoubleQuotedIdentifiers: true})
	require.NoError(t, err)
	assert.Equal(t, QUOTED_ID, tokens[0].Kind)
	assert.Equal(t, "a b", tokens[0].Value)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		sql    string
		msg    string
		line   int
		column int
	}{
		{"SELECT 'abc", "unterminated string literal", 1, 8},
		{"SELECT\n  /* open", "unterminated comment", 2, 3},
		{"SELECT `abc", "unterminated quoted identifier", 1, 8},
		{"SELECT #", "unrecognized character '#'", 1, 8},
	}
	for _, test := range tests {
		t.Run(test.sql, func(t *testing.T) {
			_, err := Tokenize(test.sql, Options{})
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, ErrorKindLexical, perr.Kind)
			assert.Equal(t, test.msg, perr.Message)
			assert.Equal(t, test.line, perr.Line)
			assert.Equal(t, test.column, perr.Column)
		})
	}
}
