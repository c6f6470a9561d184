package parser

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/k0kubun/sparksql/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests, err := testutil.ReadTests("testdata/*.yml")
	if err != nil {
		t.Fatal(err)
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewParser(Options{
				ANSI:                           test.Options.ANSI,
				LegacySetOpsPrecedence:         test.Options.LegacySetOpsPrecedence,
				LegacyExponentLiteralAsDecimal: test.Options.LegacyExponentLiteralAsDecimal,
				DoubleQuotedIdentifiers:        test.Options.DoubleQuotedIdentifiers,
			})

			output, tables, err := parseRule(p, test.Rule, test.SQL)
			if test.Error != nil {
				require.Error(t, err, "parsed as %q", output)
				var perr *ParseError
				require.True(t, errors.As(err, &perr), "unexpected error type %T", err)
				assert.Equal(t, *test.Error, perr.Message)
				if test.ErrorKind != "" {
					assert.Equal(t, test.ErrorKind, perr.Kind.String())
				}
				if test.Line != 0 {
					assert.Equal(t, test.Line, perr.Line, "line")
				}
				if test.Column != 0 {
					assert.Equal(t, test.Column, perr.Column, "column")
				}
				return
			}
			require.NoError(t, err)

			if test.Output != nil {
				assert.Equal(t, *test.Output, output)
			}

			// The printed form must read back to the same text.
			reparsed, _, err := parseRule(p, test.Rule, output)
			require.NoError(t, err, "reparsing %q", output)
			assert.Equal(t, output, reparsed)

			if test.Tables != nil {
				var names []string
				for _, table := range tables {
					names = append(names, strings.Join(table, "."))
				}
				assert.Equal(t, test.Tables, names)
			}
		})
	}
}

// parseRule parses sql with the entry point named by rule and returns the
// canonical text together with the referenced tables of statements.
func parseRule(p *Parser, rule string, sql string) (string, []MultipartIdentifier, error) {
	switch rule {
	case "", "statement":
		stmt, err := p.ParseStatement(sql)
		if err != nil {
			return "", nil, err
		}
		return String(stmt), TableNames(stmt), nil
	case "expression":
		expr, err := p.ParseExpression(sql)
		if err != nil {
			return "", nil, err
		}
		var tables []MultipartIdentifier
		_ = Walk(func(node SQLNode) (bool, error) {
			if query, ok := node.(*Query); ok {
				tables = append(tables, TableNames(query)...)
				return false, nil
			}
			return true, nil
		}, expr)
		return String(expr), tables, nil
	case "data_type":
		typ, err := p.ParseDataType(sql)
		if err != nil {
			return "", nil, err
		}
		return String(typ), nil, nil
	case "table_identifier":
		ident, err := p.ParseTableIdentifier(sql)
		if err != nil {
			return "", nil, err
		}
		return String(ident), nil, nil
	case "function_identifier":
		ident, err := p.ParseFunctionIdentifier(sql)
		if err != nil {
			return "", nil, err
		}
		return String(ident), nil, nil
	case "multipart_identifier":
		ident, err := p.ParseMultipartIdentifier(sql)
		if err != nil {
			return "", nil, err
		}
		return String(ident), nil, nil
	case "column_schema":
		cols, err := p.ParseColumnSchema(sql)
		if err != nil {
			return "", nil, err
		}
		parts := make([]string, len(cols))
		for i, col := range cols {
			parts[i] = String(col)
		}
		return strings.Join(parts, ", "), nil, nil
	case "script":
		stmts, err := p.ParseScript(sql)
		if err != nil {
			return "", nil, err
		}
		var parts []string
		var tables []MultipartIdentifier
		for _, stmt := range stmts {
			parts = append(parts, String(stmt.Statement))
			tables = append(tables, TableNames(stmt.Statement)...)
		}
		return strings.Join(parts, "; "), tables, nil
	default:
		return "", nil, fmt.Errorf("unknown rule %q", rule)
	}
}

func TestParseSelectStructure(t *testing.T) {
	stmt, err := ParseStatement("SELECT a, b + 1 AS c FROM t WHERE a > 1")
	require.NoError(t, err)

	query, ok := stmt.(*Query)
	require.True(t, ok, "got %T", stmt)
	sel, ok := query.Body.(*Select)
	require.True(t, ok, "got %T", query.Body)

	require.Len(t, sel.Exprs, 2)
	assert.Equal(t, &ColumnRef{Name: "a"}, sel.Exprs[0].Expr)
	assert.Equal(t, []string{"c"}, sel.Exprs[1].Names)
	sum, ok := sel.Exprs[1].Expr.(*BinaryExpr)
	require.True(t, ok, "got %T", sel.Exprs[1].Expr)
	assert.Equal(t, "+", sum.Operator)

	cmp, ok := sel.Where.(*Comparison)
	require.True(t, ok, "got %T", sel.Where)
	assert.Equal(t, ">", cmp.Operator)
	assert.Equal(t, []MultipartIdentifier{{"t"}}, TableNames(stmt))
}

func TestParseSelectClauses(t *testing.T) {
	stmt, err := ParseStatement("SELECT a, b FROM t WHERE a > 1 GROUP BY b HAVING COUNT(*) > 2 ORDER BY b DESC LIMIT 10")
	require.NoError(t, err)

	query, ok := stmt.(*Query)
	require.True(t, ok, "got %T", stmt)
	sel, ok := query.Body.(*Select)
	require.True(t, ok, "got %T", query.Body)

	require.Len(t, sel.Exprs, 2)
	assert.Equal(t, &ColumnRef{Name: "a"}, sel.Exprs[0].Expr)
	assert.Equal(t, &ColumnRef{Name: "b"}, sel.Exprs[1].Expr)

	require.NotNil(t, sel.From)
	require.Len(t, sel.From.Relations, 1)
	source, ok := sel.From.Relations[0].(*TableName)
	require.True(t, ok, "got %T", sel.From.Relations[0])
	assert.Equal(t, MultipartIdentifier{"t"}, source.Name)

	assert.Equal(t, "a > 1", String(sel.Where))

	require.NotNil(t, sel.GroupBy)
	assert.Equal(t, []Expr{&ColumnRef{Name: "b"}}, sel.GroupBy.Exprs)

	having, ok := sel.Having.(*Comparison)
	require.True(t, ok, "got %T", sel.Having)
	assert.Equal(t, ">", having.Operator)
	count, ok := having.Left.(*FunctionCall)
	require.True(t, ok, "got %T", having.Left)
	assert.Equal(t, MultipartIdentifier{"COUNT"}, count.Name)
	assert.Equal(t, []Expr{&Star{}}, count.Args)
	assert.Equal(t, "2", String(having.Right))

	require.Len(t, query.OrderBy, 1)
	assert.Equal(t, &ColumnRef{Name: "b"}, query.OrderBy[0].Expr)
	assert.Equal(t, "DESC", query.OrderBy[0].Direction)

	limit, ok := query.Limit.(*NumericLiteral)
	require.True(t, ok, "got %T", query.Limit)
	v, err := limit.Value()
	require.NoError(t, err)
	assert.Equal(t, int32(10), v)
}

func TestParseCreateTableStructure(t *testing.T) {
	stmt, err := ParseStatement("CREATE TABLE t (a INT, b STRING) USING parquet OPTIONS ('path'='/tmp')")
	require.NoError(t, err)

	create, ok := stmt.(*CreateTable)
	require.True(t, ok, "got %T", stmt)
	assert.Equal(t, MultipartIdentifier{"t"}, create.Name)
	assert.False(t, create.Hive)

	type column struct {
		Name string
		Type string
	}
	var columns []column
	for _, col := range create.Columns {
		columns = append(columns, column{col.Name, String(col.Type)})
	}
	assert.Equal(t, []column{{"a", "INT"}, {"b", "STRING"}}, columns)

	assert.Equal(t, "parquet", create.Provider)
	require.Len(t, create.Options, 1)
	assert.Equal(t, "path", create.Options[0].Key)
	require.NotNil(t, create.Options[0].Value)
	assert.Equal(t, "/tmp", *create.Options[0].Value)
}

func TestParseDescribeTarget(t *testing.T) {
	tests := []struct {
		sql    string
		option string
	}{
		{"DESCRIBE TABLE t", ""},
		{"DESC TABLE EXTENDED t", "EXTENDED"},
		{"DESCRIBE FORMATTED t", "FORMATTED"},
	}
	for _, test := range tests {
		t.Run(test.sql, func(t *testing.T) {
			stmt, err := ParseStatement(test.sql)
			require.NoError(t, err)
			desc, ok := stmt.(*DescribeRelation)
			require.True(t, ok, "got %T", stmt)
			assert.Equal(t, test.option, desc.Option)
			assert.Equal(t, MultipartIdentifier{"t"}, desc.Table)
		})
	}

	stmt, err := ParseStatement("DESCRIBE QUERY TABLE t")
	require.NoError(t, err)
	desc, ok := stmt.(*DescribeQuery)
	require.True(t, ok, "got %T", stmt)
	assert.IsType(t, &TableQuery{}, desc.Query.Body)
}

func TestParseTransformFunction(t *testing.T) {
	stmt, err := ParseStatement("SELECT transform(arr, x -> x + 1) FROM t")
	require.NoError(t, err)
	sel := stmt.(*Query).Body.(*Select)
	call, ok := sel.Exprs[0].Expr.(*FunctionCall)
	require.True(t, ok, "got %T", sel.Exprs[0].Expr)
	require.Len(t, call.Args, 2)
	assert.IsType(t, &Lambda{}, call.Args[1])

	stmt, err = ParseStatement("SELECT TRANSFORM(a) USING 'cat' FROM t")
	require.NoError(t, err)
	assert.IsType(t, &TransformSelect{}, stmt.(*Query).Body)
}

func TestParseSetOperationPrecedence(t *testing.T) {
	sql := "SELECT 1 UNION SELECT 2 INTERSECT SELECT 3"

	stmt, err := ParseStatement(sql)
	require.NoError(t, err)
	union := stmt.(*Query).Body.(*SetOperation)
	assert.Equal(t, UnionStr, union.Op)
	assert.Equal(t, IntersectStr, union.Right.(*SetOperation).Op)

	legacy := NewParser(Options{LegacySetOpsPrecedence: true})
	stmt, err = legacy.ParseStatement(sql)
	require.NoError(t, err)
	intersect := stmt.(*Query).Body.(*SetOperation)
	assert.Equal(t, IntersectStr, intersect.Op)
	assert.Equal(t, UnionStr, intersect.Left.(*SetOperation).Op)
}

func TestParseInsertTarget(t *testing.T) {
	stmt, err := ParseStatement("INSERT OVERWRITE TABLE db.t PARTITION (p = 1) SELECT * FROM s")
	require.NoError(t, err)

	insert, ok := stmt.(*Insert)
	require.True(t, ok, "got %T", stmt)
	target, ok := insert.Target.(*InsertIntoTable)
	require.True(t, ok, "got %T", insert.Target)
	assert.True(t, target.Overwrite)
	assert.Equal(t, MultipartIdentifier{"db", "t"}, target.Table)
	require.Len(t, target.Partition, 1)
	assert.Equal(t, "p", target.Partition[0].Name)
	assert.Equal(t, []MultipartIdentifier{{"db", "t"}, {"s"}}, TableNames(stmt))
}

func TestParseExponentLiteralAsDecimal(t *testing.T) {
	expr, err := ParseExpression("1E10")
	require.NoError(t, err)
	assert.Equal(t, NumberDouble, expr.(*NumericLiteral).Kind)

	legacy := NewParser(Options{LegacyExponentLiteralAsDecimal: true})
	expr, err = legacy.ParseExpression("1E10")
	require.NoError(t, err)
	assert.Equal(t, NumberDecimal, expr.(*NumericLiteral).Kind)
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseStatement("SELECT a\nFROM t WHERE")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ErrorKindSyntax, perr.Kind)
	assert.Equal(t, "<EOF>", perr.Token)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 13, perr.Column)
	assert.NotEmpty(t, perr.Rule)
	assert.Equal(t, "FROM t WHERE\n            ^", perr.Context())
	assert.True(t, strings.HasPrefix(err.Error(), "syntax error at line 2, column 13 near '<EOF>': unexpected end of input"), err.Error())
}

func TestParseErrorContextTruncation(t *testing.T) {
	sql := "SELECT " + strings.Repeat("a, ", 60) + "b 1"
	_, err := ParseStatement(sql)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	lines := strings.Split(perr.Context(), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "..."), lines[0])
	caret := strings.Index(lines[1], "^")
	assert.Equal(t, "1", lines[0][caret:caret+1])
}

func TestParseScriptPositions(t *testing.T) {
	sql := "-- first\nSELECT 1;\nSELECT 'a;b' /* trailing */;\n"
	stmts, err := ParseScript(sql)
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	assert.Equal(t, "SELECT 1", stmts[0].SQL)
	assert.Equal(t, strings.Index(sql, "SELECT 1"), stmts[0].Pos)
	assert.Contains(t, stmts[0].Comments.Leading, "-- first")

	assert.Equal(t, "SELECT 'a;b'", stmts[1].SQL)
	assert.Equal(t, strings.Index(sql, "SELECT 'a;b'"), stmts[1].Pos)
	assert.Equal(t, "/* trailing */", stmts[1].Comments.Trailing)
	assert.Equal(t, "SELECT 'a;b'", String(stmts[1].Statement))
}

func TestParseScriptComments(t *testing.T) {
	sql := "-- load users\nSELECT 1; /* block /* nested */ still block */ SELECT 2 -- tail\n;\n-- orphan"
	stmts, err := ParseScript(sql)
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	assert.Equal(t, MarginComments{Leading: "-- load users"}, stmts[0].Comments)
	assert.Equal(t, MarginComments{
		Leading:  "/* block /* nested */ still block */",
		Trailing: "-- tail",
	}, stmts[1].Comments)
	assert.Equal(t, "SELECT 2", stmts[1].SQL)
}

func TestParseScriptLexicalError(t *testing.T) {
	_, err := ParseScript("SELECT 1;\nSELECT 'x")
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ErrorKindLexical, perr.Kind)
	assert.Equal(t, "script", perr.Rule)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 8, perr.Column)
}

func TestParseDeepNesting(t *testing.T) {
	sql := strings.Repeat("(", 5000) + "1" + strings.Repeat(")", 5000)
	_, err := ParseExpression(sql)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
}

func TestParserConcurrentUse(t *testing.T) {
	p := NewParser(Options{ANSI: true})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sql := fmt.Sprintf("SELECT a + %d FROM t%d", i, i)
			stmt, err := p.ParseStatement(sql)
			if assert.NoError(t, err) {
				assert.Equal(t, sql, String(stmt))
			}
		}(i)
	}
	wg.Wait()
}
