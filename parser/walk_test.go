package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkOrder(t *testing.T) {
	stmt, err := ParseStatement("SELECT a, f(b) FROM t WHERE c = 1 ORDER BY d")
	require.NoError(t, err)

	var columns []string
	err = Walk(func(node SQLNode) (bool, error) {
		if col, ok := node.(*ColumnRef); ok {
			columns = append(columns, col.Name)
		}
		return true, nil
	}, stmt)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, columns)
}

func TestWalkSkipsChildren(t *testing.T) {
	stmt, err := ParseStatement("SELECT a FROM t WHERE EXISTS (SELECT b FROM s)")
	require.NoError(t, err)

	var visited []string
	err = Walk(func(node SQLNode) (bool, error) {
		switch n := node.(type) {
		case *Exists:
			return false, nil
		case *ColumnRef:
			visited = append(visited, n.Name)
		}
		return true, nil
	}, stmt)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, visited)
}

func TestWalkStopsOnError(t *testing.T) {
	stmt, err := ParseStatement("SELECT a, b, c FROM t")
	require.NoError(t, err)

	stop := errors.New("stop")
	count := 0
	err = Walk(func(node SQLNode) (bool, error) {
		if _, ok := node.(*ColumnRef); ok {
			count++
			if count == 2 {
				return false, stop
			}
		}
		return true, nil
	}, stmt)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, count)
}

func TestTableNames(t *testing.T) {
	tests := []struct {
		sql  string
		want []string
	}{
		{"SELECT * FROM a JOIN b ON a.x = b.x, A", []string{"a", "b"}},
		{"WITH c AS (SELECT * FROM t) SELECT * FROM c, db.u", []string{"t", "db.u"}},
		{"INSERT INTO t SELECT * FROM s WHERE x IN (SELECT y FROM u)", []string{"t", "s", "u"}},
		{"MERGE INTO t USING s ON t.id = s.id WHEN MATCHED THEN DELETE", []string{"t", "s"}},
		{"DELETE FROM t WHERE x = 1", []string{"t"}},
		{"UPDATE t SET x = 1", []string{"t"}},
		{"SELECT 1", nil},
	}
	for _, test := range tests {
		t.Run(test.sql, func(t *testing.T) {
			stmt, err := ParseStatement(test.sql)
			require.NoError(t, err)

			var got []string
			for _, name := range TableNames(stmt) {
				got = append(got, String(name))
			}
			assert.Equal(t, test.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	stmt, err := ParseStatement("SELECT T.A AS X, 'Keep' FROM DB.T AS T WHERE `B` = 'X'")
	require.NoError(t, err)

	Normalize(stmt)
	assert.Equal(t, "SELECT t.a AS x, 'Keep' FROM db.t AS t WHERE b = 'X'", String(stmt))
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"select A from T", "SELECT a FROM t", true},
		{"SELECT a FROM t WHERE x <> 1", "SELECT a FROM t WHERE x != 1", true},
		{"SELECT (a + b) FROM t", "SELECT a + b FROM t", true},
		{"SELECT 'A'", "SELECT 'a'", false},
		{"SELECT a FROM t", "SELECT a FROM s", false},
	}
	p := NewParser(Options{})
	for _, test := range tests {
		t.Run(fmt.Sprintf("%s vs %s", test.a, test.b), func(t *testing.T) {
			got, err := p.Equivalent(test.a, test.b)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}

	_, err := p.Equivalent("SELECT", "SELECT 1")
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	a, err := ParseExpression("x + 1")
	require.NoError(t, err)
	b, err := ParseExpression("x+1")
	require.NoError(t, err)

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, nil))
	assert.True(t, Equal(nil, nil))
}
