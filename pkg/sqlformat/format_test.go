package sqlformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/sqltidy/pkg/sqlformat"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected string
	}{
		{
			name:     "empty input",
			sql:      "",
			expected: "",
		},
		{
			name: "select with columns and where",
			sql:  "SELECT a, b FROM t WHERE a = 1",
			expected: "SELECT \n" +
				"  a,\n" +
				"  b \n" +
				"FROM \n" +
				"  t \n" +
				"WHERE \n" +
				"  a = 1",
		},
		{
			name: "left outer join",
			sql:  "SELECT a FROM t LEFT OUTER JOIN u ON t.id = u.id",
			expected: "SELECT \n" +
				"  a \n" +
				"FROM \n" +
				"  t \n" +
				"LEFT OUTER JOIN \n" +
				"  u \n" +
				"ON \n" +
				"  t.id = u.id",
		},
		{
			name: "parenthesized condition",
			sql:  "SELECT a FROM t WHERE (a = 1 OR b = 2)",
			expected: "SELECT \n" +
				"  a \n" +
				"FROM \n" +
				"  t \n" +
				"WHERE (\n" +
				"  a = 1 \n" +
				"OR \n" +
				"  b = 2\n" +
				"  )",
		},
		{
			name: "group by and order by stay on one line",
			sql:  "SELECT a FROM t GROUP BY a ORDER BY a",
			expected: "SELECT \n" +
				"  a \n" +
				"FROM \n" +
				"  t \n" +
				"GROUP BY \n" +
				"  a \n" +
				"ORDER BY \n" +
				"  a",
		},
		{
			name: "no reserved keywords still opens a clause",
			sql:  "foo bar",
			expected: "\n" +
				"  foo bar",
		},
		{
			name:     "lowercase keywords are ordinary words",
			sql:      "select * from t",
			expected: "\n  select * from t",
		},
		{
			name:     "unmatched closing paren",
			sql:      ")",
			expected: "\n)",
		},
		{
			name:     "delimiters only",
			sql:      "  ,  ",
			expected: "  ,\n ",
		},
		{
			name:     "consecutive structural delimiters collapse",
			sql:      "((",
			expected: "(",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Format(tt.sql))
		})
	}
}

func TestFormat_Deterministic(t *testing.T) {
	sql := "SELECT a, b FROM t WHERE a = 1 AND b = 2 ORDER BY a"

	first := Format(sql)
	for range 10 {
		require.Equal(t, first, Format(sql))
	}
}

func TestFormat_DepthOnlyChangesAtKeywordBoundaries(t *testing.T) {
	// Lowercase keywords never match the reserved set, so the only depth
	// change is the initial clause opened by the first word.
	formatted := Format("select a, b from t where a = 1")
	require.Equal(t, 1, strings.Count(formatted, "\n  select"))
	require.NotContains(t, formatted, "\nfrom")
	require.NotContains(t, formatted, "\nwhere")

	// Uppercase keywords close and reopen clauses.
	formatted = Format("SELECT a FROM t")
	require.Contains(t, formatted, "\nFROM")
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, "SELECT a FROM t"))
	require.Equal(t, Format("SELECT a FROM t"), buf.String())
}

func TestFprint_WriterError(t *testing.T) {
	err := Fprint(failingWriter{}, "SELECT a FROM t")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to write formatted SQL")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

var errWrite = errors.New("write failed")
