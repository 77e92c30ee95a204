// Package sqlformat re-indents SQL statements ("pretty printing") without
// parsing them.
//
// The formatter is purely lexical: it splits the input into words and
// single-character delimiter tokens, tracks a nesting depth through a small
// set of reserved clause keywords, and re-emits the tokens with newlines and
// two-space indentation. It never validates its input; any string (including
// malformed SQL, unbalanced parentheses, or non-SQL text) produces a
// deterministic output rather than an error.
//
// Keyword matching is exact and case sensitive: lowercase `select` is treated
// as an ordinary word. Whitespace between tokens is carried through verbatim,
// so output lines may end with the spaces that preceded a line break in the
// input. The formatter is intentionally small and heuristic; it is not a full
// SQL beautifier and makes no attempt at dialect awareness.
//
// Example usage:
//
//	fmt.Println(sqlformat.Format("SELECT a, b FROM t WHERE a = 1"))
//
// Output (modulo trailing whitespace):
//
//	SELECT
//	  a,
//	  b
//	FROM
//	  t
//	WHERE
//	  a = 1
package sqlformat
