package sqlformat

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// indentWidth is the number of spaces emitted per nesting level.
const indentWidth = 2

// state is the accumulator threaded through a single Format call. Calls share
// no mutable state, so Format is safe for concurrent use.
type state struct {
	depth          int
	lastReserved   bool
	lastDelimNonWS bool
	out            strings.Builder
}

// Format re-indents the given SQL string and returns the result.
//
// Format is a total function: it never fails, and repeated calls with the
// same input produce byte-identical output. The input is treated as opaque
// text; nothing about it is validated.
//
// Example:
//
//	formatted := sqlformat.Format("SELECT id FROM users")
func Format(sql string) string {
	// lastReserved starts true so the first word of the input is indented as
	// if it opened a clause.
	s := state{lastReserved: true}

	tok := NewTokenizer(sql)
	for t, ok := tok.Next(); ok; t, ok = tok.Next() {
		if t.Kind == TokenDelimiter {
			s.delimiter(t)
		} else {
			s.word(t.Text)
		}
	}

	return s.out.String()
}

// Fprint writes the re-indented form of sql to w. The formatting itself
// cannot fail; any returned error comes from the writer.
func Fprint(w io.Writer, sql string) error {
	if _, err := io.WriteString(w, Format(sql)); err != nil {
		return errors.Wrap(err, "failed to write formatted SQL")
	}
	return nil
}

// delimiter handles a single-character delimiter token. A closing paren is
// always dropped to its own line at the current depth. Any other delimiter
// that immediately follows a structural delimiter is suppressed; a comma
// additionally breaks the line after itself.
func (s *state) delimiter(t Token) {
	switch {
	case t.Text == ")":
		s.newline()
		s.out.WriteString(t.Text)
	case !s.lastDelimNonWS:
		s.out.WriteString(t.Text)
	}

	if t.Text == "," {
		s.newline()
	}

	s.lastDelimNonWS = t.IsStructural()
}

// word handles a word token. The first non-reserved word after a reserved one
// opens a clause body (depth++, indented line); a reserved word after a
// non-reserved one closes it (depth--, bare newline). Runs of either kind
// stay on the current line.
func (s *state) word(text string) {
	s.lastDelimNonWS = false

	reserved := IsReserved(text)
	switch {
	case reserved && !s.lastReserved:
		s.depth--
		s.out.WriteString("\n")
	case !reserved && s.lastReserved:
		s.depth++
		s.newline()
	}

	s.lastReserved = reserved
	s.out.WriteString(text)
}

// newline breaks the line and pads to the current depth. Depth can go
// negative on unbalanced input; padding bottoms out at zero while the counter
// itself is left alone.
func (s *state) newline() {
	s.out.WriteString("\n")
	if n := s.depth * indentWidth; n > 0 {
		s.out.WriteString(strings.Repeat(" ", n))
	}
}
