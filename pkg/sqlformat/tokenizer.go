package sqlformat

import "strings"

// delimiters are the characters that both separate tokens and are emitted as
// tokens in their own right. The first five are whitespace; the remaining
// three are structural and drive line breaks in the formatter.
const (
	delimiters           = " \t\n\r\f(),"
	whitespaceDelimiters = " \t\n\r\f"
)

// TokenKind classifies a token produced by the Tokenizer.
type TokenKind int

const (
	// TokenWord is a maximal run of non-delimiter characters.
	TokenWord TokenKind = iota

	// TokenDelimiter is a single delimiter character.
	TokenDelimiter
)

type (
	// Token is an immutable slice of the input string. Delimiter tokens are
	// always exactly one character long; every other token is a word.
	Token struct {
		Text string
		Kind TokenKind
	}

	// Tokenizer splits an input string into a finite sequence of tokens.
	// Delimiter characters are never merged with each other or with adjacent
	// words, empty tokens are never produced, and concatenating the text of
	// every token in order reconstructs the input exactly.
	//
	// A Tokenizer is single use; create a new one for each input.
	//
	// Example:
	//
	//	tok := sqlformat.NewTokenizer("SELECT a")
	//	for t, ok := tok.Next(); ok; t, ok = tok.Next() {
	//		fmt.Printf("%q\n", t.Text)
	//	}
	Tokenizer struct {
		input string
		pos   int
	}
)

// IsStructural reports whether the token is one of the structural delimiters
// `(`, `)`, or `,`.
func (t Token) IsStructural() bool {
	return t.Kind == TokenDelimiter && !strings.Contains(whitespaceDelimiters, t.Text)
}

// NewTokenizer creates a Tokenizer over the given input string.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Next returns the next token in the sequence. The second return value is
// false once the input is exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= len(t.input) {
		return Token{}, false
	}

	// All delimiter characters are ASCII, so scanning bytes is safe even for
	// multi-byte UTF-8 words.
	if isDelimiter(t.input[t.pos]) {
		tok := Token{Text: t.input[t.pos : t.pos+1], Kind: TokenDelimiter}
		t.pos++
		return tok, true
	}

	start := t.pos
	for t.pos < len(t.input) && !isDelimiter(t.input[t.pos]) {
		t.pos++
	}

	return Token{Text: t.input[start:t.pos], Kind: TokenWord}, true
}

func isDelimiter(c byte) bool {
	return strings.IndexByte(delimiters, c) >= 0
}
