package main

import (
	"strings"
	"unicode"
)

// Token is one word of input; IsString marks text captured by a ." literal.
type Token struct {
	Text     string
	IsString bool
}

// Tokenizer scans a single line of input.
type Tokenizer struct {
	input string
	index int
}

func NewTokenizer(line string) *Tokenizer {
	return &Tokenizer{input: line}
}

// HasMore returns true if any non-whitespace remains past the cursor.
func (tok *Tokenizer) HasMore() bool {
	return strings.IndexFunc(tok.input[tok.index:], isNotSpace) >= 0
}

// IsDefinitionStart returns true if the whole line opens a definition: a ":"
// preceded only by whitespace.
func (tok *Tokenizer) IsDefinitionStart() bool {
	return strings.HasPrefix(strings.TrimLeftFunc(tok.input, unicode.IsSpace), ":")
}

// IsDefinitionEnd returns true if the whole line closes a definition: a ";"
// followed only by whitespace.
func (tok *Tokenizer) IsDefinitionEnd() bool {
	return strings.HasSuffix(strings.TrimRightFunc(tok.input, unicode.IsSpace), ";")
}

// NextToken consumes and returns the next token, skipping any ( comments ).
// Returns ErrEndOfInput if no token remains.
func (tok *Tokenizer) NextToken() (Token, error) {
	tok.skipSpace()

	switch {
	case tok.hasPrefix(`." `):
		tok.index += 3
		text := tok.until('"')
		return tok.token(text, true)

	case tok.hasPrefix(`( `):
		tok.index += 2
		tok.until(')')
		return tok.NextToken()

	default:
		start := tok.index
		if n := strings.IndexFunc(tok.input[start:], unicode.IsSpace); n >= 0 {
			tok.index += n
		} else {
			tok.index = len(tok.input)
		}
		return tok.token(tok.input[start:tok.index], false)
	}
}

func (tok *Tokenizer) token(text string, isString bool) (Token, error) {
	if text == "" {
		return Token{}, ErrEndOfInput
	}
	return Token{Text: text, IsString: isString}, nil
}

func (tok *Tokenizer) hasPrefix(prefix string) bool {
	return strings.HasPrefix(tok.input[tok.index:], prefix)
}

// until returns everything up to the delimiter, leaving the cursor after it;
// an unterminated run consumes the rest of the line.
func (tok *Tokenizer) until(delim byte) string {
	start := tok.index
	if n := strings.IndexByte(tok.input[start:], delim); n >= 0 {
		tok.index += n + 1
		return tok.input[start : start+n]
	}
	tok.index = len(tok.input)
	return tok.input[start:]
}

func (tok *Tokenizer) skipSpace() {
	if n := strings.IndexFunc(tok.input[tok.index:], isNotSpace); n >= 0 {
		tok.index += n
	} else {
		tok.index = len(tok.input)
	}
}

func isNotSpace(r rune) bool { return !unicode.IsSpace(r) }
