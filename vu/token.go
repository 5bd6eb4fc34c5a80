package vu

import (
	"fmt"
	"unicode/utf8"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_IDENT = TokenKind(0) // ident
	TOKEN_INT   = TokenKind(1) // int
	TOKEN_PUNCT = TokenKind(2) // punct
)

// Pos is a location in an assembly source.
type Pos struct {
	Name   string // Source name, may be empty.
	Line   int    // 1-based line.
	Column int    // 1-based column, in runes.
}

func (pos Pos) String() string {
	if len(pos.Name) == 0 {
		return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	return fmt.Sprintf("%v:%d:%d", pos.Name, pos.Line, pos.Column)
}

// Token is a single lexical unit of assembly source.
type Token struct {
	Kind  TokenKind
	Text  string
	Pos   Pos
	Width int // Source width in runes. Zero means the width of Text.
}

// End is the position just past the token in its source.
func (tok Token) End() Pos {
	pos := tok.Pos
	if tok.Width > 0 {
		pos.Column += tok.Width
	} else {
		pos.Column += utf8.RuneCountInString(tok.Text)
	}
	return pos
}

// Ident creates an identifier token without a source position.
func Ident(name string) Token {
	return Token{Kind: TOKEN_IDENT, Text: name}
}

// Int creates an integer literal token without a source position.
func Int(value uint64) Token {
	return Token{Kind: TOKEN_INT, Text: fmt.Sprintf("%d", value)}
}
