package vu

import (
	"bufio"
	"io"
	"strconv"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// MAX_LINE is the longest source line, in bytes, the lexer accepts.
const MAX_LINE = 1 << 20

// Predefined expression names
var sysPredefine = map[string]int64{
	"INPUT_SLOTS":    INPUT_SLOTS,
	"CONSTANT_SLOTS": CONSTANT_SLOTS,
	"PROGRAM_MAX":    PROGRAM_MAX,
}

// Lexer splits assembly source into tokens.
//
// Identifiers start with a letter or underscore, literals with a digit.
// Whitespace and commas separate tokens, and ';' or '//' start a comment
// that runs to the end of the line. $(...) is evaluated as a Starlark
// expression and becomes a single integer literal.
type Lexer struct {
	Name      string           // Source name, used in positions.
	Predefine map[string]int64 // Additional names visible to $(...) expressions.
}

// Scan reads all tokens from input.
func (lx *Lexer) Scan(input io.Reader) (tokens []Token, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MAX_LINE)

	lineno := 0
	for scanner.Scan() {
		lineno += 1
		tokens, err = lx.scanLine(tokens, []rune(scanner.Text()), lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrSyntax{Pos: Pos{Name: lx.Name, Line: lineno + 1, Column: 1}, Err: err}
	}

	return
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isSeparator(ch rune) bool {
	return ch == ',' || unicode.IsSpace(ch)
}

// scanLine appends the tokens of a single source line.
func (lx *Lexer) scanLine(tokens []Token, line []rune, lineno int) ([]Token, error) {
	pos := func(col int) Pos {
		return Pos{Name: lx.Name, Line: lineno, Column: col + 1}
	}

	for n := 0; n < len(line); {
		ch := line[n]
		switch {
		case isSeparator(ch):
			n++
			continue
		case ch == ';':
			return tokens, nil
		case ch == '/' && n+1 < len(line) && line[n+1] == '/':
			return tokens, nil
		case ch == '$' && n+1 < len(line) && line[n+1] == '(':
			end, ok := matchParen(line, n+1)
			if !ok {
				return tokens, &ErrSyntax{Pos: pos(n), Token: string(line[n:]), Err: ErrUnexpectedEndOfInput}
			}
			expr := string(line[n+2 : end])
			value, err := lx.eval(expr)
			if err != nil {
				return tokens, &ErrSyntax{Pos: pos(n), Token: string(line[n : end+1]), Err: err}
			}
			tokens = append(tokens, Token{Kind: TOKEN_INT, Text: strconv.FormatInt(value, 10), Pos: pos(n), Width: end + 1 - n})
			n = end + 1
		case isIdentStart(ch), unicode.IsDigit(ch):
			kind := TOKEN_IDENT
			if unicode.IsDigit(ch) {
				kind = TOKEN_INT
			}
			start := n
			for n < len(line) && isIdentPart(line[n]) {
				n++
			}
			tokens = append(tokens, Token{Kind: kind, Text: string(line[start:n]), Pos: pos(start), Width: n - start})
		default:
			tokens = append(tokens, Token{Kind: TOKEN_PUNCT, Text: string(ch), Pos: pos(n), Width: 1})
			n++
		}
	}

	return tokens, nil
}

// matchParen finds the closing parenthesis for the one at open.
func matchParen(line []rune, open int) (end int, ok bool) {
	depth := 0
	for end = open; end < len(line); end++ {
		switch line[end] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				ok = true
				return
			}
		}
	}
	return
}

// eval does compile-time $(...) evaluations.
func (lx *Lexer) eval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: lx.Name}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range sysPredefine {
		pred[key] = starlark.MakeInt64(val)
	}
	for key, val := range lx.Predefine {
		pred[key] = starlark.MakeInt64(val)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrExpression{Expr: expr}
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = &ErrExpression{Expr: expr}
		return
	}

	return
}
