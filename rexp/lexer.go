package rexp

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenString
	tokenRef
	tokenAnd
	tokenOr
	tokenNot
	tokenOpenParen
	tokenCloseParen
	tokenComma
	tokenSemicolon
	tokenColon
	tokenArrow
)

type token struct {
	kind tokenKind
	val  string
	pos  int
}

type lexer struct {
	code string
	pos  int
}

func newLexer(code string) *lexer {
	return &lexer{code: code}
}

func lexError(pos int, format string, args ...any) error {
	return fmt.Errorf("position %d: %s", pos, fmt.Sprintf(format, args...))
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

func (l *lexer) skipSpaceAndComments() {
	for l.pos < len(l.code) {
		c := l.code[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.pos++
		case c == '/' && l.pos+1 < len(l.code) && l.code[l.pos+1] == '/':
			for l.pos < len(l.code) && l.code[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *lexer) scanString(start int) (token, error) {
	var sb strings.Builder
	l.pos++
	for l.pos < len(l.code) {
		c := l.code[l.pos]
		switch c {
		case '"':
			l.pos++
			return token{kind: tokenString, val: sb.String(), pos: start}, nil
		case '\\':
			l.pos++
			if l.pos >= len(l.code) {
				return token{}, lexError(start, "unterminated string")
			}

			sb.WriteByte(l.code[l.pos])
			l.pos++
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}

	return token{}, lexError(start, "unterminated string")
}

func (l *lexer) scanIdent(start int) token {
	for l.pos < len(l.code) && isIdentChar(l.code[l.pos]) {
		l.pos++
	}

	return token{kind: tokenIdent, val: l.code[start:l.pos], pos: start}
}

// scanRef scans a handler reference of the form <name>.
func (l *lexer) scanRef(start int) (token, error) {
	l.pos++
	nameStart := l.pos
	for l.pos < len(l.code) && isIdentChar(l.code[l.pos]) {
		l.pos++
	}

	if l.pos == nameStart || l.pos >= len(l.code) || l.code[l.pos] != '>' {
		return token{}, lexError(start, "invalid handler reference")
	}

	name := l.code[nameStart:l.pos]
	l.pos++
	return token{kind: tokenRef, val: name, pos: start}, nil
}

func (l *lexer) next() (token, error) {
	l.skipSpaceAndComments()
	if l.pos >= len(l.code) {
		return token{kind: tokenEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.code[l.pos]
	switch {
	case c == '"':
		return l.scanString(start)
	case c == '<':
		return l.scanRef(start)
	case isIdentStart(c):
		return l.scanIdent(start), nil
	}

	two := ""
	if l.pos+1 < len(l.code) {
		two = l.code[l.pos : l.pos+2]
	}

	switch two {
	case "&&":
		l.pos += 2
		return token{kind: tokenAnd, val: two, pos: start}, nil
	case "||":
		l.pos += 2
		return token{kind: tokenOr, val: two, pos: start}, nil
	case "->":
		l.pos += 2
		return token{kind: tokenArrow, val: two, pos: start}, nil
	}

	l.pos++
	switch c {
	case '!':
		return token{kind: tokenNot, val: "!", pos: start}, nil
	case '(':
		return token{kind: tokenOpenParen, val: "(", pos: start}, nil
	case ')':
		return token{kind: tokenCloseParen, val: ")", pos: start}, nil
	case ',':
		return token{kind: tokenComma, val: ",", pos: start}, nil
	case ';':
		return token{kind: tokenSemicolon, val: ";", pos: start}, nil
	case ':':
		return token{kind: tokenColon, val: ":", pos: start}, nil
	}

	return token{}, lexError(start, "invalid character %q", c)
}
