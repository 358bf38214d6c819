package cst

import "fmt"

// TokenKind identifies a terminal symbol of the MiniC grammar.
type TokenKind int

const (
	TokenInvalid TokenKind = iota

	// Keywords.
	TokenInt
	TokenReturn
	TokenIf
	TokenElse
	TokenWhile
	TokenBreak
	TokenContinue

	// Identifiers and literals.
	TokenIdent
	TokenDigit

	// Operators and punctuation that survive into the CST.
	TokenAssign
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenLess
	TokenLessEq
	TokenGreater
	TokenGreaterEq
	TokenEq
	TokenNotEq
	TokenAnd
	TokenOr
	TokenNot
)

var tokenKindNames = map[TokenKind]string{
	TokenInvalid:   "invalid",
	TokenInt:       "'int'",
	TokenReturn:    "'return'",
	TokenIf:        "'if'",
	TokenElse:      "'else'",
	TokenWhile:     "'while'",
	TokenBreak:     "'break'",
	TokenContinue:  "'continue'",
	TokenIdent:     "identifier",
	TokenDigit:     "integer literal",
	TokenAssign:    "'='",
	TokenPlus:      "'+'",
	TokenMinus:     "'-'",
	TokenStar:      "'*'",
	TokenSlash:     "'/'",
	TokenPercent:   "'%'",
	TokenLess:      "'<'",
	TokenLessEq:    "'<='",
	TokenGreater:   "'>'",
	TokenGreaterEq: "'>='",
	TokenEq:        "'=='",
	TokenNotEq:     "'!='",
	TokenAnd:       "'&&'",
	TokenOr:        "'||'",
	TokenNot:       "'!'",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a terminal as exposed by the parser: its kind, its spelling,
// and the 1-based line it appeared on.
type Token struct {
	Kind TokenKind
	Text string
	Line int
}
