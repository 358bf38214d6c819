package ast

import (
	"fmt"
	"strconv"
)

// BasicType is a declared type tag. The surface grammar supports only the
// integer type; TypeVoid exists as a defensive default for an absent type
// keyword and never names a declarable type.
type BasicType int

const (
	TypeVoid BasicType = iota
	TypeInt
)

func (t BasicType) String() string {
	switch t {
	case TypeVoid:
		return "void"
	case TypeInt:
		return "int"
	}
	return fmt.Sprintf("BasicType(%d)", int(t))
}

// Attribute is the lexical payload attached to leaf-like nodes. It is a
// closed set: TypeAttr, IdentAttr, and IntLitAttr are the only
// implementations. Attributes are immutable values; they hold their own
// copy of any text and never alias parser-owned storage.
type Attribute interface {
	// sourceLine is the 1-based line of the token the attribute was built
	// from. Kept unexported so the set of implementations stays closed.
	sourceLine() int
}

// TypeAttr records a declared type tag and the line of the type keyword.
type TypeAttr struct {
	Type BasicType
	Line int
}

func (a TypeAttr) sourceLine() int { return a.Line }

// IdentAttr records an identifier's spelling and its line.
type IdentAttr struct {
	Text string
	Line int
}

func (a IdentAttr) sourceLine() int { return a.Line }

// IntLitAttr records a parsed integer literal's value and its line.
type IntLitAttr struct {
	Value uint32
	Line  int
}

func (a IntLitAttr) sourceLine() int { return a.Line }

// ParseIntLiteral builds an IntLitAttr from the text of an integer literal
// token, honoring C-style radix prefixes: a leading "0x" or "0X" selects
// base 16, a leading "0" followed by further digits selects base 8, and
// anything else (including the single character "0") is decimal. Values
// must fit in 32 bits.
//
// The returned error carries no position; callers attribute it to the
// literal's line when reporting.
func ParseIntLiteral(text string, line int) (IntLitAttr, error) {
	base, digits := 10, text
	if len(text) > 1 && text[0] == '0' {
		if len(text) > 2 && (text[1] == 'x' || text[1] == 'X') {
			base, digits = 16, text[2:]
		} else {
			base, digits = 8, text[1:]
		}
	}
	value, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return IntLitAttr{}, fmt.Errorf("invalid integer literal %q: %w", text, err)
	}
	return IntLitAttr{Value: uint32(value), Line: line}, nil
}
