package tape

import (
	"unique"
)

// BLANK is the token of unwritten cells.
const BLANK = "_"

// Symbol is an interned tape token. Symbols compare by identity, and the
// zero Symbol is the blank.
type Symbol struct {
	handle unique.Handle[string]
}

// Blank is the symbol of an unwritten cell.
var Blank = Symbol{}

// Intern returns the symbol for a token.
func Intern(token string) (sym Symbol) {
	if token == BLANK {
		return
	}

	sym.handle = unique.Make(token)
	return
}

// IsBlank is true for the blank symbol.
func (sym Symbol) IsBlank() bool {
	return sym == Blank
}

// String returns the original token.
func (sym Symbol) String() string {
	if sym.IsBlank() {
		return BLANK
	}
	return sym.handle.Value()
}
