// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rules

import (
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ezrec/utm/tape"
)

// Direction the data head moves after a rule is applied.
type Direction int

const (
	None  = Direction(0) // Head stays.
	Left  = Direction(1) // Head moves one cell left.
	Right = Direction(2) // Head moves one cell right.
)

var directionToken = [...]string{
	None:  "N",
	Left:  "L",
	Right: "R",
}

var directionMap = map[string]Direction{
	"N":     None,
	"L":     Left,
	"R":     Right,
	"None":  None,
	"Left":  Left,
	"Right": Right,
}

// ParseDirection parses a direction token.
func ParseDirection(token string) (dir Direction, err error) {
	dir, ok := directionMap[token]
	if !ok {
		err = ErrDirectionInvalid
	}
	return
}

// Valid is true for None, Left and Right.
func (dir Direction) Valid() bool {
	return dir >= None && dir <= Right
}

func (dir Direction) String() string {
	if !dir.Valid() {
		return f("Direction(%d)", int(dir))
	}
	return directionToken[dir]
}

// Symbol is the tape form of the direction.
func (dir Direction) Symbol() tape.Symbol {
	return tape.Intern(dir.String())
}

// Rule is a single transition.
type Rule struct {
	From  string    // State the rule applies in.
	Read  string    // Symbol the rule applies to.
	To    string    // Next state.
	Write string    // Symbol replacing Read.
	Move  Direction // Data head movement.
}

// ParseRule builds a rule from its five text fields.
func ParseRule(fields []string) (rule Rule, err error) {
	if len(fields) != BLOCK_SIZE {
		err = ErrFieldCount
		return
	}

	fields = slices.Clone(fields)
	for n, field := range fields {
		fields[n] = strings.TrimSpace(field)
	}

	if len(fields[4]) == 0 {
		err = ErrFieldMissing
		return
	}

	move, err := ParseDirection(fields[4])
	if err != nil {
		return
	}

	rule = Rule{
		From:  fields[0],
		Read:  fields[1],
		To:    fields[2],
		Write: fields[3],
		Move:  move,
	}

	err = rule.Validate()

	return
}

func validState(state string) error {
	switch {
	case len(state) == 0:
		return ErrFieldMissing
	case state == tape.BLANK:
		// A blank state would read as the end of the rules.
		return ErrStateInvalid
	case strings.ContainsFunc(state, unicode.IsSpace):
		return ErrStateInvalid
	}
	return nil
}

func validSymbol(symbol string) error {
	switch {
	case len(symbol) == 0:
		return ErrFieldMissing
	case utf8.RuneCountInString(symbol) != 1:
		return ErrSymbolInvalid
	}
	return nil
}

// Validate checks that every field is present and well formed.
func (rule Rule) Validate() (err error) {
	for _, check := range []error{
		validState(rule.From),
		validSymbol(rule.Read),
		validState(rule.To),
		validSymbol(rule.Write),
	} {
		if check != nil {
			return check
		}
	}

	if !rule.Move.Valid() {
		err = ErrDirectionInvalid
	}

	return
}

// String formats the rule as a line of rule text.
func (rule Rule) String() string {
	return strings.Join([]string{rule.From, rule.Read, rule.To, rule.Write, rule.Move.String()}, ",")
}

// block yields the five cells of the rule, with states already encoded.
func (rule Rule) block(state func(string) tape.Symbol) iter.Seq[tape.Symbol] {
	return func(yield func(tape.Symbol) bool) {
		for _, sym := range [BLOCK_SIZE]tape.Symbol{
			state(rule.From),
			tape.Intern(rule.Read),
			state(rule.To),
			tape.Intern(rule.Write),
			rule.Move.Symbol(),
		} {
			if !yield(sym) {
				return
			}
		}
	}
}
