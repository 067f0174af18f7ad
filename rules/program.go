// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rules

import (
	"iter"
	"log"
	"slices"
	"strconv"

	"github.com/ezrec/utm/internal"
	"github.com/ezrec/utm/tape"
)

// BLOCK_SIZE is the number of cells a rule occupies on a tape.
const BLOCK_SIZE = 5

// Encoding selects how state tokens are stored on tape.
type Encoding int

const (
	Raw     = Encoding(0) // States are stored exactly as written.
	Ordinal = Encoding(1) // States are stored as their index in States.
)

var encodingMap = map[string]Encoding{
	"raw":     Raw,
	"ordinal": Ordinal,
}

// ParseEncoding parses "raw" or "ordinal".
func ParseEncoding(name string) (enc Encoding, err error) {
	enc, ok := encodingMap[name]
	if !ok {
		err = ErrEncodingUnknown
	}
	return
}

func (enc Encoding) String() string {
	for name, value := range encodingMap {
		if value == enc {
			return name
		}
	}
	return f("Encoding(%d)", int(enc))
}

// Program is an ordered list of rules, and the states and alphabet
// they use.
type Program struct {
	Verbose  bool     // If set, logs the encoded blocks.
	Rules    []Rule   // Rules in declaration order.
	States   []string // Sorted distinct states.
	Alphabet []string // Sorted distinct non-blank symbols.
	Start    string   // Initial state.
	Encoding Encoding // Tape form of states.
}

// NewProgram validates rules and derives the states and alphabet.
// The start state is the first of the sorted states.
func NewProgram(rules []Rule) (prog *Program, err error) {
	prog = &Program{}

	for n, rule := range rules {
		err = rule.Validate()
		if err != nil {
			prog = nil
			err = &ErrMalformedRule{Index: n, Err: err}
			return
		}

		prog.States = append(prog.States, rule.From, rule.To)
		for _, sym := range []string{rule.Read, rule.Write} {
			if sym != tape.BLANK {
				prog.Alphabet = append(prog.Alphabet, sym)
			}
		}
	}

	prog.Rules = slices.Clone(rules)

	slices.Sort(prog.States)
	prog.States = slices.Compact(prog.States)
	slices.Sort(prog.Alphabet)
	prog.Alphabet = slices.Compact(prog.Alphabet)

	if len(prog.States) > 0 {
		prog.Start = prog.States[0]
	}

	return
}

// SetStart selects the initial state, which must be used by a rule.
func (prog *Program) SetStart(state string) (err error) {
	if _, ok := slices.BinarySearch(prog.States, state); !ok {
		err = ErrStateUnknown
		return
	}

	prog.Start = state
	return
}

// Accepts is true if symbol is in the alphabet.
func (prog *Program) Accepts(symbol string) (ok bool) {
	_, ok = slices.BinarySearch(prog.Alphabet, symbol)
	return
}

// StateSymbol returns the tape form of a state.
func (prog *Program) StateSymbol(state string) tape.Symbol {
	if prog.Encoding == Ordinal {
		index, ok := slices.BinarySearch(prog.States, state)
		if ok {
			return tape.Intern(strconv.Itoa(index))
		}
	}

	return tape.Intern(state)
}

// StateName maps a tape state back to the state as written.
func (prog *Program) StateName(sym tape.Symbol) string {
	if prog.Encoding == Ordinal {
		index, err := strconv.Atoi(sym.String())
		if err == nil && index >= 0 && index < len(prog.States) {
			return prog.States[index]
		}
	}

	return sym.String()
}

// Blocks iterates over the cells of every rule, in declaration order.
func (prog *Program) Blocks() iter.Seq[tape.Symbol] {
	blocks := make([]iter.Seq[tape.Symbol], len(prog.Rules))
	for n, rule := range prog.Rules {
		blocks[n] = rule.block(prog.StateSymbol)
	}

	return internal.IterSeqConcat(blocks...)
}

// Encode writes the rule blocks to a tape starting at offset. The cell
// after the last block is left blank, and must be on the tape.
func (prog *Program) Encode(tp *tape.Tape, offset int) (err error) {
	cells := slices.Collect(prog.Blocks())
	cells = append(cells, tape.Blank)

	if prog.Verbose {
		log.Printf("rules: %d blocks at %d (%v)", len(prog.Rules), offset, prog.Encoding)
	}

	return tp.Load(offset, cells...)
}
