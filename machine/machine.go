// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/ezrec/utm/internal"
	"github.com/ezrec/utm/rules"
	"github.com/ezrec/utm/tape"
)

var (
	moveLeft  = rules.Left.Symbol()
	moveRight = rules.Right.Symbol()
)

// Scan counts the comparisons made while scanning the rules tape.
type Scan struct {
	Cycles         int // Rules applied.
	StateCompares  int // Block states compared to the control cell.
	SymbolCompares int // Block symbols compared to the data cell.
}

// Observer is called with a snapshot after every applied rule.
type Observer func(snap Snapshot)

// Machine is the simulation context: the data, rules and control tapes,
// and the counters of every access made to them.
type Machine struct {
	Verbose  bool     // If set, logs every cycle.
	MaxSteps int      // If non-zero, Run aborts after applying more rules than this.
	Observer Observer // Optional per cycle callback.

	Program *rules.Program // Program encoded on the rules tape.
	Data    *tape.Tape     // Data tape.
	Rules   *tape.Tape     // Rules tape.
	Control *tape.Tape     // Control tape.

	stats  tape.Stats
	scan   Scan
	loaded bool
	halted bool
	fault  error
}

// New creates a machine with prog encoded on its rules tape and the start
// state on its control tape.
func New(prog *rules.Program) (m *Machine, err error) {
	m = &Machine{
		Program: prog,
	}

	m.Data = tape.New("data", &m.stats)
	m.Rules = tape.New("rules", &m.stats)
	m.Control = tape.New("control", &m.stats)

	err = prog.Encode(m.Rules, tape.TAPE_START)
	if err != nil {
		m = nil
		return
	}

	err = m.Control.Load(tape.TAPE_START, prog.StateSymbol(prog.Start))
	if err != nil {
		m = nil
		return
	}

	return
}

// LoadInput writes the input to the data tape, starting under the data
// head. Characters outside the alphabet of the program are skipped.
func (m *Machine) LoadInput(input io.Reader) (err error) {
	switch {
	case m.loaded:
		err = ErrInputLoaded
		return
	case m.scan.Cycles > 0 || m.halted:
		err = ErrInputLate
		return
	}

	var symbols []tape.Symbol

	reader := bufio.NewReader(input)
	for {
		var r rune
		r, _, err = reader.ReadRune()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}
		token := string(r)
		if !m.Program.Accepts(token) {
			continue
		}
		symbols = append(symbols, tape.Intern(token))
	}

	err = m.Data.Load(tape.TAPE_START, symbols...)
	if err != nil {
		return
	}

	if m.Verbose {
		log.Printf("machine: %d input symbols", len(symbols))
	}

	m.loaded = true

	return
}

// LoadString writes the input text to the data tape.
func (m *Machine) LoadString(input string) error {
	return m.LoadInput(strings.NewReader(input))
}

// Stats returns the tape access counters.
func (m *Machine) Stats() tape.Stats {
	return m.stats
}

// Scan returns the scan counters.
func (m *Machine) Scan() Scan {
	return m.scan
}

// Halted is true once a scan found no matching rule.
func (m *Machine) Halted() bool {
	return m.halted
}

// State returns the current state, as written in the program.
// Reading the state is not counted in Stats.
func (m *Machine) State() string {
	win := m.Control.Window(1)
	return m.Program.StateName(win.Cells[win.Head])
}

// skip steps the rules head n cells right, one cell at a time.
func (m *Machine) skip(n int) (err error) {
	for range n {
		err = m.Rules.MoveRight()
		if err != nil {
			return
		}
	}
	return
}

// match scans the rules tape, from the rules head, for the first block
// matching the current state and symbol. On a match the rules head is left
// on the symbol cell of the block.
func (m *Machine) match() (found bool, err error) {
	for {
		if m.Rules.Read().IsBlank() {
			// End of the rules.
			return
		}

		m.scan.StateCompares++
		if m.Rules.Read() != m.Control.Read() {
			err = m.skip(rules.BLOCK_SIZE)
			if err != nil {
				return
			}
			continue
		}

		err = m.Rules.MoveRight()
		if err != nil {
			return
		}

		m.scan.SymbolCompares++
		if m.Rules.Read() != m.Data.Read() {
			err = m.skip(rules.BLOCK_SIZE - 1)
			if err != nil {
				return
			}
			continue
		}

		found = true
		return
	}
}

// apply performs the matched rule: next state, symbol write, head
// movement, then rewinds the rules head for the next scan.
func (m *Machine) apply() (err error) {
	err = m.Rules.MoveRight()
	if err != nil {
		return
	}
	m.Control.Write(m.Rules.Read())

	err = m.Rules.MoveRight()
	if err != nil {
		return
	}
	m.Data.Write(m.Rules.Read())

	err = m.Rules.MoveRight()
	if err != nil {
		return
	}

	// The direction cell is read again for each move it is compared to.
	if m.Rules.Read() == moveRight {
		err = m.Data.MoveRight()
	} else if m.Rules.Read() == moveLeft {
		err = m.Data.MoveLeft()
	}
	if err != nil {
		return
	}

	err = m.Rules.MoveTo(tape.TAPE_START)
	return
}

// Tick performs a single cycle of the machine. done is set when the
// machine has halted. After an error the machine stays faulted.
func (m *Machine) Tick() (done bool, err error) {
	if m.fault != nil {
		err = m.fault
		return
	}

	if m.halted {
		done = true
		return
	}

	cycle := m.scan.Cycles + 1

	defer func() {
		if err != nil {
			err = &ErrRuntime{Cycle: cycle, Err: err}
			m.fault = err
		}
	}()

	found, err := m.match()
	if err != nil {
		return
	}

	if !found {
		if m.Verbose {
			log.Printf("machine: halt in %v after %d cycles", m.State(), m.scan.Cycles)
		}
		m.halted = true
		done = true
		return
	}

	err = m.apply()
	if err != nil {
		return
	}

	m.scan.Cycles = cycle

	if m.Verbose {
		log.Printf("machine: cycle %d state %v", cycle, m.State())
	}

	if m.Observer != nil {
		m.Observer(m.Snapshot())
	}

	return
}

// Run ticks the machine until it halts. With MaxSteps set, a machine that
// applies more than MaxSteps rules is stopped with ErrRunAborted.
func (m *Machine) Run() (err error) {
	for {
		var done bool
		done, err = m.Tick()
		if err != nil || done {
			return
		}

		if m.MaxSteps > 0 && m.scan.Cycles > m.MaxSteps {
			err = &ErrRunAborted{Cycles: m.scan.Cycles}
			return
		}
	}
}

// Output returns every symbol of the data tape, left to right, with the
// blanks removed.
func (m *Machine) Output() string {
	var text strings.Builder

	for sym := range internal.IterSeqFilter(m.Data.Cells(), func(sym tape.Symbol) bool { return !sym.IsBlank() }) {
		text.WriteString(sym.String())
	}

	return text.String()
}
