package machine

import (
	"strings"

	"github.com/ezrec/utm/tape"
)

// Snapshot is a view of the tapes around their heads, for display.
type Snapshot struct {
	Cycle   int
	State   string
	Data    tape.Window
	Rules   tape.Window
	Control tape.Window
}

// Snapshot captures a WINDOW_WIDTH window of every tape.
// Taking a snapshot is not counted in Stats.
func (m *Machine) Snapshot() (snap Snapshot) {
	snap = Snapshot{
		Cycle:   m.scan.Cycles,
		State:   m.State(),
		Data:    m.Data.Window(tape.WINDOW_WIDTH),
		Rules:   m.Rules.Window(tape.WINDOW_WIDTH),
		Control: m.Control.Window(tape.WINDOW_WIDTH),
	}

	return
}

// String renders the data, rules and control windows.
func (snap Snapshot) String() string {
	return strings.Join([]string{
		snap.Data.String(),
		snap.Rules.String(),
		snap.Control.String(),
	}, "\n")
}

// Observers combines observers into one, called in order.
func Observers(observers ...Observer) Observer {
	return func(snap Snapshot) {
		for _, observer := range observers {
			if observer != nil {
				observer(snap)
			}
		}
	}
}
