package tape

import (
	"slices"
	"strings"
)

// WINDOW_WIDTH is the default number of cells shown around a head.
const WINDOW_WIDTH = 20

// Window is a slice of a tape around its head, for display only.
type Window struct {
	Name  string   // Tape name.
	Start int      // Tape position of Cells[0].
	Head  int      // Offset of the head within Cells.
	Cells []Symbol // Copy of the cells in the window.
}

// Window returns up to width cells centered on the head. The window is
// shifted, not truncated, when the head is near either end of the tape.
// Taking a window is not counted in Stats.
func (tp *Tape) Window(width int) (win Window) {
	if width <= 0 {
		width = WINDOW_WIDTH
	}
	width = min(width, len(tp.cells))

	lb := tp.head - width/2
	ub := lb + width
	if lb < 0 {
		lb = 0
		ub = width
	}
	if ub > len(tp.cells) {
		ub = len(tp.cells)
		lb = ub - width
	}

	win = Window{
		Name:  tp.Name,
		Start: lb,
		Head:  tp.head - lb,
		Cells: slices.Clone(tp.cells[lb:ub]),
	}

	return
}

// String renders a head marker line above the cells.
func (win Window) String() string {
	marks := make([]string, len(win.Cells))
	cells := make([]string, len(win.Cells))
	for n, sym := range win.Cells {
		marks[n] = " "
		if n == win.Head {
			marks[n] = "v"
		}
		cells[n] = sym.String()
	}

	return strings.Join(marks, "   ") + "\n" + strings.Join(cells, " | ")
}
