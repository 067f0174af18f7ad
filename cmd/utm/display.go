package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ezrec/utm/machine"
)

// display redraws the tape windows in place after every cycle.
type display struct {
	out   io.Writer
	delay time.Duration
	sleep func(time.Duration)
}

func (disp *display) observe(snap machine.Snapshot) {
	// Cursor home, then overwrite the previous frame.
	fmt.Fprint(disp.out, "\033[H")
	fmt.Fprintln(disp.out, snap.String())

	if disp.delay > 0 && disp.sleep != nil {
		disp.sleep(disp.delay)
	}
}
