package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/utm/tape"
)

func TestMachine_Snapshot(t *testing.T) {
	assert := assert.New(t)

	m := doNew(t, doParse(t, "Q0,0,Q1,X,R"), "00")

	stats := m.Stats()
	snap := m.Snapshot()
	assert.Equal(stats, m.Stats())

	assert.Equal(0, snap.Cycle)
	assert.Equal("Q0", snap.State)
	assert.Equal("data", snap.Data.Name)
	assert.Equal("rules", snap.Rules.Name)
	assert.Equal("control", snap.Control.Name)
	assert.Equal(tape.TAPE_START, snap.Rules.Start+snap.Rules.Head)
	assert.Equal("Q0", snap.Control.Cells[snap.Control.Head].String())

	lines := strings.Split(snap.String(), "\n")
	assert.Len(lines, 6)
	assert.Equal(snap.Data.String(), strings.Join(lines[0:2], "\n"))
	assert.Contains(lines[3], "Q0 | 0 | Q1 | X | R")
}

func TestObservers(t *testing.T) {
	assert := assert.New(t)

	var order []string
	first := func(snap Snapshot) { order = append(order, "first") }
	second := func(snap Snapshot) { order = append(order, "second") }

	Observers(first, nil, second)(Snapshot{})
	assert.Equal([]string{"first", "second"}, order)
}
