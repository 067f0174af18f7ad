package tape

import (
	"fmt"
)

// Stats counts every access to tapes and heads.
type Stats struct {
	HeadReads  int // Head position reads.
	HeadWrites int // Head position writes.
	TapeReads  int // Symbol reads.
	TapeWrites int // Symbol writes.
}

func (st *Stats) headRead() {
	if st != nil {
		st.HeadReads++
	}
}

func (st *Stats) headWrite() {
	if st != nil {
		st.HeadWrites++
	}
}

func (st *Stats) tapeRead() {
	if st != nil {
		st.TapeReads++
	}
}

func (st *Stats) tapeWrite() {
	if st != nil {
		st.TapeWrites++
	}
}

// String formats the counters the way the command line reports them.
func (st Stats) String() string {
	return fmt.Sprintf("head read/writes: %d/%d\ntape read/writes: %d/%d",
		st.HeadReads, st.HeadWrites, st.TapeReads, st.TapeWrites)
}
