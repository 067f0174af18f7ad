// Package machine runs a Turing machine whose rules are stored on a tape.
//
// A Machine owns three tapes. The data tape holds the input and the work of
// the machine, the rules tape holds the program as five cell blocks, and the
// control tape holds the current state in a single cell. Every cycle scans
// the rules tape from its start for the first block whose state and symbol
// match the control cell and the symbol under the data head, then applies it.
// A scan that reaches the blank after the last block halts the machine.
package machine
