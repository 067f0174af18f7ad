// Package tape implements the fixed length symbol tapes and head cursors
// used by the universal machine.
//
// A Tape is a bounded buffer of TAPE_LENGTH cells with a single head. Every
// symbol access and every head access is counted in a shared Stats, so the
// cost of a run can be compared between implementations. Heads never wrap or
// grow the tape: moving outside [0, TAPE_LENGTH) is an ErrOutOfRange.
package tape
