// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rules

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// Parser reads rule text, one rule per line:
//
//	Q0,0,Q1,X,R
//
// Blank lines are ignored, and lines starting with ';' or '#' are
// comments. The directive '.start STATE' selects the initial state.
type Parser struct {
	Verbose bool // If set, logs every line read.
}

// Parse parses an input stream into a Program.
func (ps *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	var rules []Rule
	var start string
	var startLine int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ps.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(text)
		if len(line) == 0 || line[0] == ';' || line[0] == '#' {
			continue
		}

		// .start STATE
		if line[0] == '.' {
			words := strings.Fields(line)
			if len(words) != 2 || words[0] != ".start" {
				err = ErrDirective
				return
			}
			start = words[1]
			startLine = lineno
			continue
		}

		var rule Rule
		rule, err = ParseRule(strings.Split(line, ","))
		if err != nil {
			err = &ErrMalformedRule{Index: len(rules), Err: err}
			return
		}

		rules = append(rules, rule)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog, err = NewProgram(rules)
	if err != nil {
		return
	}

	if len(start) != 0 {
		lineno = startLine
		line = ".start " + start
		err = prog.SetStart(start)
	}

	return
}
