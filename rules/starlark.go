package rules

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/utm/tape"
)

// scriptPredeclared are the names every rule script can use.
var scriptPredeclared = starlark.StringDict{
	"BLANK": starlark.String(tape.BLANK),
	"L":     starlark.String(Left.String()),
	"R":     starlark.String(Right.String()),
	"N":     starlark.String(None.String()),
}

// ParseStarlark runs a Starlark script that generates rules. The script
// must bind 'rules' to a sequence of 5-tuples of strings, and may bind
// 'start' to the initial state.
//
//	rules = [(q, "0", q, "0", R) for q in ("Q1", "Q2")]
//
// src is anything accepted by starlark.ExecFileOptions.
func ParseStarlark(filename string, src any) (prog *Program, err error) {
	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, scriptPredeclared)
	if err != nil {
		return
	}

	st_rules, ok := globals["rules"]
	if !ok {
		err = ErrScriptRules
		return
	}

	iterator := starlark.Iterate(st_rules)
	if iterator == nil {
		err = ErrScriptRules
		return
	}
	defer iterator.Done()

	var rules []Rule
	var item starlark.Value
	for iterator.Next(&item) {
		var rule Rule
		rule, err = scriptRule(item)
		if err != nil {
			err = &ErrMalformedRule{Index: len(rules), Err: err}
			return
		}
		rules = append(rules, rule)
	}

	prog, err = NewProgram(rules)
	if err != nil {
		return
	}

	st_start, ok := globals["start"]
	if ok {
		start, is_str := starlark.AsString(st_start)
		if !is_str {
			prog = nil
			err = ErrScriptStart
			return
		}
		err = prog.SetStart(start)
		if err != nil {
			prog = nil
		}
	}

	return
}

// scriptRule converts a Starlark tuple or list into a Rule.
func scriptRule(item starlark.Value) (rule Rule, err error) {
	seq, ok := item.(starlark.Indexable)
	if !ok {
		err = ErrScriptEntry
		return
	}

	fields := make([]string, seq.Len())
	for n := range fields {
		fields[n], ok = starlark.AsString(seq.Index(n))
		if !ok {
			err = ErrScriptEntry
			return
		}
	}

	return ParseRule(fields)
}
