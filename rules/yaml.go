package rules

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlDocument is the layout of a YAML rule file:
//
//	start: Q0
//	rules:
//	  - [Q0, "0", Q1, X, R]
//	  - {from: Q1, read: "0", to: Q1, write: "0", move: R}
type yamlDocument struct {
	Start string      `yaml:"start"`
	Rules []yaml.Node `yaml:"rules"`
}

type yamlRule struct {
	From  string `yaml:"from"`
	Read  string `yaml:"read"`
	To    string `yaml:"to"`
	Write string `yaml:"write"`
	Move  string `yaml:"move"`
}

// ParseYAML parses a YAML rule file. Each rule is either a five element
// sequence or a mapping of from, read, to, write and move.
func ParseYAML(input io.Reader) (prog *Program, err error) {
	var doc yamlDocument

	err = yaml.NewDecoder(input).Decode(&doc)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return
	}

	rules := make([]Rule, 0, len(doc.Rules))
	for n := range doc.Rules {
		var rule Rule
		rule, err = yamlNodeRule(&doc.Rules[n])
		if err != nil {
			err = &ErrMalformedRule{Index: n, Err: err}
			return
		}
		rules = append(rules, rule)
	}

	prog, err = NewProgram(rules)
	if err != nil {
		return
	}

	if len(doc.Start) != 0 {
		err = prog.SetStart(doc.Start)
		if err != nil {
			prog = nil
		}
	}

	return
}

func yamlNodeRule(node *yaml.Node) (rule Rule, err error) {
	var fields []string

	switch node.Kind {
	case yaml.SequenceNode:
		err = node.Decode(&fields)
	case yaml.MappingNode:
		var raw yamlRule
		err = node.Decode(&raw)
		fields = []string{raw.From, raw.Read, raw.To, raw.Write, raw.Move}
	default:
		err = ErrFieldCount
	}
	if err != nil {
		return
	}

	return ParseRule(fields)
}
