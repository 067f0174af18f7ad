package rules

import (
	"errors"

	"github.com/ezrec/utm/translate"
)

var f = translate.From

var (
	// Rule errors
	ErrMalformed        = errors.New(f("malformed rule"))
	ErrFieldCount       = errors.New(f("rule needs 5 fields"))
	ErrFieldMissing     = errors.New(f("field missing"))
	ErrDirectionInvalid = errors.New(f("direction invalid"))
	ErrSymbolInvalid    = errors.New(f("symbol must be a single character"))
	ErrStateInvalid     = errors.New(f("state invalid"))

	// Program errors
	ErrStateUnknown    = errors.New(f("state unknown"))
	ErrEncodingUnknown = errors.New(f("encoding unknown"))
	ErrDirective       = errors.New(f("directive invalid"))
	ErrScriptRules     = errors.New(f("script does not define rules"))
	ErrScriptStart     = errors.New(f("script start is not a string"))
	ErrScriptEntry     = errors.New(f("rule is not a sequence of strings"))
)

// ErrMalformedRule identifies the rule that was rejected.
type ErrMalformedRule struct {
	Index int // Zero based index in declaration order.
	Err   error
}

func (err *ErrMalformedRule) Error() string {
	return f("rule %d %v", err.Index, err.Err)
}

func (err *ErrMalformedRule) Unwrap() []error {
	return []error{ErrMalformed, err.Err}
}

// ErrSyntax locates an error in rule text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
