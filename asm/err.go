package asm

import (
	"errors"

	"github.com/ezrec/risc16/isa"
	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	// Classifier errors
	ErrTooManyOperands    = errors.New(f("too many arguments"))
	ErrLabelsUnsupported  = errors.New(f("labels are not supported"))
	ErrSyntaxUnrecognized = errors.New(f("line does not match the pattern of any instruction"))

	// Encoder errors
	ErrMnemonicUnknown = errors.New(f("instruction invalid"))
	ErrImmediateRange  = errors.New(f("immediate out of range"))
)

// Process exit status, per error category.
const (
	EXIT_OK                = 0
	EXIT_TOO_MANY_OPERANDS = 1
	EXIT_LABEL             = 2
	EXIT_SYNTAX            = 3
	EXIT_MNEMONIC          = 4
	EXIT_IMMEDIATE_RANGE   = 5
	EXIT_FAILURE           = 6
)

// ExitCode returns the process exit status for an error.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return EXIT_OK
	case errors.Is(err, ErrTooManyOperands):
		return EXIT_TOO_MANY_OPERANDS
	case errors.Is(err, ErrLabelsUnsupported):
		return EXIT_LABEL
	case errors.Is(err, ErrSyntaxUnrecognized):
		return EXIT_SYNTAX
	case errors.Is(err, ErrMnemonicUnknown):
		return EXIT_MNEMONIC
	case errors.Is(err, ErrImmediateRange):
		return EXIT_IMMEDIATE_RANGE
	}
	return EXIT_FAILURE
}

// ErrSyntax locates an error in the assembly source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrMnemonic is an unknown mnemonic. Format is set when the mnemonic
// exists, but not in the format the line was written in.
type ErrMnemonic struct {
	Mnemonic string
	Format   isa.Format
}

func (err ErrMnemonic) Error() string {
	if err.Format != isa.FORMAT_BLANK {
		return f("instruction '%v' is not valid in %v format", err.Mnemonic, err.Format.String())
	}
	return f("instruction '%v' is not valid", err.Mnemonic)
}

func (err ErrMnemonic) Unwrap() error {
	return ErrMnemonicUnknown
}

// ErrImmediate is an immediate that does not fit its field.
type ErrImmediate struct {
	Value int
	Min   int
	Max   int
}

func (err ErrImmediate) Error() string {
	return f("immediate %d out of range [%d,%d]", err.Value, err.Min, err.Max)
}

func (err ErrImmediate) Unwrap() error {
	return ErrImmediateRange
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Unwrap() error {
	return ErrSyntaxUnrecognized
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrParseRegister) Unwrap() error {
	return ErrSyntaxUnrecognized
}
