package isa

import (
	"errors"
	"fmt"
	"slices"
)

// Tables holds the mnemonic lookup tables of the instruction set.
//
// Tables are read-only once built, and may be shared freely.
type Tables struct {
	Primary  map[string]Opcode   // Primary opcodes, by mnemonic.
	Extended map[string]ExOpcode // Extended opcodes, by mnemonic.
	Formats  map[Format][]string // Legal mnemonics, by format.
}

// Default is the instruction set table.
var Default = NewTables()

// NewTables builds the instruction set tables.
//
// OP_TWOREG is not reachable by mnemonic: it is implied by every
// extended mnemonic.
func NewTables() (tables *Tables) {
	tables = &Tables{
		Primary:  map[string]Opcode{},
		Extended: map[string]ExOpcode{},
	}

	for op := OP_LI; op < OP_TWOREG; op++ {
		tables.Primary[op.String()] = op
	}

	for ex := EX_SW; ex <= EX_SZ; ex++ {
		tables.Extended[ex.String()] = ex
	}

	tables.Formats = map[Format][]string{
		FORMAT_REG: {
			"nor", "clrb", "lsl", "lsr", "asr", "xor",
			"nand", "and", "xnor", "add", "sub", "or",
		},
		FORMAT_STORE: {
			"li", "lui",
		},
		FORMAT_IMM: {
			"bra",
		},
	}

	for ex := EX_SW; ex <= EX_SZ; ex++ {
		tables.Formats[FORMAT_TWOREG] = append(tables.Formats[FORMAT_TWOREG], ex.String())
	}

	return
}

// FormatOf returns the format a mnemonic belongs to.
func (tables *Tables) FormatOf(mnemonic string) (format Format, ok bool) {
	for format, names := range tables.Formats {
		if slices.Contains(names, mnemonic) {
			return format, true
		}
	}
	return FORMAT_BLANK, false
}

// Legal returns true if the mnemonic may be written in the format.
func (tables *Tables) Legal(format Format, mnemonic string) bool {
	return slices.Contains(tables.Formats[format], mnemonic)
}

// Validate checks the table invariants: every mnemonic belongs to
// exactly one format, the format sets cover exactly the opcode tables,
// and the reserved OP_TWOREG is never bound to a primary mnemonic.
func (tables *Tables) Validate() (err error) {
	seen := map[string]Format{}
	for format, names := range tables.Formats {
		if format == FORMAT_BLANK {
			return fmt.Errorf("format %v has mnemonics", format)
		}
		for _, name := range names {
			other, dup := seen[name]
			if dup {
				return fmt.Errorf("mnemonic %q in formats %v and %v", name, other, format)
			}
			seen[name] = format
		}
	}

	for name, op := range tables.Primary {
		if op == OP_TWOREG {
			return fmt.Errorf("mnemonic %q bound to reserved opcode %v", name, op)
		}
		format, ok := seen[name]
		if !ok {
			return fmt.Errorf("mnemonic %q has no format", name)
		}
		if format == FORMAT_TWOREG {
			return fmt.Errorf("primary mnemonic %q in format %v", name, format)
		}
	}

	for name := range tables.Extended {
		if _, ok := tables.Primary[name]; ok {
			return fmt.Errorf("mnemonic %q is both primary and extended", name)
		}
		if seen[name] != FORMAT_TWOREG {
			return fmt.Errorf("extended mnemonic %q not in format %v", name, FORMAT_TWOREG)
		}
	}

	if len(seen) != len(tables.Primary)+len(tables.Extended) {
		return errors.New("format sets name mnemonics missing from the opcode tables")
	}

	return
}
