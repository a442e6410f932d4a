package asm

import (
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/risc16/isa"
)

// Immediate field ranges.
const (
	IMM8_MIN  = -(1 << (isa.IMM8_BITS - 1))
	IMM8_MAX  = (1 << (isa.IMM8_BITS - 1)) - 1
	IMM12_MIN = -(1 << (isa.IMM12_BITS - 1))
	IMM12_MAX = (1 << (isa.IMM12_BITS - 1)) - 1
)

// arity is the number of words, mnemonic included, of each format.
var arity = map[isa.Format]int{
	isa.FORMAT_REG:    4,
	isa.FORMAT_STORE:  3,
	isa.FORMAT_IMM:    2,
	isa.FORMAT_TWOREG: 3,
}

// Encoder turns classified lines into instruction records.
type Encoder struct {
	Tables *isa.Tables // Mnemonic tables. If nil, isa.Default is used.
	Strict bool        // If set, mnemonics must be legal for the line format.
}

// ParseRegister returns the index of a register word, 'r' followed by
// decimal digits.
//
// The index is not range checked.
func ParseRegister(word string) (reg uint8, err error) {
	digits, ok := strings.CutPrefix(word, "r")
	if !ok {
		err = ErrParseRegister(word)
		return
	}
	value, perr := strconv.ParseUint(digits, 10, 8)
	if perr != nil {
		err = ErrParseRegister(word)
		return
	}
	reg = uint8(value)
	return
}

// ParseImmediate parses a binary (0b), hexadecimal (0x) or signed decimal
// immediate for a field of bits width.
//
// Binary and hexadecimal literals are negative only when written with
// every digit of the field and the top bit set: for 8 bits, 0xff is -1
// but 0xf is 15, and 0b10000000 is -128 but 0b1000000 is 64.
func ParseImmediate(word string, bits int) (value int, err error) {
	var digits string
	var base int
	var width int
	var negative string

	switch {
	case strings.HasPrefix(word, "0x"):
		digits, base, width, negative = word[2:], 16, bits/4, "89abcdef"
	case strings.HasPrefix(word, "0b"):
		digits, base, width, negative = word[2:], 2, bits, "1"
	default:
		v64, perr := strconv.ParseInt(word, 10, 64)
		if perr != nil {
			err = ErrParseNumber(word)
			return
		}
		value = int(v64)
		return
	}

	u64, perr := strconv.ParseUint(digits, base, 64)
	if perr != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(u64)
	if len(digits) == width && strings.IndexByte(negative, digits[0]) >= 0 {
		value -= 1 << bits
	}

	return
}

// checkImmediate range checks a value for a signed field of bits width.
func checkImmediate(value int, bits int) (err error) {
	lo := -(1 << (bits - 1))
	hi := (1 << (bits - 1)) - 1
	if value < lo || value > hi {
		err = ErrImmediate{Value: value, Min: lo, Max: hi}
	}
	return
}

func (enc *Encoder) tables() *isa.Tables {
	if enc.Tables == nil {
		return isa.Default
	}
	return enc.Tables
}

// registers parses register words.
func registers(words ...string) (regs []uint8, err error) {
	regs = make([]uint8, len(words))
	for n, word := range words {
		regs[n], err = ParseRegister(word)
		if err != nil {
			return
		}
		if regs[n] >= 1<<isa.REGISTER_BITS {
			log.Print(f("warning: register %v does not fit in %d bits", word, isa.REGISTER_BITS))
		}
	}
	return
}

// Encode builds the instruction record for a line classified as format,
// from its words. Blank lines return a nil instruction.
//
// Any error returned is an ErrSyntax for lineno.
func (enc *Encoder) Encode(format isa.Format, words []string, lineno int) (inst isa.Instruction, err error) {
	if format == isa.FORMAT_BLANK {
		return
	}

	defer func() {
		if err != nil {
			inst = nil
			err = &ErrSyntax{LineNo: lineno, Line: strings.Join(words, " "), Err: err}
		}
	}()

	if len(words) == 0 {
		err = ErrSyntaxUnrecognized
		return
	}

	tables := enc.tables()
	mnemonic := words[0]

	var op isa.Opcode
	var ex isa.ExOpcode
	var ok bool
	if format == isa.FORMAT_TWOREG {
		ex, ok = tables.Extended[mnemonic]
	} else {
		op, ok = tables.Primary[mnemonic]
	}
	if !ok {
		err = ErrMnemonic{Mnemonic: mnemonic}
		return
	}

	if enc.Strict && !tables.Legal(format, mnemonic) {
		err = ErrMnemonic{Mnemonic: mnemonic, Format: format}
		return
	}

	if len(words) != arity[format] {
		err = ErrSyntaxUnrecognized
		return
	}

	switch format {
	case isa.FORMAT_REG:
		var regs []uint8
		regs, err = registers(words[1:]...)
		if err != nil {
			return
		}
		inst = isa.ThreeReg{Opcode: op, Rd: regs[0], Rs1: regs[1], Rs2: regs[2]}
	case isa.FORMAT_STORE:
		var regs []uint8
		regs, err = registers(words[1])
		if err != nil {
			return
		}
		var imm int
		imm, err = ParseImmediate(words[2], isa.IMM8_BITS)
		if err != nil {
			return
		}
		err = checkImmediate(imm, isa.IMM8_BITS)
		if err != nil {
			return
		}
		inst = isa.RegImm8{Opcode: op, Rd: regs[0], Imm8: int8(imm)}
	case isa.FORMAT_IMM:
		var imm int
		imm, err = ParseImmediate(words[1], isa.IMM12_BITS)
		if err != nil {
			return
		}
		err = checkImmediate(imm, isa.IMM12_BITS)
		if err != nil {
			return
		}
		inst = isa.Imm12{Opcode: op, Imm12: int16(imm)}
	case isa.FORMAT_TWOREG:
		var regs []uint8
		regs, err = registers(words[1:]...)
		if err != nil {
			return
		}
		inst = isa.TwoRegExt{Rd: regs[0], Rs1: regs[1], Ex: ex}
	default:
		err = ErrSyntaxUnrecognized
	}

	return
}
