// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"iter"
	"log"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/risc16/isa"
)

// Line is an assembled source line.
type Line struct {
	LineNo int             // 1-based source line number.
	Ip     int             // Index of the instruction word.
	Text   string          // Source text, as read.
	Words  []string        // Mnemonic and operands.
	Inst   isa.Instruction // Assembled instruction.
}

// Program is the list of assembled lines of a source.
type Program struct {
	Lines []Line
}

// Words returns the machine words of the program.
func (prog *Program) Words() (words []uint16) {
	for _, line := range prog.Lines {
		words = append(words, isa.Word(line.Inst))
	}
	return
}

// Assembler is a single pass assembler. It has no labels, macros or
// equates: every non-blank line is exactly one instruction word.
type Assembler struct {
	Verbose bool        // If set, verbosely logs the assembler actions.
	Strict  bool        // If set, mnemonics must be legal for the line format.
	Tables  *isa.Tables // Mnemonic tables. If nil, isa.Default is used.
}

// trace logs the classification of a line.
func (asm *Assembler) trace(lineno int, text string, format isa.Format) {
	if !asm.Verbose {
		return
	}

	if strings.Contains(text, COMMENT) {
		log.Print(f("info  | line:%d has a comment", lineno))
	}

	switch format {
	case isa.FORMAT_BLANK:
		log.Print(f("info  | line:%d is blank", lineno))
	default:
		log.Print(f("info  | line:%d is a %v instruction", lineno, format.String()))
	}
}

// Lines assembles an input stream, yielding each instruction as soon as
// its line is read. Blank and comment lines are skipped.
//
// The first error is yielded, and ends the iteration.
func (asm *Assembler) Lines(input io.Reader) iter.Seq2[Line, error] {
	return func(yield func(Line, error) bool) {
		enc := &Encoder{Tables: asm.Tables, Strict: asm.Strict}
		scanner := bufio.NewScanner(input)

		var lineno int
		var ip int

		for scanner.Scan() {
			text := scanner.Text()
			lineno += 1

			format, words, err := Classify(text, lineno)
			if err != nil {
				yield(Line{}, err)
				return
			}

			asm.trace(lineno, text, format)

			inst, err := enc.Encode(format, words, lineno)
			if err != nil {
				yield(Line{}, err)
				return
			}

			if inst == nil {
				continue
			}

			if asm.Verbose {
				log.Print(spew.Sdump(inst))
			}

			line := Line{LineNo: lineno, Ip: ip, Text: text, Words: words, Inst: inst}
			ip += 1

			if !yield(line, nil) {
				return
			}
		}

		err := scanner.Err()
		if err != nil {
			yield(Line{}, err)
		}
	}
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	prog = &Program{}

	for line, lerr := range asm.Lines(input) {
		if lerr != nil {
			err = lerr
			prog = nil
			return
		}
		prog.Lines = append(prog.Lines, line)
	}

	return
}
