package asm

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ezrec/risc16/isa"
)

const (
	// COMMENT starts a comment that runs to the end of the line.
	COMMENT = "#"
	// MAX_WORDS is the most whitespace separated words a line may hold.
	MAX_WORDS = 4
)

// Lexical grammar. Registers are 'r' and one digit, with an optional
// second digit of 0-5 only.
const (
	patRegister    = `r\d[0-5]?`
	patMnemonic    = `\s*[a-z]{2,4}`
	patImmediate8  = `((0b[0-1]{1,8})|(0x[0-9a-f]{1,2})|(-?[0-9]{1,3}))`
	patImmediate12 = `((0b[0-1]{1,12})|(0x[0-9a-f]{1,3})|(-?[0-9]{1,4}))`
)

func fullMatch(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + pattern + `)$`)
}

// grammar is the ordered list of line shapes. The first match wins.
var grammar = []struct {
	format isa.Format
	re     *regexp.Regexp
}{
	// op rd, rs1, rs2
	{isa.FORMAT_REG, fullMatch(patMnemonic + `\s*` +
		patRegister + `,\s*` +
		patRegister + `,\s*` +
		patRegister + `\s*`)},
	// op rd, imm8
	{isa.FORMAT_STORE, fullMatch(patMnemonic + `\s*` +
		patRegister + `,\s*` +
		patImmediate8 + `\s*`)},
	// op imm12
	{isa.FORMAT_IMM, fullMatch(patMnemonic + `\s*` +
		patImmediate12 + `\s*`)},
	// op rd, rs1
	{isa.FORMAT_TWOREG, fullMatch(patMnemonic + `\s*` +
		patRegister + `,\s*` +
		patRegister + `\s*`)},
}

var reLabel = fullMatch(`\s*[a-zA-Z]*:\s*`)

// Normalize lowercases a source line, drops any comment, and trims
// the surrounding whitespace.
func Normalize(text string) string {
	line := strings.ToLower(text)
	if n := strings.Index(line, COMMENT); n >= 0 {
		line = line[:n]
	}
	return strings.TrimSpace(line)
}

// splitWords splits a normalized line into its mnemonic and operands.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// Classify determines the format of a source line, and returns its words:
// the mnemonic followed by the operands. Blank and comment-only lines are
// isa.FORMAT_BLANK, with no words.
//
// Any error returned is an ErrSyntax for lineno.
func Classify(text string, lineno int) (format isa.Format, words []string, err error) {
	line := Normalize(text)
	if len(line) == 0 {
		return isa.FORMAT_BLANK, nil, nil
	}

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
		}
	}()

	if len(strings.Fields(line)) > MAX_WORDS {
		err = ErrTooManyOperands
		return
	}

	format = isa.FORMAT_BLANK
	for _, shape := range grammar {
		if shape.re.MatchString(line) {
			format = shape.format
			break
		}
	}

	if format == isa.FORMAT_BLANK {
		if reLabel.MatchString(line) {
			err = ErrLabelsUnsupported
		} else {
			err = ErrSyntaxUnrecognized
		}
		return
	}

	words = splitWords(line)

	return
}
