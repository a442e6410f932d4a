// Package emit renders assembled instructions as binary and hexadecimal
// text, one instruction per line.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/risc16/isa"
)

// Radix is the text base of a rendering.
type Radix int

const (
	RADIX_BIN = Radix(2)
	RADIX_HEX = Radix(16)
)

const (
	// SEPARATOR is the default field separator.
	SEPARATOR = "_"
	// ADDRESS_STRIDE is the byte size of an instruction.
	ADDRESS_STRIDE = 2
)

// renderField renders a field at its full width. Signed fields are
// rendered in two's complement.
func renderField(field isa.Field, radix Radix) string {
	value := uint(field.Value)
	if field.Signed {
		value = uint(field.Bits())
	}

	if radix == RADIX_HEX {
		return fmt.Sprintf("%0*x", (field.Width+3)/4, value)
	}
	return fmt.Sprintf("%0*b", field.Width, value)
}

// Render renders the fields of an instruction in radix, most significant
// first, joined by sep.
func Render(inst isa.Instruction, radix Radix, sep string) string {
	fields := inst.Fields()
	texts := make([]string, len(fields))
	for n, field := range fields {
		texts[n] = renderField(field, radix)
	}
	return strings.Join(texts, sep)
}

// Literal wraps a rendered instruction as a memory initialization
// literal, b"..." or x"...", followed by an address comment.
func Literal(text string, radix Radix, sep string, address uint16) string {
	prefix := `b"`
	digits := isa.WORD_BITS
	if radix == RADIX_HEX {
		prefix = `x"`
		digits = isa.WORD_BITS / 4
	}

	width := len(prefix) + digits + 3*len(sep) + 2
	return fmt.Sprintf("%-*s -- Address 0x%04x", width, prefix+text+`",`, address)
}

// Target is an output of the Emitter.
type Target struct {
	Writer io.Writer
	Radix  Radix
}

// Emitter writes each instruction to every target, and tracks the byte
// address of the instruction.
type Emitter struct {
	Targets   []Target // Outputs.
	Separator string   // Field separator.
	Formatted bool     // If set, emit memory initialization literals.
	Address   uint16   // Byte address of the next instruction.
	Count     int      // Instructions emitted.
}

// NewEmitter creates an emitter with the default separator, starting
// at address.
func NewEmitter(address uint16, targets ...Target) *Emitter {
	return &Emitter{
		Targets:   targets,
		Separator: SEPARATOR,
		Address:   address,
	}
}

// Emit writes an instruction to all targets, then advances the address.
// A nil instruction emits nothing.
func (em *Emitter) Emit(inst isa.Instruction) (err error) {
	if inst == nil {
		return
	}

	for _, target := range em.Targets {
		text := Render(inst, target.Radix, em.Separator)
		if em.Formatted {
			text = Literal(text, target.Radix, em.Separator, em.Address)
		}
		_, err = io.WriteString(target.Writer, text+"\n")
		if err != nil {
			return
		}
	}

	em.Address += ADDRESS_STRIDE
	em.Count += 1

	return
}
