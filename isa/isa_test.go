package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	assert := assert.New(t)

	tables := NewTables()
	assert.NoError(tables.Validate())

	assert.Equal(15, len(tables.Primary))
	assert.Equal(16, len(tables.Extended))

	assert.Equal(OP_LI, tables.Primary["li"])
	assert.Equal(OP_ADD, tables.Primary["add"])
	assert.Equal(Opcode(0b1100), tables.Primary["add"])
	assert.Equal(OP_OR, tables.Primary["or"])
	assert.Equal(EX_SW, tables.Extended["sw"])
	assert.Equal(ExOpcode(0b1111), tables.Extended["sz"])

	_, ok := tables.Primary["tworeg"]
	assert.False(ok)

	format, ok := tables.FormatOf("bra")
	assert.True(ok)
	assert.Equal(FORMAT_IMM, format)

	format, ok = tables.FormatOf("jal")
	assert.True(ok)
	assert.Equal(FORMAT_TWOREG, format)

	_, ok = tables.FormatOf("mov")
	assert.False(ok)

	assert.True(tables.Legal(FORMAT_STORE, "lui"))
	assert.False(tables.Legal(FORMAT_REG, "lui"))
}

func TestTablesValidate(t *testing.T) {
	assert := assert.New(t)

	tables := NewTables()
	tables.Primary["tworeg"] = OP_TWOREG
	assert.Error(tables.Validate())

	tables = NewTables()
	tables.Formats[FORMAT_IMM] = append(tables.Formats[FORMAT_IMM], "li")
	assert.Error(tables.Validate())

	tables = NewTables()
	tables.Formats[FORMAT_IMM] = append(tables.Formats[FORMAT_IMM], "jmp")
	assert.Error(tables.Validate())

	tables = NewTables()
	delete(tables.Primary, "bra")
	assert.Error(tables.Validate())
}

func TestStringer(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("tworeg", FORMAT_TWOREG.String())
	assert.Equal("Format(9)", Format(9).String())
	assert.Equal("xnor", OP_XNOR.String())
	assert.Equal("tworeg", OP_TWOREG.String())
	assert.Equal("Opcode(16)", Opcode(16).String())
	assert.Equal("lbu", EX_LBU.String())
}

func TestWord(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint16(0xc123), Word(ThreeReg{Opcode: OP_ADD, Rd: 1, Rs1: 2, Rs2: 3}))
	assert.Equal(uint16(0x00fb), Word(RegImm8{Opcode: OP_LI, Rd: 0, Imm8: -5}))
	assert.Equal(uint16(0xb7ff), Word(Imm12{Opcode: OP_BRA, Imm12: 2047}))
	assert.Equal(uint16(0xb800), Word(Imm12{Opcode: OP_BRA, Imm12: -2048}))
	assert.Equal(uint16(0xf457), Word(TwoRegExt{Rd: 4, Rs1: 5, Ex: EX_JAL}))
}

func TestFields(t *testing.T) {
	assert := assert.New(t)

	fields := RegImm8{Opcode: OP_LUI, Rd: 15, Imm8: -128}.Fields()
	assert.Equal(3, len(fields))
	assert.Equal("imm8", fields[2].Name)
	assert.True(fields[2].Signed)
	assert.Equal(-128, fields[2].Value)
	assert.Equal(uint16(0x80), fields[2].Bits())

	fields = TwoRegExt{Ex: EX_SZ}.Fields()
	assert.Equal(int(OP_TWOREG), fields[0].Value)
	assert.Equal(OP_TWOREG, TwoRegExt{}.Opcode())

	var inst Instruction = Imm12{}
	assert.Equal(FORMAT_IMM, inst.Format())
}
