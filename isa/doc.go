// Package isa describes the 16-bit RISC instruction set targeted by the
// assembler.
//
// Every instruction is a single 16-bit word whose top four bits are the
// primary opcode. The remaining twelve bits are laid out in one of four
// formats: three registers, a register and an 8-bit immediate, a lone
// 12-bit immediate, or two registers followed by a 4-bit extended opcode.
// The last format is selected by the reserved primary opcode 0b1111.
package isa
