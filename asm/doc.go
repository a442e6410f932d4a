// Package asm implements the single pass, label-free assembler for the
// 16-bit RISC instruction set described by package isa.
//
// Each source line is normalized and classified by its lexical shape into
// one of the isa formats (Classify), then its mnemonic is resolved and its
// operands parsed and range checked into an isa.Instruction (Encoder).
// The first error stops assembly.
package asm
