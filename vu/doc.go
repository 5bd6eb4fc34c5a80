// Package vu implements the assembler for the Dreambox vertex unit (VU).
//
// The VU executes straight-line programs of at most 64 fixed-width 32-bit
// instruction words. Each word carries a 6-bit opcode, a destination
// register or output slot, a source register or slot literal, and for the
// shuffle instruction a swizzle and write mask.
//
// The assembler reads whitespace separated mnemonics and operands, encodes
// one word per instruction and terminates short programs with an `end`
// word. Integer operands may be written as compile-time expressions,
// $(...), which are evaluated with Starlark.
package vu
