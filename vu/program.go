package vu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Opcode is an assembled instruction with its source location.
type Opcode struct {
	Pos   Pos      // Location of the mnemonic.
	Ip    int      // Word index in the program.
	Words []string // Source tokens. Empty for the automatic terminator.
	Code  Code
}

// Program is an assembled VU program of at most PROGRAM_MAX words.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode at ip, or nil if ip is outside the program.
func (prog *Program) Debug(ip int) (op *Opcode) {
	if ip < 0 || ip >= len(prog.Opcodes) {
		return
	}

	op = &prog.Opcodes[ip]
	return
}

// Binary returns the encoded instruction words.
func (prog *Program) Binary() (bins []uint32) {
	for _, code := range prog.Codes() {
		bins = append(bins, uint32(code))
	}

	return
}

// Codes iterates over the instruction words by ip.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Code) {
				return
			}
		}
	}
}

// WriteListing writes one line per word: ip, word, disassembly and source.
func (prog *Program) WriteListing(w io.Writer) (err error) {
	for _, op := range prog.Opcodes {
		source := "(auto)"
		if len(op.Words) != 0 {
			source = strings.Join(op.Words, " ")
		}
		_, err = fmt.Fprintf(w, "%02d: %08x  %-28v ; %v %v\n", op.Ip, uint32(op.Code), op.Code, op.Pos, source)
		if err != nil {
			return
		}
	}

	return
}
