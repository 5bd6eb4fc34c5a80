package vu

import (
	"io"
	"iter"
	"log"
	"maps"
	"slices"
)

// Assembler is a single pass assembler for the VU.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Strict  bool // If set, a program filling all PROGRAM_MAX words must end with 'end'.

	predefine map[string]int64 // Names visible to $(...) expressions.
}

// Predefine defines a new expression constant or redefines an existing one.
func (asm *Assembler) Predefine(name string, value int64) {
	if asm.predefine == nil {
		asm.predefine = map[string]int64{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Lexer returns a lexer for the named source that sees the assembler predefines.
func (asm *Assembler) Lexer(name string) *Lexer {
	return &Lexer{Name: name, Predefine: maps.Clone(asm.predefine)}
}

// Parse assembles the named source text.
func (asm *Assembler) Parse(name string, input io.Reader) (prog *Program, err error) {
	tokens, err := asm.Lexer(name).Scan(input)
	if err != nil {
		return
	}

	return asm.Assemble(slices.Values(tokens))
}

// assembly is the state of one Assemble call.
type assembly struct {
	next  func() (Token, bool)
	last  Token
	words []string
}

// end is the position just past the last token read.
func (as *assembly) end() Pos {
	return as.last.End()
}

// read consumes the next token.
func (as *assembly) read() (tok Token, ok bool) {
	tok, ok = as.next()
	if ok {
		as.last = tok
		as.words = append(as.words, tok.Text)
	}
	return
}

// operand decodes the next token, which must be present.
func operand[T any](as *assembly, decode func(Token) (T, error)) (value T, err error) {
	tok, ok := as.read()
	if !ok {
		err = &ErrSyntax{Pos: as.end(), Err: ErrUnexpectedEndOfInput}
		return
	}
	value, err = decode(tok)
	if err != nil {
		err = &ErrSyntax{Pos: tok.Pos, Token: tok.Text, Err: err}
	}
	return
}

func inputSlot(tok Token) (uint32, error) {
	return DecodeSlot(tok, INPUT_SLOTS)
}

func constantSlot(tok Token) (uint32, error) {
	return DecodeSlot(tok, CONSTANT_SLOTS)
}

// instruction decodes the operands of inst and encodes it.
func (as *assembly) instruction(inst Instruction) (code Code, err error) {
	var dst, src CodeReg
	var slot uint32

	switch inst.Shape {
	case SHAPE_NONE:
		code = MakeCode(inst.Op, 0, 0, Swizzle{}, 0)
	case SHAPE_REG_INPUT, SHAPE_REG_CONST:
		if dst, err = operand(as, DecodeRegister); err != nil {
			return
		}
		limit := inputSlot
		if inst.Shape == SHAPE_REG_CONST {
			limit = constantSlot
		}
		if slot, err = operand(as, limit); err != nil {
			return
		}
		code = MakeCodeSlot(inst.Op, dst, slot)
	case SHAPE_OUTPUT_REG:
		var out CodeOutput
		if out, err = operand(as, DecodeOutput); err != nil {
			return
		}
		if src, err = operand(as, DecodeRegister); err != nil {
			return
		}
		code = MakeCodeOutput(inst.Op, out, src)
	case SHAPE_REG_REG:
		if dst, err = operand(as, DecodeRegister); err != nil {
			return
		}
		if src, err = operand(as, DecodeRegister); err != nil {
			return
		}
		code = MakeCodeRegReg(inst.Op, dst, src)
	case SHAPE_REG_REG_SWIZZLE_MASK:
		var sw Swizzle
		var mask uint32
		if dst, err = operand(as, DecodeRegister); err != nil {
			return
		}
		if src, err = operand(as, DecodeRegister); err != nil {
			return
		}
		if sw, err = operand(as, DecodeSwizzle); err != nil {
			return
		}
		if mask, err = operand(as, DecodeMask); err != nil {
			return
		}
		code = MakeCodeShuffle(inst.Op, dst, src, sw, mask)
	}

	return
}

// mnemonic resolves an instruction name token.
func mnemonic(tok Token) (inst Instruction, err error) {
	if tok.Kind != TOKEN_IDENT {
		err = ErrInvalidOperandType
		return
	}
	return LookupInstruction(tok.Text)
}

// Assemble encodes a token stream into a Program.
//
// Programs shorter than PROGRAM_MAX words are always terminated with an
// 'end' word, even if the source already ends with one. A program of
// exactly PROGRAM_MAX words is left as written.
func (asm *Assembler) Assemble(tokens iter.Seq[Token]) (prog *Program, err error) {
	next, stop := iter.Pull(tokens)
	defer stop()

	as := &assembly{next: next}

	var opcodes []Opcode

	for {
		as.words = as.words[:0]
		tok, ok := as.read()
		if !ok {
			break
		}

		var inst Instruction
		inst, err = mnemonic(tok)
		if err != nil {
			err = &ErrSyntax{Pos: tok.Pos, Token: tok.Text, Err: err}
			return
		}

		var code Code
		code, err = as.instruction(inst)
		if err != nil {
			return
		}

		opcode := Opcode{Pos: tok.Pos, Ip: len(opcodes), Words: slices.Clone(as.words), Code: code}
		if asm.Verbose {
			log.Printf("%v: %v %#08x %v\n", opcode.Pos, opcode.Ip, uint32(code), opcode.Words)
		}
		opcodes = append(opcodes, opcode)
	}

	switch count := len(opcodes); {
	case count < PROGRAM_MAX:
		opcodes = append(opcodes, Opcode{Pos: as.end(), Ip: count, Code: MakeCodeEnd()})
	case count > PROGRAM_MAX:
		err = &ErrSyntax{Pos: as.end(), Err: ErrProgramTooLarge}
		return
	default:
		final := opcodes[count-1]
		if final.Code.Op() != OP_END {
			if asm.Strict {
				err = &ErrSyntax{Pos: final.Pos, Token: final.Words[0], Err: ErrProgramUnterminated}
				return
			}
			if asm.Verbose {
				log.Printf("%v: %v\n", final.Pos, ErrProgramUnterminated)
			}
		}
	}

	prog = &Program{
		Opcodes: opcodes,
	}

	return
}
