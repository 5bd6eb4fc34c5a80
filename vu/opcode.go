package vu

import (
	"fmt"
)

const (
	PROGRAM_MAX    = 64 // Maximum program length, in words.
	INPUT_SLOTS    = 8  // Number of vertex input slots.
	CONSTANT_SLOTS = 16 // Number of constant slots.
)

// CodeOp is a VU opcode.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_LD    = CodeOp(0)  // ld
	OP_ST    = CodeOp(1)  // st
	OP_LDC   = CodeOp(2)  // ldc
	OP_ADD   = CodeOp(3)  // add
	OP_SUB   = CodeOp(4)  // sub
	OP_MUL   = CodeOp(5)  // mul
	OP_DIV   = CodeOp(6)  // div
	OP_DOT   = CodeOp(7)  // dot
	OP_ABS   = CodeOp(8)  // abs
	OP_SIGN  = CodeOp(9)  // sign
	OP_SQRT  = CodeOp(10) // sqrt
	OP_POW   = CodeOp(11) // pow
	OP_EXP   = CodeOp(12) // exp
	OP_LOG   = CodeOp(13) // log
	OP_MIN   = CodeOp(14) // min
	OP_MAX   = CodeOp(15) // max
	OP_SIN   = CodeOp(16) // sin
	OP_COS   = CodeOp(17) // cos
	OP_TAN   = CodeOp(18) // tan
	OP_ASIN  = CodeOp(19) // asin
	OP_ACOS  = CodeOp(20) // acos
	OP_ATAN  = CodeOp(21) // atan
	OP_ATAN2 = CodeOp(22) // atan2
	OP_SHF   = CodeOp(23) // shf
	OP_MULM  = CodeOp(24) // mulm
	OP_END   = CodeOp(63) // end
)

// CodeShape describes the operands an opcode takes.
type CodeShape int

//go:generate go tool stringer -linecomment -type=CodeShape
const (
	SHAPE_NONE                 = CodeShape(0) // none
	SHAPE_REG_INPUT            = CodeShape(1) // reg,input
	SHAPE_OUTPUT_REG           = CodeShape(2) // output,reg
	SHAPE_REG_CONST            = CodeShape(3) // reg,const
	SHAPE_REG_REG              = CodeShape(4) // reg,reg
	SHAPE_REG_REG_SWIZZLE_MASK = CodeShape(5) // reg,reg,swizzle,mask
)

// CodeReg is a general purpose vector register.
type CodeReg int

//go:generate go tool stringer -linecomment -type=CodeReg
const (
	REG_R0  = CodeReg(0)  // r0
	REG_R1  = CodeReg(1)  // r1
	REG_R2  = CodeReg(2)  // r2
	REG_R3  = CodeReg(3)  // r3
	REG_R4  = CodeReg(4)  // r4
	REG_R5  = CodeReg(5)  // r5
	REG_R6  = CodeReg(6)  // r6
	REG_R7  = CodeReg(7)  // r7
	REG_R8  = CodeReg(8)  // r8
	REG_R9  = CodeReg(9)  // r9
	REG_R10 = CodeReg(10) // r10
	REG_R11 = CodeReg(11) // r11
	REG_R12 = CodeReg(12) // r12
	REG_R13 = CodeReg(13) // r13
	REG_R14 = CodeReg(14) // r14
	REG_R15 = CodeReg(15) // r15
)

// CodeOutput is a vertex output slot.
type CodeOutput int

//go:generate go tool stringer -linecomment -type=CodeOutput
const (
	OUTPUT_POS  = CodeOutput(0) // pos
	OUTPUT_TEX  = CodeOutput(1) // tex
	OUTPUT_COL  = CodeOutput(2) // col
	OUTPUT_OCOL = CodeOutput(3) // ocol
)

// CodeComponent selects one lane of a 4-element vector.
type CodeComponent int

//go:generate go tool stringer -linecomment -type=CodeComponent
const (
	COMP_X = CodeComponent(0) // x
	COMP_Y = CodeComponent(1) // y
	COMP_Z = CodeComponent(2) // z
	COMP_W = CodeComponent(3) // w
)

// Swizzle is the lane selection of a shuffle, one component per output lane.
type Swizzle [4]CodeComponent

// String returns the positional spelling of the swizzle, e.g. "xyzw".
func (sw Swizzle) String() string {
	return sw[0].String() + sw[1].String() + sw[2].String() + sw[3].String()
}

// Code is a single encoded VU instruction word.
//
//	bits  0-5   opcode
//	bits  6-9   dst (register or output slot)
//	bits 10-13  src (register or slot literal)
//	bits 14-21  swizzle x, y, z, w (2 bits each)
//	bits 22-25  mask
//	bits 26-31  zero
type Code uint32

// MakeCode packs an instruction into a word. Out of range fields are masked to their width.
func MakeCode(op CodeOp, dst, src uint32, sw Swizzle, mask uint32) Code {
	return Code((uint32(op) & 0x3f) |
		((dst & 0xf) << 6) |
		((src & 0xf) << 10) |
		((uint32(sw[0]) & 3) << 14) |
		((uint32(sw[1]) & 3) << 16) |
		((uint32(sw[2]) & 3) << 18) |
		((uint32(sw[3]) & 3) << 20) |
		((mask & 0xf) << 22))
}

// MakeCodeEnd creates the end-of-program word.
func MakeCodeEnd() Code {
	return Code(OP_END)
}

// MakeCodeSlot creates a load from an input or constant slot.
func MakeCodeSlot(op CodeOp, dst CodeReg, slot uint32) Code {
	return MakeCode(op, uint32(dst), slot, Swizzle{}, 0)
}

// MakeCodeOutput creates a store to a vertex output.
func MakeCodeOutput(op CodeOp, dst CodeOutput, src CodeReg) Code {
	return MakeCode(op, uint32(dst), uint32(src), Swizzle{}, 0)
}

// MakeCodeRegReg creates a two register operation.
func MakeCodeRegReg(op CodeOp, dst, src CodeReg) Code {
	return MakeCode(op, uint32(dst), uint32(src), Swizzle{}, 0)
}

// MakeCodeShuffle creates a masked shuffle.
func MakeCodeShuffle(op CodeOp, dst, src CodeReg, sw Swizzle, mask uint32) Code {
	return MakeCode(op, uint32(dst), uint32(src), sw, mask)
}

// Op returns the opcode field.
func (code Code) Op() CodeOp {
	return CodeOp(code & 0x3f)
}

// Dst returns the destination field.
func (code Code) Dst() uint32 {
	return (uint32(code) >> 6) & 0xf
}

// Src returns the source field.
func (code Code) Src() uint32 {
	return (uint32(code) >> 10) & 0xf
}

// Swizzle returns the swizzle fields.
func (code Code) Swizzle() (sw Swizzle) {
	word := uint32(code)
	for n := range sw {
		sw[n] = CodeComponent((word >> (14 + 2*n)) & 3)
	}
	return
}

// Mask returns the mask field.
func (code Code) Mask() uint32 {
	return (uint32(code) >> 22) & 0xf
}

// String returns the assembly language representation of this word.
func (code Code) String() (out string) {
	op := code.Op()

	shape, known := shapeOf[op]
	if !known {
		return fmt.Sprintf(".word %#08x", uint32(code))
	}

	switch shape {
	case SHAPE_NONE:
		out = op.String()
	case SHAPE_REG_INPUT, SHAPE_REG_CONST:
		out = fmt.Sprintf("%v %v, %v", op, CodeReg(code.Dst()), code.Src())
	case SHAPE_OUTPUT_REG:
		out = fmt.Sprintf("%v %v, %v", op, CodeOutput(code.Dst()), CodeReg(code.Src()))
	case SHAPE_REG_REG:
		out = fmt.Sprintf("%v %v, %v", op, CodeReg(code.Dst()), CodeReg(code.Src()))
	case SHAPE_REG_REG_SWIZZLE_MASK:
		out = fmt.Sprintf("%v %v, %v, %v, %#04b", op, CodeReg(code.Dst()), CodeReg(code.Src()), code.Swizzle(), code.Mask())
	}

	return
}
