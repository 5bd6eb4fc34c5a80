package vu

import (
	"errors"
	"strconv"
	"strings"
)

// regMap maps register names.
var regMap = map[string]CodeReg{
	"r0":  REG_R0,
	"r1":  REG_R1,
	"r2":  REG_R2,
	"r3":  REG_R3,
	"r4":  REG_R4,
	"r5":  REG_R5,
	"r6":  REG_R6,
	"r7":  REG_R7,
	"r8":  REG_R8,
	"r9":  REG_R9,
	"r10": REG_R10,
	"r11": REG_R11,
	"r12": REG_R12,
	"r13": REG_R13,
	"r14": REG_R14,
	"r15": REG_R15,
}

// outputMap maps vertex output names.
var outputMap = map[string]CodeOutput{
	"pos":  OUTPUT_POS,
	"tex":  OUTPUT_TEX,
	"col":  OUTPUT_COL,
	"ocol": OUTPUT_OCOL,
}

// componentMap maps both the positional and color spelling of a lane.
var componentMap = map[byte]CodeComponent{
	'x': COMP_X,
	'y': COMP_Y,
	'z': COMP_Z,
	'w': COMP_W,
	'r': COMP_X,
	'g': COMP_Y,
	'b': COMP_Z,
	'a': COMP_W,
}

// ident returns the text of an identifier token.
func ident(tok Token) (name string, err error) {
	if tok.Kind != TOKEN_IDENT {
		err = ErrInvalidOperandType
		return
	}
	name = tok.Text
	return
}

// DecodeRegister decodes one of r0 to r15.
func DecodeRegister(tok Token) (reg CodeReg, err error) {
	name, err := ident(tok)
	if err != nil {
		return
	}
	reg, ok := regMap[name]
	if !ok {
		err = ErrInvalidRegister
	}
	return
}

// DecodeOutput decodes a vertex output slot name.
func DecodeOutput(tok Token) (out CodeOutput, err error) {
	name, err := ident(tok)
	if err != nil {
		return
	}
	out, ok := outputMap[name]
	if !ok {
		err = ErrInvalidOutput
	}
	return
}

// DecodeSwizzle decodes a four lane swizzle, e.g. "xyzw" or "bgra".
// Each letter is decoded on its own, so spellings may be mixed.
func DecodeSwizzle(tok Token) (sw Swizzle, err error) {
	name, err := ident(tok)
	if err != nil {
		return
	}
	if len(name) != len(sw) {
		err = ErrInvalidSwizzle
		return
	}
	for n := range sw {
		comp, ok := componentMap[name[n]]
		if !ok {
			err = ErrInvalidSwizzle
			return
		}
		sw[n] = comp
	}
	return
}

// literal returns the value of an integer literal token.
func literal(tok Token) (value uint32, err error) {
	if tok.Kind != TOKEN_INT {
		err = ErrInvalidOperandType
		return
	}
	v64, err := parseUint(tok.Text)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrOperandOutOfRange
		} else {
			err = ErrInvalidOperandType
		}
		return
	}
	value = uint32(v64)
	return
}

// parseUint parses a 32-bit literal. Literals are decimal unless prefixed
// with 0x, 0o or 0b; a leading zero alone does not select octal.
func parseUint(text string) (uint64, error) {
	if len(text) > 2 && text[0] == '0' && strings.ContainsRune("xXoObB", rune(text[1])) {
		return strconv.ParseUint(text, 0, 32)
	}
	return strconv.ParseUint(strings.ReplaceAll(text, "_", ""), 10, 32)
}

// DecodeSlot decodes a slot literal less than limit.
func DecodeSlot(tok Token, limit uint32) (slot uint32, err error) {
	slot, err = literal(tok)
	if err != nil {
		return
	}
	if slot >= limit {
		err = ErrOperandOutOfRange
	}
	return
}

// DecodeMask decodes a 4-bit write mask literal.
func DecodeMask(tok Token) (mask uint32, err error) {
	mask, err = literal(tok)
	if err != nil {
		return
	}
	if mask&0b1111 != mask {
		err = ErrOperandOutOfRange
	}
	return
}
