package vu

import (
	"iter"
	"maps"
	"slices"
)

// Instruction is an entry of the VU instruction set.
type Instruction struct {
	Mnemonic string
	Op       CodeOp
	Shape    CodeShape
}

// shapeOf maps each opcode to the operands it takes.
var shapeOf = map[CodeOp]CodeShape{
	OP_LD:    SHAPE_REG_INPUT,
	OP_ST:    SHAPE_OUTPUT_REG,
	OP_LDC:   SHAPE_REG_CONST,
	OP_ADD:   SHAPE_REG_REG,
	OP_SUB:   SHAPE_REG_REG,
	OP_MUL:   SHAPE_REG_REG,
	OP_DIV:   SHAPE_REG_REG,
	OP_DOT:   SHAPE_REG_REG,
	OP_ABS:   SHAPE_REG_REG,
	OP_SIGN:  SHAPE_REG_REG,
	OP_SQRT:  SHAPE_REG_REG,
	OP_POW:   SHAPE_REG_REG,
	OP_EXP:   SHAPE_REG_REG,
	OP_LOG:   SHAPE_REG_REG,
	OP_MIN:   SHAPE_REG_REG,
	OP_MAX:   SHAPE_REG_REG,
	OP_SIN:   SHAPE_REG_REG,
	OP_COS:   SHAPE_REG_REG,
	OP_TAN:   SHAPE_REG_REG,
	OP_ASIN:  SHAPE_REG_REG,
	OP_ACOS:  SHAPE_REG_REG,
	OP_ATAN:  SHAPE_REG_REG,
	OP_ATAN2: SHAPE_REG_REG,
	OP_SHF:   SHAPE_REG_REG_SWIZZLE_MASK,
	OP_MULM:  SHAPE_REG_REG,
	OP_END:   SHAPE_NONE,
}

// instructionMap maps mnemonics to instructions. Mnemonics are the opcode names.
var instructionMap = func() map[string]Instruction {
	table := make(map[string]Instruction, len(shapeOf))
	for op, shape := range shapeOf {
		table[op.String()] = Instruction{Mnemonic: op.String(), Op: op, Shape: shape}
	}
	return table
}()

// LookupInstruction finds the instruction for a mnemonic. Mnemonics are case sensitive.
func LookupInstruction(mnemonic string) (inst Instruction, err error) {
	inst, ok := instructionMap[mnemonic]
	if !ok {
		err = ErrUnknownOpcode
	}
	return
}

// Instructions iterates over the instruction set in opcode order.
func Instructions() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, op := range slices.Sorted(maps.Keys(shapeOf)) {
			if !yield(instructionMap[op.String()]) {
				return
			}
		}
	}
}
