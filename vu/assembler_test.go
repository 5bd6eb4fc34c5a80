package vu

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, program ...string) (prog *Program, err error) {
	t.Helper()

	asm := &Assembler{}
	return asm.Parse("", strings.NewReader(strings.Join(program, "\n")))
}

func TestAssemblerEmpty(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble(t)
	assert.NoError(err)
	assert.Equal([]uint32{0x0000003F}, prog.Binary())

	asm := &Assembler{}
	prog, err = asm.Assemble(slices.Values([]Token{}))
	assert.NoError(err)
	assert.Equal([]uint32{0x0000003F}, prog.Binary())
}

func TestAssemblerEncoding(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble(t,
		"ld r3 7",
		"st pos r2",
		"ldc r4 15",
		"shf r1 r2 xyzw 0b1010",
		"add r1 r2",
		"end",
	)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]uint32{
		0x00001CC0,
		0x00000801,
		0x00003D02,
		23 | (1 << 6) | (2 << 10) | (0 << 14) | (1 << 16) | (2 << 18) | (3 << 20) | (10 << 22),
		0x00000843,
		0x0000003F,
		0x0000003F,
	}, prog.Binary())
}

func TestAssemblerRegReg(t *testing.T) {
	assert := assert.New(t)

	for inst := range Instructions() {
		if inst.Shape != SHAPE_REG_REG {
			continue
		}
		for dst := range 16 {
			src := 15 - dst
			prog, err := assemble(t, fmt.Sprintf("%v r%d r%d", inst.Mnemonic, dst, src))
			assert.NoError(err, inst.Mnemonic)
			if err != nil {
				continue
			}
			bins := prog.Binary()
			assert.Equal(2, len(bins))
			code := Code(bins[0])
			assert.Equal(inst.Op, code.Op())
			assert.Equal(uint32(dst), code.Dst())
			assert.Equal(uint32(src), code.Src())
			assert.Equal(Swizzle{}, code.Swizzle())
			assert.Equal(uint32(0), code.Mask())
		}
	}
}

func repeat(line string, count int) []string {
	lines := make([]string, count)
	for n := range lines {
		lines[n] = line
	}
	return lines
}

func TestAssemblerTermination(t *testing.T) {
	assert := assert.New(t)

	for count := range PROGRAM_MAX {
		prog, err := assemble(t, repeat("add r0 r1", count)...)
		assert.NoError(err)
		bins := prog.Binary()
		assert.Equal(count+1, len(bins))
		assert.Equal(uint32(0x3F), bins[len(bins)-1])
	}

	// An explicit end is still followed by the terminator.
	prog, err := assemble(t, append(repeat("add r0 r1", 62), "end")...)
	assert.NoError(err)
	assert.Equal(64, len(prog.Binary()))
	assert.Equal(uint32(0x3F), prog.Binary()[62])
	assert.Equal(uint32(0x3F), prog.Binary()[63])

	// Instructions after an end are accepted.
	prog, err = assemble(t, "end", "add r0 r1")
	assert.NoError(err)
	assert.Equal([]uint32{0x3F, 0x403, 0x3F}, prog.Binary())

	// Exactly PROGRAM_MAX instructions are never extended.
	prog, err = assemble(t, repeat("add r0 r1", PROGRAM_MAX)...)
	assert.NoError(err)
	assert.Equal(PROGRAM_MAX, len(prog.Binary()))
	assert.Equal(uint32(0x403), prog.Binary()[PROGRAM_MAX-1])

	prog, err = assemble(t, append(repeat("add r0 r1", PROGRAM_MAX-1), "end")...)
	assert.NoError(err)
	assert.Equal(PROGRAM_MAX, len(prog.Binary()))
	assert.Equal(uint32(0x3F), prog.Binary()[PROGRAM_MAX-1])

	for _, count := range []int{PROGRAM_MAX + 1, PROGRAM_MAX + 2, 200} {
		_, err = assemble(t, repeat("add r0 r1", count)...)
		assert.ErrorIs(err, ErrProgramTooLarge, count)
	}

	// Sixty-five 'end's are still too many.
	_, err = assemble(t, repeat("end", PROGRAM_MAX+1)...)
	assert.ErrorIs(err, ErrProgramTooLarge)
}

func TestAssemblerStrict(t *testing.T) {
	assert := assert.New(t)

	source := strings.Join(repeat("mul r2 r3", PROGRAM_MAX), "\n")

	asm := &Assembler{Strict: true}
	_, err := asm.Parse("strict.vu", strings.NewReader(source))
	assert.ErrorIs(err, ErrProgramUnterminated)
	var se *ErrSyntax
	if assert.True(errors.As(err, &se)) {
		assert.Equal(Pos{"strict.vu", PROGRAM_MAX, 1}, se.Pos)
	}

	source = strings.Join(append(repeat("mul r2 r3", PROGRAM_MAX-1), "end"), "\n")
	prog, err := asm.Parse("strict.vu", strings.NewReader(source))
	assert.NoError(err)
	assert.Equal(PROGRAM_MAX, len(prog.Binary()))

	prog, err = asm.Parse("strict.vu", strings.NewReader("mul r2 r3"))
	assert.NoError(err)
	assert.Equal(2, len(prog.Binary()))

	// Not strict: accepted as written.
	asm = &Assembler{Verbose: true}
	prog, err = asm.Parse("loose.vu", strings.NewReader(strings.Join(repeat("mul r2 r3", PROGRAM_MAX), "\n")))
	assert.NoError(err)
	assert.Equal(PROGRAM_MAX, len(prog.Binary()))
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("NORMAL", 2)
	asm.Predefine("LIGHT", 9)
	asm.Predefine("LIGHT", 10)

	prog, err := asm.Parse("", strings.NewReader("ld r1 $(NORMAL)\nldc r2 $(LIGHT + 1)\nldc r3 $(CONSTANT_SLOTS - 1)"))
	assert.NoError(err)
	assert.Equal([]uint32{
		uint32(MakeCodeSlot(OP_LD, REG_R1, 2)),
		uint32(MakeCodeSlot(OP_LDC, REG_R2, 11)),
		uint32(MakeCodeSlot(OP_LDC, REG_R3, 15)),
		0x3F,
	}, prog.Binary())

	_, err = asm.Parse("", strings.NewReader("ld r1 $(INPUT_SLOTS)"))
	assert.ErrorIs(err, ErrOperandOutOfRange)

	_, err = asm.Parse("", strings.NewReader("ld r1 $(NORMAL - 3)"))
	assert.ErrorIs(err, ErrInvalidOperandType)
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		prog   string
		err    error
		line   int
		column int
		token  string
	}{
		{"mystery r0 r1", ErrUnknownOpcode, 1, 1, "mystery"},
		{"add r0 r1\nADD r0 r1", ErrUnknownOpcode, 2, 1, "ADD"},
		{"7 r0 r1", ErrInvalidOperandType, 1, 1, "7"},
		{"ld r0 8", ErrOperandOutOfRange, 1, 7, "8"},
		{"ld r0 0x100000000", ErrOperandOutOfRange, 1, 7, "0x100000000"},
		{"ld r0 -1", ErrInvalidOperandType, 1, 7, "-"},
		{"ld r0 r1", ErrInvalidOperandType, 1, 7, "r1"},
		{"ld 0 0", ErrInvalidOperandType, 1, 4, "0"},
		{"ld r16 0", ErrInvalidRegister, 1, 4, "r16"},
		{"ldc r0 16", ErrOperandOutOfRange, 1, 8, "16"},
		{"st r0 r1", ErrInvalidOutput, 1, 4, "r0"},
		{"st pos out", ErrInvalidRegister, 1, 8, "out"},
		{"add r0 pos", ErrInvalidRegister, 1, 8, "pos"},
		{"shf r0 r1 xyzq 0", ErrInvalidSwizzle, 1, 11, "xyzq"},
		{"shf r0 r1 xyz 0", ErrInvalidSwizzle, 1, 11, "xyz"},
		{"shf r0 r1 xyzw 16", ErrOperandOutOfRange, 1, 16, "16"},
		{"shf r0 r1 xyzw mask", ErrInvalidOperandType, 1, 16, "mask"},
		{"shf r0 r1 1234 0", ErrInvalidOperandType, 1, 11, "1234"},
		{"add r0", ErrUnexpectedEndOfInput, 1, 7, ""},
		{"shf r0 r1 xyzw", ErrUnexpectedEndOfInput, 1, 15, ""},
		{"st\n", ErrUnexpectedEndOfInput, 1, 3, ""},
	}

	for _, entry := range table {
		_, err := assemble(t, entry.prog)
		assert.ErrorIs(err, entry.err, entry.prog)
		var se *ErrSyntax
		if assert.True(errors.As(err, &se), entry.prog) {
			assert.Equal(entry.line, se.Pos.Line, entry.prog)
			assert.Equal(entry.column, se.Pos.Column, entry.prog)
			assert.Equal(entry.token, se.Token, entry.prog)
		}
	}
}

func TestAssemblerFailFast(t *testing.T) {
	assert := assert.New(t)

	// The first error wins, even when the program is also too large.
	source := append([]string{"add r0 r99"}, repeat("add r0 r1", 100)...)
	_, err := assemble(t, source...)
	assert.ErrorIs(err, ErrInvalidRegister)
	assert.False(errors.Is(err, ErrProgramTooLarge))

	// Errors carry a readable location.
	asm := &Assembler{}
	_, err = asm.Parse("shader.vu", strings.NewReader("ld r0 8"))
	assert.Error(err)
	assert.Contains(err.Error(), "shader.vu:1:7")
	assert.Contains(err.Error(), "'8'")
}

func TestAssemblerIndependent(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	first, err := asm.Parse("", strings.NewReader("add r0 r1\nsub r2 r3"))
	assert.NoError(err)
	_, err = asm.Parse("", strings.NewReader("bogus"))
	assert.Error(err)
	second, err := asm.Parse("", strings.NewReader("dot r4 r5"))
	assert.NoError(err)

	assert.Equal(3, len(first.Binary()))
	assert.Equal([]uint32{uint32(MakeCodeRegReg(OP_DOT, REG_R4, REG_R5)), 0x3F}, second.Binary())
}

func TestAssemblerEndPosition(t *testing.T) {
	assert := assert.New(t)

	// The terminator sits past the source text of an expression, not its value.
	prog, err := assemble(t, "ldc r0 $(15)")
	assert.NoError(err)
	if assert.Equal(2, len(prog.Opcodes)) {
		assert.Equal(Pos{Line: 1, Column: 13}, prog.Opcodes[1].Pos)
	}

	_, err = assemble(t, append(repeat("add r0 r1", PROGRAM_MAX), "ldc r0 $( 1 )")...)
	var se *ErrSyntax
	if assert.True(errors.As(err, &se)) {
		assert.ErrorIs(err, ErrProgramTooLarge)
		assert.Equal(Pos{Line: PROGRAM_MAX + 1, Column: 14}, se.Pos)
	}
}
