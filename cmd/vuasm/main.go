package main

import (
	"flag"
	"fmt"
	"iter"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"

	"github.com/GlaireDaggers/DBSDK-VU-ASM/internal"
	"github.com/GlaireDaggers/DBSDK-VU-ASM/translate"
	"github.com/GlaireDaggers/DBSDK-VU-ASM/vu"
)

// predefine parses a -D NAME=VALUE argument.
func predefine(asm *vu.Assembler) func(string) error {
	return func(arg string) (err error) {
		name, text, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("%v: %v", arg, f("expected NAME=VALUE"))
		}
		value, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return
		}
		asm.Predefine(name, value)
		return
	}
}

// assembleFiles lexes each input ('-' is stdin) and assembles their
// token streams as one program.
func assembleFiles(asm *vu.Assembler, inputs []string) (prog *vu.Program, err error) {
	var streams []iter.Seq[vu.Token]
	for _, input := range inputs {
		var tokens []vu.Token
		tokens, err = lexFile(asm, input)
		if err != nil {
			return
		}
		streams = append(streams, slices.Values(tokens))
	}

	prog, err = asm.Assemble(internal.IterSeqConcat(streams...))
	return
}

func lexFile(asm *vu.Assembler, input string) (tokens []vu.Token, err error) {
	inf := os.Stdin
	if input != "-" {
		inf, err = os.Open(input)
		if err != nil {
			return
		}
		defer inf.Close()
	}

	tokens, err = asm.Lexer(input).Scan(inf)
	return
}

func main() {
	var output string
	var format string
	var name string
	var listing bool
	var verbose bool
	var strict bool
	var lang string
	var isa bool

	asm := &vu.Assembler{}

	flag.StringVar(&output, "o", "-", "Output file")
	flag.StringVar(&format, "f", "rust", "Output format: go, rust, c, hex or bin")
	flag.StringVar(&name, "n", "program", "Array name for go and c output")
	flag.BoolVar(&listing, "l", false, "Write a listing to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&strict, "strict", false, "Reject full programs that do not end with 'end'")
	flag.StringVar(&lang, "lang", "", "Message language, overrides the locale")
	flag.BoolVar(&isa, "isa", false, "List the instruction set and exit")
	flag.Func("D", "Define NAME=VALUE for $(...) expressions", predefine(asm))

	flag.Parse()

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	if isa {
		for inst := range vu.Instructions() {
			fmt.Printf("%-6v %2d  %v\n", inst.Mnemonic, inst.Op, inst.Shape)
		}
		return
	}

	asm.Verbose = verbose
	asm.Strict = strict

	// Token streams of all inputs are assembled as one program.
	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	prog, err := assembleFiles(asm, inputs)
	if err != nil {
		log.Fatal(err)
	}

	if verbose {
		pp.Fprintln(os.Stderr, prog)
	}

	if listing {
		err = prog.WriteListing(os.Stderr)
		if err != nil {
			log.Fatal(err)
		}
	}

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	err = emit(ouf, format, name, prog.Binary())
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
