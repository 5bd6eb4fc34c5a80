package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/GlaireDaggers/DBSDK-VU-ASM/translate"
)

var f = translate.From

var ErrFormat = translate.NewError("unknown output format")

// emit writes the program words in the requested format.
func emit(w io.Writer, format string, name string, words []uint32) (err error) {
	hex := make([]string, len(words))
	for n, word := range words {
		hex[n] = fmt.Sprintf("0x%08X", word)
	}

	switch format {
	case "go":
		_, err = fmt.Fprintf(w, "var %v = []uint32{%v}\n", name, strings.Join(hex, ", "))
	case "rust":
		_, err = fmt.Fprintf(w, "[%v]\n", strings.Join(hex, ", "))
	case "c":
		_, err = fmt.Fprintf(w, "const uint32_t %v[%d] = {%v};\n", name, len(words), strings.Join(hex, ", "))
	case "hex":
		for _, word := range words {
			_, err = fmt.Fprintf(w, "%08x\n", word)
			if err != nil {
				return
			}
		}
	case "bin":
		err = binary.Write(w, binary.LittleEndian, words)
	default:
		err = fmt.Errorf("%w: %v", ErrFormat, format)
	}

	return
}
