package bin2c

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/wondertools/wswantool/errors"
)

// bytesPerLine is the array formatting width of the generated source.
const bytesPerLine = 12

// Options control the generated declarations.
type Options struct {
	// Align emits an aligned attribute on the array when positive.
	Align int
	// AddressSpace is an optional qualifier placed before the array name,
	// e.g. "__far" to push the data into a banked address space.
	AddressSpace string
}

// Convert serializes data into a C source/header pair declaring a constant
// byte array named name plus a <name>_size macro. Output is deterministic
// for identical inputs.
func Convert(name string, data []byte, opts Options) (source, header []byte, err error) {
	if !validCIdentifier(name) {
		return nil, nil, errors.New(errors.PhaseEmbed, errors.KindInvalidIdentifier).
			Detail("symbol name %q is not a valid C identifier", name).
			Value(name).
			Build()
	}

	decl := "const uint8_t"
	if opts.AddressSpace != "" {
		decl += " " + opts.AddressSpace
	}

	var src bytes.Buffer
	src.WriteString("/* Generated by wswantool bin2c. Do not edit. */\n")
	src.WriteString("#include <stdint.h>\n")
	src.WriteString("#include <stddef.h>\n\n")
	if opts.Align > 0 {
		fmt.Fprintf(&src, "__attribute__((aligned(%d)))\n", opts.Align)
	}
	fmt.Fprintf(&src, "%s %s[%d] = {", decl, name, len(data))
	for i, b := range data {
		if i%bytesPerLine == 0 {
			src.WriteString("\n\t")
		} else {
			src.WriteByte(' ')
		}
		fmt.Fprintf(&src, "0x%02x,", b)
	}
	src.WriteString("\n};\n")

	var hdr bytes.Buffer
	hdr.WriteString("/* Generated by wswantool bin2c. Do not edit. */\n")
	hdr.WriteString("#pragma once\n")
	hdr.WriteString("#include <stdint.h>\n")
	hdr.WriteString("#include <stddef.h>\n\n")
	fmt.Fprintf(&hdr, "#define %s_size %d\n", name, len(data))
	fmt.Fprintf(&hdr, "extern %s %s[%d];\n", decl, name, len(data))

	Logger().Debug("embedded binary",
		zap.String("name", name),
		zap.Int("bytes", len(data)),
		zap.Int("align", opts.Align))
	return src.Bytes(), hdr.Bytes(), nil
}

// SymbolName derives a usable C identifier from a file name, mapping every
// non-alphanumeric rune to an underscore.
func SymbolName(filename string) string {
	out := []rune{}
	for _, c := range filename {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}
	if len(out) == 0 || out[0] >= '0' && out[0] <= '9' {
		out = append([]rune{'_'}, out...)
	}
	return string(out)
}

func validCIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
