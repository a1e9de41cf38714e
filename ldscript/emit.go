package ldscript

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/wondertools/wswantool/errors"
	"github.com/wondertools/wswantool/layout"
)

// StackPointerSymbol is the constant the emitter injects for startup code.
// Its value is the SP register-load value of the normalized layout.
const StackPointerSymbol = "__wf_stack_pointer"

// Constant is one link-time symbol definition. Value must be an integer;
// the slice order is the emission order.
type Constant struct {
	Name  string
	Value any
}

// debugSections are emitted as no-address placeholders so the linker does
// not treat DWARF input sections as orphans.
var debugSections = []string{
	".debug_abbrev",
	".debug_addr",
	".debug_aranges",
	".debug_frame",
	".debug_info",
	".debug_line",
	".debug_line_str",
	".debug_loc",
	".debug_loclists",
	".debug_macinfo",
	".debug_macro",
	".debug_pubnames",
	".debug_pubtypes",
	".debug_ranges",
	".debug_rnglists",
	".debug_str",
	".debug_str_offsets",
}

// Emit writes a complete linker control script for the given layout to w.
// constants are emitted after the injected stack-pointer entry, in slice
// order. The script text is a compatibility contract: startup code reads
// the __s*/__e*/__l*/__lw* symbols it defines.
func Emit(w io.Writer, l *layout.Normalized, constants []Constant, romStart, romLength uint32) error {
	return emit(w, l, constants, romStart, romLength, time.Now())
}

func emit(w io.Writer, l *layout.Normalized, constants []Constant, romStart, romLength uint32, now time.Time) error {
	merged := make([]Constant, 0, len(constants)+1)
	merged = append(merged, Constant{Name: StackPointerSymbol, Value: int64(l.SP)})
	merged = append(merged, constants...)

	values := make([]int64, len(merged))
	for i, c := range merged {
		v, ok := constantValue(c.Value)
		if !ok {
			return errors.InvalidConstantType(c.Name, c.Value)
		}
		values[i] = v
	}

	s := newScriptWriter(w)

	s.line("/* Linker script generated by wswantool. Do not edit. */")
	s.line("/* generated: %s */", now.UTC().Format(time.RFC3339))
	s.blank()

	emitMemory(s, romStart, romLength)
	s.blank()

	s.open("SECTIONS")
	emitRomText(s)
	s.line("erom = .;")
	s.blank()

	chain := "erom"
	chain = emitWindow(s, "iram", "IRAM", 0, l.IRAM, chain)
	emitWindow(s, "sram", "SRAM", layout.SegmentSize, l.SRAM, chain)

	if l.Model.FarText() {
		emitFarBands(s)
	}

	emitConstants(s, merged, values)
	s.blank()

	emitDebug(s)
	s.close("")

	if err := s.fin(); err != nil {
		return err
	}

	Logger().Debug("emitted linker script",
		zap.String("model", string(l.Model)),
		zap.Int("iram_regions", len(l.IRAM)),
		zap.Int("sram_regions", len(l.SRAM)),
		zap.Int("constants", len(merged)))
	return nil
}

func emitMemory(s *scriptWriter, romStart, romLength uint32) {
	s.open("MEMORY")
	s.line("IRAM (rwx) : ORIGIN = 0x%05X, LENGTH = 0x%X", 0, layout.SegmentSize)
	s.line("SRAM (rwx) : ORIGIN = 0x%05X, LENGTH = 0x%X", layout.SegmentSize, layout.SegmentSize)
	s.line("ROM (rx) : ORIGIN = 0x%X, LENGTH = 0x%X", romStart, romLength)
	s.close("")
}

// emitRomText writes the ROM code bands, one per bank tag.
func emitRomText(s *scriptWriter) {
	for _, tag := range bankTags {
		sec := tag.section(".text")
		s.open("%s :", quote(sec))
		s.line("*(%s %s)", quote(sec), quote(sec+".*"))
		s.close("> ROM")
		s.blank()
	}
}

// emitWindow writes all bands of one RAM window: the untagged region bodies
// in ascending start order, then one overlay collector band per non-primary
// tag, then the e<window> marker that becomes the new ROM chain head.
// Returns the updated chain expression.
func emitWindow(s *scriptWriter, name, memory string, base uint32, regions []layout.Region, chain string) string {
	if len(regions) == 0 {
		return chain
	}

	s.line("/* %s */", name)
	for _, r := range regions {
		if r.Name == layout.HeapName {
			chain = emitHeapBands(s, r, memory, chain)
		} else {
			chain = emitRegionBand(s, r, memory, chain)
		}
	}

	for _, tag := range overlayTags {
		sec := tag.section("." + name)
		s.open("%s 0x%05X (NOLOAD) : AT( %s )", quote(sec), base, chain)
		for _, r := range regions {
			emitTaggedMatches(s, r, tag)
		}
		s.close("> " + memory)
		chain = afterLoad(sec)
		s.blank()
	}

	end := "e" + name
	s.line("%s = %s;", end, chain)
	s.blank()
	return end
}

// emitRegionBand writes the body of an ordinary region: one NOLOAD band
// named after the region, its boundary and length symbols, and the cursor
// advance to the declared end.
func emitRegionBand(s *scriptWriter, r layout.Region, memory, chain string) string {
	sec := "." + r.Name
	s.open("%s 0x%05X (NOLOAD) : AT( %s )", quote(sec), r.Start, chain)
	s.line("__s%s = .;", r.Name)
	s.line("*(%s %s)", quote(sec), quote(sec+".*"))
	s.close("> " + memory)
	s.line(". = 0x%05X;", r.End+1)
	s.line("__e%s = .;", r.Name)
	s.line("__l%s = __e%s - __s%s;", r.Name, r.Name, r.Name)
	s.line("__lw%s = ( __l%s + 1 ) / 2;", r.Name, r.Name)
	s.blank()
	return afterLoad(sec)
}

// emitHeapBands splits the c_heap region into the ROM-initialized .data
// band, the zero-filled .bss band and the free heap window between the end
// of .bss and the declared region end.
func emitHeapBands(s *scriptWriter, r layout.Region, memory, chain string) string {
	s.open("%s 0x%05X : AT( %s )", quote(".data"), r.Start, chain)
	s.line("__sdata = .;")
	s.line("*(%s %s)", quote(".rodata"), quote(".rodata.*"))
	s.line("*(%s %s)", quote(".data"), quote(".data.*"))
	s.line("__edata = .;")
	s.close("> " + memory)
	s.line("__ldata = __edata - __sdata;")
	s.line("__lwdata = ( __ldata + 1 ) / 2;")
	s.blank()
	chain = afterLoad(".data")

	s.open("%s (NOLOAD) : AT( %s )", quote(".bss"), chain)
	s.line("__sbss = .;")
	s.line("*(%s %s COMMON)", quote(".bss"), quote(".bss.*"))
	s.line("__ebss = .;")
	s.close("> " + memory)
	s.line("__lbss = __ebss - __sbss;")
	s.line("__lwbss = ( __lbss + 1 ) / 2;")
	s.blank()
	chain = afterLoad(".bss")

	s.line("__sheap = .;")
	s.line(". = 0x%05X;", r.End+1)
	s.line("__eheap = .;")
	s.blank()
	return chain
}

// emitTaggedMatches writes the overlay-band input matches for one region.
// The c_heap carrier matches the rodata/data/bss families; every other
// region matches its own name.
func emitTaggedMatches(s *scriptWriter, r layout.Region, tag BankTag) {
	if r.Name == layout.HeapName {
		for _, fam := range []string{".rodata", ".data", ".bss"} {
			sec := tag.section(fam)
			s.line("*(%s %s)", quote(sec), quote(sec+".*"))
		}
		return
	}
	sec := tag.section("." + r.Name)
	s.line("*(%s %s)", quote(sec), quote(sec+".*"))
}

// emitFarBands writes the banked code and read-only data bands used by the
// medium, large and huge models.
func emitFarBands(s *scriptWriter) {
	for _, fam := range []string{".fartext", ".farrodata"} {
		for _, tag := range bankTags {
			sec := tag.section(fam)
			s.open("%s : SUBALIGN( 16 )", quote(sec))
			s.line("*(%s %s)", quote(sec), quote(sec+".*"))
			s.close("> ROM")
			s.blank()
		}
	}
}

// emitConstants writes every link-time constant as a symbol pair: a
// zero-valued shadow-tag alias followed by the absolute definition. The
// pair shape is a fixed compatibility requirement of the external linker.
func emitConstants(s *scriptWriter, constants []Constant, values []int64) {
	for i, c := range constants {
		s.line("%s = 0;", quote(TagShadow.section(c.Name)))
		s.line("%s = ABSOLUTE( %s );", quote(c.Name), formatValue(values[i]))
	}
}

func emitDebug(s *scriptWriter) {
	for _, sec := range debugSections {
		s.line("%s 0 : { *(%s) }", sec, sec)
	}
}

// afterLoad returns the chain expression for the byte just past a band's
// load image in ROM.
func afterLoad(sec string) string {
	return fmt.Sprintf("LOADADDR( %s ) + SIZEOF( %s )", quote(sec), quote(sec))
}

func formatValue(v int64) string {
	if v < 0 {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("0x%X", v)
}

// constantValue coerces a supplied constant to an integer. Floats are
// accepted only when integral, since Lua configs carry numbers as float64.
func constantValue(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	case float32:
		if float32(int64(x)) == x {
			return int64(x), true
		}
	case float64:
		if float64(int64(x)) == x {
			return int64(x), true
		}
	}
	return 0, false
}
