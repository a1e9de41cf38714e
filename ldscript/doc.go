// Package ldscript emits linker control scripts from a normalized RAM map.
//
// The output shape is fixed: a MEMORY block declaring the IRAM, SRAM and
// ROM windows, per-bank-tag ROM code bands, one band group per RAM window
// (regions in ascending start order, with the c_heap carrier split into
// .data/.bss/heap sub-bands), far code/rodata bands for the banked memory
// models, the link-time constant symbols, and DWARF placeholder sections.
//
// RAM bands carry no load content of their own (NOLOAD); their ROM images
// are chained one after another via AT() expressions starting at the erom
// marker, so startup code can copy and zero-fill them from a single
// contiguous ROM range using the generated __s*/__e*/__l*/__lw* symbols.
//
// Every logical band exists three times, once per bank tag ("", "!", "%"),
// so object files can target alternate overlay-bank images sharing one
// address range without colliding at link time.
package ldscript
