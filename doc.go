// Package wswantool generates linker control scripts for a 16-bit,
// segmented-addressing target with two 64KB RAM windows below ROM.
//
// A build declares named RAM regions and a memory model; the tool validates
// the declaration and emits the script an external linker uses to place
// sections, generate the boundary/length symbols startup code depends on,
// and support bank-switched far code placement.
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	wswantool/       Root package with the one-call Compile pipeline
//	├── layout/      Memory map validation and normalization
//	├── ldscript/    Linker script emission (bands, bank tags, symbols)
//	├── config/      Lua build configuration loading
//	├── filebuf/     File/byte-buffer conversion with temp-file contexts
//	├── bin2c/       Binary-to-C-source embedding
//	├── ccmerge/     compile_commands.json fragment merging
//	├── settings/    Versioned key/value configuration repository
//	└── errors/      Structured error types
//
// # Quick Start
//
// Compile a memory map to a linker script:
//
//	var buf bytes.Buffer
//	err := wswantool.Compile(&buf, []layout.Region{
//		{Name: "c_heap", Start: 0x10000, End: 0x1EFFF},
//		{Name: "stack", Start: 0x1F000, End: 0x1FFFF},
//	}, layout.ModelMedium, nil, 0x20000, 0xE0000)
//
// The cmd/wswantool command wraps the same pipeline behind subcommands
// (link, bin2c, ccmerge, config) for build-system use.
package wswantool
