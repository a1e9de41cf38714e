// Package config loads build configurations written as Lua chunks.
//
// A configuration names the memory model, the ROM bounds, the declared RAM
// regions and any link-time constants. Lua keeps the declaration format of
// the classic toolchain while allowing computed layouts (loops, shared
// constants) in project files.
package config
