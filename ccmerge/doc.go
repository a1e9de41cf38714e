// Package ccmerge assembles per-translation-unit compile-commands fragments
// into a single compile_commands.json array for clang tooling.
package ccmerge
