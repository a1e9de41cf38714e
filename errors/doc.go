// Package errors provides structured error types for the wswantool library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the offending region
// names, the rejected value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLayout, errors.KindOverlap).
//		Regions("c_heap", "framebuf").
//		Detail("regions overlap").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OverlappingRegions("c_heap", "framebuf")
//	err := errors.InvalidConstantType("ROM_BANK", "not a number")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
