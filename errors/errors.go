package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLayout  Phase = "layout"  // memory map normalization
	PhaseEmit    Phase = "emit"    // linker script emission
	PhaseConvert Phase = "convert" // file/data reference conversion
	PhaseEmbed   Phase = "embed"   // binary-to-source embedding
	PhaseConfig  Phase = "config"  // build configuration loading
	PhaseMerge   Phase = "merge"   // compile-commands merging
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidIdentifier Kind = "invalid_identifier"
	KindNegativeSize      Kind = "negative_size_region"
	KindRegionInRomArea   Kind = "region_in_rom_area"
	KindSegmentBoundary   Kind = "region_crosses_segment_boundary"
	KindOverlap           Kind = "overlapping_regions"
	KindMissingStack      Kind = "missing_stack_area"
	KindInvalidConstant   Kind = "invalid_constant_type"
	KindUnsupportedInput  Kind = "unsupported_input_type"
	KindInvalidInput      Kind = "invalid_input"
	KindNotFound          Kind = "not_found"
	KindMigration         Kind = "migration"
)

// Error is the structured error type used throughout the toolchain
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Detail  string
	Regions []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Regions) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Regions, ", "))
	}

	if e.Detail != "" {
		if len(e.Regions) > 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Regions sets the offending region names
func (b *Builder) Regions(names ...string) *Builder {
	b.err.Regions = names
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidIdentifier reports a region name that is not a valid identifier
func InvalidIdentifier(name string) *Error {
	return &Error{
		Phase:   PhaseLayout,
		Kind:    KindInvalidIdentifier,
		Regions: []string{name},
		Detail:  fmt.Sprintf("region name %q is not a valid identifier", name),
	}
}

// NegativeSizeRegion reports a region whose end precedes its start
func NegativeSizeRegion(name string) *Error {
	return &Error{
		Phase:   PhaseLayout,
		Kind:    KindNegativeSize,
		Regions: []string{name},
		Detail:  "region end precedes region start",
	}
}

// RegionInRomArea reports a region placed at or above the ROM split point
func RegionInRomArea(name string) *Error {
	return &Error{
		Phase:   PhaseLayout,
		Kind:    KindRegionInRomArea,
		Regions: []string{name},
		Detail:  "region lies in the ROM address area",
	}
}

// RegionCrossesSegmentBoundary reports a region spanning two 64KB segments
func RegionCrossesSegmentBoundary(name string) *Error {
	return &Error{
		Phase:   PhaseLayout,
		Kind:    KindSegmentBoundary,
		Regions: []string{name},
		Detail:  "region crosses a 64KB segment boundary",
	}
}

// OverlappingRegions reports two regions with intersecting address ranges
func OverlappingRegions(name1, name2 string) *Error {
	return &Error{
		Phase:   PhaseLayout,
		Kind:    KindOverlap,
		Regions: []string{name1, name2},
		Detail:  "regions overlap",
	}
}

// MissingStackArea reports a layout with neither a stack nor a c_heap region
func MissingStackArea() *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindMissingStack,
		Detail: "layout declares neither a stack nor a c_heap region",
	}
}

// InvalidConstantType reports a link-time constant whose value is not an integer
func InvalidConstantType(name string, value any) *Error {
	return &Error{
		Phase:  PhaseEmit,
		Kind:   KindInvalidConstant,
		Detail: fmt.Sprintf("constant %q has non-integer value of type %T", name, value),
		Value:  value,
	}
}

// UnsupportedInput reports a value that is neither path-like nor buffer-like
func UnsupportedInput(value any) *Error {
	return &Error{
		Phase:  PhaseConvert,
		Kind:   KindUnsupportedInput,
		Detail: fmt.Sprintf("cannot interpret value of type %T as a file or data reference", value),
		Value:  value,
	}
}
