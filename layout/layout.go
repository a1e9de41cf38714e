package layout

// Address-space constants for the target: a 20-bit physical address space
// with two 64KB RAM windows below the ROM split point.
const (
	SegmentSize = 0x10000 // one 64KB segment
	SegmentMask = 0xF0000 // segment selector bits of a 20-bit address
	OffsetMask  = 0x0FFFF // offset bits within a segment
	RAMEnd      = 0x20000 // first address of the ROM area
)

// Reserved region names with semantic meaning.
const (
	// StackName marks the stack region. It grows downward from End+1 and is
	// exempt from overlap checking in both roles.
	StackName = "stack"

	// HeapName marks the C heap carrier region. It is split at emission time
	// into .data, .bss and free-heap sub-bands.
	HeapName = "c_heap"
)

// Model selects the code/data addressing model of the build.
type Model string

const (
	ModelSmall   Model = "small"
	ModelMedium  Model = "medium"
	ModelCompact Model = "compact"
	ModelLarge   Model = "large"
	ModelHuge    Model = "huge"
)

// Valid reports whether m names a known memory model.
func (m Model) Valid() bool {
	switch m {
	case ModelSmall, ModelMedium, ModelCompact, ModelLarge, ModelHuge:
		return true
	}
	return false
}

// FarText reports whether code defaults to far (banked) placement under m.
func (m Model) FarText() bool {
	switch m {
	case ModelMedium, ModelLarge, ModelHuge:
		return true
	}
	return false
}

// Region is a user-declared RAM region with inclusive bounds.
type Region struct {
	Name  string
	Start uint32
	End   uint32
}

// Size returns the region extent in bytes.
func (r Region) Size() uint32 {
	return r.End - r.Start + 1
}

// Segment returns the 0x10000-aligned segment base of the region start.
func (r Region) Segment() uint32 {
	return r.Start & SegmentMask
}

// Normalized is the canonical form of a validated memory map. IRAM holds the
// regions of the low RAM window, SRAM those of the high window, each sorted
// ascending by start address. DS, SS and SP are the register-load values
// consumed by startup code.
type Normalized struct {
	Model Model
	DS    uint16
	SS    uint16
	SP    uint16
	IRAM  []Region
	SRAM  []Region
}

// Regions returns all banded regions in emission order: the IRAM window
// first, then the SRAM window.
func (n *Normalized) Regions() []Region {
	out := make([]Region, 0, len(n.IRAM)+len(n.SRAM))
	out = append(out, n.IRAM...)
	out = append(out, n.SRAM...)
	return out
}

// Find returns the named region from either window.
func (n *Normalized) Find(name string) (Region, bool) {
	for _, r := range n.Regions() {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}
