package layout

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/wondertools/wswantool/errors"
)

// Normalize validates a raw memory map and produces its canonical form.
// Regions are checked in declaration order; the first violated invariant
// aborts normalization. The input slice is not modified.
func Normalize(regions []Region, model Model) (*Normalized, error) {
	if !model.Valid() {
		return nil, errors.New(errors.PhaseLayout, errors.KindInvalidInput).
			Detail("unknown memory model %q", string(model)).
			Value(string(model)).
			Build()
	}

	for _, r := range regions {
		if !validIdentifier(r.Name) {
			return nil, errors.InvalidIdentifier(r.Name)
		}
		if r.End < r.Start {
			return nil, errors.NegativeSizeRegion(r.Name)
		}
		if r.Start >= RAMEnd {
			return nil, errors.RegionInRomArea(r.Name)
		}
		if r.Start&SegmentMask != r.End&SegmentMask {
			return nil, errors.RegionCrossesSegmentBoundary(r.Name)
		}
	}

	for i, a := range regions {
		if isStackExempt(a.Name) {
			continue
		}
		for _, b := range regions[i+1:] {
			if isStackExempt(b.Name) {
				continue
			}
			if a.Start <= b.End && b.Start <= a.End {
				return nil, errors.OverlappingRegions(a.Name, b.Name)
			}
		}
	}

	n := &Normalized{Model: model}

	var stack, heap *Region
	for i := range regions {
		r := regions[i]
		switch r.Name {
		case StackName:
			stack = &regions[i]
			continue
		case HeapName:
			heap = &regions[i]
		}
		if r.Start < SegmentSize {
			n.IRAM = append(n.IRAM, r)
		} else {
			n.SRAM = append(n.SRAM, r)
		}
	}

	if heap != nil {
		n.DS = uint16((heap.Start & SegmentMask) >> 4)
	}

	var stackTop uint32
	switch {
	case stack != nil:
		stackTop = stack.End + 1
	case heap != nil:
		stackTop = heap.End + 1
	default:
		return nil, errors.MissingStackArea()
	}
	n.SS = uint16((stackTop & SegmentMask) >> 4)
	n.SP = uint16(stackTop & OffsetMask)

	sort.SliceStable(n.IRAM, func(i, j int) bool { return n.IRAM[i].Start < n.IRAM[j].Start })
	sort.SliceStable(n.SRAM, func(i, j int) bool { return n.SRAM[i].Start < n.SRAM[j].Start })

	Logger().Debug("normalized memory map",
		zap.String("model", string(model)),
		zap.Int("iram_regions", len(n.IRAM)),
		zap.Int("sram_regions", len(n.SRAM)),
		zap.Uint16("ds", n.DS),
		zap.Uint16("ss", n.SS),
		zap.Uint16("sp", n.SP))

	return n, nil
}

// validIdentifier reports whether name matches [A-Za-z][A-Za-z0-9_]*.
func validIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c == '_' || c >= '0' && c <= '9'):
		default:
			return false
		}
	}
	return true
}

// isStackExempt reports whether a region sits out overlap checking. Any
// region in the stack family qualifies, not just the stack itself.
func isStackExempt(name string) bool {
	return strings.HasPrefix(name, StackName)
}
