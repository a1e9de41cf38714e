// Package layout validates user-declared RAM maps for a 16-bit segmented
// target and produces their canonical normalized form.
//
// A raw map is an ordered list of named regions with inclusive 20-bit
// address bounds. Two names are reserved: "stack" (grows downward from
// End+1, exempt from overlap checks) and "c_heap" (the C heap carrier,
// split into .data/.bss/free-heap bands at emission time).
//
// Normalize checks every region (identifier syntax, non-negative size,
// placement below the ROM split, single-segment extent, pairwise overlap)
// and derives the DS/SS/SP register-load values startup code expects:
//
//	n, err := layout.Normalize([]layout.Region{
//		{Name: "c_heap", Start: 0x10000, End: 0x1EFFF},
//		{Name: "stack", Start: 0x1F000, End: 0x1FFFF},
//	}, layout.ModelMedium)
//
// The result partitions regions into the IRAM window (below 0x10000) and
// the SRAM window (0x10000 and up), each sorted by start address.
package layout
