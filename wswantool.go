package wswantool

import (
	"io"

	"github.com/wondertools/wswantool/layout"
	"github.com/wondertools/wswantool/ldscript"
)

// Compile validates a raw memory map and writes the resulting linker script
// to w in one step. It is the two-stage pipeline most callers want; use the
// layout and ldscript packages directly to inspect the normalized form in
// between.
func Compile(w io.Writer, regions []layout.Region, model layout.Model, constants []ldscript.Constant, romStart, romLength uint32) error {
	n, err := layout.Normalize(regions, model)
	if err != nil {
		return err
	}
	return ldscript.Emit(w, n, constants, romStart, romLength)
}
