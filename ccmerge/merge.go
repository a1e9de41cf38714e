package ccmerge

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wondertools/wswantool/errors"
)

// Merge concatenates compile-commands fragment files into one JSON array
// written to w. Each fragment is the comma-terminated body produced per
// translation unit by the compiler wrapper; the final fragment's trailing
// whitespace and comma are trimmed so the array stays valid. Fragments that
// cannot be opened are skipped, matching the build-tree case where a
// translation unit was not rebuilt.
func Merge(w io.Writer, paths []string) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}

	var pending []byte
	merged := 0
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			Logger().Warn("skipping unreadable fragment", zap.String("path", path), zap.Error(err))
			continue
		}
		body, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return errors.New(errors.PhaseMerge, errors.KindInvalidInput).
				Detail("read %s", path).
				Cause(err).
				Build()
		}
		if pending != nil {
			if _, err := w.Write(pending); err != nil {
				return err
			}
		}
		pending = body
		merged++
	}

	if pending != nil {
		if _, err := w.Write(trimTail(pending)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "]\n"); err != nil {
		return err
	}

	Logger().Debug("merged compile commands", zap.Int("fragments", merged))
	return nil
}

// trimTail drops trailing whitespace and comma separators from the last
// fragment.
func trimTail(b []byte) []byte {
	end := len(b)
	for end > 0 && (b[end-1] <= ' ' || b[end-1] == ',') {
		end--
	}
	return b[:end]
}
