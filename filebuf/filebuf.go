package filebuf

import (
	"os"

	"github.com/wondertools/wswantool/errors"
)

// Ref is an input artifact that exists either as a file on disk or as an
// in-memory byte buffer. The two concrete forms are FileRef and DataRef.
type Ref interface {
	ref()
}

// FileRef names an artifact on disk.
type FileRef struct {
	Path string
}

// DataRef holds an artifact in memory.
type DataRef struct {
	Bytes []byte
}

func (FileRef) ref() {}
func (DataRef) ref() {}

// From interprets a raw value as a Ref. Strings are paths, byte slices are
// buffers, and existing Refs pass through unchanged.
func From(v any) (Ref, error) {
	switch x := v.(type) {
	case FileRef:
		return x, nil
	case DataRef:
		return x, nil
	case string:
		return FileRef{Path: x}, nil
	case []byte:
		return DataRef{Bytes: x}, nil
	}
	return nil, errors.UnsupportedInput(v)
}

// AsData returns the referenced bytes, reading the file for a FileRef.
func AsData(r Ref) (DataRef, error) {
	switch x := r.(type) {
	case DataRef:
		return x, nil
	case FileRef:
		b, err := os.ReadFile(x.Path)
		if err != nil {
			return DataRef{}, errors.New(errors.PhaseConvert, errors.KindNotFound).
				Detail("read %s", x.Path).
				Cause(err).
				Build()
		}
		return DataRef{Bytes: b}, nil
	}
	return DataRef{}, errors.UnsupportedInput(r)
}

// AsFile returns a path holding the referenced bytes. A DataRef is
// materialized into a temp file owned by ctx; a FileRef passes through.
func AsFile(ctx *Context, r Ref) (FileRef, error) {
	switch x := r.(type) {
	case FileRef:
		return x, nil
	case DataRef:
		path, err := ctx.TempFile("buf")
		if err != nil {
			return FileRef{}, err
		}
		if err := os.WriteFile(path, x.Bytes, 0o644); err != nil {
			return FileRef{}, errors.New(errors.PhaseConvert, errors.KindInvalidInput).
				Detail("write %s", path).
				Cause(err).
				Build()
		}
		return FileRef{Path: path}, nil
	}
	return FileRef{}, errors.UnsupportedInput(r)
}
