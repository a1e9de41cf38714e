package filebuf

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	werrors "github.com/wondertools/wswantool/errors"
)

func TestFrom(t *testing.T) {
	r, err := From("some/path")
	if err != nil {
		t.Fatalf("From(string) failed: %v", err)
	}
	if f, ok := r.(FileRef); !ok || f.Path != "some/path" {
		t.Errorf("From(string) = %#v, want FileRef", r)
	}

	r, err = From([]byte{1, 2, 3})
	if err != nil {
		t.Fatalf("From([]byte) failed: %v", err)
	}
	if d, ok := r.(DataRef); !ok || !bytes.Equal(d.Bytes, []byte{1, 2, 3}) {
		t.Errorf("From([]byte) = %#v, want DataRef", r)
	}

	if _, err := From(42); err == nil {
		t.Fatal("expected error for int input")
	} else {
		var e *werrors.Error
		if !errors.As(err, &e) || e.Kind != werrors.KindUnsupportedInput {
			t.Errorf("got %v, want unsupported_input_type", err)
		}
	}
}

func TestAsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.bin")
	if err := os.WriteFile(path, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := AsData(FileRef{Path: path})
	if err != nil {
		t.Fatalf("AsData(FileRef) failed: %v", err)
	}
	if string(d.Bytes) != "payload" {
		t.Errorf("AsData read %q, want %q", d.Bytes, "payload")
	}

	// DataRef passes through untouched.
	d2, err := AsData(DataRef{Bytes: []byte("x")})
	if err != nil || string(d2.Bytes) != "x" {
		t.Errorf("AsData(DataRef) = %q, %v", d2.Bytes, err)
	}

	if _, err := AsData(FileRef{Path: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAsFile(t *testing.T) {
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	defer ctx.Close()

	f, err := AsFile(ctx, DataRef{Bytes: []byte("materialized")})
	if err != nil {
		t.Fatalf("AsFile(DataRef) failed: %v", err)
	}
	got, err := os.ReadFile(f.Path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(got) != "materialized" {
		t.Errorf("temp file holds %q, want %q", got, "materialized")
	}

	// FileRef passes through without touching the context.
	f2, err := AsFile(ctx, FileRef{Path: "fixed/path"})
	if err != nil || f2.Path != "fixed/path" {
		t.Errorf("AsFile(FileRef) = %q, %v", f2.Path, err)
	}
}

func TestContext_Close(t *testing.T) {
	ctx, err := NewContext()
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	dir := ctx.Dir()

	f, err := AsFile(ctx, DataRef{Bytes: []byte("temp")})
	if err != nil {
		t.Fatalf("AsFile failed: %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := os.Stat(f.Path); !os.IsNotExist(err) {
		t.Error("temp file survived Close")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("context dir survived Close")
	}

	// A closed context refuses new allocations; Close is idempotent.
	if _, err := ctx.TempFile("x"); err == nil {
		t.Error("TempFile on closed context must fail")
	}
	if err := ctx.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
