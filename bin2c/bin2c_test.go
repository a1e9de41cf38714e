package bin2c

import (
	"bytes"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	src, hdr, err := Convert("splash_img", []byte{0x00, 0xFF, 0x10}, Options{
		Align:        16,
		AddressSpace: "__far",
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	for _, want := range []string{
		"__attribute__((aligned(16)))",
		"const uint8_t __far splash_img[3] = {",
		"0x00, 0xff, 0x10,",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("source missing %q:\n%s", want, src)
		}
	}

	for _, want := range []string{
		"#pragma once",
		"#define splash_img_size 3",
		"extern const uint8_t __far splash_img[3];",
	} {
		if !strings.Contains(string(hdr), want) {
			t.Errorf("header missing %q:\n%s", want, hdr)
		}
	}
}

func TestConvert_NoOptions(t *testing.T) {
	src, hdr, err := Convert("blob", []byte{1}, Options{})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if strings.Contains(string(src), "aligned") {
		t.Error("unexpected alignment attribute")
	}
	if !strings.Contains(string(hdr), "extern const uint8_t blob[1];") {
		t.Errorf("unexpected header:\n%s", hdr)
	}
}

func TestConvert_LineWrapping(t *testing.T) {
	data := make([]byte, bytesPerLine+1)
	src, _, err := Convert("wide", data, Options{})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	// One full line of values plus the spill byte.
	if got := strings.Count(string(src), "\n\t0x"); got != 2 {
		t.Errorf("got %d value lines, want 2:\n%s", got, src)
	}
}

func TestConvert_BadName(t *testing.T) {
	if _, _, err := Convert("9data", nil, Options{}); err == nil {
		t.Error("expected error for identifier starting with a digit")
	}
	if _, _, err := Convert("", nil, Options{}); err == nil {
		t.Error("expected error for empty identifier")
	}
}

func TestConvert_Deterministic(t *testing.T) {
	data := []byte{9, 8, 7, 6}
	a, _, err := Convert("d", data, Options{Align: 2})
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Convert("d", data, Options{Align: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("output differs across identical calls")
	}
}

func TestSymbolName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"splash.bin", "splash_bin"},
		{"8x8font.dat", "_8x8font_dat"},
		{"", "_"},
		{"tiles", "tiles"},
	}
	for _, tt := range tests {
		if got := SymbolName(tt.in); got != tt.want {
			t.Errorf("SymbolName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
