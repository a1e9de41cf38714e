package layout

import (
	"errors"
	"reflect"
	"testing"

	werrors "github.com/wondertools/wswantool/errors"
)

func kindOf(t *testing.T, err error) werrors.Kind {
	t.Helper()
	var e *werrors.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %T: %v", err, err)
	}
	return e.Kind
}

func TestNormalize_Validation(t *testing.T) {
	tests := []struct {
		name    string
		regions []Region
		kind    werrors.Kind
	}{
		{
			name:    "bad identifier leading digit",
			regions: []Region{{Name: "9buf", Start: 0x1000, End: 0x1FFF}},
			kind:    werrors.KindInvalidIdentifier,
		},
		{
			name:    "bad identifier punctuation",
			regions: []Region{{Name: "bu-f", Start: 0x1000, End: 0x1FFF}},
			kind:    werrors.KindInvalidIdentifier,
		},
		{
			name:    "empty identifier",
			regions: []Region{{Name: "", Start: 0x1000, End: 0x1FFF}},
			kind:    werrors.KindInvalidIdentifier,
		},
		{
			name:    "end before start",
			regions: []Region{{Name: "buf", Start: 0x2000, End: 0x1FFF}},
			kind:    werrors.KindNegativeSize,
		},
		{
			name:    "region in ROM area",
			regions: []Region{{Name: "buf", Start: 0x20000, End: 0x20FFF}},
			kind:    werrors.KindRegionInRomArea,
		},
		{
			name:    "segment crossing",
			regions: []Region{{Name: "buf", Start: 0x0FFF0, End: 0x10010}},
			kind:    werrors.KindSegmentBoundary,
		},
		{
			name: "overlap",
			regions: []Region{
				{Name: "c_heap", Start: 0x10000, End: 0x10FFF},
				{Name: "buf", Start: 0x10800, End: 0x11FFF},
			},
			kind: werrors.KindOverlap,
		},
		{
			name:    "missing stack and heap",
			regions: []Region{{Name: "buf", Start: 0x1000, End: 0x1FFF}},
			kind:    werrors.KindMissingStack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.regions, ModelSmall)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := kindOf(t, err); got != tt.kind {
				t.Errorf("got kind %s, want %s", got, tt.kind)
			}
		})
	}
}

func TestNormalize_MinimalRegion(t *testing.T) {
	n, err := Normalize([]Region{
		{Name: "flag", Start: 0x0100, End: 0x0100},
		{Name: "stack", Start: 0x0200, End: 0x02FF},
	}, ModelSmall)
	if err != nil {
		t.Fatalf("one-byte region rejected: %v", err)
	}
	if len(n.IRAM) != 1 || n.IRAM[0].Size() != 1 {
		t.Errorf("expected a single 1-byte IRAM region, got %+v", n.IRAM)
	}
}

func TestNormalize_SegmentEdge(t *testing.T) {
	_, err := Normalize([]Region{
		{Name: "buf", Start: 0x0FFF0, End: 0x0FFFF},
		{Name: "stack", Start: 0x0100, End: 0x01FF},
	}, ModelSmall)
	if err != nil {
		t.Fatalf("segment-aligned region rejected: %v", err)
	}
}

func TestNormalize_StackOverlapExempt(t *testing.T) {
	// The stack may overlap anything, in either role.
	n, err := Normalize([]Region{
		{Name: "c_heap", Start: 0x10000, End: 0x1FFFF},
		{Name: "stack", Start: 0x1F000, End: 0x1FFFF},
	}, ModelSmall)
	if err != nil {
		t.Fatalf("stack overlap rejected: %v", err)
	}
	if len(n.SRAM) != 1 || n.SRAM[0].Name != "c_heap" {
		t.Errorf("expected only c_heap banded, got %+v", n.SRAM)
	}
}

func TestNormalize_Registers(t *testing.T) {
	n, err := Normalize([]Region{
		{Name: "c_heap", Start: 0x10000, End: 0x103FF},
	}, ModelSmall)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if n.DS != 0x1000 {
		t.Errorf("DS = %#x, want 0x1000", n.DS)
	}
	if n.SS != 0x1000 {
		t.Errorf("SS = %#x, want 0x1000", n.SS)
	}
	if n.SP != 0x0400 {
		t.Errorf("SP = %#x, want 0x0400", n.SP)
	}
}

func TestNormalize_StackTopFromStack(t *testing.T) {
	n, err := Normalize([]Region{
		{Name: "c_heap", Start: 0x10000, End: 0x1EFFF},
		{Name: "stack", Start: 0x1F000, End: 0x1FFFF},
	}, ModelMedium)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	// Stack top 0x20000: selector 0x2000, offset 0.
	if n.SS != 0x2000 || n.SP != 0 {
		t.Errorf("SS:SP = %#x:%#x, want 0x2000:0", n.SS, n.SP)
	}
	if n.DS != 0x1000 {
		t.Errorf("DS = %#x, want 0x1000", n.DS)
	}
}

func TestNormalize_NoHeapNoDS(t *testing.T) {
	n, err := Normalize([]Region{
		{Name: "stack", Start: 0x0E00, End: 0x0FFF},
	}, ModelSmall)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if n.DS != 0 {
		t.Errorf("DS = %#x, want 0 without c_heap", n.DS)
	}
	if n.SS != 0 || n.SP != 0x1000 {
		t.Errorf("SS:SP = %#x:%#x, want 0:0x1000", n.SS, n.SP)
	}
}

func TestNormalize_Partition(t *testing.T) {
	n, err := Normalize([]Region{
		{Name: "high", Start: 0x10000, End: 0x100FF},
		{Name: "low", Start: 0x0FFFF, End: 0x0FFFF},
		{Name: "lower", Start: 0x0100, End: 0x01FF},
		{Name: "stack", Start: 0x0E00, End: 0x0FFF},
	}, ModelSmall)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	gotIRAM := []string{}
	for _, r := range n.IRAM {
		gotIRAM = append(gotIRAM, r.Name)
	}
	if !reflect.DeepEqual(gotIRAM, []string{"lower", "low"}) {
		t.Errorf("IRAM order = %v, want [lower low]", gotIRAM)
	}
	if len(n.SRAM) != 1 || n.SRAM[0].Name != "high" {
		t.Errorf("SRAM = %+v, want only high", n.SRAM)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	regions := []Region{
		{Name: "c_heap", Start: 0x10000, End: 0x1EFFF},
		{Name: "vbuf", Start: 0x0800, End: 0x0FFF},
		{Name: "stack", Start: 0x1F000, End: 0x1FFFF},
	}
	a, err := Normalize(regions, ModelLarge)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	b, err := Normalize(regions, ModelLarge)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Normalize is not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestNormalize_UnknownModel(t *testing.T) {
	_, err := Normalize([]Region{
		{Name: "stack", Start: 0x0E00, End: 0x0FFF},
	}, Model("tiny"))
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	if got := kindOf(t, err); got != werrors.KindInvalidInput {
		t.Errorf("got kind %s, want %s", got, werrors.KindInvalidInput)
	}
}

func TestModel_FarText(t *testing.T) {
	far := map[Model]bool{
		ModelSmall:   false,
		ModelCompact: false,
		ModelMedium:  true,
		ModelLarge:   true,
		ModelHuge:    true,
	}
	for m, want := range far {
		if m.FarText() != want {
			t.Errorf("%s.FarText() = %v, want %v", m, m.FarText(), want)
		}
	}
}
