package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestRecordSlotHelpers(t *testing.T) {
	rec := Record{FieldSuccess: map[string]any{"ok": true}}
	if !rec.HasSuccess() {
		t.Fatalf("expected success slot to be populated")
	}
	if rec.HasException() {
		t.Fatalf("expected no exception slot")
	}

	rec = Record{FieldException: map[string]any{"code": "SOME_ERROR"}}
	if rec.HasSuccess() {
		t.Fatalf("expected no success slot")
	}
	if !rec.HasException() {
		t.Fatalf("expected exception slot to be populated")
	}

	if !(Record{}).IsEmpty() {
		t.Fatalf("expected empty record to report empty")
	}
	if (Record{FieldSuccess: nil}).HasSuccess() {
		t.Fatalf("expected nil success payload to not count as populated")
	}
}

func TestRecordCloneIsIndependent(t *testing.T) {
	rec := Record{FieldSuccess: "a", 7: "b"}
	dup := rec.Clone()
	dup[FieldSuccess] = "mutated"
	if rec.Success() != "a" {
		t.Fatalf("expected source record untouched, got %v", rec.Success())
	}
	if dup[7] != "b" {
		t.Fatalf("expected clone to carry reserved slots")
	}
}

func TestCategoryValues(t *testing.T) {
	cases := []struct {
		cat   Category
		valid bool
		name  string
	}{
		{CategoryBinary, true, "binary"},
		{CategoryCompact, true, "compact"},
		{CategoryDenseCompact, true, "dense-compact"},
		{Category(0), false, "category(0)"},
		{Category(9), false, "category(9)"},
	}
	for _, tc := range cases {
		if tc.cat.Valid() != tc.valid {
			t.Fatalf("category %d validity mismatch", int(tc.cat))
		}
		if tc.cat.String() != tc.name {
			t.Fatalf("category %d string = %q, want %q", int(tc.cat), tc.cat.String(), tc.name)
		}
	}
	if DefaultCategory != CategoryBinary {
		t.Fatalf("expected binary default category")
	}
}

func TestHexDumpFormatsAndBounds(t *testing.T) {
	if got := HexDump([]byte{0x00, 0x01}, 100); got != "00 01" {
		t.Fatalf("expected %q, got %q", "00 01", got)
	}
	if got := HexDump(nil, 100); got != "" {
		t.Fatalf("expected empty dump for nil payload, got %q", got)
	}

	long := bytes.Repeat([]byte{0xab}, 150)
	got := HexDump(long, 0)
	// 100 pairs joined by 99 spaces.
	if len(got) != 100*2+99 {
		t.Fatalf("expected dump of 100 bytes, got len %d", len(got))
	}
}

func TestPassthroughEncode(t *testing.T) {
	var p Passthrough

	out, err := p.Encode("sendMessage", []byte{0x01, 0x02}, CategoryBinary)
	if err != nil {
		t.Fatalf("encode bytes failed: %v", err)
	}
	if !bytes.Equal(out, []byte{0x01, 0x02}) {
		t.Fatalf("expected bytes passed through, got %v", out)
	}

	out, err = p.Encode("sendMessage", "hello", CategoryCompact)
	if err != nil || string(out) != "hello" {
		t.Fatalf("expected string passthrough, got %q err %v", out, err)
	}

	if _, err := p.Encode("sendMessage", 42, CategoryBinary); !errors.Is(err, ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue, got %v", err)
	}
	if _, err := p.Encode("sendMessage", nil, Category(1)); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestPassthroughEncodeCopiesInput(t *testing.T) {
	var p Passthrough
	src := []byte{0x0a, 0x0b}
	out, err := p.Encode("m", src, CategoryBinary)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	src[0] = 0xff
	if out[0] != 0x0a {
		t.Fatalf("expected encoded payload to be independent of caller slice")
	}
}

func TestPassthroughDecode(t *testing.T) {
	var p Passthrough

	rec, err := p.Decode([]byte("payload"), CategoryBinary)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	got, ok := rec.Success().([]byte)
	if !ok || string(got) != "payload" {
		t.Fatalf("expected payload in success slot, got %v", rec.Success())
	}

	if _, err := p.Decode(nil, CategoryBinary); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}
	if _, err := p.Decode([]byte("x"), Category(8)); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestPassthroughRenamesAreIdentity(t *testing.T) {
	var p Passthrough
	rec := Record{FieldSuccess: "x", FieldException: "y"}
	if got := p.RenameFull(rec, true); got.Success() != "x" || got.Exception() != "y" {
		t.Fatalf("expected identity rename, got %v", got)
	}
	if got := p.RenameNamed("PingResponse", "value"); got != "value" {
		t.Fatalf("expected identity named rename, got %v", got)
	}
}
