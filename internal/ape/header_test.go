package ape

import (
	"bytes"
	"testing"
)

func TestRecord_MarshalBinary(t *testing.T) {
	r := Record{Version: 2000, Length: 0x40, ItemCount: 2, Flags: FlagHasHeader | FlagIsHeader}
	b, err := r.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []byte{
		'A', 'P', 'E', 'T', 'A', 'G', 'E', 'X',
		0xD0, 0x07, 0x00, 0x00, // version 2000
		0x40, 0x00, 0x00, 0x00, // length
		0x02, 0x00, 0x00, 0x00, // items
		0x00, 0x00, 0x00, 0xA0, // flags: bit31 | bit29
		0, 0, 0, 0, 0, 0, 0, 0, // reserved
	}
	if !bytes.Equal(b, want) {
		t.Errorf("MarshalBinary =\n%v\nwant\n%v", b, want)
	}

	got, ok := parseRecord(b)
	if !ok {
		t.Fatal("parseRecord rejected a marshaled record")
	}
	if got != r {
		t.Errorf("parseRecord = %+v, want %+v", got, r)
	}
}

func TestParseRecord_Rejects(t *testing.T) {
	valid, _ := Record{Version: 2000, Length: 32}.MarshalBinary()

	badMagic := bytes.Clone(valid)
	copy(badMagic, "APETAGEY")

	shortLength := bytes.Clone(valid)
	shortLength[12] = 31

	tests := []struct {
		name string
		b    []byte
	}{
		{"bad magic", badMagic},
		{"length below record size", shortLength},
		{"truncated", valid[:20]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := parseRecord(tt.b); ok {
				t.Error("parseRecord accepted an invalid record")
			}
		})
	}
}

func TestFlags(t *testing.T) {
	if FlagHasHeader != 1<<31 || FlagHasNoFooter != 1<<30 || FlagIsHeader != 1<<29 {
		t.Fatal("flag bit positions changed")
	}

	f := FlagHasHeader | FlagIsHeader
	if !f.Has(FlagHasHeader) || !f.Has(FlagIsHeader) || f.Has(FlagHasNoFooter) {
		t.Errorf("Has reports wrong membership for %s", f)
	}
	if f.Has(FlagHasHeader | FlagHasNoFooter) {
		t.Error("Has should require every flag")
	}

	tests := []struct {
		flags Flags
		want  string
	}{
		{0, "0"},
		{FlagHasHeader, "HAS_HEADER"},
		{FlagHasHeader | FlagHasNoFooter | FlagIsHeader, "HAS_HEADER|HAS_NO_FOOTER|IS_HEADER"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("Flags(%d).String() = %q, want %q", uint32(tt.flags), got, tt.want)
		}
	}
}

func TestHeaderFooterRecords(t *testing.T) {
	h := headerRecord(100, 3)
	f := footerRecord(100, 3)

	if h.Length != 132 || f.Length != 132 {
		t.Errorf("Length = %d/%d, want 132", h.Length, f.Length)
	}
	if !h.Flags.Has(FlagHasHeader | FlagIsHeader) {
		t.Errorf("header flags = %s", h.Flags)
	}
	if f.Flags.Has(FlagIsHeader) || f.Flags.Has(FlagHasNoFooter) {
		t.Errorf("footer flags = %s", f.Flags)
	}
	if h.DataLength() != 100 {
		t.Errorf("DataLength = %d, want 100", h.DataLength())
	}
}
