package elffmt

import (
	"encoding/binary"
	"errors"
	"testing"
)

func noteRecord(nameSize, descSize, typ uint32, rest []byte) []byte {
	b := make([]byte, NoteHeaderSize)
	binary.LittleEndian.PutUint32(b[NoteNameSizeOffset:], nameSize)
	binary.LittleEndian.PutUint32(b[NoteDescSizeOffset:], descSize)
	binary.LittleEndian.PutUint32(b[NoteTypeOffset:], typ)
	return append(b, rest...)
}

func TestParseNoteHeader(t *testing.T) {
	b := noteRecord(16, 4, 1, []byte("DSpinellis/dgsh\x00"))

	hdr, err := ParseNoteHeader(b, 0)
	if err != nil {
		t.Fatalf("ParseNoteHeader: %v", err)
	}
	want := NoteHeader{NameSize: 16, DescSize: 4, Type: 1}
	if hdr != want {
		t.Errorf("header = %+v, want %+v", hdr, want)
	}
}

func TestParseNoteHeaderAtOffset(t *testing.T) {
	pad := make([]byte, 3)
	b := append(pad, noteRecord(5, 0, 2, nil)...)

	hdr, err := ParseNoteHeader(b, len(pad))
	if err != nil {
		t.Fatalf("ParseNoteHeader: %v", err)
	}
	if hdr.NameSize != 5 || hdr.DescSize != 0 || hdr.Type != 2 {
		t.Errorf("header = %+v", hdr)
	}
}

func TestParseNoteHeaderTruncated(t *testing.T) {
	b := noteRecord(16, 0, 1, nil)

	if _, err := ParseNoteHeader(b[:NoteHeaderSize-1], 0); !errors.Is(err, ErrTruncated) {
		t.Errorf("short buffer: err = %v, want ErrTruncated", err)
	}
	if _, err := ParseNoteHeader(b, 1); !errors.Is(err, ErrTruncated) {
		t.Errorf("header straddling end: err = %v, want ErrTruncated", err)
	}
	if _, err := ParseNoteHeader(b, -1); !errors.Is(err, ErrTruncated) {
		t.Errorf("negative offset: err = %v, want ErrTruncated", err)
	}
	if _, err := ParseNoteHeader(nil, 0); !errors.Is(err, ErrTruncated) {
		t.Errorf("nil buffer: err = %v, want ErrTruncated", err)
	}
}
