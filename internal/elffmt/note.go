package elffmt

import (
	"fmt"

	"github.com/dgsh-tools/dgshdetect/internal/buf"
)

// NoteHeader is the fixed header that starts every record in a note
// section. The record's name bytes follow the header directly.
type NoteHeader struct {
	NameSize uint32
	DescSize uint32
	Type     uint32
}

// ParseNoteHeader decodes the note record header at off inside b.
//
// Layout:
//
//	0x00  n_namesz uint32
//	0x04  n_descsz uint32
//	0x08  n_type   uint32
//
// Returns ErrTruncated when fewer than NoteHeaderSize bytes remain at off.
func ParseNoteHeader(b []byte, off int) (NoteHeader, error) {
	hdr, ok := buf.Slice(b, off, NoteHeaderSize)
	if !ok {
		return NoteHeader{}, fmt.Errorf("elffmt: note header at %#x: %w", off, ErrTruncated)
	}
	return NoteHeader{
		NameSize: buf.U32LE(hdr[NoteNameSizeOffset:]),
		DescSize: buf.U32LE(hdr[NoteDescSizeOffset:]),
		Type:     buf.U32LE(hdr[NoteTypeOffset:]),
	}, nil
}
