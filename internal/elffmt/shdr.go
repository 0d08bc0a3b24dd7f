package elffmt

import (
	"bytes"
	"fmt"

	"github.com/dgsh-tools/dgshdetect/internal/buf"
)

// SectionHeader carries the section header fields needed to name a section
// and find its contents. As with FileHeader, the 32-bit layout is widened to
// the 64-bit one.
type SectionHeader struct {
	NameOffset uint32
	Offset     uint64
	Size       uint64
}

// ParseSectionHeader decodes entry i of the section header table described
// by hdr.
//
// ELF32 entry layout (fields used):
//
//	0x00  sh_name   uint32
//	0x10  sh_offset uint32
//	0x14  sh_size   uint32
//
// ELF64 entry layout (fields used):
//
//	0x00  sh_name   uint32
//	0x18  sh_offset uint64
//	0x20  sh_size   uint64
//
// Returns ErrOutOfBounds when the entry does not lie fully inside b.
func ParseSectionHeader(b []byte, hdr FileHeader, i int) (SectionHeader, error) {
	tableOff, ok := buf.IntFromU64(hdr.SectionHeaderOffset)
	if !ok || i < 0 {
		return SectionHeader{}, fmt.Errorf("elffmt: section table at %#x: %w", hdr.SectionHeaderOffset, ErrOutOfBounds)
	}
	entSize := hdr.Class.SectionHeaderSize()
	end, err := buf.CheckListBounds(len(b), tableOff, i+1, entSize)
	if err != nil {
		return SectionHeader{}, fmt.Errorf("elffmt: section header %d: %w", i, ErrOutOfBounds)
	}
	ent := b[end-entSize : end]

	if hdr.Class == Class32 {
		return SectionHeader{
			NameOffset: buf.U32LE(ent[Shdr32NameOffset:]),
			Offset:     uint64(buf.U32LE(ent[Shdr32OffOffset:])),
			Size:       uint64(buf.U32LE(ent[Shdr32SizeOffset:])),
		}, nil
	}
	return SectionHeader{
		NameOffset: buf.U32LE(ent[Shdr64NameOffset:]),
		Offset:     buf.U64LE(ent[Shdr64OffOffset:]),
		Size:       buf.U64LE(ent[Shdr64SizeOffset:]),
	}, nil
}

// SectionName extracts the NUL-terminated name at off inside the string
// table. Returns ok = false when off is past the table or the terminator is
// missing.
func SectionName(strtab []byte, off uint32) ([]byte, bool) {
	start, ok := buf.IntFromU64(uint64(off))
	if !ok || start >= len(strtab) {
		return nil, false
	}
	end := bytes.IndexByte(strtab[start:], 0)
	if end < 0 {
		return nil, false
	}
	return strtab[start : start+end], true
}
