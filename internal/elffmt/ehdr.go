package elffmt

import (
	"bytes"
	"fmt"

	"github.com/dgsh-tools/dgshdetect/internal/buf"
)

// FileHeader carries the file header fields needed to walk the section
// header table. Offsets and counts are widened to the 64-bit layout so both
// classes share one shape.
type FileHeader struct {
	Class               Class
	SectionHeaderOffset uint64
	SectionCount        uint32
	StringTableIndex    uint32
}

// SectionHeaderSize returns the stride of one section header entry for the
// class.
func (c Class) SectionHeaderSize() int {
	if c == Class32 {
		return Shdr32Size
	}
	return Shdr64Size
}

// ParseFileHeader decodes the leading file header of an ELF image.
//
// ELF32 layout (fields used):
//
//	0x00  magic 0x7F 'E' 'L' 'F'
//	0x04  class byte (1)
//	0x20  e_shoff   uint32
//	0x30  e_shnum   uint16
//	0x32  e_shstrndx uint16
//
// ELF64 layout (fields used):
//
//	0x00  magic 0x7F 'E' 'L' 'F'
//	0x04  class byte (2)
//	0x28  e_shoff   uint64
//	0x3C  e_shnum   uint16
//	0x3E  e_shstrndx uint16
//
// Returns ErrBadMagic when the signature is absent, ErrBadClass for any
// class byte other than 1 or 2, and ErrTruncated when the buffer ends
// before the header does.
func ParseFileHeader(b []byte) (FileHeader, error) {
	if len(b) < ClassOffset+1 {
		return FileHeader{}, fmt.Errorf("elffmt: %d byte buffer: %w", len(b), ErrTruncated)
	}
	if !bytes.Equal(b[:MagicSize], Magic) {
		return FileHeader{}, fmt.Errorf("elffmt: got % x: %w", b[:MagicSize], ErrBadMagic)
	}

	switch Class(b[ClassOffset]) {
	case Class32:
		if len(b) < Ehdr32Size {
			return FileHeader{}, fmt.Errorf("elffmt: %d bytes for ELF32 header: %w", len(b), ErrTruncated)
		}
		return FileHeader{
			Class:               Class32,
			SectionHeaderOffset: uint64(buf.U32LE(b[Ehdr32ShoffOffset:])),
			SectionCount:        uint32(buf.U16LE(b[Ehdr32ShnumOffset:])),
			StringTableIndex:    uint32(buf.U16LE(b[Ehdr32ShstrndxOffset:])),
		}, nil
	case Class64:
		if len(b) < Ehdr64Size {
			return FileHeader{}, fmt.Errorf("elffmt: %d bytes for ELF64 header: %w", len(b), ErrTruncated)
		}
		return FileHeader{
			Class:               Class64,
			SectionHeaderOffset: buf.U64LE(b[Ehdr64ShoffOffset:]),
			SectionCount:        uint32(buf.U16LE(b[Ehdr64ShnumOffset:])),
			StringTableIndex:    uint32(buf.U16LE(b[Ehdr64ShstrndxOffset:])),
		}, nil
	default:
		return FileHeader{}, fmt.Errorf("elffmt: class %d: %w", b[ClassOffset], ErrBadClass)
	}
}
