package dgshdetect

import (
	"bytes"

	"github.com/dgsh-tools/dgshdetect/internal/buf"
	"github.com/dgsh-tools/dgshdetect/internal/elffmt"
)

// IsELFMarkerPresent reports whether b is an ELF image carrying a section
// named NoteSectionName whose first note record is named NoteName. Every
// structural inconsistency in the image yields false, never a panic or an
// out-of-range read.
func IsELFMarkerPresent(b []byte) bool {
	hdr, err := elffmt.ParseFileHeader(b)
	if err != nil {
		return false
	}
	tableOff, ok := buf.IntFromU64(hdr.SectionHeaderOffset)
	if !ok {
		return false
	}
	count, ok := buf.IntFromU64(uint64(hdr.SectionCount))
	if !ok {
		return false
	}
	entSize := hdr.Class.SectionHeaderSize()
	if _, err := buf.CheckListBounds(len(b), tableOff, count, entSize); err != nil {
		return false
	}
	if hdr.StringTableIndex >= hdr.SectionCount {
		return false
	}
	strtab, ok := stringTable(b, hdr)
	if !ok {
		return false
	}

	for i := 0; i < count; i++ {
		sh, err := elffmt.ParseSectionHeader(b, hdr, i)
		if err != nil {
			return false
		}
		name, ok := elffmt.SectionName(strtab, sh.NameOffset)
		if !ok || !bytes.Equal(name, noteSection) {
			continue
		}
		// Only the first record of each matching section is examined,
		// but a miss does not stop the walk over later sections.
		if noteMatches(b, sh) {
			return true
		}
	}
	return false
}

// stringTable slices out the section name string table named by the file
// header.
func stringTable(b []byte, hdr elffmt.FileHeader) ([]byte, bool) {
	sh, err := elffmt.ParseSectionHeader(b, hdr, int(hdr.StringTableIndex))
	if err != nil {
		return nil, false
	}
	off, ok := buf.IntFromU64(sh.Offset)
	if !ok {
		return nil, false
	}
	size, ok := buf.IntFromU64(sh.Size)
	if !ok {
		return nil, false
	}
	return buf.Slice(b, off, size)
}

// noteMatches reports whether the first note record of the section is the
// dgsh identification note: n_namesz equal to len(NoteName)+1 and the name
// bytes equal to NoteName plus its NUL terminator.
func noteMatches(b []byte, sh elffmt.SectionHeader) bool {
	off, ok := buf.IntFromU64(sh.Offset)
	if !ok {
		return false
	}
	hdr, err := elffmt.ParseNoteHeader(b, off)
	if err != nil {
		return false
	}
	if hdr.NameSize != uint32(len(noteName)) {
		return false
	}
	nameOff, ok := buf.AddOverflowSafe(off, elffmt.NoteHeaderSize)
	if !ok {
		return false
	}
	name, ok := buf.Slice(b, nameOff, len(noteName))
	if !ok {
		return false
	}
	return bytes.Equal(name, noteName)
}
