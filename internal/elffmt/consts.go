// Package elffmt houses low-level decoders for the ELF object file format.
// Only the structures needed to locate and read a named note section are
// covered: the file header's section table fields, section header entries,
// and the fixed note record header. All multi-byte fields are decoded
// little-endian, and every decode validates its bytes against the supplied
// buffer before reading, so arbitrary or hostile images can never cause an
// out-of-range access.
package elffmt

// Magic is the four-byte signature at the start of every ELF object.
// Layout:
//
//	0x00  0x7F 'E' 'L' 'F'
var Magic = []byte{0x7f, 'E', 'L', 'F'}

// Class selects between the ELF32 and ELF64 structure layouts. It is stored
// in the identification byte at ClassOffset and is the only identification
// field beyond the magic that the decoders interpret.
type Class byte

const (
	// Class32 marks an object laid out with 32-bit headers.
	Class32 Class = 1
	// Class64 marks an object laid out with 64-bit headers.
	Class64 Class = 2
)

const (
	// MagicSize is the length of the leading signature.
	MagicSize = 4

	// ClassOffset is where the class byte lives inside the identification
	// block shared by both layouts.
	ClassOffset = 0x04
)

// ELF32 file header fields.
const (
	Ehdr32Size           = 0x34 // 52 bytes
	Ehdr32ShoffOffset    = 0x20 // uint32, file offset of the section header table
	Ehdr32ShnumOffset    = 0x30 // uint16, number of section header entries
	Ehdr32ShstrndxOffset = 0x32 // uint16, section index of the name string table
)

// ELF64 file header fields.
const (
	Ehdr64Size           = 0x40 // 64 bytes
	Ehdr64ShoffOffset    = 0x28 // uint64, file offset of the section header table
	Ehdr64ShnumOffset    = 0x3C // uint16, number of section header entries
	Ehdr64ShstrndxOffset = 0x3E // uint16, section index of the name string table
)

// Section header entry layouts. Strides are the architectural entry sizes;
// the e_shentsize field is not consulted.
const (
	Shdr32Size       = 40
	Shdr32NameOffset = 0x00 // uint32, offset of the name in the string table
	Shdr32OffOffset  = 0x10 // uint32, file offset of the section contents
	Shdr32SizeOffset = 0x14 // uint32, size of the section contents

	Shdr64Size       = 64
	Shdr64NameOffset = 0x00 // uint32, offset of the name in the string table
	Shdr64OffOffset  = 0x18 // uint64, file offset of the section contents
	Shdr64SizeOffset = 0x20 // uint64, size of the section contents
)

// Note record header fields. Both classes use three 32-bit words; the name
// bytes follow immediately after the header.
const (
	NoteHeaderSize     = 12
	NoteNameSizeOffset = 0x00 // uint32, length of the name including its NUL
	NoteDescSizeOffset = 0x04 // uint32, length of the descriptor
	NoteTypeOffset     = 0x08 // uint32, vendor-specific type tag
)
