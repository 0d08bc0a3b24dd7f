package dgshdetect

import (
	"bytes"
	"fmt"

	"github.com/dgsh-tools/dgshdetect/internal/elffmt"
	"github.com/dgsh-tools/dgshdetect/internal/mmfile"
)

// Markers that identify a dgsh-aware program.
const (
	// NoteSectionName is the ELF section holding the identification note.
	NoteSectionName = ".note.ident"

	// NoteName is the originator name of the identification note. On disk
	// it is followed by a NUL terminator, and n_namesz counts that
	// terminator.
	NoteName = "DSpinellis/dgsh"

	// ScriptMagic marks a script whose interpreter line points at another
	// script, itself run through dgsh.
	ScriptMagic = "#!dgsh"

	// DefaultScanWindow is how many leading bytes of a script the marker
	// scan examines.
	DefaultScanWindow = 1024
)

// ScriptTokens are the wrapper invocations that mark a shebang line as
// dgsh-aware.
var ScriptTokens = []string{"dgsh-wrap", "--dgsh", "env dgsh"}

// Byte forms of the markers, captured once at init. The scanners read only
// these.
var (
	shebang      = []byte("#!")
	scriptMagic  = []byte(ScriptMagic)
	noteSection  = []byte(NoteSectionName)
	noteName     = append([]byte(NoteName), 0)
	scriptTokens = func() [][]byte {
		t := make([][]byte, len(ScriptTokens))
		for i, s := range ScriptTokens {
			t[i] = []byte(s)
		}
		return t
	}()
)

// Kind names the scanner a buffer is routed to.
type Kind int

const (
	// KindUnknown covers buffers that are neither scripts nor ELF images.
	KindUnknown Kind = iota
	// KindScript covers buffers starting with an interpreter line.
	KindScript
	// KindELF covers buffers starting with the ELF signature.
	KindELF
)

// String returns a short lowercase label for the kind.
func (k Kind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindELF:
		return "elf"
	default:
		return "unknown"
	}
}

// DetectKind routes a buffer by its leading bytes. A "#!" prefix wins over
// everything else; the ELF signature is checked second.
func DetectKind(b []byte) Kind {
	switch {
	case bytes.HasPrefix(b, shebang):
		return KindScript
	case bytes.HasPrefix(b, elffmt.Magic):
		return KindELF
	default:
		return KindUnknown
	}
}

// Detector classifies candidate executables. The zero value is ready to
// use and applies DefaultScanWindow.
type Detector struct {
	// ScanWindow caps how many leading bytes the script scanner examines.
	// Zero or less selects DefaultScanWindow.
	ScanWindow int
}

// New constructs a Detector with the given options applied.
func New(opts ...Option) *Detector {
	d := &Detector{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d Detector) window() int {
	if d.ScanWindow <= 0 {
		return DefaultScanWindow
	}
	return d.ScanWindow
}

// Classify reports whether the file at path is dgsh-compatible. The file's
// bytes are inspected in place; it is never executed. The error return
// covers I/O failures only (missing, unreadable, empty, or unmappable
// files); a well-read file that carries no marker is (false, nil).
func (d Detector) Classify(path string) (bool, error) {
	data, release, err := acquire(path)
	if err != nil {
		return false, err
	}
	defer release()
	return d.ClassifyBytes(data), nil
}

// ClassifyBytes classifies an in-memory candidate. It never panics,
// whatever the bytes contain.
func (d Detector) ClassifyBytes(b []byte) bool {
	switch DetectKind(b) {
	case KindScript:
		return scriptMarkerPresent(b, d.window())
	case KindELF:
		return IsELFMarkerPresent(b)
	default:
		return false
	}
}

// Classify reports whether the file at path is dgsh-compatible using a
// zero-value Detector.
func Classify(path string) (bool, error) {
	return Detector{}.Classify(path)
}

// acquire maps the candidate and rejects files with nothing to inspect.
func acquire(path string) ([]byte, func() error, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, nil, err
	}
	if len(data) == 0 {
		_ = release()
		return nil, nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return data, release, nil
}
