// Package dgshdetect reports whether an executable was built to participate
// in dgsh pipelines.
//
// dgsh (the directed graph shell) runs programs whose input and output
// channels are negotiated at startup. Before wiring a node into a pipeline
// the shell must know whether the program speaks the negotiation protocol.
// That fact is recorded in the program itself: compiled tools carry an ELF
// note section named ".note.ident" whose first note is named
// "DSpinellis/dgsh", and interpreter scripts carry a recognizable marker
// near the top of the file.
//
// Classify answers the question from the file's bytes alone. The candidate
// is never executed, and no read ever leaves the mapped buffer, no matter
// how malformed the file is. Malformed ELF structure is not an error; it
// simply means the file is not compatible.
//
// Detector values hold no state between calls; a single Detector may be
// used from many goroutines at once.
package dgshdetect
