package dgshdetect

import "bytes"

// IsScriptMarkerPresent reports whether a dgsh marker appears in the leading
// DefaultScanWindow bytes of a script: a wrapper token on the interpreter
// line, or ScriptMagic at the start of the second line.
func IsScriptMarkerPresent(b []byte) bool {
	return scriptMarkerPresent(b, DefaultScanWindow)
}

// scriptMarkerPresent caps the scan at max leading bytes, then applies the
// first-line token checks and the second-line magic check in order.
func scriptMarkerPresent(b []byte, max int) bool {
	window := b
	if len(window) > max {
		window = window[:max]
	}
	for _, token := range scriptTokens {
		if tokenOnFirstLine(window, token) {
			return true
		}
	}
	return magicOnSecondLine(window)
}

// tokenOnFirstLine scans for token at positions before the first newline.
// A match must end strictly inside the window; a token whose last byte
// falls on the window's final byte is not found.
func tokenOnFirstLine(window, token []byte) bool {
	for p := 0; p+len(token) < len(window) && window[p] != '\n'; p++ {
		if bytes.Equal(window[p:p+len(token)], token) {
			return true
		}
	}
	return false
}

// magicOnSecondLine reports whether ScriptMagic starts the line after the
// first newline. The line must hold at least one byte beyond the magic,
// though only the magic bytes are compared.
func magicOnSecondLine(window []byte) bool {
	nl := bytes.IndexByte(window, '\n')
	if nl < 0 {
		return false
	}
	rest := window[nl+1:]
	if len(rest) < len(scriptMagic)+1 {
		return false
	}
	return bytes.Equal(rest[:len(scriptMagic)], scriptMagic)
}
