package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for count * entrySize calculations when walking on-disk tables.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// For positive numbers, check if result would overflow
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	// For negative numbers
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// IntFromU64 converts v to int, returning ok = false when v does not fit.
// File formats store offsets and sizes as unsigned fields wider than the
// values a slice can address; every such field passes through here before it
// is used as an index.
func IntFromU64(v uint64) (int, bool) {
	if v > uint64(math.MaxInt) {
		return 0, false
	}
	return int(v), true
}

// CheckListBounds validates that count entries of entrySize bytes fit in a
// buffer starting at offset. Returns the end offset if valid, or an error
// describing the specific failure (overflow or out of bounds).
//
// This is the recommended way to validate table structures before iterating:
//
//	endOff, err := buf.CheckListBounds(len(data), offset, int(count), entrySize)
//	if err != nil {
//	    return fmt.Errorf("table: %w", err)
//	}
//	// Safe to iterate from offset to endOff
func CheckListBounds(bufLen, offset, count, entrySize int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if entrySize < 0 {
		return 0, fmt.Errorf("negative entry size: %d", entrySize)
	}

	// Check count * entrySize for overflow
	totalSize, ok := MulOverflowSafe(count, entrySize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * entrySize=%d", count, entrySize)
	}

	// Check offset + totalSize for overflow
	endOffset, ok := AddOverflowSafe(offset, totalSize)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, totalSize)
	}

	// Check bounds
	if endOffset > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", endOffset, bufLen)
	}

	return endOffset, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
