// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors

package lz77

// Decompress decompresses src into a freshly allocated buffer of capacity
// dstCap, returning the slice actually written (its length may be less
// than dstCap if the token stream ends early). Returns a sentinel error
// (ErrInputOverrun, ErrOutputOverrun, ErrLookBehindUnderrun) on any
// malformed input — the idiomatic rendering of spec §4.3's "returns 0 on
// any malformed input".
func Decompress(src []byte, dstCap int) ([]byte, error) {
	dst := make([]byte, dstCap)
	n, err := DecompressInto(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecompressInto decompresses src into dst (bounded by len(dst)) and
// returns the number of bytes written. Callers that decompress many
// blocks (the unpacker driver) can reuse dst across calls instead of
// allocating per block.
func DecompressInto(dst, src []byte) (int, error) {
	inPos := 0
	outPos := 0
	first := true

	for inPos < len(src) {
		c := src[inPos]
		inPos++

		// The very first control byte is always masked with &31 and
		// decoded as a literal run, regardless of its value — only
		// later control bytes use the c<32 branch test (spec's
		// first-token convention).
		if first {
			first = false
			c &= 0x1F
		}

		if c < 32 {
			n := int(c) + 1
			if inPos+n > len(src) {
				return 0, ErrInputOverrun
			}
			if outPos+n > len(dst) {
				return 0, ErrOutputOverrun
			}
			copy(dst[outPos:outPos+n], src[inPos:inPos+n])
			inPos += n
			outPos += n
			continue
		}

		lenCode := int(c >> 5)
		distHi := int(c & 0x1F)

		var length int
		if lenCode == 7 {
			if inPos >= len(src) {
				return 0, ErrInputOverrun
			}
			extra := int(src[inPos])
			inPos++
			length = extra + 9
		} else {
			length = lenCode + 2
		}

		if inPos >= len(src) {
			return 0, ErrInputOverrun
		}
		distLo := int(src[inPos])
		inPos++

		distance := (distHi<<8 | distLo) + 1

		if distance > outPos {
			return 0, ErrLookBehindUnderrun
		}
		if outPos+length > len(dst) {
			return 0, ErrOutputOverrun
		}

		copyBackRef(dst, outPos, distance, length)
		outPos += length
	}

	return outPos, nil
}
