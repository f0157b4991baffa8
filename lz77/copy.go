// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors
// Adapted from: github.com/woozymasta/lzo (copy.go)

package lz77

// copyBackRef copies length bytes from dst[outPos-dist:outPos-dist+length]
// to dst[outPos:outPos+length]. Caller has already bounds-checked outPos+length
// against len(dst) and dist against outPos.
//
// When dist < length the source and destination regions overlap: LZ
// semantics require the copy to behave as if bytes were appended one at a
// time, so that just-written output becomes valid source for the rest of
// the match (this is what makes run-length expansions like "1000 zero
// bytes encoded in a handful of tokens" work). We get the same result
// without a byte-by-byte loop by seeding one full distance-sized chunk and
// then doubling.
func copyBackRef(dst []byte, outPos, dist, length int) {
	srcPos := outPos - dist

	if dist >= length {
		copy(dst[outPos:outPos+length], dst[srcPos:srcPos+length])
		return
	}

	copy(dst[outPos:outPos+dist], dst[srcPos:outPos])
	copied := dist

	for copied < length {
		n := copy(dst[outPos+copied:outPos+length], dst[outPos:outPos+copied])
		copied += n
	}
}
