// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors

package lz77

import "sync"

// Hash table and token-shape constants (spec data model §3 / §4.2).
const (
	hashBits       = 13                 // 8192-entry, 13-bit index
	hashSize       = 1 << hashBits      // fixed-size hash table
	hashMask       = hashSize - 1       //
	hashMultiplier = 2654435769         // golden-ratio Knuth multiplier
	maxDistance    = 8192               // sliding window size
	minMatchLen    = 3                  // shortest back-reference
	maxShortLen    = 8                  // largest length fitting the 2-byte form
	maxTokenLen    = 264                // largest length a single token can carry
	maxLiteralRun  = 32                 // largest literal run per token
	searchMargin   = 13                 // main-loop end-of-buffer guard
	extendMargin   = 4                  // match-extension end-of-buffer guard
)

// hashTablePool recycles the 8192-entry position table across Compress
// calls; the table is large enough (32KiB) that pooling it measurably cuts
// GC pressure on repeated small-block compression, the common case for the
// packer driver's 64KiB block loop.
var hashTablePool = sync.Pool{
	New: func() any {
		t := make([]int32, hashSize)
		return &t
	},
}

func acquireHashTable() []int32 {
	t := hashTablePool.Get().(*[]int32)
	table := *t
	clear(table)
	return table
}

func releaseHashTable(t []int32) {
	hashTablePool.Put(&t)
}

// hash3 maps a 24-bit little-endian sequence to a hash-table slot.
func hash3(seq uint32) uint32 {
	return ((seq * hashMultiplier) >> 19) & hashMask
}

// readSeq24 reads 3 bytes at pos as a little-endian value, explicitly
// (not via an unaligned pointer reinterpretation — see spec Design Notes).
func readSeq24(b []byte, pos int) uint32 {
	return uint32(b[pos]) | uint32(b[pos+1])<<8 | uint32(b[pos+2])<<16
}

// seq24Equal reports whether the 3-byte sequences at a and c are equal.
func seq24Equal(b []byte, a, c int) bool {
	return b[a] == b[c] && b[a+1] == b[c+1] && b[a+2] == b[c+2]
}

// probe hashes the 3-byte sequence at ip, inserts ip into the table
// (replacing whatever was there — only the most recent occurrence of a
// hash is ever kept), and reports whether the previous occupant is a
// usable match candidate: within the sliding window and byte-identical.
//
// Position 0 doubles as the "empty slot" sentinel and a legitimate match
// candidate: htab starts zeroed, and the very first hashed position is 2,
// so a slot that was never written compares ip's bytes against the real
// output bytes at position 0 — which are valid prior output, since the
// compressor's anchor starts at 0. A spurious hash collision with an
// untouched slot therefore either pans out as a genuine (if unlikely)
// match or fails the byte comparison and the search just moves on.
func probe(htab []int32, src []byte, ip int) (ref int, found bool) {
	seq := readSeq24(src, ip)
	h := hash3(seq)
	r := int(htab[h])
	htab[h] = int32(ip) //nolint:gosec // input sizes stay well within int32 range
	dist := ip - r
	if dist < maxDistance && seq24Equal(src, r, ip) {
		return r, true
	}
	return 0, false
}

// search advances ip from its starting position until a match candidate is
// found or ip reaches limit, inserting every probed position into htab
// along the way (spec §4.2 step a).
func search(htab []int32, src []byte, ip, limit int) (newIP, ref int, found bool) {
	for {
		r, ok := probe(htab, src, ip)
		if ok {
			return ip, r, true
		}
		ip++
		if ip >= limit {
			return ip, 0, false
		}
	}
}

// matchExtend reports how many bytes beyond the already-verified 3-byte
// prefix also match, bounded so the compressor never reads within
// extendMargin bytes of the end of src.
func matchExtend(src []byte, ref, ip, length int) int {
	limit := length - extendMargin
	k := 0
	for ip+3+k < limit && src[ref+3+k] == src[ip+3+k] {
		k++
	}
	return k
}

// seedHash inserts the 3-byte sequence at ip into htab without comparing
// it against anything (used to re-seed the table with the bytes just past
// a match, so the next search can find them immediately).
func seedHash(htab []int32, src []byte, ip int) {
	seq := readSeq24(src, ip)
	htab[hash3(seq)] = int32(ip) //nolint:gosec // input sizes stay well within int32 range
}
