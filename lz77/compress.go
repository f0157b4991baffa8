// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors

package lz77

// CompressOptions configures compression. Level 0 or 1 selects the fast,
// single-candidate greedy parse (spec §4.2); levels 2-9 add one-step lazy
// matching for a better ratio at extra CPU cost (see doc.go). The token
// format produced is identical regardless of level.
type CompressOptions struct {
	Level int
}

// DefaultCompressOptions returns options for the fast parse (level 1).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: 1}
}

// Compress compresses src into a new byte slice. opts may be nil (uses
// DefaultCompressOptions). Compress never fails: it is a pure function
// over src and never reads past src's bounds.
func Compress(src []byte, opts *CompressOptions) []byte {
	level := 1
	if opts != nil {
		level = opts.Level
	}
	return compress(src, level >= 2)
}

// compress implements spec §4.2's greedy byte-aligned LZ77 parse, with an
// optional one-step lazy-matching refinement (lazy=true).
func compress(src []byte, lazy bool) []byte {
	length := len(src)
	out := make([]byte, 0, length+length/maxLiteralRun+1)

	limit := length - searchMargin
	if limit <= 2 {
		// Too short for the main loop to ever run safely; spec §4.2
		// says this explicitly for inputs under 13 bytes, and the same
		// loop-skipping logic naturally covers every length up to 15.
		return appendLiteralRun(out, src)
	}

	htab := acquireHashTable()
	defer releaseHashTable(htab)

	anchor := 0
	ip := 2

	for ip < limit {
		newIP, ref, found := search(htab, src, ip, limit)
		ip = newIP
		if !found {
			break
		}

		if lazy && ip+1 < limit {
			if nRef, ok := probe(htab, src, ip+1); ok {
				curLen := matchExtend(src, ref, ip, length)
				nextLen := matchExtend(src, nRef, ip+1, length)
				if nextLen > curLen {
					// Take the longer match one byte later; the byte at
					// the old ip joins the pending literal run.
					ip++
					ref = nRef
				}
			}
		}

		if anchor < ip {
			out = appendLiteralRun(out, src[anchor:ip])
		}

		extra := matchExtend(src, ref, ip, length)
		total := extra + minMatchLen
		dist := ip - ref

		out = appendMatch(out, total, dist)

		ip += total
		anchor = ip
		if ip+2 < length {
			seedHash(htab, src, ip)
			ip++
		}
		if ip+2 < length {
			seedHash(htab, src, ip)
			ip++
		}
	}

	if anchor < length {
		out = appendLiteralRun(out, src[anchor:])
	}

	return out
}

// appendLiteralRun appends lit as one or more literal-run tokens (spec
// §4.2 "Token emission"): each token is a length byte in [0,31] followed
// by that many plus one raw bytes, so runs over 32 bytes become multiple
// tokens. A nil/empty lit appends nothing.
func appendLiteralRun(out, lit []byte) []byte {
	for len(lit) >= maxLiteralRun {
		out = append(out, byte(maxLiteralRun-1))
		out = append(out, lit[:maxLiteralRun]...)
		lit = lit[maxLiteralRun:]
	}
	if len(lit) > 0 {
		out = append(out, byte(len(lit)-1))
		out = append(out, lit...)
	}
	return out
}

// appendMatch appends one or more back-reference tokens totalling total
// bytes at distance dist, splitting matches longer than a single token can
// carry (maxTokenLen) while keeping every split's length within [3,264]
// (the total range a token can express per spec §3's two field formulas).
func appendMatch(out []byte, total, dist int) []byte {
	remaining := total
	for remaining > maxTokenLen {
		chunk := maxTokenLen
		if remaining-chunk < minMatchLen {
			// Don't leave a remainder too small to encode as its own
			// token; shrink this chunk instead.
			chunk = remaining - minMatchLen
		}
		out = appendBackRef(out, chunk, dist)
		remaining -= chunk
	}
	return appendBackRef(out, remaining, dist)
}

// appendBackRef appends a single back-reference token. length must be in
// [3,264], dist in [1,8192] (spec §3/§4.2).
func appendBackRef(out []byte, length, dist int) []byte {
	d := dist - 1 // spec: "Final byte: (distance-1)&0xFF", and distance-1 feeds the high bits too.

	if length <= maxShortLen {
		lenCode := length - 2
		return append(out, byte(lenCode<<5)|byte(d>>8), byte(d))
	}

	extra := length - 9
	return append(out, byte(7<<5)|byte(d>>8), byte(extra), byte(d))
}
