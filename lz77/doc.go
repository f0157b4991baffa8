// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors

/*
Package lz77 implements a byte-aligned LZ77 codec: a hash-indexed,
longest-forward-match-ish compressor and its bit-exact decoder.

The token stream interleaves two kinds of tokens on byte boundaries:

  - a literal run: one length byte in [0,31] followed by length+1 raw bytes
  - a back-reference: 2 or 3 bytes encoding (length, distance), length in
    [3,264], distance in [1,8192]

Compress never fails and never mutates its input. Decompress bounds-checks
every read and write against the supplied buffers and returns a sentinel
error (rather than a silent truncated result) on any malformed input.

The very first control byte of a stream is always masked with &31 and
decoded as a literal run, regardless of its actual value; only later
control bytes are tested against the literal/back-reference boundary.

	out := lz77.Compress(data, nil)
	back, err := lz77.Decompress(out, len(data))

Compress accepts an optional level (1 = fast single-candidate parse, the
default; 2-9 add one-step lazy matching for a better ratio at some extra
CPU cost). The token format does not depend on the level used to produce
it — any level's output decodes identically.
*/
package lz77
