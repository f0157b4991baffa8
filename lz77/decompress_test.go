// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors

package lz77

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecompress_EmptyInputSucceeds(t *testing.T) {
	out, err := Decompress(nil, 0)
	if err != nil {
		t.Fatalf("expected success for empty input, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(out))
	}
}

func TestDecompress_TruncatedInputFails(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 256)
	cmp := Compress(data, &CompressOptions{Level: 1})
	if len(cmp) < 4 {
		t.Fatalf("compressed data unexpectedly short: %d", len(cmp))
	}

	maxCut := min(32, len(cmp)-1)
	for cut := 1; cut <= maxCut; cut++ {
		truncated := cmp[:len(cmp)-cut]
		_, err := Decompress(truncated, len(data))
		if err == nil {
			t.Fatalf("expected error for cut=%d", cut)
		}
	}
}

func TestDecompress_OutputCapacityTooSmallFails(t *testing.T) {
	data := bytes.Repeat([]byte("AABBCCDDEEFF"), 512)
	cmp := Compress(data, &CompressOptions{Level: 5})

	_, err := Decompress(cmp, len(data)-1)
	if err == nil {
		t.Fatal("expected error for undersized output capacity")
	}
	if !errors.Is(err, ErrOutputOverrun) {
		t.Fatalf("expected ErrOutputOverrun, got %v", err)
	}
}

func TestDecompress_FirstControlByteAlwaysLiteral(t *testing.T) {
	// The first control byte is always masked with &31 and decoded as a
	// literal run, even though 0x20 is >= 32 and would otherwise select
	// the back-reference branch (spec's first-token convention).
	stream := []byte{0x20, 0x00} // 0x20 & 0x1F = 0 -> count 1, literal byte 0x00
	out, err := Decompress(stream, 1)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, []byte{0x00}) {
		t.Fatalf("got %v, want %v", out, []byte{0x00})
	}
}

func TestDecompress_LookBehindUnderrunRejected(t *testing.T) {
	// A back-reference as the *second* token, requesting a distance
	// greater than the bytes written so far (1, from the preceding
	// one-byte literal run), must be rejected.
	stream := []byte{0x00, 'A'}               // literal run: length byte 0 -> 1 byte
	stream = append(stream, 0x20, 0x05)        // lenCode=1 (len=3), distHi=0, distLo=5 -> distance=6
	_, err := DecompressInto(make([]byte, 16), stream)
	if !errors.Is(err, ErrLookBehindUnderrun) {
		t.Fatalf("expected ErrLookBehindUnderrun, got %v", err)
	}
}

func TestDecompress_RunLengthExpansionOverlap(t *testing.T) {
	// "ABABABABAB": literal run "AB", then a back-reference of length 8
	// at distance 2 exercises the overlap/RLE-expansion rule.
	stream := []byte{}
	stream = append(stream, 1, 'A', 'B') // literal run: length byte 1 -> 2 bytes
	stream = appendBackRef(stream, 8, 2) // 8 more bytes copied from distance 2
	out, err := Decompress(stream, 10)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if string(out) != "ABABABABAB" {
		t.Fatalf("got %q, want %q", out, "ABABABABAB")
	}
}

func TestDecompress_DistanceBoundaries(t *testing.T) {
	// 9000 zero bytes: a run longer than the 8192-byte window, covered by
	// one long match split across many maximum-length tokens.
	data := make([]byte, 9000)
	cmp := Compress(data, &CompressOptions{Level: 9})
	out, err := Decompress(cmp, len(data))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch for long zero run")
	}
}
