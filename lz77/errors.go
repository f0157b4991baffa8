// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors

package lz77

import "errors"

// Sentinel errors returned by Decompress. Idiomatic-Go rendering of the
// "return 0 on any malformed input" contract: callers that only care
// about success/failure can still do `err != nil`, but errors.Is lets a
// caller distinguish the failure class when it matters (e.g. the archive
// unpacker reports integrity vs. decode failures differently).
var (
	// ErrInputOverrun is returned when the decoder would need to read
	// past the end of the compressed input to complete a token.
	ErrInputOverrun = errors.New("lz77: input overrun")
	// ErrOutputOverrun is returned when a token would write past the
	// caller-supplied output capacity.
	ErrOutputOverrun = errors.New("lz77: output overrun")
	// ErrLookBehindUnderrun is returned when a back-reference's distance
	// points before the start of the output written so far.
	ErrLookBehindUnderrun = errors.New("lz77: lookbehind underrun")
)
