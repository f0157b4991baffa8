// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors

package archive

import "errors"

// Sentinel errors surfaced by Pack/Unpack (spec §7's error kinds,
// excluding IO errors, which are propagated as-is from os/io).
var (
	// ErrOutputExists is returned when Pack's archive path, or Unpack's
	// recovered output path, already exists.
	ErrOutputExists = errors.New("archive: output already exists")
	// ErrAlreadyArchive is returned when Pack's source already begins
	// with the container magic.
	ErrAlreadyArchive = errors.New("archive: source already a phyzip archive")
	// ErrUnexpectedChunk is returned when a data chunk arrives before the
	// metadata chunk, or metadata payload size is out of range.
	ErrUnexpectedChunk = errors.New("archive: unexpected chunk order or size")
	// ErrDecodeLengthMismatch is returned when a data chunk decompresses
	// to a length other than its recorded Extra.
	ErrDecodeLengthMismatch = errors.New("archive: decompressed length mismatch")
)
