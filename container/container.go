// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors
// Container layout grounded in original_source/bin/phyzip.c and
// bin/phyunzip.c (magic, 16-byte chunk header, Adler-32 over the payload).

// Package container implements the phyzip archive framing: an 8-byte
// magic header followed by a sequence of 16-byte chunk headers, each
// followed by its payload.
package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/dzyubak/phyzip/checksum"
)

// Magic is the 8-byte prefix identifying a phyzip archive.
var Magic = [8]byte{'$', 'p', 'h', 'y', 'z', 'i', 'p', '$'}

// Known chunk ids (spec §3/§6). Future ids must remain skippable using
// only the header's Size field; a conformant reader ignores unknown ids.
const (
	ChunkMetadata = uint16(1)
	ChunkData     = uint16(17)
)

const headerSize = 16

// ErrBadMagic is returned when a source does not begin with Magic.
var ErrBadMagic = errors.New("container: not a phyzip archive")

// ErrChecksumMismatch is returned when a chunk's payload does not match
// its recorded Adler-32 checksum.
var ErrChecksumMismatch = errors.New("container: checksum mismatch")

// Header is a 16-byte chunk header (spec §3).
type Header struct {
	ID       uint16
	Options  uint16
	Size     uint32 // payload bytes following this header
	Checksum uint32 // Adler-32 over the payload
	Extra    uint32 // data chunks: decompressed length; else 0
}

// WriteMagic writes the 8-byte magic to w.
func WriteMagic(w io.Writer) error {
	_, err := w.Write(Magic[:])
	return err
}

// DetectMagic reports whether r begins with Magic. r's position is
// restored regardless of outcome — unlike the original C implementation's
// detect_magic, which the spec flags as a bug (it seeks to offset 8 and
// never restores the caller's position).
func DetectMagic(r io.ReadSeeker) (bool, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, err
	}
	defer func() {
		_, _ = r.Seek(start, io.SeekStart)
	}()

	var buf [8]byte
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	n, err := io.ReadFull(r, buf[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	if n < 8 {
		return false, nil
	}

	return buf == Magic, nil
}

// WriteChunk writes a 16-byte header followed by payload. The checksum is
// computed over payload with Adler-32's initial state.
func WriteChunk(w io.Writer, id, options uint16, extra uint32, payload []byte) error {
	h := Header{
		ID:       id,
		Options:  options,
		Size:     uint32(len(payload)), //nolint:gosec // chunk payloads stay well under 4GiB (64KiB blocks)
		Checksum: checksum.Sum(payload),
		Extra:    extra,
	}

	if err := writeHeader(w, h); err != nil {
		return err
	}

	_, err := w.Write(payload)
	return err
}

func writeHeader(w io.Writer, h Header) error {
	var buf [headerSize]byte
	binary.LittleEndian.PutUint16(buf[0:2], h.ID)
	binary.LittleEndian.PutUint16(buf[2:4], h.Options)
	binary.LittleEndian.PutUint32(buf[4:8], h.Size)
	binary.LittleEndian.PutUint32(buf[8:12], h.Checksum)
	binary.LittleEndian.PutUint32(buf[12:16], h.Extra)
	_, err := w.Write(buf[:])
	return err
}

// ReadHeader reads one 16-byte chunk header from r. Returns io.EOF
// (unwrapped, so errors.Is(err, io.EOF) works) when r is exhausted exactly
// at a chunk boundary — the normal way an archive ends.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return Header{}, io.EOF
		}
		return Header{}, fmt.Errorf("container: reading chunk header: %w", err)
	}

	return Header{
		ID:       binary.LittleEndian.Uint16(buf[0:2]),
		Options:  binary.LittleEndian.Uint16(buf[2:4]),
		Size:     binary.LittleEndian.Uint32(buf[4:8]),
		Checksum: binary.LittleEndian.Uint32(buf[8:12]),
		Extra:    binary.LittleEndian.Uint32(buf[12:16]),
	}, nil
}

// ReadPayload reads exactly h.Size bytes from r and verifies them against
// h.Checksum, returning ErrChecksumMismatch on mismatch.
func ReadPayload(r io.Reader, h Header) ([]byte, error) {
	payload := make([]byte, h.Size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("container: reading chunk payload: %w", err)
	}

	if got := checksum.Sum(payload); got != h.Checksum {
		return nil, fmt.Errorf("%w: got %#08x expecting %#08x", ErrChecksumMismatch, got, h.Checksum)
	}

	return payload, nil
}
