// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors
// Driver sequencing grounded in original_source/bin/phyunzip.c; unknown
// chunk skipping supplements the distilled spec per original_source's
// recovery path and spec §6's "unknown ids are skippable" note.

package archive

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dzyubak/phyzip/container"
	"github.com/dzyubak/phyzip/lz77"
)

// Unpack reads archivePath and recreates the original file it describes,
// in the current directory, under the name recorded in the metadata
// chunk. Unpack refuses to overwrite an existing file with that name.
func Unpack(archivePath string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("archive: opening archive: %w", err)
	}
	defer f.Close()

	ok, err := container.DetectMagic(f)
	if err != nil {
		return fmt.Errorf("archive: inspecting archive: %w", err)
	}
	if !ok {
		return container.ErrBadMagic
	}
	if _, err := f.Seek(int64(len(container.Magic)), io.SeekStart); err != nil {
		return fmt.Errorf("archive: seeking past magic: %w", err)
	}

	var sink *os.File
	defer func() {
		if sink != nil {
			sink.Close()
		}
	}()

	var decBuf []byte

	for {
		h, err := container.ReadHeader(f)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		switch h.ID {
		case container.ChunkMetadata:
			if sink != nil {
				return ErrUnexpectedChunk
			}
			if h.Size <= 10 || h.Size >= 65536 {
				return ErrUnexpectedChunk
			}

			payload, err := container.ReadPayload(f, h)
			if err != nil {
				return err
			}

			name, err := parseMetadata(payload)
			if err != nil {
				return err
			}

			out, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
			if err != nil {
				if os.IsExist(err) {
					return ErrOutputExists
				}
				return fmt.Errorf("archive: creating output: %w", err)
			}
			sink = out

		case container.ChunkData:
			if sink == nil {
				return ErrUnexpectedChunk
			}

			payload, err := container.ReadPayload(f, h)
			if err != nil {
				return err
			}

			if cap(decBuf) < int(h.Extra) {
				decBuf = make([]byte, h.Extra)
			} else {
				decBuf = decBuf[:h.Extra]
			}

			n, err := lz77.DecompressInto(decBuf, payload)
			if err != nil {
				return fmt.Errorf("archive: decompressing chunk: %w", err)
			}
			if n != int(h.Extra) {
				return ErrDecodeLengthMismatch
			}

			if _, err := sink.Write(decBuf[:n]); err != nil {
				return fmt.Errorf("archive: writing output: %w", err)
			}

		default:
			// Unknown chunk kinds are skippable using only the header's
			// Size field; skip without verifying a checksum we don't
			// know how to interpret.
			if _, err := io.CopyN(io.Discard, f, int64(h.Size)); err != nil {
				return fmt.Errorf("archive: skipping unknown chunk %d: %w", h.ID, err)
			}
		}
	}

	if sink == nil {
		return ErrUnexpectedChunk
	}

	return sink.Close()
}

// parseMetadata extracts the stored filename from a metadata chunk
// payload: u64 original_size, u16 name_length, name, NUL terminator
// (spec §3).
func parseMetadata(payload []byte) (string, error) {
	if len(payload) < 10 {
		return "", ErrUnexpectedChunk
	}

	nameLen := int(binary.LittleEndian.Uint16(payload[8:10]))
	if nameLen <= 0 || 10+nameLen > len(payload) {
		nameLen = len(payload) - 10
	}
	if nameLen <= 0 {
		return "", ErrUnexpectedChunk
	}

	name := payload[10 : 10+nameLen]
	if i := len(name) - 1; i >= 0 && name[i] == 0 {
		name = name[:i]
	}
	if len(name) == 0 {
		return "", ErrUnexpectedChunk
	}

	return string(name), nil
}
