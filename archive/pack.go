// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors
// Driver sequencing grounded in original_source/bin/phyzip.c and
// bin/phyunzip.c; supplemented per spec §9 Open Question (a): the packer
// emits data chunks, not just metadata.

package archive

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dzyubak/phyzip/container"
	"github.com/dzyubak/phyzip/lz77"
)

// blockSize is the largest span of source bytes compressed into a single
// data chunk (spec §4.5).
const blockSize = 64 * 1024

// PackOptions configures Pack. A nil *PackOptions uses the defaults.
type PackOptions struct {
	// Level is forwarded to lz77.CompressOptions (1 = fast, default; 2-9
	// trade CPU for ratio).
	Level int
}

// Pack reads srcPath and writes a self-describing phyzip archive to
// dstPath. dstPath must not already exist; srcPath must not itself begin
// with the phyzip magic. On any failure after dstPath has been created,
// Pack removes the partial file before returning — no partial archive is
// ever left looking valid.
func Pack(srcPath, dstPath string, opts *PackOptions) error {
	level := 1
	if opts != nil {
		level = opts.Level
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("archive: opening source: %w", err)
	}
	defer src.Close()

	isArchive, err := container.DetectMagic(src)
	if err != nil {
		return fmt.Errorf("archive: inspecting source: %w", err)
	}
	if isArchive {
		return ErrAlreadyArchive
	}

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("archive: statting source: %w", err)
	}

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return ErrOutputExists
		}
		return fmt.Errorf("archive: creating archive: %w", err)
	}

	if err := packInto(dst, src, info.Size(), filepath.Base(srcPath), level); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return err
	}

	return dst.Close()
}

func packInto(dst io.Writer, src io.Reader, originalSize int64, name string, level int) error {
	if err := container.WriteMagic(dst); err != nil {
		return fmt.Errorf("archive: writing magic: %w", err)
	}

	payload := metadataPayload(uint64(originalSize), name) //nolint:gosec // file sizes fit uint64
	if err := container.WriteChunk(dst, container.ChunkMetadata, 0, 0, payload); err != nil {
		return fmt.Errorf("archive: writing metadata chunk: %w", err)
	}

	block := make([]byte, blockSize)
	opts := &lz77.CompressOptions{Level: level}

	for {
		n, err := io.ReadFull(src, block)
		if n > 0 {
			compressed := lz77.Compress(block[:n], opts)
			if werr := container.WriteChunk(dst, container.ChunkData, 0, uint32(n), compressed); werr != nil { //nolint:gosec // block sizes bounded by blockSize
				return fmt.Errorf("archive: writing data chunk: %w", werr)
			}
		}

		if err == io.EOF {
			return nil
		}
		if err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("archive: reading source: %w", err)
		}
	}
}

// metadataPayload builds the metadata chunk payload described in spec
// §3: u64 original_size, u16 name_length (= len(name)+1), name, then a
// NUL terminator.
func metadataPayload(originalSize uint64, name string) []byte {
	nameLen := len(name) + 1
	payload := make([]byte, 10+nameLen)
	binary.LittleEndian.PutUint64(payload[0:8], originalSize)
	binary.LittleEndian.PutUint16(payload[8:10], uint16(nameLen)) //nolint:gosec // filenames stay well under 64KiB
	copy(payload[10:], name)
	payload[10+nameLen-1] = 0
	return payload
}
