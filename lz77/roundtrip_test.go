// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors

package lz77

import (
	"bytes"
	"errors"
	"math/rand"
	"sync"
	"testing"
)

// TestConcurrentCompressDecompress exercises spec §5's thread-safety
// contract: Compress/Decompress hold no package-level state and are safe
// to call concurrently on disjoint buffers.
func TestConcurrentCompressDecompress(t *testing.T) {
	const goroutines = 16

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()

			r := rand.New(rand.NewSource(int64(g)))
			data := make([]byte, 4096+r.Intn(4096))
			r.Read(data)
			// Mix in compressible spans so both literal and match paths run.
			for i := 0; i < len(data); i += 64 {
				end := min(i+16, len(data))
				for j := i; j < end; j++ {
					data[j] = byte(g)
				}
			}

			cmp := Compress(data, &CompressOptions{Level: g % 10})
			out, err := Decompress(cmp, len(data))
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(out, data) {
				errs <- errors.New("round-trip mismatch in goroutine")
				return
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestRandomizedRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		size := r.Intn(8192)
		data := make([]byte, size)
		r.Read(data)

		cmp := Compress(data, &CompressOptions{Level: 1 + r.Intn(9)})
		out, err := Decompress(cmp, len(data))
		if err != nil {
			t.Fatalf("trial %d: Decompress failed: %v", trial, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("trial %d: round-trip mismatch (size=%d)", trial, size)
		}
	}
}
