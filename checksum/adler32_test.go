// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors

package checksum

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestSum_KnownVectors(t *testing.T) {
	cases := []struct {
		data string
		want uint32
	}{
		{"", 1},
		{"a", 0x00620062},
		{"abc", 0x024d0127},
		{"Wikipedia", 0x11e60398},
	}

	for _, c := range cases {
		got := Sum([]byte(c.data))
		if got != c.want {
			t.Errorf("Sum(%q) = %#08x, want %#08x", c.data, got, c.want)
		}
	}
}

func TestUpdate_ChainingLaw(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for trial := 0; trial < 20; trial++ {
		a := make([]byte, r.Intn(10000))
		b := make([]byte, r.Intn(10000))
		r.Read(a)
		r.Read(b)

		whole := Update(Init, append(append([]byte{}, a...), b...))
		chained := Update(Update(Init, a), b)

		if whole != chained {
			t.Fatalf("trial %d: chaining law violated: whole=%#08x chained=%#08x", trial, whole, chained)
		}
	}
}

func TestUpdate_FoldBoundaryMatchesByteAtATime(t *testing.T) {
	data := bytes.Repeat([]byte{0x5a}, 20000) // spans multiple 5552-byte folds

	bulk := Sum(data)

	state := Init
	for _, b := range data {
		state = Update(state, []byte{b})
	}

	if bulk != state {
		t.Fatalf("bulk=%#08x byte-at-a-time=%#08x", bulk, state)
	}
}

func TestDigest_Hash32Interface(t *testing.T) {
	d := New()
	if _, err := d.Write([]byte("abc")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if d.Sum32() != Sum([]byte("abc")) {
		t.Fatalf("Sum32()=%#08x want %#08x", d.Sum32(), Sum([]byte("abc")))
	}

	d.Reset()
	if d.Sum32() != Init {
		t.Fatalf("Reset did not restore initial state: %#08x", d.Sum32())
	}
}
