// Copyright (c) 2012, Suryandaru Triandana <syndtr@gmail.com>
// All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package filter

import (
	"io"

	"github.com/clayne/lcdb/util"
)

// bloomSeed is frozen along with util.Hash; changing either invalidates
// every filter already persisted to durable storage.
const bloomSeed = 0xbc9f1d34

// BloomFilter is a filter policy based on a bloom filter with approximately
// bits-per-key bits of state per key. A good value is 10, which yields a
// filter with ~1% false positive rate.
//
// A BloomFilter is immutable after construction and may be shared by any
// number of concurrent readers without synchronization.
type BloomFilter struct {
	name       string
	bitsPerKey int
	k          uint8
}

// NewBloomFilter creates a new bloom filter policy. Negative bitsPerKey is
// treated as zero.
func NewBloomFilter(bitsPerKey int) *BloomFilter {
	if bitsPerKey < 0 {
		bitsPerKey = 0
	}
	// We intentionally round down to reduce probing cost a little bit.
	k := int(float64(bitsPerKey) * 0.69) // 0.69 =~ ln(2)
	if k < 1 {
		k = 1
	}
	if k > 30 {
		k = 30
	}
	return &BloomFilter{
		name:       "leveldb.BuiltinBloomFilter2",
		bitsPerKey: bitsPerKey,
		k:          uint8(k),
	}
}

// Name returns the policy name persisted alongside each filter block. A
// reader configured with a different name must treat the block as foreign.
func (f *BloomFilter) Name() string {
	return f.name
}

// K returns the number of probes per key.
func (f *BloomFilter) K() uint8 {
	return f.k
}

// Size returns the byte length of the bit array for a filter built from n
// keys. The trailing probe-count byte is not included. A floor of 64 bits
// keeps very small filters from having an unacceptable false positive rate.
func (f *BloomFilter) Size(n int) int {
	bits := n * f.bitsPerKey
	if bits < 64 {
		bits = 64
	}
	return (bits + 7) / 8
}

// CreateFilter builds the encoded filter for keys and writes it to buf.
// The encoding is the bit array followed by one byte holding the probe
// count used for the build.
func (f *BloomFilter) CreateFilter(keys [][]byte, buf io.Writer) {
	nBytes := f.Size(len(keys))
	nBits := uint32(nBytes * 8)

	b := util.NewBitBuffer(nBytes)
	for _, key := range keys {
		// Use double-hashing to generate a sequence of hash values.
		// See analysis in [Kirsch,Mitzenmacher 2006].
		h := util.Hash(key, bloomSeed)
		delta := h>>17 | h<<15 // Rotate right 17 bits.
		for i := uint8(0); i < f.k; i++ {
			b.SetBit(h % nBits)
			h += delta
		}
	}
	b.AppendByte(f.k)
	buf.Write(b.Bytes())
}

// KeyMayMatch reports whether key may be a member of the set the encoded
// filter was built from. False means the key is definitely absent; true
// means it may be present and the caller must consult the underlying data.
func (f *BloomFilter) KeyMayMatch(key, filter []byte) bool {
	nBytes := len(filter) - 1
	if nBytes < 1 {
		return false
	}
	nBits := uint32(nBytes * 8)

	// Use the encoded k so that we can read filters generated by
	// bloom filters created using different parameters.
	k := filter[nBytes]
	if k > 30 {
		// Reserved for potentially new encodings for short bloom
		// filters. Consider it a match.
		return true
	}

	h := util.Hash(key, bloomSeed)
	delta := h>>17 | h<<15 // Rotate right 17 bits.
	for i := uint8(0); i < k; i++ {
		pos := h % nBits
		if filter[pos/8]&(1<<(pos%8)) == 0 {
			return false
		}
		h += delta
	}
	return true
}
