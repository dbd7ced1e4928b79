// Copyright (c) 2012, Suryandaru Triandana <syndtr@gmail.com>
// All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package util provides primitives shared by the filter subsystem: the
// seeded 32-bit hash, a bounds-checked bit buffer and a byte-slice pool.
package util

import "encoding/binary"

const (
	hashM = 0xc6a4a793
	hashR = 24
)

// Hash computes a seeded 32-bit hash of data.
//
// The algorithm and any seed ever used with it are frozen: filters persisted
// to durable storage encode positions derived from this function, and a later
// build must reproduce them bit for bit. Do not change this function.
func Hash(data []byte, seed uint32) uint32 {
	h := seed ^ uint32(len(data))*hashM

	for ; len(data) >= 4; data = data[4:] {
		h += binary.LittleEndian.Uint32(data)
		h *= hashM
		h ^= h >> 16
	}

	switch len(data) {
	case 3:
		h += uint32(data[2]) << 16
		fallthrough
	case 2:
		h += uint32(data[1]) << 8
		fallthrough
	case 1:
		h += uint32(data[0])
		h *= hashM
		h ^= h >> hashR
	}
	return h
}
