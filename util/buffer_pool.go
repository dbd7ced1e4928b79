// Copyright (c) 2014, Suryandaru Triandana <syndtr@gmail.com>
// All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package util

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// BufferPool recycles byte slices used to build filter blocks. A nil
// *BufferPool is valid and falls back to plain allocation.
type BufferPool struct {
	pool     sync.Pool
	baseline int

	get     uint32
	put     uint32
	less    uint32
	equal   uint32
	greater uint32
	miss    uint32
}

// Get returns a zeroed buffer with length of n.
func (p *BufferPool) Get(n int) []byte {
	if p == nil {
		return make([]byte, n)
	}
	atomic.AddUint32(&p.get, 1)

	if b, ok := p.pool.Get().(*[]byte); ok {
		switch {
		case n < cap(*b):
			atomic.AddUint32(&p.less, 1)
			buf := (*b)[:n]
			clear(buf)
			return buf
		case n == cap(*b):
			atomic.AddUint32(&p.equal, 1)
			buf := (*b)[:n]
			clear(buf)
			return buf
		default:
			atomic.AddUint32(&p.greater, 1)
			p.pool.Put(b)
		}
	} else {
		atomic.AddUint32(&p.miss, 1)
	}

	if n >= p.baseline {
		return make([]byte, n)
	}
	return make([]byte, n, p.baseline)
}

// Put adds given buffer to the pool.
func (p *BufferPool) Put(b []byte) {
	if p == nil {
		return
	}
	atomic.AddUint32(&p.put, 1)
	p.pool.Put(&b)
}

func (p *BufferPool) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("BufferPool{B·%d G·%d P·%d <·%d =·%d >·%d M·%d}",
		p.baseline, p.get, p.put, p.less, p.equal, p.greater, p.miss)
}

// NewBufferPool creates a new initialized 'buffer pool'.
func NewBufferPool(baseline int) *BufferPool {
	return &BufferPool{baseline: baseline}
}
