// Copyright (c) 2012, Suryandaru Triandana <syndtr@gmail.com>
// All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package opt provides the filter configuration consumed by the storage
// engine's open options.
package opt

import (
	"errors"
	"sync"

	"github.com/clayne/lcdb/filter"
)

var (
	ErrInvalid    = errors.New("invalid value")
	ErrNotSet     = errors.New("not set")
	ErrNotAllowed = errors.New("not allowed")
)

const (
	// DefaultBitsPerKey is the bits-per-key used by NewDefaultFilter.
	// It yields 6 probes per key and a ~1% false positive rate.
	DefaultBitsPerKey = 10

	// DefaultBufferPoolBaseline sizes recycled filter build buffers.
	DefaultBufferPoolBaseline = 4096
)

// NewDefaultFilter returns the well-known default bloom filter policy.
func NewDefaultFilter() filter.Filter {
	return filter.NewBloomFilter(DefaultBitsPerKey)
}

// Options holds the filter configuration for a storage engine instance.
// A nil *Options is valid and means no filtering.
type Options struct {
	// If non-nil, use the specified filter policy to reduce disk reads.
	// Many applications will benefit from passing the result of
	// filter.NewBloomFilter() here.
	//
	// As long as the same filter (name) was used as last time the
	// database was opened, the previous filter is reused. That is,
	// the filter does not need to be rebuilt. This is made possible
	// since each filter is persisted to disk on a per table basis.
	//
	// A filter can be replaced after a database has been created. If
	// this is done, the previously persisted filter will be ignored
	// for every old table, and every new table will use the newly
	// introduced filter. This means that all/some tables will lack a
	// filter during a transition period. This problem can be
	// mitigated by inserting the old filter into AltFilters.
	//
	// Default: nil
	Filter filter.Filter

	// AltFilters defines one or more alternative filters. These will
	// be used as fallback during reads when a table carries a filter
	// block generated by a different policy than the active one. A
	// persisted policy name that matches neither Filter nor any
	// AltFilters entry causes the filter block to be ignored.
	AltFilters []filter.Filter

	mu      sync.RWMutex
	filters map[string]filter.Filter
}

// FilterOptionsGetter wraps methods used to get sanitized filter options.
type FilterOptionsGetter interface {
	GetFilter() filter.Filter
	GetAltFilter(name string) filter.Filter
	GetAltFilters() []filter.Filter
}

// FilterOptionsSetter wraps methods used to set filter options.
type FilterOptionsSetter interface {
	SetFilter(p filter.Filter) error
	InsertAltFilter(p filter.Filter) error
	RemoveAltFilter(name string) error
}

// Getter

func (o *Options) GetFilter() filter.Filter {
	if o == nil {
		return nil
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.Filter
}

// GetAltFilter returns the configured policy whose Name() equals name, or
// nil when the name is foreign to this configuration. The active filter
// participates in the lookup.
func (o *Options) GetAltFilter(name string) filter.Filter {
	if o == nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.initFilters()
	return o.filters[name]
}

func (o *Options) GetAltFilters() []filter.Filter {
	if o == nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.initFilters()
	filters := make([]filter.Filter, 0, len(o.filters))
	for _, p := range o.filters {
		filters = append(filters, p)
	}
	return filters
}

// Setter

func (o *Options) SetFilter(p filter.Filter) error {
	if o == nil {
		return ErrNotSet
	}
	if p == nil {
		return ErrInvalid
	}
	o.mu.Lock()
	o.Filter = p
	o.initFilters()
	o.filters[p.Name()] = p
	o.mu.Unlock()
	return nil
}

func (o *Options) InsertAltFilter(p filter.Filter) error {
	if o == nil {
		return ErrNotSet
	}
	if p == nil {
		return ErrInvalid
	}
	o.mu.Lock()
	o.initFilters()
	o.filters[p.Name()] = p
	o.mu.Unlock()
	return nil
}

func (o *Options) RemoveAltFilter(name string) error {
	if o == nil {
		return ErrNotSet
	}
	o.mu.Lock()
	o.initFilters()
	if o.Filter != nil && name == o.Filter.Name() {
		o.mu.Unlock()
		return ErrNotAllowed
	}
	delete(o.filters, name)
	o.mu.Unlock()
	return nil
}

func (o *Options) initFilters() {
	if o.filters == nil {
		o.filters = make(map[string]filter.Filter)
		for _, p := range o.AltFilters {
			o.filters[p.Name()] = p
		}
		if o.Filter != nil {
			o.filters[o.Filter.Name()] = o.Filter
		}
	}
}
