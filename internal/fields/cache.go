// Copyright 2026 The zlisp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields

import (
	"reflect"
	"sync"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/singleflight"
)

// Info is the cached, pre-resolved field metadata for one struct type:
// the wire names in declaration order, ready to hand to a StructEncoder or
// to match against during struct decode.
type Info struct {
	typ   reflect.Type
	names []string
}

// Names returns the wire names in declaration order. The result is a clone
// of the cached slice, so a caller is free to hold onto or reorder it
// without corrupting the Info shared by every other Lookup of the same
// type.
func (i *Info) Names() []string {
	return slices.Clone(i.names)
}

var (
	cacheMu sync.RWMutex
	cache   = map[reflect.Type]*Info{}
	group   singleflight.Group
)

// Lookup returns the cached field Info for t (a struct type), computing and
// caching it on first use. Concurrent first-use lookups for the same type
// are collapsed into a single scan via singleflight, rather than racing
// multiple goroutines through reflection for no reason.
func Lookup(t reflect.Type) *Info {
	cacheMu.RLock()
	info, ok := cache[t]
	cacheMu.RUnlock()
	if ok {
		return info
	}

	for {
		v, _, _ := group.Do(t.String(), func() (any, error) {
			cacheMu.RLock()
			info, ok := cache[t]
			cacheMu.RUnlock()
			if ok {
				return info, nil
			}

			zero := reflect.New(t).Elem()
			var names []string
			for f := range StructFields(zero) {
				names = append(names, f.Name)
			}
			info = &Info{typ: t, names: names}

			cacheMu.Lock()
			cache[t] = info
			cacheMu.Unlock()
			return info, nil
		})
		// Distinct types can share a String(); a call collapsed into another
		// type's scan gets that type's Info and must try again.
		if info := v.(*Info); info.typ == t {
			return info
		}
	}
}
