// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/property
//
// record.go: insertion-ordered, freeze-once property record.
//
// Storage is a gods linkedhashmap keyed by the wire name, so JSON output
// lists properties in the order they were extracted.

package property

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Record maps Name → value in extraction order.
// Values are int, bool, string, []string, [][]int or []Traversal.
type Record struct {
	m      *linkedhashmap.Map
	frozen bool
}

func newRecord() *Record {
	return &Record{m: linkedhashmap.New()}
}

// put stores v under n. Reserved names, duplicates and writes after Freeze fail.
func (r *Record) put(n Name, v interface{}) error {
	switch {
	case r.frozen:
		return fmt.Errorf("put(%s): %w", n, ErrFrozen)
	case n.Reserved():
		return fmt.Errorf("put(%s): %w", n, ErrReservedName)
	}
	if _, found := r.m.Get(n.String()); found {
		return fmt.Errorf("put(%s): %w", n, ErrDuplicateProperty)
	}
	r.m.Put(n.String(), v)

	return nil
}

func (r *Record) freeze() { r.frozen = true }

// Frozen reports whether the record no longer accepts values.
func (r *Record) Frozen() bool { return r.frozen }

// Len returns the number of populated properties.
func (r *Record) Len() int { return r.m.Size() }

// Get returns the value stored for n.
func (r *Record) Get(n Name) (interface{}, bool) {
	return r.m.Get(n.String())
}

// Has reports whether n is populated.
func (r *Record) Has(n Name) bool {
	_, ok := r.m.Get(n.String())

	return ok
}

// Names returns the populated names in extraction order.
func (r *Record) Names() []Name {
	out := make([]Name, 0, r.m.Size())
	for _, k := range r.m.Keys() {
		n, err := ParseName(k.(string))
		if err == nil {
			out = append(out, n)
		}
	}

	return out
}

// MarshalJSON emits one object with keys in extraction order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	it := r.m.Iterator()
	first := true
	for it.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(it.Key())
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(it.Value())
		if err != nil {
			return nil, fmt.Errorf("marshal %v: %w", it.Key(), err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Traversal is one traversal sample: the start vertex and the visit order
// rendered as "(a,b,c)".
type Traversal struct {
	Start int    `json:"start"`
	Order string `json:"order"`
}
