// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/catalog
//
// catalog.go: BadgerDB index of every artifact written to the dataset.
//
// Key layout:
//
//	"a/" + Location key   => Entry (JSON)
//	"r/" + run id         => Run   (JSON)
//
// An empty Path opens an in-memory database.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by Get when no entry exists for the id.
	ErrNotFound = errors.New("catalog: entry not found")

	// ErrBadOptions is returned for an unusable Options combination.
	ErrBadOptions = errors.New("catalog: bad options")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("catalog: closed")
)

var (
	entryPrefix = []byte("a/")
	runPrefix   = []byte("r/")
)

// Entry describes one written artifact.
type Entry struct {
	ID         string          `json:"id"`
	RunID      string          `json:"run_id"`
	Nodes      int             `json:"nodes"`
	Family     string          `json:"family,omitempty"`
	Index      int             `json:"index"`
	Variant    string          `json:"variant,omitempty"`
	Path       string          `json:"path"`
	Edges      int             `json:"edges"`
	Properties json.RawMessage `json:"properties,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Run records one CLI invocation that wrote into the catalog.
type Run struct {
	ID        string    `json:"id"`
	Command   string    `json:"command"`
	Seed      int64     `json:"seed"`
	StartedAt time.Time `json:"started_at"`
}

// Options configures Open.
type Options struct {
	Path     string // empty = in-memory
	ReadOnly bool
}

// Catalog wraps a badger.DB.
type Catalog struct {
	db *badger.DB
}

// NewRunID returns a fresh random run id.
func NewRunID() string {
	return uuid.NewString()
}

// Open opens (or creates) the catalog.
func Open(opts Options) (*Catalog, error) {
	if opts.Path == "" && opts.ReadOnly {
		return nil, fmt.Errorf("read-only catalog needs a path: %w", ErrBadOptions)
	}
	dbOpts := badger.DefaultOptions(opts.Path)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false
	if opts.Path == "" {
		dbOpts.InMemory = true
	}
	// badger has no read-only mode on windows
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", opts.Path, err)
	}

	return &Catalog{db: db}, nil
}

// Close releases the database.
func (c *Catalog) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil

	return err
}

func entryKey(id string) []byte {
	return append(append([]byte{}, entryPrefix...), id...)
}

// Put stores or replaces e under e.ID. A zero CreatedAt is stamped now.
func (c *Catalog) Put(e Entry) error {
	return c.PutBatch([]Entry{e})
}

// PutBatch stores many entries in one write batch.
func (c *Catalog) PutBatch(entries []Entry) error {
	if c.db == nil {
		return ErrClosed
	}
	now := time.Now().UTC()
	vals := make([][]byte, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("catalog: entry without id: %w", ErrBadOptions)
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		val, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("catalog: encode %s: %w", e.ID, err)
		}
		vals[i] = val
	}

	// Flush and Cancel are mutually exclusive: exactly one of them ends the batch.
	wb := c.db.NewWriteBatch()
	for i, e := range entries {
		if err := wb.Set(entryKey(e.ID), vals[i]); err != nil {
			wb.Cancel()
			return fmt.Errorf("catalog: set %s: %w", e.ID, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("catalog: flush: %w", err)
	}

	return nil
}

// Get loads the entry with the given id.
func (c *Catalog) Get(id string) (Entry, error) {
	if c.db == nil {
		return Entry{}, ErrClosed
	}
	var e Entry
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entryKey(id))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Entry{}, fmt.Errorf("catalog: %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("catalog: get %s: %w", id, err)
	}

	return e, nil
}

// Iterate calls fn for every entry whose id starts with prefix, in key order.
// Returning a non-nil error from fn stops the walk and is returned.
func (c *Catalog) Iterate(prefix string, fn func(Entry) error) error {
	if c.db == nil {
		return ErrClosed
	}

	return c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   100,
			Prefix:         entryKey(prefix),
		})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			var e Entry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			})
			if err != nil {
				return fmt.Errorf("catalog: decode %s: %w", it.Item().Key(), err)
			}
			if err := fn(e); err != nil {
				return err
			}
		}

		return nil
	})
}

// Count returns the number of entries whose id starts with prefix.
func (c *Catalog) Count(prefix string) (int, error) {
	if c.db == nil {
		return 0, ErrClosed
	}
	n := 0
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: entryKey(prefix)})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}

		return nil
	})

	return n, err
}

// FamilyCount is one row of Stats.
type FamilyCount struct {
	Nodes   int
	Family  string // empty for exhaustive graphs
	Sources int    // entries without a variant
	Total   int
}

// Stats aggregates entries per (nodes, family), sorted by nodes then family.
func (c *Catalog) Stats() ([]FamilyCount, error) {
	type key struct {
		n int
		f string
	}
	agg := map[key]*FamilyCount{}
	err := c.Iterate("", func(e Entry) error {
		k := key{e.Nodes, e.Family}
		fc, ok := agg[k]
		if !ok {
			fc = &FamilyCount{Nodes: e.Nodes, Family: e.Family}
			agg[k] = fc
		}
		fc.Total++
		if e.Variant == "" {
			fc.Sources++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]FamilyCount, 0, len(agg))
	for _, fc := range agg {
		out = append(out, *fc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Nodes != out[j].Nodes {
			return out[i].Nodes < out[j].Nodes
		}

		return out[i].Family < out[j].Family
	})

	return out, nil
}

// PutRun records a run.
func (c *Catalog) PutRun(r Run) error {
	if c.db == nil {
		return ErrClosed
	}
	val, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(append(append([]byte{}, runPrefix...), r.ID...), val)
	})
}

// Runs lists recorded runs ordered by start time.
func (c *Catalog) Runs() ([]Run, error) {
	if c.db == nil {
		return nil, ErrClosed
	}
	var runs []Run
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: true, Prefix: runPrefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			var r Run
			if err := it.Item().Value(func(val []byte) error { return json.Unmarshal(val, &r) }); err != nil {
				return err
			}
			runs = append(runs, r)
		}

		return nil
	})
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].StartedAt.Before(runs[j].StartedAt) })

	return runs, err
}
