package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound indicates the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil indicates a nil graph was passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a BFS run.
type Option func(*Options)

// Options holds BFS configuration. Use DefaultOptions and Option helpers.
type Options struct {
	// Ctx is checked once per dequeued vertex.
	Ctx context.Context

	// OnVisit runs when a vertex is visited; a non-nil error aborts the walk.
	OnVisit func(id, depth int) error

	// MaxDepth limits expansion (0 = unlimited).
	MaxDepth int

	err error
}

// DefaultOptions returns a background context, no hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a visit hook. nil is ignored.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to vertices at most d edges from start.
// Negative d is recorded as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// Result is the outcome of a BFS run.
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo rebuilds the start→dest path from Parent links.
// It returns false when dest was not reached.
func (r *Result) PathTo(dest int) ([]int, bool) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, false
	}
	path := []int{dest}
	for cur := dest; ; {
		p, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
