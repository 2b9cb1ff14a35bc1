package mst

import (
	"errors"
)

// ErrUnknownMethod indicates that Compute was asked for an algorithm other than
// MethodKruskal or MethodPrim.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is an undirected weighted edge between two vertices of [0, n).
//
// ID is an opaque caller-chosen tag carried through unchanged, typically the
// edge's position in the caller's own list, so results can be mapped back.
type Edge struct {
	// ID identifies the edge for the caller.
	ID int

	// From and To are the endpoint vertex indices.
	From, To int

	// Weight is the quantity being minimized.
	Weight float64
}

// MSTOptions configures which MST algorithm Compute runs.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// ValidMethod reports whether m names a supported algorithm.
func ValidMethod(m string) bool {
	return m == MethodKruskal || m == MethodPrim
}

// Compute selects and runs the MST algorithm named by the options.
//
//	– MethodKruskal (default): Kruskal(n, edges).
//	– MethodPrim:              Prim(n, edges).
//	– Otherwise:               ErrUnknownMethod.
func Compute(n int, edges []Edge, opts ...Option) ([]Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(n, edges)
	case MethodPrim:
		return Prim(n, edges)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
