// Package query filters in-memory collections by role scope, search term and
// categorical selections.
package query

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ParallelThreshold is the collection size above which Apply filters in
// concurrent chunks.
var ParallelThreshold = 256

// AllFilter is the selector value that disables a categorical filter
const AllFilter = "all"

// Predicate reports whether an item is kept
type Predicate[T any] func(T) bool

// Scoped is implemented by rows that can be restricted by role scope
type Scoped interface {
	ScopeDepartment() string
	ScopeOwner() string
}

// Scope restricts a collection to one department or one owner.
// The zero value is unrestricted.
type Scope struct {
	Department string
	Owner      string
}

// Unrestricted reports whether the scope keeps every row
func (s Scope) Unrestricted() bool {
	return s.Department == "" && s.Owner == ""
}

// Allows reports whether row is inside the scope
func (s Scope) Allows(row Scoped) bool {
	if s.Department != "" && row.ScopeDepartment() != s.Department {
		return false
	}
	if s.Owner != "" && row.ScopeOwner() != s.Owner {
		return false
	}
	return true
}

// InScope returns a predicate keeping rows inside s
func InScope[T Scoped](s Scope) Predicate[T] {
	return func(row T) bool { return s.Allows(row) }
}

// Contains reports whether any field contains term, ignoring case.
// An empty term matches everything.
func Contains(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Matches reports whether a categorical selection accepts value.
// An empty selection or AllFilter accepts everything. Case is ignored.
func Matches(selection, value string) bool {
	if selection == "" || strings.EqualFold(selection, AllFilter) {
		return true
	}
	return strings.EqualFold(selection, value)
}

// Apply returns the items satisfying every predicate, in input order.
// Large collections are split across goroutines; the output order is the
// same as a sequential pass.
func Apply[T any](ctx context.Context, items []T, preds ...Predicate[T]) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(items) <= ParallelThreshold {
		return filter(items, preds), nil
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(items) + workers - 1) / workers
	if chunk < ParallelThreshold/2 {
		chunk = ParallelThreshold / 2
	}
	parts := make([][]T, (len(items)+chunk-1)/chunk)

	g, gctx := errgroup.WithContext(ctx)
	for i := range parts {
		start := i * chunk
		end := min(start+chunk, len(items))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parts[i] = filter(items[start:end], preds)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	size := 0
	for _, p := range parts {
		size += len(p)
	}
	out := make([]T, 0, size)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

func filter[T any](items []T, preds []Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, p := range preds {
			if p != nil && !p(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}
