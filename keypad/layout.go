// Package keypad provides immutable keypad layouts: finite symbol alphabets
// with 2-D key positions and a single forbidden gap cell.
package keypad

import (
	"fmt"
	"sort"
	"sync"
)

// NewLayout constructs a Layout from a non-empty symbol→position map and the
// layout's gap cell. It deep-copies the input map to ensure immutability.
// Returns ErrEmptyLayout if keys is empty, ErrNoActivate if the alphabet
// lacks Activate, and ErrPositionClash if two keys share a position or a key
// sits on the gap cell.
// Complexity: O(n log n) time, O(n) memory (n = alphabet size).
func NewLayout(name string, keys map[Symbol]Position, gap Position) (*Layout, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyLayout
	}
	if _, ok := keys[Activate]; !ok {
		return nil, ErrNoActivate
	}
	// Deep copy and check every cell is claimed at most once.
	copied := make(map[Symbol]Position, len(keys))
	seen := make(map[Position]Symbol, len(keys)+1)
	for s, p := range keys {
		if p == gap {
			return nil, fmt.Errorf("keypad: key %q placed on the gap cell: %w", s, ErrPositionClash)
		}
		if prev, dup := seen[p]; dup {
			return nil, fmt.Errorf("keypad: keys %q and %q both at (%d,%d): %w", prev, s, p.X, p.Y, ErrPositionClash)
		}
		seen[p] = s
		copied[s] = p
	}
	// Cache the alphabet in ascending byte order for deterministic iteration.
	ordered := make([]Symbol, 0, len(copied))
	for s := range copied {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	return &Layout{name: name, keys: copied, gap: gap, ordered: ordered}, nil
}

// Name returns the human-readable layout name ("numeric", "directional", ...).
// Complexity: O(1).
func (l *Layout) Name() string { return l.name }

// PositionOf returns the cell occupied by symbol s.
// Returns ErrUnknownSymbol if s is outside the layout's alphabet.
// Complexity: O(1).
func (l *Layout) PositionOf(s Symbol) (Position, error) {
	p, ok := l.keys[s]
	if !ok {
		return Position{}, fmt.Errorf("keypad: %q on layout %s: %w", s, l.name, ErrUnknownSymbol)
	}

	return p, nil
}

// IsGap reports whether p is the layout's forbidden gap cell.
// Complexity: O(1).
func (l *Layout) IsGap(p Position) bool { return p == l.gap }

// Gap returns the layout's forbidden gap cell.
// Complexity: O(1).
func (l *Layout) Gap() Position { return l.gap }

// Contains reports whether s belongs to the layout's alphabet.
// Complexity: O(1).
func (l *Layout) Contains(s Symbol) bool {
	_, ok := l.keys[s]

	return ok
}

// Size returns the number of keys in the alphabet.
// Complexity: O(1).
func (l *Layout) Size() int { return len(l.keys) }

// Symbols returns the alphabet in ascending byte order.
// The returned slice is a fresh copy; callers may mutate it freely.
// Complexity: O(n).
func (l *Layout) Symbols() []Symbol {
	out := make([]Symbol, len(l.ordered))
	copy(out, l.ordered)

	return out
}

// Sequence validates raw against the layout's alphabet and returns it as a
// symbol slice. Returns ErrUnknownSymbol on the first foreign character.
// Complexity: O(len(raw)).
func (l *Layout) Sequence(raw string) ([]Symbol, error) {
	seq := make([]Symbol, len(raw))
	for i := 0; i < len(raw); i++ {
		s := Symbol(raw[i])
		if !l.Contains(s) {
			return nil, fmt.Errorf("keypad: %q at index %d on layout %s: %w", s, i, l.name, ErrUnknownSymbol)
		}
		seq[i] = s
	}

	return seq, nil
}

//----------------------------------------------------------------------------//
// Fixed process-wide layouts
//----------------------------------------------------------------------------//

var (
	buildOnce  sync.Once
	numericPad *Layout
	dirPad     *Layout
)

// buildFixed constructs both fixed layouts exactly once.
// Both geometries are compile-time constants, so construction cannot fail;
// a failure here is a programming error and panics.
func buildFixed() {
	var err error
	numericPad, err = NewLayout("numeric", map[Symbol]Position{
		'7': {X: 0, Y: 0}, '8': {X: 1, Y: 0}, '9': {X: 2, Y: 0},
		'4': {X: 0, Y: 1}, '5': {X: 1, Y: 1}, '6': {X: 2, Y: 1},
		'1': {X: 0, Y: 2}, '2': {X: 1, Y: 2}, '3': {X: 2, Y: 2},
		'0': {X: 1, Y: 3}, Activate: {X: 2, Y: 3},
	}, Position{X: 0, Y: 3})
	if err != nil {
		panic("keypad: numeric layout: " + err.Error())
	}
	dirPad, err = NewLayout("directional", map[Symbol]Position{
		Up: {X: 1, Y: 0}, Activate: {X: 2, Y: 0},
		Left: {X: 0, Y: 1}, Down: {X: 1, Y: 1}, Right: {X: 2, Y: 1},
	}, Position{X: 0, Y: 0})
	if err != nil {
		panic("keypad: directional layout: " + err.Error())
	}
}

// Numeric returns the fixed 11-key numeric pad:
//
//	7 8 9
//	4 5 6
//	1 2 3
//	. 0 A   (gap at (0,3))
//
// The returned layout is a process-wide read-only singleton.
func Numeric() *Layout {
	buildOnce.Do(buildFixed)

	return numericPad
}

// Directional returns the fixed 5-key directional pad:
//
//	. ^ A   (gap at (0,0))
//	< v >
//
// The returned layout is a process-wide read-only singleton.
func Directional() *Layout {
	buildOnce.Do(buildFixed)

	return dirPad
}
