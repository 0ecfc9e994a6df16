// Package keypad defines core types and sentinel errors for keypad layouts.
package keypad

import (
	"errors"
)

// Sentinel errors for keypad operations.
var (
	// ErrUnknownSymbol indicates a requested symbol is not part of the layout's alphabet.
	ErrUnknownSymbol = errors.New("keypad: symbol not in layout alphabet")
	// ErrEmptyLayout indicates a layout was constructed with an empty alphabet.
	ErrEmptyLayout = errors.New("keypad: layout must declare at least one key")
	// ErrPositionClash indicates two keys, or a key and the gap cell, share one position.
	ErrPositionClash = errors.New("keypad: keys and gap must occupy distinct positions")
	// ErrNoActivate indicates the alphabet does not include the Activate key.
	ErrNoActivate = errors.New("keypad: layout must include the Activate key")
)

// Symbol is an atomic key identifier on a layout.
// The fixed layouts use '0'..'9' plus Activate (numeric) and the four
// directional arrows plus Activate (directional).
type Symbol byte

// The directional alphabet shared by every steering layer, plus the
// Activate key present on both fixed layouts.
const (
	// Up moves the controlled arm one row toward Y=0.
	Up Symbol = '^'
	// Down moves the controlled arm one row away from Y=0.
	Down Symbol = 'v'
	// Left moves the controlled arm one column toward X=0.
	Left Symbol = '<'
	// Right moves the controlled arm one column away from X=0.
	Right Symbol = '>'
	// Activate presses whatever key the controlled arm hovers over.
	// It is also the home position: every arm starts parked on Activate.
	Activate Symbol = 'A'
)

// Position is a cell on a layout: X is the column (grows rightward),
// Y is the row (grows downward). Immutable by value semantics.
type Position struct {
	X, Y int
}

// Layout maps a fixed alphabet of symbols to positions on one keypad and
// records the single forbidden gap cell. Immutable once constructed.
type Layout struct {
	name    string
	keys    map[Symbol]Position
	gap     Position
	ordered []Symbol // alphabet in ascending byte order, cached at build time
}
