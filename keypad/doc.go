// Package keypad models small fixed keypads as immutable layouts: a finite
// alphabet of key symbols, each at an integer (column,row) position, plus
// exactly one forbidden "gap" cell that a sliding arm may never cross.
//
// What:
//
//   - Symbol: a single key identifier ('0'..'9', 'A', '^', 'v', '<', '>').
//   - Position: a (X,Y) cell on a layout; X grows rightward, Y downward.
//   - Layout: a total mapping Symbol → Position for one keypad, carrying its
//     gap cell; deep-copied on construction, read-only thereafter.
//   - Numeric() and Directional(): the two process-wide layouts, built once.
//
// Why:
//
//   - Remote-arm control: an arm hovering over a keypad moves in straight
//     horizontal/vertical runs and must route around the gap cell.
//   - Cost modelling: chaincost builds per-layer transition-cost tables on
//     top of these layouts; it only ever needs PositionOf and IsGap.
//
// Layouts:
//
//	Numeric (gap at (0,3)):      Directional (gap at (0,0)):
//	    7 8 9                        . ^ A
//	    4 5 6                        < v >
//	    1 2 3
//	    . 0 A
//
// Errors:
//
//   - ErrUnknownSymbol: a symbol outside the layout's alphabet was requested.
//   - ErrEmptyLayout: a layout was constructed with no keys.
//   - ErrPositionClash: two keys, or a key and the gap, share a cell.
//   - ErrNoActivate: the alphabet lacks the Activate key (every arm parks on
//     Activate, so a layout without it has no home position).
//
// Complexity: all lookups are O(1); Symbols() is O(n log n) once, cached.
package keypad
