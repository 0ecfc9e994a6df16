// Package chaincost defines options, sentinel errors, and the transition-cost
// table type for the layered keypad-chain engine.
package chaincost

import (
	"errors"

	"github.com/katalvlaran/padchain/keypad"
)

// Sentinel errors returned by the chaincost engine.
var (
	// ErrBadDepth indicates a negative chain depth, or a sequence query at a
	// depth the table was not built for.
	ErrBadDepth = errors.New("chaincost: chain depth out of range")

	// ErrBadLayer indicates a Cost lookup outside layers 1..Depth().
	ErrBadLayer = errors.New("chaincost: layer index out of range")

	// ErrUnreachableTransition indicates both move groupings between a pair
	// of keys cross the layout's gap cell. The fixed numeric and directional
	// layouts never trigger this; it marks a malformed custom layout.
	ErrUnreachableTransition = errors.New("chaincost: both move orderings cross the gap cell")

	// ErrOverflow indicates a press count no longer fits in an int64.
	// Costs grow roughly geometrically with depth, so this only fires at
	// depths far beyond any physical chain.
	ErrOverflow = errors.New("chaincost: press count overflows int64")
)

// basePressCost is the cost of one transition at layer 0: the bottom operator
// is a physical hand, so every press costs exactly one actuation.
const basePressCost int64 = 1

// Options configures the layouts a transition-cost table is built over.
//
// DirLayout — steering layout active at every layer 1..N-1.
// TopLayout — layout of the outermost device, active only at layer N.
type Options struct {
	DirLayout *keypad.Layout // layout steered at intermediate layers
	TopLayout *keypad.Layout // layout of the final, target device
}

// Option is a functional option for configuring the engine.
type Option func(*Options)

// WithDirLayout overrides the steering layout used at layers 1..N-1.
// Panics on nil: an absent layout is a programming error, not a runtime state.
func WithDirLayout(l *keypad.Layout) Option {
	if l == nil {
		panic("chaincost: WithDirLayout requires a non-nil layout")
	}

	return func(o *Options) { o.DirLayout = l }
}

// WithTopLayout overrides the outermost layout used at layer N.
// Panics on nil, mirroring WithDirLayout.
func WithTopLayout(l *keypad.Layout) Option {
	if l == nil {
		panic("chaincost: WithTopLayout requires a non-nil layout")
	}

	return func(o *Options) { o.TopLayout = l }
}

// DefaultOptions returns Options wired to the two fixed process-wide layouts:
// keypad.Directional() for steering layers and keypad.Numeric() on top.
func DefaultOptions() Options {
	return Options{
		DirLayout: keypad.Directional(),
		TopLayout: keypad.Numeric(),
	}
}

// pair keys a transition-cost entry by its ordered (from, to) symbols.
type pair struct {
	from, to keypad.Symbol
}

// Table holds minimal transition costs for every layer of one chain depth.
//
// dirCost[l] maps ordered directional-pad pairs to cost[l][from][to] for
// 1 ≤ l ≤ depth-1 (slot 0 stays nil: layer 0 is the explicit base case, one
// press per transition, never stored). topCost holds layer depth over the
// top layout. Both are fully populated by NewTable and read-only afterward,
// so a Table is safe for concurrent readers.
type Table struct {
	dir     *keypad.Layout
	top     *keypad.Layout
	depth   int
	dirCost []map[pair]int64
	topCost map[pair]int64
}
