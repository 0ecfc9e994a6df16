// Package chaincost exposes sequence costing on top of the layered
// transition-cost table: the total minimal press count for a full target
// sequence is the sum of top-layer pair costs over consecutive symbols of
// "A" + target — the same summation rule the recurrence uses internally,
// applied once at the top of the chain.
package chaincost

import (
	"fmt"

	"github.com/katalvlaran/padchain/keypad"
)

// MinPresses returns the minimal number of physical key presses required to
// type target on the outermost layout through a chain of depth indirection
// layers. Depth 0 is the degenerate direct-typing case: one physical press
// per symbol. This is the engine's single call contract; target must already
// consist of top-layout symbols (use keypad.Layout.Sequence to validate raw
// text).
//
// Returns ErrBadDepth for depth < 0, keypad.ErrUnknownSymbol for foreign
// target symbols, and any table-build error (ErrUnreachableTransition,
// ErrOverflow) unchanged.
//
// Complexity: O(depth·|alphabet|² + len(target)).
func MinPresses(target []keypad.Symbol, depth int, opts ...Option) (int64, error) {
	t, err := NewTable(depth, opts...)
	if err != nil {
		return 0, err
	}

	return t.SequenceCost(target, depth)
}

// SequenceCost returns the minimal physical press count for typing target on
// the top layout at the given chain depth, which may be any value from 0 to
// Depth(): steering-layer costs never depend on the chain's total height, so
// one table built deep answers every shallower chain for free.
//
// The implicit starting key before the first symbol is Activate (the home
// position); an empty target therefore costs 0. Depth 0 counts one press per
// symbol after validating the sequence.
//
// Returns ErrBadDepth when depth is outside 0..Depth() and
// keypad.ErrUnknownSymbol when target strays from the top alphabet.
func (t *Table) SequenceCost(target []keypad.Symbol, depth int) (int64, error) {
	// 1) Depth must be answerable by this table.
	if depth < 0 || depth > t.depth {
		return 0, fmt.Errorf("chaincost: depth %d of table depth %d: %w", depth, t.depth, ErrBadDepth)
	}

	// 2) Validate the whole sequence up front; costing must not half-succeed.
	var s keypad.Symbol
	for _, s = range target {
		if _, err := t.top.PositionOf(s); err != nil {
			return 0, err
		}
	}

	// 3) Depth 0: the operator's hand is already on the top layout.
	if depth == 0 {
		return int64(len(target)), nil
	}

	// 4) Sum top-layer transition costs over consecutive pairs of "A"+target.
	var (
		total int64
		err   error
	)
	prev := keypad.Activate
	for _, s = range target {
		var step int64
		if depth == t.depth {
			step = t.topCost[pair{from: prev, to: s}]
		} else {
			// Shallower query: the top layout sits at a layer the build
			// reserved for steering, so derive its costs on the fly from the
			// finalized steering layer below.
			if step, err = t.pairCost(t.top, depth, prev, s); err != nil {
				return 0, err
			}
		}
		if total, err = addPresses(total, step); err != nil {
			return 0, err
		}
		prev = s
	}

	return total, nil
}
