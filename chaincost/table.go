// Package chaincost implements the layered transition-cost recurrence.
//
// Algorithm outline:
//
//  1. Layer 0 is a physical hand: every transition costs exactly one press.
//  2. For layer L = 1..N, for every ordered key pair (s,e) on the layer's
//     active layout, enumerate the (at most two) valid move groupings —
//     horizontal-run-then-vertical-run and vertical-run-then-horizontal-run,
//     each terminated with Activate — discard any grouping whose L-shaped
//     path crosses the gap cell, and charge each grouping as the sum of
//     layer L-1 costs over consecutive symbols of "A" + grouping. The pair's
//     cost is the cheaper valid grouping.
//  3. Layer L reads only layer L-1, so each layer is finalized before the
//     next begins and the build terminates in O(|alphabet|²) work per layer.
//
// Notes on implementation choices:
//
//   - The base case is an explicit branch (stepCost, layer 0), never a
//     stored sentinel row, to keep layer indexing honest.
//   - Every summation goes through addPresses, which fails loudly with
//     ErrOverflow instead of wrapping silently.
//   - Gap blocking checks the whole L-shaped path, not just the corner; the
//     two coincide on the fixed layouts, but whole-path checking keeps
//     custom layouts honest and makes the both-blocked case detectable.
package chaincost

import (
	"fmt"
	"math"

	"github.com/katalvlaran/padchain/keypad"
)

// NewTable builds the transition-cost table for a chain of the given depth:
// steering (directional) layers 1..depth-1 and the top layout at layer depth,
// computed bottom-up. The returned table also answers every shallower depth
// (see SequenceCost), since a steering layer's costs depend only on the
// layers below it, never on the chain's total height.
//
// Returns ErrBadDepth if depth < 0, ErrUnreachableTransition if any pair on
// any layer has both groupings blocked by the gap cell, ErrOverflow if a
// cost exceeds int64, and keypad.ErrUnknownSymbol if a grouping needs an
// arrow key the steering layout does not carry.
//
// Complexity: O(depth·|alphabet|²) time and memory.
func NewTable(depth int, opts ...Option) (*Table, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if depth < 0 {
		return nil, fmt.Errorf("chaincost: depth %d: %w", depth, ErrBadDepth)
	}

	t := &Table{dir: cfg.DirLayout, top: cfg.TopLayout, depth: depth}
	// 2) Depth 0 keeps no layers: the operator types on the top layout with
	//    a physical hand and SequenceCost degenerates to counting presses.
	if depth == 0 {
		return t, nil
	}

	// 3) Steering layers 1..depth-1, strictly bottom-up. Slot 0 stays nil:
	//    layer 0 is the explicit base case inside stepCost.
	t.dirCost = make([]map[pair]int64, depth)
	var (
		l   int
		err error
	)
	for l = 1; l < depth; l++ {
		if t.dirCost[l], err = t.layerCosts(t.dir, l); err != nil {
			return nil, err
		}
	}

	// 4) The outermost layer, on the top layout.
	if t.topCost, err = t.layerCosts(t.top, depth); err != nil {
		return nil, err
	}

	return t, nil
}

// Depth returns the chain depth the table was built for.
func (t *Table) Depth() int { return t.depth }

// Cost returns cost[layer][from][to]: the minimal number of physical presses
// required to move layer's arm from key `from` to key `to` and press it.
// Layers 1..Depth()-1 use the steering layout; layer Depth() uses the top
// layout. Returns ErrBadLayer outside that range and keypad.ErrUnknownSymbol
// for symbols foreign to the layer's layout.
// Complexity: O(1).
func (t *Table) Cost(layer int, from, to keypad.Symbol) (int64, error) {
	if layer < 1 || layer > t.depth {
		return 0, fmt.Errorf("chaincost: layer %d of depth %d: %w", layer, t.depth, ErrBadLayer)
	}
	var (
		layout *keypad.Layout
		costs  map[pair]int64
	)
	if layer == t.depth {
		layout, costs = t.top, t.topCost
	} else {
		layout, costs = t.dir, t.dirCost[layer]
	}
	// Validate both endpoints against the active layout before lookup.
	if _, err := layout.PositionOf(from); err != nil {
		return 0, err
	}
	if _, err := layout.PositionOf(to); err != nil {
		return 0, err
	}

	return costs[pair{from: from, to: to}], nil
}

// layerCosts computes the full cost map for one layer over every ordered
// pair of the layer's layout, reading only the (already finalized) layer
// below. Complexity: O(|alphabet|²).
func (t *Table) layerCosts(layout *keypad.Layout, layer int) (map[pair]int64, error) {
	alphabet := layout.Symbols()
	costs := make(map[pair]int64, len(alphabet)*len(alphabet))
	var from, to keypad.Symbol
	for _, from = range alphabet {
		for _, to = range alphabet {
			c, err := t.pairCost(layout, layer, from, to)
			if err != nil {
				return nil, err
			}
			costs[pair{from: from, to: to}] = c
		}
	}

	return costs, nil
}

// pairCost computes cost[layer][from][to]: the cheaper of the valid move
// groupings between the two keys, each charged against layer-1.
func (t *Table) pairCost(layout *keypad.Layout, layer int, from, to keypad.Symbol) (int64, error) {
	src, err := layout.PositionOf(from)
	if err != nil {
		return 0, err
	}
	dst, err := layout.PositionOf(to)
	if err != nil {
		return 0, err
	}

	best := int64(math.MaxInt64)
	var found bool
	var g []keypad.Symbol
	for _, g = range groupings(layout, src, dst) {
		c, gErr := t.groupingCost(layer, g)
		if gErr != nil {
			return 0, gErr
		}
		if c < best {
			best, found = c, true
		}
	}
	if !found {
		return 0, fmt.Errorf("chaincost: %q -> %q on layout %s: %w",
			from, to, layout.Name(), ErrUnreachableTransition)
	}

	return best, nil
}

// groupingCost charges one move grouping against the layer below: the sum of
// cost[layer-1][a][b] over consecutive symbols of "A" + grouping, so the
// first step away from home is paid for like every other.
func (t *Table) groupingCost(layer int, grouping []keypad.Symbol) (int64, error) {
	var total int64
	prev := keypad.Activate
	var s keypad.Symbol
	for _, s = range grouping {
		step, err := t.stepCost(layer-1, prev, s)
		if err != nil {
			return 0, err
		}
		if total, err = addPresses(total, step); err != nil {
			return 0, err
		}
		prev = s
	}

	return total, nil
}

// stepCost reads cost[layer][from][to] during the build. Layer 0 is the
// explicit base case: a physical hand presses each key at unit cost.
func (t *Table) stepCost(layer int, from, to keypad.Symbol) (int64, error) {
	if layer == 0 {
		return basePressCost, nil
	}
	c, ok := t.dirCost[layer][pair{from: from, to: to}]
	if !ok {
		// A grouping needs an arrow the steering layout does not carry.
		return 0, fmt.Errorf("chaincost: %q or %q missing from layout %s: %w",
			from, to, t.dir.Name(), keypad.ErrUnknownSymbol)
	}

	return c, nil
}

// groupings enumerates the candidate move sequences from src to dst on the
// given layout: the horizontal-run-then-vertical-run and the
// vertical-run-then-horizontal-run orderings, each terminated with Activate.
// Orderings whose path crosses the gap cell are omitted; degenerate straight
// moves (Δx or Δy zero) yield a single candidate. An empty result means the
// pair is unreachable.
func groupings(layout *keypad.Layout, src, dst keypad.Position) [][]keypad.Symbol {
	horiz := run(keypad.Left, keypad.Right, dst.X-src.X)
	vert := run(keypad.Up, keypad.Down, dst.Y-src.Y)

	out := make([][]keypad.Symbol, 0, 2)
	if pathClear(layout, src, dst, true) {
		out = append(out, terminate(horiz, vert))
	}
	// The second ordering only differs when the move bends both ways.
	if dst.X != src.X && dst.Y != src.Y && pathClear(layout, src, dst, false) {
		out = append(out, terminate(vert, horiz))
	}

	return out
}

// run builds a straight run of |delta| repeated presses: neg for delta < 0,
// pos for delta > 0, empty for delta == 0.
func run(neg, pos keypad.Symbol, delta int) []keypad.Symbol {
	s, n := pos, delta
	if delta < 0 {
		s, n = neg, -delta
	}
	out := make([]keypad.Symbol, n)
	for i := range out {
		out[i] = s
	}

	return out
}

// terminate concatenates two runs and the closing Activate press.
func terminate(first, second []keypad.Symbol) []keypad.Symbol {
	out := make([]keypad.Symbol, 0, len(first)+len(second)+1)
	out = append(out, first...)
	out = append(out, second...)

	return append(out, keypad.Activate)
}

// pathClear walks the L-shaped path from src to dst (horizontal run first
// when horizFirst, vertical run first otherwise) and reports whether no
// visited cell — corner included — is the layout's gap.
func pathClear(layout *keypad.Layout, src, dst keypad.Position, horizFirst bool) bool {
	cur := src
	legs := [2]bool{horizFirst, !horizFirst} // true = horizontal leg
	var horizontal bool
	for _, horizontal = range legs {
		for cur != dst {
			if horizontal {
				if cur.X == dst.X {
					break // horizontal leg exhausted
				}
				cur.X += sign(dst.X - cur.X)
			} else {
				if cur.Y == dst.Y {
					break
				}
				cur.Y += sign(dst.Y - cur.Y)
			}
			if layout.IsGap(cur) {
				return false
			}
		}
	}

	return true
}

// sign returns -1, 0, or 1 matching the sign of x.
func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// addPresses adds two non-negative press counts, failing loudly on overflow
// instead of wrapping.
func addPresses(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, ErrOverflow
	}

	return a + b, nil
}
