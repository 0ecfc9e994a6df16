// Package chaincost computes the minimal number of physical key presses
// needed to type a symbol sequence on a keypad operated through a chain of
// N indirection layers, where each layer steers the next over a small
// directional pad and only layer 0 presses keys with a real hand.
//
// 🚀 What is chaincost?
//
//	Expanding the target sequence through every layer yields a string whose
//	length grows multiplicatively per layer — hopeless beyond a handful of
//	layers. chaincost never materializes that string. Instead it builds a
//	layered transition-cost table bottom-up:
//
//	  cost[L][s][e] = minimal bottom-layer presses to move layer L's arm
//	                  from key s to key e and press e.
//
//	Layer 0 is the explicit base case (one physical press per key, cost 1).
//	Layer L is derived purely from layer L-1, so each layer is finalized
//	before the next begins and the whole build is O(|alphabet|²) per layer.
//	The total cost of a sequence is the sum of cost[N][a][b] over consecutive
//	pairs of "A" + sequence — every arm starts parked on Activate.
//
// Path-ordering rule:
//
//	Between two keys the arm slides a horizontal run of |Δx| presses and a
//	vertical run of |Δy| presses, in exactly one of two groupings:
//	horizontal-run-then-vertical-run or vertical-run-then-horizontal-run,
//	terminated by Activate. Interleaved orderings are never cheaper on a
//	4-arrow pad and are excluded. A grouping whose L-shaped path crosses the
//	layout's gap cell is invalid; if both groupings are blocked the pair is
//	unreachable (never the case on the two fixed layouts).
//
// Complexity:
//
//   - NewTable:      O(N·|alphabet|²) time, O(N·|alphabet|²) memory.
//   - Cost:          O(1).
//   - SequenceCost:  O(len(target)) at full depth; O(|alphabet|·len(target))
//     when re-querying a shallower depth of the same table.
//   - MinPresses:    NewTable + SequenceCost.
//
// Options:
//
//   - WithDirLayout: steering layout for layers 1..N-1 (default keypad.Directional()).
//   - WithTopLayout: outermost layout for layer N (default keypad.Numeric()).
//
// Errors:
//
//   - ErrBadDepth: negative chain depth, or a query deeper than the table.
//   - ErrBadLayer: Cost queried outside layers 1..Depth().
//   - ErrUnreachableTransition: both groupings for a pair cross the gap cell
//     (malformed custom layout).
//   - ErrOverflow: a press count exceeded int64 (astronomical depths only).
//   - keypad.ErrUnknownSymbol: a symbol outside the active layout's alphabet.
//
// Concurrency:
//
//	A Table is immutable once NewTable returns and safe for concurrent
//	readers. The build itself is sequential; per-layer pair computations are
//	independent, but at ≤ 121 pairs per layer parallelism buys nothing.
//
// See example_test.go and examples/ for complete scenarios.
package chaincost
