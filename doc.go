// Package padchain computes the minimal number of physical key presses
// needed to type a code on a keypad that is operated through a chain of
// remote intermediaries, each steering the next over a small directional pad.
//
// 🚀 What is padchain?
//
//	A compact, dependency-free engine for "keypad behind keypad" control
//	chains:
//		• Layout model: fixed keypads with 2-D key positions and one
//		  forbidden gap cell that no arm may slide across
//		• Transition-cost tables: per-layer minimal press counts for every
//		  ordered key pair, built bottom-up and memoized
//		• Sequence costing: total presses for a full code at any chain
//		  depth, without ever materializing the exponentially long
//		  intermediate key streams
//
// ✨ Why choose padchain?
//
//   - Exact – cost tables reproduce full string expansion press-for-press
//   - Scalable – O(|alphabet|²) work per layer; depth 25 is as easy as depth 2
//   - Rock-solid – sentinel errors, checked 64-bit arithmetic, immutable tables
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	keypad/    — Symbol, Position, Layout; the fixed numeric & directional pads
//	chaincost/ — layered transition-cost tables and sequence costing
//
// Quick ASCII picture of a depth-2 chain:
//
//	    you ──(directional pad)──▶ arm ──(directional pad)──▶ arm ──▶ [ numeric pad ]
//
//	Only your presses are physical; everything downstream is derived.
//
// Dive into the package docs and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/padchain
package padchain
