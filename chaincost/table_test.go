package chaincost_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/padchain/chaincost"
	"github.com/katalvlaran/padchain/keypad"
)

//----------------------------------------------------------------------------//
// NewTable and Cost contracts
//----------------------------------------------------------------------------//

// TestNewTable_BadDepth verifies negative depths are rejected.
func TestNewTable_BadDepth(t *testing.T) {
	_, err := chaincost.NewTable(-1)
	assert.ErrorIs(t, err, chaincost.ErrBadDepth, "negative depth must error")
}

// TestCost_BadLayer verifies layer bounds: valid layers are 1..Depth().
func TestCost_BadLayer(t *testing.T) {
	tab, err := chaincost.NewTable(3)
	require.NoError(t, err)

	_, err = tab.Cost(0, keypad.Activate, keypad.Activate)
	assert.ErrorIs(t, err, chaincost.ErrBadLayer, "layer 0 is the implicit base case, not addressable")
	_, err = tab.Cost(4, keypad.Activate, keypad.Activate)
	assert.ErrorIs(t, err, chaincost.ErrBadLayer, "layer above Depth() must error")

	tab, err = chaincost.NewTable(0)
	require.NoError(t, err)
	_, err = tab.Cost(1, keypad.Activate, keypad.Activate)
	assert.ErrorIs(t, err, chaincost.ErrBadLayer, "a depth-0 table has no layers at all")
}

// TestCost_UnknownSymbol verifies symbols are validated against the layer's
// active layout: arrows live on steering layers, digits on the top layer.
func TestCost_UnknownSymbol(t *testing.T) {
	tab, err := chaincost.NewTable(3)
	require.NoError(t, err)

	_, err = tab.Cost(3, keypad.Left, keypad.Activate)
	assert.ErrorIs(t, err, keypad.ErrUnknownSymbol, "'<' is not a numeric key")
	_, err = tab.Cost(1, '7', keypad.Activate)
	assert.ErrorIs(t, err, keypad.ErrUnknownSymbol, "'7' is not a directional key")
}

// TestCost_SelfTransitionIsOnePress asserts cost[L][s][s] == 1 on every
// layer: reaching the key you are already on costs just the terminating
// Activate press, no matter how deep the chain.
func TestCost_SelfTransitionIsOnePress(t *testing.T) {
	const depth = 4
	tab, err := chaincost.NewTable(depth)
	require.NoError(t, err)

	for layer := 1; layer <= depth; layer++ {
		layout := keypad.Directional()
		if layer == depth {
			layout = keypad.Numeric()
		}
		for _, s := range layout.Symbols() {
			c, cErr := tab.Cost(layer, s, s)
			require.NoError(t, cErr)
			assert.Equal(t, int64(1), c, "cost[%d][%q][%q]", layer, s, s)
		}
	}
}

// TestCost_AsymmetricPairs asserts transition costs are direction-dependent:
// gap-blocking can eliminate an ordering for one direction only. On the
// directional pad at layer 2, A→< is forced through the long way down while
// <→A rides the cheap row back, hand-derived as 10 vs 8 presses.
func TestCost_AsymmetricPairs(t *testing.T) {
	tab, err := chaincost.NewTable(3)
	require.NoError(t, err)

	there, err := tab.Cost(2, keypad.Activate, keypad.Left)
	require.NoError(t, err)
	back, err := tab.Cost(2, keypad.Left, keypad.Activate)
	require.NoError(t, err)

	assert.Equal(t, int64(10), there, "cost[2][A][<]")
	assert.Equal(t, int64(8), back, "cost[2][<][A]")
	assert.NotEqual(t, there, back, "transition costs must not be assumed symmetric")
}

// TestNewTable_Idempotent verifies two independent builds produce identical
// cost surfaces: the recurrence is a pure function of the layouts and depth.
func TestNewTable_Idempotent(t *testing.T) {
	const depth = 3
	first, err := chaincost.NewTable(depth)
	require.NoError(t, err)
	second, err := chaincost.NewTable(depth)
	require.NoError(t, err)

	for layer := 1; layer <= depth; layer++ {
		layout := keypad.Directional()
		if layer == depth {
			layout = keypad.Numeric()
		}
		for _, from := range layout.Symbols() {
			for _, to := range layout.Symbols() {
				a, aErr := first.Cost(layer, from, to)
				require.NoError(t, aErr)
				b, bErr := second.Cost(layer, from, to)
				require.NoError(t, bErr)
				assert.Equal(t, a, b, "cost[%d][%q][%q] must not depend on build order", layer, from, to)
			}
		}
	}
}

// TestTable_ConcurrentReaders verifies a finalized table tolerates parallel
// Cost and SequenceCost queries (read-only after NewTable).
func TestTable_ConcurrentReaders(t *testing.T) {
	tab, err := chaincost.NewTable(5)
	require.NoError(t, err)
	target, err := keypad.Numeric().Sequence("029A")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := 0; d <= tab.Depth(); d++ {
				if _, sErr := tab.SequenceCost(target, d); sErr != nil {
					t.Error(sErr)
				}
			}
			if _, cErr := tab.Cost(2, keypad.Up, keypad.Left); cErr != nil {
				t.Error(cErr)
			}
		}()
	}
	wg.Wait()
}

//----------------------------------------------------------------------------//
// Custom layouts: unreachable pairs, missing arrows, overflow
//----------------------------------------------------------------------------//

// TestNewTable_UnreachableTransition builds a layout whose gap sits inside
// the only straight run between two keys, blocking both orderings.
func TestNewTable_UnreachableTransition(t *testing.T) {
	blocked, err := keypad.NewLayout("blocked", map[keypad.Symbol]keypad.Position{
		keypad.Activate: {X: 0, Y: 0},
		'1':             {X: 2, Y: 0},
	}, keypad.Position{X: 1, Y: 0})
	require.NoError(t, err)

	_, err = chaincost.NewTable(1, chaincost.WithTopLayout(blocked))
	assert.ErrorIs(t, err, chaincost.ErrUnreachableTransition,
		"a gap inside the only run must make the pair unreachable")
}

// TestNewTable_SteeringLayoutMissingArrows verifies that a steering layout
// lacking an arrow the layer above needs fails with ErrUnknownSymbol rather
// than mispricing the move.
func TestNewTable_SteeringLayoutMissingArrows(t *testing.T) {
	tiny, err := keypad.NewLayout("tiny", map[keypad.Symbol]keypad.Position{
		keypad.Activate: {X: 0, Y: 0},
		keypad.Up:       {X: 1, Y: 0},
	}, keypad.Position{X: 2, Y: 0})
	require.NoError(t, err)

	// Depth 1 never touches the steering layout; depth 2 must reject it.
	_, err = chaincost.NewTable(1, chaincost.WithDirLayout(tiny))
	assert.NoError(t, err, "depth 1 has no steering layers")
	_, err = chaincost.NewTable(2, chaincost.WithDirLayout(tiny))
	assert.ErrorIs(t, err, keypad.ErrUnknownSymbol,
		"steering pad without '<'/'v'/'>' cannot type numeric move runs")
}

// TestNewTable_OverflowFailsLoudly verifies geometric cost growth trips
// ErrOverflow instead of wrapping: far before layer 300 the 64-bit press
// counts saturate.
func TestNewTable_OverflowFailsLoudly(t *testing.T) {
	_, err := chaincost.NewTable(300)
	assert.ErrorIs(t, err, chaincost.ErrOverflow, "int64 wrap must surface as ErrOverflow")
}
