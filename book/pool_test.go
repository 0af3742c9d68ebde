package book

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderPool_AcquireRelease(t *testing.T) {
	p := NewOrderPool()
	require.Equal(t, 0, p.Outstanding())

	var acquired []*Order
	for i := 0; i < orderPoolBlockSize+10; i++ {
		acquired = append(acquired, p.Acquire())
	}
	require.Equal(t, len(acquired), p.Outstanding())
	require.GreaterOrEqual(t, p.Capacity(), len(acquired))

	for _, o := range acquired {
		p.Release(o)
	}
	require.Equal(t, 0, p.Outstanding())
}

func TestOrderPool_NeverRelocatesHandedOutSlots(t *testing.T) {
	p := NewOrderPool()
	first := p.Acquire()
	first.ID = 42
	// Force growth past the first block.
	for i := 0; i < orderPoolBlockSize; i++ {
		p.Acquire()
	}
	require.EqualValues(t, 42, first.ID, "growing the pool must not relocate a handed-out slot")
}

func TestOrderPool_CapacityNeverShrinks(t *testing.T) {
	p := NewOrderPool()
	var acquired []*Order
	for i := 0; i < orderPoolBlockSize+1; i++ {
		acquired = append(acquired, p.Acquire())
	}
	capAfterGrowth := p.Capacity()
	for _, o := range acquired {
		p.Release(o)
	}
	require.Equal(t, capAfterGrowth, p.Capacity())
}
