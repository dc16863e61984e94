package id

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonotonicNonZeroID(t *testing.T) {
	gen, err := MonotonicNonZeroID()
	require.NoError(t, err)
	prev := uint64(0)
	for i := 0; i < 1000; i++ {
		n := gen.Number()
		assert.NotZero(t, n)
		assert.Greater(t, n, prev)
		prev = n
	}
}

func TestMonotonicNonZeroIDStr(t *testing.T) {
	gen, err := MonotonicNonZeroID()
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		n, err := strconv.ParseUint(gen.Str(), 10, 64)
		require.NoError(t, err)
		assert.NotZero(t, n)
	}
}
