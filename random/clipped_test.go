package random_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsinghua-fib-lab/simrand-oss/random"
)

func TestClippedScalar(t *testing.T) {
	// test: an alternating generator settles on the first in-bounds value
	i := 0
	gen := func() float64 {
		i++
		if i%2 == 1 {
			return 10
		}
		return 0.5
	}
	v, err := random.ClippedScalar(gen, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	// test: a generator that never lands in bounds exhausts the budget
	_, err = random.ClippedScalar(func() float64 { return 10 }, 0, 1)
	assert.ErrorIs(t, err, random.ErrRedrawLimitExceeded)
}

func TestClippedRedrawsOnlyInvalidPositions(t *testing.T) {
	// 前4个值中有2个越界，此后的生成器调用只应覆盖这2个位置
	sequences := [][]float64{
		{0.1, 5, 0.3, -5},
		{7, 0.8},
		{0.2},
	}
	call := 0
	gen := func(k int) []float64 {
		require.Less(t, call, len(sequences))
		seq := sequences[call]
		require.Len(t, seq, k, "redraw size must equal the invalid subset size")
		call++
		return seq
	}

	values, err := random.Clipped(gen, 0, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.8}, values)
	assert.Equal(t, 3, call)
}

func TestClippedBudget(t *testing.T) {
	gen := func(k int) []float64 {
		return lo.Times(k, func(_ int) float64 { return 100 })
	}
	_, err := random.Clipped(gen, 0, 1, 8)
	assert.ErrorIs(t, err, random.ErrRedrawLimitExceeded)
}

func TestClipToBoundary(t *testing.T) {
	values := random.ClipToBoundary([]float64{-3, -1, 0, 0.5, 2}, -1, 1)
	assert.Equal(t, []float64{-1, -1, 0, 0.5, 1}, values)
}

func TestNormalClippedDistribution(t *testing.T) {
	s := newTestSampler(8658764, true, 0)
	params := random.Parameters{"mu": 0, "sigma": 1, "low": -1, "high": 1}
	values, err := s.Draw("normal_clipped", params, 1000, nil)
	require.NoError(t, err)
	require.Len(t, values, 1000)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestNormalClippedToBoundaryDistribution(t *testing.T) {
	s := newTestSampler(8658764, true, 0)
	params := random.Parameters{"mu": 0, "sigma": 1, "low": -1, "high": 1}
	values, err := s.Draw("normal_clipped_to_boundary", params, 1000, nil)
	require.NoError(t, err)
	require.Len(t, values, 1000)

	boundary := 0
	for _, v := range values {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
		if v == -1.0 || v == 1.0 {
			boundary++
		}
	}
	// 2*Φ(-1) ≈ 31.7%的质量被钳位到边界
	assert.Greater(t, boundary, 200)
}

func TestNormalClippedRedrawLimit(t *testing.T) {
	// test: a vanishingly small target interval exceeds the redraw budget
	s := newTestSampler(8658764, true, 0)
	params := random.Parameters{"mu": 0, "sigma": 1, "low": 100, "high": 101}
	_, err := s.Draw("normal_clipped", params, 10, nil)
	assert.ErrorIs(t, err, random.ErrRedrawLimitExceeded)
}
