package randengine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsinghua-fib-lab/simrand-oss/utils/randengine"
)

func sampleMean(n int, sample func() float64) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += sample()
	}
	return sum / float64(n)
}

func TestEngineDeterminism(t *testing.T) {
	e1 := randengine.New(42)
	e2 := randengine.New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, e1.Float64(), e2.Float64())
	}
}

func TestPTrue(t *testing.T) {
	e := randengine.New(42)
	assert.False(t, e.PTrue(0))

	trues := 0
	for i := 0; i < 10000; i++ {
		if e.PTrue(0.3) {
			trues++
		}
	}
	assert.InDelta(t, 3000, trues, 200)
}

func TestUniform(t *testing.T) {
	e := randengine.New(42)
	for i := 0; i < 1000; i++ {
		v := e.Uniform(-70, -50)
		assert.GreaterOrEqual(t, v, -70.0)
		assert.Less(t, v, -50.0)
	}
}

func TestUniformInt(t *testing.T) {
	e := randengine.New(42)
	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		v := e.UniformInt(2, 7)
		assert.GreaterOrEqual(t, v, int64(2))
		assert.Less(t, v, int64(7))
		seen[v] = true
	}
	assert.Len(t, seen, 5)

	// test: empty range is a programming error
	assert.Panics(t, func() { e.UniformInt(7, 2) })
}

func TestNormal(t *testing.T) {
	e := randengine.New(8658764)
	assert.InDelta(t, 5.0, sampleMean(20000, func() float64 { return e.Normal(5, 2) }), 0.2)
}

func TestLogNormal(t *testing.T) {
	e := randengine.New(8658764)
	// 均值为exp(mu + sigma^2/2)
	assert.InDelta(t, 1.1331, sampleMean(20000, func() float64 { return e.LogNormal(0, 0.5) }), 0.1)
	for i := 0; i < 100; i++ {
		assert.Greater(t, e.LogNormal(0, 0.5), 0.0)
	}
}

func TestExponential(t *testing.T) {
	e := randengine.New(8658764)
	assert.InDelta(t, 2.0, sampleMean(20000, func() float64 { return e.Exponential(2) }), 0.2)
}

func TestGamma(t *testing.T) {
	e := randengine.New(8658764)

	// test: mean is k*theta for k >= 1
	assert.InDelta(t, 10.0, sampleMean(20000, func() float64 { return e.Gamma(2, 5) }), 0.5)

	// test: the k < 1 boost path
	assert.InDelta(t, 0.5, sampleMean(20000, func() float64 { return e.Gamma(0.5, 1) }), 0.1)
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, e.Gamma(0.5, 1), 0.0)
	}

	assert.Panics(t, func() { e.Gamma(-1, 1) })
}

func TestPoisson(t *testing.T) {
	e := randengine.New(8658764)

	assert.Equal(t, 0.0, e.Poisson(0))
	assert.Equal(t, 0.0, e.Poisson(-1))

	assert.InDelta(t, 4.0, sampleMean(20000, func() float64 { return e.Poisson(4) }), 0.2)

	// test: the large-lambda split path does not underflow
	assert.InDelta(t, 2000.0, sampleMean(2000, func() float64 { return e.Poisson(2000) }), 10)
}

func TestBinomial(t *testing.T) {
	e := randengine.New(8658764)
	assert.InDelta(t, 3.0, sampleMean(20000, func() float64 { return e.Binomial(10, 0.3) }), 0.2)

	assert.Equal(t, 0.0, e.Binomial(0, 0.5))
	assert.Equal(t, 5.0, e.Binomial(5, 1))
	assert.Panics(t, func() { e.Binomial(-1, 0.5) })
}

func TestVonMises(t *testing.T) {
	e := randengine.New(8658764)

	sin, cos := 0.0, 0.0
	for i := 0; i < 20000; i++ {
		v := e.VonMises(0.5, 4)
		require.GreaterOrEqual(t, v, -math.Pi)
		require.LessOrEqual(t, v, math.Pi)
		sin += math.Sin(v)
		cos += math.Cos(v)
	}
	// test: the circular mean is centred on mu
	assert.InDelta(t, 0.5, math.Atan2(sin, cos), 0.1)

	// test: tiny kappa degenerates to the uniform circle
	assert.InDelta(t, 0.0, sampleMean(20000, func() float64 { return e.VonMises(0, 1e-12) }), 0.1)
}
