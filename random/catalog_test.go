package random_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsinghua-fib-lab/simrand-oss/random"
)

func TestParameterNamesFor(t *testing.T) {
	names, err := random.ParameterNamesFor("normal_clipped")
	require.NoError(t, err)
	assert.Equal(t, []string{"mu", "sigma", "low", "high"}, names)

	_, err = random.ParameterNamesFor("cauchy")
	assert.ErrorIs(t, err, random.ErrUnknownDistribution)
}

func TestCatalogIsClosed(t *testing.T) {
	specs := random.AvailableDistributions()
	assert.Len(t, specs, 11)

	// test: names are unique
	names := lo.Map(specs, func(d random.DistributionSpec, _ int) string { return d.Name })
	assert.Len(t, lo.Uniq(names), len(names))
}

func TestParameterValidation(t *testing.T) {
	seed := lo.ToPtr(int64(42))
	s := random.NewSoftwareSampler(random.Config{Seed: seed, ParallelSafe: true})

	valid := map[string]random.Parameters{
		"binomial":                   {"n": 10, "p": 0.5},
		"gamma":                      {"k": 2, "theta": 5},
		"exponential":                {"beta": 1},
		"lognormal":                  {"mu": 0, "sigma": 0.5},
		"normal":                     {"mu": 0, "sigma": 1},
		"normal_clipped":             {"mu": 0, "sigma": 1, "low": -1, "high": 1},
		"normal_clipped_to_boundary": {"mu": 0, "sigma": 1, "low": -1, "high": 1},
		"poisson":                    {"lambda": 4},
		"uniform":                    {"low": 0, "high": 1},
		"uniform_int":                {"low": 0, "high": 10},
		"vonmises":                   {"mu": 0, "kappa": 4},
	}

	for name, params := range valid {
		// test: the documented key set is accepted
		_, err := random.NewDistribution(name, s, params)
		assert.NoError(t, err, name)

		// test: a missing key is rejected
		for key := range params {
			smaller := lo.OmitByKeys(params, []string{key})
			_, err := random.NewDistribution(name, s, random.Parameters(smaller))
			assert.ErrorIs(t, err, random.ErrParameterMismatch, name)
		}

		// test: an extra key is rejected
		bigger := lo.Assign(random.Parameters{}, params)
		bigger["extra"] = 1
		_, err = random.NewDistribution(name, s, bigger)
		assert.ErrorIs(t, err, random.ErrParameterMismatch, name)
	}

	// test: a renamed key is rejected
	_, err := random.NewDistribution("normal", s, random.Parameters{"mean": 0, "sigma": 1})
	assert.ErrorIs(t, err, random.ErrParameterMismatch)
}
