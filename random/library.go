package random

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tsinghua-fib-lab/simrand-oss/utils/randengine"
)

// LibrarySource支持的底层生成器算法
const (
	AlgorithmPCG64   = "pcg64"   // golang.org/x/exp/rand默认源
	AlgorithmMT19937 = "mt19937" // NumPy兼容的梅森旋转
)

// librarySamplers 目录参数名到gonum/stat/distuv采样器的翻译表
// 说明：distuv的gamma与exponential采用rate参数化，此处做scale↔rate换算；
// distuv没有冯·米塞斯分布，故vonmises不在表中（需要时改用SoftwareSource）
var librarySamplers = map[string]func(s *LibrarySource, p Parameters) float64{
	"binomial": func(s *LibrarySource, p Parameters) float64 {
		return distuv.Binomial{N: p["n"], P: p["p"], Src: s.src}.Rand()
	},
	"gamma": func(s *LibrarySource, p Parameters) float64 {
		return distuv.Gamma{Alpha: p["k"], Beta: 1 / p["theta"], Src: s.src}.Rand()
	},
	"exponential": func(s *LibrarySource, p Parameters) float64 {
		return distuv.Exponential{Rate: 1 / p["beta"], Src: s.src}.Rand()
	},
	"lognormal": func(s *LibrarySource, p Parameters) float64 {
		return distuv.LogNormal{Mu: p["mu"], Sigma: p["sigma"], Src: s.src}.Rand()
	},
	"normal": func(s *LibrarySource, p Parameters) float64 {
		return distuv.Normal{Mu: p["mu"], Sigma: p["sigma"], Src: s.src}.Rand()
	},
	"poisson": func(s *LibrarySource, p Parameters) float64 {
		return distuv.Poisson{Lambda: p["lambda"], Src: s.src}.Rand()
	},
	"uniform": func(s *LibrarySource, p Parameters) float64 {
		return distuv.Uniform{Min: p["low"], Max: p["high"], Src: s.src}.Rand()
	},
	"uniform_int": func(s *LibrarySource, p Parameters) float64 {
		low, high := int64(p["low"]), int64(p["high"])
		return float64(low + s.rnd.Int63n(high-low))
	},
}

// LibrarySource 第三方库随机源
// 功能：基于gonum/stat/distuv的分布采样器实现目录分布
// 说明：底层生成器算法由algorithm令牌选择；
// 与GSL包装相同，该源不支持vonmises（返回ErrUnknownDistribution）
type LibrarySource struct {
	cfg       Config
	algorithm string
	src       rand.Source
	rnd       *rand.Rand
}

// NewLibrarySource 创建第三方库随机源
// 参数：algorithm-生成器算法令牌（空值默认pcg64）；cfg-随机源配置
// 返回：库随机源指针，算法令牌无效时返回错误
func NewLibrarySource(algorithm string, cfg Config) (*LibrarySource, error) {
	cfg = cfg.normalize()
	seed := cfg.effectiveSeed()
	var src rand.Source
	switch algorithm {
	case "", AlgorithmPCG64:
		algorithm = AlgorithmPCG64
		src = rand.NewSource(seed)
	case AlgorithmMT19937:
		src = randengine.NewMT19937(seed)
	default:
		return nil, fmt.Errorf("unknown rng algorithm %q (available: %s, %s)", algorithm, AlgorithmPCG64, AlgorithmMT19937)
	}
	return &LibrarySource{
		cfg:       cfg,
		algorithm: algorithm,
		src:       src,
		rnd:       rand.New(src),
	}, nil
}

// Generate 从指定分布中产生n个采样值
// 说明：校验次序与SoftwareSource一致；本源不支持的目录分布（vonmises）
// 在校验之后、触碰生成器之前返回ErrUnknownDistribution
func (s *LibrarySource) Generate(distribution string, n int, params Parameters) ([]float64, error) {
	spec, ok := distributionIndex[distribution]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, distribution)
	}
	if err := params.validate(spec.ParameterNames); err != nil {
		return nil, err
	}
	if n == 0 {
		return []float64{}, nil
	}

	switch distribution {
	case "normal_clipped":
		normal := distuv.Normal{Mu: params["mu"], Sigma: params["sigma"], Src: s.src}
		return Clipped(func(k int) []float64 {
			return s.fill(k, normal.Rand)
		}, params["low"], params["high"], n)
	case "normal_clipped_to_boundary":
		normal := distuv.Normal{Mu: params["mu"], Sigma: params["sigma"], Src: s.src}
		return ClipToBoundary(s.fill(n, normal.Rand), params["low"], params["high"]), nil
	default:
		sample, ok := librarySamplers[distribution]
		if !ok {
			return nil, fmt.Errorf("%w: %q is not provided by the library source", ErrUnknownDistribution, distribution)
		}
		return s.fill(n, func() float64 { return sample(s, params) }), nil
	}
}

// fill 连续抽取n个值
func (s *LibrarySource) fill(n int, sample func() float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = sample()
	}
	return values
}

// Describe 随机源的可读描述
func (s *LibrarySource) Describe() string {
	return fmt.Sprintf("LibrarySource(%s, seed=%s)", s.algorithm, s.cfg.describeSeed())
}
