package random

import (
	"fmt"

	"github.com/tsinghua-fib-lab/simrand-oss/utils/randengine"
)

// softwareSamplers 目录参数名到软件引擎采样方法的翻译表
// 说明：目录采用规范参数名，引擎侧的参数语义不同处在此换算
var softwareSamplers = map[string]func(e *randengine.Engine, p Parameters) float64{
	"binomial": func(e *randengine.Engine, p Parameters) float64 {
		return e.Binomial(int64(p["n"]), p["p"])
	},
	"gamma": func(e *randengine.Engine, p Parameters) float64 {
		return e.Gamma(p["k"], p["theta"])
	},
	"exponential": func(e *randengine.Engine, p Parameters) float64 {
		return e.Exponential(p["beta"])
	},
	"lognormal": func(e *randengine.Engine, p Parameters) float64 {
		return e.LogNormal(p["mu"], p["sigma"])
	},
	"normal": func(e *randengine.Engine, p Parameters) float64 {
		return e.Normal(p["mu"], p["sigma"])
	},
	"poisson": func(e *randengine.Engine, p Parameters) float64 {
		return e.Poisson(p["lambda"])
	},
	"uniform": func(e *randengine.Engine, p Parameters) float64 {
		return e.Uniform(p["low"], p["high"])
	},
	"uniform_int": func(e *randengine.Engine, p Parameters) float64 {
		return float64(e.UniformInt(int64(p["low"]), int64(p["high"])))
	},
	"vonmises": func(e *randengine.Engine, p Parameters) float64 {
		return e.VonMises(p["mu"], p["kappa"])
	},
}

// SoftwareSource 软件随机源
// 功能：基于utils/randengine的软件PRNG实现全部目录分布的采样
// 说明：持有可变的生成器状态，由单一顺序调用方推进
type SoftwareSource struct {
	cfg Config
	eng *randengine.Engine
}

// NewSoftwareSource 创建软件随机源
// 参数：cfg-随机源配置
// 返回：软件随机源指针
// 说明：非并行安全模式下有效种子为seed+rank（见Config.effectiveSeed）
func NewSoftwareSource(cfg Config) *SoftwareSource {
	cfg = cfg.normalize()
	return &SoftwareSource{
		cfg: cfg,
		eng: randengine.New(cfg.effectiveSeed()),
	}
}

// Generate 从指定分布中产生n个采样值
// 算法说明：
// 1. 校验分布名与参数键集（目录之外返回ErrUnknownDistribution，键集不符返回ErrParameterMismatch）
// 2. n == 0时直接返回空序列，不触碰生成器
// 3. 截断分布normal_clipped经由有界拒绝采样，normal_clipped_to_boundary为确定性钳位
// 4. 其余分布逐个调用翻译表中的引擎采样方法
func (s *SoftwareSource) Generate(distribution string, n int, params Parameters) ([]float64, error) {
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
		return Clipped(func(k int) []float64 {
			return s.fill(k, func() float64 { return s.eng.Normal(params["mu"], params["sigma"]) })
		}, params["low"], params["high"], n)
	case "normal_clipped_to_boundary":
		values := s.fill(n, func() float64 { return s.eng.Normal(params["mu"], params["sigma"]) })
		return ClipToBoundary(values, params["low"], params["high"]), nil
	default:
		sample := softwareSamplers[distribution]
		return s.fill(n, func() float64 { return sample(s.eng, params) }), nil
	}
}

// fill 连续抽取n个值
func (s *SoftwareSource) fill(n int, sample func() float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = sample()
	}
	return values
}

// Describe 随机源的可读描述
func (s *SoftwareSource) Describe() string {
	return fmt.Sprintf("SoftwareSource(pcg64, seed=%s)", s.cfg.describeSeed())
}
