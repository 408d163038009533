// 随机数引擎，包装了golang.org/x/exp/rand，提供各类科学分布的随机数生成方法
package randengine

import (
	"flag"
	"log"
	"math"

	"golang.org/x/exp/rand"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset") // 种子偏移量，用于调整随机数生成
)

// Engine 随机数引擎
// 功能：提供高质量的随机数生成功能，支持多种科学分布
// 说明：基于golang.org/x/exp/rand库，由单一顺序调用方驱动（非线程安全）
type Engine struct {
	*rand.Rand // 底层随机数生成器
}

// New 创建随机数引擎
// 功能：初始化一个新的随机数引擎实例
// 参数：seed-随机数种子
// 返回：随机数引擎指针
// 说明：种子偏移量允许在不修改代码的情况下调整随机数序列
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed + *seedOffset))}
}

// PTrue 以指定概率返回true
// 功能：根据给定概率返回布尔值
// 参数：p-返回true的概率（0.0到1.0之间）
// 返回：true或false
// 说明：实现伯努利分布，用于模拟概率事件
func (e *Engine) PTrue(p float64) bool {
	return e.Float64() < p
}

// Uniform 均匀分布
// 功能：生成[low, high)范围内的均匀分布随机数
// 参数：low-下界；high-上界（不包含）
// 返回：随机浮点数
func (e *Engine) Uniform(low, high float64) float64 {
	return low + (high-low)*e.Float64()
}

// UniformInt 均匀整数分布
// 功能：生成[low, high)范围内的均匀分布随机整数
// 参数：low-下界；high-上界（不包含）
// 返回：随机整数
func (e *Engine) UniformInt(low, high int64) int64 {
	if high <= low {
		log.Panicf("randengine: UniformInt: high (%d) must be greater than low (%d)", high, low)
	}
	return low + e.Int63n(high-low)
}

// Normal 正态分布
// 功能：生成均值为mu、标准差为sigma的正态分布随机数
// 参数：mu-均值；sigma-标准差
// 返回：随机浮点数
func (e *Engine) Normal(mu, sigma float64) float64 {
	return mu + sigma*e.NormFloat64()
}

// LogNormal 对数正态分布
// 功能：生成对数均值为mu、对数标准差为sigma的对数正态分布随机数
// 参数：mu-对数均值；sigma-对数标准差
// 返回：随机浮点数（恒为正）
func (e *Engine) LogNormal(mu, sigma float64) float64 {
	return math.Exp(e.Normal(mu, sigma))
}

// Exponential 指数分布
// 功能：生成均值为beta的指数分布随机数
// 参数：beta-分布均值（速率的倒数）
// 返回：随机浮点数
func (e *Engine) Exponential(beta float64) float64 {
	return beta * e.ExpFloat64()
}

// Gamma 伽马分布
// 功能：生成形状为k、尺度为theta的伽马分布随机数
// 参数：k-形状参数；theta-尺度参数
// 返回：随机浮点数
// 算法说明：
// 1. k < 1时利用boost性质：Gamma(k) = Gamma(k+1) * U^(1/k)
// 2. k >= 1时采用Marsaglia-Tsang挤压法：
//   - d = k - 1/3，c = 1/sqrt(9d)
//   - 抽取标准正态x，令v = (1+c*x)^3，v <= 0则重抽
//   - 接受条件：u < 1 - 0.0331*x^4 或 log(u) < x^2/2 + d*(1-v+log(v))
func (e *Engine) Gamma(k, theta float64) float64 {
	if k <= 0 || theta <= 0 {
		log.Panicf("randengine: Gamma: k (%f) and theta (%f) must be positive", k, theta)
	}
	if k < 1 {
		return e.Gamma(k+1, theta) * math.Pow(e.Float64(), 1/k)
	}
	d := k - 1.0/3.0
	c := 1 / math.Sqrt(9*d)
	for {
		x := e.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := e.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v * theta
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v * theta
		}
	}
}

// Poisson 泊松分布
// 功能：生成均值为lambda的泊松分布随机数
// 参数：lambda-事件发生率
// 返回：随机非负整数（以float64表示）
// 算法说明：
// 1. 利用泊松分布的可加性将大lambda拆分为若干段，避免exp(-lambda)下溢
// 2. 每段采用Knuth乘积法：连乘均匀随机数直到乘积小于exp(-lambda)
func (e *Engine) Poisson(lambda float64) float64 {
	if lambda <= 0 {
		return 0
	}
	n := int64(0)
	for lambda > 500 {
		n += e.poissonKnuth(500)
		lambda -= 500
	}
	n += e.poissonKnuth(lambda)
	return float64(n)
}

func (e *Engine) poissonKnuth(lambda float64) int64 {
	l := math.Exp(-lambda)
	k := int64(0)
	p := 1.0
	for {
		p *= e.Float64()
		if p <= l {
			return k
		}
		k++
	}
}

// Binomial 二项分布
// 功能：生成n次独立试验、单次成功概率为p的二项分布随机数
// 参数：n-试验次数；p-单次成功概率
// 返回：成功次数（以float64表示）
// 说明：按n次伯努利试验求和实现，适用于仿真场景的中等n规模
func (e *Engine) Binomial(n int64, p float64) float64 {
	if n < 0 {
		log.Panicf("randengine: Binomial: n (%d) must be non-negative", n)
	}
	k := int64(0)
	for i := int64(0); i < n; i++ {
		if e.PTrue(p) {
			k++
		}
	}
	return float64(k)
}

// VonMises 冯·米塞斯分布（圆上正态分布）
// 功能：生成中心为mu、集中度为kappa的冯·米塞斯分布随机角度
// 参数：mu-分布中心（弧度）；kappa-集中度
// 返回：(-π, π]范围内的随机角度
// 算法说明：
// 1. kappa极小时退化为圆上均匀分布
// 2. 否则采用Best-Fisher包络拒绝法：
//   - tau = 1 + sqrt(1+4κ²)，rho = (tau - sqrt(2tau)) / 2κ，r = (1+rho²) / 2rho
//   - 抽取u1得f = (1+r*cos(πu1)) / (r+cos(πu1))，c = κ(r-f)
//   - 接受条件：u2 < c(2-c) 或 u2 <= c*exp(1-c)
//   - 接受后按u3的符号取mu±acos(f)并回卷到(-π, π]
func (e *Engine) VonMises(mu, kappa float64) float64 {
	if kappa < 1e-8 {
		return wrapAngle(mu + math.Pi*(2*e.Float64()-1))
	}
	tau := 1 + math.Sqrt(1+4*kappa*kappa)
	rho := (tau - math.Sqrt(2*tau)) / (2 * kappa)
	r := (1 + rho*rho) / (2 * rho)
	for {
		u1 := e.Float64()
		z := math.Cos(math.Pi * u1)
		f := (1 + r*z) / (r + z)
		c := kappa * (r - f)
		u2 := e.Float64()
		if u2 < c*(2-c) || u2 <= c*math.Exp(1-c) {
			theta := math.Acos(f)
			if e.Float64() <= 0.5 {
				theta = -theta
			}
			return wrapAngle(mu + theta)
		}
	}
}

// wrapAngle 将角度回卷到[-π, π)
func wrapAngle(x float64) float64 {
	x = math.Mod(x+math.Pi, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x - math.Pi
}
