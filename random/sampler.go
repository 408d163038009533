package random

import (
	"fmt"

	"github.com/samber/lo"
)

// Sampler 并行安全采样器
// 功能：包装一个随机源，提供标量/数组两种抽样模式与掩码子集语义
// 说明：并行安全模式下总是抽满整个请求数再按掩码取子集，
// 使得某个逻辑位置得到的值与总体如何分片无关（代价是为未选中的位置
// 生成并丢弃值）；非并行安全模式下先将请求数缩减为掩码选中的数量再抽取，
// 只生成需要的值，各rank抽取量不同，全局序列因此不具分片无关性（以可复现性换效率）
type Sampler struct {
	src Source
	cfg Config
}

// NewSampler 创建采样器
// 参数：src-被包装的随机源；cfg-随机源构造时使用的同一配置
func NewSampler(src Source, cfg Config) *Sampler {
	return &Sampler{src: src, cfg: cfg.normalize()}
}

// NewSoftwareSampler 创建软件随机源采样器
func NewSoftwareSampler(cfg Config) *Sampler {
	return NewSampler(NewSoftwareSource(cfg), cfg)
}

// NewLibrarySampler 创建第三方库随机源采样器
// 参数：algorithm-生成器算法令牌（空值默认pcg64）；cfg-随机源配置
func NewLibrarySampler(algorithm string, cfg Config) (*Sampler, error) {
	src, err := NewLibrarySource(algorithm, cfg)
	if err != nil {
		return nil, err
	}
	return NewSampler(src, cfg), nil
}

// Source 被包装的随机源
func (s *Sampler) Source() Source {
	return s.src
}

// ParallelSafe 是否为并行安全模式
func (s *Sampler) ParallelSafe() bool {
	return s.cfg.ParallelSafe
}

// Draw 按指定分布抽取n个随机数
// 参数：distribution-分布名（空值默认[0, 1)均匀分布）；params-分布参数；
// n-请求数量；mask-子集掩码（可为nil）
// 返回：采样值序列
// 算法说明：
// 1. n == 0：返回空序列，不与生成器交互
// 2. n < 0：返回ErrInvalidSampleCount
// 3. 提供掩码且非并行安全：请求数缩减为掩码选中数量后再抽取
// 4. 提供掩码且并行安全：抽满n个后按掩码取子序列
func (s *Sampler) Draw(distribution string, params Parameters, n int, mask Mask) ([]float64, error) {
	distribution, params = withUniformDefault(distribution, params)
	if n == 0 {
		return []float64{}, nil
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, n)
	}
	count := n
	if mask != nil {
		selected, err := mask.Count(n)
		if err != nil {
			return nil, err
		}
		if !s.cfg.ParallelSafe {
			count = selected
		}
	}
	values, err := s.src.Generate(distribution, count, params)
	if err != nil {
		return nil, err
	}
	if s.cfg.ParallelSafe && mask != nil {
		// 去掉属于其他进程的随机数
		values = mask.Apply(values)
	}
	return values, nil
}

// DrawOne 按指定分布抽取单个随机数（标量模式）
// 说明：恰好消耗一次生成器抽取
func (s *Sampler) DrawOne(distribution string, params Parameters) (float64, error) {
	distribution, params = withUniformDefault(distribution, params)
	values, err := s.src.Generate(distribution, 1, params)
	if err != nil {
		return 0, err
	}
	return values[0], nil
}

// Next 抽取n个[0, 1)均匀分布随机数
func (s *Sampler) Next(n int, mask Mask) ([]float64, error) {
	return s.Draw("", nil, n, mask)
}

// NextOne 抽取单个[0, 1)均匀分布随机数
func (s *Sampler) NextOne() (float64, error) {
	return s.DrawOne("", nil)
}

// Describe 采样器的可读描述
func (s *Sampler) Describe() string {
	return fmt.Sprintf("%s for rank %d (world size %d), %s",
		s.src.Describe(), s.cfg.Rank, s.cfg.WorldSize,
		lo.Ternary(s.cfg.ParallelSafe, "parallel safe", "not parallel safe"))
}

// withUniformDefault 未指定分布时默认为[0, 1)均匀分布
func withUniformDefault(distribution string, params Parameters) (string, Parameters) {
	if distribution == "" {
		distribution = "uniform"
		if params == nil {
			params = Parameters{"low": 0.0, "high": 1.0}
		}
	}
	return distribution, params
}
