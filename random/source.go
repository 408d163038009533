package random

import (
	"fmt"
	"time"
)

// Config 随机源配置
// 功能：描述随机源的种子、并行安全模式与分布式拓扑
// 说明：Seed为nil表示使用环境熵（时间）作为种子，序列不可复现；
// ParallelSafe为true时要求所有rank使用相同的种子（调用方契约，本层不校验，
// 因为核心内部不存在任何跨进程通信通道）
type Config struct {
	Seed         *int64 // 随机数种子，nil表示不可复现的环境种子
	ParallelSafe bool   // 并行安全：抽满后按掩码取子集，保证值与分片方式无关
	Rank         int    // 本进程在分布式拓扑中的序号
	WorldSize    int    // 分布式拓扑的进程总数，0会归一化为1
}

// normalize 填充拓扑默认值（无分布式运行时则为(0, 1)）
func (c Config) normalize() Config {
	if c.WorldSize <= 0 {
		c.WorldSize = 1
	}
	return c
}

// effectiveSeed 计算初始化底层生成器的有效种子
// 算法说明：
// 1. 未指定种子时取当前时间
// 2. 非并行安全模式下种子加上rank偏移，保证各rank得到彼此独立但可复现的序列
func (c Config) effectiveSeed() uint64 {
	if c.Seed == nil {
		return uint64(time.Now().UnixNano())
	}
	seed := *c.Seed
	if !c.ParallelSafe && c.Rank != 0 {
		seed += int64(c.Rank)
		log.Warnf("changing the seed to %d on rank %d", seed, c.Rank)
	}
	return uint64(seed)
}

// describeSeed 种子的可读表示
func (c Config) describeSeed() string {
	if c.Seed == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *c.Seed)
}

// Source 随机源接口
// 功能：从指定分布中产生n个原始采样值
// 说明：实现方持有内部生成器状态，每次Generate按请求确定性地推进状态；
// 接口刻意只列出真正需要的操作，不向底层生成器透传其余方法
type Source interface {
	// Generate 从名为distribution的分布中按params产生n个采样值
	// 说明：n == 0时返回空序列且不消耗生成器状态；参数键集不符返回ErrParameterMismatch
	Generate(distribution string, n int, params Parameters) ([]float64, error)
	// Describe 随机源的可读描述
	Describe() string
}

// NativeSource 原生随机源标记
// 功能：向宿主仿真引擎表明应使用其内建的随机数生成器
// 说明：作为带标签的变体建模，本身没有任何生成行为；
// 任何对Generate的直接调用都是契约违规，返回ErrDelegatedToEngine
type NativeSource struct {
	cfg Config
}

// NewNativeSource 创建原生随机源标记
// 参数：cfg-随机源配置（种子由宿主引擎自行取用）
func NewNativeSource(cfg Config) *NativeSource {
	return &NativeSource{cfg: cfg.normalize()}
}

// Seed 宿主引擎取用的种子（nil表示未指定）
func (s *NativeSource) Seed() *int64 {
	return s.cfg.Seed
}

// Generate 恒定失败，取值必须由宿主引擎完成
func (s *NativeSource) Generate(distribution string, n int, params Parameters) ([]float64, error) {
	return nil, fmt.Errorf("%w: cannot generate %q directly", ErrDelegatedToEngine, distribution)
}

// Describe 随机源的可读描述
func (s *NativeSource) Describe() string {
	return fmt.Sprintf("NativeSource(seed=%s)", s.cfg.describeSeed())
}
