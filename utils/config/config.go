package config

import "fmt"

// RuntimeConfig 运行时配置
// 功能：存储抽样任务运行时的配置信息
// 说明：将YAML配置转换为运行时可用的配置对象，填充默认值并做基本校验
type RuntimeConfig struct {
	All Config // 全部配置
	RNG RNG    // 随机源配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 参数：config-原始配置对象
// 返回：初始化的运行时配置指针，配置非法时返回错误
// 算法说明：
// 1. 后端缺省为software，任务名缺省为job0
// 2. 校验每个抽样请求：分布名必填，mask与indices不可同时设置
func NewRuntimeConfig(config Config) (*RuntimeConfig, error) {
	rc := &RuntimeConfig{}
	rc.All = config
	rc.RNG = config.RNG
	if rc.RNG.Backend == "" {
		rc.RNG.Backend = "software"
	}
	if rc.All.Job == "" {
		rc.All.Job = "job0"
	}
	for i, d := range config.Draws {
		if d.Distribution == "" {
			return nil, fmt.Errorf("draws[%d]: distribution must be specified", i)
		}
		if len(d.Mask) > 0 && len(d.Indices) > 0 {
			return nil, fmt.Errorf("draws[%d]: mask and indices are mutually exclusive", i)
		}
	}
	return rc, nil
}
