// 随机数抽象层，为可互换的随机源提供统一的分布采样接口
package random

import (
	"fmt"

	"github.com/samber/lo"
)

// DistributionSpec 随机分布的签名
// 功能：描述一个分布的名称及其参数名的固定顺序
// 说明：目录中的条目不可变，分布名全局唯一
type DistributionSpec struct {
	Name           string   // 分布名
	ParameterNames []string // 参数名（有序）
}

// availableDistributions 分布目录
// 说明：封闭的静态表，进程启动后只读；参数命名与Wikipedia的惯用记号一致
var availableDistributions = []DistributionSpec{
	{"binomial", []string{"n", "p"}},
	{"gamma", []string{"k", "theta"}},
	{"exponential", []string{"beta"}},
	{"lognormal", []string{"mu", "sigma"}},
	{"normal", []string{"mu", "sigma"}},
	{"normal_clipped", []string{"mu", "sigma", "low", "high"}},
	{"normal_clipped_to_boundary", []string{"mu", "sigma", "low", "high"}},
	{"poisson", []string{"lambda"}},
	{"uniform", []string{"low", "high"}},
	{"uniform_int", []string{"low", "high"}},
	{"vonmises", []string{"mu", "kappa"}},
}

var distributionIndex = lo.SliceToMap(availableDistributions, func(d DistributionSpec) (string, DistributionSpec) {
	return d.Name, d
})

// AvailableDistributions 获取分布目录
// 返回：全部分布签名（目录序）
func AvailableDistributions() []DistributionSpec {
	return availableDistributions
}

// ParameterNamesFor 查询分布的参数名
// 参数：name-分布名
// 返回：参数名（有序），分布未注册时返回ErrUnknownDistribution
func ParameterNamesFor(name string) ([]string, error) {
	spec, ok := distributionIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
	}
	return spec.ParameterNames, nil
}

// Parameters 分布参数，参数名到取值的映射
type Parameters map[string]float64

// validate 校验参数键集与要求的参数名完全一致
// 说明：不允许缺失、多余或改名的键，也不提供默认值
func (p Parameters) validate(names []string) error {
	if len(p) != len(names) {
		return fmt.Errorf("%w: expected %v, got %v", ErrParameterMismatch, names, lo.Keys(p))
	}
	for _, name := range names {
		if _, ok := p[name]; !ok {
			return fmt.Errorf("%w: expected %v, got %v", ErrParameterMismatch, names, lo.Keys(p))
		}
	}
	return nil
}
