package random

import (
	"fmt"
	"slices"

	"github.com/tsinghua-fib-lab/simrand-oss/utils"
)

// RandomDistribution 随机分布门面
// 功能：绑定一个分布、一组参数和一个采样器，对外提供Next与LazilyEvaluate
// 说明：构造后不可变；绑定的采样器在每次抽取时推进其内部生成器状态，
// 多个分布可以合法地共享同一个采样器（共同消费一条随机流）
type RandomDistribution struct {
	Name    string     // 分布名
	Params  Parameters // 分布参数
	sampler *Sampler   // 绑定的采样器
}

// NewDistribution 以命名参数创建随机分布
// 参数：name-分布名；sampler-绑定的采样器；params-命名参数（键集必须与目录完全一致）
// 返回：随机分布指针；分布名未注册返回ErrUnknownDistribution，
// 参数键集不符返回ErrParameterMismatch（均在触碰生成器状态之前）
func NewDistribution(name string, sampler *Sampler, params Parameters) (*RandomDistribution, error) {
	names, err := ParameterNamesFor(name)
	if err != nil {
		return nil, err
	}
	if err := params.validate(names); err != nil {
		return nil, err
	}
	return &RandomDistribution{Name: name, Params: params, sampler: sampler}, nil
}

// NewDistributionPos 以位置参数创建随机分布
// 参数：name-分布名；sampler-绑定的采样器；values-按目录声明顺序排列的参数值
// 说明：位置参数与命名参数通过两个构造函数从结构上隔离，无法混用；
// 个数与目录声明不符返回ErrParameterMismatch
func NewDistributionPos(name string, sampler *Sampler, values ...float64) (*RandomDistribution, error) {
	names, err := ParameterNamesFor(name)
	if err != nil {
		return nil, err
	}
	if len(values) != len(names) {
		return nil, fmt.Errorf("%w: expected %d positional parameters for %q (%v), got %d",
			ErrParameterMismatch, len(names), name, names, len(values))
	}
	params := make(Parameters, len(names))
	for i, n := range names {
		params[n] = values[i]
	}
	return &RandomDistribution{Name: name, Params: params, sampler: sampler}, nil
}

// Next 从分布中抽取n个随机数
// 参数：n-请求数量；mask-子集掩码（可为nil），掩码语义见Sampler.Draw
func (d *RandomDistribution) Next(n int, mask Mask) ([]float64, error) {
	return d.sampler.Draw(d.Name, d.Params, n, mask)
}

// NextOne 从分布中抽取单个随机数
func (d *RandomDistribution) NextOne() (float64, error) {
	return d.sampler.DrawOne(d.Name, d.Params)
}

// String 分布的可读表示
func (d *RandomDistribution) String() string {
	return fmt.Sprintf("RandomDistribution(%q, %v, %s)", d.Name, d.Params, d.sampler.Describe())
}

// Array 形状化的采样结果
// 说明：Shape为nil表示标量（Data长度为1）
type Array struct {
	Shape []int     // 形状，nil表示标量
	Data  []float64 // 按行主序排列的值
}

// Scalar 取标量值
func (a Array) Scalar() float64 {
	return a.Data[0]
}

// Size 元素总数
func (a Array) Size() int {
	return len(a.Data)
}

// LazilyEvaluate 惰性生成指定形状（或掩码缩减形状）的采样数组
// 参数：mask-沿第0轴的子集掩码（可为nil）；shape-完整的逻辑形状
// 返回：无掩码时为shape形状的数组（元素总数为1时退化为标量）；
// 有掩码时为掩码缩减形状的数组
// 算法说明：
// 1. 无掩码：抽取prod(shape)个值后整形
// 2. 有掩码：将第0轴掩码展开为逐元素掩码后经Next抽取——并行安全模式
// 下抽满完整形状再取子集（值与分片方式无关），非并行安全模式下只抽取
// 掩码选中的数量（绝不生成调用方用不到的值）
// 说明：供外部惰性数组抽象按需实例化局部区域时调用
func (d *RandomDistribution) LazilyEvaluate(mask Mask, shape []int) (Array, error) {
	if mask == nil {
		n := utils.Product(shape)
		values, err := d.Next(n, nil)
		if err != nil {
			return Array{}, err
		}
		if n == 1 {
			return Array{Data: values}, nil
		}
		return Array{Shape: slices.Clone(shape), Data: values}, nil
	}
	reduced, err := mask.PartialShape(shape)
	if err != nil {
		return Array{}, err
	}
	expanded, err := expandMask(mask, shape)
	if err != nil {
		return Array{}, err
	}
	values, err := d.Next(utils.Product(shape), expanded)
	if err != nil {
		return Array{}, err
	}
	return Array{Shape: reduced, Data: values}, nil
}

// expandMask 将沿第0轴的掩码展开为整个扁平数组上的逐元素掩码
// 说明：选中一行即选中该行的全部元素
func expandMask(mask Mask, shape []int) (Mask, error) {
	if _, err := mask.Count(shape[0]); err != nil {
		return nil, err
	}
	rowSize := utils.Product(shape[1:])
	switch m := mask.(type) {
	case BoolMask:
		expanded := make(BoolMask, 0, len(m)*rowSize)
		for _, keep := range m {
			for i := 0; i < rowSize; i++ {
				expanded = append(expanded, keep)
			}
		}
		return expanded, nil
	case IndexMask:
		expanded := make(IndexMask, 0, len(m)*rowSize)
		for _, idx := range m {
			for i := 0; i < rowSize; i++ {
				expanded = append(expanded, idx*rowSize+i)
			}
		}
		return expanded, nil
	default:
		return nil, fmt.Errorf("%w: unsupported mask type %T", ErrInvalidMask, mask)
	}
}
