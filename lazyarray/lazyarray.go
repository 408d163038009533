// 惰性数组，只在真正需要时才从随机分布中实例化数组区域
package lazyarray

import (
	"fmt"
	"slices"

	"github.com/tsinghua-fib-lab/simrand-oss/random"
	"github.com/tsinghua-fib-lab/simrand-oss/utils"
)

// LazyArray 惰性数组
// 功能：描述一个逻辑形状的随机数组，但在Evaluate/PartiallyEvaluate之前
// 不产生任何值
// 说明：每次求值都会推进绑定分布的随机流，两次Evaluate得到的不是同一份数据；
// 需要可复现的局部实例化时应配合并行安全采样器使用
type LazyArray struct {
	dist  *random.RandomDistribution
	shape []int
}

// New 创建惰性数组
// 参数：dist-取值来源的随机分布；shape-完整的逻辑形状
func New(dist *random.RandomDistribution, shape []int) (*LazyArray, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("lazyarray: shape must have at least one axis")
	}
	for _, s := range shape {
		if s < 0 {
			return nil, fmt.Errorf("lazyarray: invalid shape %v", shape)
		}
	}
	return &LazyArray{dist: dist, shape: slices.Clone(shape)}, nil
}

// Shape 完整的逻辑形状
func (a *LazyArray) Shape() []int {
	return slices.Clone(a.shape)
}

// Size 完整形状的元素总数
func (a *LazyArray) Size() int {
	return utils.Product(a.shape)
}

// Evaluate 实例化整个数组
func (a *LazyArray) Evaluate() (random.Array, error) {
	return a.dist.LazilyEvaluate(nil, a.shape)
}

// PartiallyEvaluate 只实例化掩码选中的区域
// 参数：mask-沿第0轴的子集掩码
// 返回：掩码缩减形状的数组
func (a *LazyArray) PartiallyEvaluate(mask random.Mask) (random.Array, error) {
	return a.dist.LazilyEvaluate(mask, a.shape)
}
