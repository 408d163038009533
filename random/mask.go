package random

import (
	"fmt"

	"github.com/samber/lo"
)

// Mask 子集选择掩码
// 功能：在一个逻辑总体中标记当前进程/分片真正需要的位置
// 说明：布尔掩码逐位置标记（true为保留），下标掩码直接列出选中位置
type Mask interface {
	// Count 计算掩码在n个候选位置中选中的数量
	// 说明：布尔掩码长度必须等于n，下标掩码的下标必须落在[0, n)内，否则返回ErrInvalidMask
	Count(n int) (int, error)
	// Apply 从长度为n的采样结果中取出掩码选中的子序列
	Apply(values []float64) []float64
	// PartialShape 计算掩码沿第0轴作用于给定形状后的缩减形状
	PartialShape(shape []int) ([]int, error)
}

// BoolMask 布尔掩码，每个候选位置一个条目
type BoolMask []bool

// Count 选中数量（true的个数）
func (m BoolMask) Count(n int) (int, error) {
	if len(m) != n {
		return 0, fmt.Errorf("%w: boolean mask size (%d) must equal n (%d)", ErrInvalidMask, len(m), n)
	}
	return lo.Count(m, true), nil
}

// Apply 取出true位置上的值
func (m BoolMask) Apply(values []float64) []float64 {
	selected := make([]float64, 0, len(values))
	for i, keep := range m {
		if keep {
			selected = append(selected, values[i])
		}
	}
	return selected
}

// PartialShape 沿第0轴缩减形状
func (m BoolMask) PartialShape(shape []int) ([]int, error) {
	if len(shape) == 0 || len(m) != shape[0] {
		return nil, fmt.Errorf("%w: boolean mask size (%d) must equal the leading axis of shape %v", ErrInvalidMask, len(m), shape)
	}
	return append([]int{lo.Count(m, true)}, shape[1:]...), nil
}

// IndexMask 下标掩码，列出选中的位置
type IndexMask []int

// Count 选中数量（下标个数）
func (m IndexMask) Count(n int) (int, error) {
	for _, idx := range m {
		if idx < 0 || idx >= n {
			return 0, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidMask, idx, n)
		}
	}
	return len(m), nil
}

// Apply 取出下标位置上的值
func (m IndexMask) Apply(values []float64) []float64 {
	return lo.Map(m, func(idx int, _ int) float64 {
		return values[idx]
	})
}

// PartialShape 沿第0轴缩减形状
func (m IndexMask) PartialShape(shape []int) ([]int, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: cannot apply an index mask to a scalar shape", ErrInvalidMask)
	}
	if _, err := m.Count(shape[0]); err != nil {
		return nil, err
	}
	return append([]int{len(m)}, shape[1:]...), nil
}
