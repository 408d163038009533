package random

import (
	"github.com/samber/lo"
)

// MaxRedraws 截断分布拒绝采样的重抽预算
const MaxRedraws = 1000

// ClippedScalar 有界拒绝采样（标量）
// 功能：反复抽取单个值直到落入[low, high]
// 参数：gen-原始（未截断）采样函数；low/high-截断区间
// 返回：区间内的采样值；超过重抽预算返回ErrRedrawLimitExceeded
func ClippedScalar(gen func() float64, low, high float64) (float64, error) {
	res := gen()
	for iterations := 0; res < low || res > high; iterations++ {
		if iterations >= MaxRedraws {
			return 0, ErrRedrawLimitExceeded
		}
		res = gen()
	}
	return res, nil
}

// Clipped 有界拒绝采样（数组）
// 功能：抽取n个值，将落在[low, high]之外的位置反复重抽至全部合法
// 参数：gen-原始采样函数，gen(k)返回k个未截断的值；low/high-截断区间；n-目标数量
// 返回：n个区间内的采样值；超过重抽预算返回ErrRedrawLimitExceeded
// 算法说明：
// 1. 首轮抽满n个，记录越界位置集合
// 2. 每轮只重抽越界位置数量的新值并填回原位置
// 3. 下一轮的越界集合只从本轮新抽的值中重算，已合法的位置不再检查
// 4. 越界集合为空或达到重抽预算时终止
// 说明：重抽成本正比于不断缩小的越界子集，而非整个数组
func Clipped(gen func(int) []float64, low, high float64, n int) ([]float64, error) {
	res := gen(n)
	invalid := make([]int, 0)
	for i, v := range res {
		if v < low || v > high {
			invalid = append(invalid, i)
		}
	}
	for iterations := 0; len(invalid) > 0; iterations++ {
		if iterations >= MaxRedraws {
			return nil, ErrRedrawLimitExceeded
		}
		redrawn := gen(len(invalid))
		still := make([]int, 0, len(invalid))
		for j, idx := range invalid {
			res[idx] = redrawn[j]
			if redrawn[j] < low || redrawn[j] > high {
				still = append(still, idx)
			}
		}
		invalid = still
	}
	return res, nil
}

// ClipToBoundary 边界钳位截断
// 功能：将越界值直接设置为最近的边界
// 说明：纯确定性变换，不重抽也不失败；文献中部分模型使用该模式
func ClipToBoundary(values []float64, low, high float64) []float64 {
	return lo.Map(values, func(v float64, _ int) float64 {
		return lo.Clamp(v, low, high)
	})
}
