package utils

// Product 计算形状的元素总数。
// 空形状的乘积为1（对应标量）。
func Product(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}
