package randengine

const (
	mtN       = 624
	mtM       = 397
	mtMatrixA = 0x9908b0df
	mtUpper   = 0x80000000
	mtLower   = 0x7fffffff
)

// MT19937 梅森旋转算法随机数源
// 功能：提供与NumPy的RandomState完全一致的MT19937随机数序列
// 说明：实现golang.org/x/exp/rand的Source接口，可直接作为gonum分布采样器的底层源；
// 用于需要和参考实现逐位对齐的场景
type MT19937 struct {
	mt  [mtN]uint32
	mti int
}

// NewMT19937 创建梅森旋转随机数源
// 参数：seed-随机数种子（取低32位，与NumPy标量种子一致）
// 返回：随机数源指针
func NewMT19937(seed uint64) *MT19937 {
	m := &MT19937{}
	m.Seed(seed)
	return m
}

// Seed 重置种子
// 算法说明：采用Knuth乘数1812433253的初始化递推，与NumPy的标量种子初始化一致
func (m *MT19937) Seed(seed uint64) {
	m.mt[0] = uint32(seed)
	for i := 1; i < mtN; i++ {
		m.mt[i] = 1812433253*(m.mt[i-1]^(m.mt[i-1]>>30)) + uint32(i)
	}
	m.mti = mtN
}

// Uint32 生成32位随机数
func (m *MT19937) Uint32() uint32 {
	var y uint32
	mag01 := [2]uint32{0, mtMatrixA}

	if m.mti >= mtN {
		var kk int
		for kk = 0; kk < mtN-mtM; kk++ {
			y = (m.mt[kk] & mtUpper) | (m.mt[kk+1] & mtLower)
			m.mt[kk] = m.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
		}
		for ; kk < mtN-1; kk++ {
			y = (m.mt[kk] & mtUpper) | (m.mt[kk+1] & mtLower)
			m.mt[kk] = m.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
		}
		y = (m.mt[mtN-1] & mtUpper) | (m.mt[0] & mtLower)
		m.mt[mtN-1] = m.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
		m.mti = 0
	}

	y = m.mt[m.mti]
	m.mti++

	// tempering
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}

// Uint64 生成64位随机数（高32位在前）
func (m *MT19937) Uint64() uint64 {
	hi := uint64(m.Uint32())
	lo := uint64(m.Uint32())
	return hi<<32 | lo
}
