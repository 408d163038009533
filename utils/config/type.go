package config

// RNG 随机源配置项
// 功能：定义随机源的后端、算法、种子与分布式拓扑
// 说明：parallel_safe为true时所有rank必须配置相同的种子（调用方契约）
type RNG struct {
	Backend      string `yaml:"backend"`             // 后端（可选项：software library native）
	Algorithm    string `yaml:"algorithm,omitempty"` // library后端的生成器算法（pcg64、mt19937）
	Seed         *int64 `yaml:"seed,omitempty"`      // 随机数种子，缺省表示环境熵
	ParallelSafe bool   `yaml:"parallel_safe,omitempty"`
	Rank         int    `yaml:"rank,omitempty"`       // 本进程序号
	WorldSize    int    `yaml:"world_size,omitempty"` // 进程总数
}

// Draw 一次抽样请求的配置项
// 说明：mask与indices至多设置其一；shape设置时按惰性求值路径生成
type Draw struct {
	Distribution string             `yaml:"distribution"`      // 分布名
	Parameters   map[string]float64 `yaml:"parameters"`        // 分布参数
	N            int                `yaml:"n,omitempty"`       // 请求数量
	Shape        []int              `yaml:"shape,omitempty"`   // 惰性求值的完整形状（优先于n）
	Mask         []bool             `yaml:"mask,omitempty"`    // 布尔掩码
	Indices      []int              `yaml:"indices,omitempty"` // 下标掩码
}

// Config YAML配置文件的根结构
type Config struct {
	Job   string `yaml:"job"` // 任务名，用于日志标识
	RNG   RNG    `yaml:"rng"`
	Draws []Draw `yaml:"draws"`
}
