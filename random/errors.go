package random

import "errors"

// 错误分类，调用方可用errors.Is判别
var (
	// ErrUnknownDistribution 分布名不在目录中，或当前随机源不支持该分布
	ErrUnknownDistribution = errors.New("unknown distribution")
	// ErrParameterMismatch 参数键集与目录要求不一致，或位置参数个数错误
	ErrParameterMismatch = errors.New("incorrect parameterization of random distribution")
	// ErrInvalidSampleCount 请求的采样数为负
	ErrInvalidSampleCount = errors.New("the sample number must be positive")
	// ErrInvalidMask 布尔掩码长度与请求数不一致，或掩码下标越界
	ErrInvalidMask = errors.New("invalid mask")
	// ErrRedrawLimitExceeded 截断分布的拒绝采样超过重抽预算，通常意味着分布参数配置不当
	ErrRedrawLimitExceeded = errors.New("maximum number of redraws exceeded, check the parameterization of your distribution")
	// ErrDelegatedToEngine 原生随机源只是一个标记，取值必须由宿主仿真引擎自行完成
	ErrDelegatedToEngine = errors.New("native rng must be handled by the simulation engine")
)
