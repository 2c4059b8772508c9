package game

import (
	"math/rand/v2"
)

// StepSource 提供每个 tick 的随机步长
type StepSource interface {
	// Step 返回 [min, max] 闭区间内均匀分布的整数
	Step(min, max int) int
}

// RandStepSource 基于 math/rand/v2 的步长来源
type RandStepSource struct {
	rng *rand.Rand
}

// NewRandStepSource 用给定种子创建步长来源，相同种子产生相同序列
func NewRandStepSource(seed uint64) *RandStepSource {
	return &RandStepSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Step 返回 [min, max] 内的随机整数，max < min 时返回 min
func (s *RandStepSource) Step(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.IntN(max-min+1)
}
