package game

import (
	"github.com/google/uuid"

	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/ecs"
)

// RaceState 存储一局比赛的全部可变状态
//
// 由 RaceScene 持有并传给各个系统，只在 ebiten 的 Update goroutine 上访问。
// 不变量：
//   - Running 为 true 时 Racers 恰好有 config.Lanes 个
//   - 每局比赛最多一个 Winner
//   - Running 为 false 后比赛循环不再移动任何选手
type RaceState struct {
	Running  bool         // 比赛是否进行中
	Winner   ecs.EntityID // 胜者，0 表示尚无胜者
	Count    int          // 倒计时当前数字
	BetColor string       // 玩家下注的颜色，空字符串表示未下注

	StartX  float64 // 起点线 X
	FinishX float64 // 终点线 X

	Racers []ecs.EntityID // 按赛道顺序排列的选手

	// Epoch 每次开始倒计时或重开时递增
	// 已安排的回调捕获当时的 Epoch，执行时不一致则直接返回
	Epoch uint64

	// RaceID 仅用于日志关联
	RaceID string
}

// NewRaceState 创建初始比赛状态
func NewRaceState() *RaceState {
	return &RaceState{
		Count:   3,
		StartX:  config.StartX(),
		FinishX: config.FinishX(),
		Racers:  make([]ecs.EntityID, 0, config.Lanes),
	}
}

// BeginCountdown 为新一轮倒计时重置状态并返回新的 Epoch
func (rs *RaceState) BeginCountdown() uint64 {
	rs.Running = false
	rs.Winner = 0
	rs.Count = 3
	rs.RaceID = uuid.NewString()
	rs.Epoch++
	return rs.Epoch
}

// Halt 立即停止当前比赛（不宣布胜者），并让所有已安排的回调失效
func (rs *RaceState) Halt() {
	rs.Running = false
	rs.Winner = 0
	rs.Epoch++
}

// IsCurrent 判断回调捕获的 Epoch 是否仍然有效
func (rs *RaceState) IsCurrent(epoch uint64) bool {
	return rs.Epoch == epoch
}

// HasWinner 返回本局是否已产生胜者
func (rs *RaceState) HasWinner() bool {
	return rs.Winner != 0
}

// HasBet 返回玩家是否下注
func (rs *RaceState) HasBet() bool {
	return rs.BetColor != ""
}
