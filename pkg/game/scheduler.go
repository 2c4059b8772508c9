package game

import (
	"container/heap"
	"time"
)

// Timer 是系统用来安排延迟回调的抽象
// 生产环境与测试都使用 Scheduler，测试中手动推进时间
type Timer interface {
	// After 在 delay 之后调用 fn（相对于当前虚拟时间）
	After(delay time.Duration, fn func())
}

// scheduledTask 一个待执行的回调
type scheduledTask struct {
	due time.Duration
	seq uint64 // 同一时刻按安排顺序执行
	fn  func()
}

// taskQueue 按 (due, seq) 排序的最小堆
type taskQueue []*scheduledTask

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}
func (q taskQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x interface{}) { *q = append(*q, x.(*scheduledTask)) }
func (q *taskQueue) Pop() interface{} {
	old := *q
	n := len(old)
	task := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return task
}

// Scheduler 虚拟时钟定时器
//
// 所有回调都在调用 Advance 的 goroutine 上执行（即 ebiten 的 Update），
// 不需要加锁。回调内部安排的新回调如果在本次 Advance 的时间窗口内到期，
// 会在同一次 Advance 中执行，因此 35ms 的 tick 在 60 TPS 下依然准确。
//
// 没有取消操作：过期的回调自己检查状态（见 RaceState.Epoch）后直接返回。
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

// NewScheduler 创建一个时间从 0 开始的调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		queue: make(taskQueue, 0),
	}
}

// After 在当前虚拟时间 + delay 时执行 fn
// delay 为负数时按 0 处理
func (s *Scheduler) After(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.seq++
	heap.Push(&s.queue, &scheduledTask{
		due: s.now + delay,
		seq: s.seq,
		fn:  fn,
	})
}

// Advance 推进虚拟时间 dt，并按到期顺序执行所有到期回调
func (s *Scheduler) Advance(dt time.Duration) {
	target := s.now + dt
	for s.queue.Len() > 0 && s.queue[0].due <= target {
		task := heap.Pop(&s.queue).(*scheduledTask)
		s.now = task.due
		task.fn()
	}
	s.now = target
}

// Now 返回当前虚拟时间
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending 返回尚未执行的回调数量
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}
