package permit

import "sync"

// unitLocks 按 unit_id 串行化发证的 check-then-act 窗口。
// 容量快照是读-算-写三步，不加锁时两个并发 Issue 可能都看到“有余量”。
// 锁只覆盖单进程；多实例部署需要换成存储层的条件写。
type unitLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUnitLocks() *unitLocks {
	return &unitLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *unitLocks) get(unitID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[unitID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[unitID] = m
	}
	return m
}
