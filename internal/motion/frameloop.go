package motion

import (
	"sort"
	"sync"
	"time"
)

// FrameLoop fans one display-refresh tick out to every registered callback.
// The game loop calls Tick once per update; components register with
// OnFrame and keep the returned cancel func.
type FrameLoop struct {
	mu   sync.Mutex
	next int
	subs map[int]func(time.Time)
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{subs: make(map[int]func(time.Time))}
}

// OnFrame registers fn. The returned cancel is safe to call more than once.
func (l *FrameLoop) OnFrame(fn func(time.Time)) (cancel func()) {
	l.mu.Lock()
	id := l.next
	l.next++
	l.subs[id] = fn
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.subs, id)
			l.mu.Unlock()
		})
	}
}

// Tick runs every callback registered before the call, in registration
// order. Callbacks may register or cancel during the tick.
func (l *FrameLoop) Tick(now time.Time) {
	l.mu.Lock()
	ids := make([]int, 0, len(l.subs))
	for id := range l.subs {
		ids = append(ids, id)
	}
	l.mu.Unlock()
	sort.Ints(ids)

	for _, id := range ids {
		l.mu.Lock()
		fn, ok := l.subs[id]
		l.mu.Unlock()
		if ok {
			fn(now)
		}
	}
}

// Len is the number of registered callbacks.
func (l *FrameLoop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}
