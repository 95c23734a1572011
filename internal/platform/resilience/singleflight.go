package resilience

import "sync"

// SingleFlight collapses concurrent calls for one key into a single run.
// The zero value is ready to use.
type SingleFlight struct {
	mu      sync.Mutex
	pending map[string]*pendingCall
}

type pendingCall struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn unless a call for key is already in progress, in which case it
// waits for that call. shared reports whether the result came from another
// caller's run.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (val any, err error, shared bool) {
	g.mu.Lock()
	if g.pending == nil {
		g.pending = make(map[string]*pendingCall)
	}
	if c, ok := g.pending[key]; ok {
		g.mu.Unlock()
		<-c.done
		return c.val, c.err, true
	}
	c := &pendingCall{done: make(chan struct{})}
	g.pending[key] = c
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.pending, key)
		g.mu.Unlock()
		close(c.done)
	}()

	c.val, c.err = fn()
	return c.val, c.err, false
}
