// Package syncx holds small concurrency helpers shared by the client.
package syncx

import "sync"

// Latest guards state updates fed by asynchronous fetches that are never
// cancelled: each fetch takes a ticket via Begin, and commits its result only
// if no newer fetch started in the meantime. Out-of-order arrivals are
// discarded, so a stale response cannot overwrite fresher state.
type Latest struct {
	mu  sync.Mutex
	seq uint64
}

// Begin registers a new fetch and returns its commit check. The returned
// func reports whether this fetch is still the current one; callers must
// apply their result only when it returns true.
func (l *Latest) Begin() func() bool {
	l.mu.Lock()
	l.seq++
	ticket := l.seq
	l.mu.Unlock()

	return func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.seq == ticket
	}
}
