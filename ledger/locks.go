package ledger

import "sync"

// companyLocks hands out one mutex per company ID. Every mutating
// operation takes the target company's mutex before opening its
// transaction, serializing buys, sells and investments against the same
// company while leaving unrelated companies fully parallel. No operation
// ever holds two companies' locks, so the keyed locks cannot deadlock.
type companyLocks struct {
	locks sync.Map
}

// Acquire locks the mutex for a company and returns its release func.
func (c *companyLocks) Acquire(companyID uint) func() {
	v, _ := c.locks.LoadOrStore(companyID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
