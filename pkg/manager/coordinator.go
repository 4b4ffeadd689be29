package manager

import "sync"

// jobCoordinator enforces the one-active-job-per-kind rule. Scan and
// organize may run concurrently with each other, never with themselves.
type jobCoordinator struct {
	mu             sync.Mutex
	scanActive     bool
	organizeActive bool
}

func newJobCoordinator() *jobCoordinator {
	return &jobCoordinator{}
}

func (c *jobCoordinator) acquireScan() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scanActive {
		return false
	}
	c.scanActive = true
	return true
}

func (c *jobCoordinator) releaseScan() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scanActive = false
}

func (c *jobCoordinator) acquireOrganize() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.organizeActive {
		return false
	}
	c.organizeActive = true
	return true
}

func (c *jobCoordinator) releaseOrganize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.organizeActive = false
}
