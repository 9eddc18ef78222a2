package utils

import (
	"path/filepath"
	"sync"
)

// WorkerPool runs jobs on a bounded number of goroutines.
type WorkerPool struct {
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// NewWorkerPool creates a WorkerPool that runs at most maxWorkers jobs at once.
// Values below 1 are treated as 1.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{semaphore: make(chan struct{}, maxWorkers)}
}

// Submit enqueues a job for execution in the pool. It blocks while the pool
// is saturated.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.semaphore <- struct{}{}

	go func() {
		defer wp.wg.Done()
		defer func() { <-wp.semaphore }()
		job()
	}()
}

// Wait blocks until all submitted jobs have completed.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// PathSet is a thread-safe set of cleaned file paths, used so the same input
// file is only formatted once per invocation.
type PathSet struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewPathSet creates an empty PathSet.
func NewPathSet() *PathSet {
	return &PathSet{seen: make(map[string]struct{})}
}

// Add returns true if the path was newly added, false if already present.
func (s *PathSet) Add(path string) bool {
	key := filepath.Clean(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.seen[key]; exists {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// Size returns the number of unique paths tracked.
func (s *PathSet) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}
