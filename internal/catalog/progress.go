package catalog

import (
	"sync"

	"github.com/GuillaumeBer/cryptoTrack/internal/domain"
)

// ProgressTracker owns the single RefreshProgress record. One writer (the
// active refresh) mutates it; any number of readers poll it. Begin doubles as
// the single-flight gate: the status check and the transition to running
// happen under the same lock.
type ProgressTracker struct {
	mu       sync.RWMutex
	progress domain.RefreshProgress
}

func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{progress: domain.RefreshProgress{Status: domain.RefreshIdle}}
}

// Begin atomically claims the refresh slot. It returns false when a refresh
// is already running, leaving the current progress untouched.
func (t *ProgressTracker) Begin() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.progress.Status == domain.RefreshRunning {
		return false
	}
	t.progress = domain.RefreshProgress{Status: domain.RefreshRunning}
	return true
}

func (t *ProgressTracker) SetStage(stage string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress.Stage = stage
}

func (t *ProgressTracker) SetCounts(current, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress.Current = current
	t.progress.Total = total
}

func (t *ProgressTracker) MarkDegraded() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress.Degraded = true
}

func (t *ProgressTracker) Complete(stage string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress.Status = domain.RefreshComplete
	t.progress.Stage = stage
}

func (t *ProgressTracker) Fail(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress.Status = domain.RefreshError
	t.progress.ErrorMessage = message
}

// View returns a copy, so readers never observe a torn update.
func (t *ProgressTracker) View() domain.RefreshProgress {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.progress
}
