package health

import (
	"context"
	"sync"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

type CheckResult struct {
	Status  Status        `json:"status"`
	Message string        `json:"message,omitempty"`
	Latency time.Duration `json:"latency"`
	Error   string        `json:"error,omitempty"`
}

type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type ManagerInterface interface {
	Register(checker Checker)
	CheckAll(ctx context.Context) map[string]CheckResult
	IsHealthy(ctx context.Context) bool
}

// Manager runs registered checkers concurrently. Each check gets its own
// deadline; a checker that overruns it is reported unhealthy.
type Manager struct {
	checkers []Checker
	timeout  time.Duration
	mu       sync.RWMutex
}

var _ ManagerInterface = (*Manager)(nil)

const DefaultCheckTimeout = 2 * time.Second

func NewManager(timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &Manager{
		checkers: make([]Checker, 0),
		timeout:  timeout,
	}
}

func (m *Manager) Register(checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkers = append(m.checkers, checker)
}

func (m *Manager) CheckAll(ctx context.Context) map[string]CheckResult {
	m.mu.RLock()
	checkers := make([]Checker, len(m.checkers))
	copy(checkers, m.checkers)
	m.mu.RUnlock()

	results := make(map[string]CheckResult, len(checkers))
	var (
		wg      sync.WaitGroup
		resultM sync.Mutex
	)

	for _, checker := range checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			result := m.run(ctx, c)

			resultM.Lock()
			results[c.Name()] = result
			resultM.Unlock()
		}(checker)
	}
	wg.Wait()

	return results
}

func (m *Manager) run(ctx context.Context, c Checker) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan CheckResult, 1)
	start := time.Now()
	go func() {
		done <- c.Check(ctx)
	}()

	select {
	case result := <-done:
		result.Latency = time.Since(start)
		return result
	case <-ctx.Done():
		return CheckResult{
			Status:  StatusUnhealthy,
			Message: "check timed out",
			Latency: time.Since(start),
			Error:   ctx.Err().Error(),
		}
	}
}

// IsHealthy reports false when any check is unhealthy. Degraded checks still
// count as healthy.
func (m *Manager) IsHealthy(ctx context.Context) bool {
	for _, result := range m.CheckAll(ctx) {
		if result.Status == StatusUnhealthy {
			return false
		}
	}
	return true
}
