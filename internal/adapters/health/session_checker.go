package health

import (
	"context"
	"fmt"
	"sobasite/internal/platform/health"
)

type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// SessionStoreChecker reports the form session store as degraded when it is
// nearly full and unhealthy once new visitors can no longer open a form.
type SessionStoreChecker struct {
	store    SessionCounter
	capacity int
}

func NewSessionStoreChecker(store SessionCounter, capacity int) *SessionStoreChecker {
	return &SessionStoreChecker{
		store:    store,
		capacity: capacity,
	}
}

func (c *SessionStoreChecker) Name() string {
	return "form_sessions"
}

func (c *SessionStoreChecker) Check(ctx context.Context) health.CheckResult {
	count, err := c.store.Count(ctx)
	if err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "form session store unavailable",
			Error:   err.Error(),
		}
	}

	if c.capacity > 0 && count >= c.capacity {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: fmt.Sprintf("form session store full (%d/%d)", count, c.capacity),
		}
	}

	if c.capacity > 0 && count*10 >= c.capacity*9 {
		return health.CheckResult{
			Status:  health.StatusDegraded,
			Message: fmt.Sprintf("form session store nearly full (%d/%d)", count, c.capacity),
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("%d open form sessions", count),
	}
}
