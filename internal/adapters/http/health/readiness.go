package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"sobasite/internal/adapters/http/response"
	"sobasite/internal/platform/health"
	"sobasite/internal/platform/logger"
)

type ReadinessHandler struct {
	version       string
	healthManager health.ManagerInterface
	timeout       time.Duration
}

func NewReadinessHandler(version string, healthManager health.ManagerInterface, timeout time.Duration) *ReadinessHandler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ReadinessHandler{
		version:       version,
		healthManager: healthManager,
		timeout:       timeout,
	}
}

// Check reports 503 when any dependency fails. Degraded dependencies turn the
// overall status to warn without failing the probe.
func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	log := logger.FromContext(ctx)
	results := h.healthManager.CheckAll(ctx)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	overall := StatusPass
	checks := make(map[string][]CheckDetail, len(results))
	var notes []string

	for _, name := range names {
		result := results[name]
		status := mapStatus(result.Status)

		switch status {
		case StatusFail:
			overall = StatusFail
			notes = append(notes, "Dependency "+name+" is unavailable")
		case StatusWarn:
			if overall == StatusPass {
				overall = StatusWarn
			}
			notes = append(notes, "Dependency "+name+" is degraded")
		}

		detail := CheckDetail{
			ComponentId:   name,
			ComponentType: "component",
			Status:        status,
			ObservedValue: float64(result.Latency) / float64(time.Millisecond),
			ObservedUnit:  "ms",
			Time:          time.Now(),
			Output:        result.Message,
		}
		if result.Error != "" {
			detail.Output = result.Error
		}
		checks[name] = []CheckDetail{detail}
	}

	statusCode := http.StatusOK
	if overall == StatusFail {
		statusCode = http.StatusServiceUnavailable
		log.Warn("Readiness check failed", logger.Strings("notes", notes))
	}

	response.RespondJSON(w, statusCode, ReadinessResponse{
		Status:  overall,
		Version: h.version,
		Checks:  checks,
		Notes:   notes,
	})
}

func mapStatus(s health.Status) Status {
	switch s {
	case health.StatusHealthy:
		return StatusPass
	case health.StatusUnhealthy:
		return StatusFail
	default:
		return StatusWarn
	}
}
