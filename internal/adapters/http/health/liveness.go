package health

import (
	"net/http"
	"time"

	"sobasite/internal/adapters/http/response"
	"sobasite/internal/version"
)

type LivenessHandler struct {
	build version.BuildInfo
	now   func() time.Time
}

func NewLivenessHandler(build version.BuildInfo) *LivenessHandler {
	return &LivenessHandler{
		build: build,
		now:   time.Now,
	}
}

func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	select {
	case <-ctx.Done():
		response.RespondError(w, http.StatusRequestTimeout, ctx.Err())
		return
	default:
		build := h.build
		response.RespondJSON(w, http.StatusOK, LivenessResponse{
			Status:    StatusPass,
			Timestamp: h.now(),
			Version:   build.Version,
			Build:     &build,
		})
	}
}
