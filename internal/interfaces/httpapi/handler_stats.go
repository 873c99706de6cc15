package httpapi

import "net/http"

func (h *Handler) RecordWeeklyStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordWeeklyStats")
	defer span.End()

	var req recordWeeklyStatsRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	recorded, err := h.statService.RecordWeeklyStats(ctx, weeklyStatsFromRequest(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "record weekly stats failed", "count", len(req.Stats), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, recordWeeklyStatsDTO{Recorded: recorded})
}
