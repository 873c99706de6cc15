package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	query := r.URL.Query().Get("q")
	position := r.URL.Query().Get("pos")
	items, err := h.playerService.SearchPlayers(ctx, query, position)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "query", query, "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) ListFreeAgents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFreeAgents")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	position := r.URL.Query().Get("pos")
	items, err := h.playerService.ListFreeAgents(ctx, leagueID, principal.UserID, position)
	if err != nil {
		h.logger.WarnContext(ctx, "list free agents failed", "league_id", leagueID, "user_id", principal.UserID, "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}
