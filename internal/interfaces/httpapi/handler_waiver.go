package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

func (h *Handler) ClaimWaiver(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClaimWaiver")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req claimWaiverRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.waiverService.Claim(ctx, usecase.ClaimInput{
		LeagueID:     leagueID,
		OwnerID:      principal.UserID,
		PlayerID:     req.PlayerID,
		Bid:          req.Bid,
		DropPlayerID: req.DropPlayerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "claim waiver failed", "league_id", leagueID, "user_id", principal.UserID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, rosterEntryToDTO(entry))
}

func (h *Handler) DropPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DropPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req dropPlayerRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.waiverService.Drop(ctx, leagueID, principal.UserID, req.PlayerID); err != nil {
		h.logger.WarnContext(ctx, "drop player failed", "league_id", leagueID, "user_id", principal.UserID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"playerId": req.PlayerID, "status": "dropped"})
}
