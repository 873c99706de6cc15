package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

func (h *Handler) ProposeTrade(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProposeTrade")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req proposeTradeRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	proposal, err := h.tradeService.Propose(ctx, usecase.ProposeTradeInput{
		LeagueID:          leagueID,
		FromUserID:        principal.UserID,
		ToUserID:          req.ToUserID,
		OfferedPlayerID:   req.OfferedPlayerID,
		RequestedPlayerID: req.RequestedPlayerID,
		Note:              req.Note,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "propose trade failed",
			"league_id", leagueID,
			"user_id", principal.UserID,
			"to_user_id", req.ToUserID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tradeToDTO(proposal, "", ""))
}

func (h *Handler) ListPendingTrades(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPendingTrades")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	views, err := h.tradeService.ListPending(ctx, leagueID, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list pending trades failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]tradeDTO, 0, len(views))
	for _, v := range views {
		out = append(out, tradeToDTO(v.Proposal, v.OfferedPlayerName, v.RequestedPlayerName))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
