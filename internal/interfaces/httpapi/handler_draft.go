package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraft")
	defer span.End()

	h.draftState(w, r.WithContext(ctx), "get draft", h.draftService.CurrentLot)
}

func (h *Handler) StartDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartDraft")
	defer span.End()

	h.draftState(w, r.WithContext(ctx), "start draft", h.draftService.Start)
}

func (h *Handler) FinalizeDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinalizeDraft")
	defer span.End()

	h.draftState(w, r.WithContext(ctx), "finalize draft", h.draftService.Finalize)
}

func (h *Handler) ResetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetDraft")
	defer span.End()

	h.draftState(w, r.WithContext(ctx), "reset draft", h.draftService.Reset)
}

func (h *Handler) draftState(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	fn func(ctx context.Context, leagueID, userID string) (usecase.DraftState, error),
) {
	ctx := r.Context()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	state, err := fn(ctx, leagueID, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, action+" failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftStateToDTO(state))
}

func (h *Handler) Nominate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Nominate")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req nominateRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	lot, err := h.draftService.Nominate(ctx, usecase.NominateInput{
		LeagueID:   leagueID,
		OwnerID:    principal.UserID,
		PlayerID:   req.PlayerID,
		OpeningBid: req.OpeningBid,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "nominate player failed", "league_id", leagueID, "user_id", principal.UserID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lotToDTO(lot))
}

func (h *Handler) Bid(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Bid")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req bidRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	lot, err := h.draftService.Bid(ctx, usecase.BidInput{
		LeagueID: leagueID,
		OwnerID:  principal.UserID,
		Amount:   req.Amount,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "place bid failed", "league_id", leagueID, "user_id", principal.UserID, "amount", req.Amount, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lotToDTO(lot))
}

func (h *Handler) CompletePick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompletePick")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	entry, err := h.draftService.CompletePick(ctx, leagueID, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "complete pick failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, rosterEntryToDTO(entry))
}
