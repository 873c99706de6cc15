package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

func (h *Handler) GetMyRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyRoster")
	defer span.End()

	h.getRoster(w, r.WithContext(ctx), "")
}

func (h *Handler) GetOwnerRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOwnerRoster")
	defer span.End()

	h.getRoster(w, r.WithContext(ctx), strings.TrimSpace(r.PathValue("ownerID")))
}

func (h *Handler) getRoster(w http.ResponseWriter, r *http.Request, ownerID string) {
	ctx := r.Context()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := weekFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	view, err := h.lineupService.GetRoster(ctx, usecase.RosterQuery{
		LeagueID:    leagueID,
		RequesterID: principal.UserID,
		OwnerID:     ownerID,
		Week:        week,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get roster failed", "league_id", leagueID, "user_id", principal.UserID, "owner_id", ownerID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterViewToDTO(view))
}

func (h *Handler) GetLeagueBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueBoard")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := weekFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	views, err := h.lineupService.GetLeagueBoard(ctx, leagueID, principal.UserID, week)
	if err != nil {
		h.logger.WarnContext(ctx, "get league board failed", "league_id", leagueID, "user_id", principal.UserID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rosterViewDTO, 0, len(views))
	for _, view := range views {
		items = append(items, rosterViewToDTO(view))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpdateLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLineup")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req updateLineupRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	locked, err := h.lineupService.UpdateLineup(ctx, usecase.UpdateLineupInput{
		LeagueID:   leagueID,
		OwnerID:    principal.UserID,
		Week:       req.Week,
		StarterIDs: req.StarterIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update lineup failed", "league_id", leagueID, "user_id", principal.UserID, "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, updateLineupDTO{
		LeagueID:        leagueID,
		Week:            req.Week,
		LockedPlayerIDs: locked,
	})
}

func (h *Handler) SubmitLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitLineup")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req submitLineupRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	submission, err := h.lineupService.SubmitLineup(ctx, usecase.SubmitLineupInput{
		LeagueID: leagueID,
		OwnerID:  principal.UserID,
		Week:     req.Week,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit lineup failed", "league_id", leagueID, "user_id", principal.UserID, "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, submissionToDTO(submission))
}
