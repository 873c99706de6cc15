package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	items, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]leagueDTO, 0, len(items))
	for _, item := range items {
		out = append(out, leagueToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createLeagueRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.leagueService.CreateLeague(ctx, usecase.CreateLeagueInput{
		Name:     req.Name,
		UserID:   principal.UserID,
		TeamName: req.TeamName,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "name", req.Name, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(created))
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMembers")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	items, err := h.leagueService.ListMembers(ctx, leagueID, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league members failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]memberDTO, 0, len(items))
	for _, item := range items {
		out = append(out, memberToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMember")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req addMemberRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	member, err := h.leagueService.AddMember(ctx, usecase.AddMemberInput{
		LeagueID:     leagueID,
		UserID:       principal.UserID,
		MemberUserID: req.UserID,
		TeamName:     req.TeamName,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add league member failed", "league_id", leagueID, "user_id", principal.UserID, "member_user_id", req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, memberToDTO(member))
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSettings")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	settings, err := h.leagueService.GetSettings(ctx, leagueID, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league settings failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settingsToDTO(settings))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSettings")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	var req updateSettingsRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	settings, err := h.leagueService.UpdateSettings(ctx, usecase.UpdateSettingsInput{
		LeagueID:       leagueID,
		UserID:         principal.UserID,
		RosterSize:     req.RosterSize,
		SalaryCap:      req.SalaryCap,
		StartingSlots:  req.StartingSlots,
		WaiverDeadline: req.WaiverDeadline,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update league settings failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settingsToDTO(settings))
}
