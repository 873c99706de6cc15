package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.ListLeagues)))
	mux.Handle("POST /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("GET /v1/leagues/{leagueID}/members", RequireAuth(verifier, http.HandlerFunc(handler.ListMembers)))
	mux.Handle("POST /v1/leagues/{leagueID}/members", RequireAuth(verifier, http.HandlerFunc(handler.AddMember)))
	mux.Handle("GET /v1/leagues/{leagueID}/settings", RequireAuth(verifier, http.HandlerFunc(handler.GetSettings)))
	mux.Handle("PUT /v1/leagues/{leagueID}/settings", RequireAuth(verifier, http.HandlerFunc(handler.UpdateSettings)))
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/players/search", RequireAuth(verifier, http.HandlerFunc(handler.SearchPlayers)))
	mux.Handle("GET /v1/leagues/{leagueID}/free-agents", RequireAuth(verifier, http.HandlerFunc(handler.ListFreeAgents)))
}

func registerTradeRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/leagues/{leagueID}/trades", RequireAuth(verifier, http.HandlerFunc(handler.ListPendingTrades)))
	mux.Handle("POST /v1/leagues/{leagueID}/trades", RequireAuth(verifier, http.HandlerFunc(handler.ProposeTrade)))
}

func registerLineupRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/leagues/{leagueID}/roster", RequireAuth(verifier, http.HandlerFunc(handler.GetMyRoster)))
	mux.Handle("GET /v1/leagues/{leagueID}/owners/{ownerID}/roster", RequireAuth(verifier, http.HandlerFunc(handler.GetOwnerRoster)))
	mux.Handle("GET /v1/leagues/{leagueID}/board", RequireAuth(verifier, http.HandlerFunc(handler.GetLeagueBoard)))
	mux.Handle("PUT /v1/leagues/{leagueID}/lineup", RequireAuth(verifier, http.HandlerFunc(handler.UpdateLineup)))
	mux.Handle("POST /v1/leagues/{leagueID}/lineup/submit", RequireAuth(verifier, http.HandlerFunc(handler.SubmitLineup)))
}

func registerWaiverRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues/{leagueID}/waivers/claim", RequireAuth(verifier, http.HandlerFunc(handler.ClaimWaiver)))
	mux.Handle("POST /v1/leagues/{leagueID}/waivers/drop", RequireAuth(verifier, http.HandlerFunc(handler.DropPlayer)))
}

func registerDraftRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/leagues/{leagueID}/draft", RequireAuth(verifier, http.HandlerFunc(handler.GetDraft)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/start", RequireAuth(verifier, http.HandlerFunc(handler.StartDraft)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/nominate", RequireAuth(verifier, http.HandlerFunc(handler.Nominate)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/bid", RequireAuth(verifier, http.HandlerFunc(handler.Bid)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/complete", RequireAuth(verifier, http.HandlerFunc(handler.CompletePick)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/finalize", RequireAuth(verifier, http.HandlerFunc(handler.FinalizeDraft)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/reset", RequireAuth(verifier, http.HandlerFunc(handler.ResetDraft)))
	mux.Handle("GET /v1/leagues/{leagueID}/draft/events", RequireAuth(verifier, http.HandlerFunc(handler.StreamDraftEvents)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/weekly-stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RecordWeeklyStats)))
}
