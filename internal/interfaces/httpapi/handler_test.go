package httpapi

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riskibarqy/fantasy-draft/internal/domain/user"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/broadcast"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-draft/internal/platform/id"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

const testJobToken = "job-secret"

type staticVerifier map[string]user.Principal

func (v staticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	principal, ok := v[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return principal, nil
}

func tokenFor(userID string) string {
	return "token-" + userID
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	leagues := memory.NewLeagueRepository(memory.SeedLeagues(), memory.SeedMembers())
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	rosters := memory.NewRosterRepository()
	stats := memory.NewWeeklyStatRepository()

	registry := prometheus.NewRegistry()
	hub, err := broadcast.NewHub(broadcast.Config{}, broadcast.NewMetrics(registry), logger)
	if err != nil {
		t.Fatalf("new hub: %v", err)
	}
	t.Cleanup(hub.Close)

	rosterService := usecase.NewRosterService(leagues, players, rosters, id.NewRandomGenerator(), logger)
	handler := NewHandler(
		usecase.NewLeagueService(leagues, id.NewRandomGenerator(), logger),
		usecase.NewLineupService(leagues, players, rosters, memory.NewSubmissionRepository(), usecase.NewLockService(stats), logger),
		usecase.NewWaiverService(leagues, rosterService, logger),
		usecase.NewDraftService(leagues, players, rosters, rosterService, hub, logger),
		usecase.NewStatService(stats, logger),
		usecase.NewPlayerService(leagues, players, rosters),
		usecase.NewTradeService(leagues, players, rosters, memory.NewTradeRepository(), id.NewRandomGenerator(), logger),
		hub,
		50*time.Millisecond,
		logger,
	)

	verifier := staticVerifier{}
	for _, m := range memory.SeedMembers() {
		verifier[tokenFor(m.UserID)] = user.Principal{UserID: m.UserID}
	}
	verifier[tokenFor("outsider")] = user.Principal{UserID: "outsider"}

	return NewRouter(handler, verifier, logger, RouterConfig{
		InternalJobToken: testJobToken,
		Metrics:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})
}

func doRequest(t *testing.T, router http.Handler, method, path, userID string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+tokenFor(userID))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("unmarshal response %s: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func dataOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	return data
}

func errorStatusOf(body map[string]any) string {
	errObj, _ := body["error"].(map[string]any)
	status, _ := errObj["status"].(string)
	return status
}

func TestRouter_HealthzNeedsNoAuth(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := dataOf(t, body)["status"]; got != "ok" {
		t.Fatalf("unexpected health payload: %v", body)
	}
}

func TestRouter_MetricsExposed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "fantasy_draft_broadcast_active_subscribers") {
		t.Fatalf("expected broadcast metrics in output")
	}
}

func TestRouter_RequiresBearerToken(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDDemo+"/settings", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := errorStatusOf(body); got != "UNAUTHENTICATED" {
		t.Fatalf("expected UNAUTHENTICATED, got %q", got)
	}
}

func TestUpdateSettings_CommissionerOnly(t *testing.T) {
	router := newTestRouter(t)
	path := "/v1/leagues/" + memory.LeagueIDDemo + "/settings"

	rec, body := doRequest(t, router, http.MethodPut, path, memory.OwnerTwo, map[string]any{"rosterSize": 10})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := errorStatusOf(body); got != "PERMISSION_DENIED" {
		t.Fatalf("expected PERMISSION_DENIED, got %q", got)
	}

	rec, body = doRequest(t, router, http.MethodPut, path, memory.OwnerCommissioner, map[string]any{
		"rosterSize":    10,
		"startingSlots": map[string]int{"qb": 1, "rb": 2},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := dataOf(t, body)
	if got, _ := data["rosterSize"].(float64); got != 10 {
		t.Fatalf("expected rosterSize=10, got %v", data["rosterSize"])
	}
	slots, _ := data["startingSlots"].(map[string]any)
	if _, ok := slots["QB"]; !ok {
		t.Fatalf("expected normalized slot keys, got %v", slots)
	}

	rec, body = doRequest(t, router, http.MethodGet, path, memory.OwnerThree, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected member read 200, got %d", rec.Code)
	}
	if got, _ := dataOf(t, body)["rosterSize"].(float64); got != 10 {
		t.Fatalf("expected persisted rosterSize=10, got %v", got)
	}
}

func TestUpdateSettings_RejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodPut, "/v1/leagues/"+memory.LeagueIDDemo+"/settings", memory.OwnerCommissioner, map[string]any{"budget": 10})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := errorStatusOf(body); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected INVALID_ARGUMENT, got %q", got)
	}
}

func TestDraftFlow_PickLandsOnWinnerRoster(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/leagues/" + memory.LeagueIDDemo

	if rec, _ := doRequest(t, router, http.MethodPost, base+"/draft/start", memory.OwnerTwo, nil); rec.Code != http.StatusForbidden {
		t.Fatalf("expected non-commissioner start to be forbidden, got %d", rec.Code)
	}
	rec, body := doRequest(t, router, http.MethodPost, base+"/draft/start", memory.OwnerCommissioner, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("start draft: %d %s", rec.Code, rec.Body.String())
	}
	if got := dataOf(t, body)["status"]; got != "ACTIVE" {
		t.Fatalf("expected ACTIVE, got %v", got)
	}

	rec, _ = doRequest(t, router, http.MethodPost, base+"/draft/nominate", memory.OwnerTwo, map[string]any{"playerId": "qb-mahomes", "openingBid": 5})
	if rec.Code != http.StatusOK {
		t.Fatalf("nominate: %d %s", rec.Code, rec.Body.String())
	}
	rec, body = doRequest(t, router, http.MethodPost, base+"/draft/bid", memory.OwnerThree, map[string]any{"amount": 7})
	if rec.Code != http.StatusOK {
		t.Fatalf("bid: %d %s", rec.Code, rec.Body.String())
	}
	if got := dataOf(t, body)["highBidderId"]; got != memory.OwnerThree {
		t.Fatalf("expected high bidder %s, got %v", memory.OwnerThree, got)
	}

	rec, body = doRequest(t, router, http.MethodGet, base+"/draft", memory.OwnerFour, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get draft: %d", rec.Code)
	}
	if _, ok := dataOf(t, body)["lot"].(map[string]any); !ok {
		t.Fatalf("expected open lot, got %v", body)
	}

	rec, body = doRequest(t, router, http.MethodPost, base+"/draft/complete", memory.OwnerCommissioner, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("complete pick: %d %s", rec.Code, rec.Body.String())
	}
	if got := dataOf(t, body)["ownerId"]; got != memory.OwnerThree {
		t.Fatalf("expected pick owned by %s, got %v", memory.OwnerThree, got)
	}

	rec, body = doRequest(t, router, http.MethodGet, base+"/owners/"+memory.OwnerThree+"/roster?week=3", memory.OwnerTwo, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get owner roster: %d %s", rec.Code, rec.Body.String())
	}
	rows, _ := dataOf(t, body)["players"].([]any)
	if len(rows) != 1 {
		t.Fatalf("expected one rostered player, got %v", rows)
	}
	if row, _ := rows[0].(map[string]any); row["playerId"] != "qb-mahomes" {
		t.Fatalf("unexpected roster row: %v", row)
	}

	rec, body = doRequest(t, router, http.MethodPost, base+"/draft/nominate", memory.OwnerFour, map[string]any{"playerId": "qb-mahomes", "openingBid": 1})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected owned player nomination to conflict, got %d", rec.Code)
	}
	if got := errorStatusOf(body); got != "ALREADY_EXISTS" {
		t.Fatalf("expected ALREADY_EXISTS, got %q", got)
	}
}

func TestSubmitLineup_ReportsEveryViolation(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodPost, "/v1/leagues/"+memory.LeagueIDDemo+"/lineup/submit", memory.OwnerTwo, map[string]any{"week": 2})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	errObj, _ := body["error"].(map[string]any)
	items, _ := errObj["errors"].([]any)
	if len(items) < 2 {
		t.Fatalf("expected one error item per violation, got %v", items)
	}
	for _, raw := range items {
		item, _ := raw.(map[string]any)
		if item["reason"] != "lineupViolation" {
			t.Fatalf("unexpected error item: %v", item)
		}
	}
	first, _ := items[0].(map[string]any)
	if first["message"] != "not enough players" {
		t.Fatalf("expected roster size violation first, got %v", first["message"])
	}
}

func TestUpdateLineup_AlwaysSucceedsForMember(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodPut, "/v1/leagues/"+memory.LeagueIDDemo+"/lineup", memory.OwnerTwo, map[string]any{
		"week":       4,
		"starterIds": []string{"not-on-roster"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if locked, _ := dataOf(t, body)["lockedPlayerIds"].([]any); len(locked) != 0 {
		t.Fatalf("expected no locked players, got %v", locked)
	}
}

func TestGetRoster_WeekDefaultsToOne(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDDemo+"/roster", memory.OwnerTwo, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 without week, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := dataOf(t, body)["week"]; got != float64(1) {
		t.Fatalf("expected week 1, got %v", got)
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDDemo+"/roster?week=abc", memory.OwnerTwo, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected non-numeric week to be rejected, got %d", rec.Code)
	}
	rec, _ = doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDDemo+"/roster?week=19", memory.OwnerTwo, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected out-of-range week to be rejected, got %d", rec.Code)
	}
}

func TestGetLeagueBoard_ListsEveryMember(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDDemo+"/board?week=1", memory.OwnerFour, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	items, _ := body["data"].([]any)
	if len(items) != len(memory.SeedMembers()) {
		t.Fatalf("expected %d rosters, got %d", len(memory.SeedMembers()), len(items))
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDDemo+"/board?week=1", "outsider", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected outsider to be forbidden, got %d", rec.Code)
	}
}

func TestWaivers_ClaimThenDrop(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/leagues/" + memory.LeagueIDDemo + "/waivers"

	rec, _ := doRequest(t, router, http.MethodPost, base+"/claim", memory.OwnerTwo, map[string]any{"playerId": "k-tucker", "bid": 0})
	if rec.Code != http.StatusCreated {
		t.Fatalf("claim: %d %s", rec.Code, rec.Body.String())
	}
	rec, _ = doRequest(t, router, http.MethodPost, base+"/claim", memory.OwnerThree, map[string]any{"playerId": "k-tucker"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected second claim to conflict, got %d", rec.Code)
	}
	rec, _ = doRequest(t, router, http.MethodPost, base+"/drop", memory.OwnerTwo, map[string]any{"playerId": "k-tucker"})
	if rec.Code != http.StatusOK {
		t.Fatalf("drop: %d %s", rec.Code, rec.Body.String())
	}
	rec, _ = doRequest(t, router, http.MethodPost, base+"/drop", memory.OwnerTwo, map[string]any{"playerId": "k-tucker"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected second drop to be not found, got %d", rec.Code)
	}
}

func TestRecordWeeklyStats_JobTokenRequired(t *testing.T) {
	router := newTestRouter(t)
	payload := map[string]any{
		"stats": []map[string]any{{"playerId": "qb-allen", "season": 2026, "week": 5, "points": 21.4}},
	}
	raw, _ := sonic.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/weekly-stats", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without job token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/weekly-stats", bytes.NewReader(raw))
	req.Header.Set(internalJobTokenHeader, testJobToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got, _ := dataOf(t, body)["recorded"].(float64); got != 1 {
		t.Fatalf("expected recorded=1, got %v", got)
	}
}

func TestStreamDraftEvents_DeliversNomination(t *testing.T) {
	router := newTestRouter(t)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/v1/leagues/"+memory.LeagueIDDemo+"/draft/events", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+tokenFor(memory.OwnerFour))
	resp, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("unexpected content type %q", got)
	}

	reader := bufio.NewReader(resp.Body)
	readUntil(t, reader, "retry:")

	base := "/v1/leagues/" + memory.LeagueIDDemo
	if rec, _ := doRequest(t, router, http.MethodPost, base+"/draft/start", memory.OwnerCommissioner, nil); rec.Code != http.StatusOK {
		t.Fatalf("start draft: %d", rec.Code)
	}
	if rec, _ := doRequest(t, router, http.MethodPost, base+"/draft/nominate", memory.OwnerTwo, map[string]any{"playerId": "wr-chase", "openingBid": 3}); rec.Code != http.StatusOK {
		t.Fatalf("nominate: %d", rec.Code)
	}

	readUntil(t, reader, "event: NOMINATION")
	data := readUntil(t, reader, "data: ")
	if !strings.Contains(data, `"playerId":"wr-chase"`) {
		t.Fatalf("unexpected event data %q", data)
	}
}

func TestStreamDraftEvents_RejectsNonMember(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDDemo+"/draft/events", "outsider", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func readUntil(t *testing.T, reader *bufio.Reader, prefix string) string {
	t.Helper()
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("read stream waiting for %q: %v", prefix, err)
		}
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line)
		}
	}
}

func TestLeagues_CreateListAndMembers(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodPost, "/v1/leagues", "outsider", map[string]any{"name": "Tuesday Keepers", "teamName": "Night Shift"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	created := dataOf(t, body)
	leagueID, _ := created["id"].(string)
	if leagueID == "" || created["name"] != "Tuesday Keepers" {
		t.Fatalf("unexpected league: %v", created)
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/leagues", memory.OwnerTwo, map[string]any{"name": "tuesday keepers"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected duplicate name to conflict, got %d", rec.Code)
	}

	rec, body = doRequest(t, router, http.MethodGet, "/v1/leagues", memory.OwnerTwo, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: %d", rec.Code)
	}
	if items, _ := body["data"].([]any); len(items) != 2 {
		t.Fatalf("expected two leagues, got %v", body["data"])
	}

	membersPath := "/v1/leagues/" + leagueID + "/members"
	rec, _ = doRequest(t, router, http.MethodPost, membersPath, memory.OwnerTwo, map[string]any{"userId": memory.OwnerThree})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected non-commissioner add to be forbidden, got %d", rec.Code)
	}
	rec, _ = doRequest(t, router, http.MethodPost, membersPath, "outsider", map[string]any{"userId": memory.OwnerTwo, "teamName": "Late Picks"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add member: %d %s", rec.Code, rec.Body.String())
	}
	rec, _ = doRequest(t, router, http.MethodPost, membersPath, "outsider", map[string]any{"userId": memory.OwnerTwo})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected repeated add to conflict, got %d", rec.Code)
	}

	rec, body = doRequest(t, router, http.MethodGet, membersPath, memory.OwnerTwo, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list members: %d", rec.Code)
	}
	if items, _ := body["data"].([]any); len(items) != 2 {
		t.Fatalf("expected commissioner and one member, got %v", body["data"])
	}
}

func TestPlayers_SearchAndFreeAgents(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/v1/players/search?q=allen", "outsider", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("search: %d %s", rec.Code, rec.Body.String())
	}
	items, _ := body["data"].([]any)
	if len(items) != 1 || items[0].(map[string]any)["id"] != "qb-allen" {
		t.Fatalf("expected Josh Allen, got %v", body["data"])
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/v1/players/search?q=a", "outsider", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected short query rejected, got %d", rec.Code)
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/leagues/"+memory.LeagueIDDemo+"/waivers/claim", memory.OwnerTwo, map[string]any{"playerId": "k-tucker"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("claim: %d %s", rec.Code, rec.Body.String())
	}

	freeAgents := "/v1/leagues/" + memory.LeagueIDDemo + "/free-agents"
	rec, body = doRequest(t, router, http.MethodGet, freeAgents+"?pos=K", memory.OwnerThree, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("free agents: %d %s", rec.Code, rec.Body.String())
	}
	items, _ = body["data"].([]any)
	for _, item := range items {
		if item.(map[string]any)["id"] == "k-tucker" {
			t.Fatalf("expected claimed kicker excluded, got %v", items)
		}
	}

	rec, _ = doRequest(t, router, http.MethodGet, freeAgents+"?pos=GOALIE", memory.OwnerThree, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected unknown position rejected, got %d", rec.Code)
	}
	rec, _ = doRequest(t, router, http.MethodGet, freeAgents, "outsider", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected outsider forbidden, got %d", rec.Code)
	}
}

func TestTrades_ProposeThenCommissionerReviews(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/leagues/" + memory.LeagueIDDemo

	for owner, playerID := range map[string]string{memory.OwnerTwo: "k-tucker", memory.OwnerThree: "qb-allen"} {
		rec, _ := doRequest(t, router, http.MethodPost, base+"/waivers/claim", owner, map[string]any{"playerId": playerID})
		if rec.Code != http.StatusCreated {
			t.Fatalf("claim %s: %d %s", playerID, rec.Code, rec.Body.String())
		}
	}

	rec, body := doRequest(t, router, http.MethodPost, base+"/trades", memory.OwnerTwo, map[string]any{
		"toUserId":          memory.OwnerThree,
		"offeredPlayerId":   "k-tucker",
		"requestedPlayerId": "qb-allen",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("propose: %d %s", rec.Code, rec.Body.String())
	}
	if dataOf(t, body)["status"] != "PENDING" {
		t.Fatalf("expected pending proposal, got %v", body["data"])
	}

	rec, _ = doRequest(t, router, http.MethodPost, base+"/trades", memory.OwnerTwo, map[string]any{"toUserId": memory.OwnerThree})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected missing players rejected, got %d", rec.Code)
	}

	rec, _ = doRequest(t, router, http.MethodGet, base+"/trades", memory.OwnerTwo, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected non-commissioner review forbidden, got %d", rec.Code)
	}
	rec, body = doRequest(t, router, http.MethodGet, base+"/trades", memory.OwnerCommissioner, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list trades: %d", rec.Code)
	}
	items, _ := body["data"].([]any)
	if len(items) != 1 || items[0].(map[string]any)["requestedPlayerName"] != "Josh Allen" {
		t.Fatalf("expected one named proposal, got %v", body["data"])
	}
}
