package usecase

import (
	"errors"
	"maps"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/domain/weeklystat"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	lineupmock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

const testWeek = 5

// draftNineMan gives OwnerTwo 1 QB, 3 RB, 2 WR, 1 TE, 1 K and 1 DEF.
func draftNineMan(t *testing.T, env *testEnv) []string {
	t.Helper()

	ids := []string{
		"qb-allen", "rb-mccaffrey", "rb-robinson", "rb-henry",
		"wr-jefferson", "wr-lamb", "te-kelce", "k-tucker", "def-49ers",
	}
	for i, id := range ids {
		env.acquire(t, memory.OwnerTwo, id, int64(50-i))
	}
	return ids
}

func setRosterSize(t *testing.T, env *testEnv, size int) {
	t.Helper()

	settings := league.DefaultSettings(memory.LeagueIDDemo)
	settings.RosterSize = size
	if err := env.leagues.UpsertSettings(t.Context(), settings); err != nil {
		t.Fatalf("upsert settings: %v", err)
	}
}

func TestLineupService_UpdateLineup_IsIdempotent(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	draftNineMan(t, env)

	input := UpdateLineupInput{
		LeagueID:   memory.LeagueIDDemo,
		OwnerID:    memory.OwnerTwo,
		Week:       testWeek,
		StarterIDs: []string{"qb-allen", "rb-henry", "wr-lamb", "not-on-roster"},
	}
	if _, err := env.lineupService.UpdateLineup(t.Context(), input); err != nil {
		t.Fatalf("first update: %v", err)
	}
	first := env.statuses(t, memory.OwnerTwo)

	if _, err := env.lineupService.UpdateLineup(t.Context(), input); err != nil {
		t.Fatalf("second update: %v", err)
	}
	second := env.statuses(t, memory.OwnerTwo)

	if !maps.Equal(first, second) {
		t.Fatalf("expected identical statuses, first=%v second=%v", first, second)
	}
	if first["qb-allen"] != roster.StatusStarter || first["rb-mccaffrey"] != roster.StatusBench {
		t.Fatalf("unexpected statuses: %v", first)
	}
}

func TestLineupService_UpdateLineup_LockedPlayersKeepStatus(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	draftNineMan(t, env)

	if _, err := env.lineupService.UpdateLineup(t.Context(), UpdateLineupInput{
		LeagueID:   memory.LeagueIDDemo,
		OwnerID:    memory.OwnerTwo,
		Week:       testWeek,
		StarterIDs: []string{"qb-allen", "te-kelce"},
	}); err != nil {
		t.Fatalf("initial update: %v", err)
	}

	if _, err := env.statService.RecordWeeklyStats(t.Context(), []weeklystat.Stat{
		{PlayerID: "qb-allen", Season: 2026, Week: testWeek, Points: 24.3},
		{PlayerID: "rb-henry", Season: 2026, Week: testWeek, Points: 11.0},
	}); err != nil {
		t.Fatalf("record stats: %v", err)
	}

	locked, err := env.lineupService.UpdateLineup(t.Context(), UpdateLineupInput{
		LeagueID:   memory.LeagueIDDemo,
		OwnerID:    memory.OwnerTwo,
		Week:       testWeek,
		StarterIDs: []string{"rb-henry", "te-kelce"},
	})
	if err != nil {
		t.Fatalf("locked update: %v", err)
	}
	slices.Sort(locked)
	if !slices.Equal(locked, []string{"qb-allen", "rb-henry"}) {
		t.Fatalf("unexpected locked ids: %v", locked)
	}

	statuses := env.statuses(t, memory.OwnerTwo)
	if statuses["qb-allen"] != roster.StatusStarter {
		t.Fatalf("expected locked qb-allen to stay STARTER, got %q", statuses["qb-allen"])
	}
	if statuses["rb-henry"] != roster.StatusBench {
		t.Fatalf("expected locked rb-henry to stay BENCH, got %q", statuses["rb-henry"])
	}
	if statuses["te-kelce"] != roster.StatusStarter {
		t.Fatalf("expected te-kelce to start, got %q", statuses["te-kelce"])
	}
}

func TestLineupService_SubmitLineup_NineManScenario(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	setRosterSize(t, env, 9)
	ids := draftNineMan(t, env)

	if _, err := env.lineupService.UpdateLineup(t.Context(), UpdateLineupInput{
		LeagueID: memory.LeagueIDDemo, OwnerID: memory.OwnerTwo, Week: testWeek, StarterIDs: ids,
	}); err != nil {
		t.Fatalf("update lineup: %v", err)
	}

	submission, err := env.lineupService.SubmitLineup(t.Context(), SubmitLineupInput{
		LeagueID: memory.LeagueIDDemo, OwnerID: memory.OwnerTwo, Week: testWeek,
	})
	if err != nil {
		t.Fatalf("expected valid lineup, got %v", err)
	}
	if submission.Season != 2026 || submission.Week != testWeek || !submission.SubmittedAt.Equal(testNow) {
		t.Fatalf("unexpected submission: %+v", submission)
	}

	withoutDefense := slices.DeleteFunc(slices.Clone(ids), func(id string) bool { return id == "def-49ers" })
	if _, err := env.lineupService.UpdateLineup(t.Context(), UpdateLineupInput{
		LeagueID: memory.LeagueIDDemo, OwnerID: memory.OwnerTwo, Week: testWeek, StarterIDs: withoutDefense,
	}); err != nil {
		t.Fatalf("update lineup: %v", err)
	}

	_, err = env.lineupService.SubmitLineup(t.Context(), SubmitLineupInput{
		LeagueID: memory.LeagueIDDemo, OwnerID: memory.OwnerTwo, Week: testWeek,
	})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ValidationError to unwrap to ErrInvalidInput")
	}
	if !slices.Contains(validationErr.Violations, "not enough DEF") {
		t.Fatalf("expected not enough DEF, got %v", validationErr.Violations)
	}
}

func TestLineupService_SubmitLineup_ReportsMissingQuarterback(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ids := draftNineMan(t, env)
	env.acquire(t, memory.OwnerTwo, "wr-hill", 3)
	setRosterSize(t, env, 9)

	starters := append(slices.DeleteFunc(slices.Clone(ids), func(id string) bool { return id == "qb-allen" }), "wr-hill")
	_, _ = env.lineupService.UpdateLineup(t.Context(), UpdateLineupInput{
		LeagueID: memory.LeagueIDDemo, OwnerID: memory.OwnerTwo, Week: testWeek, StarterIDs: starters,
	})

	_, err := env.lineupService.SubmitLineup(t.Context(), SubmitLineupInput{
		LeagueID: memory.LeagueIDDemo, OwnerID: memory.OwnerTwo, Week: testWeek,
	})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !slices.Equal(validationErr.Violations, []string{"not enough QB"}) {
		t.Fatalf("expected only not enough QB, got %v", validationErr.Violations)
	}
}

func TestLineupService_SubmitLineup_ResubmitOverwritesTimestamp(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	setRosterSize(t, env, 9)
	ids := draftNineMan(t, env)
	_, _ = env.lineupService.UpdateLineup(t.Context(), UpdateLineupInput{
		LeagueID: memory.LeagueIDDemo, OwnerID: memory.OwnerTwo, Week: testWeek, StarterIDs: ids,
	})

	input := SubmitLineupInput{LeagueID: memory.LeagueIDDemo, OwnerID: memory.OwnerTwo, Week: testWeek}
	if _, err := env.lineupService.SubmitLineup(t.Context(), input); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	later := testNow.Add(time.Hour)
	env.lineupService.now = func() time.Time { return later }
	if _, err := env.lineupService.SubmitLineup(t.Context(), input); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	stored, ok, err := env.submissions.Get(t.Context(), memory.OwnerTwo, memory.LeagueIDDemo, 2026, testWeek)
	if err != nil || !ok {
		t.Fatalf("expected stored submission, ok=%v err=%v", ok, err)
	}
	if !stored.SubmittedAt.Equal(later) {
		t.Fatalf("expected timestamp overwritten to %s, got %s", later, stored.SubmittedAt)
	}
}

func TestLineupService_GetRoster_DerivesDefaultLineup(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	draftNineMan(t, env)
	env.acquire(t, memory.OwnerTwo, "qb-hurts", 2)

	view, err := env.lineupService.GetRoster(t.Context(), RosterQuery{
		LeagueID:    memory.LeagueIDDemo,
		RequesterID: memory.OwnerCommissioner,
		OwnerID:     memory.OwnerTwo,
		Week:        testWeek,
	})
	if err != nil {
		t.Fatalf("get roster: %v", err)
	}
	if view.TeamName != "Blitz Brigade" || view.LineupSubmitted {
		t.Fatalf("unexpected view header: %+v", view)
	}
	if len(view.Rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(view.Rows))
	}

	starters := 0
	for _, row := range view.Rows {
		if row.IsStarter() {
			starters++
		}
	}
	if starters != 9 {
		t.Fatalf("expected 9 derived starters, got %d", starters)
	}
	last := view.Rows[len(view.Rows)-1]
	if last.PlayerID != "qb-hurts" || last.IsStarter() {
		t.Fatalf("expected backup QB on bench last, got %+v", last)
	}
}

func TestLineupService_GetRoster_OutsiderForbidden(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.lineupService.GetRoster(t.Context(), RosterQuery{
		LeagueID:    memory.LeagueIDDemo,
		RequesterID: "stranger",
		Week:        testWeek,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestLineupService_GetLeagueBoard(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	draftNineMan(t, env)
	env.acquire(t, memory.OwnerThree, "qb-mahomes", 45)

	board, err := env.lineupService.GetLeagueBoard(t.Context(), memory.LeagueIDDemo, memory.OwnerFour, testWeek)
	if err != nil {
		t.Fatalf("get league board: %v", err)
	}
	if len(board) != len(memory.SeedMembers()) {
		t.Fatalf("expected one roster per member, got %d", len(board))
	}
	if board[1].OwnerID != memory.OwnerTwo || len(board[1].Rows) != 9 {
		t.Fatalf("unexpected second roster: %+v", board[1])
	}
	if board[2].TotalSpent != 45 {
		t.Fatalf("expected owner-3 spend 45, got %d", board[2].TotalSpent)
	}
	if board[3].TeamName != "Team "+memory.OwnerFour {
		t.Fatalf("expected generated team name, got %q", board[3].TeamName)
	}
}

func TestLineupService_RejectsWeekOutOfRange(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.lineupService.UpdateLineup(t.Context(), UpdateLineupInput{
		LeagueID: memory.LeagueIDDemo, OwnerID: memory.OwnerTwo, Week: 0,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLineupService_SubmitLineup_StoreFailureSurfaces(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	setRosterSize(t, env, 9)
	ids := draftNineMan(t, env)
	_, _ = env.lineupService.UpdateLineup(t.Context(), UpdateLineupInput{
		LeagueID: memory.LeagueIDDemo, OwnerID: memory.OwnerTwo, Week: testWeek, StarterIDs: ids,
	})

	boom := errors.New("submission store down")
	submissions := lineupmock.NewSubmissionRepository(t)
	submissions.On("Upsert", mock.Anything, mock.MatchedBy(func(s lineup.Submission) bool {
		return s.OwnerID == memory.OwnerTwo && s.Week == testWeek && s.SubmittedAt.Equal(testNow)
	})).Return(lineup.Submission{}, boom).Once()

	svc := NewLineupService(env.leagues, env.players, env.rosters, submissions, NewLockService(env.stats), logging.NewNop())
	svc.now = func() time.Time { return testNow }

	_, err := svc.SubmitLineup(t.Context(), SubmitLineupInput{
		LeagueID: memory.LeagueIDDemo, OwnerID: memory.OwnerTwo, Week: testWeek,
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		t.Fatalf("store failure must not look like a validation error")
	}
}

func TestLineupService_SubmitLineup_InvalidLineupIsNotStored(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	submissions := lineupmock.NewSubmissionRepository(t)
	svc := NewLineupService(env.leagues, env.players, env.rosters, submissions, NewLockService(env.stats), logging.NewNop())

	_, err := svc.SubmitLineup(t.Context(), SubmitLineupInput{
		LeagueID: memory.LeagueIDDemo, OwnerID: memory.OwnerTwo, Week: testWeek,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty lineup, got %v", err)
	}
	submissions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
