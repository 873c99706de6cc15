package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/draft"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

var testNow = time.Date(2026, 10, 4, 17, 0, 0, 0, time.UTC)

type sequenceIDGenerator struct {
	next atomic.Int64
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	return fmt.Sprintf("entry-%03d", g.next.Add(1)), nil
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []draft.Event
	onSend func(draft.Event)
}

func (b *recordingBroadcaster) Publish(_ context.Context, event draft.Event) {
	if b.onSend != nil {
		b.onSend(event)
	}
	b.mu.Lock()
	b.events = append(b.events, event)
	b.mu.Unlock()
}

func (b *recordingBroadcaster) types() []draft.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]draft.EventType, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}

type testEnv struct {
	leagues     *memory.LeagueRepository
	players     *memory.PlayerRepository
	rosters     *memory.RosterRepository
	submissions *memory.SubmissionRepository
	stats       *memory.WeeklyStatRepository
	trades      *memory.TradeRepository
	broadcaster *recordingBroadcaster

	leagueService *LeagueService
	rosterService *RosterService
	lineupService *LineupService
	draftService  *DraftService
	waiverService *WaiverService
	statService   *StatService
	playerService *PlayerService
	tradeService  *TradeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := logging.NewNop()
	env := &testEnv{
		leagues:     memory.NewLeagueRepository(memory.SeedLeagues(), memory.SeedMembers()),
		players:     memory.NewPlayerRepository(memory.SeedPlayers()),
		rosters:     memory.NewRosterRepository(),
		submissions: memory.NewSubmissionRepository(),
		stats:       memory.NewWeeklyStatRepository(),
		trades:      memory.NewTradeRepository(),
		broadcaster: &recordingBroadcaster{},
	}
	clock := func() time.Time { return testNow }

	env.leagueService = NewLeagueService(env.leagues, &sequenceIDGenerator{}, logger)
	env.leagueService.now = clock

	env.rosterService = NewRosterService(env.leagues, env.players, env.rosters, &sequenceIDGenerator{}, logger)
	env.rosterService.now = clock

	env.lineupService = NewLineupService(env.leagues, env.players, env.rosters, env.submissions, NewLockService(env.stats), logger)
	env.lineupService.now = clock

	env.draftService = NewDraftService(env.leagues, env.players, env.rosters, env.rosterService, env.broadcaster, logger)
	env.draftService.now = clock

	env.waiverService = NewWaiverService(env.leagues, env.rosterService, logger)
	env.waiverService.now = clock

	env.statService = NewStatService(env.stats, logger)
	env.statService.now = clock

	env.playerService = NewPlayerService(env.leagues, env.players, env.rosters)

	env.tradeService = NewTradeService(env.leagues, env.players, env.rosters, env.trades, &sequenceIDGenerator{}, logger)
	env.tradeService.now = clock

	return env
}

// acquire seeds a roster entry through the service path.
func (e *testEnv) acquire(t *testing.T, ownerID, playerID string, amount int64) roster.Entry {
	t.Helper()

	entry, err := e.rosterService.RecordAcquisition(t.Context(), AcquireInput{
		LeagueID: memory.LeagueIDDemo,
		OwnerID:  ownerID,
		PlayerID: playerID,
		Amount:   amount,
	})
	if err != nil {
		t.Fatalf("acquire %s for %s: %v", playerID, ownerID, err)
	}
	return entry
}

func (e *testEnv) statuses(t *testing.T, ownerID string) map[string]roster.Status {
	t.Helper()

	entries, err := e.rosters.ListByOwner(t.Context(), memory.LeagueIDDemo, ownerID)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	out := make(map[string]roster.Status, len(entries))
	for _, entry := range entries {
		out[entry.PlayerID] = entry.Status
	}
	return out
}
