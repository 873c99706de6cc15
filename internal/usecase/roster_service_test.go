package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	leaguemock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/league"
	playermock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/player"
	rostermock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestRosterService_RecordAcquisition_ConcurrentClaimsYieldOneConflict(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	owners := []string{memory.OwnerTwo, memory.OwnerThree}

	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make([]error, len(owners))
	for i, owner := range owners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errs[i] = env.rosterService.RecordAcquisition(context.Background(), AcquireInput{
				LeagueID: memory.LeagueIDDemo,
				OwnerID:  owner,
				PlayerID: "rb-gibbs",
				Amount:   30,
			})
		}()
	}
	close(start)
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("expected one success and one conflict, got successes=%d conflicts=%d", successes, conflicts)
	}

	entries, err := env.rosters.ListByLeague(t.Context(), memory.LeagueIDDemo)
	if err != nil {
		t.Fatalf("list league rosters: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one owner of rb-gibbs, got %d entries", len(entries))
	}
}

func TestRosterService_RecordAcquisition_ManyConcurrentClaims(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	owners := []string{memory.OwnerCommissioner, memory.OwnerTwo, memory.OwnerThree, memory.OwnerFour}

	const rounds = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < rounds; i++ {
		for _, owner := range owners {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := env.rosterService.RecordAcquisition(context.Background(), AcquireInput{
					LeagueID: memory.LeagueIDDemo,
					OwnerID:  owner,
					PlayerID: "wr-chase",
					Amount:   40,
				})
				if err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				} else if !errors.Is(err, ErrConflict) {
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly one success, got %d", successes)
	}
}

func TestRosterService_RecordAcquisition_RosterFullIsConflict(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	settings := league.DefaultSettings(memory.LeagueIDDemo)
	settings.RosterSize = 2
	if err := env.leagues.UpsertSettings(t.Context(), settings); err != nil {
		t.Fatalf("upsert settings: %v", err)
	}

	env.acquire(t, memory.OwnerTwo, "qb-allen", 20)
	env.acquire(t, memory.OwnerTwo, "rb-henry", 15)

	_, err := env.rosterService.RecordAcquisition(t.Context(), AcquireInput{
		LeagueID: memory.LeagueIDDemo,
		OwnerID:  memory.OwnerTwo,
		PlayerID: "k-tucker",
		Amount:   1,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for full roster, got %v", err)
	}
}

func TestRosterService_RecordAcquisition_RejectsUnknownPlayerAndOutsider(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.rosterService.RecordAcquisition(t.Context(), AcquireInput{
		LeagueID: memory.LeagueIDDemo,
		OwnerID:  memory.OwnerTwo,
		PlayerID: "qb-unknown",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}

	_, err = env.rosterService.RecordAcquisition(t.Context(), AcquireInput{
		LeagueID: memory.LeagueIDDemo,
		OwnerID:  "stranger",
		PlayerID: "qb-allen",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-member, got %v", err)
	}
}

func TestRosterService_Remove(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.acquire(t, memory.OwnerThree, "te-kelce", 12)

	if err := env.rosterService.Remove(t.Context(), memory.LeagueIDDemo, memory.OwnerTwo, "te-kelce"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound removing another owner's player, got %v", err)
	}
	if err := env.rosterService.Remove(t.Context(), memory.LeagueIDDemo, memory.OwnerThree, "te-kelce"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := env.rosterService.Remove(t.Context(), memory.LeagueIDDemo, memory.OwnerThree, "te-kelce"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestRosterService_RecordAcquisition_MapsRepositoryConflictUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	rosterRepo := rostermock.NewRepository(t)

	leagueID := "league-x"
	leagueRepo.
		On("GetByID", mock.Anything, leagueID).
		Return(league.League{ID: leagueID, Name: "X", DraftStatus: league.DraftStatusActive}, true, nil)
	leagueRepo.
		On("GetMember", mock.Anything, leagueID, "owner-a").
		Return(league.Member{LeagueID: leagueID, UserID: "owner-a"}, true, nil).
		Once()
	leagueRepo.
		On("GetSettings", mock.Anything, leagueID).
		Return(league.Settings{}, false, nil).
		Once()
	playerRepo.
		On("GetByID", mock.Anything, "qb-1").
		Return(player.Player{ID: "qb-1", Name: "QB", Position: player.PositionQuarterback}, true, nil).
		Once()
	rosterRepo.
		On("RecordAcquisition", mock.Anything, mock.MatchedBy(func(e roster.Entry) bool {
			return e.LeagueID == leagueID && e.OwnerID == "owner-a" && e.PlayerID == "qb-1" && e.Season == 2026
		}), league.DefaultRosterSize).
		Return(roster.Entry{}, roster.ErrPlayerAlreadyOwned).
		Once()

	service := NewRosterService(leagueRepo, playerRepo, rosterRepo, &sequenceIDGenerator{}, logging.NewNop())
	service.now = func() time.Time { return testNow }

	_, err := service.RecordAcquisition(ctx, AcquireInput{LeagueID: leagueID, OwnerID: "owner-a", PlayerID: "qb-1", Amount: 5})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
