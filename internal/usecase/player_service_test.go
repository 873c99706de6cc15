package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	leaguemock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/league"
	playermock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/player"
	rostermock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/roster"
	"github.com/stretchr/testify/mock"
)

func TestPlayerService_SearchPlayers(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	items, err := env.playerService.SearchPlayers(t.Context(), "  jo ", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 || items[0].ID != "qb-allen" {
		t.Fatalf("expected Josh Allen only, got %+v", items)
	}

	items, err = env.playerService.SearchPlayers(t.Context(), "ja", "rb")
	if err != nil {
		t.Fatalf("search by position: %v", err)
	}
	if len(items) != 2 || items[0].ID != "rb-robinson" || items[1].ID != "rb-gibbs" {
		t.Fatalf("expected Bijan Robinson then Jahmyr Gibbs, got %+v", items)
	}

	items, err = env.playerService.SearchPlayers(t.Context(), "ja", "ALL")
	if err != nil {
		t.Fatalf("search all positions: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected four players matching ja, got %+v", items)
	}
}

func TestPlayerService_SearchPlayers_RejectsBadInput(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if _, err := env.playerService.SearchPlayers(t.Context(), " j ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected short query to be rejected, got %v", err)
	}
	if _, err := env.playerService.SearchPlayers(t.Context(), "josh", "LB"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected unknown position to be rejected, got %v", err)
	}
}

func TestPlayerService_SearchPlayers_CapsResults(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	playerRepo.
		On("Search", mock.Anything, player.Filter{NameQuery: "an", Position: player.PositionDefense, Limit: playerSearchLimit}).
		Return([]player.Player{{ID: "def-49ers"}}, nil).
		Once()

	service := NewPlayerService(leaguemock.NewRepository(t), playerRepo, rostermock.NewRepository(t))
	items, err := service.SearchPlayers(context.Background(), "an", "D/ST")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected mocked result, got %+v", items)
	}
}

func TestPlayerService_ListFreeAgents_ExcludesOwnedPlayers(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.acquire(t, memory.OwnerTwo, "qb-allen", 20)
	env.acquire(t, memory.OwnerThree, "qb-mahomes", 25)

	items, err := env.playerService.ListFreeAgents(t.Context(), memory.LeagueIDDemo, memory.OwnerFour, "QB")
	if err != nil {
		t.Fatalf("list free agents: %v", err)
	}
	if len(items) != 1 || items[0].ID != "qb-hurts" {
		t.Fatalf("expected only Jalen Hurts available, got %+v", items)
	}

	all, err := env.playerService.ListFreeAgents(t.Context(), memory.LeagueIDDemo, memory.OwnerFour, "")
	if err != nil {
		t.Fatalf("list all free agents: %v", err)
	}
	if want := len(memory.SeedPlayers()) - 2; len(all) != want {
		t.Fatalf("expected %d free agents, got %d", want, len(all))
	}
	for _, p := range all {
		if p.ID == "qb-allen" || p.ID == "qb-mahomes" {
			t.Fatalf("owned player %s listed as free agent", p.ID)
		}
	}
}

func TestPlayerService_ListFreeAgents_MembersOnly(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	if _, err := env.playerService.ListFreeAgents(t.Context(), memory.LeagueIDDemo, "outsider", ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := env.playerService.ListFreeAgents(t.Context(), "missing", memory.OwnerTwo, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
