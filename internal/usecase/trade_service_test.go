package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/domain/trade"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	leaguemock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/league"
	playermock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/player"
	rostermock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/roster"
	trademock "github.com/riskibarqy/fantasy-draft/internal/mocks/domain/trade"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestTradeService_Propose(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.acquire(t, memory.OwnerTwo, "qb-allen", 20)
	env.acquire(t, memory.OwnerThree, "wr-chase", 35)

	proposal, err := env.tradeService.Propose(t.Context(), ProposeTradeInput{
		LeagueID:          memory.LeagueIDDemo,
		FromUserID:        memory.OwnerTwo,
		ToUserID:          memory.OwnerThree,
		OfferedPlayerID:   "qb-allen",
		RequestedPlayerID: "wr-chase",
		Note:              "  need a WR1  ",
	})
	if err != nil {
		t.Fatalf("propose: %v", err)
	}
	if proposal.Status != trade.StatusPending || proposal.Note != "need a WR1" || !proposal.CreatedAt.Equal(testNow) {
		t.Fatalf("unexpected proposal: %+v", proposal)
	}

	owned, err := env.rosters.ListByOwner(t.Context(), memory.LeagueIDDemo, memory.OwnerTwo)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(owned) != 1 || owned[0].PlayerID != "qb-allen" {
		t.Fatalf("proposing must not move players, got %+v", owned)
	}
}

func TestTradeService_Propose_Rejections(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.acquire(t, memory.OwnerTwo, "qb-allen", 20)
	env.acquire(t, memory.OwnerThree, "wr-chase", 35)

	base := ProposeTradeInput{
		LeagueID:          memory.LeagueIDDemo,
		FromUserID:        memory.OwnerTwo,
		ToUserID:          memory.OwnerThree,
		OfferedPlayerID:   "qb-allen",
		RequestedPlayerID: "wr-chase",
	}

	tests := []struct {
		name   string
		mutate func(in *ProposeTradeInput)
		want   error
	}{
		{name: "outsider", mutate: func(in *ProposeTradeInput) { in.FromUserID = "outsider" }, want: ErrForbidden},
		{name: "to self", mutate: func(in *ProposeTradeInput) { in.ToUserID = memory.OwnerTwo }, want: ErrInvalidInput},
		{name: "unknown target", mutate: func(in *ProposeTradeInput) { in.ToUserID = "owner-9" }, want: ErrNotFound},
		{name: "offered not rostered", mutate: func(in *ProposeTradeInput) { in.OfferedPlayerID = "qb-hurts" }, want: ErrInvalidInput},
		{name: "requested not on target", mutate: func(in *ProposeTradeInput) { in.RequestedPlayerID = "qb-allen" }, want: ErrInvalidInput},
		{name: "missing player", mutate: func(in *ProposeTradeInput) { in.RequestedPlayerID = " " }, want: ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			if _, err := env.tradeService.Propose(t.Context(), in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	pending, err := env.tradeService.ListPending(t.Context(), memory.LeagueIDDemo, memory.OwnerCommissioner)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected rejected proposals not stored, got %+v", pending)
	}
}

func TestTradeService_ListPending_NewestFirstForCommissioner(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.acquire(t, memory.OwnerTwo, "qb-allen", 20)
	env.acquire(t, memory.OwnerThree, "wr-chase", 35)
	env.acquire(t, memory.OwnerFour, "te-kelce", 15)

	for _, in := range []ProposeTradeInput{
		{FromUserID: memory.OwnerTwo, ToUserID: memory.OwnerThree, OfferedPlayerID: "qb-allen", RequestedPlayerID: "wr-chase"},
		{FromUserID: memory.OwnerFour, ToUserID: memory.OwnerTwo, OfferedPlayerID: "te-kelce", RequestedPlayerID: "qb-allen"},
	} {
		in.LeagueID = memory.LeagueIDDemo
		if _, err := env.tradeService.Propose(t.Context(), in); err != nil {
			t.Fatalf("propose %s: %v", in.OfferedPlayerID, err)
		}
	}

	if _, err := env.tradeService.ListPending(t.Context(), memory.LeagueIDDemo, memory.OwnerTwo); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected non-commissioner to be forbidden, got %v", err)
	}

	pending, err := env.tradeService.ListPending(t.Context(), memory.LeagueIDDemo, memory.OwnerCommissioner)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected two pending trades, got %d", len(pending))
	}
	if pending[0].Proposal.FromOwnerID != memory.OwnerFour {
		t.Fatalf("expected newest proposal first, got %+v", pending[0].Proposal)
	}
	if pending[0].OfferedPlayerName != "Travis Kelce" || pending[0].RequestedPlayerName != "Josh Allen" {
		t.Fatalf("expected player names, got %+v", pending[0])
	}
}

func TestTradeService_Propose_StoreFailureSurfacesUsingMockery(t *testing.T) {
	t.Parallel()

	leagueID := "league-x"
	leagueRepo := leaguemock.NewRepository(t)
	rosterRepo := rostermock.NewRepository(t)
	tradeRepo := trademock.NewRepository(t)

	leagueRepo.
		On("GetByID", mock.Anything, leagueID).
		Return(league.League{ID: leagueID, Name: "X"}, true, nil).
		Once()
	leagueRepo.
		On("GetMember", mock.Anything, leagueID, "a").
		Return(league.Member{LeagueID: leagueID, UserID: "a"}, true, nil).
		Once()
	leagueRepo.
		On("GetMember", mock.Anything, leagueID, "b").
		Return(league.Member{LeagueID: leagueID, UserID: "b"}, true, nil).
		Once()
	rosterRepo.
		On("ListByOwner", mock.Anything, leagueID, "a").
		Return([]roster.Entry{{PlayerID: "p-1"}}, nil).
		Once()
	rosterRepo.
		On("ListByOwner", mock.Anything, leagueID, "b").
		Return([]roster.Entry{{PlayerID: "p-2"}}, nil).
		Once()
	tradeRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(p trade.Proposal) bool {
			return p.ID == "entry-001" && p.FromOwnerID == "a" && p.ToOwnerID == "b" && p.Note == ""
		})).
		Return(errors.New("connection reset")).
		Once()

	service := NewTradeService(leagueRepo, playermock.NewRepository(t), rosterRepo, tradeRepo, &sequenceIDGenerator{}, logging.NewNop())
	service.now = func() time.Time { return testNow }

	_, err := service.Propose(context.Background(), ProposeTradeInput{
		LeagueID:          leagueID,
		FromUserID:        "a",
		ToUserID:          "b",
		OfferedPlayerID:   "p-1",
		RequestedPlayerID: "p-2",
	})
	if err == nil || errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
