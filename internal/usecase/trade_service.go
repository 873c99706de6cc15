package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/domain/trade"
	"github.com/riskibarqy/fantasy-draft/internal/platform/id"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

const maxTradeNoteLength = 500

type ProposeTradeInput struct {
	LeagueID          string
	FromUserID        string
	ToUserID          string
	OfferedPlayerID   string
	RequestedPlayerID string
	Note              string
}

// TradeView is a proposal with the player names the commissioner reviews.
type TradeView struct {
	Proposal            trade.Proposal
	OfferedPlayerName   string
	RequestedPlayerName string
}

// TradeService records one-for-one trade proposals between league members.
// Proposals never move players; the commissioner reviews them.
type TradeService struct {
	leagueRepo league.Repository
	playerRepo player.Repository
	rosterRepo roster.Repository
	tradeRepo  trade.Repository
	idGen      id.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewTradeService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	tradeRepo trade.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *TradeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TradeService{
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
		rosterRepo: rosterRepo,
		tradeRepo:  tradeRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *TradeService) Propose(ctx context.Context, input ProposeTradeInput) (trade.Proposal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TradeService.Propose")
	defer span.End()

	from, err := requireMember(ctx, s.leagueRepo, input.LeagueID, input.FromUserID)
	if err != nil {
		return trade.Proposal{}, err
	}

	toUserID := strings.TrimSpace(input.ToUserID)
	offeredID := strings.TrimSpace(input.OfferedPlayerID)
	requestedID := strings.TrimSpace(input.RequestedPlayerID)
	note := strings.TrimSpace(input.Note)
	switch {
	case toUserID == "":
		return trade.Proposal{}, fmt.Errorf("%w: target manager is required", ErrInvalidInput)
	case toUserID == from.UserID:
		return trade.Proposal{}, fmt.Errorf("%w: cannot propose a trade to yourself", ErrInvalidInput)
	case offeredID == "" || requestedID == "":
		return trade.Proposal{}, fmt.Errorf("%w: offered and requested players are required", ErrInvalidInput)
	case len(note) > maxTradeNoteLength:
		return trade.Proposal{}, fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, maxTradeNoteLength)
	}

	to, exists, err := s.leagueRepo.GetMember(ctx, from.LeagueID, toUserID)
	if err != nil {
		return trade.Proposal{}, fmt.Errorf("get league member: %w", err)
	}
	if !exists {
		return trade.Proposal{}, fmt.Errorf("%w: target manager %s not found in league %s", ErrNotFound, toUserID, from.LeagueID)
	}

	if err := s.requireRostered(ctx, from.LeagueID, from.UserID, offeredID, "offered player is not on your roster"); err != nil {
		return trade.Proposal{}, err
	}
	if err := s.requireRostered(ctx, from.LeagueID, to.UserID, requestedID, "requested player is not on that manager's roster"); err != nil {
		return trade.Proposal{}, err
	}

	proposalID, err := s.idGen.NewID()
	if err != nil {
		return trade.Proposal{}, fmt.Errorf("generate trade id: %w", err)
	}
	proposal := trade.Proposal{
		ID:                proposalID,
		LeagueID:          from.LeagueID,
		FromOwnerID:       from.UserID,
		ToOwnerID:         to.UserID,
		OfferedPlayerID:   offeredID,
		RequestedPlayerID: requestedID,
		Note:              note,
		Status:            trade.StatusPending,
		CreatedAt:         s.now().UTC(),
	}
	if err := proposal.Validate(); err != nil {
		return trade.Proposal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.tradeRepo.Create(ctx, proposal); err != nil {
		return trade.Proposal{}, fmt.Errorf("create trade proposal: %w", err)
	}

	s.logger.InfoContext(ctx, "trade proposed",
		"league_id", proposal.LeagueID,
		"trade_id", proposal.ID,
		"from_user_id", proposal.FromOwnerID,
		"to_user_id", proposal.ToOwnerID,
		"offered_player_id", proposal.OfferedPlayerID,
		"requested_player_id", proposal.RequestedPlayerID,
	)
	return proposal, nil
}

// ListPending returns the league's open proposals, newest first. Only the
// commissioner reviews trades.
func (s *TradeService) ListPending(ctx context.Context, leagueID, userID string) ([]TradeView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TradeService.ListPending")
	defer span.End()

	commissioner, err := requireCommissioner(ctx, s.leagueRepo, leagueID, userID)
	if err != nil {
		return nil, err
	}

	proposals, err := s.tradeRepo.ListByStatus(ctx, commissioner.LeagueID, trade.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending trades: %w", err)
	}
	if len(proposals) == 0 {
		return []TradeView{}, nil
	}

	ids := make([]string, 0, len(proposals)*2)
	for _, p := range proposals {
		ids = append(ids, p.OfferedPlayerID, p.RequestedPlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get traded players: %w", err)
	}
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	out := make([]TradeView, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, TradeView{
			Proposal:            p,
			OfferedPlayerName:   names[p.OfferedPlayerID],
			RequestedPlayerName: names[p.RequestedPlayerID],
		})
	}
	return out, nil
}

func (s *TradeService) requireRostered(ctx context.Context, leagueID, ownerID, playerID, reason string) error {
	entries, err := s.rosterRepo.ListByOwner(ctx, leagueID, ownerID)
	if err != nil {
		return fmt.Errorf("list roster: %w", err)
	}
	for _, entry := range entries {
		if entry.PlayerID == playerID {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
