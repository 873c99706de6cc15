package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
)

const (
	minPlayerQueryLength = 2
	playerSearchLimit    = 15
	freeAgentLimit       = 50
	allPositionsFilter   = "ALL"
)

type PlayerService struct {
	leagueRepo league.Repository
	playerRepo player.Repository
	rosterRepo roster.Repository
}

func NewPlayerService(leagueRepo league.Repository, playerRepo player.Repository, rosterRepo roster.Repository) *PlayerService {
	return &PlayerService{
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
		rosterRepo: rosterRepo,
	}
}

// SearchPlayers matches the whole player pool by name, optionally narrowed to
// one position.
func (s *PlayerService) SearchPlayers(ctx context.Context, query, position string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SearchPlayers")
	defer span.End()

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minPlayerQueryLength {
		return nil, fmt.Errorf("%w: query must be at least %d characters", ErrInvalidInput, minPlayerQueryLength)
	}
	pos, err := parsePositionFilter(position)
	if err != nil {
		return nil, err
	}

	items, err := s.playerRepo.Search(ctx, player.Filter{
		NameQuery: query,
		Position:  pos,
		Limit:     playerSearchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return items, nil
}

// ListFreeAgents returns players nobody in the league owns.
func (s *PlayerService) ListFreeAgents(ctx context.Context, leagueID, userID, position string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListFreeAgents")
	defer span.End()

	member, err := requireMember(ctx, s.leagueRepo, leagueID, userID)
	if err != nil {
		return nil, err
	}
	pos, err := parsePositionFilter(position)
	if err != nil {
		return nil, err
	}

	entries, err := s.rosterRepo.ListByLeague(ctx, member.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("list league rosters: %w", err)
	}
	owned := make([]string, 0, len(entries))
	for _, entry := range entries {
		owned = append(owned, entry.PlayerID)
	}

	items, err := s.playerRepo.Search(ctx, player.Filter{
		Position:   pos,
		ExcludeIDs: owned,
		Limit:      freeAgentLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list free agents: %w", err)
	}
	return items, nil
}

// parsePositionFilter accepts an empty value or ALL as no filter.
func parsePositionFilter(raw string) (player.Position, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, allPositionsFilter) {
		return "", nil
	}
	pos := player.NormalizePosition(raw)
	if _, ok := player.AllPositions[pos]; !ok {
		return "", fmt.Errorf("%w: unknown position %q", ErrInvalidInput, raw)
	}
	return pos, nil
}
