package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/moby/locker"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/platform/id"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

type AcquireInput struct {
	LeagueID string
	OwnerID  string
	PlayerID string
	Amount   int64
	Source   roster.Source
}

// RosterService is the single write path for roster ownership. Acquisitions
// are serialized per league in process; the repository enforces the same
// rules again so concurrent processes cannot double-assign a player.
type RosterService struct {
	leagueRepo league.Repository
	playerRepo player.Repository
	rosterRepo roster.Repository
	idGen      id.Generator
	locks      *locker.Locker
	logger     *logging.Logger
	now        func() time.Time
}

func NewRosterService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterService{
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
		rosterRepo: rosterRepo,
		idGen:      idGen,
		locks:      locker.New(),
		logger:     logger,
		now:        time.Now,
	}
}

// RecordAcquisition adds a player to an owner's roster. It fails with
// ErrConflict when the player is already owned in the league or the owner's
// roster is at capacity.
func (s *RosterService) RecordAcquisition(ctx context.Context, input AcquireInput) (roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.RecordAcquisition")
	defer span.End()

	entry, settings, err := s.prepare(ctx, input)
	if err != nil {
		return roster.Entry{}, err
	}

	s.locks.Lock(entry.LeagueID)
	defer s.locks.Unlock(entry.LeagueID)

	saved, err := s.rosterRepo.RecordAcquisition(ctx, entry, settings.RosterSize)
	if err != nil {
		return roster.Entry{}, mapRosterError(err, entry)
	}

	s.logger.InfoContext(ctx, "roster acquisition recorded",
		"league_id", saved.LeagueID,
		"owner_id", saved.OwnerID,
		"player_id", saved.PlayerID,
		"amount", saved.Amount,
		"source", string(saved.Source),
	)
	return saved, nil
}

// ReplaceAcquisition drops one player and adds another in one atomic write.
// Capacity is not checked since the roster size does not change.
func (s *RosterService) ReplaceAcquisition(ctx context.Context, dropPlayerID string, input AcquireInput) (roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ReplaceAcquisition")
	defer span.End()

	dropPlayerID = strings.TrimSpace(dropPlayerID)
	if dropPlayerID == "" {
		return roster.Entry{}, fmt.Errorf("%w: drop player id is required", ErrInvalidInput)
	}

	entry, _, err := s.prepare(ctx, input)
	if err != nil {
		return roster.Entry{}, err
	}

	s.locks.Lock(entry.LeagueID)
	defer s.locks.Unlock(entry.LeagueID)

	saved, err := s.rosterRepo.ReplaceAcquisition(ctx, dropPlayerID, entry)
	if err != nil {
		return roster.Entry{}, mapRosterError(err, entry)
	}

	s.logger.InfoContext(ctx, "roster acquisition replaced",
		"league_id", saved.LeagueID,
		"owner_id", saved.OwnerID,
		"player_id", saved.PlayerID,
		"dropped_player_id", dropPlayerID,
	)
	return saved, nil
}

// Remove fails with ErrNotFound when the owner does not hold the player.
func (s *RosterService) Remove(ctx context.Context, leagueID, ownerID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Remove")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	ownerID = strings.TrimSpace(ownerID)
	playerID = strings.TrimSpace(playerID)
	if leagueID == "" || ownerID == "" || playerID == "" {
		return fmt.Errorf("%w: league_id, owner_id and player_id are required", ErrInvalidInput)
	}

	s.locks.Lock(leagueID)
	defer s.locks.Unlock(leagueID)

	if err := s.rosterRepo.Remove(ctx, leagueID, ownerID, playerID); err != nil {
		if errors.Is(err, roster.ErrEntryNotFound) {
			return fmt.Errorf("%w: player %s is not on roster", ErrNotFound, playerID)
		}
		return fmt.Errorf("remove roster entry: %w", err)
	}

	s.logger.InfoContext(ctx, "roster entry removed",
		"league_id", leagueID,
		"owner_id", ownerID,
		"player_id", playerID,
	)
	return nil
}

func (s *RosterService) ListByOwner(ctx context.Context, leagueID, ownerID string) ([]roster.Entry, error) {
	entries, err := s.rosterRepo.ListByOwner(ctx, leagueID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list roster by owner: %w", err)
	}
	return entries, nil
}

// Reset wipes every roster in the league.
func (s *RosterService) Reset(ctx context.Context, leagueID string) error {
	s.locks.Lock(leagueID)
	defer s.locks.Unlock(leagueID)

	if err := s.rosterRepo.DeleteByLeague(ctx, leagueID); err != nil {
		return fmt.Errorf("delete league rosters: %w", err)
	}
	return nil
}

func (s *RosterService) prepare(ctx context.Context, input AcquireInput) (roster.Entry, league.Settings, error) {
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.OwnerID = strings.TrimSpace(input.OwnerID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if input.Source == "" {
		input.Source = roster.SourceDraft
	}

	if _, err := requireMember(ctx, s.leagueRepo, input.LeagueID, input.OwnerID); err != nil {
		return roster.Entry{}, league.Settings{}, err
	}
	if input.PlayerID == "" {
		return roster.Entry{}, league.Settings{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if _, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		return roster.Entry{}, league.Settings{}, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return roster.Entry{}, league.Settings{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	settings, err := loadSettings(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return roster.Entry{}, league.Settings{}, err
	}

	entryID, err := s.idGen.NewID()
	if err != nil {
		return roster.Entry{}, league.Settings{}, fmt.Errorf("generate roster entry id: %w", err)
	}

	now := s.now().UTC()
	entry := roster.Entry{
		ID:         entryID,
		LeagueID:   input.LeagueID,
		OwnerID:    input.OwnerID,
		PlayerID:   input.PlayerID,
		Amount:     input.Amount,
		Season:     seasonOf(now),
		Source:     input.Source,
		AcquiredAt: now,
	}
	if err := entry.Validate(); err != nil {
		return roster.Entry{}, league.Settings{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return entry, settings, nil
}

func mapRosterError(err error, entry roster.Entry) error {
	switch {
	case errors.Is(err, roster.ErrPlayerAlreadyOwned):
		return fmt.Errorf("%w: player %s already owned in league %s", ErrConflict, entry.PlayerID, entry.LeagueID)
	case errors.Is(err, roster.ErrRosterFull):
		return fmt.Errorf("%w: roster of %s is full", ErrConflict, entry.OwnerID)
	case errors.Is(err, roster.ErrEntryNotFound):
		return fmt.Errorf("%w: drop target is not on roster", ErrNotFound)
	default:
		return fmt.Errorf("record roster acquisition: %w", err)
	}
}

// seasonOf is the NFL season a timestamp belongs to.
func seasonOf(now time.Time) int {
	return now.UTC().Year()
}
