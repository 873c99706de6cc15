package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/iter"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

const boardMaxGoroutines = 8

type RosterQuery struct {
	LeagueID string
	// RequesterID must be a league member; OwnerID defaults to the requester.
	RequesterID string
	OwnerID     string
	Week        int
}

type UpdateLineupInput struct {
	LeagueID   string
	OwnerID    string
	Week       int
	StarterIDs []string
}

type SubmitLineupInput struct {
	LeagueID string
	OwnerID  string
	Week     int
}

// RosterView is one owner's organized roster for a week.
type RosterView struct {
	LeagueID        string
	OwnerID         string
	TeamName        string
	Season          int
	Week            int
	Rows            []lineup.Row
	TotalSpent      int64
	LineupSubmitted bool
	SubmittedAt     *time.Time
}

type LineupService struct {
	leagueRepo     league.Repository
	playerRepo     player.Repository
	rosterRepo     roster.Repository
	submissionRepo lineup.SubmissionRepository
	locks          *LockService
	logger         *logging.Logger
	now            func() time.Time
}

func NewLineupService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	submissionRepo lineup.SubmissionRepository,
	locks *LockService,
	logger *logging.Logger,
) *LineupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupService{
		leagueRepo:     leagueRepo,
		playerRepo:     playerRepo,
		rosterRepo:     rosterRepo,
		submissionRepo: submissionRepo,
		locks:          locks,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *LineupService) GetRoster(ctx context.Context, query RosterQuery) (RosterView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.GetRoster")
	defer span.End()

	if err := validateWeek(query.Week); err != nil {
		return RosterView{}, err
	}
	if _, err := requireMember(ctx, s.leagueRepo, query.LeagueID, query.RequesterID); err != nil {
		return RosterView{}, err
	}

	ownerID := strings.TrimSpace(query.OwnerID)
	if ownerID == "" {
		ownerID = strings.TrimSpace(query.RequesterID)
	}
	owner, exists, err := s.leagueRepo.GetMember(ctx, query.LeagueID, ownerID)
	if err != nil {
		return RosterView{}, fmt.Errorf("get roster owner: %w", err)
	}
	if !exists {
		return RosterView{}, fmt.Errorf("%w: owner %s is not in league", ErrNotFound, ownerID)
	}

	return s.buildView(ctx, owner, query.Week, seasonOf(s.now()))
}

// GetLeagueBoard organizes every member's roster concurrently; rosters are
// returned in membership order.
func (s *LineupService) GetLeagueBoard(ctx context.Context, leagueID, requesterID string, week int) ([]RosterView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.GetLeagueBoard")
	defer span.End()

	if err := validateWeek(week); err != nil {
		return nil, err
	}
	if _, err := requireMember(ctx, s.leagueRepo, leagueID, requesterID); err != nil {
		return nil, err
	}

	members, err := s.leagueRepo.ListMembers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list league members: %w", err)
	}

	season := seasonOf(s.now())
	mapper := iter.Mapper[league.Member, RosterView]{MaxGoroutines: boardMaxGoroutines}
	views, err := mapper.MapErr(members, func(m *league.Member) (RosterView, error) {
		return s.buildView(ctx, *m, week, season)
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// UpdateLineup moves every unlocked entry to STARTER or BENCH. Any starter
// set is accepted; shape is only checked on submit. Returns the locked ids.
func (s *LineupService) UpdateLineup(ctx context.Context, input UpdateLineupInput) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.UpdateLineup")
	defer span.End()

	if err := validateWeek(input.Week); err != nil {
		return nil, err
	}
	if _, err := requireMember(ctx, s.leagueRepo, input.LeagueID, input.OwnerID); err != nil {
		return nil, err
	}

	entries, err := s.rosterRepo.ListByOwner(ctx, input.LeagueID, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list roster by owner: %w", err)
	}

	locked, err := s.locks.LockedIDs(ctx, entryPlayerIDs(entries), seasonOf(s.now()), input.Week)
	if err != nil {
		return nil, err
	}

	starters := make(map[string]struct{}, len(input.StarterIDs))
	for _, id := range input.StarterIDs {
		if id = strings.TrimSpace(id); id != "" {
			starters[id] = struct{}{}
		}
	}

	statuses := make(map[string]roster.Status, len(entries))
	lockedIDs := make([]string, 0, len(locked))
	for _, e := range entries {
		if _, isLocked := locked[e.PlayerID]; isLocked {
			lockedIDs = append(lockedIDs, e.PlayerID)
			continue
		}
		if _, ok := starters[e.PlayerID]; ok {
			statuses[e.PlayerID] = roster.StatusStarter
		} else {
			statuses[e.PlayerID] = roster.StatusBench
		}
	}

	if len(statuses) > 0 {
		if err := s.rosterRepo.SetStatuses(ctx, input.LeagueID, input.OwnerID, statuses); err != nil {
			return nil, fmt.Errorf("set roster statuses: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "lineup updated",
		"league_id", input.LeagueID,
		"owner_id", input.OwnerID,
		"week", input.Week,
		"starters", len(starters),
		"locked", len(lockedIDs),
	)
	return lockedIDs, nil
}

// SubmitLineup validates the current starters against league rules and
// records the submission. Every violation is returned in one ValidationError.
func (s *LineupService) SubmitLineup(ctx context.Context, input SubmitLineupInput) (lineup.Submission, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.SubmitLineup")
	defer span.End()

	if err := validateWeek(input.Week); err != nil {
		return lineup.Submission{}, err
	}
	if _, err := requireMember(ctx, s.leagueRepo, input.LeagueID, input.OwnerID); err != nil {
		return lineup.Submission{}, err
	}

	settings, err := loadSettings(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return lineup.Submission{}, err
	}

	entries, err := s.rosterRepo.ListByOwner(ctx, input.LeagueID, input.OwnerID)
	if err != nil {
		return lineup.Submission{}, fmt.Errorf("list roster by owner: %w", err)
	}

	starterIDs := currentStarterIDs(entries)
	players, err := s.playerRepo.GetByIDs(ctx, starterIDs)
	if err != nil {
		return lineup.Submission{}, fmt.Errorf("get players by ids: %w", err)
	}
	positionByID := make(map[string]player.Position, len(players))
	for _, p := range players {
		positionByID[p.ID] = p.Position
	}

	positions := make([]player.Position, 0, len(starterIDs))
	for _, id := range starterIDs {
		positions = append(positions, positionByID[id])
	}

	if violations := lineup.Validate(positions, settings); len(violations) > 0 {
		return lineup.Submission{}, &ValidationError{Violations: violations}
	}

	now := s.now().UTC()
	submission, err := s.submissionRepo.Upsert(ctx, lineup.Submission{
		OwnerID:     input.OwnerID,
		LeagueID:    input.LeagueID,
		Season:      seasonOf(now),
		Week:        input.Week,
		SubmittedAt: now,
	})
	if err != nil {
		return lineup.Submission{}, fmt.Errorf("upsert lineup submission: %w", err)
	}

	s.logger.InfoContext(ctx, "lineup submitted",
		"league_id", input.LeagueID,
		"owner_id", input.OwnerID,
		"week", input.Week,
	)
	return submission, nil
}

func (s *LineupService) buildView(ctx context.Context, owner league.Member, week, season int) (RosterView, error) {
	entries, err := s.rosterRepo.ListByOwner(ctx, owner.LeagueID, owner.UserID)
	if err != nil {
		return RosterView{}, fmt.Errorf("list roster by owner: %w", err)
	}

	ids := entryPlayerIDs(entries)
	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return RosterView{}, fmt.Errorf("get players by ids: %w", err)
	}
	playersByID := make(map[string]player.Player, len(players))
	for _, p := range players {
		playersByID[p.ID] = p
	}

	locked, err := s.locks.LockedIDs(ctx, ids, season, week)
	if err != nil {
		return RosterView{}, err
	}

	view := RosterView{
		LeagueID:   owner.LeagueID,
		OwnerID:    owner.UserID,
		TeamName:   owner.DisplayTeamName(),
		Season:     season,
		Week:       week,
		Rows:       lineup.Organize(entries, playersByID, locked),
		TotalSpent: roster.TotalSpent(entries),
	}

	submission, submitted, err := s.submissionRepo.Get(ctx, owner.UserID, owner.LeagueID, season, week)
	if err != nil {
		return RosterView{}, fmt.Errorf("get lineup submission: %w", err)
	}
	if submitted {
		at := submission.SubmittedAt
		view.LineupSubmitted = true
		view.SubmittedAt = &at
	}
	return view, nil
}

func entryPlayerIDs(entries []roster.Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.PlayerID]; ok {
			continue
		}
		seen[e.PlayerID] = struct{}{}
		out = append(out, e.PlayerID)
	}
	return out
}

// currentStarterIDs applies latest-entry-wins before reading statuses.
func currentStarterIDs(entries []roster.Entry) []string {
	latest := make(map[string]roster.Status, len(entries))
	order := entryPlayerIDs(entries)
	for _, e := range entries {
		latest[e.PlayerID] = e.Status
	}

	out := make([]string, 0, len(order))
	for _, id := range order {
		if latest[id] == roster.StatusStarter {
			out = append(out, id)
		}
	}
	return out
}
