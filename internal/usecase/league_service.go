package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/platform/id"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

type CreateLeagueInput struct {
	Name     string
	UserID   string
	TeamName string
}

type AddMemberInput struct {
	LeagueID     string
	UserID       string
	MemberUserID string
	TeamName     string
}

type UpdateSettingsInput struct {
	LeagueID       string
	UserID         string
	RosterSize     int
	SalaryCap      int64
	StartingSlots  map[string]int
	WaiverDeadline *time.Time
}

// LeagueService owns league settings and the membership checks every other
// league-scoped operation goes through.
type LeagueService struct {
	leagueRepo league.Repository
	idGen      id.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewLeagueService(leagueRepo league.Repository, idGen id.Generator, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		leagueRepo: leagueRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	items, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return items, nil
}

// CreateLeague stores a new league with default settings. The creator takes
// the commissioner seat.
func (s *LeagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	if input.UserID == "" {
		return league.League{}, fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}
	item := league.League{
		ID:          leagueID,
		Name:        strings.TrimSpace(input.Name),
		DraftStatus: league.DraftStatusPreDraft,
	}
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	settings := league.DefaultSettings(item.ID)
	settings.UpdatedAt = s.now().UTC()
	commissioner := league.Member{
		LeagueID:       item.ID,
		UserID:         input.UserID,
		TeamName:       strings.TrimSpace(input.TeamName),
		IsCommissioner: true,
	}

	if err := s.leagueRepo.Create(ctx, item, settings, commissioner); err != nil {
		if errors.Is(err, league.ErrNameTaken) {
			return league.League{}, fmt.Errorf("%w: league name already taken", ErrConflict)
		}
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	s.logger.InfoContext(ctx, "league created",
		"league_id", item.ID,
		"name", item.Name,
		"user_id", input.UserID,
	)
	return item, nil
}

// AddMember seats another user in the league. Only the commissioner recruits.
func (s *LeagueService) AddMember(ctx context.Context, input AddMemberInput) (league.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.AddMember")
	defer span.End()

	commissioner, err := requireCommissioner(ctx, s.leagueRepo, input.LeagueID, input.UserID)
	if err != nil {
		return league.Member{}, err
	}

	member := league.Member{
		LeagueID: commissioner.LeagueID,
		UserID:   strings.TrimSpace(input.MemberUserID),
		TeamName: strings.TrimSpace(input.TeamName),
	}
	if member.UserID == "" {
		return league.Member{}, fmt.Errorf("%w: member user id is required", ErrInvalidInput)
	}

	if err := s.leagueRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, league.ErrMemberExists) {
			return league.Member{}, fmt.Errorf("%w: user %s is already in league %s", ErrConflict, member.UserID, member.LeagueID)
		}
		return league.Member{}, fmt.Errorf("add league member: %w", err)
	}

	s.logger.InfoContext(ctx, "league member added",
		"league_id", member.LeagueID,
		"user_id", input.UserID,
		"member_user_id", member.UserID,
	)
	return member, nil
}

func (s *LeagueService) ListMembers(ctx context.Context, leagueID, userID string) ([]league.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListMembers")
	defer span.End()

	member, err := requireMember(ctx, s.leagueRepo, leagueID, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.leagueRepo.ListMembers(ctx, member.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("list league members: %w", err)
	}
	return items, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	return loadLeague(ctx, s.leagueRepo, leagueID)
}

// RequireMember fails with ErrForbidden when userID has no seat in the league.
func (s *LeagueService) RequireMember(ctx context.Context, leagueID, userID string) (league.Member, error) {
	return requireMember(ctx, s.leagueRepo, leagueID, userID)
}

func (s *LeagueService) GetSettings(ctx context.Context, leagueID, userID string) (league.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetSettings")
	defer span.End()

	if _, err := requireMember(ctx, s.leagueRepo, leagueID, userID); err != nil {
		return league.Settings{}, err
	}
	return loadSettings(ctx, s.leagueRepo, leagueID)
}

func (s *LeagueService) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (league.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.UpdateSettings")
	defer span.End()

	input.LeagueID = strings.TrimSpace(input.LeagueID)
	if _, err := requireCommissioner(ctx, s.leagueRepo, input.LeagueID, input.UserID); err != nil {
		return league.Settings{}, err
	}

	current, err := loadSettings(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return league.Settings{}, err
	}

	next := current.Clone()
	if input.RosterSize != 0 {
		next.RosterSize = input.RosterSize
	}
	if input.SalaryCap != 0 {
		next.SalaryCap = input.SalaryCap
	}
	if input.StartingSlots != nil {
		next.StartingSlots = make(map[string]int, len(input.StartingSlots))
		for slot, count := range input.StartingSlots {
			next.StartingSlots[strings.ToUpper(strings.TrimSpace(slot))] = count
		}
	}
	next.WaiverDeadline = input.WaiverDeadline
	next.UpdatedAt = s.now().UTC()

	if err := next.Validate(); err != nil {
		return league.Settings{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.leagueRepo.UpsertSettings(ctx, next); err != nil {
		return league.Settings{}, fmt.Errorf("upsert league settings: %w", err)
	}

	s.logger.InfoContext(ctx, "league settings updated",
		"league_id", next.LeagueID,
		"user_id", input.UserID,
		"roster_size", next.RosterSize,
		"salary_cap", next.SalaryCap,
	)
	return next, nil
}

func loadLeague(ctx context.Context, repo league.Repository, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	return item, nil
}

// loadSettings falls back to league defaults when nothing is stored.
func loadSettings(ctx context.Context, repo league.Repository, leagueID string) (league.Settings, error) {
	settings, exists, err := repo.GetSettings(ctx, leagueID)
	if err != nil {
		return league.Settings{}, fmt.Errorf("get league settings: %w", err)
	}
	if !exists {
		return league.DefaultSettings(leagueID), nil
	}
	return settings, nil
}

func requireMember(ctx context.Context, repo league.Repository, leagueID, userID string) (league.Member, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return league.Member{}, fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}
	if _, err := loadLeague(ctx, repo, leagueID); err != nil {
		return league.Member{}, err
	}

	member, exists, err := repo.GetMember(ctx, strings.TrimSpace(leagueID), userID)
	if err != nil {
		return league.Member{}, fmt.Errorf("get league member: %w", err)
	}
	if !exists {
		return league.Member{}, fmt.Errorf("%w: user %s is not a member of league %s", ErrForbidden, userID, leagueID)
	}
	return member, nil
}

func requireCommissioner(ctx context.Context, repo league.Repository, leagueID, userID string) (league.Member, error) {
	member, err := requireMember(ctx, repo, leagueID, userID)
	if err != nil {
		return league.Member{}, err
	}
	if !member.IsCommissioner {
		return league.Member{}, fmt.Errorf("%w: commissioner role required", ErrForbidden)
	}
	return member, nil
}
