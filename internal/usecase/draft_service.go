package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/moby/locker"

	"github.com/riskibarqy/fantasy-draft/internal/domain/draft"
	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

// DraftBroadcaster fans draft events out to live viewers. Delivery problems
// are the broadcaster's to log; they never fail the draft action.
type DraftBroadcaster interface {
	Publish(ctx context.Context, event draft.Event)
}

type noopBroadcaster struct{}

func (noopBroadcaster) Publish(context.Context, draft.Event) {}

type NominateInput struct {
	LeagueID   string
	OwnerID    string
	PlayerID   string
	OpeningBid int64
}

type BidInput struct {
	LeagueID string
	OwnerID  string
	Amount   int64
}

// DraftState is the live view of a league's auction.
type DraftState struct {
	LeagueID string
	Status   league.DraftStatus
	Lot      *draft.Lot
}

// DraftService runs the auction. Open lots live in memory, so one league's
// draft must be served by a single process; events still reach viewers on
// other processes through the broadcaster.
type DraftService struct {
	leagueRepo  league.Repository
	playerRepo  player.Repository
	rosterRepo  roster.Repository
	rosters     *RosterService
	broadcaster DraftBroadcaster
	logger      *logging.Logger
	now         func() time.Time

	leagueLocks *locker.Locker
	mu          sync.RWMutex
	lots        map[string]draft.Lot
}

func NewDraftService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	rosters *RosterService,
	broadcaster DraftBroadcaster,
	logger *logging.Logger,
) *DraftService {
	if broadcaster == nil {
		broadcaster = noopBroadcaster{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &DraftService{
		leagueRepo:  leagueRepo,
		playerRepo:  playerRepo,
		rosterRepo:  rosterRepo,
		rosters:     rosters,
		broadcaster: broadcaster,
		logger:      logger,
		now:         time.Now,
		leagueLocks: locker.New(),
		lots:        make(map[string]draft.Lot),
	}
}

func (s *DraftService) CurrentLot(ctx context.Context, leagueID, userID string) (DraftState, error) {
	if _, err := requireMember(ctx, s.leagueRepo, leagueID, userID); err != nil {
		return DraftState{}, err
	}
	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return DraftState{}, err
	}

	state := DraftState{LeagueID: item.ID, Status: item.DraftStatus}
	if lot, ok := s.lot(item.ID); ok {
		state.Lot = &lot
	}
	return state, nil
}

func (s *DraftService) Start(ctx context.Context, leagueID, userID string) (DraftState, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Start")
	defer span.End()

	return s.transition(ctx, leagueID, userID, func(item league.League) error {
		if item.DraftStatus != league.DraftStatusPreDraft {
			return fmt.Errorf("%w: %v", ErrInvalidInput, draft.ErrDraftNotPending)
		}
		return s.leagueRepo.UpdateDraftStatus(ctx, item.ID, league.DraftStatusActive)
	})
}

// Finalize closes the draft; it refuses while a player is still on the block.
func (s *DraftService) Finalize(ctx context.Context, leagueID, userID string) (DraftState, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Finalize")
	defer span.End()

	return s.transition(ctx, leagueID, userID, func(item league.League) error {
		if _, open := s.lot(item.ID); open {
			return fmt.Errorf("%w: %v", ErrConflict, draft.ErrLotInProgress)
		}
		return s.leagueRepo.UpdateDraftStatus(ctx, item.ID, league.DraftStatusCompleted)
	})
}

// Reset deletes every roster entry in the league and returns it to PRE_DRAFT.
func (s *DraftService) Reset(ctx context.Context, leagueID, userID string) (DraftState, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Reset")
	defer span.End()

	return s.transition(ctx, leagueID, userID, func(item league.League) error {
		if err := s.rosters.Reset(ctx, item.ID); err != nil {
			return err
		}
		s.clearLot(item.ID)
		return s.leagueRepo.UpdateDraftStatus(ctx, item.ID, league.DraftStatusPreDraft)
	})
}

func (s *DraftService) Nominate(ctx context.Context, input NominateInput) (draft.Lot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Nominate")
	defer span.End()

	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if input.OpeningBid < draft.MinBid {
		return draft.Lot{}, fmt.Errorf("%w: opening bid must be at least %d", ErrInvalidInput, draft.MinBid)
	}
	if input.PlayerID == "" {
		return draft.Lot{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	member, err := requireMember(ctx, s.leagueRepo, input.LeagueID, input.OwnerID)
	if err != nil {
		return draft.Lot{}, err
	}

	s.leagueLocks.Lock(member.LeagueID)
	defer s.leagueLocks.Unlock(member.LeagueID)

	if err := s.requireActive(ctx, member.LeagueID); err != nil {
		return draft.Lot{}, err
	}
	if _, open := s.lot(member.LeagueID); open {
		return draft.Lot{}, fmt.Errorf("%w: %v", ErrConflict, draft.ErrLotInProgress)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return draft.Lot{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return draft.Lot{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	leagueEntries, err := s.rosterRepo.ListByLeague(ctx, member.LeagueID)
	if err != nil {
		return draft.Lot{}, fmt.Errorf("list league rosters: %w", err)
	}
	for _, e := range leagueEntries {
		if e.PlayerID == p.ID {
			return draft.Lot{}, fmt.Errorf("%w: player %s already owned in league %s", ErrConflict, p.ID, member.LeagueID)
		}
	}
	if err := s.checkBidder(ctx, member.LeagueID, member.UserID, input.OpeningBid, leagueEntries); err != nil {
		return draft.Lot{}, err
	}

	now := s.now().UTC()
	lot := draft.Lot{
		LeagueID:     member.LeagueID,
		PlayerID:     p.ID,
		NominatorID:  member.UserID,
		HighBidderID: member.UserID,
		HighBid:      input.OpeningBid,
		OpenedAt:     now,
		UpdatedAt:    now,
	}
	s.storeLot(lot)

	s.broadcaster.Publish(ctx, draft.Event{
		Type:       draft.EventNomination,
		LeagueID:   lot.LeagueID,
		OccurredAt: now,
		Payload:    payloadFor(p, member, lot.HighBid),
	})
	return lot, nil
}

func (s *DraftService) Bid(ctx context.Context, input BidInput) (draft.Lot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Bid")
	defer span.End()

	member, err := requireMember(ctx, s.leagueRepo, input.LeagueID, input.OwnerID)
	if err != nil {
		return draft.Lot{}, err
	}

	s.leagueLocks.Lock(member.LeagueID)
	defer s.leagueLocks.Unlock(member.LeagueID)

	if err := s.requireActive(ctx, member.LeagueID); err != nil {
		return draft.Lot{}, err
	}
	lot, open := s.lot(member.LeagueID)
	if !open {
		return draft.Lot{}, fmt.Errorf("%w: %v", ErrInvalidInput, draft.ErrNoActiveLot)
	}

	leagueEntries, err := s.rosterRepo.ListByLeague(ctx, member.LeagueID)
	if err != nil {
		return draft.Lot{}, fmt.Errorf("list league rosters: %w", err)
	}
	if err := s.checkBidder(ctx, member.LeagueID, member.UserID, input.Amount, leagueEntries); err != nil {
		return draft.Lot{}, err
	}

	if err := lot.Accept(member.UserID, input.Amount, s.now().UTC()); err != nil {
		return draft.Lot{}, fmt.Errorf("%w: %v", ErrConflict, err)
	}
	s.storeLot(lot)

	p, _, err := s.playerRepo.GetByID(ctx, lot.PlayerID)
	if err != nil {
		s.logger.WarnContext(ctx, "load bid player for broadcast failed", "league_id", lot.LeagueID, "player_id", lot.PlayerID, "error", err)
		p = player.Player{ID: lot.PlayerID}
	}
	s.broadcaster.Publish(ctx, draft.Event{
		Type:       draft.EventNewBid,
		LeagueID:   lot.LeagueID,
		OccurredAt: lot.UpdatedAt,
		Payload:    payloadFor(p, member, lot.HighBid),
	})
	return lot, nil
}

// CompletePick awards the open lot to its high bidder. PICK_MADE goes out
// only after the roster write has succeeded.
func (s *DraftService) CompletePick(ctx context.Context, leagueID, userID string) (roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CompletePick")
	defer span.End()

	if _, err := requireCommissioner(ctx, s.leagueRepo, leagueID, userID); err != nil {
		return roster.Entry{}, err
	}
	leagueID = strings.TrimSpace(leagueID)

	s.leagueLocks.Lock(leagueID)
	defer s.leagueLocks.Unlock(leagueID)

	lot, open := s.lot(leagueID)
	if !open {
		return roster.Entry{}, fmt.Errorf("%w: %v", ErrInvalidInput, draft.ErrNoActiveLot)
	}

	entry, err := s.rosters.RecordAcquisition(ctx, AcquireInput{
		LeagueID: lot.LeagueID,
		OwnerID:  lot.HighBidderID,
		PlayerID: lot.PlayerID,
		Amount:   lot.HighBid,
		Source:   roster.SourceDraft,
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			s.clearLot(leagueID)
		}
		return roster.Entry{}, err
	}
	s.clearLot(leagueID)

	winner, found, err := s.leagueRepo.GetMember(ctx, leagueID, entry.OwnerID)
	if err != nil || !found {
		s.logger.WarnContext(ctx, "load pick winner for broadcast failed", "league_id", leagueID, "owner_id", entry.OwnerID, "error", err)
		winner = league.Member{LeagueID: leagueID, UserID: entry.OwnerID}
	}
	p, _, err := s.playerRepo.GetByID(ctx, entry.PlayerID)
	if err != nil {
		s.logger.WarnContext(ctx, "load pick player for broadcast failed", "league_id", leagueID, "player_id", entry.PlayerID, "error", err)
		p = player.Player{ID: entry.PlayerID}
	}

	s.broadcaster.Publish(ctx, draft.Event{
		Type:       draft.EventPickMade,
		LeagueID:   leagueID,
		OccurredAt: entry.AcquiredAt,
		Payload:    payloadFor(p, winner, entry.Amount),
	})
	return entry, nil
}

func (s *DraftService) transition(ctx context.Context, leagueID, userID string, apply func(league.League) error) (DraftState, error) {
	if _, err := requireCommissioner(ctx, s.leagueRepo, leagueID, userID); err != nil {
		return DraftState{}, err
	}
	leagueID = strings.TrimSpace(leagueID)

	s.leagueLocks.Lock(leagueID)
	defer s.leagueLocks.Unlock(leagueID)

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return DraftState{}, err
	}
	from := item.DraftStatus
	if err := apply(item); err != nil {
		return DraftState{}, err
	}

	updated, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return DraftState{}, err
	}
	s.logger.InfoContext(ctx, "draft status changed",
		"league_id", leagueID,
		"user_id", userID,
		"from", string(from),
		"to", string(updated.DraftStatus),
	)

	state := DraftState{LeagueID: updated.ID, Status: updated.DraftStatus}
	if lot, ok := s.lot(leagueID); ok {
		state.Lot = &lot
	}
	return state, nil
}

func (s *DraftService) requireActive(ctx context.Context, leagueID string) error {
	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return err
	}
	if item.DraftStatus != league.DraftStatusActive {
		return fmt.Errorf("%w: %v", ErrInvalidInput, draft.ErrDraftNotActive)
	}
	return nil
}

// checkBidder verifies the owner has a free roster spot and can afford amount.
func (s *DraftService) checkBidder(ctx context.Context, leagueID, ownerID string, amount int64, leagueEntries []roster.Entry) error {
	settings, err := loadSettings(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return err
	}

	owned := make([]roster.Entry, 0)
	for _, e := range leagueEntries {
		if e.OwnerID == ownerID {
			owned = append(owned, e)
		}
	}
	if len(owned) >= settings.RosterSize {
		return fmt.Errorf("%w: roster of %s is full", ErrConflict, ownerID)
	}
	if !draft.WithinBudget(settings.SalaryCap, roster.TotalSpent(owned), amount) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, draft.ErrOverBudget)
	}
	return nil
}

func (s *DraftService) lot(leagueID string) (draft.Lot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lot, ok := s.lots[leagueID]
	return lot, ok
}

func (s *DraftService) storeLot(lot draft.Lot) {
	s.mu.Lock()
	s.lots[lot.LeagueID] = lot
	s.mu.Unlock()
}

func (s *DraftService) clearLot(leagueID string) {
	s.mu.Lock()
	delete(s.lots, leagueID)
	s.mu.Unlock()
}

func payloadFor(p player.Player, owner league.Member, amount int64) draft.Payload {
	return draft.Payload{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Position:   string(player.NormalizePosition(string(p.Position))),
		OwnerID:    owner.UserID,
		TeamName:   owner.DisplayTeamName(),
		Amount:     amount,
	}
}
