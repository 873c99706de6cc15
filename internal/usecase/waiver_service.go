package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

type ClaimInput struct {
	LeagueID string
	OwnerID  string
	PlayerID string
	Bid      int64
	// DropPlayerID, when set, is released in the same write as the claim.
	DropPlayerID string
}

type WaiverService struct {
	leagueRepo league.Repository
	rosters    *RosterService
	logger     *logging.Logger
	now        func() time.Time
}

func NewWaiverService(leagueRepo league.Repository, rosters *RosterService, logger *logging.Logger) *WaiverService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WaiverService{
		leagueRepo: leagueRepo,
		rosters:    rosters,
		logger:     logger,
		now:        time.Now,
	}
}

// Claim acquires a free agent. Claims are closed while the draft is live and
// after the league's waiver deadline.
func (s *WaiverService) Claim(ctx context.Context, input ClaimInput) (roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WaiverService.Claim")
	defer span.End()

	if input.Bid < 0 {
		return roster.Entry{}, fmt.Errorf("%w: bid cannot be negative", ErrInvalidInput)
	}
	if _, err := requireMember(ctx, s.leagueRepo, input.LeagueID, input.OwnerID); err != nil {
		return roster.Entry{}, err
	}
	if err := s.checkWindow(ctx, input.LeagueID, true); err != nil {
		return roster.Entry{}, err
	}

	acquire := AcquireInput{
		LeagueID: input.LeagueID,
		OwnerID:  input.OwnerID,
		PlayerID: input.PlayerID,
		Amount:   input.Bid,
		Source:   roster.SourceWaiver,
	}

	var (
		entry roster.Entry
		err   error
	)
	if drop := strings.TrimSpace(input.DropPlayerID); drop != "" {
		entry, err = s.rosters.ReplaceAcquisition(ctx, drop, acquire)
	} else {
		entry, err = s.rosters.RecordAcquisition(ctx, acquire)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "waiver claim rejected",
			"league_id", input.LeagueID,
			"owner_id", input.OwnerID,
			"player_id", input.PlayerID,
			"error", err,
		)
		return roster.Entry{}, err
	}
	return entry, nil
}

func (s *WaiverService) Drop(ctx context.Context, leagueID, ownerID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.WaiverService.Drop")
	defer span.End()

	if _, err := requireMember(ctx, s.leagueRepo, leagueID, ownerID); err != nil {
		return err
	}
	if err := s.checkWindow(ctx, leagueID, false); err != nil {
		return err
	}
	return s.rosters.Remove(ctx, leagueID, ownerID, playerID)
}

func (s *WaiverService) checkWindow(ctx context.Context, leagueID string, enforceDeadline bool) error {
	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return err
	}
	if item.DraftStatus == league.DraftStatusActive {
		return fmt.Errorf("%w: waivers are closed while the draft is active", ErrInvalidInput)
	}
	if !enforceDeadline {
		return nil
	}

	settings, err := loadSettings(ctx, s.leagueRepo, item.ID)
	if err != nil {
		return err
	}
	if settings.WaiversClosed(s.now()) {
		return fmt.Errorf("%w: waiver deadline has passed", ErrInvalidInput)
	}
	return nil
}
