package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-draft/internal/domain/weeklystat"
)

// LockService decides which players can no longer change lineup slot for a
// week. A player locks once a stat line for that week has been recorded, so
// a game in progress stays editable until its stats land.
type LockService struct {
	statRepo weeklystat.Repository
}

func NewLockService(statRepo weeklystat.Repository) *LockService {
	return &LockService{statRepo: statRepo}
}

func (s *LockService) LockedIDs(ctx context.Context, playerIDs []string, season, week int) (map[string]struct{}, error) {
	locked := make(map[string]struct{})
	if len(playerIDs) == 0 {
		return locked, nil
	}
	if err := validateWeek(week); err != nil {
		return nil, err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.LockService.LockedIDs")
	defer span.End()

	ids, err := s.statRepo.ListRecordedPlayerIDs(ctx, playerIDs, season, week)
	if err != nil {
		return nil, fmt.Errorf("list recorded player ids: %w", err)
	}
	for _, id := range ids {
		locked[id] = struct{}{}
	}
	return locked, nil
}

func validateWeek(week int) error {
	if week < weeklystat.MinWeek || week > weeklystat.MaxWeek {
		return fmt.Errorf("%w: week must be between %d and %d", ErrInvalidInput, weeklystat.MinWeek, weeklystat.MaxWeek)
	}
	return nil
}
