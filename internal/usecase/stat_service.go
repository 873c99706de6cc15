package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/weeklystat"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

// StatService records weekly stat lines pushed by the ingestion job. A
// recorded line is what locks a player's lineup slot for the week.
type StatService struct {
	statRepo weeklystat.Repository
	logger   *logging.Logger
	now      func() time.Time
}

func NewStatService(statRepo weeklystat.Repository, logger *logging.Logger) *StatService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatService{
		statRepo: statRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *StatService) RecordWeeklyStats(ctx context.Context, stats []weeklystat.Stat) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatService.RecordWeeklyStats")
	defer span.End()

	if len(stats) == 0 {
		return 0, nil
	}

	now := s.now().UTC()
	normalized := make([]weeklystat.Stat, 0, len(stats))
	for i, stat := range stats {
		stat.PlayerID = strings.TrimSpace(stat.PlayerID)
		if stat.RecordedAt.IsZero() {
			stat.RecordedAt = now
		}
		if err := stat.Validate(); err != nil {
			return 0, fmt.Errorf("%w: stat %d: %v", ErrInvalidInput, i, err)
		}
		normalized = append(normalized, stat)
	}

	if err := s.statRepo.Upsert(ctx, normalized); err != nil {
		return 0, fmt.Errorf("upsert weekly stats: %w", err)
	}

	s.logger.InfoContext(ctx, "weekly stats recorded", "count", len(normalized))
	return len(normalized), nil
}
