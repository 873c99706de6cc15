package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/weeklystat"
)

type WeeklyStatRepository struct {
	mu    sync.RWMutex
	items map[string]weeklystat.Stat
}

func NewWeeklyStatRepository(stats ...weeklystat.Stat) *WeeklyStatRepository {
	r := &WeeklyStatRepository{items: make(map[string]weeklystat.Stat, len(stats))}
	for _, s := range stats {
		r.items[statKey(s.PlayerID, s.Season, s.Week)] = s
	}
	return r
}

func (r *WeeklyStatRepository) ListRecordedPlayerIDs(_ context.Context, playerIDs []string, season, week int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for _, id := range playerIDs {
		if _, ok := r.items[statKey(id, season, week)]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *WeeklyStatRepository) Upsert(_ context.Context, stats []weeklystat.Stat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range stats {
		r.items[statKey(s.PlayerID, s.Season, s.Week)] = s
	}
	return nil
}

func statKey(playerID string, season, week int) string {
	return fmt.Sprintf("%s::%d::%d", playerID, season, week)
}
