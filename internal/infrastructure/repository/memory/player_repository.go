package memory

import (
	"context"
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	for _, p := range players {
		items[p.ID] = clonePlayer(p)
	}
	return &PlayerRepository{items: items}
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	if !ok {
		return player.Player{}, false, nil
	}
	return clonePlayer(p), true, nil
}

// GetByIDs returns known players in request order and silently skips unknown ids.
func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if p, ok := r.items[id]; ok {
			out = append(out, clonePlayer(p))
		}
	}
	return out, nil
}

func (r *PlayerRepository) Search(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(filter.NameQuery))
	excluded := make(map[string]struct{}, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	out := make([]player.Player, 0)
	for _, p := range r.items {
		if _, skip := excluded[p.ID]; skip {
			continue
		}
		if filter.Position != "" && p.Position != filter.Position {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, clonePlayer(p))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func clonePlayer(p player.Player) player.Player {
	p.ExternalIDs = maps.Clone(p.ExternalIDs)
	return p
}
