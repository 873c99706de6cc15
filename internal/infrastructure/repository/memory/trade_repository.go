package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/trade"
)

type TradeRepository struct {
	mu    sync.RWMutex
	items []trade.Proposal
}

func NewTradeRepository() *TradeRepository {
	return &TradeRepository{}
}

func (r *TradeRepository) Create(_ context.Context, proposal trade.Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, proposal)
	return nil
}

// ListByStatus walks insertion order backwards so the newest comes first.
func (r *TradeRepository) ListByStatus(_ context.Context, leagueID string, status trade.Status) ([]trade.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]trade.Proposal, 0)
	for i := len(r.items) - 1; i >= 0; i-- {
		item := r.items[i]
		if item.LeagueID == leagueID && item.Status == status {
			out = append(out, item)
		}
	}
	return out, nil
}
