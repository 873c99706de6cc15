package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
)

// RosterRepository keeps entries in acquisition order. A single lock makes
// every check-and-insert atomic.
type RosterRepository struct {
	mu      sync.Mutex
	entries []roster.Entry
}

func NewRosterRepository(entries ...roster.Entry) *RosterRepository {
	return &RosterRepository{entries: append([]roster.Entry(nil), entries...)}
}

func (r *RosterRepository) RecordAcquisition(_ context.Context, entry roster.Entry, capacity int) (roster.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkInsertLocked(entry, capacity); err != nil {
		return roster.Entry{}, err
	}
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *RosterRepository) ReplaceAcquisition(_ context.Context, dropPlayerID string, entry roster.Entry) (roster.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(entry.LeagueID, entry.OwnerID, dropPlayerID)
	if idx < 0 {
		return roster.Entry{}, roster.ErrEntryNotFound
	}
	if r.ownedLocked(entry.LeagueID, entry.PlayerID) {
		return roster.Entry{}, roster.ErrPlayerAlreadyOwned
	}
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *RosterRepository) Remove(_ context.Context, leagueID, ownerID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(leagueID, ownerID, playerID)
	if idx < 0 {
		return roster.ErrEntryNotFound
	}
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	return nil
}

func (r *RosterRepository) ListByOwner(_ context.Context, leagueID, ownerID string) ([]roster.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]roster.Entry, 0)
	for _, e := range r.entries {
		if e.LeagueID == leagueID && e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *RosterRepository) ListByLeague(_ context.Context, leagueID string) ([]roster.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]roster.Entry, 0)
	for _, e := range r.entries {
		if e.LeagueID == leagueID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *RosterRepository) SetStatuses(_ context.Context, leagueID, ownerID string, statuses map[string]roster.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		e := &r.entries[i]
		if e.LeagueID != leagueID || e.OwnerID != ownerID {
			continue
		}
		if status, ok := statuses[e.PlayerID]; ok {
			e.Status = status
		}
	}
	return nil
}

func (r *RosterRepository) DeleteByLeague(_ context.Context, leagueID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.LeagueID != leagueID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	return nil
}

func (r *RosterRepository) checkInsertLocked(entry roster.Entry, capacity int) error {
	if r.ownedLocked(entry.LeagueID, entry.PlayerID) {
		return roster.ErrPlayerAlreadyOwned
	}
	if capacity <= 0 {
		return nil
	}
	owned := 0
	for _, e := range r.entries {
		if e.LeagueID == entry.LeagueID && e.OwnerID == entry.OwnerID {
			owned++
		}
	}
	if owned >= capacity {
		return roster.ErrRosterFull
	}
	return nil
}

func (r *RosterRepository) ownedLocked(leagueID, playerID string) bool {
	for _, e := range r.entries {
		if e.LeagueID == leagueID && e.PlayerID == playerID {
			return true
		}
	}
	return false
}

func (r *RosterRepository) indexLocked(leagueID, ownerID, playerID string) int {
	for i, e := range r.entries {
		if e.LeagueID == leagueID && e.OwnerID == ownerID && e.PlayerID == playerID {
			return i
		}
	}
	return -1
}
