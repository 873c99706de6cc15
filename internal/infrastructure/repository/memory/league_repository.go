package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
)

type LeagueRepository struct {
	mu       sync.RWMutex
	items    map[string]league.League
	settings map[string]league.Settings
	members  map[string][]league.Member
}

func NewLeagueRepository(leagues []league.League, members []league.Member) *LeagueRepository {
	r := &LeagueRepository{
		items:    make(map[string]league.League, len(leagues)),
		settings: make(map[string]league.Settings),
		members:  make(map[string][]league.Member),
	}
	for _, l := range leagues {
		r.items[l.ID] = l
	}
	for _, m := range members {
		r.members[m.LeagueID] = append(r.members[m.LeagueID], m)
	}
	return r
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	return l, ok, nil
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.items))
	for _, l := range r.items {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Create compares names case-insensitively, matching the unique index.
func (r *LeagueRepository) Create(_ context.Context, item league.League, settings league.Settings, commissioner league.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if strings.EqualFold(strings.TrimSpace(existing.Name), strings.TrimSpace(item.Name)) {
			return league.ErrNameTaken
		}
	}
	r.items[item.ID] = item
	r.settings[item.ID] = settings.Clone()
	r.members[item.ID] = append(r.members[item.ID], commissioner)
	return nil
}

func (r *LeagueRepository) UpdateDraftStatus(_ context.Context, leagueID string, status league.DraftStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[leagueID]
	if !ok {
		return nil
	}
	l.DraftStatus = status
	r.items[leagueID] = l
	return nil
}

func (r *LeagueRepository) GetSettings(_ context.Context, leagueID string) (league.Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.settings[leagueID]
	if !ok {
		return league.Settings{}, false, nil
	}
	return s.Clone(), true, nil
}

func (r *LeagueRepository) UpsertSettings(_ context.Context, settings league.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings[settings.LeagueID] = settings.Clone()
	return nil
}

func (r *LeagueRepository) GetMember(_ context.Context, leagueID, userID string) (league.Member, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members[leagueID] {
		if m.UserID == userID {
			return m, true, nil
		}
	}
	return league.Member{}, false, nil
}

func (r *LeagueRepository) ListMembers(_ context.Context, leagueID string) ([]league.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]league.Member(nil), r.members[leagueID]...), nil
}

func (r *LeagueRepository) AddMember(_ context.Context, member league.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members[member.LeagueID] {
		if m.UserID == member.UserID {
			return league.ErrMemberExists
		}
	}
	r.members[member.LeagueID] = append(r.members[member.LeagueID], member)
	return nil
}
