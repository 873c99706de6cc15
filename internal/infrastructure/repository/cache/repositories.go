package cache

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	basecache "github.com/riskibarqy/fantasy-draft/internal/platform/cache"
)

// LeagueRepository caches league reads. Writes go through to the next
// repository and evict the affected keys.
type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, leagueKey(leagueID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedValue[league.League]{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedValue[league.League])
	return cached.value, cached.exists, nil
}

// List is not cached; the league directory changes whenever a league is created.
func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	return r.next.List(ctx)
}

// Create evicts keys that may hold a cached miss for the new league.
func (r *LeagueRepository) Create(ctx context.Context, item league.League, settings league.Settings, commissioner league.Member) error {
	if err := r.next.Create(ctx, item, settings, commissioner); err != nil {
		return err
	}
	r.cache.Delete(ctx,
		leagueKey(item.ID),
		settingsKey(item.ID),
		membersKey(item.ID),
		memberKey(item.ID, commissioner.UserID),
	)
	return nil
}

func (r *LeagueRepository) UpdateDraftStatus(ctx context.Context, leagueID string, status league.DraftStatus) error {
	if err := r.next.UpdateDraftStatus(ctx, leagueID, status); err != nil {
		return err
	}
	r.cache.Delete(ctx, leagueKey(leagueID))
	return nil
}

func (r *LeagueRepository) GetSettings(ctx context.Context, leagueID string) (league.Settings, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, settingsKey(leagueID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetSettings(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedValue[league.Settings]{value: item.Clone(), exists: exists}, nil
	})
	if err != nil {
		return league.Settings{}, false, err
	}

	cached, _ := v.(cachedValue[league.Settings])
	return cached.value.Clone(), cached.exists, nil
}

func (r *LeagueRepository) UpsertSettings(ctx context.Context, settings league.Settings) error {
	if err := r.next.UpsertSettings(ctx, settings); err != nil {
		return err
	}
	r.cache.Delete(ctx, settingsKey(settings.LeagueID))
	return nil
}

func (r *LeagueRepository) GetMember(ctx context.Context, leagueID, userID string) (league.Member, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, memberKey(leagueID, userID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetMember(ctx, leagueID, userID)
		if err != nil {
			return nil, err
		}
		return cachedValue[league.Member]{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.Member{}, false, err
	}

	cached, _ := v.(cachedValue[league.Member])
	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) ListMembers(ctx context.Context, leagueID string) ([]league.Member, error) {
	v, err := r.cache.GetOrLoad(ctx, membersKey(leagueID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListMembers(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]league.Member(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.Member)
	return append([]league.Member(nil), items...), nil
}

func (r *LeagueRepository) AddMember(ctx context.Context, member league.Member) error {
	if err := r.next.AddMember(ctx, member); err != nil {
		return err
	}
	r.cache.Delete(ctx, membersKey(member.LeagueID), memberKey(member.LeagueID, member.UserID))
	return nil
}

func leagueKey(leagueID string) string {
	return "league:id:" + leagueID
}

func settingsKey(leagueID string) string {
	return "league:settings:" + leagueID
}

func membersKey(leagueID string) string {
	return "league:members:" + leagueID
}

func memberKey(leagueID, userID string) string {
	return "league:member:" + leagueID + ":" + userID
}

// PlayerRepository caches the player pool, which only changes through
// migrations and seeding.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "player:id:"+playerID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedValue[player.Player]{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedValue[player.Player])
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	v, err := r.cache.GetOrLoad(ctx, "player:ids:"+idsKey(playerIDs), func(ctx context.Context) (any, error) {
		items, err := r.next.GetByIDs(ctx, playerIDs)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

// Search is not cached; results depend on league ownership.
func (r *PlayerRepository) Search(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	return r.next.Search(ctx, filter)
}

type cachedValue[T any] struct {
	value  T
	exists bool
}

func idsKey(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
