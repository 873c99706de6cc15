package roster

import "context"

// Repository persists roster entries. Implementations must guarantee that a
// player is owned by at most one owner per league, returning
// ErrPlayerAlreadyOwned otherwise, and must refuse an insert that would take
// the owner past capacity with ErrRosterFull.
type Repository interface {
	RecordAcquisition(ctx context.Context, entry Entry, capacity int) (Entry, error)
	ReplaceAcquisition(ctx context.Context, dropPlayerID string, entry Entry) (Entry, error)
	Remove(ctx context.Context, leagueID, ownerID, playerID string) error
	ListByOwner(ctx context.Context, leagueID, ownerID string) ([]Entry, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Entry, error)
	SetStatuses(ctx context.Context, leagueID, ownerID string, statuses map[string]Status) error
	DeleteByLeague(ctx context.Context, leagueID string) error
}
