package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	// List returns every league ordered by name.
	List(ctx context.Context) ([]League, error)
	// Create stores the league with its settings and first member in one
	// step. It returns ErrNameTaken when another league has the same name.
	Create(ctx context.Context, item League, settings Settings, commissioner Member) error
	UpdateDraftStatus(ctx context.Context, leagueID string, status DraftStatus) error
	GetSettings(ctx context.Context, leagueID string) (Settings, bool, error)
	UpsertSettings(ctx context.Context, settings Settings) error
	GetMember(ctx context.Context, leagueID, userID string) (Member, bool, error)
	ListMembers(ctx context.Context, leagueID string) ([]Member, error)
	// AddMember returns ErrMemberExists when the user already has a seat.
	AddMember(ctx context.Context, member Member) error
}
