package player

import "context"

// Filter narrows a player search. Zero fields match every player.
type Filter struct {
	// NameQuery matches case-insensitively anywhere in the player name.
	NameQuery  string
	Position   Position
	ExcludeIDs []string
	Limit      int
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	// Search returns matching players ordered by name.
	Search(ctx context.Context, filter Filter) ([]Player, error)
}
