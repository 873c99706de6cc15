package trade

import "context"

// Repository persists trade proposals.
type Repository interface {
	Create(ctx context.Context, proposal Proposal) error
	// ListByStatus returns the league's proposals newest first.
	ListByStatus(ctx context.Context, leagueID string, status Status) ([]Proposal, error)
}
