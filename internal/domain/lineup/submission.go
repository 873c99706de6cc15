package lineup

import (
	"context"
	"time"
)

// Submission marks that an owner locked in a lineup for a week.
type Submission struct {
	OwnerID     string
	LeagueID    string
	Season      int
	Week        int
	SubmittedAt time.Time
}

// SubmissionRepository stores at most one submission per owner, league, season and week.
type SubmissionRepository interface {
	Upsert(ctx context.Context, item Submission) (Submission, error)
	Get(ctx context.Context, ownerID, leagueID string, season, week int) (Submission, bool, error)
}
