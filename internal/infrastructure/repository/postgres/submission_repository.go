package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

type SubmissionRepository struct {
	db *sqlx.DB
}

func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Upsert(ctx context.Context, item lineup.Submission) (lineup.Submission, error) {
	insertModel := lineupSubmissionInsertModel{
		OwnerID:     item.OwnerID,
		LeagueID:    item.LeagueID,
		Season:      item.Season,
		Week:        item.Week,
		SubmittedAt: item.SubmittedAt,
	}

	query, args, err := qb.InsertModel("lineup_submissions", insertModel, `ON CONFLICT (owner_user_id, league_public_id, season, week)
DO UPDATE SET
    submitted_at = EXCLUDED.submitted_at,
    updated_at = NOW()
RETURNING *`)
	if err != nil {
		return lineup.Submission{}, fmt.Errorf("build lineup submission upsert query: %w", err)
	}

	var row lineupSubmissionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return lineup.Submission{}, fmt.Errorf("upsert lineup submission: %w", err)
	}
	return submissionFromRow(row), nil
}

func (r *SubmissionRepository) Get(ctx context.Context, ownerID, leagueID string, season, week int) (lineup.Submission, bool, error) {
	query, args, err := qb.Select("*").From("lineup_submissions").
		Where(
			qb.Eq("owner_user_id", ownerID),
			qb.Eq("league_public_id", leagueID),
			qb.Eq("season", season),
			qb.Eq("week", week),
		).
		ToSQL()
	if err != nil {
		return lineup.Submission{}, false, fmt.Errorf("build get lineup submission query: %w", err)
	}

	var row lineupSubmissionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.Submission{}, false, nil
		}
		return lineup.Submission{}, false, fmt.Errorf("get lineup submission: %w", err)
	}
	return submissionFromRow(row), true, nil
}

func submissionFromRow(row lineupSubmissionTableModel) lineup.Submission {
	return lineup.Submission{
		OwnerID:     row.OwnerID,
		LeagueID:    row.LeagueID,
		Season:      row.Season,
		Week:        row.Week,
		SubmittedAt: row.SubmittedAt,
	}
}
