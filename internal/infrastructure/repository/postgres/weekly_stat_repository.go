package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-draft/internal/domain/weeklystat"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

type WeeklyStatRepository struct {
	db *sqlx.DB
}

func NewWeeklyStatRepository(db *sqlx.DB) *WeeklyStatRepository {
	return &WeeklyStatRepository{db: db}
}

func (r *WeeklyStatRepository) ListRecordedPlayerIDs(ctx context.Context, playerIDs []string, season, week int) ([]string, error) {
	if len(playerIDs) == 0 {
		return []string{}, nil
	}

	query, args, err := qb.Select("player_public_id").From("weekly_stats").
		Where(
			qb.In("player_public_id", qb.Strings(playerIDs)),
			qb.Eq("season", season),
			qb.Eq("week", week),
		).
		OrderBy("player_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recorded players query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select recorded players: %w", err)
	}
	return ids, nil
}

func (r *WeeklyStatRepository) Upsert(ctx context.Context, stats []weeklystat.Stat) error {
	if len(stats) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert weekly stats: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stat := range stats {
		insertModel := weeklyStatInsertModel{
			PlayerID:   stat.PlayerID,
			Season:     stat.Season,
			Week:       stat.Week,
			Points:     stat.Points,
			RecordedAt: stat.RecordedAt,
		}
		query, args, err := qb.InsertModel("weekly_stats", insertModel, `ON CONFLICT (player_public_id, season, week)
DO UPDATE SET
    points = EXCLUDED.points,
    recorded_at = EXCLUDED.recorded_at,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build weekly stat upsert query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert weekly stat player=%s week=%d: %w", stat.PlayerID, stat.Week, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert weekly stats tx: %w", err)
	}
	return nil
}
