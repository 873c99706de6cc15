package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo league, its members and the player pool into
// an empty database. It is a no-op once any league exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range memory.SeedLeagues() {
		if err := execNamed(ctx, tx, `
INSERT INTO leagues (public_id, name, draft_status)
VALUES (:public_id, :name, :draft_status)
ON CONFLICT (public_id) WHERE deleted_at IS NULL DO NOTHING`, map[string]any{
			"public_id":    l.ID,
			"name":         l.Name,
			"draft_status": string(l.DraftStatus),
		}); err != nil {
			return fmt.Errorf("seed league %s: %w", l.ID, err)
		}
	}

	for _, m := range memory.SeedMembers() {
		if err := execNamed(ctx, tx, `
INSERT INTO league_members (league_public_id, user_id, team_name, is_commissioner)
VALUES (:league_public_id, :user_id, :team_name, :is_commissioner)
ON CONFLICT (league_public_id, user_id) WHERE deleted_at IS NULL DO NOTHING`, map[string]any{
			"league_public_id": m.LeagueID,
			"user_id":          m.UserID,
			"team_name":        m.TeamName,
			"is_commissioner":  m.IsCommissioner,
		}); err != nil {
			return fmt.Errorf("seed league member %s/%s: %w", m.LeagueID, m.UserID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		if err := execNamed(ctx, tx, `
INSERT INTO players (public_id, name, position, nfl_team, bye_week, external_ids)
VALUES (:public_id, :name, :position, :nfl_team, :bye_week, :external_ids)
ON CONFLICT (public_id) WHERE deleted_at IS NULL DO NOTHING`, map[string]any{
			"public_id":    p.ID,
			"name":         p.Name,
			"position":     string(p.Position),
			"nfl_team":     p.NFLTeam,
			"bye_week":     p.ByeWeek,
			"external_ids": encodeJSON(p.ExternalIDs),
		}); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func execNamed(ctx context.Context, tx *sqlx.Tx, query string, arg map[string]any) error {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return fmt.Errorf("bind named query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(bound), args...); err != nil {
		return err
	}
	return nil
}
