package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

const rosterPlayerUniqueIndex = "roster_entries_league_player_uidx"

// RosterRepository serializes acquisitions per league by locking the league
// row. The partial unique index on (league, player) backs the ownership check.
type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) RecordAcquisition(ctx context.Context, entry roster.Entry, capacity int) (roster.Entry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return roster.Entry{}, fmt.Errorf("begin tx record acquisition: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := lockLeague(ctx, tx, entry.LeagueID); err != nil {
		return roster.Entry{}, err
	}
	if err := ensureUnowned(ctx, tx, entry.LeagueID, entry.PlayerID); err != nil {
		return roster.Entry{}, err
	}
	if capacity > 0 {
		owned, err := countOwned(ctx, tx, entry.LeagueID, entry.OwnerID)
		if err != nil {
			return roster.Entry{}, err
		}
		if owned >= capacity {
			return roster.Entry{}, roster.ErrRosterFull
		}
	}

	inserted, err := insertEntry(ctx, tx, entry)
	if err != nil {
		return roster.Entry{}, err
	}
	if err := tx.Commit(); err != nil {
		return roster.Entry{}, fmt.Errorf("commit record acquisition tx: %w", err)
	}
	return inserted, nil
}

func (r *RosterRepository) ReplaceAcquisition(ctx context.Context, dropPlayerID string, entry roster.Entry) (roster.Entry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return roster.Entry{}, fmt.Errorf("begin tx replace acquisition: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := lockLeague(ctx, tx, entry.LeagueID); err != nil {
		return roster.Entry{}, err
	}
	// Checked before the drop so a claim of the dropped player is rejected.
	if err := ensureUnowned(ctx, tx, entry.LeagueID, entry.PlayerID); err != nil {
		return roster.Entry{}, err
	}
	if err := softDeleteEntry(ctx, tx, entry.LeagueID, entry.OwnerID, dropPlayerID); err != nil {
		return roster.Entry{}, err
	}

	inserted, err := insertEntry(ctx, tx, entry)
	if err != nil {
		return roster.Entry{}, err
	}
	if err := tx.Commit(); err != nil {
		return roster.Entry{}, fmt.Errorf("commit replace acquisition tx: %w", err)
	}
	return inserted, nil
}

func (r *RosterRepository) Remove(ctx context.Context, leagueID, ownerID, playerID string) error {
	return softDeleteEntry(ctx, r.db, leagueID, ownerID, playerID)
}

func (r *RosterRepository) ListByOwner(ctx context.Context, leagueID, ownerID string) ([]roster.Entry, error) {
	query, args, err := qb.Select("*").From("roster_entries").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("owner_user_id", ownerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("acquired_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list roster by owner query: %w", err)
	}

	var rows []rosterEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list roster by owner: %w", err)
	}
	return entriesFromRows(rows), nil
}

func (r *RosterRepository) ListByLeague(ctx context.Context, leagueID string) ([]roster.Entry, error) {
	query, args, err := qb.Select("*").From("roster_entries").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("acquired_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list roster by league query: %w", err)
	}

	var rows []rosterEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list roster by league: %w", err)
	}
	return entriesFromRows(rows), nil
}

func (r *RosterRepository) SetStatuses(ctx context.Context, leagueID, ownerID string, statuses map[string]roster.Status) error {
	if len(statuses) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx set roster statuses: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for playerID, status := range statuses {
		query, args, err := qb.Update("roster_entries").
			Set("status", string(status)).
			SetExpr("updated_at", "NOW()").
			Where(
				qb.Eq("league_public_id", leagueID),
				qb.Eq("owner_user_id", ownerID),
				qb.Eq("player_public_id", playerID),
				qb.IsNull("deleted_at"),
			).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build set roster status query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("set roster status player=%s: %w", playerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set roster statuses tx: %w", err)
	}
	return nil
}

func (r *RosterRepository) DeleteByLeague(ctx context.Context, leagueID string) error {
	query, args, err := qb.Update("roster_entries").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete roster by league query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete roster by league: %w", err)
	}
	return nil
}

func lockLeague(ctx context.Context, tx *sqlx.Tx, leagueID string) error {
	query, args, err := qb.Select("id").From("leagues").
		Where(
			qb.Eq("public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ForUpdate().
		ToSQL()
	if err != nil {
		return fmt.Errorf("build lock league query: %w", err)
	}

	var id int64
	if err := tx.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("lock league: league %s not found", leagueID)
		}
		return fmt.Errorf("lock league: %w", err)
	}
	return nil
}

func ensureUnowned(ctx context.Context, tx *sqlx.Tx, leagueID, playerID string) error {
	query, args, err := qb.Select("COUNT(1)").From("roster_entries").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("player_public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build player ownership query: %w", err)
	}

	var count int
	if err := tx.GetContext(ctx, &count, query, args...); err != nil {
		return fmt.Errorf("check player ownership: %w", err)
	}
	if count > 0 {
		return roster.ErrPlayerAlreadyOwned
	}
	return nil
}

func countOwned(ctx context.Context, tx *sqlx.Tx, leagueID, ownerID string) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("roster_entries").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("owner_user_id", ownerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build roster size query: %w", err)
	}

	var count int
	if err := tx.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count roster entries: %w", err)
	}
	return count, nil
}

func insertEntry(ctx context.Context, tx *sqlx.Tx, entry roster.Entry) (roster.Entry, error) {
	insertModel := rosterEntryInsertModel{
		PublicID:   entry.ID,
		LeagueID:   entry.LeagueID,
		OwnerID:    entry.OwnerID,
		PlayerID:   entry.PlayerID,
		Amount:     entry.Amount,
		Status:     string(entry.Status),
		Season:     entry.Season,
		Source:     string(entry.Source),
		AcquiredAt: entry.AcquiredAt,
	}

	query, args, err := qb.InsertModel("roster_entries", insertModel, "RETURNING *")
	if err != nil {
		return roster.Entry{}, fmt.Errorf("build insert roster entry query: %w", err)
	}

	var row rosterEntryTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err, rosterPlayerUniqueIndex) {
			return roster.Entry{}, roster.ErrPlayerAlreadyOwned
		}
		return roster.Entry{}, fmt.Errorf("insert roster entry: %w", err)
	}
	return entryFromRow(row), nil
}

func softDeleteEntry(ctx context.Context, db sqlx.ExecerContext, leagueID, ownerID, playerID string) error {
	query, args, err := qb.Update("roster_entries").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("owner_user_id", ownerID),
			qb.Eq("player_public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build remove roster entry query: %w", err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("remove roster entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected remove roster entry: %w", err)
	}
	if affected == 0 {
		return roster.ErrEntryNotFound
	}
	return nil
}

func entriesFromRows(rows []rosterEntryTableModel) []roster.Entry {
	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entryFromRow(row))
	}
	return out
}

func entryFromRow(row rosterEntryTableModel) roster.Entry {
	return roster.Entry{
		ID:         row.PublicID,
		LeagueID:   row.LeagueID,
		OwnerID:    row.OwnerID,
		PlayerID:   row.PlayerID,
		Amount:     row.Amount,
		Status:     roster.Status(row.Status),
		Season:     row.Season,
		Source:     roster.Source(row.Source),
		AcquiredAt: row.AcquiredAt,
	}
}
