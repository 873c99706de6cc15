package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"public_id",
	"name",
	"position",
	"nfl_team",
	"bye_week",
	"external_ids::text AS external_ids",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.In("public_id", qb.Strings(playerIDs)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) Search(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if query := strings.TrimSpace(filter.NameQuery); query != "" {
		conditions = append(conditions, qb.Expr("name ILIKE ?", "%"+escapeLike(query)+"%"))
	}
	if filter.Position != "" {
		conditions = append(conditions, qb.Eq("position", string(filter.Position)))
	}
	if len(filter.ExcludeIDs) > 0 {
		conditions = append(conditions, qb.Expr("public_id <> ALL(?)", pq.Array(filter.ExcludeIDs)))
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(conditions...).
		OrderBy("name", "public_id").
		Limit(filter.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(raw string) string {
	return likeEscaper.Replace(raw)
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:          row.PublicID,
		Name:        row.Name,
		Position:    player.NormalizePosition(row.Position),
		NFLTeam:     row.NFLTeam,
		ByeWeek:     row.ByeWeek,
		ExternalIDs: decodeJSON[string](row.ExternalIDs),
	}
}
