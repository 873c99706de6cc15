package querybuilder

import (
	"slices"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "owner_id").
		From("roster_entries").
		Where(Eq("league_id", "l1"), IsNull("deleted_at")).
		OrderBy("acquired_at", "id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, owner_id FROM roster_entries WHERE league_id = $1 AND deleted_at IS NULL ORDER BY acquired_at, id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !slices.Equal(args, []any{"l1"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderForUpdate(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").
		From("leagues").
		Where(Eq("id", "l1")).
		ForUpdate().
		ToSQL()
	if err != nil {
		t.Fatalf("build select for update: %v", err)
	}

	wantQuery := "SELECT id FROM leagues WHERE id = $1 FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderInAndExpr(t *testing.T) {
	t.Parallel()

	query, args, err := Select("player_id").
		From("weekly_stats").
		Where(
			In("player_id", Strings([]string{"p1", "p2"})),
			Expr("season = ? AND week = ?", 2026, 3),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id FROM weekly_stats WHERE player_id IN ($1, $2) AND season = $3 AND week = $4"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !slices.Equal(args, []any{"p1", "p2", 2026, 3}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInWithEmptyValuesMatchesNothing(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("players").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

func TestInsertBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("lineup_submissions").
		Columns("owner_id", "league_id").
		Values("o1", "l1").
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO lineup_submissions (owner_id, league_id) VALUES ($1, $2) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !slices.Equal(args, []any{"o1", "l1"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRejectsRaggedRows(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("players").Columns("id", "name").Values("p1").ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Update("leagues").
		Set("draft_status", "ACTIVE").
		SetExpr("updated_at", "NOW()").
		SetExpr("version", "version + ?", 1).
		Where(Eq("id", "l1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE leagues SET draft_status = $1, updated_at = NOW(), version = version + $2 WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !slices.Equal(args, []any{"ACTIVE", 1, "l1"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := DeleteFrom("roster_entries").
		Where(Eq("league_id", "l1"), Eq("owner_id", "o1"), Eq("player_id", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM roster_entries WHERE league_id = $1 AND owner_id = $2 AND player_id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("roster_entries").ToSQL(); err == nil {
		t.Fatalf("expected unconditioned delete to fail")
	}
}

func TestInsertModel(t *testing.T) {
	t.Parallel()

	type row struct {
		ID       string `db:"id"`
		Name     string `db:"name"`
		Ignored  string `db:"-"`
		internal string
	}

	query, args, err := InsertModel("players", row{ID: "p1", Name: "Josh", Ignored: "x", internal: "y"}, "RETURNING id")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO players (id, name) VALUES ($1, $2) RETURNING id" {
		t.Fatalf("unexpected query: %s", query)
	}
	if !slices.Equal(args, []any{"p1", "Josh"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}
