package lineup

import (
	"fmt"
	"testing"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
)

func testPlayers(specs ...string) map[string]player.Player {
	out := make(map[string]player.Player, len(specs))
	for _, spec := range specs {
		var id, pos string
		fmt.Sscanf(spec, "%s %s", &id, &pos)
		out[id] = player.Player{ID: id, Name: "Player " + id, Position: player.Position(pos)}
	}
	return out
}

func entry(playerID string, amount int64, status roster.Status) roster.Entry {
	return roster.Entry{LeagueID: "l1", OwnerID: "o1", PlayerID: playerID, Amount: amount, Status: status}
}

func countStarters(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.IsStarter() {
			n++
		}
	}
	return n
}

func TestOrganizeEmptyRoster(t *testing.T) {
	t.Parallel()

	rows := Organize(nil, nil, nil)
	if len(rows) != 0 {
		t.Fatalf("expected empty output, got %d rows", len(rows))
	}
}

func TestOrganizeDerivesDefaultLineupByCost(t *testing.T) {
	t.Parallel()

	players := testPlayers(
		"qb1 QB", "qb2 QB",
		"rb1 RB", "rb2 RB", "rb3 RB",
		"wr1 WR", "wr2 WR", "wr3 WR",
		"te1 TE", "k1 K", "def1 DEF",
	)
	entries := []roster.Entry{
		entry("qb1", 30, roster.StatusUnset),
		entry("qb2", 2, roster.StatusUnset),
		entry("rb1", 40, roster.StatusUnset),
		entry("rb2", 25, roster.StatusUnset),
		entry("rb3", 12, roster.StatusUnset),
		entry("wr1", 35, roster.StatusUnset),
		entry("wr2", 20, roster.StatusUnset),
		entry("wr3", 8, roster.StatusUnset),
		entry("te1", 10, roster.StatusUnset),
		entry("k1", 1, roster.StatusUnset),
		entry("def1", 1, roster.StatusUnset),
	}

	rows := Organize(entries, players, nil)
	if len(rows) != len(entries) {
		t.Fatalf("expected %d rows, got %d", len(entries), len(rows))
	}
	if got := countStarters(rows); got != RequiredStarters() {
		t.Fatalf("expected %d starters, got %d", RequiredStarters(), got)
	}

	starters := map[string]bool{}
	for _, r := range rows {
		if r.IsStarter() {
			starters[r.PlayerID] = true
		}
	}
	for _, id := range []string{"qb1", "rb1", "rb2", "wr1", "wr2", "te1", "k1", "def1", "rb3"} {
		if !starters[id] {
			t.Fatalf("expected %s to start, starters=%v", id, starters)
		}
	}
	if starters["qb2"] || starters["wr3"] {
		t.Fatalf("expected qb2 and wr3 on bench, starters=%v", starters)
	}

	wantOrder := []string{"qb1", "rb1", "rb2", "rb3", "wr1", "wr2", "te1", "def1", "k1", "qb2", "wr3"}
	for i, id := range wantOrder {
		if rows[i].PlayerID != id {
			t.Fatalf("row %d: expected %s, got %s", i, id, rows[i].PlayerID)
		}
	}
}

func TestOrganizeStarterCountNeverExceedsRosterOrSlots(t *testing.T) {
	t.Parallel()

	players := testPlayers("qb1 QB", "rb1 RB", "rb2 RB", "rb3 RB", "rb4 RB", "rb5 RB")
	cases := []struct {
		name string
		ids  []string
		want int
	}{
		{name: "single player", ids: []string{"qb1"}, want: 1},
		{name: "two backs", ids: []string{"rb1", "rb2"}, want: 2},
		{name: "backs fill one flex only", ids: []string{"rb1", "rb2", "rb3", "rb4", "rb5"}, want: 3},
	}

	for _, tc := range cases {
		entries := make([]roster.Entry, 0, len(tc.ids))
		for i, id := range tc.ids {
			entries = append(entries, entry(id, int64(10-i), roster.StatusUnset))
		}
		rows := Organize(entries, players, nil)
		if got := countStarters(rows); got != tc.want {
			t.Fatalf("%s: expected %d starters, got %d", tc.name, tc.want, got)
		}
		if got := countStarters(rows); got > min(RequiredStarters(), len(tc.ids)) {
			t.Fatalf("%s: starters %d exceed bound", tc.name, got)
		}
	}
}

func TestOrganizeKeepsExplicitStatuses(t *testing.T) {
	t.Parallel()

	players := testPlayers("qb1 QB", "rb1 RB", "k1 K")
	entries := []roster.Entry{
		entry("qb1", 30, roster.StatusBench),
		entry("rb1", 20, roster.StatusStarter),
		entry("k1", 1, roster.StatusUnset),
	}

	rows := Organize(entries, players, nil)
	if countStarters(rows) != 1 || rows[0].PlayerID != "rb1" {
		t.Fatalf("expected only rb1 to start, got %+v", rows)
	}
	for _, r := range rows[1:] {
		if r.Status != roster.StatusBench {
			t.Fatalf("expected %s on bench, got %q", r.PlayerID, r.Status)
		}
	}
}

func TestOrganizeLatestDuplicateWins(t *testing.T) {
	t.Parallel()

	players := testPlayers("rb1 RB", "wr1 WR")
	entries := []roster.Entry{
		entry("rb1", 5, roster.StatusBench),
		entry("wr1", 10, roster.StatusStarter),
		entry("rb1", 15, roster.StatusStarter),
	}

	rows := Organize(entries, players, nil)
	if len(rows) != 2 {
		t.Fatalf("expected duplicates collapsed to 2 rows, got %d", len(rows))
	}
	if rows[0].PlayerID != "rb1" || rows[0].AcquisitionCost != 15 || !rows[0].IsStarter() {
		t.Fatalf("expected latest rb1 entry to win, got %+v", rows[0])
	}
}

func TestOrganizeMarksLockedAndSkipsUnknown(t *testing.T) {
	t.Parallel()

	players := testPlayers("qb1 QB", "def1 TD")
	entries := []roster.Entry{
		entry("qb1", 10, roster.StatusStarter),
		entry("def1", 1, roster.StatusStarter),
		entry("ghost", 50, roster.StatusStarter),
	}

	rows := Organize(entries, players, map[string]struct{}{"def1": {}})
	if len(rows) != 2 {
		t.Fatalf("expected unknown player skipped, got %d rows", len(rows))
	}
	if rows[1].PlayerID != "def1" || rows[1].Position != player.PositionDefense || !rows[1].IsLocked {
		t.Fatalf("expected locked defense row, got %+v", rows[1])
	}
	if rows[0].IsLocked {
		t.Fatalf("expected qb1 unlocked")
	}
}
