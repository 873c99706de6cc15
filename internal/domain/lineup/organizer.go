package lineup

import (
	"sort"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
)

// Row is one player in an organized roster view.
type Row struct {
	PlayerID        string
	Name            string
	Position        player.Position
	NFLTeam         string
	ByeWeek         int
	AcquisitionCost int64
	Status          roster.Status
	IsLocked        bool
}

func (r Row) IsStarter() bool {
	return r.Status == roster.StatusStarter
}

var positionRank = map[player.Position]int{
	player.PositionQuarterback:  1,
	player.PositionRunningBack:  2,
	player.PositionWideReceiver: 3,
	player.PositionTightEnd:     4,
	player.PositionDefense:      5,
	player.PositionKicker:       6,
}

// PositionRank orders positions for display; unknown positions sort last.
func PositionRank(pos player.Position) int {
	if rank, ok := positionRank[pos]; ok {
		return rank
	}
	return 99
}

// mandatorySlots is the starting shape assigned to a team that has never set a lineup.
var mandatorySlots = map[player.Position]int{
	player.PositionQuarterback:  1,
	player.PositionRunningBack:  2,
	player.PositionWideReceiver: 2,
	player.PositionTightEnd:     1,
	player.PositionKicker:       1,
	player.PositionDefense:      1,
}

const flexSlots = 1

// RequiredStarters is the size of the auto-assigned lineup.
func RequiredStarters() int {
	total := flexSlots
	for _, n := range mandatorySlots {
		total += n
	}
	return total
}

// Organize turns an owner's roster entries into a display-ready lineup.
// Duplicate player entries collapse to the last one seen. When no entry has
// been marked STARTER the lineup is derived from acquisition cost. Players
// missing from the reference map are skipped.
func Organize(entries []roster.Entry, players map[string]player.Player, locked map[string]struct{}) []Row {
	order := make([]string, 0, len(entries))
	latest := make(map[string]roster.Entry, len(entries))
	for _, e := range entries {
		if _, seen := latest[e.PlayerID]; !seen {
			order = append(order, e.PlayerID)
		}
		latest[e.PlayerID] = e
	}

	rows := make([]Row, 0, len(order))
	for _, playerID := range order {
		p, ok := players[playerID]
		if !ok {
			continue
		}
		e := latest[playerID]
		status := e.Status
		if !status.IsExplicit() {
			status = roster.StatusBench
		}
		rows = append(rows, Row{
			PlayerID:        p.ID,
			Name:            p.Name,
			Position:        player.NormalizePosition(string(p.Position)),
			NFLTeam:         p.NFLTeam,
			ByeWeek:         p.ByeWeek,
			AcquisitionCost: e.Amount,
			Status:          status,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AcquisitionCost > rows[j].AcquisitionCost
	})

	if !hasStarter(rows) {
		assignDefaultStarters(rows)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].IsStarter() != rows[j].IsStarter() {
			return rows[i].IsStarter()
		}
		return PositionRank(rows[i].Position) < PositionRank(rows[j].Position)
	})

	for i := range rows {
		_, rows[i].IsLocked = locked[rows[i].PlayerID]
	}

	return rows
}

func hasStarter(rows []Row) bool {
	for _, r := range rows {
		if r.IsStarter() {
			return true
		}
	}
	return false
}

// assignDefaultStarters expects rows sorted by descending cost.
func assignDefaultStarters(rows []Row) {
	filled := make(map[player.Position]int, len(mandatorySlots))
	for i := range rows {
		pos := rows[i].Position
		limit, ok := mandatorySlots[pos]
		if !ok || filled[pos] >= limit {
			continue
		}
		rows[i].Status = roster.StatusStarter
		filled[pos]++
	}

	flexFilled := 0
	for i := range rows {
		if flexFilled >= flexSlots {
			return
		}
		if rows[i].IsStarter() || !rows[i].Position.IsFlexEligible() {
			continue
		}
		rows[i].Status = roster.StatusStarter
		flexFilled++
	}
}
