package lineup

import (
	"fmt"

	"github.com/riskibarqy/fantasy-draft/internal/domain/league"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
)

// validationOrder fixes the order violations are reported in.
var validationOrder = []player.Position{
	player.PositionQuarterback,
	player.PositionRunningBack,
	player.PositionWideReceiver,
	player.PositionTightEnd,
	player.PositionKicker,
	player.PositionDefense,
}

var minStarters = map[player.Position]int{
	player.PositionQuarterback:  1,
	player.PositionRunningBack:  1,
	player.PositionWideReceiver: 1,
	player.PositionTightEnd:     1,
	player.PositionKicker:       0,
	player.PositionDefense:      1,
}

// Validate checks a set of starter positions against league rules and
// returns every violation found. An empty result means the lineup is legal.
func Validate(starters []player.Position, settings league.Settings) []string {
	partial := settings.AllowPartialLineup()
	required := settings.ActiveRosterSize()

	counts := make(map[player.Position]int, len(validationOrder))
	for _, pos := range starters {
		counts[player.NormalizePosition(string(pos))]++
	}

	var violations []string
	if len(starters) < required && !partial {
		violations = append(violations, "not enough players")
	}
	if len(starters) > required {
		violations = append(violations, "too many players")
	}

	for _, pos := range validationOrder {
		if counts[pos] < minStarters[pos] && !partial {
			violations = append(violations, fmt.Sprintf("not enough %s", pos))
		}
		if counts[pos] > settings.MaxStarters(pos) {
			violations = append(violations, fmt.Sprintf("too many %s", pos))
		}
	}

	return violations
}
