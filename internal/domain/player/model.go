package player

import (
	"fmt"
	"strings"
)

// Position represents NFL fantasy position categories.
type Position string

const (
	PositionQuarterback  Position = "QB"
	PositionRunningBack  Position = "RB"
	PositionWideReceiver Position = "WR"
	PositionTightEnd     Position = "TE"
	PositionKicker       Position = "K"
	PositionDefense      Position = "DEF"
)

// legacyTeamDefense is the tag older player imports used for team defenses.
const legacyTeamDefense = "TD"

var AllPositions = map[Position]struct{}{
	PositionQuarterback:  {},
	PositionRunningBack:  {},
	PositionWideReceiver: {},
	PositionTightEnd:     {},
	PositionKicker:       {},
	PositionDefense:      {},
}

// NormalizePosition maps a raw position tag onto the closed position set.
func NormalizePosition(raw string) Position {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == legacyTeamDefense || value == "DST" || value == "D/ST" {
		return PositionDefense
	}
	return Position(value)
}

// IsFlexEligible reports whether the position can fill the FLEX slot.
func (p Position) IsFlexEligible() bool {
	switch p {
	case PositionRunningBack, PositionWideReceiver, PositionTightEnd:
		return true
	default:
		return false
	}
}

// Player is NFL reference data populated by the ingestion collaborators.
type Player struct {
	ID          string
	Name        string
	Position    Position
	NFLTeam     string
	ByeWeek     int
	ExternalIDs map[string]string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}
